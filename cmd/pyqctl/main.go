// Command pyqctl imports papers and runs analyses against the local database
// without starting the HTTP server.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pyqlens/backend/internal/analysis"
	"github.com/pyqlens/backend/internal/domain/paper"
	"github.com/pyqlens/backend/internal/drafter"
	"github.com/pyqlens/backend/internal/infrastructure/config"
	"github.com/pyqlens/backend/internal/render"
	"github.com/pyqlens/backend/internal/service"
	"github.com/pyqlens/backend/internal/store"
)

var version = "dev"

var (
	verbose        bool
	dbPath         string
	vocabularyPath string
	cfg            config.Analysis
	logger         *slog.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "pyqctl",
	Short:        "Previous-year question analysis from the command line",
	Long:         "pyqctl imports question papers and runs pattern analyses and mock tests against the pyqlens database.",
	Version:      version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

		cfg = config.LoadAnalysis()
		if cmd.Flags().Changed("db") {
			cfg.DBPath = dbPath
		}
		if cmd.Flags().Changed("vocabulary") {
			cfg.VocabularyPath = vocabularyPath
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the SQLite database (default $DB_PATH or pyqlens.db)")
	rootCmd.PersistentFlags().StringVar(&vocabularyPath, "vocabulary", "", "YAML file overriding the tag vocabulary")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(mockTestCmd)
	rootCmd.AddCommand(refreshCmd)
}

// --- import command ---

var importApprove bool

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import papers from a YAML or JSON file",
	Long: `Import papers from a YAML or JSON file. The file is either an export
bundle ({version, papers: [...]}) or a bare list of papers.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := readRecords(args[0])
		if err != nil {
			return err
		}
		if importApprove {
			for i := range records {
				records[i].Approved = true
			}
		}

		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		result := service.ImportPapers(cmd.Context(), db, records)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Imported %d papers, skipped %d\n", result.PapersCreated, result.Skipped)
		for _, e := range result.Errors {
			fmt.Fprintf(out, "  %s\n", e)
		}
		return nil
	},
}

func init() {
	importCmd.Flags().BoolVar(&importApprove, "approve", false, "Mark every imported paper as approved")
}

// readRecords decodes a bundle or a bare list. JSON files go through
// encoding/json, everything else through YAML.
func readRecords(path string) ([]paper.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	unmarshal := yaml.Unmarshal
	if strings.EqualFold(filepath.Ext(path), ".json") {
		unmarshal = json.Unmarshal
	}

	var bundle service.Bundle
	if err := unmarshal(data, &bundle); err == nil && bundle.Papers != nil {
		return bundle.Papers, nil
	}

	var records []paper.Record
	if err := unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing %s: expected a bundle or a list of papers: %w", path, err)
	}
	return records, nil
}

// --- analysis commands ---

var (
	examType string
	subject  string
	years    string
)

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&examType, "exam-type", "e", "", "boards, neet, jee_main or jee_advanced (required)")
	cmd.Flags().StringVarP(&subject, "subject", "s", "", "physics, chemistry, biology or mathematics")
	cmd.Flags().StringVar(&years, "years", "", "Comma-separated years, e.g. 2020,2021")
	cmd.MarkFlagRequired("exam-type")
}

func parseFilter() (paper.Filter, error) {
	var f paper.Filter
	e, err := paper.ParseExamType(examType)
	if err != nil {
		return f, err
	}
	s, err := paper.ParseSubject(subject)
	if err != nil {
		return f, err
	}
	y, err := paper.ParseYears(years)
	if err != nil {
		return f, err
	}
	return paper.Filter{ExamType: e, Subject: s, Years: y}, nil
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Print the full analysis as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := parseFilter()
		if err != nil {
			return err
		}

		svc, closeDB, err := openService(nil)
		if err != nil {
			return err
		}
		defer closeDB()

		full, err := svc.FullAnalysis(cmd.Context(), f)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), full)
	},
}

func init() {
	addFilterFlags(analyzeCmd)
}

var (
	numQuestions int
	difficulty   string
	seed         int64
	format       string
	draft        bool
	outputPath   string
)

var mockTestCmd = &cobra.Command{
	Use:   "mock-test",
	Short: "Generate a mock test",
	Long: `Generate a mock test from approved papers. Pass --seed to make the random
part reproducible and --draft to have the configured model write questions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := parseFilter()
		if err != nil {
			return err
		}
		d, err := analysis.ParseDifficulty(difficulty)
		if err != nil {
			return err
		}
		if format != "json" && format != "markdown" && format != "html" {
			return fmt.Errorf("invalid format %q: must be json, markdown or html", format)
		}

		req := service.MockTestRequest{
			Filter:  f,
			Options: analysis.MockTestOptions{NumQuestions: numQuestions, Difficulty: d},
			Draft:   draft,
		}
		if cmd.Flags().Changed("seed") {
			req.Options.Seed = &seed
		}

		var llm drafter.Drafter
		if draft {
			llm = drafter.NewOpenAIDrafter(cfg.LLMURL, cfg.LLMModel)
		}
		svc, closeDB, err := openService(llm)
		if err != nil {
			return err
		}
		defer closeDB()

		test, err := svc.MockTest(cmd.Context(), req)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if outputPath != "" {
			file, err := os.Create(outputPath)
			if err != nil {
				return fmt.Errorf("creating %s: %w", outputPath, err)
			}
			defer file.Close()
			out = file
		}

		switch format {
		case "markdown":
			_, err = io.WriteString(out, render.Markdown(test))
		case "html":
			var page string
			if page, err = render.HTML(test); err == nil {
				_, err = io.WriteString(out, page)
			}
		default:
			err = writeJSON(out, test)
		}
		return err
	},
}

func init() {
	addFilterFlags(mockTestCmd)
	mockTestCmd.Flags().IntVarP(&numQuestions, "questions", "n", analysis.DefaultQuestionCount, "Number of questions")
	mockTestCmd.Flags().StringVar(&difficulty, "difficulty", string(analysis.DifficultyMixed), "easy, medium, hard or mixed")
	mockTestCmd.Flags().Int64Var(&seed, "seed", 0, "Seed for the random selection")
	mockTestCmd.Flags().StringVarP(&format, "format", "f", "json", "json, markdown or html")
	mockTestCmd.Flags().BoolVar(&draft, "draft", false, "Draft question text with the configured LLM")
	mockTestCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write to a file instead of stdout")
}

var refreshCmd = &cobra.Command{
	Use:   "refresh-snapshots",
	Short: "Recompute the stored analysis for every exam type",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeDB, err := openService(nil)
		if err != nil {
			return err
		}
		defer closeDB()

		if err := svc.RefreshSnapshots(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Refreshed snapshots for %d exam types\n", len(paper.ExamTypes))
		return nil
	},
}

// --- helpers ---

func openDB() (*store.SQLiteStore, error) {
	db, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return db, nil
}

func openService(d drafter.Drafter) (*service.AnalysisService, func(), error) {
	analyzer := analysis.NewDefault()
	if cfg.VocabularyPath != "" {
		v, err := analysis.LoadVocabulary(cfg.VocabularyPath)
		if err != nil {
			return nil, nil, err
		}
		if analyzer, err = analysis.NewFromVocabulary(v); err != nil {
			return nil, nil, err
		}
	}

	db, err := openDB()
	if err != nil {
		return nil, nil, err
	}
	svc := service.NewAnalysisService(db, analyzer, d, cfg.DraftWorkers, logger)
	return svc, func() { db.Close() }, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
