package analysis_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/pyqlens/backend/internal/analysis"
	"github.com/pyqlens/backend/internal/domain/paper"
)

func record(id, title string, year int) *paper.Paper {
	return &paper.Paper{ID: id, Title: title, ExamType: paper.ExamNEET, Year: year, IsApproved: true}
}

// sampleRecords is the three-paper NEET set used across scenarios.
func sampleRecords() []*paper.Paper {
	return []*paper.Paper{
		record("p1", "NEET Physics Waves Chapter 2020", 2020),
		record("p2", "NEET Physics Waves Chapter 2021", 2021),
		record("p3", "NEET Chemistry Organic 2021", 2021),
	}
}

func neetFilter() paper.Filter {
	return paper.Filter{ExamType: paper.ExamNEET}
}

func TestRepeatedQuestions_GroupsMatchingTitles(t *testing.T) {
	a := analysis.NewDefault()

	result := a.RepeatedQuestions(sampleRecords())

	if result.NoData {
		t.Fatal("expected data for non-empty input")
	}
	if result.TotalPYQs != 3 {
		t.Errorf("expected 3 total, got %d", result.TotalPYQs)
	}
	if len(result.RepeatedPatterns) != 1 {
		t.Fatalf("expected 1 repeated pattern, got %d: %+v", len(result.RepeatedPatterns), result.RepeatedPatterns)
	}

	p := result.RepeatedPatterns[0]
	if p.Pattern != "neet physics waves" {
		t.Errorf("expected pattern %q, got %q", "neet physics waves", p.Pattern)
	}
	if p.Count != 2 {
		t.Errorf("expected count 2, got %d", p.Count)
	}
	if !reflect.DeepEqual(p.Years, []int{2020, 2021}) {
		t.Errorf("expected years [2020 2021], got %v", p.Years)
	}
	if p.Frequency != "2/3 years" {
		t.Errorf("expected frequency 2/3 years, got %q", p.Frequency)
	}
	if p.Occurrences[0].ID != "p1" || p.Occurrences[1].ID != "p2" {
		t.Errorf("unexpected occurrences %+v", p.Occurrences)
	}

	// One repeated group over three records.
	want := 100.0 / 3
	if math.Abs(result.RepetitionRate-want) > 1e-9 {
		t.Errorf("expected repetition rate %v, got %v", want, result.RepetitionRate)
	}
}

func TestRepeatedQuestions_SortedByCount(t *testing.T) {
	a := analysis.NewDefault()
	records := []*paper.Paper{
		record("a1", "Kinetic theory gases ideal", 2018),
		record("b1", "Nuclear fission chain reaction", 2018),
		record("a2", "Kinetic theory gases ideal", 2019),
		record("b2", "Nuclear fission chain reaction", 2019),
		record("b3", "Nuclear fission chain reaction", 2020),
	}

	result := a.RepeatedQuestions(records)

	if len(result.RepeatedPatterns) != 2 {
		t.Fatalf("expected 2 patterns, got %d", len(result.RepeatedPatterns))
	}
	if result.RepeatedPatterns[0].Count != 3 || result.RepeatedPatterns[1].Count != 2 {
		t.Errorf("expected counts [3 2], got [%d %d]",
			result.RepeatedPatterns[0].Count, result.RepeatedPatterns[1].Count)
	}
}

func TestRepeatedQuestions_Empty(t *testing.T) {
	a := analysis.NewDefault()

	result := a.RepeatedQuestions(nil)

	if !result.NoData {
		t.Error("expected NoData for empty input")
	}
	if result.RepetitionRate != 0 {
		t.Errorf("expected repetition rate 0, got %v", result.RepetitionRate)
	}
	if len(result.RepeatedPatterns) != 0 {
		t.Errorf("expected no patterns, got %d", len(result.RepeatedPatterns))
	}
}

func TestRepetitionRate_InRange(t *testing.T) {
	a := analysis.NewDefault()

	for n := 1; n <= 20; n++ {
		var records []*paper.Paper
		for i := 0; i < n; i++ {
			// Only a handful of distinct titles, so groups form quickly.
			records = append(records, record(fmt.Sprint(i), fmt.Sprintf("Topic %d electrostatics problem", i%3), 2000+i))
		}
		rate := a.RepeatedQuestions(records).RepetitionRate
		if rate < 0 || rate > 100 {
			t.Errorf("n=%d: repetition rate %v out of range", n, rate)
		}
	}
}

func TestImportantChapters_Ranking(t *testing.T) {
	a := analysis.NewDefault()

	result := a.ImportantChapters(sampleRecords())

	if len(result.ImportantChapters) == 0 {
		t.Fatal("expected chapters")
	}

	top := result.ImportantChapters[0]
	if top.Chapter != "physics waves" {
		t.Errorf("expected top chapter %q, got %q", "physics waves", top.Chapter)
	}
	if top.Frequency != 2 {
		t.Errorf("expected frequency 2, got %d", top.Frequency)
	}
	if top.ImportanceScore != 66.67 {
		t.Errorf("expected importance 66.67, got %v", top.ImportanceScore)
	}
	if top.AppearanceRate != "2/3 PYQs" {
		t.Errorf("expected appearance rate 2/3 PYQs, got %q", top.AppearanceRate)
	}
	for _, ch := range result.ImportantChapters[1:] {
		if ch.Frequency > top.Frequency {
			t.Errorf("chapter %q outranks the top chapter", ch.Chapter)
		}
	}

	// Equal frequencies keep first-occurrence order.
	var rest []string
	for _, ch := range result.ImportantChapters[1:] {
		rest = append(rest, ch.Chapter)
	}
	if !reflect.DeepEqual(rest, []string{"2020", "2021", "general"}) {
		t.Errorf("unexpected tie order %v", rest)
	}
}

func TestImportantChapters_FrequencySumCoversRecords(t *testing.T) {
	a := analysis.NewDefault()
	records := sampleRecords()

	result := a.ImportantChapters(records)

	sum := 0
	for _, ch := range result.ImportantChapters {
		sum += ch.Frequency
	}
	if sum < len(records) {
		t.Errorf("expected frequency sum >= %d, got %d", len(records), sum)
	}
}

func TestImportantChapters_TopTenSlice(t *testing.T) {
	a := analysis.NewDefault()
	var records []*paper.Paper
	for i := 0; i < 15; i++ {
		records = append(records, record(fmt.Sprint(i), fmt.Sprintf("Chapter %d drill", i+1), 2020))
	}

	result := a.ImportantChapters(records)

	if len(result.ImportantChapters) != 15 {
		t.Errorf("expected 15 chapters, got %d", len(result.ImportantChapters))
	}
	if len(result.Top10Chapters) != 10 {
		t.Errorf("expected 10 top chapters, got %d", len(result.Top10Chapters))
	}
	if result.Top10Chapters[0].Chapter != "1" {
		t.Errorf("expected first chapter %q, got %q", "1", result.Top10Chapters[0].Chapter)
	}
}

// tieRecords has one waves paper among 32 from 2020, so its share is
// exactly 3.125 percent.
func tieRecords() []*paper.Paper {
	records := []*paper.Paper{record("w", "Optics waves", 2020)}
	for i := 0; i < 31; i++ {
		records = append(records, record(fmt.Sprint(i), fmt.Sprintf("Revision drill %d", i), 2020))
	}
	return records
}

func TestImportantChapters_RoundsTiesToEven(t *testing.T) {
	a := analysis.NewDefault()

	result := a.ImportantChapters(tieRecords())

	scores := make(map[string]float64)
	for _, ch := range result.ImportantChapters {
		scores[ch.Chapter] = ch.ImportanceScore
	}
	if scores["optics waves"] != 3.12 {
		t.Errorf("expected optics waves score 3.12, got %v", scores["optics waves"])
	}
	if scores["general"] != 96.88 {
		t.Errorf("expected general score 96.88, got %v", scores["general"])
	}
}

func TestPredictWeightage_HistoryRoundsTiesToEven(t *testing.T) {
	a := analysis.NewDefault()
	records := append(tieRecords(), record("w2", "Optics waves", 2021))

	result := a.PredictWeightage(records)

	for _, p := range result.TopicPredictions {
		if p.Topic != "waves" {
			continue
		}
		if p.History[0].Weightage != 3.12 {
			t.Errorf("expected 2020 weightage 3.12, got %v", p.History[0].Weightage)
		}
		return
	}
	t.Fatalf("expected a waves prediction, got %+v", result.TopicPredictions)
}

func TestAnalysis_Idempotent(t *testing.T) {
	a := analysis.NewDefault()
	records := sampleRecords()

	first, err := json.Marshal(a.Full(records, neetFilter()))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	for i := 0; i < 20; i++ {
		again, err := json.Marshal(a.Full(records, neetFilter()))
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("run %d produced different output", i)
		}
	}
}

func TestPredictWeightage_RequiresTwoYears(t *testing.T) {
	a := analysis.NewDefault()

	result := a.PredictWeightage(sampleRecords())

	if !reflect.DeepEqual(result.YearsAnalyzed, []int{2020, 2021}) {
		t.Errorf("expected years [2020 2021], got %v", result.YearsAnalyzed)
	}
	if len(result.TopicPredictions) != 1 {
		t.Fatalf("expected only waves to get a prediction, got %+v", result.TopicPredictions)
	}

	p := result.TopicPredictions[0]
	if p.Topic != "waves" {
		t.Errorf("expected topic waves, got %q", p.Topic)
	}
	// history 100 -> 50: recent 75, trend -25.
	if p.PredictedWeightage != 50 {
		t.Errorf("expected predicted 50, got %v", p.PredictedWeightage)
	}
	if p.CurrentWeightage != 50 {
		t.Errorf("expected current 50, got %v", p.CurrentWeightage)
	}
	if p.Trend != analysis.TrendDecreasing {
		t.Errorf("expected decreasing, got %q", p.Trend)
	}
	if !reflect.DeepEqual(result.HighWeightageTopics, []string{"waves"}) {
		t.Errorf("expected high weightage [waves], got %v", result.HighWeightageTopics)
	}
}

func TestPredictWeightage_RecentWindowAndFloor(t *testing.T) {
	a := analysis.NewDefault()
	// Optics share per year: 2017 1/1, 2018 1/2, 2019 1/4, 2020 1/4.
	records := []*paper.Paper{
		record("1", "Lens formula", 2017),
		record("2", "Mirror formula", 2018),
		record("3", "Kinetic theory", 2018),
		record("4", "Lens maker", 2019),
		record("5", "Calorimetry", 2019),
		record("6", "Viscosity", 2019),
		record("7", "Viscosity", 2019),
		record("8", "Reflection basics", 2020),
		record("9", "Surface tension", 2020),
		record("10", "Surface tension", 2020),
		record("11", "Surface tension", 2020),
	}

	result := a.PredictWeightage(records)

	var optics *analysis.TopicPrediction
	for i := range result.TopicPredictions {
		if result.TopicPredictions[i].Topic == "optics" {
			optics = &result.TopicPredictions[i]
		}
	}
	if optics == nil {
		t.Fatalf("expected optics prediction, got %+v", result.TopicPredictions)
	}

	// History: 100, 50, 25, 25. Recent = (50+25+25)/3, trend = (25-100)/4.
	want := []float64{100, 50, 25, 25}
	for i, h := range optics.History {
		if h.Weightage != want[i] {
			t.Errorf("history[%d]: expected %v, got %v", i, want[i], h.Weightage)
		}
	}
	if optics.PredictedWeightage != 14.58 {
		t.Errorf("expected predicted 14.58, got %v", optics.PredictedWeightage)
	}
}

func TestPredictWeightage_NeverNegative(t *testing.T) {
	a := analysis.NewDefault()
	records := []*paper.Paper{
		record("1", "Enzyme action", 2019),
		record("2", "Enzyme action", 2020),
		record("3", "Gravitation", 2020),
		record("4", "Gravitation", 2020),
		record("5", "Gravitation", 2020),
		record("6", "Gravitation", 2020),
		record("7", "Gravitation", 2020),
		record("8", "Gravitation", 2020),
		record("9", "Gravitation", 2020),
		record("10", "Gravitation", 2020),
		record("11", "Gravitation", 2020),
	}

	result := a.PredictWeightage(records)

	for _, p := range result.TopicPredictions {
		if p.PredictedWeightage < 0 {
			t.Errorf("topic %q predicted below zero: %v", p.Topic, p.PredictedWeightage)
		}
		for _, h := range p.History {
			if h.Weightage > 100 {
				t.Errorf("topic %q weightage %v exceeds 100 in %d", p.Topic, h.Weightage, h.Year)
			}
		}
	}
}

func TestPredictWeightage_Empty(t *testing.T) {
	a := analysis.NewDefault()

	result := a.PredictWeightage(nil)

	if !result.NoData {
		t.Error("expected NoData for empty input")
	}
	if result.Message != analysis.NoRecordsMessage {
		t.Errorf("expected message %q, got %q", analysis.NoRecordsMessage, result.Message)
	}
}

func TestMockTest_SmallPool(t *testing.T) {
	a := analysis.NewDefault()

	result := a.MockTest(sampleRecords(), neetFilter(), analysis.MockTestOptions{NumQuestions: 10})

	if result.TotalQuestions != 3 || len(result.Questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(result.Questions))
	}
	for i, q := range result.Questions {
		if q.Number != i+1 {
			t.Errorf("question %d numbered %d", i, q.Number)
		}
		switch q.Type {
		case analysis.QuestionHighWeightage, analysis.QuestionImportantChapter, analysis.QuestionRandom:
		default:
			t.Errorf("question %d has unknown type %q", i, q.Type)
		}
		if len(q.ReferencePYQs) == 0 || len(q.ReferencePYQs) > 2 {
			t.Errorf("question %d has %d references", i, len(q.ReferencePYQs))
		}
	}

	first := result.Questions[0]
	if first.Type != analysis.QuestionHighWeightage || first.Topic != "waves" {
		t.Errorf("expected high weightage waves first, got %+v", first)
	}
	if result.Subject != "All" {
		t.Errorf("expected subject All, got %q", result.Subject)
	}
	if result.Difficulty != analysis.DifficultyMixed {
		t.Errorf("expected mixed difficulty, got %q", result.Difficulty)
	}
	if result.Distribution.HighWeightage != 6 || result.Distribution.ImportantChapters != 3 {
		t.Errorf("unexpected distribution %+v", result.Distribution)
	}
}

func manyRecords(n int) []*paper.Paper {
	titles := []string{
		"Projectile motion problem",
		"Lens and mirror numericals",
		"Electric circuit analysis",
		"Organic reaction mechanism",
		"Heat engine efficiency",
		"Gene expression",
	}
	records := make([]*paper.Paper, n)
	for i := range records {
		records[i] = record(fmt.Sprintf("r%02d", i), titles[i%len(titles)], 2015+i%5)
	}
	return records
}

func TestMockTest_NeverExceedsRequested(t *testing.T) {
	a := analysis.NewDefault(analysis.WithRandSource(rand.New(rand.NewSource(1))))
	records := manyRecords(40)

	for _, n := range []int{1, 2, 5, 10, 25, 60} {
		result := a.MockTest(records, neetFilter(), analysis.MockTestOptions{NumQuestions: n})
		if len(result.Questions) > n {
			t.Errorf("n=%d: got %d questions", n, len(result.Questions))
		}
		limit := n
		if limit > len(records) {
			limit = len(records)
		}
		if len(result.Questions) != limit {
			t.Errorf("n=%d: expected %d questions, got %d", n, limit, len(result.Questions))
		}
	}
}

func TestMockTest_SeedReplay(t *testing.T) {
	a := analysis.NewDefault()
	records := manyRecords(30)
	seed := int64(42)
	opts := analysis.MockTestOptions{NumQuestions: 20, Difficulty: analysis.DifficultyHard, Seed: &seed}

	first := a.MockTest(records, neetFilter(), opts)
	second := a.MockTest(records, neetFilter(), opts)

	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical mock tests for the same seed")
	}

	random := 0
	seen := make(map[string]bool)
	for _, q := range first.Questions {
		if q.Type != analysis.QuestionRandom {
			continue
		}
		random++
		id := q.ReferencePYQs[0].ID
		if seen[id] {
			t.Errorf("record %s sampled twice", id)
		}
		seen[id] = true
	}
	if random == 0 {
		t.Error("expected the random pass to contribute questions")
	}
	if random != first.Distribution.Random {
		t.Errorf("expected %d random questions, got %d", first.Distribution.Random, random)
	}
}

func TestMockTest_Empty(t *testing.T) {
	a := analysis.NewDefault()

	result := a.MockTest(nil, neetFilter(), analysis.MockTestOptions{NumQuestions: 10})

	if !result.NoData {
		t.Error("expected NoData for empty pool")
	}
	if len(result.Questions) != 0 {
		t.Errorf("expected no questions, got %d", len(result.Questions))
	}
}

func TestParseDifficulty(t *testing.T) {
	d, err := analysis.ParseDifficulty("")
	if err != nil || d != analysis.DifficultyMixed {
		t.Errorf("expected mixed for empty input, got %q, %v", d, err)
	}
	d, err = analysis.ParseDifficulty("HARD")
	if err != nil || d != analysis.DifficultyHard {
		t.Errorf("expected hard, got %q, %v", d, err)
	}
	if _, err := analysis.ParseDifficulty("impossible"); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}

func TestFull_Summary(t *testing.T) {
	a := analysis.NewDefault()
	phys := paper.SubjectPhysics
	filter := paper.Filter{ExamType: paper.ExamNEET, Subject: &phys, Years: []int{2020}}

	result := a.Full(sampleRecords()[:1], filter)

	if result.Summary.Subject != "physics" || result.Summary.AllYears {
		t.Errorf("unexpected summary %+v", result.Summary)
	}
	if result.RepeatedQuestions.TotalPYQs != 1 {
		t.Errorf("expected 1 record analysed, got %d", result.RepeatedQuestions.TotalPYQs)
	}
}

type fixedExtractor struct{}

func (fixedExtractor) Keywords(string) []string { return []string{"same"} }
func (fixedExtractor) Chapters(string) []string { return []string{"only"} }
func (fixedExtractor) Topics(string) []string   { return []string{"only"} }

func TestAnalyzer_CustomExtractor(t *testing.T) {
	a := analysis.New(fixedExtractor{})

	result := a.RepeatedQuestions(sampleRecords())

	if len(result.RepeatedPatterns) != 1 || result.RepeatedPatterns[0].Count != 3 {
		t.Errorf("expected one group of 3, got %+v", result.RepeatedPatterns)
	}
}
