package analysis

import (
	"fmt"
	"sort"

	"github.com/pyqlens/backend/internal/domain/paper"
)

// TopChapterCount is the length of the convenience top slice.
const TopChapterCount = 10

type ChapterImportance struct {
	Chapter         string  `json:"chapter"`
	Frequency       int     `json:"frequency"`
	ImportanceScore float64 `json:"importance_score"`
	YearsAppeared   []int   `json:"years_appeared"`
	AppearanceRate  string  `json:"appearance_rate"`
}

type ChapterRanking struct {
	NoData            bool                `json:"no_data"`
	Message           string              `json:"message,omitempty"`
	TotalPYQs         int                 `json:"total_pyqs"`
	ImportantChapters []ChapterImportance `json:"important_chapters"`
	Top10Chapters     []ChapterImportance `json:"top_10_chapters"`
}

// ImportantChapters counts chapter tags across records and ranks them by
// frequency. Ties keep first-occurrence order, so the ranking is identical
// for identical input.
func (a *Analyzer) ImportantChapters(records []*paper.Paper) *ChapterRanking {
	result := &ChapterRanking{
		TotalPYQs:         len(records),
		ImportantChapters: []ChapterImportance{},
		Top10Chapters:     []ChapterImportance{},
	}
	if len(records) == 0 {
		result.NoData = true
		result.Message = NoRecordsMessage
		return result
	}

	type tally struct {
		count int
		years map[int]bool
	}
	tallies := make(map[string]*tally)
	var order []string

	for _, r := range records {
		for _, ch := range a.extractor.Chapters(r.Title) {
			t, ok := tallies[ch]
			if !ok {
				t = &tally{years: make(map[int]bool)}
				tallies[ch] = t
				order = append(order, ch)
			}
			t.count++
			t.years[r.Year] = true
		}
	}

	total := len(records)
	for _, ch := range order {
		t := tallies[ch]
		years := make([]int, 0, len(t.years))
		for y := range t.years {
			years = append(years, y)
		}
		sort.Ints(years)

		result.ImportantChapters = append(result.ImportantChapters, ChapterImportance{
			Chapter:         ch,
			Frequency:       t.count,
			ImportanceScore: round2(percent(t.count, total)),
			YearsAppeared:   years,
			AppearanceRate:  fmt.Sprintf("%d/%d PYQs", t.count, total),
		})
	}

	sort.SliceStable(result.ImportantChapters, func(i, j int) bool {
		return result.ImportantChapters[i].Frequency > result.ImportantChapters[j].Frequency
	})

	top := result.ImportantChapters
	if len(top) > TopChapterCount {
		top = top[:TopChapterCount]
	}
	result.Top10Chapters = top
	return result
}
