package analysis

import (
	"fmt"
	"sort"

	"github.com/pyqlens/backend/internal/domain/paper"
)

// Occurrence is one paper belonging to a pattern group.
type Occurrence struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Year    int    `json:"year"`
	Subject string `json:"subject,omitempty"`
}

type RepeatedPattern struct {
	Pattern     string       `json:"pattern"`
	Count       int          `json:"count"`
	Years       []int        `json:"years"`
	Occurrences []Occurrence `json:"occurrences"`
	Frequency   string       `json:"frequency"`
}

type RepeatedQuestions struct {
	NoData           bool              `json:"no_data"`
	Message          string            `json:"message,omitempty"`
	TotalPYQs        int               `json:"total_pyqs"`
	RepeatedPatterns []RepeatedPattern `json:"repeated_patterns"`
	// RepetitionRate is repeated pattern groups per 100 records. It counts
	// groups, not the records inside them.
	RepetitionRate float64 `json:"repetition_rate"`
}

// RepeatedQuestions groups records by pattern key and reports every group
// with more than one member, largest first. Groups of equal size keep the
// order in which their key was first seen.
func (a *Analyzer) RepeatedQuestions(records []*paper.Paper) *RepeatedQuestions {
	result := &RepeatedQuestions{
		TotalPYQs:        len(records),
		RepeatedPatterns: []RepeatedPattern{},
	}
	if len(records) == 0 {
		result.NoData = true
		result.Message = NoRecordsMessage
		return result
	}

	groups := make(map[string][]Occurrence)
	var order []string
	for _, r := range records {
		key := PatternKey(a.extractor.Keywords(r.Title), a.patternSize)
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], Occurrence{
			ID:      r.ID,
			Title:   r.Title,
			Year:    r.Year,
			Subject: r.SubjectName(),
		})
	}

	for _, key := range order {
		occ := groups[key]
		if len(occ) < 2 {
			continue
		}
		result.RepeatedPatterns = append(result.RepeatedPatterns, RepeatedPattern{
			Pattern:     key,
			Count:       len(occ),
			Years:       distinctYears(occ),
			Occurrences: occ,
			Frequency:   fmt.Sprintf("%d/%d years", len(occ), len(records)),
		})
	}

	sort.SliceStable(result.RepeatedPatterns, func(i, j int) bool {
		return result.RepeatedPatterns[i].Count > result.RepeatedPatterns[j].Count
	})

	result.RepetitionRate = percent(len(result.RepeatedPatterns), len(records))
	return result
}

func distinctYears(occ []Occurrence) []int {
	seen := make(map[int]bool, len(occ))
	years := make([]int, 0, len(occ))
	for _, o := range occ {
		if !seen[o.Year] {
			seen[o.Year] = true
			years = append(years, o.Year)
		}
	}
	sort.Ints(years)
	return years
}
