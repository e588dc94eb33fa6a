package analysis

import (
	"sort"

	"github.com/pyqlens/backend/internal/domain/paper"
)

// HighWeightageCount is how many topic names are reported as high weightage.
const HighWeightageCount = 10

type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

// WeightagePoint is a topic's share of one year's papers, in percent.
type WeightagePoint struct {
	Year      int     `json:"year"`
	Weightage float64 `json:"weightage"`
}

type TopicPrediction struct {
	Topic              string           `json:"topic"`
	CurrentWeightage   float64          `json:"current_weightage"`
	PredictedWeightage float64          `json:"predicted_weightage"`
	Trend              Trend            `json:"trend"`
	History            []WeightagePoint `json:"history"`
}

type WeightagePrediction struct {
	NoData              bool              `json:"no_data"`
	Message             string            `json:"message,omitempty"`
	YearsAnalyzed       []int             `json:"years_analyzed"`
	TopicPredictions    []TopicPrediction `json:"topic_predictions"`
	HighWeightageTopics []string          `json:"high_weightage_topics"`
}

// PredictWeightage builds a per-topic weightage history by year and
// extrapolates the next value for topics seen in at least two years:
//
//	recent    = mean of the last min(3, n) weightages
//	trend     = (last - first) / n
//	predicted = max(0, recent + trend)
func (a *Analyzer) PredictWeightage(records []*paper.Paper) *WeightagePrediction {
	result := &WeightagePrediction{
		YearsAnalyzed:       []int{},
		TopicPredictions:    []TopicPrediction{},
		HighWeightageTopics: []string{},
	}
	if len(records) == 0 {
		result.NoData = true
		result.Message = NoRecordsMessage
		return result
	}

	type yearBucket struct {
		count  int
		topics map[string]int
		order  []string
	}
	buckets := make(map[int]*yearBucket)

	for _, r := range records {
		b, ok := buckets[r.Year]
		if !ok {
			b = &yearBucket{topics: make(map[string]int)}
			buckets[r.Year] = b
			result.YearsAnalyzed = append(result.YearsAnalyzed, r.Year)
		}
		b.count++
		for _, topic := range a.extractor.Topics(r.Title) {
			if _, seen := b.topics[topic]; !seen {
				b.order = append(b.order, topic)
			}
			b.topics[topic]++
		}
	}
	sort.Ints(result.YearsAnalyzed)

	histories := make(map[string][]WeightagePoint)
	var topicOrder []string
	for _, year := range result.YearsAnalyzed {
		b := buckets[year]
		for _, topic := range b.order {
			if _, ok := histories[topic]; !ok {
				topicOrder = append(topicOrder, topic)
			}
			histories[topic] = append(histories[topic], WeightagePoint{
				Year:      year,
				Weightage: round2(percent(b.topics[topic], b.count)),
			})
		}
	}

	for _, topic := range topicOrder {
		history := histories[topic]
		if len(history) < 2 {
			continue
		}
		result.TopicPredictions = append(result.TopicPredictions, predict(topic, history))
	}

	sort.SliceStable(result.TopicPredictions, func(i, j int) bool {
		return result.TopicPredictions[i].PredictedWeightage > result.TopicPredictions[j].PredictedWeightage
	})

	for i, p := range result.TopicPredictions {
		if i == HighWeightageCount {
			break
		}
		result.HighWeightageTopics = append(result.HighWeightageTopics, p.Topic)
	}
	return result
}

func predict(topic string, history []WeightagePoint) TopicPrediction {
	n := len(history)
	window := n
	if window > 3 {
		window = 3
	}

	var sum float64
	for _, h := range history[n-window:] {
		sum += h.Weightage
	}
	recent := sum / float64(window)
	trend := (history[n-1].Weightage - history[0].Weightage) / float64(n)

	predicted := recent + trend
	if predicted < 0 {
		predicted = 0
	}

	label := TrendStable
	switch {
	case trend > 0:
		label = TrendIncreasing
	case trend < 0:
		label = TrendDecreasing
	}

	return TopicPrediction{
		Topic:              topic,
		CurrentWeightage:   history[n-1].Weightage,
		PredictedWeightage: round2(predicted),
		Trend:              label,
		History:            history,
	}
}
