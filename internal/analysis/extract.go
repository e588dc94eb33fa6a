package analysis

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// TagExtractor turns a paper title into keywords, chapter tags and topic
// tags. Aggregation and ranking only see this interface, so a smarter
// classifier can replace the heuristic one.
type TagExtractor interface {
	Keywords(title string) []string
	Chapters(title string) []string
	Topics(title string) []string
}

var wordRe = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// HeuristicExtractor matches titles against a fixed Vocabulary. It holds no
// mutable state and is safe for concurrent use.
type HeuristicExtractor struct {
	fallback       string
	minKeywordLen  int
	stopWords      map[string]struct{}
	chapterRes     []*regexp.Regexp
	commonChapters []string
	topics         []Topic
}

var _ TagExtractor = (*HeuristicExtractor)(nil)

// NewHeuristicExtractor compiles the vocabulary's chapter patterns.
func NewHeuristicExtractor(v *Vocabulary) (*HeuristicExtractor, error) {
	e := &HeuristicExtractor{
		fallback:       v.FallbackTag,
		minKeywordLen:  v.MinKeywordLength,
		stopWords:      make(map[string]struct{}, len(v.StopWords)),
		commonChapters: append([]string(nil), v.CommonChapters...),
		topics:         make([]Topic, len(v.Topics)),
	}
	for _, w := range v.StopWords {
		e.stopWords[strings.ToLower(w)] = struct{}{}
	}
	for _, p := range v.ChapterPatterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("compiling chapter pattern %q: %w", p, err)
		}
		e.chapterRes = append(e.chapterRes, re)
	}
	for i, t := range v.Topics {
		e.topics[i] = Topic{Name: t.Name, Keywords: append([]string(nil), t.Keywords...)}
	}
	return e, nil
}

// Keywords lower-cases the title, splits it into words and drops stop words
// and words shorter than the configured minimum. Order is preserved.
func (e *HeuristicExtractor) Keywords(title string) []string {
	words := wordRe.FindAllString(strings.ToLower(title), -1)
	keywords := make([]string, 0, len(words))
	for _, w := range words {
		if _, stop := e.stopWords[w]; stop {
			continue
		}
		if utf8.RuneCountInString(w) < e.minKeywordLen {
			continue
		}
		keywords = append(keywords, w)
	}
	return keywords
}

// Chapters returns the distinct chapter tags found in the title, in the
// order they were found. Pattern matches win over the common-chapter list;
// with neither, the result is the fallback tag alone.
func (e *HeuristicExtractor) Chapters(title string) []string {
	lower := strings.ToLower(title)

	var found []string
	for _, re := range e.chapterRes {
		for _, m := range re.FindAllStringSubmatch(lower, -1) {
			if len(m) > 1 {
				found = append(found, m[1])
			} else {
				found = append(found, m[0])
			}
		}
	}

	if len(found) == 0 {
		for _, ch := range e.commonChapters {
			if strings.Contains(lower, ch) {
				found = append(found, ch)
			}
		}
	}

	if len(found) == 0 {
		return []string{e.fallback}
	}
	return dedupe(found)
}

// Topics returns every topic with at least one keyword occurring in the
// title, in vocabulary order, or the fallback tag.
func (e *HeuristicExtractor) Topics(title string) []string {
	lower := strings.ToLower(title)

	var topics []string
	for _, t := range e.topics {
		for _, kw := range t.Keywords {
			if strings.Contains(lower, kw) {
				topics = append(topics, t.Name)
				break
			}
		}
	}
	if len(topics) == 0 {
		return []string{e.fallback}
	}
	return topics
}

// PatternKey builds the grouping key for repeated-question detection from
// the first n keywords, sorted and space separated.
func PatternKey(keywords []string, n int) string {
	if len(keywords) > n {
		keywords = keywords[:n]
	}
	key := append([]string(nil), keywords...)
	sort.Strings(key)
	return strings.Join(key, " ")
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := values[:0]
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
