package pos

import "sort"

// TagCount is a tag with the number of its occurrences.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// Frequency counts tags, remembering the order in which
// every tag was seen first.
type Frequency struct {
	counts map[string]int
	order  []string
	total  int
}

// NewFrequency makes an empty Frequency.
func NewFrequency() *Frequency {
	return &Frequency{counts: map[string]int{}}
}

// Add counts one more occurrence of the tag.
func (f *Frequency) Add(tag string) {
	if _, ok := f.counts[tag]; !ok {
		f.order = append(f.order, tag)
	}
	f.counts[tag]++
	f.total++
}

// Count returns the number of occurrences of the tag.
func (f *Frequency) Count(tag string) int { return f.counts[tag] }

// Len returns the number of distinct tags.
func (f *Frequency) Len() int { return len(f.order) }

// Total returns the sum of all counts.
func (f *Frequency) Total() int { return f.total }

// Ranked returns tags sorted by count in descending order.
// Tags with equal counts keep the order they were first seen in.
func (f *Frequency) Ranked() []TagCount {
	res := make([]TagCount, 0, len(f.order))
	for _, tag := range f.order {
		res = append(res, TagCount{Tag: tag, Count: f.counts[tag]})
	}

	sort.SliceStable(res, func(i, j int) bool { return res[i].Count > res[j].Count })
	return res
}

// MostCommon returns at most n top-ranked tags, n < 0 means all of them.
func (f *Frequency) MostCommon(n int) []TagCount {
	ranked := f.Ranked()
	if n < 0 || n > len(ranked) {
		return ranked
	}
	return ranked[:n]
}

// Examples returns, per tag, the first limit words tagged with it,
// in the order they appear in tokens. The same word met at different
// positions is listed every time.
func Examples(tokens []Token, limit int) map[string][]string {
	res := map[string][]string{}
	for _, tok := range tokens {
		if len(res[tok.Tag]) < limit {
			res[tok.Tag] = append(res[tok.Tag], tok.Word)
		}
	}
	return res
}
