// Package report builds a part-of-speech report of an article and renders it.
package report

import (
	"unicode/utf8"

	"github.com/Semior001/newspos/app/extractor"
	"github.com/Semior001/newspos/app/pos"
	"github.com/samber/lo"
)

const (
	// PreviewLen is the number of characters of the article shown in preview.
	PreviewLen = 500
	// TopTags is the number of the most frequent tags highlighted in the report.
	TopTags = 10
	// ExamplesPerTag is the number of words listed for each highlighted tag.
	ExamplesPerTag = 5
)

// Row is a line of the tag table.
type Row struct {
	Tag         string `json:"tag"`
	Description string `json:"description"`
	Count       int    `json:"count"`
}

// Example lists words tagged with the tag.
type Example struct {
	Row
	Words []string `json:"words"`
}

// Report contains everything that is shown to the user about the article.
type Report struct {
	URL     string `json:"url"`
	Title   string `json:"title,omitempty"`
	Site    string `json:"site,omitempty"`
	Preview string `json:"preview"`
	Chars   int    `json:"chars"`

	TotalTokens int    `json:"total_tokens"`
	UniqueTags  int    `json:"unique_tags"`
	MostCommon  string `json:"most_common"`

	// Rows are ranked by count, the most frequent tag goes first.
	Rows     []Row     `json:"rows"`
	Top      []Row     `json:"top"`
	Examples []Example `json:"examples"`
}

// Build makes a report from the extracted article and its analysis.
func Build(page extractor.Page, a pos.Analysis) Report {
	rows := lo.Map(a.Frequency.Ranked(), func(tc pos.TagCount, _ int) Row {
		return Row{Tag: tc.Tag, Description: pos.Describe(tc.Tag), Count: tc.Count}
	})

	top := rows[:min(TopTags, len(rows))]

	words := pos.Examples(a.Tokens, ExamplesPerTag)
	examples := lo.Map(top, func(r Row, _ int) Example {
		return Example{Row: r, Words: words[r.Tag]}
	})

	rep := Report{
		URL:         page.URL,
		Title:       page.Title,
		Site:        page.Site,
		Preview:     preview(page.Text),
		Chars:       utf8.RuneCountInString(page.Text),
		TotalTokens: len(a.Tokens),
		UniqueTags:  a.Frequency.Len(),
		Rows:        rows,
		Top:         top,
		Examples:    examples,
	}

	if len(rows) > 0 {
		rep.MostCommon = rows[0].Tag
	}

	return rep
}

// MaxCount returns the count of the most frequent tag.
func (r Report) MaxCount() int {
	if len(r.Rows) == 0 {
		return 0
	}
	return r.Rows[0].Count
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) > PreviewLen {
		runes = runes[:PreviewLen]
	}
	return string(runes) + "..."
}
