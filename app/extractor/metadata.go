package extractor

import (
	"io"
	"net/url"
	"strings"

	"github.com/go-shiori/go-readability"
)

type pageMeta struct {
	Title string
	Site  string
}

// metadata looks up the title and the site name of the page.
// Metadata is optional, so parsing errors are ignored.
func metadata(rd io.Reader, pageURL *url.URL) pageMeta {
	article, err := readability.FromReader(rd, pageURL)
	if err != nil {
		return pageMeta{}
	}

	return pageMeta{
		Title: strings.TrimSpace(article.Title),
		Site:  strings.TrimSpace(article.SiteName),
	}
}
