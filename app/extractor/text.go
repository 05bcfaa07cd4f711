package extractor

import (
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/go-shiori/dom"
	"golang.org/x/net/html"
)

// noise elements carry no article text and are dropped before the lookup.
var noise = []string{"script", "style", "nav", "header", "footer"}

// heuristic locates the element that is likely to hold the article body.
type heuristic struct {
	name string
	sel  cascadia.Selector
}

// heuristics are tried in order, the first one that matches an element wins.
var heuristics = []heuristic{
	{name: "article element", sel: cascadia.MustCompile("article")},
	{name: "article-content class", sel: cascadia.MustCompile(".article-content")},
	{name: "story-content class", sel: cascadia.MustCompile(".story-content")},
	{name: "class mentions article", sel: cascadia.MustCompile(`[class*="article"]`)},
	{name: "class mentions content", sel: cascadia.MustCompile(`[class*="content"]`)},
}

var paragraphs = cascadia.MustCompile("p")

// ExtractText returns the article body of the HTML page.
// The result is empty if neither the heuristics nor the
// paragraphs of the page have any text.
func ExtractText(rd io.Reader) (string, error) {
	// with scripting off noscript children are elements, not raw text
	doc, err := html.ParseWithOptions(rd, html.ParseOptionEnableScripting(false))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	removeNoise(doc)

	if node := locate(doc); node != nil {
		if text := joinedText(node); text != "" {
			return text, nil
		}
	}

	var parts []string
	for _, p := range paragraphs.MatchAll(doc) {
		if text := joinedText(p); text != "" {
			parts = append(parts, text)
		}
	}

	return strings.Join(parts, " "), nil
}

func removeNoise(doc *html.Node) {
	for _, tag := range noise {
		dom.RemoveNodes(dom.GetElementsByTagName(doc, tag), nil)
	}
}

// locate returns the element matched by the first applicable heuristic.
func locate(doc *html.Node) *html.Node {
	for _, h := range heuristics {
		if node := h.sel.MatchFirst(doc); node != nil {
			return node
		}
	}
	return nil
}

// joinedText trims every text node under n, skips the blank ones
// and joins the rest with single spaces.
func joinedText(n *html.Node) string {
	var parts []string

	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.TextNode {
			if s := strings.TrimSpace(cur.Data); s != "" {
				parts = append(parts, s)
			}
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return strings.Join(parts, " ")
}
