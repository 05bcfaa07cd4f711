package extractor

import (
	"bytes"
	_ "embed"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/article.html
var articleHTML []byte

//go:embed testdata/article.txt
var articleText string

func TestExtractText_Article(t *testing.T) {
	text, err := ExtractText(bytes.NewReader(articleHTML))
	require.NoError(t, err)
	assert.Equal(t, strings.TrimSpace(articleText), text)
}

func TestExtractText(t *testing.T) {
	tbl := []struct {
		name string
		html string
		want string
	}{
		{
			name: "article element precedes article-content class",
			html: `<div class="article-content">teaser</div><article><p>body</p></article>`,
			want: "body",
		},
		{
			name: "article-content class",
			html: `<div class="story-content">story</div><div class="article-content"><p>one</p><p>two</p></div>`,
			want: "one two",
		},
		{
			name: "story-content class precedes substring match",
			html: `<div class="main-article">main</div><section class="story-content">story</section>`,
			want: "story",
		},
		{
			name: "class contains article",
			html: `<div class="page-content">page</div><div class="big-article-body">big <b>bold</b> text</div>`,
			want: "big bold text",
		},
		{
			name: "class contains content",
			html: `<div class="sidebar">side</div><div class="post-content-wrapper">  post  <i>text</i> </div>`,
			want: "post text",
		},
		{
			name: "noise is removed before lookup",
			html: `<nav><article>menu</article></nav><header class="article-content">head</header>` +
				`<div class="story-content">story<script>var x = 1;</script><style>p{}</style></div>`,
			want: "story",
		},
		{
			name: "paragraph fallback",
			html: `<div id="main"><p>  First one.  </p><p></p><p>Second <b>bold</b> one.</p></div>`,
			want: "First one. Second bold one.",
		},
		{
			name: "empty match falls back to paragraphs",
			html: `<div class="content"><img src="x.png"></div><div><p>Para text.</p></div>`,
			want: "Para text.",
		},
		{
			name: "paragraphs inside footer are ignored",
			html: `<p>kept</p><footer><p>dropped</p></footer>`,
			want: "kept",
		},
		{
			name: "noscript markup is not text",
			html: `<article><p>Body text.</p><noscript><img src="pixel.gif" alt=""></noscript></article>`,
			want: "Body text.",
		},
		{
			name: "noscript text is kept",
			html: `<div class="story-content"><p>Story.</p><noscript>Enable <b>javascript</b></noscript></div>`,
			want: "Story. Enable javascript",
		},
		{
			name: "paragraph fallback joins nested text nodes",
			html: `<div><p>Hello
			   <b>world</b>  </p><p>
			again</p></div>`,
			want: "Hello world again",
		},
		{
			name: "nothing to extract",
			html: `<html><body><div>loose text</div><span>more</span></body></html>`,
			want: "",
		},
		{
			name: "empty document",
			html: ``,
			want: "",
		},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			text, err := ExtractText(strings.NewReader(tt.html))
			require.NoError(t, err)
			assert.Equal(t, tt.want, text)
		})
	}
}
