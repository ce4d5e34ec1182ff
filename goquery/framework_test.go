package goquery_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	readwebgoquery "github.com/fwojciec/readweb/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestDetectFramework(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want readwebgoquery.Framework
	}{
		{
			name: "meta generator wins",
			html: `<html><head><meta name="generator" content="Docusaurus v3.1.0"></head><body></body></html>`,
			want: readwebgoquery.FrameworkDocusaurus,
		},
		{
			name: "docusaurus skip link",
			html: `<html><body><div id="__docusaurus_skipToContent_fallback"></div></body></html>`,
			want: readwebgoquery.FrameworkDocusaurus,
		},
		{
			name: "mkdocs material color scheme",
			html: `<html><body data-md-color-scheme="default"><main></main></body></html>`,
			want: readwebgoquery.FrameworkMkDocs,
		},
		{
			name: "sphinx readthedocs theme",
			html: `<html><body><nav class="wy-nav-side"></nav></body></html>`,
			want: readwebgoquery.FrameworkSphinx,
		},
		{
			name: "vitepress before vuepress",
			html: `<html><body><div id="VPContent"></div><div class="theme-default-content"></div></body></html>`,
			want: readwebgoquery.FrameworkVitePress,
		},
		{
			name: "vuepress default theme",
			html: `<html><body><div class="theme-default-content"></div></body></html>`,
			want: readwebgoquery.FrameworkVuePress,
		},
		{
			name: "gitbook html classes",
			html: `<html class="circular-corners theme-clean"><body></body></html>`,
			want: readwebgoquery.FrameworkGitBook,
		},
		{
			name: "gitbook single class is not enough",
			html: `<html class="theme-clean"><body></body></html>`,
			want: readwebgoquery.FrameworkUnknown,
		},
		{
			name: "nextra sidebar",
			html: `<html><body><div class="nextra-sidebar"></div></body></html>`,
			want: readwebgoquery.FrameworkNextra,
		},
		{
			name: "plain page",
			html: `<html><body><article><p>Hello</p></article></body></html>`,
			want: readwebgoquery.FrameworkUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := readwebgoquery.DetectFramework(parseDoc(t, tt.html))
			assert.Equal(t, tt.want, got)
		})
	}
}
