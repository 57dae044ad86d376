package edgar

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Presentational markup stripped from filing HTML. EDGAR filings are
// dense with legacy font tags and layout attributes that carry no
// information.
var (
	fontTagRe   = regexp.MustCompile(`(?i)(<font.*?>|</font>)`)
	styleAttrRe = regexp.MustCompile(`(?i)(` +
		`(style=".*?")|` +
		`(valign=".*?")|` +
		`(align=".*?")|` +
		`(width=".*?")|` +
		`(height=".*?")|` +
		`(border=".*?")|` +
		`(cellpadding=".*?")|` +
		`(cellspacing=".*?")|` +
		`(size=".*?")|` +
		`(colspan=".*?")` +
		`)`)
)

// CleanHTML strips presentational markup and noise elements from a
// filing document. The structure and text content are preserved.
func CleanHTML(content string) string {
	// Noise removal needs the layout attributes still present, so the
	// DOM pass runs before the attribute stripping.
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(content)); err == nil {
		removeNoise(doc)
		if cleaned, err := doc.Find("body").Html(); err == nil && cleaned != "" {
			content = cleaned
		} else if cleaned, err := doc.Html(); err == nil {
			content = cleaned
		}
	}

	content = fontTagRe.ReplaceAllString(content, "")
	content = styleAttrRe.ReplaceAllString(content, "")
	return content
}

// removeNoise strips elements that add no value for financial data
// extraction.
func removeNoise(doc *goquery.Document) {
	doc.Find("script, style").Remove()
	doc.Find("[hidden], [style*='display:none'], [style*='display: none']").Remove()

	// Transparent and spacer images, usually 1x1 pixels.
	doc.Find("img").Each(func(i int, sel *goquery.Selection) {
		src, _ := sel.Attr("src")
		if src == "" || strings.Contains(src, "spacer") || strings.Contains(src, "blank") {
			sel.Remove()
			return
		}
		width, _ := sel.Attr("width")
		height, _ := sel.Attr("height")
		if width == "1" && height == "1" {
			sel.Remove()
		}
	})

	// Page-number paragraphs between document sections.
	doc.Find("p, div").Each(func(i int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if len(text) <= 4 && text != "" && isDigits(text) && sel.Children().Length() == 0 {
			sel.Remove()
		}
	})
}

func isDigits(s string) bool {
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}
