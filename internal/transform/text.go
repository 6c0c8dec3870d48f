// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transform

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pdiddy/catalog-export/pkg/types"
)

// imgSrcPattern matches an <img ...> tag and captures its double-quoted src.
// This is a surface match on the text, not a markup parser: single-quoted
// or unquoted src attributes and unterminated quotes are not captured.
var imgSrcPattern = regexp.MustCompile(`<img[^>]*src="([^"]*)"[^>]*>`)

// mmPattern finds a parenthesized metric figure such as "(215)".
var mmPattern = regexp.MustCompile(`\((\d+)\)`)

// mmDecimalPattern finds a parenthesized decimal figure such as "(5.5)" and
// captures its integer part. It is consulted only when mmPattern finds nothing.
var mmDecimalPattern = regexp.MustCompile(`\((\d+)\.\d+\)`)

// ExtractImageURLs returns every double-quoted img src in the cell, in
// document order and without deduplication. An empty or non-text cell
// yields an empty, non-nil slice.
func ExtractImageURLs(c types.Cell) []string {
	urls := []string{}
	if c.Kind != types.CellText {
		return urls
	}
	for _, m := range imgSrcPattern.FindAllStringSubmatch(c.Raw, -1) {
		urls = append(urls, m[1])
	}
	return urls
}

// GenerateSlug lower-cases name, drops everything except letters, numbers,
// underscores, whitespace and hyphens, then joins the remaining words with
// single hyphens. The result may be empty.
func GenerateSlug(name string) string {
	lower := cases.Lower(language.Und).String(name)

	var b strings.Builder
	pendingSep := false
	for _, r := range lower {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
		case isSpace(r) || r == '-':
			pendingSep = true
		}
	}
	return b.String()
}

// NormalizeWidth converts a profile width cell to a number where possible.
// A parenthesized metric figure wins over the rest of the text, then
// numeric parsing is tried, then the text is kept as is.
func NormalizeWidth(c types.Cell) types.Value {
	switch c.Kind {
	case types.CellEmpty:
		return types.Null()
	case types.CellNumber:
		return c.Value()
	}

	for _, p := range []*regexp.Regexp{mmPattern, mmDecimalPattern} {
		if m := p.FindStringSubmatch(c.Raw); m != nil {
			if mm, err := strconv.ParseInt(m[1], 10, 64); err == nil {
				return types.Int(mm)
			}
		}
	}

	s := strings.TrimSpace(c.Raw)
	if strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return types.Float(f)
		}
	} else if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return types.Int(n)
	}
	return types.Text(c.Raw)
}

// isSpace reports Unicode whitespace plus the information separators
// U+001C..U+001F.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
