package engine

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/anatolykoptev/go-kit/strutil"
)

// User-Agent sent on all outbound HTTP requests.
const UserAgent = "SkillBridge/1.0"

// Truncate returns the first n bytes of s.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// TruncateRunes caps s at limit runes, appending suffix if truncated.
// Pass suffix="" for no suffix. Safe for UTF-8 (Cyrillic, CJK, emoji).
func TruncateRunes(s string, limit int, suffix string) string {
	return strutil.TruncateWith(s, limit, suffix)
}

var spaceRe = regexp.MustCompile(`\s+`)

// HTMLToText extracts readable text from an HTML document.
// Strips script/style/nav noise and collapses whitespace.
func HTMLToText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		// Last resort: strip tags with a regex.
		stripped := regexp.MustCompile(`<[^>]+>`).ReplaceAllString(html, " ")
		return strings.TrimSpace(spaceRe.ReplaceAllString(stripped, " "))
	}

	doc.Find("script, style, noscript, iframe, svg, nav").Each(func(_ int, s *goquery.Selection) {
		s.Remove()
	})

	text := doc.Find("body").Text()
	if text == "" {
		text = doc.Text()
	}
	return strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))
}

// CanonicalSkillKey returns a normalized dedup key for skill names.
// "Node.js", "node js" and "NODEJS " all map to the same key.
func CanonicalSkillKey(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '+' || r == '#' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
