package terminal

import (
	"encoding/base64"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/sonnes/transformime/dom"
)

var (
	scriptTag     = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleTag      = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	htmlComments  = regexp.MustCompile(`(?s)<!--.*?-->`)
	blockElements = regexp.MustCompile(`(?i)</(p|div|h[1-6]|li|tr|table|pre|blockquote|ul|ol)>`)
	brTags        = regexp.MustCompile(`(?i)<br\s*/?>`)
	cellEnd       = regexp.MustCompile(`(?i)</t[dh]>`)
	allTags       = regexp.MustCompile(`<[^>]+>`)
	multiNewlines = regexp.MustCompile(`\n{3,}`)
)

// stripHTML reduces markup to readable text, keeping line structure.
func stripHTML(s string) string {
	s = scriptTag.ReplaceAllString(s, "")
	s = styleTag.ReplaceAllString(s, "")
	s = htmlComments.ReplaceAllString(s, "")
	s = blockElements.ReplaceAllString(s, "\n")
	s = brTags.ReplaceAllString(s, "\n")
	s = cellEnd.ReplaceAllString(s, "\t")
	s = allTags.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	s = multiNewlines.ReplaceAllString(s, "\n\n")
	return strings.Trim(s, "\n")
}

// plainText returns what el shows as text: markup is stripped and images
// are summarized.
func plainText(el *dom.Element) string {
	if el == nil {
		return ""
	}
	if el.Tag == "img" {
		return describeImage(el.GetAttribute("src"))
	}

	var b strings.Builder
	switch {
	case el.InnerHTML != "":
		b.WriteString(stripHTML(string(el.InnerHTML)))
	case el.TextContent != "":
		b.WriteString(el.TextContent)
	}
	for _, c := range el.Children {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(plainText(c))
	}
	return b.String()
}

// describeImage turns a data URI into "[image/png, 1,234 bytes]".
func describeImage(src string) string {
	rest, ok := strings.CutPrefix(src, "data:")
	if !ok {
		return "[image]"
	}
	mimetype, payload, ok := strings.Cut(rest, ";base64,")
	if !ok {
		return fmt.Sprintf("[%s]", mimetype)
	}
	n := base64.StdEncoding.DecodedLen(len(payload)) - strings.Count(payload, "=")
	return fmt.Sprintf("[%s, %s bytes]", mimetype, formatNumber(n))
}
