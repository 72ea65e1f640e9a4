// Package sanitizer turns lesson HTML into plain text for the text/plain part of an email.
package sanitizer

import (
	"html"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	initOnce     sync.Once

	// Block-level closing tags that should end a line in plain text.
	blockBreak = regexp.MustCompile(`(?i)</(p|div|h[1-6]|li|pre|ol|ul|tr|blockquote)>|<br\s*/?>`)
)

func initPolicies() {
	initOnce.Do(func() {
		// StrictPolicy strips ALL HTML, returns plain text
		strictPolicy = bluemonday.StrictPolicy()
	})
}

// StripHTML removes all markup and returns the remaining text, still HTML-escaped.
func StripHTML(s string) string {
	initPolicies()
	return strictPolicy.Sanitize(s)
}

// PlainText converts authored HTML into readable plain text.
// Block elements end a line, entities are decoded, lines are trimmed and
// runs of blank lines collapse to a single blank line.
func PlainText(s string) string {
	if s == "" {
		return ""
	}

	text := html.UnescapeString(StripHTML(blockBreak.ReplaceAllString(s, "$0\n")))

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	empties := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			empties++
			continue
		}
		// A single empty line is the artifact of a block break; two or more were authored.
		if empties >= 2 && len(out) > 0 {
			out = append(out, "")
		}
		empties = 0
		out = append(out, line)
	}

	return strings.TrimSpace(strings.Join(out, "\n"))
}
