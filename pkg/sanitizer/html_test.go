package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/dailylesson/pkg/sanitizer"
)

func TestStripHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "strips script injection",
			input:    `<p>Hello</p><script>alert('xss')</script>`,
			expected: "Hello",
		},
		{
			name:     "strips all HTML tags",
			input:    `<p>Hello <strong>world</strong></p>`,
			expected: "Hello world",
		},
		{
			name:     "strips style tags",
			input:    `Hello <STYLE>.XSS{background-image:url("javascript:alert('XSS')");}</STYLE>World`,
			expected: "Hello World",
		},
		{
			name:     "handles empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.StripHTML(tt.input))
		})
	}
}

func TestPlainText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "block elements end lines",
			input:    `<h3>Title</h3><p>First</p><p>Second</p>`,
			expected: "Title\nFirst\nSecond",
		},
		{
			name:     "list items on separate lines",
			input:    "<ol>\n    <li>One?</li>\n    <li>Two?</li>\n</ol>",
			expected: "One?\nTwo?",
		},
		{
			name:     "decodes entities",
			input:    `<p>a &amp; b &lt;c&gt; it's</p>`,
			expected: "a & b <c> it's",
		},
		{
			name:     "collapses blank lines",
			input:    "<p>one</p>\n\n\n\n<p>two</p>",
			expected: "one\n\ntwo",
		},
		{
			name:     "drops inline styling",
			input:    `<pre style="background:#1e1e1e;"><span style="color:#569cd6;">function</span> add(a, b) {}</pre>`,
			expected: "function add(a, b) {}",
		},
		{
			name:     "br breaks line",
			input:    `line one<br>line two<br/>line three`,
			expected: "line one\nline two\nline three",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.PlainText(tt.input))
		})
	}
}
