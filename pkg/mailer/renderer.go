package mailer

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/dmitrymomot/dailylesson/pkg/curriculum"
	"github.com/dmitrymomot/dailylesson/pkg/sanitizer"
)

//go:embed layouts/lesson.html
var layouts embed.FS

// Document is a rendered lesson email.
type Document struct {
	Subject string
	HTML    string
	Text    string
	Footer  string
	Day     int
	Total   int
}

// Renderer turns a lesson into a Document using a fixed layout.
// It is safe for concurrent use and has no side effects.
type Renderer struct {
	layout *template.Template
	config Config
}

// layoutData is what the layout template sees.
// Content and Quiz are trusted authored markup and are inserted verbatim.
type layoutData struct {
	Heading    string
	Phase      string
	Title      string
	Content    template.HTML
	Quiz       template.HTML
	Footer     string
	FooterNote string
}

// NewRenderer parses the embedded lesson layout.
func NewRenderer(cfg Config) (*Renderer, error) {
	layout, err := template.ParseFS(layouts, "layouts/lesson.html")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse layout: %v", ErrRenderFailed, err)
	}
	return &Renderer{layout: layout, config: cfg}, nil
}

// Footer returns the progress line for a zero-based index.
func Footer(index, total int) string {
	return fmt.Sprintf("Day %d of %d", index+1, total)
}

// Subject returns the email subject for a lesson.
func (r *Renderer) Subject(lesson curriculum.Lesson) string {
	if r.config.SubjectPrefix == "" {
		return lesson.Title
	}
	return r.config.SubjectPrefix + " — " + lesson.Title
}

// Render embeds the lesson into the layout.
// index is zero-based; total is the curriculum length.
func (r *Renderer) Render(lesson curriculum.Lesson, index, total int) (*Document, error) {
	footer := Footer(index, total)

	var buf bytes.Buffer
	if err := r.layout.Execute(&buf, layoutData{
		Heading:    r.config.Heading,
		Phase:      lesson.Phase,
		Title:      lesson.Title,
		Content:    template.HTML(lesson.Content), //nolint:gosec // authored content
		Quiz:       template.HTML(lesson.Quiz),    //nolint:gosec // authored content
		Footer:     footer,
		FooterNote: r.config.FooterNote,
	}); err != nil {
		return nil, fmt.Errorf("%w: failed to execute layout: %v", ErrRenderFailed, err)
	}

	return &Document{
		Subject: r.Subject(lesson),
		HTML:    buf.String(),
		Text:    r.plainText(lesson, footer),
		Footer:  footer,
		Day:     index + 1,
		Total:   total,
	}, nil
}

func (r *Renderer) plainText(lesson curriculum.Lesson, footer string) string {
	var b strings.Builder

	b.WriteString(lesson.Title)
	b.WriteString("\n")
	if lesson.Phase != "" {
		b.WriteString(lesson.Phase)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(sanitizer.PlainText(lesson.Content))

	if quiz := sanitizer.PlainText(lesson.Quiz); quiz != "" {
		b.WriteString("\n\nDaily Quiz\n")
		b.WriteString(quiz)
	}

	b.WriteString("\n\n")
	b.WriteString(footer)
	b.WriteString("\n")

	return b.String()
}
