// Package curriculum holds the fixed, ordered set of lessons a course is made of.
//
// A Curriculum is built once from lesson files and never mutated afterwards.
// Position i in the curriculum always holds the lesson for day i+1:
//
//	c, err := curriculum.Load(content.FS, "lessons")
//	if err != nil {
//		return err
//	}
//	first, _ := c.At(0) // day 1
//
// # Lesson files
//
// Each lesson is a file with YAML frontmatter followed by the lesson body:
//
//	---
//	day: 1
//	phase: "Phase 1: Engine Internals"
//	title: "How the V8 Engine Works"
//	quiz: |
//	  <ol><li>...</li></ol>
//	---
//	<h3>JavaScript is NOT interpreted</h3>
//
// Bodies of .html files are kept as-is. Bodies of .md files are converted to
// HTML with goldmark; raw HTML is passed through and the
// [!button|Label](https://example.com) syntax renders an email-safe button.
//
// # Errors
//
//   - ErrEmpty: no lessons found
//   - ErrDayOrder: days are not 1..N in order
//   - ErrInvalidFrontmatter: frontmatter missing or malformed
//   - ErrInvalidLesson: a lesson has no title or content
package curriculum
