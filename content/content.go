// Package content embeds the JavaScript deep-dive course: 30 lessons in six phases.
package content

import "embed"

// LessonsDir is the directory inside FS holding the lesson files.
const LessonsDir = "lessons"

// FS holds the lesson files.
//
//go:embed lessons/*.html
var FS embed.FS
