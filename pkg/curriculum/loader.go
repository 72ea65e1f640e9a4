package curriculum

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
)

// Load reads every .html and .md lesson file in dir and builds a Curriculum.
// Lessons are ordered by the day in their frontmatter, not by file name.
func Load(fsys fs.FS, dir string) (*Curriculum, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Join(ErrRead, err)
	}

	md := newMarkdown()
	lessons := make([]Lesson, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := strings.ToLower(path.Ext(entry.Name()))
		if ext != ".html" && ext != ".md" {
			continue
		}

		name := path.Join(dir, entry.Name())
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, errors.Join(ErrRead, err)
		}

		meta, body, err := parseLessonFile(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		content := string(bytes.TrimSpace(body))
		if ext == ".md" {
			var buf bytes.Buffer
			if err := md.Convert(body, &buf); err != nil {
				return nil, fmt.Errorf("%s: %w: %v", name, ErrInvalidLesson, err)
			}
			content = buf.String()
		}

		lessons = append(lessons, Lesson{
			Day:     meta.Day,
			Phase:   meta.Phase,
			Title:   meta.Title,
			Content: content,
			Quiz:    strings.TrimSpace(meta.Quiz),
		})
	}

	slices.SortStableFunc(lessons, func(a, b Lesson) int {
		return cmp.Compare(a.Day, b.Day)
	})

	return New(lessons)
}
