package curriculum

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

var frontmatterDelimiter = []byte("---")

// frontmatter is the YAML header of a lesson file.
type frontmatter struct {
	Phase string `yaml:"phase"`
	Title string `yaml:"title"`
	Quiz  string `yaml:"quiz"`
	Day   int    `yaml:"day"`
}

// parseLessonFile splits a lesson file into its frontmatter and body.
// Unlike generic templates, lesson files must start with frontmatter.
func parseLessonFile(content []byte) (frontmatter, []byte, error) {
	var meta frontmatter

	if !bytes.HasPrefix(content, frontmatterDelimiter) {
		return meta, nil, fmt.Errorf("%w: missing opening delimiter", ErrInvalidFrontmatter)
	}

	rest := bytes.TrimLeft(bytes.TrimPrefix(content, frontmatterDelimiter), "\r\n")

	end := bytes.Index(rest, frontmatterDelimiter)
	if end == -1 {
		return meta, nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
	}

	header := rest[:end]
	body := rest[end+len(frontmatterDelimiter):]
	body = bytes.TrimPrefix(body, []byte("\r"))
	body = bytes.TrimPrefix(body, []byte("\n"))

	if len(bytes.TrimSpace(header)) == 0 {
		return meta, nil, fmt.Errorf("%w: empty header", ErrInvalidFrontmatter)
	}

	if err := yaml.Unmarshal(header, &meta); err != nil {
		return meta, nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
	}

	return meta, body, nil
}
