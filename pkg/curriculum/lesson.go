package curriculum

// Lesson is a single day of the course.
// Content and Quiz are pre-authored HTML and are never interpreted.
type Lesson struct {
	Phase   string
	Title   string
	Content string
	Quiz    string
	Day     int
}

func (l Lesson) validate() error {
	if l.Title == "" {
		return ErrInvalidLesson
	}
	if l.Content == "" {
		return ErrInvalidLesson
	}
	return nil
}
