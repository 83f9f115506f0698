package entities

import "fmt"

// Language identifies one of the supported course languages.
type Language string

const (
	LanguageEnglish Language = "english"
	LanguageFrench  Language = "french"
	LanguageRussian Language = "russian"
)

// Languages lists the supported course languages in display order.
var Languages = []Language{LanguageEnglish, LanguageFrench, LanguageRussian}

// ParseLanguage validates a language id taken from user input or a route.
func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case LanguageEnglish, LanguageFrench, LanguageRussian:
		return Language(s), nil
	}
	return "", fmt.Errorf("unknown course language %q", s)
}

// Course is a static course descriptor from the catalog. The live progress
// percentage is not part of the descriptor; it is read from the user record
// at render time.
type Course struct {
	Language    Language `json:"language"`    // catalog key, one of the supported languages
	Name        string   `json:"name"`        // display name
	Description string   `json:"description"` // short marketing blurb
	Image       string   `json:"image"`       // cover image path
	Video       string   `json:"video"`       // intro video path
	Color       string   `json:"color"`       // UI color tag
	Lessons     []Lesson `json:"lessons"`     // ordered lesson list
}

// Lesson is one entry of a course's ordered lesson list.
type Lesson struct {
	Title string `json:"title"`
}

// ProgressPerLesson is how much one completed lesson advances the course
// progress percentage. Five lessons cover the full 0-100 range.
const ProgressPerLesson = 20

// LessonStatus is the derived lock state of a lesson.
type LessonStatus int

const (
	LessonCompleted LessonStatus = iota // already finished
	LessonCurrent                       // unlocked and actionable
	LessonLocked                        // not yet reachable
)

func (s LessonStatus) String() string {
	switch s {
	case LessonCompleted:
		return "completed"
	case LessonCurrent:
		return "current"
	case LessonLocked:
		return "locked"
	}
	return "unknown"
}

// LessonStatusAt derives the status of the lesson at 0-based ordinal i for
// the given progress percentage. Progress advances in fixed 20-point steps,
// so the lesson boundary i*20 is compared directly against progress.
func LessonStatusAt(i, progress int) LessonStatus {
	threshold := i * ProgressPerLesson
	switch {
	case threshold < progress:
		return LessonCompleted
	case threshold == progress:
		return LessonCurrent
	default:
		return LessonLocked
	}
}
