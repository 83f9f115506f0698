package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/linguago/linguago/internal/domain/entities"
)

var ErrCourseNotFound = errors.New("course not found")

// CourseRepository provides access to the static course catalog.
// Courses live in a JSON asset so new languages can be added without
// code changes; live progress is never part of the catalog.
type CourseRepository struct {
	courses []*entities.Course
}

// NewCourseRepository loads the catalog from the given JSON file.
func NewCourseRepository(path string) (*CourseRepository, error) {
	courses, err := loadCourses(path)
	if err != nil {
		return nil, err
	}

	return &CourseRepository{
		courses: courses,
	}, nil
}

// GetByLanguage returns the course for the given language id.
// Unknown ids return ErrCourseNotFound.
func (r *CourseRepository) GetByLanguage(lang entities.Language) (*entities.Course, error) {
	for _, course := range r.courses {
		if course.Language == lang {
			return course, nil
		}
	}

	return nil, ErrCourseNotFound
}

// GetAll returns all courses in catalog order.
func (r *CourseRepository) GetAll() []*entities.Course {
	return r.courses
}

func loadCourses(path string) ([]*entities.Course, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var wrapper struct {
		Courses []*entities.Course `json:"courses"`
	}
	if err = json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal courses JSON: %w", err)
	}

	if len(wrapper.Courses) == 0 {
		return nil, errors.New("course catalog is empty")
	}

	// Progress advances in fixed 20-point steps, which only lines up with
	// exactly five lessons per course.
	for _, course := range wrapper.Courses {
		if _, err := entities.ParseLanguage(string(course.Language)); err != nil {
			return nil, fmt.Errorf("course %q: %w", course.Name, err)
		}
		want := 100 / entities.ProgressPerLesson
		if len(course.Lessons) != want {
			return nil, fmt.Errorf("course %q: expected %d lessons, got %d",
				course.Name, want, len(course.Lessons))
		}
	}

	return wrapper.Courses, nil
}
