package screens

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/campusadmin/internal/app/models"
)

// CourseController is the Courses screen
type CourseController = Controller[models.Course, models.CourseDraft]

// Courses describes the course resource; search covers name, code and department.
var Courses = Descriptor[models.Course, models.CourseDraft]{
	Singular: "course",
	Plural:   "courses",
	ID:       func(c models.Course) int64 { return c.ID },
	Draft:    func(c models.Course) models.CourseDraft { return c.CourseDraft },
	NewDraft: func(time.Time) models.CourseDraft { return models.NewCourseDraft() },
	Searchable: func(c models.Course) []string {
		return []string{c.Name, c.CourseCode, c.Department}
	},
	Fields: models.CourseFields,
}

// NewCourseController creates the Courses screen controller
func NewCourseController(client Client[models.Course, models.CourseDraft], logger zerolog.Logger, opts ...Option) *CourseController {
	return NewController(Courses, client, logger, opts...)
}
