package screens

import (
	"github.com/rs/zerolog"
	"github.com/yigit/campusadmin/internal/app/models"
)

// StudentController is the Students screen
type StudentController = Controller[models.Student, models.StudentDraft]

// Students describes the student resource; search covers name, email and course.
var Students = Descriptor[models.Student, models.StudentDraft]{
	Singular: "student",
	Plural:   "students",
	ID:       func(s models.Student) int64 { return s.ID },
	Draft:    func(s models.Student) models.StudentDraft { return s.StudentDraft },
	NewDraft: models.NewStudentDraft,
	Searchable: func(s models.Student) []string {
		return []string{s.Name, s.Email, s.Course}
	},
	Fields: models.StudentFields,
}

// NewStudentController creates the Students screen controller
func NewStudentController(client Client[models.Student, models.StudentDraft], logger zerolog.Logger, opts ...Option) *StudentController {
	return NewController(Students, client, logger, opts...)
}
