package models

import (
	"fmt"
	"strconv"
	"strings"
)

// CourseDraft holds every course field except the backend-assigned identifier.
type CourseDraft struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Duration    string `json:"duration" validate:"required"`
	Credits     int    `json:"credits" validate:"min=0"`
	CourseCode  string `json:"courseCode"`
	Department  string `json:"department"`
}

// Course is a course record as returned by the backend
type Course struct {
	ID int64 `json:"id"`
	CourseDraft
}

// NewCourseDraft returns the empty form used by "Add Course"
func NewCourseDraft() CourseDraft {
	return CourseDraft{}
}

// CourseFields maps form input names onto typed setters. Credits is a number
// input, so a non-integer value is a type error.
var CourseFields = FieldSet[CourseDraft]{
	"name":        func(d *CourseDraft, v string) error { d.Name = v; return nil },
	"description": func(d *CourseDraft, v string) error { d.Description = v; return nil },
	"duration":    func(d *CourseDraft, v string) error { d.Duration = v; return nil },
	"credits": func(d *CourseDraft, v string) error {
		v = strings.TrimSpace(v)
		if v == "" {
			return fmt.Errorf("credits is required")
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("credits must be a whole number")
		}
		d.Credits = n
		return nil
	},
	"courseCode": func(d *CourseDraft, v string) error { d.CourseCode = v; return nil },
	"department": func(d *CourseDraft, v string) error { d.Department = v; return nil },
}
