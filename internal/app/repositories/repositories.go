package repositories

import (
	"github.com/yigit/campusadmin/internal/app/models"
)

// StudentRepository is the Resource Client of the students collection
type StudentRepository = ResourceRepository[models.Student, models.StudentDraft]

// CourseRepository is the Resource Client of the courses collection
type CourseRepository = ResourceRepository[models.Course, models.CourseDraft]

// Paths locates the collections and the login endpoint under the base URL
type Paths struct {
	Students string
	Courses  string
	Login    string
}

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository *StudentRepository
	CourseRepository  *CourseRepository
	AuthRepository    *AuthRepository
}

// NewRepositories initializes all repositories on top of one backend client
func NewRepositories(client *Client, paths Paths) *Repositories {
	return &Repositories{
		StudentRepository: NewResourceRepository[models.Student, models.StudentDraft](client, paths.Students),
		CourseRepository:  NewResourceRepository[models.Course, models.CourseDraft](client, paths.Courses),
		AuthRepository:    NewAuthRepository(client, paths.Login),
	}
}

// WithToken returns the resource repositories bound to a session's token.
// The auth repository needs no token and is shared.
func (r *Repositories) WithToken(token string) *Repositories {
	return &Repositories{
		StudentRepository: r.StudentRepository.WithToken(token),
		CourseRepository:  r.CourseRepository.WithToken(token),
		AuthRepository:    r.AuthRepository,
	}
}
