package devapi

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yigit/campusadmin/internal/app/models"
	"github.com/yigit/campusadmin/internal/pkg/apperrors"
	"github.com/yigit/campusadmin/internal/pkg/auth"
)

func TestStoreAssignsIdentifiersInOrder(t *testing.T) {
	s := NewStore()

	a := s.CreateStudent(models.StudentDraft{Name: "Alice"})
	b := s.CreateStudent(models.StudentDraft{Name: "Bob"})
	require.Equal(t, int64(1), a.ID)
	require.Equal(t, int64(2), b.ID)

	require.NoError(t, s.DeleteStudent(b.ID))
	c := s.CreateStudent(models.StudentDraft{Name: "Carol"})
	require.Equal(t, int64(3), c.ID, "identifiers are never reused")

	require.Equal(t, []models.Student{a, c}, s.ListStudents())
}

func TestStoreUpdateAndDeleteMissing(t *testing.T) {
	s := NewStore()
	course := s.CreateCourse(models.CourseDraft{Name: "Math", Credits: 4})

	updated, err := s.UpdateCourse(course.ID, models.CourseDraft{Name: "Mathematics", Credits: 6})
	require.NoError(t, err)
	require.Equal(t, course.ID, updated.ID)
	require.Equal(t, []models.Course{updated}, s.ListCourses())

	_, err = s.UpdateCourse(99, models.CourseDraft{})
	require.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	require.ErrorIs(t, s.DeleteCourse(99), apperrors.ErrResourceNotFound)
	require.ErrorIs(t, s.DeleteStudent(1), apperrors.ErrResourceNotFound)
}

func TestStoreAuthenticate(t *testing.T) {
	auth.BcryptCost = bcrypt.MinCost
	s := NewStore()
	require.NoError(t, s.AddUser(models.User{Username: "admin", Role: "Admin"}, "admin123"))
	require.Error(t, s.AddUser(models.User{}, "x"))

	user, err := s.Authenticate("admin", "admin123")
	require.NoError(t, err)
	require.Equal(t, "Admin", user.Role)

	_, err = s.Authenticate("admin", "wrong")
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	_, err = s.Authenticate("ghost", "admin123")
	require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
