// Package devapi is an in-memory implementation of the college REST backend.
// It serves local development and the integration tests of the console.
package devapi

import (
	"fmt"
	"sort"
	"sync"

	"github.com/yigit/campusadmin/internal/app/models"
	"github.com/yigit/campusadmin/internal/pkg/apperrors"
	"github.com/yigit/campusadmin/internal/pkg/auth"
)

// collection stores records of one resource keyed by their identifier.
// Identifiers are assigned on create and never reused.
type collection[R any, D any] struct {
	name   string
	items  map[int64]R
	nextID int64
	build  func(id int64, draft D) R
}

func newCollection[R any, D any](name string, build func(int64, D) R) *collection[R, D] {
	return &collection[R, D]{
		name:   name,
		items:  make(map[int64]R),
		nextID: 1,
		build:  build,
	}
}

func (c *collection[R, D]) list() []R {
	ids := make([]int64, 0, len(c.items))
	for id := range c.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]R, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.items[id])
	}
	return out
}

func (c *collection[R, D]) create(draft D) R {
	id := c.nextID
	c.nextID++
	rec := c.build(id, draft)
	c.items[id] = rec
	return rec
}

func (c *collection[R, D]) update(id int64, draft D) (R, error) {
	if _, ok := c.items[id]; !ok {
		var zero R
		return zero, apperrors.NewResourceNotFoundError(fmt.Sprintf("%s %d not found", c.name, id))
	}
	rec := c.build(id, draft)
	c.items[id] = rec
	return rec, nil
}

func (c *collection[R, D]) remove(id int64) error {
	if _, ok := c.items[id]; !ok {
		return apperrors.NewResourceNotFoundError(fmt.Sprintf("%s %d not found", c.name, id))
	}
	delete(c.items, id)
	return nil
}

// account is a staff user able to log in
type account struct {
	user         models.User
	passwordHash string
}

// Store holds the development backend's data. It is safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	students *collection[models.Student, models.StudentDraft]
	courses  *collection[models.Course, models.CourseDraft]
	accounts map[string]account
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		students: newCollection("student", func(id int64, d models.StudentDraft) models.Student {
			return models.Student{ID: id, StudentDraft: d}
		}),
		courses: newCollection("course", func(id int64, d models.CourseDraft) models.Course {
			return models.Course{ID: id, CourseDraft: d}
		}),
		accounts: make(map[string]account),
	}
}

// AddUser registers a staff account, hashing its password
func (s *Store) AddUser(user models.User, password string) error {
	if user.Username == "" {
		return apperrors.NewValidationError(map[string]string{"username": "username is required"})
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[user.Username] = account{user: user, passwordHash: hash}
	return nil
}

// Authenticate checks a username and password. Unknown users and wrong
// passwords are indistinguishable.
func (s *Store) Authenticate(username, password string) (models.User, error) {
	s.mu.RLock()
	acc, ok := s.accounts[username]
	s.mu.RUnlock()

	if !ok || !auth.CheckPassword(acc.passwordHash, password) {
		return models.User{}, apperrors.ErrInvalidCredentials
	}
	return acc.user, nil
}

// ListStudents returns every student ordered by identifier
func (s *Store) ListStudents() []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.students.list()
}

// CreateStudent stores a new student and assigns its identifier
func (s *Store) CreateStudent(draft models.StudentDraft) models.Student {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.students.create(draft)
}

// UpdateStudent replaces student id
func (s *Store) UpdateStudent(id int64, draft models.StudentDraft) (models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.students.update(id, draft)
}

// DeleteStudent removes student id
func (s *Store) DeleteStudent(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.students.remove(id)
}

// ListCourses returns every course ordered by identifier
func (s *Store) ListCourses() []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.courses.list()
}

// CreateCourse stores a new course and assigns its identifier
func (s *Store) CreateCourse(draft models.CourseDraft) models.Course {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.courses.create(draft)
}

// UpdateCourse replaces course id
func (s *Store) UpdateCourse(id int64, draft models.CourseDraft) (models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.courses.update(id, draft)
}

// DeleteCourse removes course id
func (s *Store) DeleteCourse(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.courses.remove(id)
}
