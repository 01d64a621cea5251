package screens

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/yigit/campusadmin/internal/app/models"
	"github.com/yigit/campusadmin/internal/pkg/apperrors"
)

// fakeStudents is an in-memory Resource Client that counts calls
type fakeStudents struct {
	items  []models.Student
	nextID int64

	listErr  error
	writeErr error

	lists, creates, updates, deletes int
}

func newFakeStudents(items ...models.Student) *fakeStudents {
	f := &fakeStudents{nextID: 1}
	for _, it := range items {
		f.items = append(f.items, it)
		if it.ID >= f.nextID {
			f.nextID = it.ID + 1
		}
	}
	return f
}

func (f *fakeStudents) List(context.Context) ([]models.Student, error) {
	f.lists++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.Student(nil), f.items...), nil
}

func (f *fakeStudents) Create(_ context.Context, d models.StudentDraft) (models.Student, error) {
	f.creates++
	if f.writeErr != nil {
		return models.Student{}, f.writeErr
	}
	s := models.Student{ID: f.nextID, StudentDraft: d}
	f.nextID++
	f.items = append(f.items, s)
	return s, nil
}

func (f *fakeStudents) Update(_ context.Context, id int64, d models.StudentDraft) (models.Student, error) {
	f.updates++
	if f.writeErr != nil {
		return models.Student{}, f.writeErr
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].StudentDraft = d
			return f.items[i], nil
		}
	}
	return models.Student{}, apperrors.ErrResourceNotFound
}

func (f *fakeStudents) Delete(_ context.Context, id int64) error {
	f.deletes++
	if f.writeErr != nil {
		return f.writeErr
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrResourceNotFound
}

func validDraft(name string) models.StudentDraft {
	return models.StudentDraft{
		Name:           name,
		Email:          "student@college.edu",
		Phone:          "555-0100",
		Course:         "Math",
		EnrollmentDate: "2024-09-01",
	}
}

func seeded(n int) *fakeStudents {
	f := newFakeStudents()
	for i := 0; i < n; i++ {
		_, _ = f.Create(context.Background(), validDraft("Student"))
	}
	f.creates = 0
	return f
}

var fixedNow = func() time.Time { return time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC) }

func TestActivateFetchesOnce(t *testing.T) {
	client := seeded(2)
	c := NewStudentController(client, zerolog.Nop())
	require.True(t, c.Loading)

	c.Activate(context.Background())
	c.Activate(context.Background())

	require.False(t, c.Loading)
	require.Len(t, c.Items, 2)
	require.Equal(t, 1, client.lists)
}

func TestActivateFailureLeavesListEmptyWithoutAlert(t *testing.T) {
	client := newFakeStudents()
	client.listErr = errors.New("connection refused")
	c := NewStudentController(client, zerolog.Nop())

	c.Activate(context.Background())

	require.False(t, c.Loading)
	require.Empty(t, c.Items)
	require.Empty(t, c.Alert)
}

func TestOpenAddUsesTodayAsEnrollmentDate(t *testing.T) {
	c := NewStudentController(newFakeStudents(), zerolog.Nop(), WithClock(fixedNow))

	c.OpenAdd()

	require.True(t, c.ModalOpen())
	require.False(t, c.Editing())
	require.Equal(t, models.StudentDraft{EnrollmentDate: "2026-10-14"}, *c.Draft)
}

func TestOpenEditSeedsEveryField(t *testing.T) {
	rec := models.Student{ID: 7, StudentDraft: models.StudentDraft{
		Name: "Alice", Email: "alice@college.edu", Phone: "1", Course: "Math",
		EnrollmentDate: "2024-09-01", RollNumber: "R7", Address: "Elm St",
		DateOfBirth: "2005-01-02", Gender: "Female",
	}}
	c := NewStudentController(newFakeStudents(rec), zerolog.Nop())
	c.Activate(context.Background())

	require.NoError(t, c.OpenEdit(7))
	require.True(t, c.Editing())
	require.Equal(t, int64(7), c.EditingID)
	require.Equal(t, rec.StudentDraft, *c.Draft)

	err := c.OpenEdit(99)
	require.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestSubmitCreateRoundTrip(t *testing.T) {
	client := newFakeStudents()
	c := NewStudentController(client, zerolog.Nop(), WithClock(fixedNow))
	c.Activate(context.Background())

	c.OpenAdd()
	draft := validDraft("Alice")
	draft.Address = "12 Elm Street"
	require.NoError(t, c.BindForm(url.Values{
		"name":           {draft.Name},
		"email":          {draft.Email},
		"phone":          {draft.Phone},
		"course":         {draft.Course},
		"enrollmentDate": {draft.EnrollmentDate},
		"address":        {draft.Address},
	}))

	require.NoError(t, c.Submit(context.Background()))

	require.False(t, c.ModalOpen())
	require.Empty(t, c.Alert)
	require.Equal(t, 1, client.creates)
	require.Equal(t, 2, client.lists, "a successful write refetches the collection")
	require.Len(t, c.Items, 1)
	require.NotZero(t, c.Items[0].ID)
	require.Equal(t, draft, c.Items[0].StudentDraft)
}

func TestSubmitEditChangesOnlyEmail(t *testing.T) {
	client := seeded(3)
	before, _ := client.List(context.Background())
	c := NewStudentController(client, zerolog.Nop())
	c.Activate(context.Background())

	require.NoError(t, c.OpenEdit(3))
	require.NoError(t, c.SetField("email", "new@college.edu"))
	require.NoError(t, c.Submit(context.Background()))

	require.Equal(t, 1, client.updates)
	rec, ok := c.Find(3)
	require.True(t, ok)
	want := before[2]
	want.Email = "new@college.edu"
	require.Equal(t, want, rec)
	require.Equal(t, before[:2], c.Items[:2])
}

func TestSubmitEditKeepsGenderOutsideTheDropdown(t *testing.T) {
	client := seeded(3)
	client.items[2].Gender = "male"
	c := NewStudentController(client, zerolog.Nop())
	c.Activate(context.Background())

	require.NoError(t, c.OpenEdit(3))
	require.NoError(t, c.SetField("email", "new@college.edu"))
	require.NoError(t, c.Submit(context.Background()))

	require.Equal(t, 1, client.updates)
	require.Empty(t, c.FieldErrors)
	rec, ok := c.Find(3)
	require.True(t, ok)
	require.Equal(t, "male", rec.Gender)
	require.Equal(t, "new@college.edu", rec.Email)
}

func TestSubmitFailureKeepsModalAndDraft(t *testing.T) {
	client := newFakeStudents()
	client.writeErr = apperrors.NewCustomError(apperrors.ErrBackendUnavailable, "boom")
	c := NewStudentController(client, zerolog.Nop())
	c.Activate(context.Background())

	c.OpenAdd()
	draft := validDraft("Alice")
	*c.Draft = draft

	err := c.Submit(context.Background())
	require.ErrorIs(t, err, apperrors.ErrBackendUnavailable)
	require.True(t, c.ModalOpen())
	require.Equal(t, draft, *c.Draft)
	require.Equal(t, "Error saving student. Please check all fields.", c.Alert)
	require.Equal(t, 1, client.lists, "a failed write does not refetch")
}

func TestSubmitRejectsInvalidDraftWithoutNetworkCall(t *testing.T) {
	client := newFakeStudents()
	c := NewStudentController(client, zerolog.Nop())
	c.OpenAdd()
	require.NoError(t, c.SetField("name", "Alice"))
	require.NoError(t, c.SetField("email", "not-an-email"))

	err := c.Submit(context.Background())
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	require.Zero(t, client.creates)
	require.True(t, c.ModalOpen())
	require.Contains(t, c.FieldErrors, "email")
	require.Contains(t, c.FieldErrors, "phone")
	require.NotEmpty(t, c.Alert)
}

func TestSetFieldRejectsUnknownAndBadlyTypedInputs(t *testing.T) {
	c := NewCourseController(nil, zerolog.Nop())

	require.Error(t, c.SetField("name", "x"), "no form open")

	c.OpenAdd()
	require.ErrorIs(t, c.SetField("colour", "red"), apperrors.ErrUnknownField)

	err := c.SetField("credits", "four")
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	require.Contains(t, c.FieldErrors, "credits")

	require.NoError(t, c.SetField("credits", "4"))
	require.NotContains(t, c.FieldErrors, "credits")
	require.Equal(t, 4, c.Draft.Credits)
}

func TestDeleteAfterConfirmationRemovesOneRecord(t *testing.T) {
	client := seeded(6)
	c := NewStudentController(client, zerolog.Nop())
	c.Activate(context.Background())

	var prompt string
	deleted, err := c.Delete(context.Background(), 5, func(p string) bool {
		prompt = p
		return true
	})
	require.NoError(t, err)
	require.True(t, deleted)
	require.Equal(t, "Are you sure you want to delete this student?", prompt)
	require.Len(t, c.Items, 5)
	_, found := c.Find(5)
	require.False(t, found)
	require.Equal(t, 2, client.lists)
}

func TestDeleteDeclinedIssuesNoCall(t *testing.T) {
	client := seeded(6)
	c := NewStudentController(client, zerolog.Nop())
	c.Activate(context.Background())

	deleted, err := c.Delete(context.Background(), 5, func(string) bool { return false })
	require.NoError(t, err)
	require.False(t, deleted)
	require.Zero(t, client.deletes)
	require.Equal(t, 1, client.lists)
	require.Len(t, c.Items, 6)
}

func TestDeleteFailureSetsAlert(t *testing.T) {
	client := seeded(1)
	client.writeErr = errors.New("server error")
	c := NewStudentController(client, zerolog.Nop())
	c.Activate(context.Background())

	deleted, err := c.Delete(context.Background(), 1, func(string) bool { return true })
	require.Error(t, err)
	require.True(t, deleted)
	require.Equal(t, "Error deleting student.", c.Alert)
	require.Len(t, c.Items, 1)
}

func TestReconcileApplySkipsRefetch(t *testing.T) {
	client := seeded(2)
	c := NewStudentController(client, zerolog.Nop(), WithReconcile(ReconcileApply))
	c.Activate(context.Background())

	c.OpenAdd()
	*c.Draft = validDraft("Zed")
	require.NoError(t, c.Submit(context.Background()))
	require.Len(t, c.Items, 3)
	require.Equal(t, "Zed", c.Items[2].Name)

	require.NoError(t, c.OpenEdit(1))
	c.Draft.Course = "Physics"
	require.NoError(t, c.Submit(context.Background()))
	require.Equal(t, "Physics", c.Items[0].Course)

	_, err := c.Delete(context.Background(), 2, func(string) bool { return true })
	require.NoError(t, err)
	require.Len(t, c.Items, 2)

	require.Equal(t, 1, client.lists)
	got, _ := client.List(context.Background())
	require.Equal(t, got, c.Items)
}

func TestFilteredFollowsItemsAndQuery(t *testing.T) {
	client := newFakeStudents(
		models.Student{ID: 1, StudentDraft: models.StudentDraft{Name: "Alice", Course: "Math"}},
		models.Student{ID: 2, StudentDraft: models.StudentDraft{Name: "Bob", Course: "Physics"}},
	)
	c := NewStudentController(client, zerolog.Nop())
	c.Activate(context.Background())

	require.Len(t, c.Filtered(), 2)
	c.SetQuery("math")
	require.Len(t, c.Filtered(), 1)
	require.Equal(t, "Alice", c.Filtered()[0].Name)

	c.SetQuery("")
	require.Equal(t, c.Items, c.Filtered())
}
