package seed

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yigit/campusadmin/internal/devapi"
	"github.com/yigit/campusadmin/internal/pkg/auth"
)

func TestCreateDefaultData(t *testing.T) {
	auth.BcryptCost = bcrypt.MinCost
	store := devapi.NewStore()

	err := CreateDefaultData(store, Options{AdminUsername: "admin", AdminPassword: "admin123", SampleRecords: true}, zerolog.Nop())
	require.NoError(t, err)

	user, err := store.Authenticate("admin", "admin123")
	require.NoError(t, err)
	require.Equal(t, "admin@college.edu", user.Email)
	require.Len(t, store.ListStudents(), len(DefaultStudents()))
	require.Len(t, store.ListCourses(), len(DefaultCourses()))
}

func TestCreateDefaultDataReportsBadAdmin(t *testing.T) {
	store := devapi.NewStore()

	err := CreateDefaultData(store, Options{}, zerolog.Nop())
	require.Error(t, err)
	require.Empty(t, store.ListStudents())
}
