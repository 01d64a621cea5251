package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/campusadmin/internal/app/models"
	"golang.org/x/sync/errgroup"
)

// DashboardPreviewSize is how many students and courses the dashboard lists
const DashboardPreviewSize = 5

// Lister fetches a full collection
type Lister[R any] interface {
	List(ctx context.Context) ([]R, error)
}

// DashboardStats are the figures shown on the Dashboard screen
type DashboardStats struct {
	TotalStudents    int
	ActiveCourses    int
	Enrollments      int
	RecentStudents   []models.Student
	AvailableCourses []models.Course
}

// DashboardService aggregates both collections for the dashboard
type DashboardService interface {
	Load(ctx context.Context, students Lister[models.Student], courses Lister[models.Course]) (*DashboardStats, error)
}

type dashboardServiceImpl struct {
	logger zerolog.Logger
}

// NewDashboardService creates a dashboard service
func NewDashboardService(logger zerolog.Logger) DashboardService {
	return &dashboardServiceImpl{logger: logger}
}

// Load fetches students and courses concurrently. If either fetch fails the
// error is logged and empty statistics are returned with it.
func (s *dashboardServiceImpl) Load(ctx context.Context, students Lister[models.Student], courses Lister[models.Course]) (*DashboardStats, error) {
	var (
		studentList []models.Student
		courseList  []models.Course
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := students.List(gctx)
		if err != nil {
			return fmt.Errorf("students: %w", err)
		}
		studentList = items
		return nil
	})
	g.Go(func() error {
		items, err := courses.List(gctx)
		if err != nil {
			return fmt.Errorf("courses: %w", err)
		}
		courseList = items
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error().Err(err).Msg("Error fetching dashboard data")
		return &DashboardStats{}, err
	}

	return &DashboardStats{
		TotalStudents:    len(studentList),
		ActiveCourses:    len(courseList),
		Enrollments:      countEnrolled(studentList),
		RecentStudents:   head(studentList, DashboardPreviewSize),
		AvailableCourses: head(courseList, DashboardPreviewSize),
	}, nil
}

// countEnrolled counts students that carry a course label
func countEnrolled(students []models.Student) int {
	n := 0
	for _, st := range students {
		if strings.TrimSpace(st.Course) != "" {
			n++
		}
	}
	return n
}

func head[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
