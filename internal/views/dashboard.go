package views

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/eduterm/eduterm/internal/api"
	"github.com/eduterm/eduterm/internal/models"
	"github.com/eduterm/eduterm/internal/resource"
	"github.com/eduterm/eduterm/pkg/logger"
	"go.uber.org/zap"
)

// StudentDashboard fetches the profile, the student's enrollments and
// the course catalog in parallel. The three fetches are independent:
// they complete in any order, each into its own slot, and a failed
// enrichment fetch logs and leaves the rest of the data rendering.
type StudentDashboard struct {
	auth    *api.AuthClient
	courses *api.CourseClient

	profile  resource.Resource[*models.User]
	enrolled resource.Resource[[]models.Enrollment]
	catalog  resource.Resource[[]models.Course]
}

func NewStudentDashboard(auth *api.AuthClient, courses *api.CourseClient) *StudentDashboard {
	return &StudentDashboard{auth: auth, courses: courses}
}

func (s *StudentDashboard) Title() string { return "Dashboard" }

func (s *StudentDashboard) Load(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		s.profile.Load(ctx, s.auth.GetStudentProfile)
	}()
	go func() {
		defer wg.Done()
		s.enrolled.Load(ctx, s.courses.MyEnrolledCourses)
	}()
	go func() {
		defer wg.Done()
		s.catalog.Load(ctx, s.courses.AllCourses)
	}()

	wg.Wait()

	for name, err := range map[string]error{
		"profile":  s.profile.Err(),
		"enrolled": s.enrolled.Err(),
		"catalog":  s.catalog.Err(),
	} {
		if err != nil {
			logger.LogError(err, "dashboard fetch failed", zap.String("slot", name))
		}
	}
}

func (s *StudentDashboard) Render(w io.Writer) {
	if user, ok := s.profile.Data(); ok {
		fmt.Fprintf(w, "Welcome, %s\n", user.Name)
	} else if s.profile.Loading() {
		renderLoading(w)
	}

	fmt.Fprintln(w, "-- My courses --")
	switch enrolled, ok := s.enrolled.Data(); {
	case s.enrolled.Loading():
		renderLoading(w)
	case s.enrolled.Err() != nil:
		renderBanner(w, s.enrolled.Err())
	case ok && len(enrolled) == 0:
		fmt.Fprintln(w, "You have not joined any courses yet.")
	case ok:
		for _, e := range enrolled {
			fmt.Fprintf(w, "  %s  %s\n", e.Course.ID, e.Course.Title)
		}
	}

	fmt.Fprintln(w, "-- Catalog --")
	if catalog, ok := s.catalog.Data(); ok {
		fmt.Fprintf(w, "%d courses available\n", len(catalog))
	}
}

// TeacherDashboard fetches the teacher's profile and owned courses.
type TeacherDashboard struct {
	auth    *api.AuthClient
	courses *api.CourseClient

	profile resource.Resource[*models.User]
	mine    resource.Resource[[]models.Course]
}

func NewTeacherDashboard(auth *api.AuthClient, courses *api.CourseClient) *TeacherDashboard {
	return &TeacherDashboard{auth: auth, courses: courses}
}

func (s *TeacherDashboard) Title() string { return "Dashboard" }

func (s *TeacherDashboard) Load(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		s.profile.Load(ctx, s.auth.GetTeacherProfile)
	}()
	go func() {
		defer wg.Done()
		s.mine.Load(ctx, s.courses.MyCourses)
	}()
	wg.Wait()

	if err := s.profile.Err(); err != nil {
		logger.LogError(err, "dashboard fetch failed", zap.String("slot", "profile"))
	}
	if err := s.mine.Err(); err != nil {
		logger.LogError(err, "dashboard fetch failed", zap.String("slot", "my-courses"))
	}
}

func (s *TeacherDashboard) Render(w io.Writer) {
	if user, ok := s.profile.Data(); ok {
		fmt.Fprintf(w, "Welcome, %s\n", user.Name)
	}

	fmt.Fprintln(w, "-- My courses --")
	switch mine, ok := s.mine.Data(); {
	case s.mine.Loading():
		renderLoading(w)
	case s.mine.Err() != nil:
		renderBanner(w, s.mine.Err())
	case ok && len(mine) == 0:
		fmt.Fprintln(w, "You have not created any courses yet.")
	case ok:
		for _, c := range mine {
			visibility := "private"
			if c.IsPublic {
				visibility = "public"
			}
			fmt.Fprintf(w, "  %s  %s (%s)\n", c.ID, c.Title, visibility)
		}
	}
}
