package views

import (
	"context"
	"fmt"
	"io"

	"github.com/eduterm/eduterm/internal/api"
	"github.com/eduterm/eduterm/internal/models"
	"github.com/eduterm/eduterm/internal/resource"
	"github.com/eduterm/eduterm/pkg/logger"
	"go.uber.org/zap"
)

// StudentCoursePage is the read-only course view for an enrolled
// student: course details, documents, and the teacher's name as a
// background enrichment. An enrichment failure logs and leaves the
// primary view rendering with partial data.
type StudentCoursePage struct {
	courses  *api.CourseClient
	auth     *api.AuthClient
	courseID string

	course  resource.Resource[*models.Course]
	docs    resource.Resource[[]models.Document]
	teacher resource.Resource[*models.User]
}

func NewStudentCoursePage(courses *api.CourseClient, auth *api.AuthClient, courseID string) *StudentCoursePage {
	return &StudentCoursePage{courses: courses, auth: auth, courseID: courseID}
}

func (s *StudentCoursePage) Title() string { return "Course" }

func (s *StudentCoursePage) Load(ctx context.Context) {
	s.course.Load(ctx, func(ctx context.Context) (*models.Course, error) {
		return s.courses.CourseByID(ctx, s.courseID)
	})
	s.docs.Load(ctx, func(ctx context.Context) ([]models.Document, error) {
		return s.courses.ListDocuments(ctx, s.courseID)
	})

	course, ok := s.course.Data()
	if !ok || course.TeacherID == "" {
		return
	}
	s.teacher.Load(ctx, func(ctx context.Context) (*models.User, error) {
		return s.auth.GetTeacherByID(ctx, course.TeacherID)
	})
	if err := s.teacher.Err(); err != nil {
		logger.LogError(err, "teacher enrichment failed",
			zap.String("course_id", s.courseID),
			zap.String("teacher_id", course.TeacherID))
	}
}

func (s *StudentCoursePage) Render(w io.Writer) {
	switch course, ok := s.course.Data(); {
	case s.course.Loading():
		renderLoading(w)
	case s.course.Err() != nil:
		renderBanner(w, s.course.Err())
	case ok:
		fmt.Fprintf(w, "%s\n%s\n", course.Title, course.Description)
		if teacher, ok := s.teacher.Data(); ok {
			fmt.Fprintf(w, "Taught by %s\n", teacher.Name)
		}
	}

	if docs, ok := s.docs.Data(); ok {
		fmt.Fprintf(w, "-- Documents (%d) --\n", len(docs))
		for _, d := range docs {
			fmt.Fprintf(w, "  %s  %s\n", d.Name, d.URL)
		}
	}
}
