package views

import (
	"context"
	"fmt"
	"io"

	"github.com/eduterm/eduterm/internal/api"
	"github.com/eduterm/eduterm/internal/forms"
	"github.com/eduterm/eduterm/internal/models"
	"github.com/eduterm/eduterm/internal/resource"
)

// CatalogScreen lists all visible courses; students join from here.
type CatalogScreen struct {
	courses *api.CourseClient

	catalog resource.Resource[[]models.Course]
	joinErr error
	joined  map[string]bool
}

func NewCatalogScreen(courses *api.CourseClient) *CatalogScreen {
	return &CatalogScreen{courses: courses, joined: map[string]bool{}}
}

func (s *CatalogScreen) Title() string { return "Courses" }

func (s *CatalogScreen) Load(ctx context.Context) {
	s.catalog.Load(ctx, s.courses.AllCourses)
}

func (s *CatalogScreen) Join(ctx context.Context, courseID string) error {
	if err := s.courses.JoinCourse(ctx, courseID); err != nil {
		s.joinErr = err
		return err
	}
	s.joined[courseID] = true
	s.joinErr = nil
	return nil
}

func (s *CatalogScreen) Render(w io.Writer) {
	if s.joinErr != nil {
		renderBanner(w, s.joinErr)
	}
	switch catalog, ok := s.catalog.Data(); {
	case s.catalog.Loading():
		renderLoading(w)
	case s.catalog.Err() != nil:
		renderBanner(w, s.catalog.Err())
	case ok && len(catalog) == 0:
		fmt.Fprintln(w, "No courses available yet.")
	case ok:
		for _, c := range catalog {
			mark := " "
			if s.joined[c.ID] {
				mark = "*"
			}
			fmt.Fprintf(w, "%s %s  %s\n", mark, c.ID, c.Title)
		}
	}
}

// EnrolledScreen lists the student's enrollments.
type EnrolledScreen struct {
	courses *api.CourseClient

	enrolled resource.Resource[[]models.Enrollment]
}

func NewEnrolledScreen(courses *api.CourseClient) *EnrolledScreen {
	return &EnrolledScreen{courses: courses}
}

func (s *EnrolledScreen) Title() string { return "My Enrolled Courses" }

func (s *EnrolledScreen) Load(ctx context.Context) {
	s.enrolled.Load(ctx, s.courses.MyEnrolledCourses)
}

func (s *EnrolledScreen) Render(w io.Writer) {
	switch enrolled, ok := s.enrolled.Data(); {
	case s.enrolled.Loading():
		renderLoading(w)
	case s.enrolled.Err() != nil:
		renderBanner(w, s.enrolled.Err())
	case ok && len(enrolled) == 0:
		fmt.Fprintln(w, "You have not joined any courses yet.")
	case ok:
		for _, e := range enrolled {
			fmt.Fprintf(w, "%s  %s\n", e.Course.ID, e.Course.Title)
		}
	}
}

// CreateCourseScreen creates a new course (teacher only route).
type CreateCourseScreen struct {
	courses *api.CourseClient

	Form    models.CreateCourseRequest
	created *models.Course
	err     error
}

func NewCreateCourseScreen(courses *api.CourseClient) *CreateCourseScreen {
	return &CreateCourseScreen{courses: courses}
}

func (s *CreateCourseScreen) Title() string { return "Create Course" }

func (s *CreateCourseScreen) CanSubmit() bool { return forms.Valid(s.Form) }

func (s *CreateCourseScreen) Submit(ctx context.Context) error {
	if fields := forms.Check(s.Form); len(fields) > 0 {
		return fmt.Errorf("form incomplete: %s", forms.Summary(fields))
	}
	course, err := s.courses.CreateCourse(ctx, s.Form)
	if err != nil {
		s.err = err
		return err
	}
	s.created = course
	s.err = nil
	return nil
}

func (s *CreateCourseScreen) Render(w io.Writer) {
	if s.err != nil {
		renderBanner(w, s.err)
	}
	if s.created != nil {
		fmt.Fprintf(w, "Course %q created with id %s.\n", s.created.Title, s.created.ID)
		return
	}
	fmt.Fprintln(w, "Enter a title and description for the new course.")
}

// MyCoursesScreen lists the teacher's own courses.
type MyCoursesScreen struct {
	courses *api.CourseClient

	mine resource.Resource[[]models.Course]
}

func NewMyCoursesScreen(courses *api.CourseClient) *MyCoursesScreen {
	return &MyCoursesScreen{courses: courses}
}

func (s *MyCoursesScreen) Title() string { return "My Courses" }

func (s *MyCoursesScreen) Load(ctx context.Context) {
	s.mine.Load(ctx, s.courses.MyCourses)
}

func (s *MyCoursesScreen) Render(w io.Writer) {
	switch mine, ok := s.mine.Data(); {
	case s.mine.Loading():
		renderLoading(w)
	case s.mine.Err() != nil:
		renderBanner(w, s.mine.Err())
	case ok && len(mine) == 0:
		fmt.Fprintln(w, "You have not created any courses yet.")
	case ok:
		for _, c := range mine {
			fmt.Fprintf(w, "%s  %s\n", c.ID, c.Title)
		}
	}
}

// CoursePage is the teacher's management screen for a single course:
// visibility toggle, deletion, enrollment management.
type CoursePage struct {
	courses  *api.CourseClient
	courseID string

	course   resource.Resource[*models.Course]
	students resource.Resource[[]models.User]
	deleted  bool
	err      error
}

func NewCoursePage(courses *api.CourseClient, courseID string) *CoursePage {
	return &CoursePage{courses: courses, courseID: courseID}
}

func (s *CoursePage) Title() string { return "Course" }

func (s *CoursePage) Load(ctx context.Context) {
	s.course.Load(ctx, func(ctx context.Context) (*models.Course, error) {
		return s.courses.CourseByID(ctx, s.courseID)
	})
	s.students.Load(ctx, func(ctx context.Context) ([]models.User, error) {
		return s.courses.EnrolledStudents(ctx, s.courseID)
	})
}

// ToggleVisibility flips isPublic and stores the backend's updated
// course record.
func (s *CoursePage) ToggleVisibility(ctx context.Context) error {
	course, err := s.courses.ToggleCourseVisibility(ctx, s.courseID)
	if err != nil {
		s.err = err
		return err
	}
	s.course.Load(ctx, func(context.Context) (*models.Course, error) {
		return course, nil
	})
	s.err = nil
	return nil
}

func (s *CoursePage) Delete(ctx context.Context) error {
	if err := s.courses.DeleteCourse(ctx, s.courseID); err != nil {
		s.err = err
		return err
	}
	s.deleted = true
	s.err = nil
	return nil
}

func (s *CoursePage) Enroll(ctx context.Context, email string) error {
	req := models.EnrollStudentRequest{Email: email}
	if fields := forms.Check(req); len(fields) > 0 {
		return fmt.Errorf("form incomplete: %s", forms.Summary(fields))
	}
	if err := s.courses.EnrollStudent(ctx, s.courseID, email); err != nil {
		s.err = err
		return err
	}
	s.students.Load(ctx, func(ctx context.Context) ([]models.User, error) {
		return s.courses.EnrolledStudents(ctx, s.courseID)
	})
	s.err = nil
	return nil
}

func (s *CoursePage) RemoveStudent(ctx context.Context, email string) error {
	if err := s.courses.RemoveStudent(ctx, s.courseID, email); err != nil {
		s.err = err
		return err
	}
	s.students.Load(ctx, func(ctx context.Context) ([]models.User, error) {
		return s.courses.EnrolledStudents(ctx, s.courseID)
	})
	s.err = nil
	return nil
}

func (s *CoursePage) Render(w io.Writer) {
	if s.deleted {
		fmt.Fprintln(w, "Course deleted.")
		return
	}
	if s.err != nil {
		renderBanner(w, s.err)
	}

	switch course, ok := s.course.Data(); {
	case s.course.Loading():
		renderLoading(w)
	case s.course.Err() != nil:
		renderBanner(w, s.course.Err())
	case ok:
		visibility := "private"
		if course.IsPublic {
			visibility = "public"
		}
		fmt.Fprintf(w, "%s (%s)\n%s\n", course.Title, visibility, course.Description)
	}

	if students, ok := s.students.Data(); ok {
		fmt.Fprintf(w, "-- Enrolled students (%d) --\n", len(students))
		for _, st := range students {
			fmt.Fprintf(w, "  %s  %s\n", st.Email, st.Name)
		}
	}
}

// DocumentsScreen manages a course's documents.
type DocumentsScreen struct {
	courses  *api.CourseClient
	courseID string

	docs resource.Resource[[]models.Document]
	err  error
}

func NewDocumentsScreen(courses *api.CourseClient, courseID string) *DocumentsScreen {
	return &DocumentsScreen{courses: courses, courseID: courseID}
}

func (s *DocumentsScreen) Title() string { return "Course Documents" }

func (s *DocumentsScreen) Load(ctx context.Context) {
	s.docs.Load(ctx, func(ctx context.Context) ([]models.Document, error) {
		return s.courses.ListDocuments(ctx, s.courseID)
	})
}

func (s *DocumentsScreen) Upload(ctx context.Context, req models.UploadDocumentRequest, file io.Reader) error {
	if fields := forms.Check(req); len(fields) > 0 {
		return fmt.Errorf("form incomplete: %s", forms.Summary(fields))
	}
	if _, err := s.courses.UploadDocument(ctx, s.courseID, req, file); err != nil {
		s.err = err
		return err
	}
	s.Load(ctx)
	s.err = nil
	return nil
}

func (s *DocumentsScreen) Delete(ctx context.Context, docID string) error {
	if err := s.courses.DeleteDocument(ctx, s.courseID, docID); err != nil {
		s.err = err
		return err
	}
	s.Load(ctx)
	s.err = nil
	return nil
}

func (s *DocumentsScreen) Render(w io.Writer) {
	if s.err != nil {
		renderBanner(w, s.err)
	}
	switch docs, ok := s.docs.Data(); {
	case s.docs.Loading():
		renderLoading(w)
	case s.docs.Err() != nil:
		renderBanner(w, s.docs.Err())
	case ok && len(docs) == 0:
		fmt.Fprintln(w, "No documents uploaded yet.")
	case ok:
		for _, d := range docs {
			fmt.Fprintf(w, "%s  %s  %s\n", d.ID, d.Name, d.URL)
		}
	}
}
