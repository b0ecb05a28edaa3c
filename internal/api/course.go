package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/eduterm/eduterm/internal/models"
	"github.com/eduterm/eduterm/pkg/httpclient"
)

// CourseClient covers the course service: course CRUD, enrollment and
// course documents.
type CourseClient struct {
	service
}

func NewCourseClient(baseURL string, hc httpclient.Client) *CourseClient {
	return &CourseClient{service{name: "course", baseURL: baseURL, http: hc}}
}

func (c *CourseClient) CreateCourse(ctx context.Context, req models.CreateCourseRequest) (*models.Course, error) {
	var out models.Course
	if err := c.doJSON(ctx, "createCourse", http.MethodPost, "/courses/create", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyCourses lists courses owned by the authenticated teacher.
func (c *CourseClient) MyCourses(ctx context.Context) ([]models.Course, error) {
	var out []models.Course
	if err := c.doJSON(ctx, "getMyCourses", http.MethodGet, "/courses/my-courses", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CourseClient) AllCourses(ctx context.Context) ([]models.Course, error) {
	var out []models.Course
	if err := c.doJSON(ctx, "getAllCourses", http.MethodGet, "/courses", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CourseClient) CourseByID(ctx context.Context, courseID string) (*models.Course, error) {
	var out models.Course
	if err := c.doJSON(ctx, "getCourseById", http.MethodGet, "/courses/"+courseID, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// JoinCourse enrolls the authenticated student into a course.
func (c *CourseClient) JoinCourse(ctx context.Context, courseID string) error {
	return c.doJSON(ctx, "joinCourse", http.MethodPost, "/courses/"+courseID+"/join", nil, nil)
}

// MyEnrolledCourses lists the authenticated student's enrollments.
func (c *CourseClient) MyEnrolledCourses(ctx context.Context) ([]models.Enrollment, error) {
	var out []models.Enrollment
	if err := c.doJSON(ctx, "getMyEnrolledCourses", http.MethodGet, "/courses/enrolled", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// EnrollStudent enrolls a student by email (teacher operation).
func (c *CourseClient) EnrollStudent(ctx context.Context, courseID, email string) error {
	return c.doJSON(ctx, "enrollStudent", http.MethodPost, "/courses/"+courseID+"/enroll",
		models.EnrollStudentRequest{Email: email}, nil)
}

func (c *CourseClient) EnrolledStudents(ctx context.Context, courseID string) ([]models.User, error) {
	var out []models.User
	if err := c.doJSON(ctx, "getEnrolledStudents", http.MethodGet, "/courses/"+courseID+"/students", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RemoveStudent removes an enrollment by student email. The email rides
// in the DELETE body, matching the backend contract.
func (c *CourseClient) RemoveStudent(ctx context.Context, courseID, email string) error {
	return c.doJSON(ctx, "removeStudent", http.MethodDelete, "/courses/"+courseID+"/remove-student",
		models.RemoveStudentRequest{Email: email}, nil)
}

// ToggleCourseVisibility flips the course's isPublic flag and returns
// the updated course.
func (c *CourseClient) ToggleCourseVisibility(ctx context.Context, courseID string) (*models.Course, error) {
	var out models.Course
	if err := c.doJSON(ctx, "toggleCourseVisibility", http.MethodPut, "/courses/"+courseID+"/toggle-public", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *CourseClient) DeleteCourse(ctx context.Context, courseID string) error {
	return c.doJSON(ctx, "deleteCourse", http.MethodDelete, "/courses/"+courseID, nil, nil)
}

// UploadDocument uploads a course document as multipart/form-data: the
// file part plus name and description fields.
func (c *CourseClient) UploadDocument(ctx context.Context, courseID string, req models.UploadDocumentRequest, file io.Reader) (*models.Document, error) {
	var form bytes.Buffer
	writer := multipart.NewWriter(&form)

	part, err := writer.CreateFormFile("file", req.FileName)
	if err != nil {
		return nil, fmt.Errorf("course uploadDocument: failed to build form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("course uploadDocument: failed to read file: %w", err)
	}
	if err := writer.WriteField("name", req.Name); err != nil {
		return nil, fmt.Errorf("course uploadDocument: failed to build form: %w", err)
	}
	if err := writer.WriteField("description", req.Description); err != nil {
		return nil, fmt.Errorf("course uploadDocument: failed to build form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("course uploadDocument: failed to finish form: %w", err)
	}

	var out models.Document
	if err := c.doMultipart(ctx, "uploadDocument", "/courses/"+courseID+"/documents/upload",
		writer.FormDataContentType(), &form, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *CourseClient) ListDocuments(ctx context.Context, courseID string) ([]models.Document, error) {
	var out []models.Document
	if err := c.doJSON(ctx, "getCourseDocuments", http.MethodGet, "/courses/"+courseID+"/documents", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CourseClient) DeleteDocument(ctx context.Context, courseID, docID string) error {
	return c.doJSON(ctx, "deleteDocument", http.MethodDelete, "/courses/"+courseID+"/documents/"+docID, nil, nil)
}
