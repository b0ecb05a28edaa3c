package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/eduterm/eduterm/internal/models"
	"github.com/eduterm/eduterm/internal/session"
	"github.com/eduterm/eduterm/pkg/apierrors"
	"github.com/eduterm/eduterm/pkg/httpclient"
	"github.com/eduterm/eduterm/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := logger.Initialize(logger.Config{Level: "debug", Environment: "development"}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// newStack builds a session manager plus a bearer HTTP client, the same
// wiring main uses.
func newStack() (*session.Manager, httpclient.Client) {
	manager := session.NewManager(session.NewMemStore())
	return manager, httpclient.NewBearerClient(5*time.Second, manager)
}

func TestAuthClient_LoginCarriesNoTokenAndReturnsSession(t *testing.T) {
	router := gin.New()
	var gotAuth []string
	router.POST("/auth/login", func(c *gin.Context) {
		gotAuth = c.Request.Header["Authorization"]

		var req models.LoginRequest
		require.NoError(t, c.ShouldBindJSON(&req))
		assert.Equal(t, "a@b.com", req.Email)

		c.JSON(http.StatusOK, models.LoginResponse{
			Token: "tok-1",
			User:  models.User{ID: "u1", Email: req.Email, Role: models.RoleStudent},
		})
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	_, hc := newStack()
	client := NewAuthClient(srv.URL, hc)

	resp, err := client.Login(context.Background(), models.LoginRequest{Email: "a@b.com", Password: "x"})
	require.NoError(t, err)

	assert.Empty(t, gotAuth, "unauthenticated requests must omit the Authorization header")
	assert.Equal(t, "tok-1", resp.Token)
	assert.Equal(t, models.RoleStudent, resp.User.Role)
}

func TestCourseClient_AuthorizedRequestCarriesStoredToken(t *testing.T) {
	router := gin.New()
	var gotAuth string
	router.GET("/courses/my-courses", func(c *gin.Context) {
		gotAuth = c.GetHeader("Authorization")
		c.JSON(http.StatusOK, []models.Course{{ID: "c1", Title: "Algebra"}})
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	manager, hc := newStack()
	require.NoError(t, manager.Establish("tok-xyz", &models.User{ID: "t1", Role: models.RoleTeacher}))
	client := NewCourseClient(srv.URL, hc)

	courses, err := client.MyCourses(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-xyz", gotAuth)
	require.Len(t, courses, 1)
	assert.Equal(t, "Algebra", courses[0].Title)
}

func TestCourseClient_RemoveStudentSendsDeleteBody(t *testing.T) {
	router := gin.New()
	var gotEmail string
	router.DELETE("/courses/:id/remove-student", func(c *gin.Context) {
		var req models.RemoveStudentRequest
		require.NoError(t, c.ShouldBindJSON(&req))
		gotEmail = req.Email
		c.Status(http.StatusOK)
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	_, hc := newStack()
	client := NewCourseClient(srv.URL, hc)

	require.NoError(t, client.RemoveStudent(context.Background(), "c1", "s@b.com"))
	assert.Equal(t, "s@b.com", gotEmail)
}

func TestCourseClient_UploadDocumentMultipart(t *testing.T) {
	router := gin.New()
	router.POST("/courses/:id/documents/upload", func(c *gin.Context) {
		require.True(t, strings.HasPrefix(c.ContentType(), "multipart/form-data"))

		file, err := c.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "notes.pdf", file.Filename)

		f, err := file.Open()
		require.NoError(t, err)
		defer f.Close()
		content, err := io.ReadAll(f)
		require.NoError(t, err)
		assert.Equal(t, "file-bytes", string(content))

		assert.Equal(t, "Lecture notes", c.PostForm("name"))
		assert.Equal(t, "Week 1", c.PostForm("description"))

		c.JSON(http.StatusCreated, models.Document{ID: "d1", Name: c.PostForm("name"), URL: "/docs/d1"})
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	_, hc := newStack()
	client := NewCourseClient(srv.URL, hc)

	doc, err := client.UploadDocument(context.Background(), "c1",
		models.UploadDocumentRequest{Name: "Lecture notes", Description: "Week 1", FileName: "notes.pdf"},
		strings.NewReader("file-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "d1", doc.ID)
}

func TestCourseClient_ToggleVisibilityRoundTrip(t *testing.T) {
	course := models.Course{ID: "c1", Title: "Algebra", IsPublic: false, TeacherID: "t1"}

	router := gin.New()
	router.PUT("/courses/:id/toggle-public", func(c *gin.Context) {
		course.IsPublic = !course.IsPublic
		c.JSON(http.StatusOK, course)
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	_, hc := newStack()
	client := NewCourseClient(srv.URL, hc)

	first, err := client.ToggleCourseVisibility(context.Background(), "c1")
	require.NoError(t, err)
	assert.True(t, first.IsPublic)

	second, err := client.ToggleCourseVisibility(context.Background(), "c1")
	require.NoError(t, err)
	assert.False(t, second.IsPublic)
}

func TestCourseClient_JoinThenEnrolledIncludesCourse(t *testing.T) {
	var enrolled []models.Enrollment

	router := gin.New()
	router.POST("/courses/:id/join", func(c *gin.Context) {
		enrolled = append(enrolled, models.Enrollment{
			ID:     "e1",
			Course: models.Course{ID: c.Param("id"), Title: "Algebra"},
		})
		c.Status(http.StatusCreated)
	})
	router.GET("/courses/enrolled", func(c *gin.Context) {
		c.JSON(http.StatusOK, enrolled)
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	_, hc := newStack()
	client := NewCourseClient(srv.URL, hc)

	require.NoError(t, client.JoinCourse(context.Background(), "c42"))

	list, err := client.MyEnrolledCourses(context.Background())
	require.NoError(t, err)

	found := false
	for _, e := range list {
		if e.Course.ID == "c42" {
			found = true
		}
	}
	assert.True(t, found, "joined course must appear in enrolled list")
}

func TestChatClient_Ask(t *testing.T) {
	router := gin.New()
	router.POST("/chat/ask", func(c *gin.Context) {
		var req models.AskQuestionRequest
		require.NoError(t, c.ShouldBindJSON(&req))
		assert.Equal(t, "c1", req.CourseID)
		c.JSON(http.StatusOK, models.AskQuestionResponse{Response: "42"})
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	_, hc := newStack()
	client := NewChatClient(srv.URL, hc)

	answer, err := client.Ask(context.Background(), "what is the answer?", "c1")
	require.NoError(t, err)
	assert.Equal(t, "42", answer)
}

func TestService_ErrorMessageExtraction(t *testing.T) {
	router := gin.New()
	router.POST("/auth/login", func(c *gin.Context) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
	})
	router.GET("/courses/:id", func(c *gin.Context) {
		c.String(http.StatusNotFound, "plain text, no message field")
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	_, hc := newStack()

	_, err := NewAuthClient(srv.URL, hc).Login(context.Background(), models.LoginRequest{Email: "a@b.com", Password: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apierrors.ErrUnauthorized)
	assert.Equal(t, "Invalid credentials", apierrors.MessageFrom(err))

	_, err = NewCourseClient(srv.URL, hc).CourseByID(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, apierrors.ErrNotFound)
	assert.Equal(t, apierrors.FallbackMessage, apierrors.MessageFrom(err))
}

func TestService_TransportErrorPropagates(t *testing.T) {
	_, hc := newStack()
	client := NewChatClient("http://127.0.0.1:1", hc)

	_, err := client.Ask(context.Background(), "q", "c1")
	require.Error(t, err)

	// Transport failures are not API errors and show the fallback text.
	assert.NotErrorIs(t, err, apierrors.ErrServer)
	assert.Equal(t, apierrors.FallbackMessage, apierrors.MessageFrom(err))
}
