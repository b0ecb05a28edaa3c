package models

// Role of a platform account. The backend issues it at login and the
// client caches it for the lifetime of the session.
type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleTeacher Role = "TEACHER"
)

// Valid reports whether the role is one the platform knows.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleTeacher
}

// User is the profile record returned by the user service at login.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Course is owned by a teacher; IsPublic is toggled only through the
// owning teacher's client calls.
type Course struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	IsPublic    bool   `json:"isPublic"`
	TeacherID   string `json:"teacherId"`
}

// Enrollment associates a student with a course they have joined.
type Enrollment struct {
	ID      string `json:"id"`
	Course  Course `json:"course"`
	Student User   `json:"student"`
}

// Document is attached to a course; created via multipart upload.
type Document struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// ChatMessage is one entry of the ephemeral chat transcript. The
// transcript lives only in view state for the duration of the visit.
type ChatMessage struct {
	Type ChatMessageType `json:"type"`
	Text string          `json:"text"`
}

type ChatMessageType string

const (
	ChatMessageUser ChatMessageType = "user"
	ChatMessageBot  ChatMessageType = "bot"
)
