package models

// Request and response shapes of the backend HTTP surface. Validation
// tags are enforced client-side before any request is made.

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     Role   `json:"role" validate:"required,oneof=STUDENT TEACHER"`
}

type VerifyEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6,numeric"`
}

type ResendOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the bearer credential plus the user record the
// client caches for the session.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	OTP         string `json:"otp" validate:"required,len=6,numeric"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name,omitempty" validate:"omitempty,min=1"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
}

type CreateCourseRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	IsPublic    bool   `json:"isPublic"`
}

type EnrollStudentRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type RemoveStudentRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UploadDocumentRequest describes one multipart upload: the file part
// plus name and description fields.
type UploadDocumentRequest struct {
	Name        string `validate:"required"`
	Description string
	FileName    string `validate:"required"`
}

type AskQuestionRequest struct {
	Question string `json:"question" validate:"required"`
	CourseID string `json:"courseId" validate:"required"`
}

type AskQuestionResponse struct {
	Response string `json:"response"`
}

// APIMessage is the best-effort error body shape shared by all three
// services.
type APIMessage struct {
	Message string `json:"message"`
}
