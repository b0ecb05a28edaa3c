package api

import (
	"context"
	"net/http"

	"github.com/eduterm/eduterm/internal/models"
	"github.com/eduterm/eduterm/pkg/httpclient"
)

// AuthClient covers the auth and profile endpoints of the user service.
type AuthClient struct {
	service
}

func NewAuthClient(baseURL string, hc httpclient.Client) *AuthClient {
	return &AuthClient{service{name: "user", baseURL: baseURL, http: hc}}
}

func (c *AuthClient) Register(ctx context.Context, req models.RegisterRequest) error {
	return c.doJSON(ctx, "register", http.MethodPost, "/auth/register", req, nil)
}

func (c *AuthClient) VerifyEmail(ctx context.Context, req models.VerifyEmailRequest) error {
	return c.doJSON(ctx, "verifyEmail", http.MethodPost, "/auth/verify", req, nil)
}

func (c *AuthClient) ResendOTP(ctx context.Context, email string) error {
	return c.doJSON(ctx, "resendOtp", http.MethodPost, "/auth/resend-otp", models.ResendOTPRequest{Email: email}, nil)
}

func (c *AuthClient) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	var out models.LoginResponse
	if err := c.doJSON(ctx, "login", http.MethodPost, "/auth/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *AuthClient) ForgotPassword(ctx context.Context, req models.ForgotPasswordRequest) error {
	return c.doJSON(ctx, "forgotPassword", http.MethodPost, "/auth/forgot", req, nil)
}

func (c *AuthClient) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	return c.doJSON(ctx, "resetPassword", http.MethodPost, "/auth/reset", req, nil)
}

func (c *AuthClient) GetStudentProfile(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.doJSON(ctx, "getStudentProfile", http.MethodGet, "/user/student/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *AuthClient) UpdateStudentProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error) {
	var out models.User
	if err := c.doJSON(ctx, "updateStudentProfile", http.MethodPut, "/user/student/profile", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *AuthClient) GetTeacherProfile(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.doJSON(ctx, "getTeacherProfile", http.MethodGet, "/user/teacher/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *AuthClient) UpdateTeacherProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error) {
	var out models.User
	if err := c.doJSON(ctx, "updateTeacherProfile", http.MethodPut, "/user/teacher/profile", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *AuthClient) GetStudentByID(ctx context.Context, id string) (*models.User, error) {
	var out models.User
	if err := c.doJSON(ctx, "getStudentById", http.MethodGet, "/user/student/profile/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *AuthClient) GetTeacherByID(ctx context.Context, id string) (*models.User, error) {
	var out models.User
	if err := c.doJSON(ctx, "getTeacherById", http.MethodGet, "/user/teacher/profile/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
