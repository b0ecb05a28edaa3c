package views

import (
	"context"
	"fmt"
	"io"

	"github.com/eduterm/eduterm/internal/api"
	"github.com/eduterm/eduterm/internal/forms"
	"github.com/eduterm/eduterm/internal/models"
	"github.com/eduterm/eduterm/internal/otp"
	"github.com/eduterm/eduterm/internal/session"
	"github.com/eduterm/eduterm/pkg/apierrors"
)

// RegisterScreen submits a new account and stashes the email for the
// verification step.
type RegisterScreen struct {
	auth     *api.AuthClient
	sessions *session.Manager

	Form      models.RegisterRequest
	submitted bool
	err       error
}

func NewRegisterScreen(auth *api.AuthClient, sessions *session.Manager) *RegisterScreen {
	return &RegisterScreen{auth: auth, sessions: sessions}
}

func (s *RegisterScreen) Title() string { return "Register" }

// CanSubmit reflects the disabled state of the submit control:
// validation failures block submission before any request is made.
func (s *RegisterScreen) CanSubmit() bool {
	return forms.Valid(s.Form)
}

func (s *RegisterScreen) Submit(ctx context.Context) error {
	if fields := forms.Check(s.Form); len(fields) > 0 {
		return fmt.Errorf("form incomplete: %s", forms.Summary(fields))
	}

	if err := s.auth.Register(ctx, s.Form); err != nil {
		s.err = err
		return err
	}

	// Stash the email so the verify screen can submit without asking
	// for it again.
	if err := s.sessions.SaveRegisterEmail(s.Form.Email); err != nil {
		return err
	}
	s.submitted = true
	s.err = nil
	return nil
}

func (s *RegisterScreen) Render(w io.Writer) {
	if s.err != nil {
		renderBanner(w, s.err)
	}
	if s.submitted {
		fmt.Fprintln(w, "Registration received. Check your email for a verification code.")
		return
	}
	fmt.Fprintln(w, "Create your account (name, email, password, role).")
}

// VerifyEmailScreen drives the OTP widget; its submit control stays
// disabled until all six digits are entered.
type VerifyEmailScreen struct {
	auth     *api.AuthClient
	sessions *session.Manager

	OTP      *otp.Input
	verified bool
	resent   bool
	err      error
}

func NewVerifyEmailScreen(auth *api.AuthClient, sessions *session.Manager) *VerifyEmailScreen {
	return &VerifyEmailScreen{auth: auth, sessions: sessions, OTP: otp.New()}
}

func (s *VerifyEmailScreen) Title() string { return "Verify Your Email" }

func (s *VerifyEmailScreen) CanSubmit() bool {
	return s.OTP.Complete()
}

func (s *VerifyEmailScreen) Submit(ctx context.Context) error {
	email, ok := s.sessions.RegisterEmail()
	if !ok {
		s.err = fmt.Errorf("no pending registration: %w", apierrors.ErrInvalidInput)
		return s.err
	}

	req := models.VerifyEmailRequest{Email: email, OTP: s.OTP.Value()}
	if fields := forms.Check(req); len(fields) > 0 {
		return fmt.Errorf("form incomplete: %s", forms.Summary(fields))
	}

	s.OTP.SetDisabled(true)
	err := s.auth.VerifyEmail(ctx, req)
	s.OTP.SetDisabled(false)
	if err != nil {
		s.err = err
		return err
	}

	// A verified address no longer needs the stash.
	s.sessions.ClearRegisterEmail()
	s.verified = true
	s.err = nil
	return nil
}

// Resend asks the backend for a fresh code.
func (s *VerifyEmailScreen) Resend(ctx context.Context) error {
	email, ok := s.sessions.RegisterEmail()
	if !ok {
		return fmt.Errorf("no pending registration: %w", apierrors.ErrInvalidInput)
	}
	if err := s.auth.ResendOTP(ctx, email); err != nil {
		s.err = err
		return err
	}
	s.resent = true
	return nil
}

func (s *VerifyEmailScreen) Render(w io.Writer) {
	if s.verified {
		fmt.Fprintln(w, "Email verified successfully!")
		return
	}
	if s.err != nil {
		renderBanner(w, s.err)
	}
	if s.resent {
		fmt.Fprintln(w, "A new code is on its way.")
	}
	fmt.Fprintf(w, "Enter the %d-digit code sent to your email: %s\n", s.OTP.Len(), s.OTP.Value())
}

// LoginScreen establishes the session from the backend's token and
// user record.
type LoginScreen struct {
	auth     *api.AuthClient
	sessions *session.Manager

	Form models.LoginRequest
	err  error
}

func NewLoginScreen(auth *api.AuthClient, sessions *session.Manager) *LoginScreen {
	return &LoginScreen{auth: auth, sessions: sessions}
}

func (s *LoginScreen) Title() string { return "Login" }

func (s *LoginScreen) CanSubmit() bool {
	return forms.Valid(s.Form)
}

func (s *LoginScreen) Submit(ctx context.Context) error {
	if fields := forms.Check(s.Form); len(fields) > 0 {
		return fmt.Errorf("form incomplete: %s", forms.Summary(fields))
	}

	resp, err := s.auth.Login(ctx, s.Form)
	if err != nil {
		s.err = err
		return err
	}

	if err := s.sessions.Establish(resp.Token, &resp.User); err != nil {
		s.err = err
		return err
	}
	s.err = nil
	return nil
}

func (s *LoginScreen) Render(w io.Writer) {
	if s.err != nil {
		renderBanner(w, s.err)
	}
	fmt.Fprintln(w, "Sign in with your email and password.")
}

// ForgotPasswordScreen requests a reset code.
type ForgotPasswordScreen struct {
	auth *api.AuthClient

	Form models.ForgotPasswordRequest
	sent bool
	err  error
}

func NewForgotPasswordScreen(auth *api.AuthClient) *ForgotPasswordScreen {
	return &ForgotPasswordScreen{auth: auth}
}

func (s *ForgotPasswordScreen) Title() string { return "Forgot Password" }

func (s *ForgotPasswordScreen) CanSubmit() bool { return forms.Valid(s.Form) }

func (s *ForgotPasswordScreen) Submit(ctx context.Context) error {
	if fields := forms.Check(s.Form); len(fields) > 0 {
		return fmt.Errorf("form incomplete: %s", forms.Summary(fields))
	}
	if err := s.auth.ForgotPassword(ctx, s.Form); err != nil {
		s.err = err
		return err
	}
	s.sent = true
	s.err = nil
	return nil
}

func (s *ForgotPasswordScreen) Render(w io.Writer) {
	if s.err != nil {
		renderBanner(w, s.err)
	}
	if s.sent {
		fmt.Fprintln(w, "Reset code sent. Check your email.")
		return
	}
	fmt.Fprintln(w, "Enter your email to receive a reset code.")
}

// ResetPasswordScreen combines the OTP widget and the new password.
type ResetPasswordScreen struct {
	auth *api.AuthClient

	Email       string
	NewPassword string
	OTP         *otp.Input
	done        bool
	err         error
}

func NewResetPasswordScreen(auth *api.AuthClient) *ResetPasswordScreen {
	return &ResetPasswordScreen{auth: auth, OTP: otp.New()}
}

func (s *ResetPasswordScreen) Title() string { return "Reset Password" }

func (s *ResetPasswordScreen) request() models.ResetPasswordRequest {
	return models.ResetPasswordRequest{
		Email:       s.Email,
		OTP:         s.OTP.Value(),
		NewPassword: s.NewPassword,
	}
}

func (s *ResetPasswordScreen) CanSubmit() bool {
	return s.OTP.Complete() && forms.Valid(s.request())
}

func (s *ResetPasswordScreen) Submit(ctx context.Context) error {
	req := s.request()
	if fields := forms.Check(req); len(fields) > 0 {
		return fmt.Errorf("form incomplete: %s", forms.Summary(fields))
	}
	if err := s.auth.ResetPassword(ctx, req); err != nil {
		s.err = err
		return err
	}
	s.done = true
	s.err = nil
	return nil
}

func (s *ResetPasswordScreen) Render(w io.Writer) {
	if s.err != nil {
		renderBanner(w, s.err)
	}
	if s.done {
		fmt.Fprintln(w, "Password reset. You can sign in now.")
		return
	}
	fmt.Fprintln(w, "Enter the reset code and your new password.")
}
