package forms

import (
	"testing"

	"github.com/eduterm/eduterm/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCheck_RegisterRequest(t *testing.T) {
	valid := models.RegisterRequest{
		Name:     "A",
		Email:    "a@b.com",
		Password: "secret1",
		Role:     models.RoleStudent,
	}
	assert.True(t, Valid(valid))

	t.Run("missing fields reported per field", func(t *testing.T) {
		fields := Check(models.RegisterRequest{})
		assert.Len(t, fields, 4)
	})

	t.Run("bad email", func(t *testing.T) {
		req := valid
		req.Email = "nope"
		fields := Check(req)
		assert.Len(t, fields, 1)
		assert.Equal(t, "Invalid email format", fields[0].Message)
	})

	t.Run("unknown role", func(t *testing.T) {
		req := valid
		req.Role = "ADMIN"
		assert.False(t, Valid(req))
	})
}

func TestCheck_VerifyEmailRequest(t *testing.T) {
	assert.True(t, Valid(models.VerifyEmailRequest{Email: "a@b.com", OTP: "123456"}))

	// Incomplete or non-numeric codes block submission before any
	// request is made.
	assert.False(t, Valid(models.VerifyEmailRequest{Email: "a@b.com", OTP: "1234"}))
	assert.False(t, Valid(models.VerifyEmailRequest{Email: "a@b.com", OTP: "12345a"}))
	assert.False(t, Valid(models.VerifyEmailRequest{Email: "a@b.com"}))
}

func TestSummary(t *testing.T) {
	fields := Check(models.LoginRequest{})
	assert.NotEmpty(t, Summary(fields))
	assert.Contains(t, Summary(fields), "required")
}
