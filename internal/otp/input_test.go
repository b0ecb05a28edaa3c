package otp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetDigit(t *testing.T) {
	t.Run("digit advances focus", func(t *testing.T) {
		in := New()
		in.SetDigit(0, "1")

		assert.Equal(t, "1", in.Value())
		assert.Equal(t, 1, in.Focus())
	})

	t.Run("last cell keeps focus", func(t *testing.T) {
		in := New()
		in.Paste("12345")
		in.SetDigit(5, "6")

		assert.Equal(t, "123456", in.Value())
		assert.Equal(t, 5, in.Focus())
		assert.True(t, in.Complete())
	})

	t.Run("non-digit silently ignored", func(t *testing.T) {
		in := New()
		in.SetDigit(0, "a")

		assert.Empty(t, in.Value())
		assert.Equal(t, 0, in.Focus())
	})

	t.Run("multi-character input reduced to last rune", func(t *testing.T) {
		in := New()
		in.SetDigit(0, "12")

		assert.Equal(t, "2", in.Value())
		assert.Equal(t, 1, in.Focus())
	})

	t.Run("empty input clears the cell", func(t *testing.T) {
		in := New()
		in.SetDigit(0, "7")
		in.SetDigit(0, "")

		assert.Empty(t, in.Value())
	})
}

func TestBackspace(t *testing.T) {
	t.Run("non-empty cell clears in place keeping focus", func(t *testing.T) {
		in := New()
		in.Paste("1234")

		in.Backspace(3)

		assert.Equal(t, "123", in.Value())
		assert.Equal(t, 3, in.Focus())
	})

	t.Run("empty cell clears previous and retreats focus", func(t *testing.T) {
		in := New()
		in.Paste("123")

		// Cell 3 is blank; one keypress clears cell 2 and moves there.
		in.Backspace(3)

		assert.Equal(t, "12", in.Value())
		assert.Equal(t, 2, in.Focus())
	})

	t.Run("empty first cell is a no-op", func(t *testing.T) {
		in := New()
		in.Backspace(0)

		assert.Empty(t, in.Value())
		assert.Equal(t, 0, in.Focus())
	})
}

func TestArrowNavigation(t *testing.T) {
	in := New()
	in.Paste("123456")

	in.ArrowLeft(3)
	assert.Equal(t, 2, in.Focus())

	in.ArrowRight(2)
	assert.Equal(t, 3, in.Focus())

	// Boundaries clamp without mutating content.
	in.ArrowLeft(0)
	assert.Equal(t, 0, in.Focus())
	in.ArrowRight(5)
	assert.Equal(t, 5, in.Focus())
	assert.Equal(t, "123456", in.Value())
}

func TestPaste(t *testing.T) {
	t.Run("strips non-digits, truncates, focuses last cell when full", func(t *testing.T) {
		in := New()
		in.Paste("12a3456789")

		assert.Equal(t, "123456", in.Value())
		assert.Equal(t, 5, in.Focus())
	})

	t.Run("partial paste focuses first blank cell", func(t *testing.T) {
		in := New()
		in.Paste("98")

		assert.Equal(t, "98", in.Value())
		assert.Equal(t, 2, in.Focus())
	})

	t.Run("paste replaces previous content entirely", func(t *testing.T) {
		in := New()
		in.Paste("123456")
		in.Paste("42")

		assert.Equal(t, "42", in.Value())
		assert.False(t, in.Complete())
	})
}

func TestDisabled(t *testing.T) {
	in := New()
	in.Paste("123")
	in.SetDisabled(true)

	in.SetDigit(3, "4")
	in.Backspace(2)
	in.Paste("999999")
	in.ArrowLeft(3)

	// Disabling blocks mutation but preserves value and focus.
	assert.Equal(t, "123", in.Value())
	assert.Equal(t, 3, in.Focus())

	in.SetDisabled(false)
	in.SetDigit(3, "4")
	assert.Equal(t, "1234", in.Value())
}

func TestOnChangeEmitsJoinedValue(t *testing.T) {
	var emitted []string
	in := New(WithOnChange(func(v string) { emitted = append(emitted, v) }))

	in.SetDigit(0, "1")
	in.SetDigit(1, "2")
	in.Backspace(2)

	assert.Equal(t, []string{"1", "12", "1"}, emitted)
}

func TestCustomLength(t *testing.T) {
	in := New(WithLength(4))
	in.Paste("123456")

	assert.Equal(t, "1234", in.Value())
	assert.True(t, in.Complete())
	assert.Equal(t, 3, in.Focus())
}
