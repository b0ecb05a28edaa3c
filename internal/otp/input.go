// Package otp models the segmented one-time-passcode input: a fixed
// row of single-digit cells with focus-advance, backspace-retreat and
// paste-splitting behavior, emitting one joined string value.
package otp

import "strings"

// DefaultLength matches the platform's 6-digit codes.
const DefaultLength = 6

const blank = rune(0)

// Input is the widget state. It is a controlled component: every
// mutation reports the joined value through the onChange callback.
type Input struct {
	cells    []rune
	focus    int
	disabled bool
	onChange func(string)
}

// Option configures a new Input.
type Option func(*Input)

// WithLength overrides the cell count.
func WithLength(n int) Option {
	return func(in *Input) {
		if n > 0 {
			in.cells = make([]rune, n)
		}
	}
}

// WithOnChange registers the value callback.
func WithOnChange(fn func(string)) Option {
	return func(in *Input) { in.onChange = fn }
}

func New(opts ...Option) *Input {
	in := &Input{cells: make([]rune, DefaultLength)}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Len returns the cell count.
func (in *Input) Len() int { return len(in.cells) }

// Focus returns the focused cell index.
func (in *Input) Focus() int { return in.focus }

// Value joins the filled cells into a single string; blank cells are
// skipped, so the value's length tells how many digits are entered.
func (in *Input) Value() string {
	var b strings.Builder
	for _, c := range in.cells {
		if c != blank {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// Complete reports whether every cell holds a digit.
func (in *Input) Complete() bool {
	for _, c := range in.cells {
		if c == blank {
			return false
		}
	}
	return true
}

// SetDisabled blocks all mutation operations while preserving the
// current value and focus.
func (in *Input) SetDisabled(disabled bool) {
	in.disabled = disabled
}

// SetValue replaces the whole sequence from a joined string, digit
// cells left-to-right. Used to seed the widget from an owning form.
func (in *Input) SetValue(value string) {
	if in.disabled {
		return
	}
	for i := range in.cells {
		in.cells[i] = blank
	}
	i := 0
	for _, r := range value {
		if i >= len(in.cells) {
			break
		}
		if r >= '0' && r <= '9' {
			in.cells[i] = r
			i++
		}
	}
	in.notify()
}

// SetDigit enters typed input into cell i. Multi-character input is
// reduced to its last rune; non-digits are silently ignored. An empty
// input clears the cell. Accepting a digit advances focus unless the
// cell is the last one.
func (in *Input) SetDigit(i int, input string) {
	if in.disabled || !in.inBounds(i) {
		return
	}

	runes := []rune(input)
	if len(runes) == 0 {
		in.cells[i] = blank
		in.focus = i
		in.notify()
		return
	}

	digit := runes[len(runes)-1]
	if digit < '0' || digit > '9' {
		return
	}

	in.cells[i] = digit
	in.focus = i
	if i < len(in.cells)-1 {
		in.focus = i + 1
	}
	in.notify()
}

// Backspace clears cell i when it holds a digit, keeping focus there.
// On an already-blank cell it clears the previous cell and moves focus
// back, so each keypress deletes at most one cross-cell digit.
func (in *Input) Backspace(i int) {
	if in.disabled || !in.inBounds(i) {
		return
	}

	if in.cells[i] != blank {
		in.cells[i] = blank
		in.focus = i
		in.notify()
		return
	}
	if i > 0 {
		in.cells[i-1] = blank
		in.focus = i - 1
		in.notify()
	}
}

// ArrowLeft moves focus left without mutating content; no-op at the
// first cell.
func (in *Input) ArrowLeft(i int) {
	if in.disabled || !in.inBounds(i) {
		return
	}
	if i > 0 {
		in.focus = i - 1
	} else {
		in.focus = i
	}
}

// ArrowRight moves focus right without mutating content; no-op at the
// last cell.
func (in *Input) ArrowRight(i int) {
	if in.disabled || !in.inBounds(i) {
		return
	}
	if i < len(in.cells)-1 {
		in.focus = i + 1
	} else {
		in.focus = i
	}
}

// Paste strips non-digits, truncates to the cell count, refills from
// cell 0 and focuses the first remaining blank cell, or the last cell
// when all are filled.
func (in *Input) Paste(text string) {
	if in.disabled {
		return
	}

	digits := make([]rune, 0, len(in.cells))
	for _, r := range text {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
			if len(digits) == len(in.cells) {
				break
			}
		}
	}

	for i := range in.cells {
		if i < len(digits) {
			in.cells[i] = digits[i]
		} else {
			in.cells[i] = blank
		}
	}

	if len(digits) < len(in.cells) {
		in.focus = len(digits)
	} else {
		in.focus = len(in.cells) - 1
	}
	in.notify()
}

func (in *Input) inBounds(i int) bool {
	return i >= 0 && i < len(in.cells)
}

func (in *Input) notify() {
	if in.onChange != nil {
		in.onChange(in.Value())
	}
}
