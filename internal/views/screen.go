// Package views holds the screens of the terminal client. Every screen
// follows the same contract: fetch on mount, render a loading skeleton,
// then render data, an empty state, or an inline error banner. API
// failures are caught per screen and never crash the application.
package views

import (
	"context"
	"fmt"
	"io"

	"github.com/eduterm/eduterm/pkg/apierrors"
)

// Screen is one renderable page of the client.
type Screen interface {
	Title() string
	Render(w io.Writer)
}

// Loader is implemented by screens that fetch on mount.
type Loader interface {
	Load(ctx context.Context)
}

func renderBanner(w io.Writer, err error) {
	fmt.Fprintf(w, "! %s\n", apierrors.MessageFrom(err))
}

func renderLoading(w io.Writer) {
	fmt.Fprintln(w, "Loading...")
}

// Placeholder is the neutral screen shown while the authorization gate
// is still checking; guarded content must not render in its place.
type Placeholder struct{}

func (Placeholder) Title() string { return "Checking" }

func (Placeholder) Render(w io.Writer) {
	fmt.Fprintln(w, "Checking authentication...")
}

// Landing is the public front page.
type Landing struct{}

func (Landing) Title() string { return "Welcome" }

func (Landing) Render(w io.Writer) {
	fmt.Fprintln(w, "Learn together. Sign in or create an account to get started.")
}

// NotFound is the catch-all screen for unknown routes.
type NotFound struct{}

func (NotFound) Title() string { return "Not Found" }

func (NotFound) Render(w io.Writer) {
	fmt.Fprintln(w, "404 - page not found")
}
