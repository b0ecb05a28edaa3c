package views

import (
	"context"
	"fmt"
	"io"

	"github.com/eduterm/eduterm/internal/api"
	"github.com/eduterm/eduterm/internal/forms"
	"github.com/eduterm/eduterm/internal/models"
	"github.com/eduterm/eduterm/internal/resource"
)

// ProfileScreen shows the authenticated user's profile. The role decides
// which endpoint serves it; the choice is made from the cached role with
// no server round-trip.
type ProfileScreen struct {
	auth *api.AuthClient
	role models.Role

	profile resource.Resource[*models.User]
}

func NewProfileScreen(auth *api.AuthClient, role models.Role) *ProfileScreen {
	return &ProfileScreen{auth: auth, role: role}
}

func (s *ProfileScreen) Title() string { return "Profile" }

func (s *ProfileScreen) Load(ctx context.Context) {
	if s.role == models.RoleTeacher {
		s.profile.Load(ctx, s.auth.GetTeacherProfile)
		return
	}
	s.profile.Load(ctx, s.auth.GetStudentProfile)
}

func (s *ProfileScreen) Render(w io.Writer) {
	switch user, ok := s.profile.Data(); {
	case s.profile.Loading():
		renderLoading(w)
	case s.profile.Err() != nil:
		renderBanner(w, s.profile.Err())
	case ok:
		fmt.Fprintf(w, "Name:  %s\n", user.Name)
		fmt.Fprintf(w, "Email: %s\n", user.Email)
		fmt.Fprintf(w, "Role:  %s\n", user.Role)
	}
}

// UpdateProfileScreen submits profile field changes for the cached role.
type UpdateProfileScreen struct {
	auth *api.AuthClient
	role models.Role

	Form    models.UpdateProfileRequest
	updated *models.User
	err     error
}

func NewUpdateProfileScreen(auth *api.AuthClient, role models.Role) *UpdateProfileScreen {
	return &UpdateProfileScreen{auth: auth, role: role}
}

func (s *UpdateProfileScreen) Title() string { return "Update Profile" }

func (s *UpdateProfileScreen) CanSubmit() bool { return forms.Valid(s.Form) }

func (s *UpdateProfileScreen) Submit(ctx context.Context) error {
	if fields := forms.Check(s.Form); len(fields) > 0 {
		return fmt.Errorf("form incomplete: %s", forms.Summary(fields))
	}

	var (
		user *models.User
		err  error
	)
	if s.role == models.RoleTeacher {
		user, err = s.auth.UpdateTeacherProfile(ctx, s.Form)
	} else {
		user, err = s.auth.UpdateStudentProfile(ctx, s.Form)
	}
	if err != nil {
		s.err = err
		return err
	}
	s.updated = user
	s.err = nil
	return nil
}

func (s *UpdateProfileScreen) Render(w io.Writer) {
	if s.err != nil {
		renderBanner(w, s.err)
	}
	if s.updated != nil {
		fmt.Fprintf(w, "Profile saved for %s.\n", s.updated.Name)
		return
	}
	fmt.Fprintln(w, "Edit your profile fields and submit.")
}
