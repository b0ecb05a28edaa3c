// Package router maps application paths to screens behind the
// authorization gate, mirroring the platform's route table: public auth
// pages, shared role-switching pages, and role-restricted teacher and
// student pages.
package router

import (
	"strings"

	"github.com/eduterm/eduterm/internal/api"
	"github.com/eduterm/eduterm/internal/guard"
	"github.com/eduterm/eduterm/internal/models"
	"github.com/eduterm/eduterm/internal/session"
	"github.com/eduterm/eduterm/internal/views"
)

// Deps are the collaborators screens need.
type Deps struct {
	Sessions *session.Manager
	Auth     *api.AuthClient
	Courses  *api.CourseClient
	Chat     *api.ChatClient
}

type guardKind int

const (
	guardPublic guardKind = iota
	guardPrivate
)

type route struct {
	pattern      string
	guard        guardKind
	allowedRoles []models.Role
	build        func(deps Deps, role models.Role, params map[string]string) views.Screen
}

// Resolution is the outcome of resolving one path.
type Resolution struct {
	// Screen to render when the route resolved to content.
	Screen views.Screen
	// Redirect is the target path when the gate bounced the request.
	Redirect string
	// Replace drops the current history entry on redirect.
	Replace bool
}

// Router resolves paths against the route table and the gate.
type Router struct {
	gate   *guard.Gate
	deps   Deps
	routes []route
}

func New(gate *guard.Gate, deps Deps) *Router {
	return &Router{gate: gate, deps: deps, routes: table()}
}

func table() []route {
	return []route{
		{pattern: "/", guard: guardPublic, build: func(Deps, models.Role, map[string]string) views.Screen {
			return views.Landing{}
		}},
		{pattern: "/auth/register", guard: guardPublic, build: func(d Deps, _ models.Role, _ map[string]string) views.Screen {
			return views.NewRegisterScreen(d.Auth, d.Sessions)
		}},
		{pattern: "/auth/login", guard: guardPublic, build: func(d Deps, _ models.Role, _ map[string]string) views.Screen {
			return views.NewLoginScreen(d.Auth, d.Sessions)
		}},
		{pattern: "/auth/forgot-password", guard: guardPublic, build: func(d Deps, _ models.Role, _ map[string]string) views.Screen {
			return views.NewForgotPasswordScreen(d.Auth)
		}},
		{pattern: "/auth/reset-password", guard: guardPublic, build: func(d Deps, _ models.Role, _ map[string]string) views.Screen {
			return views.NewResetPasswordScreen(d.Auth)
		}},
		{pattern: "/auth/verify-email", guard: guardPublic, build: func(d Deps, _ models.Role, _ map[string]string) views.Screen {
			return views.NewVerifyEmailScreen(d.Auth, d.Sessions)
		}},

		// Shared private routes select the concrete screen from the
		// cached role at render time.
		{pattern: "/dashboard", guard: guardPrivate, build: func(d Deps, role models.Role, _ map[string]string) views.Screen {
			if role == models.RoleTeacher {
				return views.NewTeacherDashboard(d.Auth, d.Courses)
			}
			return views.NewStudentDashboard(d.Auth, d.Courses)
		}},
		{pattern: "/profile", guard: guardPrivate, build: func(d Deps, role models.Role, _ map[string]string) views.Screen {
			return views.NewProfileScreen(d.Auth, role)
		}},
		{pattern: "/update-profile", guard: guardPrivate, build: func(d Deps, role models.Role, _ map[string]string) views.Screen {
			return views.NewUpdateProfileScreen(d.Auth, role)
		}},

		// Teacher routes
		{pattern: "/teacher/create-course", guard: guardPrivate, allowedRoles: []models.Role{models.RoleTeacher},
			build: func(d Deps, _ models.Role, _ map[string]string) views.Screen {
				return views.NewCreateCourseScreen(d.Courses)
			}},
		{pattern: "/teacher/my-courses", guard: guardPrivate, allowedRoles: []models.Role{models.RoleTeacher},
			build: func(d Deps, _ models.Role, _ map[string]string) views.Screen {
				return views.NewMyCoursesScreen(d.Courses)
			}},
		{pattern: "/teacher/course/:id", guard: guardPrivate, allowedRoles: []models.Role{models.RoleTeacher},
			build: func(d Deps, _ models.Role, p map[string]string) views.Screen {
				return views.NewCoursePage(d.Courses, p["id"])
			}},
		{pattern: "/teacher/course/:id/upload", guard: guardPrivate, allowedRoles: []models.Role{models.RoleTeacher},
			build: func(d Deps, _ models.Role, p map[string]string) views.Screen {
				return views.NewDocumentsScreen(d.Courses, p["id"])
			}},
		{pattern: "/teacher/course/:id/enroll", guard: guardPrivate, allowedRoles: []models.Role{models.RoleTeacher},
			build: func(d Deps, _ models.Role, p map[string]string) views.Screen {
				return views.NewCoursePage(d.Courses, p["id"])
			}},
		{pattern: "/teacher/course/:id/students", guard: guardPrivate, allowedRoles: []models.Role{models.RoleTeacher},
			build: func(d Deps, _ models.Role, p map[string]string) views.Screen {
				return views.NewCoursePage(d.Courses, p["id"])
			}},
		{pattern: "/teacher/course/:id/documents", guard: guardPrivate, allowedRoles: []models.Role{models.RoleTeacher},
			build: func(d Deps, _ models.Role, p map[string]string) views.Screen {
				return views.NewDocumentsScreen(d.Courses, p["id"])
			}},

		// Student routes
		{pattern: "/student/courses", guard: guardPrivate, allowedRoles: []models.Role{models.RoleStudent},
			build: func(d Deps, _ models.Role, _ map[string]string) views.Screen {
				return views.NewCatalogScreen(d.Courses)
			}},
		{pattern: "/student/my-courses", guard: guardPrivate, allowedRoles: []models.Role{models.RoleStudent},
			build: func(d Deps, _ models.Role, _ map[string]string) views.Screen {
				return views.NewEnrolledScreen(d.Courses)
			}},
		{pattern: "/student/course/:id", guard: guardPrivate, allowedRoles: []models.Role{models.RoleStudent},
			build: func(d Deps, _ models.Role, p map[string]string) views.Screen {
				return views.NewStudentCoursePage(d.Courses, d.Auth, p["id"])
			}},
		{pattern: "/student/chat", guard: guardPrivate, allowedRoles: []models.Role{models.RoleStudent},
			build: func(d Deps, _ models.Role, _ map[string]string) views.Screen {
				return views.NewChatScreen(d.Chat, d.Courses)
			}},
	}
}

// Resolve returns the screen for path, or the redirect the gate chose.
// An unknown path resolves to the not-found screen regardless of
// session state.
func (r *Router) Resolve(path string) Resolution {
	for _, rt := range r.routes {
		params, ok := match(rt.pattern, path)
		if !ok {
			continue
		}

		var decision guard.Decision
		if rt.guard == guardPublic {
			decision = r.gate.PublicRoute()
		} else {
			decision = r.gate.PrivateRoute(rt.allowedRoles...)
		}

		switch decision.Kind {
		case guard.DecisionPlaceholder:
			return Resolution{Screen: views.Placeholder{}}
		case guard.DecisionRedirect:
			return Resolution{Redirect: decision.Target, Replace: decision.Replace}
		}

		role, _ := r.gate.Role()
		return Resolution{Screen: rt.build(r.deps, role, params)}
	}
	return Resolution{Screen: views.NotFound{}}
}

// match compares a pattern with :param segments against a concrete
// path, returning the captured params.
func match(pattern, path string) (map[string]string, bool) {
	if pattern == path {
		return nil, true
	}

	patternParts := strings.Split(strings.Trim(pattern, "/"), "/")
	pathParts := strings.Split(strings.Trim(path, "/"), "/")
	if len(patternParts) != len(pathParts) {
		return nil, false
	}

	var params map[string]string
	for i, pp := range patternParts {
		if strings.HasPrefix(pp, ":") {
			if pathParts[i] == "" {
				return nil, false
			}
			if params == nil {
				params = map[string]string{}
			}
			params[pp[1:]] = pathParts[i]
			continue
		}
		if pp != pathParts[i] {
			return nil, false
		}
	}
	return params, true
}
