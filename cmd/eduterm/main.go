package main

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/eduterm/eduterm/config"
	"github.com/eduterm/eduterm/internal/api"
	"github.com/eduterm/eduterm/internal/guard"
	"github.com/eduterm/eduterm/internal/models"
	"github.com/eduterm/eduterm/internal/router"
	"github.com/eduterm/eduterm/internal/session"
	"github.com/eduterm/eduterm/internal/views"
	"github.com/eduterm/eduterm/pkg/httpclient"
	"github.com/eduterm/eduterm/pkg/logger"
	"github.com/eduterm/eduterm/pkg/metrics"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.App.Env,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	store, err := openStore(cfg)
	if err != nil {
		logger.Fatal("Failed to open session store", zap.Error(err))
	}
	sessions := session.NewManager(store)

	hc := httpclient.NewBearerClient(cfg.HTTP.Timeout, sessions)
	deps := router.Deps{
		Sessions: sessions,
		Auth:     api.NewAuthClient(cfg.Services.UserBaseURL, hc),
		Courses:  api.NewCourseClient(cfg.Services.CourseBaseURL, hc),
		Chat:     api.NewChatClient(cfg.Services.ChatBaseURL, hc),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gate := guard.NewGate(sessions)
	gate.Watch(ctx)

	// Drop sessions whose token expiry has already passed, then do the
	// one-shot authorization read.
	sessions.CheckExpiry(time.Now())
	gate.Resolve()

	if cfg.Metrics.Addr != "" {
		go serveMetrics(cfg.Metrics.Addr)
	}

	logger.Info("eduterm started",
		zap.String("user_service", cfg.Services.UserBaseURL),
		zap.String("course_service", cfg.Services.CourseBaseURL),
		zap.String("chat_service", cfg.Services.ChatBaseURL))

	app := &app{
		cfg:      cfg,
		sessions: sessions,
		gate:     gate,
		router:   router.New(gate, deps),
		deps:     deps,
		path:     "/",
	}
	app.run(ctx)
}

func openStore(cfg *config.Config) (session.Store, error) {
	if cfg.Session.InMemory {
		return session.NewMemStore(), nil
	}
	return session.NewFileStore(cfg.Session.File)
}

// serveMetrics exposes the prometheus endpoint for scraping. Failures
// are logged; the client keeps running without metrics.
func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Warn("metrics listener stopped", zap.Error(err))
	}
}

// app is the interactive shell: navigate routes, render the resolved
// screen, and drive the auth flows.
type app struct {
	cfg      *config.Config
	sessions *session.Manager
	gate     *guard.Gate
	router   *router.Router
	deps     router.Deps
	path     string
}

func (a *app) run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	a.show(ctx, a.path)

	for {
		fmt.Printf("eduterm %s> ", a.path)
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "quit", "exit":
			return
		case "help":
			a.help()
		case "open":
			if len(fields) < 2 {
				fmt.Println("usage: open <path>")
				continue
			}
			a.show(ctx, fields[1])
		case "login":
			if len(fields) < 3 {
				fmt.Println("usage: login <email> <password>")
				continue
			}
			a.login(ctx, fields[1], fields[2])
		case "logout":
			a.sessions.Logout()
			a.show(ctx, "/")
		case "join":
			if len(fields) < 2 {
				fmt.Println("usage: join <course-id>")
				continue
			}
			a.join(ctx, fields[1])
		case "ask":
			if len(fields) < 2 {
				fmt.Println("usage: ask <question...>")
				continue
			}
			a.ask(ctx, strings.Join(fields[1:], " "))
		default:
			fmt.Printf("unknown command %q (try help)\n", fields[0])
		}
	}
}

func (a *app) help() {
	fmt.Println("commands:")
	fmt.Println("  open <path>              navigate (e.g. /dashboard, /student/courses)")
	fmt.Println("  login <email> <pass>     sign in")
	fmt.Println("  logout                   sign out")
	fmt.Println("  join <course-id>         join a course (student)")
	fmt.Println("  ask <question>           ask the course chat (student)")
	fmt.Println("  quit                     exit")
}

// show resolves a path through the guard, following redirects, then
// loads and renders the resolved screen.
func (a *app) show(ctx context.Context, path string) {
	for i := 0; i < 4; i++ { // bounded redirect chain
		res := a.router.Resolve(path)
		if res.Redirect != "" {
			path = res.Redirect
			continue
		}
		a.path = path
		if loader, ok := res.Screen.(views.Loader); ok {
			loader.Load(ctx)
		}
		fmt.Printf("== %s ==\n", res.Screen.Title())
		res.Screen.Render(os.Stdout)
		return
	}
	logger.Warn("redirect chain did not settle", zap.String("path", path))
}

func (a *app) login(ctx context.Context, email, password string) {
	screen := views.NewLoginScreen(a.deps.Auth, a.sessions)
	screen.Form = models.LoginRequest{Email: email, Password: password}
	if err := screen.Submit(ctx); err != nil {
		screen.Render(os.Stdout)
		return
	}
	a.show(ctx, guard.DashboardRoute)
}

func (a *app) join(ctx context.Context, courseID string) {
	screen := views.NewCatalogScreen(a.deps.Courses)
	if err := screen.Join(ctx, courseID); err != nil {
		screen.Render(os.Stdout)
		return
	}
	fmt.Printf("Joined course %s.\n", courseID)
}

func (a *app) ask(ctx context.Context, question string) {
	screen := views.NewChatScreen(a.deps.Chat, a.deps.Courses)
	screen.Load(ctx)
	screen.Send(ctx, question)
	screen.Render(os.Stdout)
}
