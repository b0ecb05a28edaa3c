package views

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/eduterm/eduterm/internal/api"
	"github.com/eduterm/eduterm/internal/models"
	"github.com/eduterm/eduterm/internal/resource"
)

const chatErrorReply = "Error fetching response."

// ChatScreen holds the ephemeral course Q&A transcript. Messages live
// only in screen state for the duration of the visit; nothing is
// persisted across reloads.
type ChatScreen struct {
	chat    *api.ChatClient
	courses *api.CourseClient

	enrolled resource.Resource[[]models.Enrollment]

	mu       sync.Mutex
	courseID string
	messages []models.ChatMessage
	pending  bool
}

func NewChatScreen(chat *api.ChatClient, courses *api.CourseClient) *ChatScreen {
	return &ChatScreen{chat: chat, courses: courses}
}

func (s *ChatScreen) Title() string { return "Course Chat" }

// Load fetches the student's enrollments and preselects the first
// course, matching the page's mount behavior.
func (s *ChatScreen) Load(ctx context.Context) {
	s.enrolled.Load(ctx, s.courses.MyEnrolledCourses)
	if enrolled, ok := s.enrolled.Data(); ok && len(enrolled) > 0 {
		s.mu.Lock()
		if s.courseID == "" {
			s.courseID = enrolled[0].Course.ID
		}
		s.mu.Unlock()
	}
}

func (s *ChatScreen) SelectCourse(courseID string) {
	s.mu.Lock()
	s.courseID = courseID
	s.mu.Unlock()
}

// Send appends the user's question to the transcript, asks the chat
// service, and appends either the answer or a bot-side error entry.
// The transcript ordering is strictly append-only.
func (s *ChatScreen) Send(ctx context.Context, question string) {
	if question == "" {
		return
	}

	s.mu.Lock()
	courseID := s.courseID
	s.messages = append(s.messages, models.ChatMessage{Type: models.ChatMessageUser, Text: question})
	s.pending = true
	s.mu.Unlock()

	answer, err := s.chat.Ask(ctx, question, courseID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.messages = append(s.messages, models.ChatMessage{Type: models.ChatMessageBot, Text: chatErrorReply})
	} else {
		if answer == "" {
			answer = "I don't know."
		}
		s.messages = append(s.messages, models.ChatMessage{Type: models.ChatMessageBot, Text: answer})
	}
	s.pending = false
}

// Stop flips the local pending flag. The in-flight request is not
// cancelled; a late answer still lands in the transcript.
func (s *ChatScreen) Stop() {
	s.mu.Lock()
	s.pending = false
	s.mu.Unlock()
}

// Pending reports whether the screen shows the typing indicator.
func (s *ChatScreen) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Messages returns a copy of the transcript.
func (s *ChatScreen) Messages() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *ChatScreen) Render(w io.Writer) {
	if err := s.enrolled.Err(); err != nil {
		renderBanner(w, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.courseID != "" {
		fmt.Fprintf(w, "Course: %s\n", s.courseID)
	}
	for _, m := range s.messages {
		prefix := "you"
		if m.Type == models.ChatMessageBot {
			prefix = "bot"
		}
		fmt.Fprintf(w, "[%s] %s\n", prefix, m.Text)
	}
	if s.pending {
		fmt.Fprintln(w, "[bot] ...")
	}
}
