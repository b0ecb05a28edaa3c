package api

import (
	"context"
	"net/http"

	"github.com/eduterm/eduterm/internal/models"
	"github.com/eduterm/eduterm/pkg/httpclient"
)

// ChatClient covers the chat service's single question endpoint.
type ChatClient struct {
	service
}

func NewChatClient(baseURL string, hc httpclient.Client) *ChatClient {
	return &ChatClient{service{name: "chat", baseURL: baseURL, http: hc}}
}

// Ask sends one course-scoped question and returns the bot's answer.
func (c *ChatClient) Ask(ctx context.Context, question, courseID string) (string, error) {
	var out models.AskQuestionResponse
	req := models.AskQuestionRequest{Question: question, CourseID: courseID}
	if err := c.doJSON(ctx, "askCourseQuestion", http.MethodPost, "/chat/ask", req, &out); err != nil {
		return "", err
	}
	return out.Response, nil
}
