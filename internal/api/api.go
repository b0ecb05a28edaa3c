// Package api exposes the HTTP surface of the three backend services as
// typed client operations. Every request goes through the shared bearer
// transport; failures propagate unchanged to the caller with no retry,
// no caching, and no timeout override beyond the shared client default.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/eduterm/eduterm/internal/models"
	"github.com/eduterm/eduterm/pkg/apierrors"
	"github.com/eduterm/eduterm/pkg/httpclient"
	"github.com/eduterm/eduterm/pkg/logger"
	"github.com/eduterm/eduterm/pkg/metrics"
	"go.uber.org/zap"
)

// service is the plumbing shared by the three endpoint groups: one base
// URL, one HTTP client, and one call pattern with metrics and logging.
type service struct {
	name    string
	baseURL string
	http    httpclient.Client
}

// doJSON performs one request with an optional JSON body and decodes a
// 2xx response into out when out is non-nil.
func (s *service) doJSON(ctx context.Context, operation, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: failed to encode request: %w", s.name, operation, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%s %s: failed to build request: %w", s.name, operation, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return s.execute(req, operation, out)
}

// doMultipart performs one multipart/form-data upload.
func (s *service) doMultipart(ctx context.Context, operation, path, contentType string, form io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, form)
	if err != nil {
		return fmt.Errorf("%s %s: failed to build request: %w", s.name, operation, err)
	}
	req.Header.Set("Content-Type", contentType)

	return s.execute(req, operation, out)
}

func (s *service) execute(req *http.Request, operation string, out any) error {
	start := time.Now()

	resp, err := s.http.Do(req)
	if err != nil {
		metrics.RecordAPICall(s.name, operation, "error", start)
		logger.LogAPICall(s.name, operation, "error", metrics.MeasureDuration(start), zap.Error(err))
		return fmt.Errorf("%s %s: %w", s.name, operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &apierrors.APIError{
			Service:    s.name,
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Message:    extractMessage(resp.Body),
		}
		metrics.RecordAPICall(s.name, operation, "error", start)
		logger.LogAPICall(s.name, operation, "error", metrics.MeasureDuration(start),
			zap.Int("status_code", resp.StatusCode))
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			metrics.RecordAPICall(s.name, operation, "error", start)
			return fmt.Errorf("%s %s: failed to decode response: %w", s.name, operation, err)
		}
	}

	metrics.RecordAPICall(s.name, operation, "success", start)
	logger.LogAPICall(s.name, operation, "success", metrics.MeasureDuration(start))
	return nil
}

// extractMessage pulls the best-effort {message} field out of an error
// body. Anything unreadable yields an empty message and callers fall
// back to the generic text.
func extractMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 1<<16))
	if err != nil {
		return ""
	}
	var msg models.APIMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return ""
	}
	return msg.Message
}
