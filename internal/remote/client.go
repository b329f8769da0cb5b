package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"eventSubmitter/internal/config"
	"eventSubmitter/internal/lib/api/response"
	"eventSubmitter/internal/lib/logger/sl"
	"eventSubmitter/internal/models"
)

// Error is a failure reported by the remote side. The description is
// whatever the remote operation returned in its error envelope, so remote
// validation failures stay readable for the user.
type Error struct {
	StatusCode  int
	Description string
}

func (e *Error) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("remote operation failed with status %d", e.StatusCode)
	}

	return e.Description
}

// Client invokes the single createEvent operation over an authenticated
// channel. One request, one response, no retries.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	log        *slog.Logger
}

func NewClient(cfg config.Client, log *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.BaseURL,
		token:      cfg.Token,
		log:        log,
	}
}

type createEventResponse struct {
	response.Response
	EventID string          `json:"eventId"`
	Data    json.RawMessage `json:"data"`
}

// CreateEvent sends the composed request and awaits exactly one outcome.
// The enrichment in the response is returned untouched.
func (c *Client) CreateEvent(ctx context.Context, event *models.EventRequest) (*models.CreateEventResult, error) {
	const op = "remote.CreateEvent"

	log := c.log.With(
		slog.String("op", op),
		slog.String("event_id", event.EventID),
	)

	body, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/events", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("request failed", sl.Err(err))

		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var decoded createEventResponse
	if err = json.Unmarshal(raw, &decoded); err != nil {
		// No envelope at all; fall back to the transport status.
		if resp.StatusCode >= 400 {
			return nil, fmt.Errorf("%s: %w", op, &Error{StatusCode: resp.StatusCode})
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if resp.StatusCode >= 400 || decoded.Status == response.StatusError {
		log.Warn("remote operation rejected the request",
			slog.Int("status_code", resp.StatusCode),
			slog.String("remote_error", decoded.Response.Error),
		)

		return nil, fmt.Errorf("%s: %w", op, &Error{
			StatusCode:  resp.StatusCode,
			Description: decoded.Response.Error,
		})
	}

	log.Info("event created", slog.Int("status_code", resp.StatusCode))

	return &models.CreateEventResult{
		EventID: event.EventID,
		Data:    decoded.Data,
	}, nil
}
