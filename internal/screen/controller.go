package screen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"eventSubmitter/internal/composer"
	"eventSubmitter/internal/lib/logger/sl"
	"eventSubmitter/internal/models"
)

// State is the submission screen's lifecycle. It is transitioned only by
// submit, success and failure; there are no other events.
type State int

const (
	StateIdle State = iota
	StateInFlight
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInFlight:
		return "in_flight"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

var ErrSubmissionInFlight = errors.New("submission already in flight")

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventInvoker
type EventInvoker interface {
	CreateEvent(ctx context.Context, event *models.EventRequest) (*models.CreateEventResult, error)
}

// Renderer receives the single user-visible outcome of a submission.
type Renderer interface {
	InFlight()
	Success(res *models.CreateEventResult)
	Failure(err error)
}

// Controller owns one submission flow: compose the request, invoke the
// remote operation, present the outcome. At most one submission may be
// outstanding at a time; a second Submit while one is in flight is
// rejected before any work happens.
type Controller struct {
	log      *slog.Logger
	composer *composer.Composer
	invoker  EventInvoker
	renderer Renderer

	mu    sync.Mutex
	state State
}

func NewController(log *slog.Logger, comp *composer.Composer, invoker EventInvoker, renderer Renderer) *Controller {
	return &Controller{
		log:      log,
		composer: comp,
		invoker:  invoker,
		renderer: renderer,
		state:    StateIdle,
	}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

func (c *Controller) InFlight() bool {
	return c.State() == StateInFlight
}

// Submit runs the whole flow for one form. It blocks until the outcome is
// known; callers that need the event-loop feel run it in a goroutine. After
// any outcome the controller is ready for resubmission.
func (c *Controller) Submit(ctx context.Context, form composer.Form) error {
	const op = "screen.Submit"

	log := c.log.With(slog.String("op", op))

	c.mu.Lock()
	if c.state == StateInFlight {
		c.mu.Unlock()

		log.Warn("submit rejected, another submission is in flight")

		return fmt.Errorf("%s: %w", op, ErrSubmissionInFlight)
	}

	event, err := c.composer.Build(form)
	if err != nil {
		c.state = StateFailed
		c.mu.Unlock()

		log.Error("form validation failed", sl.Err(err))
		c.renderer.Failure(err)

		return fmt.Errorf("%s: %w", op, err)
	}

	c.state = StateInFlight
	c.mu.Unlock()

	log.Info("submitting event", slog.String("event_id", event.EventID))
	c.renderer.InFlight()

	res, err := c.invoker.CreateEvent(ctx, event)

	c.mu.Lock()
	if err != nil {
		c.state = StateFailed
		c.mu.Unlock()

		log.Error("create event failed", sl.Err(err))
		c.renderer.Failure(err)

		return fmt.Errorf("%s: %w", op, err)
	}

	c.state = StateSucceeded
	c.mu.Unlock()

	log.Info("event created", slog.String("event_id", res.EventID))
	c.renderer.Success(res)

	return nil
}
