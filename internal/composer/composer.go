package composer

import (
	"fmt"
	"time"

	"eventSubmitter/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Default scheduling convention: the event starts a day from now and
// runs for five hours. Callers may override both through New.
const (
	DefaultStartOffset = 24 * time.Hour
	DefaultDuration    = 5 * time.Hour
)

// Form holds the user-supplied fields of a submission. The two string
// fields are required; the reference-identifier lists may be empty.
type Form struct {
	EventName    string `validate:"required"`
	CompanyID    string `validate:"required"`
	TableLayouts []string
	Categories   []string
	ClubCardIDs  []string
	EventGenre   []string
}

type Composer struct {
	startOffset time.Duration
	duration    time.Duration
	validate    *validator.Validate

	// overridable in tests
	now   func() time.Time
	newID func() string
}

func New(startOffset, duration time.Duration) *Composer {
	if startOffset <= 0 {
		startOffset = DefaultStartOffset
	}
	if duration <= 0 {
		duration = DefaultDuration
	}

	return &Composer{
		startOffset: startOffset,
		duration:    duration,
		validate:    validator.New(),
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// Build validates the form and produces a fully-populated request with a
// fresh event id. No network I/O happens here; a validation failure means
// no request object is constructed at all.
func (c *Composer) Build(form Form) (*models.EventRequest, error) {
	const op = "composer.Build"

	if err := c.validate.Struct(form); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	start := c.now().Add(c.startOffset)

	return &models.EventRequest{
		EventID:       c.newID(),
		EventName:     form.EventName,
		StartDateTime: start,
		EndDateTime:   start.Add(c.duration),
		CompanyID:     form.CompanyID,
		TableLayouts:  orEmpty(form.TableLayouts),
		Categories:    orEmpty(form.Categories),
		ClubCardIDs:   orEmpty(form.ClubCardIDs),
		EventGenre:    orEmpty(form.EventGenre),
	}, nil
}

// orEmpty keeps absent lists serializable as [] rather than null.
func orEmpty(ids []string) []string {
	if ids == nil {
		return []string{}
	}

	return ids
}
