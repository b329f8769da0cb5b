package createEvent

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"eventSubmitter/internal/lib/api/response"
	"eventSubmitter/internal/lib/logger/sl"
	"eventSubmitter/internal/models"
	"eventSubmitter/internal/storage/memory"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type EventRequest struct {
	EventID       string    `json:"eventId" validate:"required"`
	EventName     string    `json:"eventName" validate:"required"`
	StartDateTime time.Time `json:"startDateTime" validate:"required"`
	EndDateTime   time.Time `json:"endDateTime" validate:"required"`
	CompanyID     string    `json:"companyId" validate:"required"`
	TableLayouts  []string  `json:"tableLayouts"`
	Categories    []string  `json:"categories"`
	ClubCardIDs   []string  `json:"clubCardIds"`
	EventGenre    []string  `json:"eventGenre"`
}

type EventResponse struct {
	response.Response
	EventID string               `json:"eventId"`
	Data    *models.ResolvedRefs `json:"data"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ReferenceResolver
type ReferenceResolver interface {
	ResolveEventRefs(event *models.EventRequest) (*models.ResolvedRefs, error)
}

func New(log *slog.Logger, resolver ReferenceResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log = log.With(
			slog.String("op", op),
		)

		var req EventRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		event := &models.EventRequest{
			EventID:       req.EventID,
			EventName:     req.EventName,
			StartDateTime: req.StartDateTime,
			EndDateTime:   req.EndDateTime,
			CompanyID:     req.CompanyID,
			TableLayouts:  req.TableLayouts,
			Categories:    req.Categories,
			ClubCardIDs:   req.ClubCardIDs,
			EventGenre:    req.EventGenre,
		}

		refs, err := resolver.ResolveEventRefs(event)
		if err != nil {
			log.Error("failed to resolve references", sl.Err(err))

			if errors.Is(err, memory.ErrUnknownReference) {
				render.Status(r, http.StatusUnprocessableEntity)
				render.JSON(w, r, response.Error(err.Error()))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create event"))

			return
		}

		log.Info("event created", slog.String("event_id", req.EventID))

		responseOK(w, r, req.EventID, refs)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, eventID string, refs *models.ResolvedRefs) {
	render.JSON(w, r, EventResponse{
		Response: response.OK(),
		EventID:  eventID,
		Data:     refs,
	})
}
