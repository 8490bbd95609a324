package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"authsvc/internal/domain/entity"
	domainerrors "authsvc/internal/domain/errors"
	"authsvc/internal/errors"
	"authsvc/internal/usecase"
	"authsvc/internal/util"
)

type listEventsQuery struct {
	Limit int `query:"limit" validate:"gte=0"`
}

type accountEventResponse struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	AccountID  string `json:"account_id"`
	Email      string `json:"email,omitempty"`
	RequestID  string `json:"request_id,omitempty"`
	OccurredAt string `json:"occurred_at"`
	ReceivedAt string `json:"received_at"`
}

// EventsHandler lists the account events recorded by the worker.
type EventsHandler struct {
	eventUC usecase.AccountEventUsecase
}

// NewEventsHandler is the constructor for EventsHandler, injected by Fx.
func NewEventsHandler(eventUC usecase.AccountEventUsecase) *EventsHandler {
	return &EventsHandler{eventUC: eventUC}
}

// ListAccountEvents returns the newest events of one account.
func (h *EventsHandler) ListAccountEvents(c echo.Context) error {
	var query listEventsQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return domainerrors.ErrInvalidInput.WrapMessage("malformed limit")
	}
	if err := c.Validate(&query); err != nil {
		return err
	}

	events, err := h.eventUC.ListAccountEvents(c.Request().Context(), c.Param("id"), query.Limit)
	if err != nil {
		return errors.WithStack(err)
	}

	body := make([]accountEventResponse, 0, len(events))
	for _, event := range events {
		body = append(body, toAccountEventResponse(event))
	}

	return c.JSON(http.StatusOK, map[string]any{"events": body})
}

func toAccountEventResponse(event *entity.AccountEvent) accountEventResponse {
	return accountEventResponse{
		ID:         event.ID.String(),
		Type:       string(event.Type),
		AccountID:  event.AccountID.String(),
		Email:      event.Email,
		RequestID:  event.RequestID,
		OccurredAt: util.FormatTimestamp(event.OccurredAt),
		ReceivedAt: util.FormatTimestamp(event.ReceivedAt),
	}
}
