package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/propertymanager/landlord-api/internal/core/ports"
)

// NotificationHandler handles reminder dispatch requests.
type NotificationHandler struct {
	reminders ports.ReminderService
}

func NewNotificationHandler(reminders ports.ReminderService) *NotificationHandler {
	return &NotificationHandler{reminders: reminders}
}

type sendReminderRequest struct {
	To      string `json:"to"      validate:"required"`
	Channel string `json:"channel" validate:"required,oneof=email sms"`
	Subject string `json:"subject" validate:"required"`
	Body    string `json:"body"    validate:"required"`
}

type queueExpiryResponse struct {
	Queued int `json:"queued"`
}

// Send handles POST /v1/notifications — one synchronous reminder.
//
// @Summary      Send a single reminder
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      sendReminderRequest  true  "Reminder content"
// @Success      200   {object}  domain.DispatchResult
// @Failure      400   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /v1/notifications [post]
func (h *NotificationHandler) Send(c echo.Context) error {
	if _, _, err := ctxClaims(c); err != nil {
		return err
	}

	var req sendReminderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.reminders.SendReminder(c.Request().Context(), ports.ReminderInput{
		To:      req.To,
		Channel: req.Channel,
		Subject: req.Subject,
		Body:    req.Body,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// QueueExpiring handles POST /v1/notifications/expiring — fan out one
// reminder per expiring or expired active tenancy of the caller.
//
// @Summary      Queue expiry reminders for all at-risk tenancies
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Success      202  {object}  queueExpiryResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/notifications/expiring [post]
func (h *NotificationHandler) QueueExpiring(c echo.Context) error {
	_, accountID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	queued, err := h.reminders.QueueExpiryReminders(c.Request().Context(), accountID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusAccepted, queueExpiryResponse{Queued: queued})
}
