package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/propertymanager/landlord-api/internal/core/domain"
	"github.com/propertymanager/landlord-api/internal/core/ports"
)

// AppealHandler exposes the public appeal intake endpoint. It is mounted
// outside the authenticated groups: banned and deleted account holders
// have no usable token.
type AppealHandler struct {
	appeals ports.AppealService
}

func NewAppealHandler(appeals ports.AppealService) *AppealHandler {
	return &AppealHandler{appeals: appeals}
}

type appealRequest struct {
	Name          string `json:"name"           validate:"required"`
	Email         string `json:"email"          validate:"required,email"`
	Phone         string `json:"phone"`
	Reason        string `json:"reason"`
	Message       string `json:"message"        validate:"required"`
	AccountStatus string `json:"account_status" validate:"omitempty,oneof=banned deleted"`
}

type appealResponse struct {
	ReceiptID               string `json:"receipt_id"`
	Message                 string `json:"message"`
	EstimatedResponseWindow string `json:"estimated_response_window"`
}

// Submit handles POST /appeals.
//
// @Summary      Submit a ban or deletion appeal
// @Tags         appeals
// @Accept       json
// @Produce      json
// @Param        body  body      appealRequest  true  "Appeal details"
// @Success      202   {object}  appealResponse
// @Failure      400   {object}  map[string]string
// @Router       /appeals [post]
func (h *AppealHandler) Submit(c echo.Context) error {
	var req appealRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	receipt, err := h.appeals.Submit(c.Request().Context(), domain.Appeal{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Reason:        req.Reason,
		Message:       req.Message,
		AccountStatus: req.AccountStatus,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusAccepted, appealResponse{
		ReceiptID:               receipt.ReceiptID,
		Message:                 "appeal received and under review",
		EstimatedResponseWindow: receipt.EstimatedResponseWindow,
	})
}
