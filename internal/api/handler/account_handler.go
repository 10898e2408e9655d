package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/propertymanager/landlord-api/internal/core/domain"
	"github.com/propertymanager/landlord-api/internal/core/ports"
)

// AccountHandler exposes the administrative moderation surface.
type AccountHandler struct {
	moderation ports.ModerationService
}

func NewAccountHandler(moderation ports.ModerationService) *AccountHandler {
	return &AccountHandler{moderation: moderation}
}

type moderateRequest struct {
	Action string `json:"action" validate:"required,oneof=ban unban"`
}

// List handles GET /v1/admin/accounts.
//
// @Summary      List all accounts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Account
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /v1/admin/accounts [get]
func (h *AccountHandler) List(c echo.Context) error {
	role, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	accounts, err := h.moderation.ListAccounts(c.Request().Context(), role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, accounts)
}

// Moderate handles PUT /v1/admin/accounts/:id — ban or unban.
//
// @Summary      Ban or unban an account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string           true  "Account ID"
// @Param        body  body      moderateRequest  true  "Moderation action"
// @Success      200   {object}  domain.Account
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/admin/accounts/{id} [put]
func (h *AccountHandler) Moderate(c echo.Context) error {
	role, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req moderateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.moderation.Moderate(c.Request().Context(), ports.ModerateInput{
		ActorRole: role,
		AccountID: c.Param("id"),
		Action:    domain.ModerationAction(req.Action),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, account)
}

// Delete handles DELETE /v1/admin/accounts/:id — the full cascade.
//
// @Summary      Delete an account and everything it owns
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Account ID"
// @Success      204  "account and owned entities removed"
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/admin/accounts/{id} [delete]
func (h *AccountHandler) Delete(c echo.Context) error {
	role, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if _, err := h.moderation.Moderate(c.Request().Context(), ports.ModerateInput{
		ActorRole: role,
		AccountID: c.Param("id"),
		Action:    domain.ActionDelete,
	}); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
