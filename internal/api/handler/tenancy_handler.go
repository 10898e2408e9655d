package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/propertymanager/landlord-api/internal/core/domain"
	"github.com/propertymanager/landlord-api/internal/core/ports"
)

// TenancyHandler handles HTTP requests for tenancy operations.
type TenancyHandler struct {
	service ports.TenancyService
}

func NewTenancyHandler(service ports.TenancyService) *TenancyHandler {
	return &TenancyHandler{service: service}
}

// Create handles POST /v1/tenancies.
//
// @Summary      Register a tenant on a property
// @Tags         tenancies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTenancyRequest  true  "Tenancy details"
// @Success      201   {object}  domain.Tenancy
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/tenancies [post]
func (h *TenancyHandler) Create(c echo.Context) error {
	_, accountID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createTenancyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tenancy, err := h.service.Create(c.Request().Context(), ports.CreateTenancyInput{
		LandlordID: accountID,
		PropertyID: req.PropertyID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		RentAmount: req.RentAmount,
		RentStart:  req.RentStart,
		Duration: domain.LeaseDuration{
			Amount: req.RentDuration.Amount,
			Unit:   domain.DurationUnit(req.RentDuration.Unit),
		},
		LastPaymentDate: req.LastPaymentDate,
		Documents:       req.Documents,
		Notes:           req.Notes,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, tenancy)
}

// List handles GET /v1/tenancies.
//
// @Summary      List the caller's tenancies with lease status
// @Tags         tenancies
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   tenancyViewResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/tenancies [get]
func (h *TenancyHandler) List(c echo.Context) error {
	_, accountID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	views, err := h.service.List(c.Request().Context(), accountID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTenancyViewResponses(views))
}

// Calendar handles GET /v1/tenancies/calendar — active tenancies only.
//
// @Summary      Expiry calendar of active tenancies
// @Tags         tenancies
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   tenancyViewResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/tenancies/calendar [get]
func (h *TenancyHandler) Calendar(c echo.Context) error {
	_, accountID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	views, err := h.service.Calendar(c.Request().Context(), accountID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTenancyViewResponses(views))
}

// RecordPayment handles POST /v1/tenancies/:id/payments.
//
// @Summary      Record a rent payment
// @Tags         tenancies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Tenancy ID"
// @Param        body  body      recordPaymentRequest  true  "Payment details"
// @Success      200   {object}  domain.Tenancy
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/tenancies/{id}/payments [post]
func (h *TenancyHandler) RecordPayment(c echo.Context) error {
	_, accountID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req recordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tenancy, err := h.service.RecordPayment(c.Request().Context(), accountID, c.Param("id"), req.PaidOn)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tenancy)
}

// Dashboard handles GET /v1/dashboard.
//
// @Summary      Aggregate portfolio view
// @Tags         tenancies
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/dashboard [get]
func (h *TenancyHandler) Dashboard(c echo.Context) error {
	_, accountID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	summary, err := h.service.Dashboard(c.Request().Context(), accountID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboardResponse{
		Properties: summary.Properties,
		Leases:     summary.Leases,
	})
}
