package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/propertymanager/landlord-api/internal/core/domain"
	"github.com/propertymanager/landlord-api/internal/core/ports"
)

// PropertyHandler handles HTTP requests for property operations.
type PropertyHandler struct {
	service ports.PropertyService
}

func NewPropertyHandler(service ports.PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

// Create handles POST /v1/properties.
//
// @Summary      Register a property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPropertyRequest  true  "Property details"
// @Success      201   {object}  domain.Property
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /v1/properties [post]
func (h *PropertyHandler) Create(c echo.Context) error {
	_, accountID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createPropertyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	places := make([]domain.PopularPlace, 0, len(req.PopularPlaces))
	for _, p := range req.PopularPlaces {
		places = append(places, domain.PopularPlace{Name: p.Name, Type: p.Type, Distance: p.Distance})
	}

	property, err := h.service.Create(c.Request().Context(), ports.CreatePropertyInput{
		LandlordID:     accountID,
		Title:          req.Title,
		Description:    req.Description,
		Address:        req.Address,
		Coordinates:    domain.Coordinates{Lat: req.Coordinates.Lat, Lng: req.Coordinates.Lng},
		LandDocuments:  req.LandDocuments,
		PropertyImages: req.PropertyImages,
		PopularPlaces:  places,
		PurchasePrice:  req.PurchasePrice,
		EstimatedValue: req.EstimatedValue,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, property)
}

// List handles GET /v1/properties.
//
// @Summary      List the caller's properties
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Property
// @Failure      401  {object}  map[string]string
// @Router       /v1/properties [get]
func (h *PropertyHandler) List(c echo.Context) error {
	_, accountID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	properties, err := h.service.List(c.Request().Context(), accountID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, properties)
}

// Get handles GET /v1/properties/:id.
//
// @Summary      Get one property
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Property ID"
// @Success      200  {object}  domain.Property
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/properties/{id} [get]
func (h *PropertyHandler) Get(c echo.Context) error {
	_, accountID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	property, err := h.service.Get(c.Request().Context(), accountID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, property)
}

// AddRenovation handles POST /v1/properties/:id/renovations.
//
// @Summary      Record a renovation expense
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Property ID"
// @Param        body  body      renovationRequest  true  "Renovation details"
// @Success      200   {object}  domain.Property
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/properties/{id}/renovations [post]
func (h *PropertyHandler) AddRenovation(c echo.Context) error {
	_, accountID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req renovationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	property, err := h.service.AddRenovation(c.Request().Context(), accountID, c.Param("id"), ports.RenovationInput{
		Type:        req.Type,
		Description: req.Description,
		Cost:        req.Cost,
		Date:        req.Date,
		Documents:   req.Documents,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, property)
}

// Delete handles DELETE /v1/properties/:id.
//
// @Summary      Delete a property and its tenancies
// @Tags         properties
// @Security     BearerAuth
// @Param        id  path  string  true  "Property ID"
// @Success      204  "property and attached tenancies removed"
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/properties/{id} [delete]
func (h *PropertyHandler) Delete(c echo.Context) error {
	_, accountID, err := ctxClaims(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), accountID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
