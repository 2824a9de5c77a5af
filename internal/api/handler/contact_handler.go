package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/collectif-avenir/campaign-api/internal/api/metrics"
	"github.com/collectif-avenir/campaign-api/internal/core/ports"
)

type ContactHandler struct {
	contactService ports.ContactService
}

func NewContactHandler(contactService ports.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

type contactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// Submit records a public contact-form message.
//
// @Summary      Submit a contact message
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Message"
// @Success      200   {object}  map[string]bool
// @Failure      400   {object}  map[string]string
// @Router       /api/public/contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.contactService.Submit(c.Request().Context(), req.Name, req.Email, req.Message); err != nil {
		return err
	}
	metrics.ContactMessagesTotal.Inc()
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
