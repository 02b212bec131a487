// This file defines handlers for the public consultation API. These routes
// allow unauthenticated visitors to browse available slots, page content,
// reviews and projects. Responses carry only display data; operator-only
// fields such as admin notes never appear here.

package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/arefins/consultation-booking/internal/model"
	"github.com/arefins/consultation-booking/internal/repository"
)

// PublicHandler aggregates repositories needed for unauthenticated browsing.
type PublicHandler struct {
	SlotRepo    *repository.SlotRepo    // provides access to consultation slots
	ContentRepo *repository.ContentRepo // provides access to content sections
	ReviewRepo  *repository.ReviewRepo  // provides access to reviews
	ProjectRepo *repository.ProjectRepo // provides access to projects
}

// NewPublicHandler constructs a PublicHandler with the provided
// repositories. All dependencies must be non-nil.
func NewPublicHandler(slots *repository.SlotRepo, content *repository.ContentRepo, reviews *repository.ReviewRepo, projects *repository.ProjectRepo) *PublicHandler {
	if slots == nil || content == nil || reviews == nil || projects == nil {
		panic("nil repository passed to NewPublicHandler")
	}
	return &PublicHandler{SlotRepo: slots, ContentRepo: content, ReviewRepo: reviews, ProjectRepo: projects}
}

// ListAvailableSlots handles GET /v1/consultation/slots. Only open slots
// on today or a future date are returned, ordered by date then start time,
// so the booking page never offers a slot that cannot be claimed.
func (h *PublicHandler) ListAvailableSlots(c echo.Context) error {
	slots, err := h.SlotRepo.List(c.Request().Context(), true)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"slots": slots})
}

// GetContent handles GET /v1/consultation/content/:section. The payment
// section is special-cased: when the operator has not saved one yet the
// defaults are served instead of a 404 so the booking form always has a
// fee and payment instructions to show.
func (h *PublicHandler) GetContent(c echo.Context) error {
	section := strings.ToLower(strings.TrimSpace(c.Param("section")))
	if section == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "section is required"})
	}
	cs, err := h.ContentRepo.GetSection(c.Request().Context(), section)
	if err != nil {
		if err == repository.ErrSectionNotFound {
			if section == model.SectionPayment {
				return c.JSON(http.StatusOK, echo.Map{
					"section": section,
					"content": model.DefaultPaymentConfig(),
				})
			}
			return c.JSON(http.StatusNotFound, echo.Map{"error": "section not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if section == model.SectionPayment {
		// Merge stored values over the defaults so a partially filled
		// document still yields a complete payment config.
		return c.JSON(http.StatusOK, echo.Map{
			"section": cs.Section,
			"content": model.PaymentConfigFrom(cs.Content),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"section": cs.Section, "content": cs.Content})
}

// ListReviews handles GET /v1/consultation/reviews.
func (h *PublicHandler) ListReviews(c echo.Context) error {
	reviews, err := h.ReviewRepo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"reviews": reviews})
}

// ListProjects handles GET /v1/consultation/projects.
func (h *PublicHandler) ListProjects(c echo.Context) error {
	projects, err := h.ProjectRepo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"projects": projects})
}
