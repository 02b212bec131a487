package handler // handler package contains admin content management handlers

import (
	"encoding/json" // json validates the incoming document
	"io"            // io reads the raw request body
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/arefins/consultation-booking/internal/repository"
)

// maxContentBytes caps the size of a content document.  Sections hold
// page copy, not media, so 64 KiB is generous.
const maxContentBytes = 64 << 10

// GetContentSection handles GET /v1/admin/content/:section.  The admin
// view returns the stored document as-is, with no default merging, so
// the operator sees exactly what is saved.
func (h *AdminHandler) GetContentSection(c echo.Context) error {
	section := strings.ToLower(strings.TrimSpace(c.Param("section")))
	if section == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "section is required"})
	}
	cs, err := h.Content.GetSection(c.Request().Context(), section)
	if err != nil {
		if err == repository.ErrSectionNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "section not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "database error"})
	}
	return c.JSON(http.StatusOK, cs)
}

// UpsertContentSection handles PUT /v1/admin/content/:section.  The body
// is stored verbatim as the section document; it only has to be valid
// JSON.  Section names are free-form so new page areas need no code
// change.
func (h *AdminHandler) UpsertContentSection(c echo.Context) error {
	section := strings.ToLower(strings.TrimSpace(c.Param("section")))
	if section == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "section is required"})
	}
	doc, err := io.ReadAll(io.LimitReader(c.Request().Body, maxContentBytes+1))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "could not read body"})
	}
	if len(doc) > maxContentBytes {
		return c.JSON(http.StatusRequestEntityTooLarge, map[string]string{"error": "content too large"})
	}
	if !json.Valid(doc) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "content must be valid JSON"})
	}
	if err := h.Content.UpsertSection(c.Request().Context(), section, doc); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not save section"})
	}
	cs, err := h.Content.GetSection(c.Request().Context(), section)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "database error"})
	}
	return c.JSON(http.StatusOK, cs)
}
