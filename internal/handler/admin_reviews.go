package handler // handler package contains admin review management handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/arefins/consultation-booking/internal/model"
	"github.com/arefins/consultation-booking/internal/repository"
)

type reviewBody struct {
	ClientName    string  `json:"client_name"`
	ClientCompany *string `json:"client_company"`
	ClientPhoto   *string `json:"client_photo"`
	ReviewText    string  `json:"review_text"`
	Rating        uint8   `json:"rating"`
	DisplayOrder  int     `json:"display_order"`
}

// validate checks the editable fields shared by create and update.
func (b *reviewBody) validate() string {
	b.ClientName = strings.TrimSpace(b.ClientName)
	b.ReviewText = strings.TrimSpace(b.ReviewText)
	switch {
	case b.ClientName == "":
		return "client_name is required"
	case b.ReviewText == "":
		return "review_text is required"
	case b.Rating < 1 || b.Rating > 5:
		return "rating must be between 1 and 5"
	}
	return ""
}

// CreateReview handles POST /v1/admin/reviews.
func (h *AdminHandler) CreateReview(c echo.Context) error {
	var body reviewBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if msg := body.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}
	rv := &model.Review{
		ClientName:    body.ClientName,
		ClientCompany: body.ClientCompany,
		ClientPhoto:   body.ClientPhoto,
		ReviewText:    body.ReviewText,
		Rating:        body.Rating,
		DisplayOrder:  body.DisplayOrder,
	}
	if err := h.Reviews.Create(c.Request().Context(), rv); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create review"})
	}
	return c.JSON(http.StatusCreated, rv)
}

// UpdateReview handles PUT /v1/admin/reviews/:id.  The body replaces all
// editable fields.
func (h *AdminHandler) UpdateReview(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid review id"})
	}
	var body reviewBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if msg := body.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}
	rv := &model.Review{
		ID:            id,
		ClientName:    body.ClientName,
		ClientCompany: body.ClientCompany,
		ClientPhoto:   body.ClientPhoto,
		ReviewText:    body.ReviewText,
		Rating:        body.Rating,
		DisplayOrder:  body.DisplayOrder,
	}
	if err := h.Reviews.Update(c.Request().Context(), rv); err != nil {
		if err == repository.ErrReviewNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "review not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not update review"})
	}
	return c.JSON(http.StatusOK, rv)
}

// DeleteReview handles DELETE /v1/admin/reviews/:id.
func (h *AdminHandler) DeleteReview(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid review id"})
	}
	if err := h.Reviews.Delete(c.Request().Context(), id); err != nil {
		if err == repository.ErrReviewNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "review not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not delete review"})
	}
	return c.NoContent(http.StatusNoContent)
}
