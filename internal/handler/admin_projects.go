package handler // handler package contains admin project management handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/arefins/consultation-booking/internal/model"
	"github.com/arefins/consultation-booking/internal/repository"
)

type projectBody struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	ImageURL     *string `json:"image_url"`
	Link         *string `json:"link"`
	DisplayOrder int     `json:"display_order"`
}

func (b *projectBody) validate() string {
	b.Title = strings.TrimSpace(b.Title)
	b.Description = strings.TrimSpace(b.Description)
	switch {
	case b.Title == "":
		return "title is required"
	case b.Description == "":
		return "description is required"
	}
	return ""
}

// CreateProject handles POST /v1/admin/projects.
func (h *AdminHandler) CreateProject(c echo.Context) error {
	var body projectBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if msg := body.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}
	p := &model.Project{
		Title:        body.Title,
		Description:  body.Description,
		ImageURL:     body.ImageURL,
		Link:         body.Link,
		DisplayOrder: body.DisplayOrder,
	}
	if err := h.Projects.Create(c.Request().Context(), p); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create project"})
	}
	return c.JSON(http.StatusCreated, p)
}

// UpdateProject handles PUT /v1/admin/projects/:id.
func (h *AdminHandler) UpdateProject(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid project id"})
	}
	var body projectBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if msg := body.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}
	p := &model.Project{
		ID:           id,
		Title:        body.Title,
		Description:  body.Description,
		ImageURL:     body.ImageURL,
		Link:         body.Link,
		DisplayOrder: body.DisplayOrder,
	}
	if err := h.Projects.Update(c.Request().Context(), p); err != nil {
		if err == repository.ErrProjectNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "project not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not update project"})
	}
	return c.JSON(http.StatusOK, p)
}

// DeleteProject handles DELETE /v1/admin/projects/:id.
func (h *AdminHandler) DeleteProject(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid project id"})
	}
	if err := h.Projects.Delete(c.Request().Context(), id); err != nil {
		if err == repository.ErrProjectNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "project not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not delete project"})
	}
	return c.NoContent(http.StatusNoContent)
}
