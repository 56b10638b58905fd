package handler

import (
	"net/http"
	"strings"

	"bookshop/internal/delivery/api/response"
	"bookshop/internal/domain/entity"
	"bookshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
}

// CatalogHandler serves categories, authors and tags.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
}

func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{catalogUC: params.CatalogUC}
}

type CreateCategoryRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description *string `json:"description"`
}

type CreateAuthorRequest struct {
	Name string  `json:"name" validate:"required,min=2,max=100"`
	Bio  *string `json:"bio"`
}

type CreateTagRequest struct {
	Name string `json:"name" validate:"required,min=2,max=30"`
}

type CategoryResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type AuthorResponse struct {
	ID   int64   `json:"id"`
	Name string  `json:"name"`
	Bio  *string `json:"bio"`
}

type TagResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (h *CatalogHandler) CreateCategory(c echo.Context) error {
	var req CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid category input")
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	category, err := h.catalogUC.CreateCategory(c.Request().Context(), usecase.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toCategoryResponse(category))
}

func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(categories, toCategoryResponse))
}

func (h *CatalogHandler) CreateAuthor(c echo.Context) error {
	var req CreateAuthorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid author input")
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	author, err := h.catalogUC.CreateAuthor(c.Request().Context(), usecase.CreateAuthorInput{
		Name: req.Name,
		Bio:  req.Bio,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toAuthorResponse(author))
}

func (h *CatalogHandler) ListAuthors(c echo.Context) error {
	authors, err := h.catalogUC.ListAuthors(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(authors, toAuthorResponse))
}

func (h *CatalogHandler) CreateTag(c echo.Context) error {
	var req CreateTagRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid tag input")
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	tag, err := h.catalogUC.CreateTag(c.Request().Context(), req.Name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toTagResponse(tag))
}

func (h *CatalogHandler) ListTags(c echo.Context) error {
	tags, err := h.catalogUC.ListTags(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapSlice(tags, toTagResponse))
}

func toCategoryResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{ID: category.ID, Name: category.Name, Description: category.Description}
}

func toAuthorResponse(author *entity.Author) AuthorResponse {
	return AuthorResponse{ID: author.ID, Name: author.Name, Bio: author.Bio}
}

func toTagResponse(tag *entity.Tag) TagResponse {
	return TagResponse{ID: tag.ID, Name: tag.Name}
}

// mapSlice never returns nil so empty lists encode as [].
func mapSlice[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}

	return out
}
