package handlers

import (
	"errors"
	"net/http"

	request "pedezap/internal/adapter/http/dto/request"
	response "pedezap/internal/adapter/http/dto/response"
	"pedezap/internal/domain/entities"
	"pedezap/internal/usecase"
	"pedezap/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidProductPayload   = pkg.NewDomainErrorSimple("INVALID_PRODUCT_INPUT", "Invalid product payload", http.StatusBadRequest)
	errInvalidPromotionPayload = pkg.NewDomainErrorSimple("INVALID_PROMOTION_INPUT", "Invalid promotion payload", http.StatusBadRequest)
)

// CatalogHandler handles dashboard catalog requests: products and promotions.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// CreateProduct godoc
// @Summary  Create a catalog product
// @Tags     catalog
// @Accept   json
// @Produce  json
// @Param    product body request.ProductRequest true "Product"
// @Success  201 {object} response.ProductResponse
// @Router   /products [post]
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProductPayload.HTTPStatus, errInvalidProductPayload.ToHTTPError())
		return
	}

	product, err := h.usecase.CreateProduct(c.Request.Context(), entities.Product{
		Name:        payload.Name,
		Description: payload.Description,
		Price:       payload.Price,
		PackSize:    payload.PackSize,
		PackPrice:   payload.PackPrice,
		CategoryID:  payload.CategoryID,
		Active:      payload.ResolveActive(),
	})
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProduct(product))
}

func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProductPayload.HTTPStatus, errInvalidProductPayload.ToHTTPError())
		return
	}

	product, err := h.usecase.UpdateProduct(c.Request.Context(), entities.Product{
		ID:          c.Param("id"),
		Name:        payload.Name,
		Description: payload.Description,
		Price:       payload.Price,
		PackSize:    payload.PackSize,
		PackPrice:   payload.PackPrice,
		CategoryID:  payload.CategoryID,
		Active:      payload.ResolveActive(),
	})
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProduct(product))
}

func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	if err := h.usecase.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.usecase.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(product))
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.usecase.ListProducts(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProducts(products))
}

func (h *CatalogHandler) CreatePromotion(c *gin.Context) {
	var payload request.PromotionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPromotionPayload.HTTPStatus, errInvalidPromotionPayload.ToHTTPError())
		return
	}

	promotion, err := h.usecase.CreatePromotion(c.Request.Context(), entities.Promotion{
		Title:       payload.Title,
		Description: payload.Description,
		Price:       payload.Price,
		Active:      payload.Active,
	})
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPromotion(promotion))
}

func (h *CatalogHandler) DeletePromotion(c *gin.Context) {
	if err := h.usecase.DeletePromotion(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) ListPromotions(c *gin.Context) {
	onlyActive := c.Query("active") == "true"
	promotions, err := h.usecase.ListPromotions(c.Request.Context(), onlyActive)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPromotions(promotions))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductID),
		errors.Is(err, usecase.ErrInvalidProductName),
		errors.Is(err, usecase.ErrInvalidProductPrice),
		errors.Is(err, usecase.ErrInvalidPromotion):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
