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

var errInvalidStorePayload = pkg.NewDomainErrorSimple("INVALID_STORE_INPUT", "Invalid store config payload", http.StatusBadRequest)

// StoreHandler handles store settings requests.

type StoreHandler struct {
	usecase usecase.IStoreConfigUseCase
}

func NewStoreHandler(uc usecase.IStoreConfigUseCase) *StoreHandler {
	return &StoreHandler{usecase: uc}
}

func (h *StoreHandler) GetConfig(c *gin.Context) {
	cfg, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		appErr := mapStoreError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromStoreConfig(cfg))
}

func (h *StoreHandler) UpdateConfig(c *gin.Context) {
	var payload request.StoreConfigRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStorePayload.HTTPStatus, errInvalidStorePayload.ToHTTPError())
		return
	}

	cfg, err := h.usecase.Update(c.Request.Context(), entities.StoreConfig{
		Name:         payload.Name,
		Greeting:     payload.Greeting,
		DeliveryFee:  payload.DeliveryFee,
		PixKey:       payload.PixKey,
		Address:      payload.Address,
		MenuImageURL: payload.MenuImageURL,
	})
	if err != nil {
		appErr := mapStoreError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromStoreConfig(cfg))
}

func mapStoreError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidStoreName), errors.Is(err, usecase.ErrInvalidStoreFee):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
