package handler

import (
	"errors"
	"net/http"

	"github.com/BinaryBrain010/buy-sell-liberia-sub002/api/middleware"
	"github.com/BinaryBrain010/buy-sell-liberia-sub002/internal/dto"
	"github.com/BinaryBrain010/buy-sell-liberia-sub002/internal/entity"
	"github.com/BinaryBrain010/buy-sell-liberia-sub002/internal/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type FavoriteHandler struct {
	Service *service.FavoriteService
}

func NewFavoriteHandler(svc *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{Service: svc}
}

func (h *FavoriteHandler) Add(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid product id"))
	}
	if err := h.Service.Add(c.Request().Context(), userID, productID); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Added to favourites"})
}

func (h *FavoriteHandler) Remove(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid product id"))
	}
	if err := h.Service.Remove(c.Request().Context(), userID, productID); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Removed from favourites"})
}

func (h *FavoriteHandler) List(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	favorites, err := h.Service.List(c.Request().Context(), userID)
	if err != nil {
		return writeServiceError(c, err)
	}
	products := make([]entity.Product, 0, len(favorites))
	for i := range favorites {
		products = append(products, favorites[i].Product)
	}
	return c.JSON(http.StatusOK, map[string][]dto.ProductResponse{
		"favorites": dto.ProductResponsesFromEntities(products),
	})
}
