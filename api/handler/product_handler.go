package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/BinaryBrain010/buy-sell-liberia-sub002/api/middleware"
	"github.com/BinaryBrain010/buy-sell-liberia-sub002/internal/dto"
	"github.com/BinaryBrain010/buy-sell-liberia-sub002/internal/repository"
	"github.com/BinaryBrain010/buy-sell-liberia-sub002/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	Service  *service.ProductService
	Validate *validator.Validate
}

func NewProductHandler(svc *service.ProductService, validate *validator.Validate) *ProductHandler {
	return &ProductHandler{Service: svc, Validate: validate}
}

func (h *ProductHandler) Create(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	var req dto.CreateProductRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			return writeError(c, http.StatusBadRequest, err)
		}
	}
	input := service.CreateProductInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Currency:    req.Currency,
		Category:    req.Category,
		Condition:   req.Condition,
		Images:      req.Images,
	}
	product, err := h.Service.Create(c.Request().Context(), userID, input)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.ProductResponseFromEntity(product))
}

func (h *ProductHandler) Get(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid product id"))
	}
	product, err := h.Service.Get(c.Request().Context(), productID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ProductResponseFromEntity(product))
}

func (h *ProductHandler) List(c echo.Context) error {
	filter := repository.ProductFilter{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
	}
	if seller := c.QueryParam("seller"); seller != "" {
		sellerID, err := uuid.Parse(seller)
		if err != nil {
			return writeError(c, http.StatusBadRequest, errors.New("invalid seller id"))
		}
		filter.SellerID = &sellerID
	}
	filter.MinPrice, _ = strconv.ParseInt(c.QueryParam("minPrice"), 10, 64)
	filter.MaxPrice, _ = strconv.ParseInt(c.QueryParam("maxPrice"), 10, 64)
	filter.Page, _ = strconv.Atoi(c.QueryParam("page"))
	filter.Limit, _ = strconv.Atoi(c.QueryParam("limit"))

	products, total, err := h.Service.List(c.Request().Context(), filter)
	if err != nil {
		return writeServiceError(c, err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return c.JSON(http.StatusOK, dto.ProductListResponse{
		Products: dto.ProductResponsesFromEntities(products),
		Total:    total,
		Page:     page,
		Limit:    limit,
	})
}

func (h *ProductHandler) Update(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid product id"))
	}
	var req dto.UpdateProductRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			return writeError(c, http.StatusBadRequest, err)
		}
	}
	input := service.UpdateProductInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Condition:   req.Condition,
		Images:      req.Images,
	}
	product, err := h.Service.Update(c.Request().Context(), userID, productID, input)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ProductResponseFromEntity(product))
}

func (h *ProductHandler) MarkSold(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid product id"))
	}
	if err := h.Service.MarkSold(c.Request().Context(), userID, productID); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Product marked as sold"})
}

func (h *ProductHandler) Delete(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid product id"))
	}
	if err := h.Service.Delete(c.Request().Context(), userID, productID); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Product deleted"})
}
