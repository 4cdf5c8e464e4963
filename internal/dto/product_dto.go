package dto

import (
	"encoding/json"
	"time"

	"github.com/BinaryBrain010/buy-sell-liberia-sub002/internal/entity"
)

type CreateProductRequest struct {
	Title       string   `json:"title" validate:"required,max=255"`
	Description string   `json:"description" validate:"omitempty,max=5000"`
	Price       int64    `json:"price" validate:"required,gt=0"`
	Currency    string   `json:"currency" validate:"omitempty,len=3"`
	Category    string   `json:"category" validate:"omitempty,max=100"`
	Condition   string   `json:"condition" validate:"omitempty,max=50"`
	Images      []string `json:"images" validate:"omitempty,max=10,dive,url"`
}

type UpdateProductRequest struct {
	Title       *string  `json:"title" validate:"omitempty,max=255"`
	Description *string  `json:"description" validate:"omitempty,max=5000"`
	Price       *int64   `json:"price" validate:"omitempty,gt=0"`
	Category    *string  `json:"category" validate:"omitempty,max=100"`
	Condition   *string  `json:"condition" validate:"omitempty,max=50"`
	Images      []string `json:"images" validate:"omitempty,max=10,dive,url"`
}

type ProductResponse struct {
	ID          string    `json:"id"`
	SellerID    string    `json:"seller_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Price       int64     `json:"price"`
	Currency    string    `json:"currency"`
	Category    string    `json:"category,omitempty"`
	Condition   string    `json:"condition,omitempty"`
	Images      []string  `json:"images,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}

func ProductResponseFromEntity(p *entity.Product) ProductResponse {
	response := ProductResponse{
		ID:          p.ID.String(),
		SellerID:    p.SellerID.String(),
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Currency:    p.Currency,
		Category:    p.Category,
		Condition:   p.Condition,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if len(p.Images) > 0 {
		_ = json.Unmarshal(p.Images, &response.Images)
	}
	return response
}

func ProductResponsesFromEntities(products []entity.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, ProductResponseFromEntity(&products[i]))
	}
	return responses
}
