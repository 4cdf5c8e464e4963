package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/BinaryBrain010/buy-sell-liberia-sub002/internal/entity"
	"github.com/BinaryBrain010/buy-sell-liberia-sub002/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CreateProductInput struct {
	Title       string
	Description string
	Price       int64
	Currency    string
	Category    string
	Condition   string
	Images      []string
}

type UpdateProductInput struct {
	Title       *string
	Description *string
	Price       *int64
	Category    *string
	Condition   *string
	Images      []string
}

type ProductService struct {
	products repository.ProductRepository
}

func NewProductService(products repository.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

func (s *ProductService) Create(ctx context.Context, sellerID uuid.UUID, input CreateProductInput) (*entity.Product, error) {
	if strings.TrimSpace(input.Title) == "" || input.Price <= 0 {
		return nil, ErrInvalidInput
	}

	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = "USD"
	}

	product := &entity.Product{
		SellerID:    sellerID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Price:       input.Price,
		Currency:    currency,
		Category:    input.Category,
		Condition:   input.Condition,
		Status:      entity.ProductActive,
	}
	if len(input.Images) > 0 {
		images, err := json.Marshal(input.Images)
		if err != nil {
			return nil, err
		}
		product.Images = datatypes.JSON(images)
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *ProductService) List(ctx context.Context, filter repository.ProductFilter) ([]entity.Product, int64, error) {
	return s.products.List(ctx, filter)
}

func (s *ProductService) Update(ctx context.Context, userID, productID uuid.UUID, input UpdateProductInput) (*entity.Product, error) {
	product, err := s.ownedProduct(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, ErrInvalidInput
		}
		product.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		if *input.Price <= 0 {
			return nil, ErrInvalidInput
		}
		product.Price = *input.Price
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Condition != nil {
		product.Condition = *input.Condition
	}
	if input.Images != nil {
		images, err := json.Marshal(input.Images)
		if err != nil {
			return nil, err
		}
		product.Images = datatypes.JSON(images)
	}

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) MarkSold(ctx context.Context, userID, productID uuid.UUID) error {
	if _, err := s.ownedProduct(ctx, userID, productID); err != nil {
		return err
	}
	return s.products.UpdateStatus(ctx, productID, entity.ProductSold)
}

// Delete is a soft delete: the row stays but drops out of every listing.
func (s *ProductService) Delete(ctx context.Context, userID, productID uuid.UUID) error {
	if _, err := s.ownedProduct(ctx, userID, productID); err != nil {
		return err
	}
	return s.products.UpdateStatus(ctx, productID, entity.ProductDeleted)
}

func (s *ProductService) ownedProduct(ctx context.Context, userID, productID uuid.UUID) (*entity.Product, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if product.SellerID != userID {
		return nil, ErrNotProductOwner
	}
	return product, nil
}
