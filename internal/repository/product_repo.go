package repository

import (
	"context"
	"errors"

	"github.com/BinaryBrain010/buy-sell-liberia-sub002/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductFilter narrows List results. Zero values mean "no constraint".
type ProductFilter struct {
	Category string
	SellerID *uuid.UUID
	MinPrice int64
	MaxPrice int64
	Search   string
	Status   entity.ProductStatus
	Page     int
	Limit    int
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ProductStatus) error
	List(ctx context.Context, filter ProductFilter) ([]entity.Product, int64, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, p *entity.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var product entity.Product
	err := r.db.WithContext(ctx).
		Where("id = ? AND status <> ?", id, entity.ProductDeleted).
		First(&product).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

func (r *productRepository) Update(ctx context.Context, p *entity.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ProductStatus) error {
	return r.db.WithContext(ctx).
		Model(&entity.Product{}).
		Where("id = ?", id).
		Update("status", status).
		Error
}

func (r *productRepository) List(ctx context.Context, filter ProductFilter) ([]entity.Product, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.Product{})

	status := filter.Status
	if status == "" {
		status = entity.ProductActive
	}
	query = query.Where("status = ?", status)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.SellerID != nil {
		query = query.Where("seller_id = ?", *filter.SellerID)
	}
	if filter.MinPrice > 0 {
		query = query.Where("price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		query = query.Where("price <= ?", filter.MaxPrice)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}

	var products []entity.Product
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}
