package service

import (
	"context"

	"github.com/BinaryBrain010/buy-sell-liberia-sub002/internal/entity"
	"github.com/BinaryBrain010/buy-sell-liberia-sub002/internal/repository"

	"github.com/google/uuid"
)

type FavoriteService struct {
	favorites repository.FavoriteRepository
	products  repository.ProductRepository
}

func NewFavoriteService(favorites repository.FavoriteRepository, products repository.ProductRepository) *FavoriteService {
	return &FavoriteService{favorites: favorites, products: products}
}

func (s *FavoriteService) Add(ctx context.Context, userID, productID uuid.UUID) error {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return s.favorites.Add(ctx, &entity.Favorite{UserID: userID, ProductID: productID})
}

func (s *FavoriteService) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	return s.favorites.Remove(ctx, userID, productID)
}

func (s *FavoriteService) List(ctx context.Context, userID uuid.UUID) ([]entity.Favorite, error) {
	return s.favorites.ListByUser(ctx, userID)
}
