package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProduct(t *testing.T) {
	products := newFakeProductRepo()
	svc := NewProductService(products)
	ctx := context.Background()
	seller := uuid.New()

	product, err := svc.Create(ctx, seller, CreateProductInput{
		Title:  "  Bicycle  ",
		Price:  150,
		Images: []string{"https://img.example/1.jpg"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Bicycle", product.Title)
	assert.Equal(t, "USD", product.Currency)
	assert.Equal(t, seller, product.SellerID)

	_, err = svc.Create(ctx, seller, CreateProductInput{Title: "", Price: 10})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(ctx, seller, CreateProductInput{Title: "Free", Price: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateProductOwnership(t *testing.T) {
	products := newFakeProductRepo()
	svc := NewProductService(products)
	ctx := context.Background()
	seller := uuid.New()

	product, err := svc.Create(ctx, seller, CreateProductInput{Title: "Bicycle", Price: 150})
	require.NoError(t, err)

	newTitle := "Mountain bike"
	updated, err := svc.Update(ctx, seller, product.ID, UpdateProductInput{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Mountain bike", updated.Title)

	_, err = svc.Update(ctx, uuid.New(), product.ID, UpdateProductInput{Title: &newTitle})
	assert.ErrorIs(t, err, ErrNotProductOwner)
}

func TestDeleteProductIsSoft(t *testing.T) {
	products := newFakeProductRepo()
	svc := NewProductService(products)
	ctx := context.Background()
	seller := uuid.New()

	product, err := svc.Create(ctx, seller, CreateProductInput{Title: "Bicycle", Price: 150})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, uuid.New(), product.ID), ErrNotProductOwner)
	require.NoError(t, svc.Delete(ctx, seller, product.ID))

	_, err = svc.Get(ctx, product.ID)
	assert.ErrorIs(t, err, ErrProductNotFound, "deleted products vanish from reads")
}

func TestMarkSold(t *testing.T) {
	products := newFakeProductRepo()
	svc := NewProductService(products)
	ctx := context.Background()
	seller := uuid.New()

	product, err := svc.Create(ctx, seller, CreateProductInput{Title: "Bicycle", Price: 150})
	require.NoError(t, err)

	require.NoError(t, svc.MarkSold(ctx, seller, product.ID))

	got, err := svc.Get(ctx, product.ID)
	require.NoError(t, err, "sold products remain visible")
	assert.Equal(t, "sold", string(got.Status))
}

func TestFavoriteAddRemove(t *testing.T) {
	products := newFakeProductRepo()
	favorites := newFakeFavoriteRepo()
	productSvc := NewProductService(products)
	svc := NewFavoriteService(favorites, products)
	ctx := context.Background()

	seller := uuid.New()
	buyer := uuid.New()
	product, err := productSvc.Create(ctx, seller, CreateProductInput{Title: "Bicycle", Price: 150})
	require.NoError(t, err)

	require.NoError(t, svc.Add(ctx, buyer, product.ID))
	require.NoError(t, svc.Add(ctx, buyer, product.ID), "favouriting twice is a no-op")

	list, err := svc.List(ctx, buyer)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	assert.ErrorIs(t, svc.Add(ctx, buyer, uuid.New()), ErrProductNotFound)

	require.NoError(t, svc.Remove(ctx, buyer, product.ID))
	list, err = svc.List(ctx, buyer)
	require.NoError(t, err)
	assert.Empty(t, list)
}
