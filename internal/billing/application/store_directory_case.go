package application

import (
	"context"

	"github.com/google/uuid"
	"github.com/murugannagaraja781/billingsoftware/internal/billing/domain"
)

type StoreDirectoryCase struct {
	stores domain.StoreRepository

	newId func() string
}

func NewStoreDirectoryCase(stores domain.StoreRepository) *StoreDirectoryCase {
	return &StoreDirectoryCase{
		stores: stores,
		newId:  uuid.NewString,
	}
}

func (c *StoreDirectoryCase) ListStores(ctx context.Context) ([]domain.Store, error) {
	return c.stores.ListStores(ctx)
}

func (c *StoreDirectoryCase) CreateStore(ctx context.Context, name, location string) (domain.Store, error) {
	if name == "" {
		return domain.Store{}, &domain.ValidationError{Msg: "store name is required"}
	}

	store := domain.Store{
		Id:       c.newId(),
		Name:     name,
		Location: location,
	}

	if err := c.stores.CreateStore(ctx, store); err != nil {
		return domain.Store{}, err
	}

	return store, nil
}
