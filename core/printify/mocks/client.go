package mocks

import (
	"context"

	"inventory-sync/core/printify"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of printify.Client
type Client struct {
	mock.Mock
}

func (m *Client) GetProducts(ctx context.Context) ([]printify.Product, error) {
	args := m.Called(ctx)
	if products, ok := args.Get(0).([]printify.Product); ok {
		return products, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) GetBlueprint(ctx context.Context, blueprintID int) (*printify.Blueprint, error) {
	args := m.Called(ctx, blueprintID)
	if bp, ok := args.Get(0).(*printify.Blueprint); ok {
		return bp, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) GetBlueprintVariants(ctx context.Context, blueprintID, providerID int) (*printify.CatalogSnapshot, error) {
	args := m.Called(ctx, blueprintID, providerID)
	if snap, ok := args.Get(0).(*printify.CatalogSnapshot); ok {
		return snap, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) UpdateProduct(ctx context.Context, productID string, payload printify.UpdatePayload) error {
	args := m.Called(ctx, productID, payload)
	return args.Error(0)
}
