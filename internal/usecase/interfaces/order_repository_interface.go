package interfaces

import (
	"context"
	"pedezap/internal/domain/entities"
)

// IOrderRepository abstracts persistence for finalized orders.
//
// The bot only creates; listing and status updates belong to the dashboard.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
}
