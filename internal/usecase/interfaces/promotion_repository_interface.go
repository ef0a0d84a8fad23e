package interfaces

import (
	"context"
	"pedezap/internal/domain/entities"
)

// IPromotionRepository abstracts persistence for Promotion.

type IPromotionRepository interface {
	Create(ctx context.Context, p entities.Promotion) (entities.Promotion, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, onlyActive bool) ([]entities.Promotion, error)
}
