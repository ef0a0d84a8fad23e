package interfaces

import (
	"context"
	"pedezap/internal/domain/entities"
)

// IStoreConfigRepository abstracts persistence for the single store-level
// configuration record.

type IStoreConfigRepository interface {
	Get(ctx context.Context) (entities.StoreConfig, error)
	Save(ctx context.Context, cfg entities.StoreConfig) (entities.StoreConfig, error)
}
