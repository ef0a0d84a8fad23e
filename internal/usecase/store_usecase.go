package usecase

import (
	"context"
	"errors"
	"strings"

	"pedezap/internal/domain/entities"
	"pedezap/internal/usecase/interfaces"
)

var (
	ErrInvalidStoreName = errors.New("invalid store name")
	ErrInvalidStoreFee  = errors.New("invalid delivery fee")
)

// IStoreConfigUseCase exposes the dashboard store-settings operations.

type IStoreConfigUseCase interface {
	Get(ctx context.Context) (entities.StoreConfig, error)
	Update(ctx context.Context, cfg entities.StoreConfig) (entities.StoreConfig, error)
}

type StoreConfigUseCase struct {
	repo interfaces.IStoreConfigRepository
}

var _ IStoreConfigUseCase = (*StoreConfigUseCase)(nil)

func NewStoreConfigUseCase(repo interfaces.IStoreConfigRepository) *StoreConfigUseCase {
	return &StoreConfigUseCase{repo: repo}
}

func (u *StoreConfigUseCase) Get(ctx context.Context) (entities.StoreConfig, error) {
	return u.repo.Get(ctx)
}

func (u *StoreConfigUseCase) Update(ctx context.Context, cfg entities.StoreConfig) (entities.StoreConfig, error) {
	cfg.Name = strings.TrimSpace(cfg.Name)
	if cfg.Name == "" {
		return entities.StoreConfig{}, ErrInvalidStoreName
	}
	if cfg.DeliveryFee < 0 {
		return entities.StoreConfig{}, ErrInvalidStoreFee
	}
	return u.repo.Save(ctx, cfg)
}
