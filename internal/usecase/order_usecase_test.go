package usecase

import (
	"context"
	"errors"
	"testing"

	"pedezap/internal/domain/entities"
	mock_interfaces "pedezap/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOrderUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewOrderUseCase(nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "o-404").Return(entities.Order{}, nil)

		_, err := uc.GetByID(context.Background(), "o-404")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "o1").Return(entities.Order{ID: "o1", Total: 30}, nil)

		res, err := uc.GetByID(context.Background(), " o1 ")
		if err != nil || res.Total != 30 {
			t.Fatalf("unexpected result: %+v %v", res, err)
		}
	})
}

func TestOrderUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewOrderUseCase(nil)
		_, err := uc.UpdateStatus(context.Background(), "o1", "em_orbita")
		if !errors.Is(err, ErrInvalidOrderStatus) {
			t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo)

		repo.EXPECT().UpdateStatus(gomock.Any(), "o-404", entities.OrderStatusConfirmado).Return(entities.Order{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "o-404", entities.OrderStatusConfirmado)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo)

		repo.EXPECT().UpdateStatus(gomock.Any(), "o1", entities.OrderStatusEntregue).Return(entities.Order{ID: "o1", Status: entities.OrderStatusEntregue}, nil)

		res, err := uc.UpdateStatus(context.Background(), "o1", entities.OrderStatusEntregue)
		if err != nil || res.Status != entities.OrderStatusEntregue {
			t.Fatalf("unexpected result: %+v %v", res, err)
		}
	})
}

func TestStoreConfigUseCase_Update(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		uc := NewStoreConfigUseCase(nil)
		_, err := uc.Update(context.Background(), entities.StoreConfig{Name: "  "})
		if !errors.Is(err, ErrInvalidStoreName) {
			t.Fatalf("expected ErrInvalidStoreName, got %v", err)
		}
	})

	t.Run("negative fee", func(t *testing.T) {
		uc := NewStoreConfigUseCase(nil)
		_, err := uc.Update(context.Background(), entities.StoreConfig{Name: "Loja", DeliveryFee: -1})
		if !errors.Is(err, ErrInvalidStoreFee) {
			t.Fatalf("expected ErrInvalidStoreFee, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIStoreConfigRepository(ctrl)
		uc := NewStoreConfigUseCase(repo)

		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.StoreConfig{})).DoAndReturn(
			func(_ context.Context, cfg entities.StoreConfig) (entities.StoreConfig, error) {
				if cfg.Name != "Pizzaria do Zé" {
					t.Fatalf("unexpected config: %+v", cfg)
				}
				return cfg, nil
			},
		)

		if _, err := uc.Update(context.Background(), entities.StoreConfig{Name: " Pizzaria do Zé ", DeliveryFee: 5}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
