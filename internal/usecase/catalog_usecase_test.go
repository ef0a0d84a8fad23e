package usecase

import (
	"context"
	"errors"
	"testing"

	"pedezap/internal/domain/entities"
	mock_interfaces "pedezap/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCatalogUseCase_CreateProduct(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, nil)
		_, err := uc.CreateProduct(context.Background(), entities.Product{Name: "   ", Price: 10})
		if !errors.Is(err, ErrInvalidProductName) {
			t.Fatalf("expected ErrInvalidProductName, got %v", err)
		}
	})

	t.Run("invalid price", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, nil)
		_, err := uc.CreateProduct(context.Background(), entities.Product{Name: "Pizza", Price: 0})
		if !errors.Is(err, ErrInvalidProductPrice) {
			t.Fatalf("expected ErrInvalidProductPrice, got %v", err)
		}
	})

	t.Run("pack without pack price", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, nil)
		_, err := uc.CreateProduct(context.Background(), entities.Product{Name: "Cerveja", Price: 5, PackSize: 12})
		if !errors.Is(err, ErrInvalidProductPrice) {
			t.Fatalf("expected ErrInvalidProductPrice, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCatalogUseCase(products, nil)

		products.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Product{})).DoAndReturn(
			func(_ context.Context, p entities.Product) (entities.Product, error) {
				if p.ID == "" || !p.Active || p.Name != "Pizza Margherita" {
					t.Fatalf("unexpected product: %+v", p)
				}
				return p, nil
			},
		)

		res, err := uc.CreateProduct(context.Background(), entities.Product{Name: "  Pizza Margherita ", Price: 25})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestCatalogUseCase_UpdateProduct(t *testing.T) {
	t.Run("missing id", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, nil)
		_, err := uc.UpdateProduct(context.Background(), entities.Product{Name: "Pizza", Price: 25})
		if !errors.Is(err, ErrInvalidProductID) {
			t.Fatalf("expected ErrInvalidProductID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCatalogUseCase(products, nil)

		products.EXPECT().GetByID(gomock.Any(), "p-404").Return(entities.Product{}, nil)

		_, err := uc.UpdateProduct(context.Background(), entities.Product{ID: "p-404", Name: "Pizza", Price: 25})
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCatalogUseCase(products, nil)

		products.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1", Name: "Pizza"}, nil)
		products.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Product) (entities.Product, error) { return p, nil },
		)

		res, err := uc.UpdateProduct(context.Background(), entities.Product{ID: "p1", Name: "Pizza Grande", Price: 30})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Name != "Pizza Grande" {
			t.Fatalf("unexpected product: %+v", res)
		}
	})
}

func TestCatalogUseCase_DeleteProduct(t *testing.T) {
	t.Run("missing id", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, nil)
		if err := uc.DeleteProduct(context.Background(), " "); !errors.Is(err, ErrInvalidProductID) {
			t.Fatalf("expected ErrInvalidProductID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCatalogUseCase(products, nil)

		products.EXPECT().GetByID(gomock.Any(), "p-404").Return(entities.Product{}, nil)

		if err := uc.DeleteProduct(context.Background(), "p-404"); !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCatalogUseCase(products, nil)

		products.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1"}, nil)
		products.EXPECT().Delete(gomock.Any(), "p1").Return(nil)

		if err := uc.DeleteProduct(context.Background(), "p1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCatalogUseCase_Promotions(t *testing.T) {
	t.Run("invalid promotion", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, nil)
		_, err := uc.CreatePromotion(context.Background(), entities.Promotion{Title: " ", Price: 10})
		if !errors.Is(err, ErrInvalidPromotion) {
			t.Fatalf("expected ErrInvalidPromotion, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		promotions := mock_interfaces.NewMockIPromotionRepository(ctrl)
		uc := NewCatalogUseCase(nil, promotions)

		promotions.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Promotion{})).DoAndReturn(
			func(_ context.Context, p entities.Promotion) (entities.Promotion, error) {
				if p.ID == "" || p.Title != "Combo" {
					t.Fatalf("unexpected promotion: %+v", p)
				}
				return p, nil
			},
		)

		if _, err := uc.CreatePromotion(context.Background(), entities.Promotion{Title: "Combo", Price: 32, Active: true}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("list only active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		promotions := mock_interfaces.NewMockIPromotionRepository(ctrl)
		uc := NewCatalogUseCase(nil, promotions)

		promotions.EXPECT().List(gomock.Any(), true).Return([]entities.Promotion{{ID: "promo1"}}, nil)

		res, err := uc.ListPromotions(context.Background(), true)
		if err != nil || len(res) != 1 {
			t.Fatalf("unexpected result: %v %v", res, err)
		}
	})
}
