package usecase

import (
	"context"
	"errors"
	"strings"

	"pedezap/internal/domain/entities"
	"pedezap/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrInvalidProductID    = errors.New("invalid product id")
	ErrInvalidProductName  = errors.New("invalid product name")
	ErrInvalidProductPrice = errors.New("invalid product price")
	ErrInvalidPromotion    = errors.New("invalid promotion")
)

// ICatalogUseCase exposes the dashboard catalog operations: product CRUD and
// promotion management.

type ICatalogUseCase interface {
	CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error)
	UpdateProduct(ctx context.Context, p entities.Product) (entities.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	GetProduct(ctx context.Context, id string) (entities.Product, error)
	ListProducts(ctx context.Context) ([]entities.Product, error)
	CreatePromotion(ctx context.Context, p entities.Promotion) (entities.Promotion, error)
	DeletePromotion(ctx context.Context, id string) error
	ListPromotions(ctx context.Context, onlyActive bool) ([]entities.Promotion, error)
}

type CatalogUseCase struct {
	products   interfaces.IProductRepository
	promotions interfaces.IPromotionRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(products interfaces.IProductRepository, promotions interfaces.IPromotionRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products, promotions: promotions}
}

func validateProduct(p entities.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrInvalidProductName
	}
	if p.Price <= 0 {
		return ErrInvalidProductPrice
	}
	if p.PackSize < 0 || (p.PackSize > 0 && p.PackPrice <= 0) {
		return ErrInvalidProductPrice
	}
	return nil
}

func (u *CatalogUseCase) CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error) {
	p.Name = strings.TrimSpace(p.Name)
	if err := validateProduct(p); err != nil {
		return entities.Product{}, err
	}
	p.ID = uuid.NewString()
	p.Active = true
	return u.products.Create(ctx, p)
}

func (u *CatalogUseCase) UpdateProduct(ctx context.Context, p entities.Product) (entities.Product, error) {
	p.ID = strings.TrimSpace(p.ID)
	if p.ID == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	p.Name = strings.TrimSpace(p.Name)
	if err := validateProduct(p); err != nil {
		return entities.Product{}, err
	}

	existing, err := u.products.GetByID(ctx, p.ID)
	if err != nil {
		return entities.Product{}, err
	}
	if existing.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return u.products.Update(ctx, p)
}

func (u *CatalogUseCase) DeleteProduct(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidProductID
	}
	existing, err := u.products.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrProductNotFound
	}
	return u.products.Delete(ctx, id)
}

func (u *CatalogUseCase) GetProduct(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidProductID
	}
	p, err := u.products.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *CatalogUseCase) ListProducts(ctx context.Context) ([]entities.Product, error) {
	return u.products.List(ctx)
}

func (u *CatalogUseCase) CreatePromotion(ctx context.Context, p entities.Promotion) (entities.Promotion, error) {
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" || p.Price <= 0 {
		return entities.Promotion{}, ErrInvalidPromotion
	}
	p.ID = uuid.NewString()
	return u.promotions.Create(ctx, p)
}

func (u *CatalogUseCase) DeletePromotion(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidPromotion
	}
	return u.promotions.Delete(ctx, id)
}

func (u *CatalogUseCase) ListPromotions(ctx context.Context, onlyActive bool) ([]entities.Promotion, error) {
	return u.promotions.List(ctx, onlyActive)
}
