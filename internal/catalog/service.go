package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/counterdesk/pos-backend/pkg/db/models"
	pkgerrors "github.com/counterdesk/pos-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

// cartGuard reports whether a product currently sits in the active cart.
// Products referenced by an open cart must not be deleted out from under it.
type cartGuard interface {
	Contains(productID int64) bool
}

// Service exposes catalog management operations.
type Service interface {
	ListAll(ctx context.Context) ([]models.Product, error)
	ListAvailable(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	Create(ctx context.Context, input ProductInput) (*models.Product, error)
	Update(ctx context.Context, id int64, input ProductInput) (*models.Product, error)
	Delete(ctx context.Context, id int64) error
}

// ProductInput holds the validated payload to create or update a product.
type ProductInput struct {
	Name      string
	UnitPrice decimal.Decimal
	Stock     int
}

type service struct {
	repo Repository
	cart cartGuard
}

// NewService wires a catalog service with the provided repository. The cart
// guard may be nil when no cart session exists (migration tooling, tests).
func NewService(repo Repository, cart cartGuard) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo, cart: cart}, nil
}

func (s *service) ListAll(ctx context.Context) ([]models.Product, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) ListAvailable(ctx context.Context) ([]models.Product, error) {
	return s.repo.ListAvailable(ctx)
}

func (s *service) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Create(ctx context.Context, input ProductInput) (*models.Product, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	product := &models.Product{
		Name:      strings.TrimSpace(input.Name),
		UnitPrice: input.UnitPrice,
		Stock:     input.Stock,
	}
	return s.repo.Create(ctx, product)
}

func (s *service) Update(ctx context.Context, id int64, input ProductInput) (*models.Product, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	product.Name = strings.TrimSpace(input.Name)
	product.UnitPrice = input.UnitPrice
	product.Stock = input.Stock
	return s.repo.Update(ctx, product)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if s.cart != nil && s.cart.Contains(id) {
		return pkgerrors.New(pkgerrors.CodeConflict, "product is in the active cart").
			WithDetails(map[string]any{"product_id": id})
	}
	return s.repo.Delete(ctx, id)
}

func validateInput(input ProductInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product name is required")
	}
	if input.UnitPrice.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "unit price must not be negative")
	}
	if input.Stock < 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "stock must not be negative")
	}
	return nil
}
