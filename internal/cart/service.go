package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/counterdesk/pos-backend/pkg/db/models"
	"github.com/shopspring/decimal"
)

type productLoader interface {
	FindByID(ctx context.Context, id int64) (*models.Product, error)
}

// Service owns the single active cart of the register. One cashier session
// operates one cart at a time; the mutex keeps cart mutations and checkout
// from interleaving.
type Service interface {
	View() View
	AddProduct(ctx context.Context, productID int64) error
	Increment(ctx context.Context, productID int64) error
	Decrement(productID int64) error
	Clear()
	Contains(productID int64) bool
	Checkout(fn func(lines []Line) error) error
}

// View is a read-only snapshot of the cart for the presentation layer.
type View struct {
	Lines []Line
	Total decimal.Decimal
}

type service struct {
	mu      sync.Mutex
	cart    Cart
	catalog productLoader
}

// NewService builds the cart service for the register's single session.
func NewService(catalog productLoader) (Service, error) {
	if catalog == nil {
		return nil, fmt.Errorf("product loader required")
	}
	return &service{catalog: catalog}, nil
}

func (s *service) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return View{
		Lines: s.cart.Lines(),
		Total: s.cart.Total(),
	}
}

// AddProduct loads the product and adds it to the cart, or increments the
// existing line against the catalog's live stock.
func (s *service) AddProduct(ctx context.Context, productID int64) error {
	product, err := s.catalog.FindByID(ctx, productID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.AddOrIncrement(*product)
}

func (s *service) Increment(ctx context.Context, productID int64) error {
	product, err := s.catalog.FindByID(ctx, productID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Increment(productID, product.Stock)
}

func (s *service) Decrement(productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Decrement(productID)
}

func (s *service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
}

func (s *service) Contains(productID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Contains(productID)
}

// Checkout runs fn with the cart lock held, handing it a snapshot of the
// current lines. The cart is cleared only when fn returns nil, so a failed
// finalization leaves every line re-editable.
func (s *service) Checkout(fn func(lines []Line) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(s.cart.Lines()); err != nil {
		return err
	}
	s.cart.Clear()
	return nil
}
