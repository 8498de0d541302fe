package catalog

import (
	"context"
	"testing"

	"github.com/counterdesk/pos-backend/pkg/db/models"
	pkgerrors "github.com/counterdesk/pos-backend/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRepo struct {
	Repository
	created *models.Product
	deleted []int64
}

func (f *fakeRepo) WithTx(tx *gorm.DB) Repository { return f }

func (f *fakeRepo) Create(_ context.Context, product *models.Product) (*models.Product, error) {
	product.ID = 1
	f.created = product
	return product, nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type stubCart struct {
	held map[int64]bool
}

func (s stubCart) Contains(productID int64) bool { return s.held[productID] }

func TestCreateValidation(t *testing.T) {
	repo := &fakeRepo{}
	svc, err := NewService(repo, nil)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = svc.Create(ctx, ProductInput{Name: "   ", UnitPrice: decimal.NewFromInt(1)})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))

	_, err = svc.Create(ctx, ProductInput{Name: "Suco", UnitPrice: decimal.NewFromInt(-1)})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))

	_, err = svc.Create(ctx, ProductInput{Name: "Suco", UnitPrice: decimal.NewFromInt(8), Stock: -1})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))

	product, err := svc.Create(ctx, ProductInput{Name: "  Suco  ", UnitPrice: decimal.NewFromInt(8), Stock: 5})
	require.NoError(t, err)
	assert.Equal(t, "Suco", product.Name)
	require.NotNil(t, repo.created)
}

func TestDeleteRefusedWhileInCart(t *testing.T) {
	repo := &fakeRepo{}
	svc, err := NewService(repo, stubCart{held: map[int64]bool{7: true}})
	require.NoError(t, err)
	ctx := context.Background()

	err = svc.Delete(ctx, 7)
	require.Error(t, err)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeConflict))
	assert.Empty(t, repo.deleted)

	require.NoError(t, svc.Delete(ctx, 8))
	assert.Equal(t, []int64{8}, repo.deleted)
}

func TestNewServiceRequiresRepo(t *testing.T) {
	_, err := NewService(nil, nil)
	require.Error(t, err)
}
