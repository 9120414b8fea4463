package catalogrepo_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/catalogrepo"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)
	return gormDB, mock
}

func TestGetVendor_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := catalogrepo.NewGormCatalogRepository(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "vendors"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "phone", "active", "updated_at"}))

	v, err := repo.Vendors().Get(context.Background(), kernel.NewUUID())

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Nil(t, v)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetVendor_DriverError(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := catalogrepo.NewGormCatalogRepository(gormDB)
	boom := errors.New("connection reset by peer")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "vendors"`)).WillReturnError(boom)

	_, err := repo.GetVendor(context.Background(), kernel.NewUUID())

	require.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGetProduct_WithoutVendor(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := catalogrepo.NewGormCatalogRepository(gormDB)
	id := kernel.NewUUID()

	rows := sqlmock.NewRows([]string{"id", "name", "price", "vendor_id", "category", "active", "updated_at"}).
		AddRow(id.String(), "Eggs (tray)", "450.50", nil, "Dairy", true, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "products"`)).WillReturnRows(rows)

	p, err := repo.Products().Get(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, p.ID())
	assert.Equal(t, "Eggs (tray)", p.Name())
	assert.Equal(t, "450.5", p.Price().String())
	assert.True(t, p.VendorID().IsZero())
	assert.True(t, p.IsActive())
}

func TestGetProduct_InvalidID(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := catalogrepo.NewGormCatalogRepository(gormDB)

	_, err := repo.GetProduct(context.Background(), kernel.UUID{})

	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
