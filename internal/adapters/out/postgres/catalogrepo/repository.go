package catalogrepo

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/pkg/errs"
)

// GormCatalogRepository implements ports.ProductCatalog using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

// NewGormCatalogRepository creates a new GORM catalog repository.
func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// Exists reports whether a product with the given raw code is in the catalog.
// The raw code is matched as-is; format checks happen in the domain, after
// the existence check.
func (r *GormCatalogRepository) Exists(ctx context.Context, rawCode string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("code = ?", rawCode).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// UnitPrice retrieves the unit price for a constructed product code.
func (r *GormCatalogRepository) UnitPrice(
	ctx context.Context, code order.ProductCode,
) (decimal.Decimal, error) {
	if err := code.Validate(); err != nil {
		return decimal.Decimal{}, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return decimal.Decimal{}, errs.NewObjectNotFoundError("productCode", code.Value())
		}
		return decimal.Decimal{}, err
	}

	return dto.UnitPrice, nil
}

// Upsert inserts or updates one catalog entry. Used for seeding and catalog
// maintenance.
func (r *GormCatalogRepository) Upsert(ctx context.Context, dto ProductDTO) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoUpdates: clause.AssignmentColumns([]string{"description", "unit_price"}),
		}).
		Create(&dto).Error
}
