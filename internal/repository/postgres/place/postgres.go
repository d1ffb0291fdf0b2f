package place

import (
	"context"
	"errors"

	placedomain "visitbook-go/internal/domain/place"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(placedomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) Find(ctx context.Context, id string) (*placedomain.Place, error) {
	var plc placedomain.Place
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&plc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, placedomain.ErrNotFound
		}
		return nil, err
	}
	return &plc, nil
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]placedomain.Place, error) {
	var places []placedomain.Place
	if err := r.db.WithContext(ctx).Find(&places).Error; err != nil {
		return nil, err
	}
	return places, nil
}

func (r *PostgresRepository) ListByFamily(ctx context.Context, familyID string) ([]placedomain.Place, error) {
	var places []placedomain.Place
	if err := r.db.WithContext(ctx).
		Where("family_id = ?", familyID).
		Find(&places).Error; err != nil {
		return nil, err
	}
	return places, nil
}

func (r *PostgresRepository) Create(ctx context.Context, plc *placedomain.Place) error {
	return r.db.WithContext(ctx).Create(plc).Error
}

func (r *PostgresRepository) Update(ctx context.Context, plc *placedomain.Place) error {
	return r.db.WithContext(ctx).Model(&placedomain.Place{}).
		Where("id = ?", plc.ID).
		Updates(map[string]interface{}{
			"name":       plc.Name,
			"family_id":  plc.FamilyID,
			"updated_by": plc.UpdatedBy,
		}).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&placedomain.Place{}, "id = ?", id).Error
}
