package family

import (
	"context"
	"errors"

	familydomain "visitbook-go/internal/domain/family"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(familydomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) Find(ctx context.Context, id string) (*familydomain.Family, error) {
	var fam familydomain.Family
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&fam).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, familydomain.ErrNotFound
		}
		return nil, err
	}
	return &fam, nil
}

func (r *PostgresRepository) FindByCode(ctx context.Context, code string) (*familydomain.Family, error) {
	var fam familydomain.Family
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&fam).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, familydomain.ErrCodeNotFound
		}
		return nil, err
	}
	return &fam, nil
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]familydomain.Family, error) {
	var families []familydomain.Family
	if err := r.db.WithContext(ctx).Find(&families).Error; err != nil {
		return nil, err
	}
	return families, nil
}

func (r *PostgresRepository) IsCodeTaken(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&familydomain.Family{}).
		Where("code = ?", code).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *PostgresRepository) Create(ctx context.Context, fam *familydomain.Family) error {
	return r.db.WithContext(ctx).Create(fam).Error
}

func (r *PostgresRepository) Update(ctx context.Context, fam *familydomain.Family) error {
	return r.db.WithContext(ctx).Model(&familydomain.Family{}).
		Where("id = ?", fam.ID).
		Updates(map[string]interface{}{
			"nom":        fam.Nom,
			"code":       fam.Code,
			"updated_by": fam.UpdatedBy,
		}).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&familydomain.Family{}, "id = ?", id).Error
}
