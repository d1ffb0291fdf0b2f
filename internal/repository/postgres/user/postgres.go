package user

import (
	"context"
	"errors"

	userdomain "visitbook-go/internal/domain/user"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(userdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) Find(ctx context.Context, id string) (*userdomain.User, error) {
	var usr userdomain.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&usr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userdomain.ErrNotFound
		}
		return nil, err
	}
	return &usr, nil
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*userdomain.User, error) {
	var usr userdomain.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&usr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userdomain.ErrNotFound
		}
		return nil, err
	}
	return &usr, nil
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]userdomain.User, error) {
	var users []userdomain.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *PostgresRepository) ListByFamily(ctx context.Context, familyID string) ([]userdomain.User, error) {
	var users []userdomain.User
	if err := r.db.WithContext(ctx).
		Where("family_id = ?", familyID).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *PostgresRepository) Create(ctx context.Context, usr *userdomain.User) error {
	return r.db.WithContext(ctx).Create(usr).Error
}

func (r *PostgresRepository) Update(ctx context.Context, usr *userdomain.User) error {
	return r.db.WithContext(ctx).Model(&userdomain.User{}).
		Where("id = ?", usr.ID).
		Updates(map[string]interface{}{
			"first_name": usr.FirstName,
			"last_name":  usr.LastName,
			"email":      usr.Email,
			"family_id":  usr.FamilyID,
			"role":       usr.Role,
			"updated_by": usr.UpdatedBy,
		}).Error
}

func (r *PostgresRepository) UpdateToken(ctx context.Context, id, token string) error {
	return r.db.WithContext(ctx).Model(&userdomain.User{}).
		Where("id = ?", id).
		Update("token", token).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&userdomain.User{}, "id = ?", id).Error
}
