// internal/repository/property.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dwellfix/dwellfix/internal/domain"
	"github.com/dwellfix/dwellfix/internal/model"
	"gorm.io/gorm"
)

type PropertyRepositoryIface interface {
	FindAll(ctx context.Context) ([]*model.Property, error)
	FindBy(ctx context.Context, filter map[string]interface{}) ([]*model.Property, error)
	FindByID(ctx context.Context, id uint) (*model.Property, error)
	Create(ctx context.Context, property *model.Property) error
	Update(ctx context.Context, property *model.Property) error
	Delete(ctx context.Context, id uint) error
}

type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

func (r *PropertyRepository) FindAll(ctx context.Context) ([]*model.Property, error) {
	var properties []*model.Property
	if err := r.db.WithContext(ctx).Find(&properties).Error; err != nil {
		return nil, fmt.Errorf("failed to find all properties: %w", err)
	}
	return properties, nil
}

func (r *PropertyRepository) FindBy(ctx context.Context, filter map[string]interface{}) ([]*model.Property, error) {
	var properties []*model.Property
	if err := r.db.WithContext(ctx).Where(filter).Find(&properties).Error; err != nil {
		return nil, fmt.Errorf("failed to find properties: %w", err)
	}
	return properties, nil
}

func (r *PropertyRepository) FindByID(ctx context.Context, id uint) (*model.Property, error) {
	var property model.Property
	if err := r.db.WithContext(ctx).First(&property, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("finding property: %w", err)
	}
	return &property, nil
}

func (r *PropertyRepository) Create(ctx context.Context, property *model.Property) error {
	if err := r.db.WithContext(ctx).Create(property).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create property: %w", err)
	}
	return nil
}

func (r *PropertyRepository) Update(ctx context.Context, property *model.Property) error {
	if err := r.db.WithContext(ctx).Save(property).Error; err != nil {
		return fmt.Errorf("updating property: %w", err)
	}
	return nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.Property{}, id).Error; err != nil {
		return fmt.Errorf("deleting property: %w", err)
	}
	return nil
}
