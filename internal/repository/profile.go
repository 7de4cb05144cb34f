// internal/repository/profile.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dwellfix/dwellfix/internal/domain"
	"github.com/dwellfix/dwellfix/internal/model"
	"gorm.io/gorm"
)

type ProfileRepositoryIface interface {
	FindAll(ctx context.Context) ([]*model.Profile, error)
	FindByCompany(ctx context.Context, companyID uint) ([]*model.Profile, error)
	FindByID(ctx context.Context, id string) (*model.Profile, error)
	Create(ctx context.Context, profile *model.Profile) error
	CreateWithNewCompany(ctx context.Context, profile *model.Profile, company *model.Company, roles []model.Role) error
	Update(ctx context.Context, profile *model.Profile) error
	Delete(ctx context.Context, id string) error
}

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) FindAll(ctx context.Context) ([]*model.Profile, error) {
	var profiles []*model.Profile
	if err := r.db.WithContext(ctx).Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to find all profiles: %w", err)
	}
	return profiles, nil
}

func (r *ProfileRepository) FindByCompany(ctx context.Context, companyID uint) ([]*model.Profile, error) {
	var profiles []*model.Profile
	if err := r.db.WithContext(ctx).Where("company_id = ?", companyID).Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to find company profiles: %w", err)
	}
	return profiles, nil
}

func (r *ProfileRepository) FindByID(ctx context.Context, id string) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("finding profile: %w", err)
	}
	return &profile, nil
}

func (r *ProfileRepository) Create(ctx context.Context, profile *model.Profile) error {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// CreateWithNewCompany inserts the company, its default roles and the founding
// profile in one transaction. The profile is attached to the Admin role; a
// role set without one aborts the whole write.
func (r *ProfileRepository) CreateWithNewCompany(ctx context.Context, profile *model.Profile, company *model.Company, roles []model.Role) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(company).Error; err != nil {
			return fmt.Errorf("creating company: %w", err)
		}

		for i := range roles {
			roles[i].CompanyID = company.ID
		}
		if err := tx.Create(&roles).Error; err != nil {
			return fmt.Errorf("creating default roles: %w", err)
		}
		company.Roles = roles

		var admin *model.Role
		for i := range roles {
			if roles[i].Name == model.AdminRoleName {
				admin = &roles[i]
				break
			}
		}
		if admin == nil {
			return domain.ErrRoleNotFound
		}

		profile.RoleID = &admin.ID
		profile.CompanyID = &company.ID
		if err := tx.Create(profile).Error; err != nil {
			return fmt.Errorf("creating profile: %w", err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			return err
		}
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

func (r *ProfileRepository) Update(ctx context.Context, profile *model.Profile) error {
	if err := r.db.WithContext(ctx).Save(profile).Error; err != nil {
		return fmt.Errorf("updating profile: %w", err)
	}
	return nil
}

func (r *ProfileRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&model.Profile{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("deleting profile: %w", err)
	}
	return nil
}
