// internal/repository/company.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dwellfix/dwellfix/internal/domain"
	"github.com/dwellfix/dwellfix/internal/model"
	"gorm.io/gorm"
)

type CompanyRepositoryIface interface {
	FindAll(ctx context.Context) ([]*model.Company, error)
	FindBy(ctx context.Context, filter map[string]interface{}) ([]*model.Company, error)
	FindByID(ctx context.Context, id uint) (*model.Company, error)
	Create(ctx context.Context, company *model.Company, roles []model.Role) error
	Update(ctx context.Context, company *model.Company) error
	Delete(ctx context.Context, id uint) error

	CreateRole(ctx context.Context, role *model.Role) error
	FindCompanyRoles(ctx context.Context, companyID uint) ([]*model.Role, error)
	FindAllRoles(ctx context.Context) ([]*model.Role, error)
	FindRoleByID(ctx context.Context, id uint) (*model.Role, error)
	FindRoleByCode(ctx context.Context, code string) (*model.Role, error)
	RoleCodeExists(ctx context.Context, code string) (bool, error)
}

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// FindAll returns all companies without their associations.
func (r *CompanyRepository) FindAll(ctx context.Context) ([]*model.Company, error) {
	var companies []*model.Company
	if err := r.db.WithContext(ctx).Find(&companies).Error; err != nil {
		return nil, fmt.Errorf("failed to find all companies: %w", err)
	}
	return companies, nil
}

// FindBy filters companies by exact column matches, each with its profiles
// and properties batch-loaded.
func (r *CompanyRepository) FindBy(ctx context.Context, filter map[string]interface{}) ([]*model.Company, error) {
	var companies []*model.Company
	err := r.db.WithContext(ctx).
		Preload("Users").
		Preload("Properties").
		Where(filter).
		Order("id").
		Find(&companies).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find companies: %w", err)
	}

	for _, company := range companies {
		if company.Users == nil {
			company.Users = []model.Profile{}
		}
		if company.Properties == nil {
			company.Properties = []model.Property{}
		}
	}
	return companies, nil
}

// FindByID returns the company with its profiles and properties batch-loaded.
func (r *CompanyRepository) FindByID(ctx context.Context, id uint) (*model.Company, error) {
	companies, err := r.FindBy(ctx, map[string]interface{}{"id": id})
	if err != nil {
		return nil, err
	}
	if len(companies) == 0 {
		return nil, domain.ErrCompanyNotFound
	}
	return companies[0], nil
}

// Create inserts the company and its default roles in one transaction so a
// failure can never leave a company without roles.
func (r *CompanyRepository) Create(ctx context.Context, company *model.Company, roles []model.Role) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(company).Error; err != nil {
			return fmt.Errorf("creating company: %w", err)
		}

		for i := range roles {
			roles[i].CompanyID = company.ID
		}
		if len(roles) > 0 {
			if err := tx.Create(&roles).Error; err != nil {
				return fmt.Errorf("creating default roles: %w", err)
			}
		}
		company.Roles = roles

		return nil
	})

	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

func (r *CompanyRepository) Update(ctx context.Context, company *model.Company) error {
	err := r.db.WithContext(ctx).
		Omit("Users", "Properties", "Roles").
		Save(company).Error
	if err != nil {
		return fmt.Errorf("updating company: %w", err)
	}
	return nil
}

// Delete removes the company; roles, properties and work orders (and their
// comments and images) go with it via ON DELETE CASCADE.
func (r *CompanyRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.Company{}, id).Error; err != nil {
		return fmt.Errorf("deleting company: %w", err)
	}
	return nil
}

func (r *CompanyRepository) CreateRole(ctx context.Context, role *model.Role) error {
	if err := r.db.WithContext(ctx).Create(role).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCode
		}
		return fmt.Errorf("creating role: %w", err)
	}
	return nil
}

func (r *CompanyRepository) FindCompanyRoles(ctx context.Context, companyID uint) ([]*model.Role, error) {
	var roles []*model.Role
	if err := r.db.WithContext(ctx).Where("company_id = ?", companyID).Find(&roles).Error; err != nil {
		return nil, fmt.Errorf("failed to find company roles: %w", err)
	}
	return roles, nil
}

func (r *CompanyRepository) FindAllRoles(ctx context.Context) ([]*model.Role, error) {
	var roles []*model.Role
	if err := r.db.WithContext(ctx).Find(&roles).Error; err != nil {
		return nil, fmt.Errorf("failed to find all roles: %w", err)
	}
	return roles, nil
}

func (r *CompanyRepository) FindRoleByID(ctx context.Context, id uint) (*model.Role, error) {
	var role model.Role
	if err := r.db.WithContext(ctx).First(&role, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("finding role: %w", err)
	}
	return &role, nil
}

func (r *CompanyRepository) FindRoleByCode(ctx context.Context, code string) (*model.Role, error) {
	var role model.Role
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&role).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, fmt.Errorf("finding role by code: %w", err)
	}
	return &role, nil
}

// RoleCodeExists backs the invite-code generator's uniqueness check.
func (r *CompanyRepository) RoleCodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Role{}).Where("code = ?", code).Count(&count).Error; err != nil {
		return false, fmt.Errorf("counting role codes: %w", err)
	}
	return count > 0, nil
}
