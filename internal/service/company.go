// internal/service/company.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dwellfix/dwellfix/internal/domain"
	"github.com/dwellfix/dwellfix/internal/email"
	"github.com/dwellfix/dwellfix/internal/email/mailer"
	"github.com/dwellfix/dwellfix/internal/invite"
	"github.com/dwellfix/dwellfix/internal/model"
	"github.com/dwellfix/dwellfix/internal/repository"
	"github.com/go-playground/validator/v10"
)

type CompanyService struct {
	repo         repository.CompanyRepositoryIface
	codes        *invite.Generator
	emailService *email.Service
	signupLink   string
	validate     *validator.Validate
}

// NewCompanyService wires the company flows. emailService may be nil when no
// provider is configured; invites then fail cleanly instead of at startup.
func NewCompanyService(
	repo repository.CompanyRepositoryIface,
	codes *invite.Generator,
	emailService *email.Service,
	signupLink string,
) *CompanyService {
	return &CompanyService{
		repo:         repo,
		codes:        codes,
		emailService: emailService,
		signupLink:   signupLink,
		validate:     validator.New(),
	}
}

type CreateCompanyInput struct {
	ID   uint   `json:"id"`
	Name string `json:"name" validate:"required"`
}

type CreateRoleInput struct {
	Name      string `json:"name" validate:"required"`
	UserLevel int    `json:"userLevel" validate:"required,min=1,max=4"`
}

type UpdateCompanyInput struct {
	Name *string `json:"name"`
}

func (s *CompanyService) ListCompanies(ctx context.Context) ([]*model.Company, error) {
	return s.repo.FindAll(ctx)
}

func (s *CompanyService) GetCompany(ctx context.Context, id uint) (*model.Company, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateCompany inserts the company together with its six default roles, each
// carrying a fresh unique invite code. A request that supplies an id already
// in use is a conflict and writes nothing.
func (s *CompanyService) CreateCompany(ctx context.Context, input CreateCompanyInput) (*model.Company, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}

	if input.ID != 0 {
		if _, err := s.repo.FindByID(ctx, input.ID); err == nil {
			return nil, domain.ErrAlreadyExists
		} else if !errors.Is(err, domain.ErrCompanyNotFound) {
			return nil, err
		}
	}

	roles := model.DefaultRoles()
	for i := range roles {
		code, err := s.codes.Unique(ctx, s.repo.RoleCodeExists)
		if err != nil {
			return nil, fmt.Errorf("generating role code: %w", err)
		}
		roles[i].Code = code
	}

	company := &model.Company{ID: input.ID, Name: input.Name}
	if err := s.repo.Create(ctx, company, roles); err != nil {
		return nil, err
	}

	return company, nil
}

// CreateRole adds a single role to an existing company with a fresh unique
// code. The unique index backstops a race between the check and the insert;
// a collision there draws a new code and tries again.
func (s *CompanyService) CreateRole(ctx context.Context, companyID uint, input CreateRoleInput) (*model.Role, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}

	if _, err := s.repo.FindByID(ctx, companyID); err != nil {
		return nil, err
	}

	role := &model.Role{
		Name:      input.Name,
		UserLevel: input.UserLevel,
		CompanyID: companyID,
	}

	for attempt := 0; attempt < invite.DefaultMaxAttempts; attempt++ {
		code, err := s.codes.Unique(ctx, s.repo.RoleCodeExists)
		if err != nil {
			return nil, fmt.Errorf("generating role code: %w", err)
		}
		role.Code = code

		err = s.repo.CreateRole(ctx, role)
		if err == nil {
			return role, nil
		}
		if !errors.Is(err, domain.ErrDuplicateCode) {
			return nil, err
		}
	}
	return nil, domain.ErrCodeSpaceExhausted
}

func (s *CompanyService) CompanyRoles(ctx context.Context, companyID uint) ([]*model.Role, error) {
	if _, err := s.repo.FindByID(ctx, companyID); err != nil {
		return nil, err
	}
	return s.repo.FindCompanyRoles(ctx, companyID)
}

func (s *CompanyService) AllRoles(ctx context.Context) ([]*model.Role, error) {
	return s.repo.FindAllRoles(ctx)
}

func (s *CompanyService) RoleByCode(ctx context.Context, code string) (*model.Role, error) {
	return s.repo.FindRoleByCode(ctx, code)
}

func (s *CompanyService) UpdateCompany(ctx context.Context, id uint, input UpdateCompanyInput) (*model.Company, error) {
	company, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		company.Name = *input.Name
	}

	if err := s.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// DeleteCompany removes the company and returns the deleted record; roles,
// properties and work orders cascade in the schema.
func (s *CompanyService) DeleteCompany(ctx context.Context, id uint) (*model.Company, error) {
	company, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return company, nil
}

// InviteToRole mails the role's invite code to the given address. The role
// must belong to the company in the path.
func (s *CompanyService) InviteToRole(ctx context.Context, companyID, roleID uint, toEmail string) error {
	if err := s.validate.Var(toEmail, "required,email"); err != nil {
		return fmt.Errorf("%w: invalid email address", domain.ErrInvalidInput)
	}

	company, err := s.repo.FindByID(ctx, companyID)
	if err != nil {
		return err
	}

	role, err := s.repo.FindRoleByID(ctx, roleID)
	if err != nil {
		return err
	}
	if role.CompanyID != companyID {
		return domain.ErrRoleNotFound
	}

	if s.emailService == nil {
		return fmt.Errorf("no email provider configured")
	}

	if err := mailer.SendRoleInvite(s.emailService, toEmail, company.Name, role.Name, role.Code, s.signupLink); err != nil {
		return fmt.Errorf("sending role invite: %w", err)
	}
	return nil
}
