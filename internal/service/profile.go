// internal/service/profile.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dwellfix/dwellfix/internal/domain"
	"github.com/dwellfix/dwellfix/internal/invite"
	"github.com/dwellfix/dwellfix/internal/model"
	"github.com/dwellfix/dwellfix/internal/repository"
	"github.com/go-playground/validator/v10"
)

type ProfileService struct {
	repo        repository.ProfileRepositoryIface
	companyRepo repository.CompanyRepositoryIface
	codes       *invite.Generator
	validate    *validator.Validate
}

func NewProfileService(
	repo repository.ProfileRepositoryIface,
	companyRepo repository.CompanyRepositoryIface,
	codes *invite.Generator,
) *ProfileService {
	return &ProfileService{
		repo:        repo,
		companyRepo: companyRepo,
		codes:       codes,
		validate:    validator.New(),
	}
}

type CreateProfileInput struct {
	ID        string `json:"id" validate:"required"`
	Name      string `json:"name"`
	Email     string `json:"email" validate:"omitempty,email"`
	AvatarURL string `json:"avatarUrl"`
	RoleID    *uint  `json:"role"`
	CompanyID *uint  `json:"company"`
}

type UpdateProfileInput struct {
	Name      *string `json:"name"`
	Email     *string `json:"email" validate:"omitempty,email"`
	AvatarURL *string `json:"avatarUrl"`
	RoleID    *uint   `json:"role"`
	CompanyID *uint   `json:"company"`
}

func (s *ProfileService) ListProfiles(ctx context.Context) ([]*model.Profile, error) {
	return s.repo.FindAll(ctx)
}

func (s *ProfileService) CompanyUsers(ctx context.Context, companyID uint) ([]*model.Profile, error) {
	return s.repo.FindByCompany(ctx, companyID)
}

func (s *ProfileService) GetUser(ctx context.Context, id string) (*model.Profile, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProfileService) toProfile(input CreateProfileInput) *model.Profile {
	return &model.Profile{
		ID:        input.ID,
		Name:      input.Name,
		Email:     input.Email,
		AvatarURL: input.AvatarURL,
		RoleID:    input.RoleID,
		CompanyID: input.CompanyID,
	}
}

// CreateUser inserts a profile as supplied; a second create for the same
// external subject is a conflict.
func (s *ProfileService) CreateUser(ctx context.Context, input CreateProfileInput) (*model.Profile, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}

	if _, err := s.repo.FindByID(ctx, input.ID); err == nil {
		return nil, domain.ErrAlreadyExists
	} else if !errors.Is(err, domain.ErrProfileNotFound) {
		return nil, err
	}

	profile := s.toProfile(input)
	if err := s.repo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// CreateUserWithCode onboards a profile through a role invite code; role and
// company come from the code. An unknown code inserts nothing.
func (s *ProfileService) CreateUserWithCode(ctx context.Context, input CreateProfileInput, code string) (*model.Profile, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}

	role, err := s.companyRepo.FindRoleByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			return nil, domain.ErrInviteCodeInvalid
		}
		return nil, err
	}

	profile := s.toProfile(input)
	profile.RoleID = &role.ID
	profile.CompanyID = &role.CompanyID

	if err := s.repo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// CreateUserNewCompany founds a company and its default roles and makes the
// caller its Admin, all in one write.
func (s *ProfileService) CreateUserNewCompany(ctx context.Context, input CreateProfileInput, companyName string) (*model.Profile, *model.Company, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}
	if companyName == "" {
		return nil, nil, fmt.Errorf("%w: company name is required", domain.ErrInvalidInput)
	}

	if _, err := s.repo.FindByID(ctx, input.ID); err == nil {
		return nil, nil, domain.ErrAlreadyExists
	} else if !errors.Is(err, domain.ErrProfileNotFound) {
		return nil, nil, err
	}

	roles := model.DefaultRoles()
	for i := range roles {
		code, err := s.codes.Unique(ctx, s.companyRepo.RoleCodeExists)
		if err != nil {
			return nil, nil, fmt.Errorf("generating role code: %w", err)
		}
		roles[i].Code = code
	}

	profile := s.toProfile(input)
	company := &model.Company{Name: companyName}

	if err := s.repo.CreateWithNewCompany(ctx, profile, company, roles); err != nil {
		return nil, nil, err
	}
	return profile, company, nil
}

// AssignUser moves an existing profile onto the role (and company) an invite
// code resolves to.
func (s *ProfileService) AssignUser(ctx context.Context, userID, code string) (*model.Profile, error) {
	role, err := s.companyRepo.FindRoleByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			return nil, domain.ErrInviteCodeInvalid
		}
		return nil, err
	}

	profile, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.RoleID = &role.ID
	profile.CompanyID = &role.CompanyID

	if err := s.repo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) UpdateProfile(ctx context.Context, id string, input UpdateProfileInput) (*model.Profile, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}

	profile, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		profile.Name = *input.Name
	}
	if input.Email != nil {
		profile.Email = *input.Email
	}
	if input.AvatarURL != nil {
		profile.AvatarURL = *input.AvatarURL
	}
	if input.RoleID != nil {
		profile.RoleID = input.RoleID
	}
	if input.CompanyID != nil {
		profile.CompanyID = input.CompanyID
	}

	if err := s.repo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) DeleteUser(ctx context.Context, id string) (*model.Profile, error) {
	profile, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return profile, nil
}
