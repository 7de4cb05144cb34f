// internal/service/property.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dwellfix/dwellfix/internal/domain"
	"github.com/dwellfix/dwellfix/internal/model"
	"github.com/dwellfix/dwellfix/internal/repository"
	"github.com/go-playground/validator/v10"
)

type PropertyService struct {
	repo     repository.PropertyRepositoryIface
	validate *validator.Validate
}

func NewPropertyService(repo repository.PropertyRepositoryIface) *PropertyService {
	return &PropertyService{
		repo:     repo,
		validate: validator.New(),
	}
}

type CreatePropertyInput struct {
	ID        uint   `json:"id"`
	Name      string `json:"name" validate:"required"`
	Address   string `json:"address"`
	ImageURL  string `json:"imageUrl"`
	CompanyID uint   `json:"company" validate:"required"`
}

type UpdatePropertyInput struct {
	Name      *string `json:"name"`
	Address   *string `json:"address"`
	ImageURL  *string `json:"imageUrl"`
	CompanyID *uint   `json:"company"`
}

func (s *PropertyService) ListProperties(ctx context.Context) ([]*model.Property, error) {
	return s.repo.FindAll(ctx)
}

func (s *PropertyService) PropertiesByCompany(ctx context.Context, companyID uint) ([]*model.Property, error) {
	return s.repo.FindBy(ctx, map[string]interface{}{"company_id": companyID})
}

func (s *PropertyService) GetProperty(ctx context.Context, id uint) (*model.Property, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PropertyService) CreateProperty(ctx context.Context, input CreatePropertyInput) (*model.Property, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}

	if input.ID != 0 {
		if _, err := s.repo.FindByID(ctx, input.ID); err == nil {
			return nil, domain.ErrAlreadyExists
		} else if !errors.Is(err, domain.ErrPropertyNotFound) {
			return nil, err
		}
	}

	property := &model.Property{
		ID:        input.ID,
		Name:      input.Name,
		Address:   input.Address,
		ImageURL:  input.ImageURL,
		CompanyID: input.CompanyID,
	}
	if err := s.repo.Create(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

func (s *PropertyService) UpdateProperty(ctx context.Context, id uint, input UpdatePropertyInput) (*model.Property, error) {
	property, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		property.Name = *input.Name
	}
	if input.Address != nil {
		property.Address = *input.Address
	}
	if input.ImageURL != nil {
		property.ImageURL = *input.ImageURL
	}
	if input.CompanyID != nil {
		property.CompanyID = *input.CompanyID
	}

	if err := s.repo.Update(ctx, property); err != nil {
		return nil, err
	}
	return property, nil
}

func (s *PropertyService) DeleteProperty(ctx context.Context, id uint) (*model.Property, error) {
	property, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return property, nil
}
