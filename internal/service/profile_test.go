// internal/service/profile_test.go
package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dwellfix/dwellfix/internal/domain"
	"github.com/dwellfix/dwellfix/internal/invite"
	"github.com/dwellfix/dwellfix/internal/mocks"
	"github.com/dwellfix/dwellfix/internal/model"
	"github.com/dwellfix/dwellfix/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newProfileService(repo *mocks.MockProfileRepositoryIface, companyRepo *mocks.MockCompanyRepositoryIface) *service.ProfileService {
	return service.NewProfileService(repo, companyRepo, invite.NewGenerator(invite.DefaultLength, invite.DefaultMaxAttempts))
}

func TestCreateUserWithCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("adopts role and company from the code", func(t *testing.T) {
		repo := mocks.NewMockProfileRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		svc := newProfileService(repo, companyRepo)

		companyRepo.EXPECT().
			FindRoleByCode(gomock.Any(), "XyZ123").
			Return(&model.Role{ID: 9, Name: "Tenant", CompanyID: 4, Code: "XyZ123"}, nil)

		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, profile *model.Profile) error {
				require.NotNil(t, profile.RoleID)
				require.NotNil(t, profile.CompanyID)
				assert.Equal(t, uint(9), *profile.RoleID)
				assert.Equal(t, uint(4), *profile.CompanyID)
				return nil
			})

		profile, err := svc.CreateUserWithCode(ctx, service.CreateProfileInput{
			ID:    "auth0|abc123",
			Name:  "Sam Tenant",
			Email: "sam@example.com",
		}, "XyZ123")
		require.NoError(t, err)
		assert.Equal(t, "auth0|abc123", profile.ID)
	})

	t.Run("an unknown code inserts nothing", func(t *testing.T) {
		repo := mocks.NewMockProfileRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		svc := newProfileService(repo, companyRepo)

		companyRepo.EXPECT().
			FindRoleByCode(gomock.Any(), "nope").
			Return(nil, domain.ErrRoleNotFound)

		_, err := svc.CreateUserWithCode(ctx, service.CreateProfileInput{ID: "auth0|abc123"}, "nope")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInviteCodeInvalid))
	})
}

func TestCreateUserNewCompany(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("founds a company with six roles in one write", func(t *testing.T) {
		repo := mocks.NewMockProfileRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		svc := newProfileService(repo, companyRepo)

		repo.EXPECT().
			FindByID(gomock.Any(), "auth0|founder").
			Return(nil, domain.ErrProfileNotFound)
		companyRepo.EXPECT().
			RoleCodeExists(gomock.Any(), gomock.Any()).
			Return(false, nil).
			Times(6)

		repo.EXPECT().
			CreateWithNewCompany(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, profile *model.Profile, company *model.Company, roles []model.Role) error {
				assert.Equal(t, "auth0|founder", profile.ID)
				assert.Equal(t, "New Heights LLC", company.Name)
				require.Len(t, roles, 6)
				for _, role := range roles {
					assert.NotEmpty(t, role.Code)
				}
				return nil
			})

		profile, company, err := svc.CreateUserNewCompany(ctx, service.CreateProfileInput{
			ID:   "auth0|founder",
			Name: "Fran Founder",
		}, "New Heights LLC")
		require.NoError(t, err)
		assert.Equal(t, "auth0|founder", profile.ID)
		assert.Equal(t, "New Heights LLC", company.Name)
	})

	t.Run("requires a company name", func(t *testing.T) {
		repo := mocks.NewMockProfileRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		svc := newProfileService(repo, companyRepo)

		_, _, err := svc.CreateUserNewCompany(ctx, service.CreateProfileInput{ID: "auth0|founder"}, "")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	})

	t.Run("rejects an existing subject", func(t *testing.T) {
		repo := mocks.NewMockProfileRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		svc := newProfileService(repo, companyRepo)

		repo.EXPECT().
			FindByID(gomock.Any(), "auth0|founder").
			Return(&model.Profile{ID: "auth0|founder"}, nil)

		_, _, err := svc.CreateUserNewCompany(ctx, service.CreateProfileInput{ID: "auth0|founder"}, "New Heights LLC")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrAlreadyExists))
	})
}

func TestAssignUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("moves the profile onto the code's role", func(t *testing.T) {
		repo := mocks.NewMockProfileRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		svc := newProfileService(repo, companyRepo)

		companyRepo.EXPECT().
			FindRoleByCode(gomock.Any(), "XyZ123").
			Return(&model.Role{ID: 9, CompanyID: 4}, nil)
		repo.EXPECT().
			FindByID(gomock.Any(), "auth0|abc123").
			Return(&model.Profile{ID: "auth0|abc123"}, nil)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			Return(nil)

		profile, err := svc.AssignUser(ctx, "auth0|abc123", "XyZ123")
		require.NoError(t, err)
		require.NotNil(t, profile.RoleID)
		require.NotNil(t, profile.CompanyID)
		assert.Equal(t, uint(9), *profile.RoleID)
		assert.Equal(t, uint(4), *profile.CompanyID)
	})

	t.Run("rejects an unknown code", func(t *testing.T) {
		repo := mocks.NewMockProfileRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		svc := newProfileService(repo, companyRepo)

		companyRepo.EXPECT().
			FindRoleByCode(gomock.Any(), "nope").
			Return(nil, domain.ErrRoleNotFound)

		_, err := svc.AssignUser(ctx, "auth0|abc123", "nope")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInviteCodeInvalid))
	})
}

func TestUpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("only touches supplied fields", func(t *testing.T) {
		repo := mocks.NewMockProfileRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		svc := newProfileService(repo, companyRepo)

		existing := &model.Profile{
			ID:    "auth0|abc123",
			Name:  "Sam",
			Email: "sam@example.com",
		}
		repo.EXPECT().
			FindByID(gomock.Any(), "auth0|abc123").
			Return(existing, nil)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			Return(nil)

		newName := "Samantha"
		profile, err := svc.UpdateProfile(ctx, "auth0|abc123", service.UpdateProfileInput{Name: &newName})
		require.NoError(t, err)
		assert.Equal(t, "Samantha", profile.Name)
		assert.Equal(t, "sam@example.com", profile.Email)
	})
}
