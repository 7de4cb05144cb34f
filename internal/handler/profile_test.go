// internal/handler/profile_test.go
package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dwellfix/dwellfix/internal/domain"
	"github.com/dwellfix/dwellfix/internal/handler"
	"github.com/dwellfix/dwellfix/internal/invite"
	"github.com/dwellfix/dwellfix/internal/mocks"
	"github.com/dwellfix/dwellfix/internal/model"
	"github.com/dwellfix/dwellfix/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newProfileRouter(repo *mocks.MockProfileRepositoryIface, companyRepo *mocks.MockCompanyRepositoryIface, devMode bool) http.Handler {
	svc := service.NewProfileService(repo, companyRepo, invite.NewGenerator(invite.DefaultLength, invite.DefaultMaxAttempts))
	h := handler.NewProfileHandler(svc, devMode)

	r := chi.NewRouter()
	r.Use(asCaller("auth0|caller"))
	r.Route("/company", func(r chi.Router) {
		r.Post("/new", h.CreateWithNewCompany)
		r.Post("/user/{code}", h.CreateWithCode)
		r.Put("/user/{code}", h.Assign)

		r.Route("/{companyID}", func(r chi.Router) {
			r.Get("/users", h.CompanyUsers)
			r.Post("/users", h.Create)

			r.Route("/user/{userID}", func(r chi.Router) {
				r.Get("/", h.CompanyUser)
				r.Put("/", h.Update)
				r.Delete("/", h.Delete)
			})
		})
	})
	return r
}

func TestCompanyUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("company zero lists everything in dev mode", func(t *testing.T) {
		repo := mocks.NewMockProfileRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		router := newProfileRouter(repo, companyRepo, true)

		repo.EXPECT().
			FindAll(gomock.Any()).
			Return([]*model.Profile{
				{ID: "auth0|one"},
				{ID: "auth0|two"},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/company/0/users", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body []map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Len(t, body, 2)
	})

	t.Run("company zero scopes normally outside dev mode", func(t *testing.T) {
		repo := mocks.NewMockProfileRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		router := newProfileRouter(repo, companyRepo, false)

		repo.EXPECT().
			FindByCompany(gomock.Any(), uint(0)).
			Return([]*model.Profile{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/company/0/users", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body []map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Empty(t, body)
	})
}

func TestCreateWithCodeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("defaults the id to the caller", func(t *testing.T) {
		repo := mocks.NewMockProfileRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		router := newProfileRouter(repo, companyRepo, false)

		companyRepo.EXPECT().
			FindRoleByCode(gomock.Any(), "XyZ123").
			Return(&model.Role{ID: 9, CompanyID: 4}, nil)
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx interface{}, profile *model.Profile) error {
				assert.Equal(t, "auth0|caller", profile.ID)
				return nil
			})

		req := httptest.NewRequest(http.MethodPost, "/company/user/XyZ123", strings.NewReader(`{"name":"Sam"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("an invalid code is a 404", func(t *testing.T) {
		repo := mocks.NewMockProfileRepositoryIface(ctrl)
		companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
		router := newProfileRouter(repo, companyRepo, false)

		companyRepo.EXPECT().
			FindRoleByCode(gomock.Any(), "nope").
			Return(nil, domain.ErrRoleNotFound)

		req := httptest.NewRequest(http.MethodPost, "/company/user/nope", strings.NewReader(`{"name":"Sam"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCreateWithNewCompanyHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockProfileRepositoryIface(ctrl)
	companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
	router := newProfileRouter(repo, companyRepo, false)

	repo.EXPECT().
		FindByID(gomock.Any(), "auth0|caller").
		Return(nil, domain.ErrProfileNotFound)
	companyRepo.EXPECT().
		RoleCodeExists(gomock.Any(), gomock.Any()).
		Return(false, nil).
		Times(6)
	repo.EXPECT().
		CreateWithNewCompany(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	payload := `{"profile":{"name":"Fran Founder"},"company":{"name":"New Heights LLC"}}`
	req := httptest.NewRequest(http.MethodPost, "/company/new", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["ok"])
	require.Contains(t, body, "profile")
	require.Contains(t, body, "company")
}

func TestDeleteProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockProfileRepositoryIface(ctrl)
	companyRepo := mocks.NewMockCompanyRepositoryIface(ctrl)
	router := newProfileRouter(repo, companyRepo, false)

	repo.EXPECT().
		FindByID(gomock.Any(), "auth0|gone").
		Return(&model.Profile{ID: "auth0|gone"}, nil)
	repo.EXPECT().
		Delete(gomock.Any(), "auth0|gone").
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/company/4/user/auth0|gone", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "profile 'auth0|gone' was deleted", body["message"])
}
