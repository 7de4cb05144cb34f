// internal/handler/company_test.go
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

func newCompanyRouter(repo *mocks.MockCompanyRepositoryIface) http.Handler {
	svc := service.NewCompanyService(repo, invite.NewGenerator(invite.DefaultLength, invite.DefaultMaxAttempts), nil, "http://localhost:8080/signup")
	h := handler.NewCompanyHandler(svc)

	r := chi.NewRouter()
	r.Use(asCaller("auth0|caller"))
	r.Route("/companies", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Put("/", h.Update)
		r.Get("/roles", h.AllRoles)
		r.Get("/roles/{code}", h.RoleByCode)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
		r.Get("/{id}/roles", h.Roles)
		r.Post("/{id}/roles", h.CreateRole)
		r.Post("/{id}/roles/{roleID}/invite", h.Invite)
	})
	return r
}

func TestGetCompany(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("returns the detail shape with child arrays", func(t *testing.T) {
		repo := mocks.NewMockCompanyRepositoryIface(ctrl)
		router := newCompanyRouter(repo)

		repo.EXPECT().
			FindByID(gomock.Any(), uint(1)).
			Return(&model.Company{
				ID:         1,
				Name:       "Hillcrest Properties",
				Users:      []model.Profile{{ID: "auth0|abc", Name: "Sam"}},
				Properties: []model.Property{},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/companies/1", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Hillcrest Properties", body["name"])

		users, ok := body["users"].([]interface{})
		require.True(t, ok)
		assert.Len(t, users, 1)

		properties, ok := body["properties"].([]interface{})
		require.True(t, ok)
		assert.Empty(t, properties)
	})

	t.Run("missing company is a 404, not a 401", func(t *testing.T) {
		repo := mocks.NewMockCompanyRepositoryIface(ctrl)
		router := newCompanyRouter(repo)

		repo.EXPECT().
			FindByID(gomock.Any(), uint(99)).
			Return(nil, domain.ErrCompanyNotFound)

		req := httptest.NewRequest(http.MethodGet, "/companies/99", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, false, body["ok"])
	})
}

func TestCreateCompanyHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("201 with the mutation envelope", func(t *testing.T) {
		repo := mocks.NewMockCompanyRepositoryIface(ctrl)
		router := newCompanyRouter(repo)

		repo.EXPECT().
			RoleCodeExists(gomock.Any(), gomock.Any()).
			Return(false, nil).
			Times(6)
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/companies", strings.NewReader(`{"name":"Hillcrest Properties"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, true, body["ok"])
		assert.Equal(t, "company created", body["message"])
		require.Contains(t, body, "company")
	})

	t.Run("an id already in use is a 400", func(t *testing.T) {
		repo := mocks.NewMockCompanyRepositoryIface(ctrl)
		router := newCompanyRouter(repo)

		repo.EXPECT().
			FindByID(gomock.Any(), uint(7)).
			Return(&model.Company{ID: 7}, nil)

		req := httptest.NewRequest(http.MethodPost, "/companies", strings.NewReader(`{"id":7,"name":"Clone"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateCompanyHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("takes the id from the body on the bare PUT", func(t *testing.T) {
		repo := mocks.NewMockCompanyRepositoryIface(ctrl)
		router := newCompanyRouter(repo)

		repo.EXPECT().
			FindByID(gomock.Any(), uint(3)).
			Return(&model.Company{ID: 3, Name: "Old Name"}, nil)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			Return(nil)

		req := httptest.NewRequest(http.MethodPut, "/companies", strings.NewReader(`{"id":3,"name":"New Name"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		company, ok := body["company"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "New Name", company["name"])
	})

	t.Run("the path id wins over the body", func(t *testing.T) {
		repo := mocks.NewMockCompanyRepositoryIface(ctrl)
		router := newCompanyRouter(repo)

		repo.EXPECT().
			FindByID(gomock.Any(), uint(5)).
			Return(&model.Company{ID: 5, Name: "Old Name"}, nil)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			Return(nil)

		req := httptest.NewRequest(http.MethodPut, "/companies/5", strings.NewReader(`{"id":3,"name":"New Name"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRoleRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("resolves a role by invite code", func(t *testing.T) {
		repo := mocks.NewMockCompanyRepositoryIface(ctrl)
		router := newCompanyRouter(repo)

		repo.EXPECT().
			FindRoleByCode(gomock.Any(), "XyZ123").
			Return(&model.Role{ID: 9, Name: "Tenant", CompanyID: 4, Code: "XyZ123"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/companies/roles/XyZ123", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Tenant", body["name"])
		assert.Equal(t, float64(4), body["company"])
	})

	t.Run("an unknown code is a 404", func(t *testing.T) {
		repo := mocks.NewMockCompanyRepositoryIface(ctrl)
		router := newCompanyRouter(repo)

		repo.EXPECT().
			FindRoleByCode(gomock.Any(), "nope").
			Return(nil, domain.ErrRoleNotFound)

		req := httptest.NewRequest(http.MethodGet, "/companies/roles/nope", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("lists a company's roles", func(t *testing.T) {
		repo := mocks.NewMockCompanyRepositoryIface(ctrl)
		router := newCompanyRouter(repo)

		repo.EXPECT().
			FindByID(gomock.Any(), uint(4)).
			Return(&model.Company{ID: 4}, nil)
		repo.EXPECT().
			FindCompanyRoles(gomock.Any(), uint(4)).
			Return([]*model.Role{
				{ID: 1, Name: "Admin", UserLevel: 4, CompanyID: 4, Code: "AaBbCc"},
				{ID: 2, Name: "Tenant", UserLevel: 1, CompanyID: 4, Code: "DdEeGg"},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/companies/4/roles", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body []map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Len(t, body, 2)
	})
}
