// internal/handler/workorder_test.go
package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dwellfix/dwellfix/internal/domain"
	"github.com/dwellfix/dwellfix/internal/handler"
	"github.com/dwellfix/dwellfix/internal/middleware"
	"github.com/dwellfix/dwellfix/internal/mocks"
	"github.com/dwellfix/dwellfix/internal/model"
	"github.com/dwellfix/dwellfix/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// asCaller injects a verified profile id the way the auth middleware would.
func asCaller(profileID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), middleware.ProfileIDKey, profileID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func newWorkOrderRouter(repo *mocks.MockWorkOrderRepositoryIface, callerID string) http.Handler {
	h := handler.NewWorkOrderHandler(service.NewWorkOrderService(repo))

	r := chi.NewRouter()
	r.Use(asCaller(callerID))
	r.Route("/workOrders", func(r chi.Router) {
		r.Get("/", h.ListMine)
		r.Post("/", h.Create)
		r.Put("/", h.Update)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)

		r.Route("/{id}/comments", func(r chi.Router) {
			r.Get("/", h.Comments)
			r.Post("/", h.AddComment)
			r.Put("/{commentID}", h.UpdateComment)
			r.Delete("/{commentID}", h.DeleteComment)
		})

		r.Route("/{id}/images", func(r chi.Router) {
			r.Get("/", h.Images)
			r.Post("/", h.AddImage)
			r.Delete("/{imageID}", h.DeleteImage)
		})
	})
	r.Get("/workOrder/{id}", h.Get)
	r.Get("/company/{companyID}/orders/{id}", h.Get)
	return r
}

func TestListMine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockWorkOrderRepositoryIface(ctrl)
	router := newWorkOrderRouter(repo, "auth0|caller")

	repo.EXPECT().
		FindByUser(gomock.Any(), "auth0|caller").
		Return([]*model.WorkOrder{
			{
				ID:       1,
				Title:    "Leaking faucet",
				Comments: []model.Comment{},
				Images:   []model.Image{},
			},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/workOrders", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)

	assert.Equal(t, "Leaking faucet", body[0]["title"])

	// Scalar foreign keys stay hidden; associations take their place.
	assert.NotContains(t, body[0], "CompanyID")
	assert.Contains(t, body[0], "company")
	assert.Contains(t, body[0], "createdBy")

	// Empty children serialize as arrays, never null.
	comments, ok := body[0]["comments"].([]interface{})
	require.True(t, ok)
	assert.Empty(t, comments)
	images, ok := body[0]["images"].([]interface{})
	require.True(t, ok)
	assert.Empty(t, images)
}

func TestGetWorkOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("missing work order is a 404", func(t *testing.T) {
		repo := mocks.NewMockWorkOrderRepositoryIface(ctrl)
		router := newWorkOrderRouter(repo, "auth0|caller")

		repo.EXPECT().
			FindByID(gomock.Any(), uint(99)).
			Return(nil, domain.ErrWorkOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/workOrders/99", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, false, body["ok"])
		assert.NotEmpty(t, body["error"])
	})

	t.Run("singular path alias serves the same read", func(t *testing.T) {
		repo := mocks.NewMockWorkOrderRepositoryIface(ctrl)
		router := newWorkOrderRouter(repo, "auth0|caller")

		repo.EXPECT().
			FindByID(gomock.Any(), uint(10)).
			Return(&model.WorkOrder{ID: 10, Title: "Leaking faucet"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/workOrder/10", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("company-scoped path serves the same read", func(t *testing.T) {
		repo := mocks.NewMockWorkOrderRepositoryIface(ctrl)
		router := newWorkOrderRouter(repo, "auth0|caller")

		repo.EXPECT().
			FindByID(gomock.Any(), uint(10)).
			Return(&model.WorkOrder{ID: 10, Title: "Leaking faucet"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/company/4/orders/10", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestCreateWorkOrderHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("201 with the aggregate in the envelope", func(t *testing.T) {
		repo := mocks.NewMockWorkOrderRepositoryIface(ctrl)
		router := newWorkOrderRouter(repo, "auth0|caller")

		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, workOrder *model.WorkOrder) error {
				assert.Equal(t, "auth0|caller", workOrder.CreatedByID)
				workOrder.ID = 10
				return nil
			})
		repo.EXPECT().
			FindByID(gomock.Any(), uint(10)).
			Return(&model.WorkOrder{ID: 10, Title: "Leaking faucet"}, nil)

		payload := `{"title":"Leaking faucet","company":1,"property":2,"priority":3,"status":1}`
		req := httptest.NewRequest(http.MethodPost, "/workOrders", strings.NewReader(payload))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, true, body["ok"])
		assert.Equal(t, "workOrder created", body["message"])
		require.Contains(t, body, "workOrder")
	})

	t.Run("an id already in use is a 400", func(t *testing.T) {
		repo := mocks.NewMockWorkOrderRepositoryIface(ctrl)
		router := newWorkOrderRouter(repo, "auth0|caller")

		repo.EXPECT().
			FindByID(gomock.Any(), uint(10)).
			Return(&model.WorkOrder{ID: 10}, nil)

		payload := `{"id":10,"title":"Leaking faucet","company":1,"property":2,"priority":3,"status":1}`
		req := httptest.NewRequest(http.MethodPost, "/workOrders", strings.NewReader(payload))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validation failures are a 400", func(t *testing.T) {
		repo := mocks.NewMockWorkOrderRepositoryIface(ctrl)
		router := newWorkOrderRouter(repo, "auth0|caller")

		req := httptest.NewRequest(http.MethodPost, "/workOrders", strings.NewReader(`{"title":"No refs"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteWorkOrderHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockWorkOrderRepositoryIface(ctrl)
	router := newWorkOrderRouter(repo, "auth0|caller")

	repo.EXPECT().
		FindByID(gomock.Any(), uint(10)).
		Return(&model.WorkOrder{ID: 10, Title: "Leaking faucet"}, nil)
	repo.EXPECT().
		Delete(gomock.Any(), uint(10)).
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/workOrders/10", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "workOrder '10' was deleted", body["message"])
}

func TestCommentRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("post attributes the comment to the caller", func(t *testing.T) {
		repo := mocks.NewMockWorkOrderRepositoryIface(ctrl)
		router := newWorkOrderRouter(repo, "auth0|caller")

		repo.EXPECT().
			FindByID(gomock.Any(), uint(10)).
			Return(&model.WorkOrder{ID: 10}, nil)
		repo.EXPECT().
			CreateComment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, comment *model.Comment) error {
				assert.Equal(t, "auth0|caller", comment.AuthorID)
				comment.ID = 5
				return nil
			})

		req := httptest.NewRequest(http.MethodPost, "/workOrders/10/comments", strings.NewReader(`{"comment":"On my way"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "comment created", body["message"])
	})

	t.Run("updating a comment from another work order is a 404", func(t *testing.T) {
		repo := mocks.NewMockWorkOrderRepositoryIface(ctrl)
		router := newWorkOrderRouter(repo, "auth0|caller")

		repo.EXPECT().
			FindCommentByID(gomock.Any(), uint(5)).
			Return(&model.Comment{ID: 5, WorkOrderID: 99}, nil)

		req := httptest.NewRequest(http.MethodPut, "/workOrders/10/comments/5", strings.NewReader(`{"comment":"edited"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestImageRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("post with an invalid url is a 400", func(t *testing.T) {
		repo := mocks.NewMockWorkOrderRepositoryIface(ctrl)
		router := newWorkOrderRouter(repo, "auth0|caller")

		req := httptest.NewRequest(http.MethodPost, "/workOrders/10/images", strings.NewReader(`{"url":"not a url"}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("delete returns the removed image", func(t *testing.T) {
		repo := mocks.NewMockWorkOrderRepositoryIface(ctrl)
		router := newWorkOrderRouter(repo, "auth0|caller")

		repo.EXPECT().
			FindImageByID(gomock.Any(), uint(7)).
			Return(&model.Image{ID: 7, WorkOrderID: 10, URL: "https://cdn.example.com/leak.jpg"}, nil)
		repo.EXPECT().
			DeleteImage(gomock.Any(), uint(7)).
			Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/workOrders/10/images/7", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "image '7' was deleted", body["message"])
	})
}
