// internal/middleware/check.go
package middleware

import (
	"net/http"
	"strconv"

	"github.com/dwellfix/dwellfix/internal/repository"
	"github.com/go-chi/chi/v5"
)

// CompanyCheck verifies that the company named in the path exists before the
// handler runs. A missing company is a plain 404, never an authorization
// failure. allowZero admits company id 0 for the development-only
// "all records" convenience.
func CompanyCheck(repo repository.CompanyRepositoryIface, allowZero bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := chi.URLParam(r, "companyID")
			id, err := strconv.ParseUint(raw, 10, 32)
			if err != nil {
				respondWithError(w, http.StatusBadRequest, "invalid company id")
				return
			}

			if id == 0 {
				if !allowZero {
					respondWithError(w, http.StatusNotFound, "company not found")
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			if _, err := repo.FindByID(r.Context(), uint(id)); err != nil {
				respondWithError(w, http.StatusNotFound, "company not found")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// UserCheck verifies that the profile named in the path exists, failing as a
// 404 rather than the ambiguous 401 this check historically produced.
func UserCheck(repo repository.ProfileRepositoryIface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, "userID")
			if id == "" {
				respondWithError(w, http.StatusBadRequest, "invalid user id")
				return
			}

			if _, err := repo.FindByID(r.Context(), id); err != nil {
				respondWithError(w, http.StatusNotFound, "profile not found")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
