// internal/handler/profile.go
package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dwellfix/dwellfix/internal/middleware"
	"github.com/dwellfix/dwellfix/internal/model"
	"github.com/dwellfix/dwellfix/internal/service"
	"github.com/go-chi/chi/v5"
)

type ProfileHandler struct {
	profiles *service.ProfileService

	// devMode lets company id 0 list every profile, a convenience that must
	// never be live in production.
	devMode bool
}

func NewProfileHandler(profiles *service.ProfileService, devMode bool) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, devMode: devMode}
}

type ProfileResponse struct {
	BaseResponse
	Message string         `json:"message"`
	Profile *model.Profile `json:"profile"`
}

type NewCompanySignupResponse struct {
	BaseResponse
	Message string         `json:"message"`
	Profile *model.Profile `json:"profile"`
	Company *model.Company `json:"company"`
}

func (h *ProfileHandler) CompanyUsers(w http.ResponseWriter, r *http.Request) {
	companyID, err := uintParam(r, "companyID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid company id")
		return
	}

	if companyID == 0 && h.devMode {
		profiles, err := h.profiles.ListProfiles(r.Context())
		if err != nil {
			handleError(w, r, err)
			return
		}
		respondWithJSON(w, http.StatusOK, profiles)
		return
	}

	profiles, err := h.profiles.CompanyUsers(r.Context(), companyID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, profiles)
}

func (h *ProfileHandler) CompanyUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	profile, err := h.profiles.GetUser(r.Context(), userID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	companyID, err := uintParam(r, "companyID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid company id")
		return
	}

	var input service.CreateProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if input.CompanyID == nil && companyID != 0 {
		input.CompanyID = &companyID
	}

	profile, err := h.profiles.CreateUser(r.Context(), input)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, ProfileResponse{
		BaseResponse: BaseResponse{Ok: true},
		Message:      "profile created",
		Profile:      profile,
	})
}

// CreateWithCode onboards a caller through a role invite code; role and
// company come from the code, never the payload.
func (h *ProfileHandler) CreateWithCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var input service.CreateProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if input.ID == "" {
		input.ID = middleware.ProfileID(r.Context())
	}

	profile, err := h.profiles.CreateUserWithCode(r.Context(), input, code)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, ProfileResponse{
		BaseResponse: BaseResponse{Ok: true},
		Message:      "profile created",
		Profile:      profile,
	})
}

// CreateWithNewCompany founds a company and signs the caller up as its Admin
// in one request.
func (h *ProfileHandler) CreateWithNewCompany(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Profile service.CreateProfileInput `json:"profile"`
		Company struct {
			Name string `json:"name"`
		} `json:"company"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if body.Profile.ID == "" {
		body.Profile.ID = middleware.ProfileID(r.Context())
	}

	profile, company, err := h.profiles.CreateUserNewCompany(r.Context(), body.Profile, body.Company.Name)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, NewCompanySignupResponse{
		BaseResponse: BaseResponse{Ok: true},
		Message:      "company and profile created",
		Profile:      profile,
		Company:      company,
	})
}

// Assign moves an existing profile onto the role an invite code unlocks. The
// body may name a profile id; the caller's own id is the default.
func (h *ProfileHandler) Assign(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var body struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	userID := body.ID
	if userID == "" {
		userID = middleware.ProfileID(r.Context())
	}

	profile, err := h.profiles.AssignUser(r.Context(), userID, code)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ProfileResponse{
		BaseResponse: BaseResponse{Ok: true},
		Message:      "profile assigned",
		Profile:      profile,
	})
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var input service.UpdateProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	profile, err := h.profiles.UpdateProfile(r.Context(), userID, input)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ProfileResponse{
		BaseResponse: BaseResponse{Ok: true},
		Message:      "profile updated",
		Profile:      profile,
	})
}

func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	profile, err := h.profiles.DeleteUser(r.Context(), userID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ProfileResponse{
		BaseResponse: BaseResponse{Ok: true},
		Message:      fmt.Sprintf("profile '%s' was deleted", userID),
		Profile:      profile,
	})
}
