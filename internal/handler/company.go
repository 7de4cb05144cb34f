// internal/handler/company.go
package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dwellfix/dwellfix/internal/model"
	"github.com/dwellfix/dwellfix/internal/service"
	"github.com/go-chi/chi/v5"
)

type CompanyHandler struct {
	companies *service.CompanyService
}

func NewCompanyHandler(companies *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companies: companies}
}

// companyDetail is the read shape for a single company: the row plus its
// denormalized profile and property arrays.
type companyDetail struct {
	ID         uint             `json:"id"`
	Name       string           `json:"name"`
	Users      []model.Profile  `json:"users"`
	Properties []model.Property `json:"properties"`
}

func toCompanyDetail(c *model.Company) companyDetail {
	return companyDetail{
		ID:         c.ID,
		Name:       c.Name,
		Users:      c.Users,
		Properties: c.Properties,
	}
}

type CompanyResponse struct {
	BaseResponse
	Message string         `json:"message"`
	Company *model.Company `json:"company"`
}

type RoleResponse struct {
	BaseResponse
	Message string      `json:"message"`
	Role    *model.Role `json:"role"`
}

func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	companies, err := h.companies.ListCompanies(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, companies)
}

func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uintParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid company id")
		return
	}

	company, err := h.companies.GetCompany(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, toCompanyDetail(company))
}

func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateCompanyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	company, err := h.companies.CreateCompany(r.Context(), input)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, CompanyResponse{
		BaseResponse: BaseResponse{Ok: true},
		Message:      "company created",
		Company:      company,
	})
}

// Update accepts the id either in the path or in the body, matching both
// historical PUT forms.
func (h *CompanyHandler) Update(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ID   uint    `json:"id"`
		Name *string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	id := body.ID
	if pathID, err := uintParam(r, "id"); err == nil && pathID != 0 {
		id = pathID
	}

	company, err := h.companies.UpdateCompany(r.Context(), id, service.UpdateCompanyInput{Name: body.Name})
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, CompanyResponse{
		BaseResponse: BaseResponse{Ok: true},
		Message:      "company updated",
		Company:      company,
	})
}

func (h *CompanyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uintParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid company id")
		return
	}

	company, err := h.companies.DeleteCompany(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, CompanyResponse{
		BaseResponse: BaseResponse{Ok: true},
		Message:      fmt.Sprintf("company '%d' was deleted", id),
		Company:      company,
	})
}

func (h *CompanyHandler) Roles(w http.ResponseWriter, r *http.Request) {
	id, err := uintParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid company id")
		return
	}

	roles, err := h.companies.CompanyRoles(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, roles)
}

func (h *CompanyHandler) CreateRole(w http.ResponseWriter, r *http.Request) {
	id, err := uintParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid company id")
		return
	}

	var input service.CreateRoleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	role, err := h.companies.CreateRole(r.Context(), id, input)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, RoleResponse{
		BaseResponse: BaseResponse{Ok: true},
		Message:      "role created",
		Role:         role,
	})
}

func (h *CompanyHandler) AllRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.companies.AllRoles(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, roles)
}

func (h *CompanyHandler) RoleByCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	role, err := h.companies.RoleByCode(r.Context(), code)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, role)
}

// Invite mails a role's invite code to an address supplied in the body.
func (h *CompanyHandler) Invite(w http.ResponseWriter, r *http.Request) {
	companyID, err := uintParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid company id")
		return
	}
	roleID, err := uintParam(r, "roleID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid role id")
		return
	}

	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if err := h.companies.InviteToRole(r.Context(), companyID, roleID, body.Email); err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusAccepted, map[string]interface{}{
		"ok":      true,
		"message": "invite sent",
	})
}
