// internal/handler/property.go
package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dwellfix/dwellfix/internal/model"
	"github.com/dwellfix/dwellfix/internal/service"
)

type PropertyHandler struct {
	properties *service.PropertyService
}

func NewPropertyHandler(properties *service.PropertyService) *PropertyHandler {
	return &PropertyHandler{properties: properties}
}

type PropertyResponse struct {
	BaseResponse
	Message  string          `json:"message"`
	Property *model.Property `json:"property"`
}

func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	properties, err := h.properties.ListProperties(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, properties)
}

func (h *PropertyHandler) ByCompany(w http.ResponseWriter, r *http.Request) {
	companyID, err := uintParam(r, "companyID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid company id")
		return
	}

	properties, err := h.properties.PropertiesByCompany(r.Context(), companyID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, properties)
}

func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uintParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid property id")
		return
	}

	property, err := h.properties.GetProperty(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, property)
}

func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreatePropertyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	property, err := h.properties.CreateProperty(r.Context(), input)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, PropertyResponse{
		BaseResponse: BaseResponse{Ok: true},
		Message:      "property created",
		Property:     property,
	})
}

func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ID uint `json:"id"`
		service.UpdatePropertyInput
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

	property, err := h.properties.UpdateProperty(r.Context(), id, body.UpdatePropertyInput)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, PropertyResponse{
		BaseResponse: BaseResponse{Ok: true},
		Message:      "property updated",
		Property:     property,
	})
}

func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uintParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid property id")
		return
	}

	property, err := h.properties.DeleteProperty(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, PropertyResponse{
		BaseResponse: BaseResponse{Ok: true},
		Message:      fmt.Sprintf("property '%d' was deleted", id),
		Property:     property,
	})
}
