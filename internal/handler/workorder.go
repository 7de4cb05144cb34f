// internal/handler/workorder.go
package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dwellfix/dwellfix/internal/middleware"
	"github.com/dwellfix/dwellfix/internal/model"
	"github.com/dwellfix/dwellfix/internal/service"
)

type WorkOrderHandler struct {
	workOrders *service.WorkOrderService
}

func NewWorkOrderHandler(workOrders *service.WorkOrderService) *WorkOrderHandler {
	return &WorkOrderHandler{workOrders: workOrders}
}

type WorkOrderResponse struct {
	BaseResponse
	Message   string           `json:"message"`
	WorkOrder *model.WorkOrder `json:"workOrder"`
}

type CommentResponse struct {
	BaseResponse
	Message string         `json:"message"`
	Comment *model.Comment `json:"comment"`
}

type ImageResponse struct {
	BaseResponse
	Message string       `json:"message"`
	Image   *model.Image `json:"image"`
}

// ListMine returns the caller's dashboard: every work order they created or
// are assigned to.
func (h *WorkOrderHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	callerID := middleware.ProfileID(r.Context())

	workOrders, err := h.workOrders.WorkOrdersForUser(r.Context(), callerID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, workOrders)
}

func (h *WorkOrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uintParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid work order id")
		return
	}

	workOrder, err := h.workOrders.GetWorkOrder(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, workOrder)
}

func (h *WorkOrderHandler) ByCompany(w http.ResponseWriter, r *http.Request) {
	companyID, err := uintParam(r, "companyID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid company id")
		return
	}

	workOrders, err := h.workOrders.WorkOrdersForCompany(r.Context(), companyID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, workOrders)
}

func (h *WorkOrderHandler) ByProperty(w http.ResponseWriter, r *http.Request) {
	propertyID, err := uintParam(r, "propertyID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid property id")
		return
	}

	workOrders, err := h.workOrders.WorkOrdersForProperty(r.Context(), propertyID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, workOrders)
}

func (h *WorkOrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateWorkOrderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	workOrder, err := h.workOrders.CreateWorkOrder(r.Context(), input, middleware.ProfileID(r.Context()))
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, WorkOrderResponse{
		BaseResponse: BaseResponse{Ok: true},
		Message:      "workOrder created",
		WorkOrder:    workOrder,
	})
}

func (h *WorkOrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ID uint `json:"id"`
		service.UpdateWorkOrderInput
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

	workOrder, err := h.workOrders.UpdateWorkOrder(r.Context(), id, body.UpdateWorkOrderInput)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, WorkOrderResponse{
		BaseResponse: BaseResponse{Ok: true},
		Message:      "workOrder updated",
		WorkOrder:    workOrder,
	})
}

func (h *WorkOrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uintParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid work order id")
		return
	}

	workOrder, err := h.workOrders.DeleteWorkOrder(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, WorkOrderResponse{
		BaseResponse: BaseResponse{Ok: true},
		Message:      fmt.Sprintf("workOrder '%d' was deleted", id),
		WorkOrder:    workOrder,
	})
}

func (h *WorkOrderHandler) Comments(w http.ResponseWriter, r *http.Request) {
	id, err := uintParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid work order id")
		return
	}

	comments, err := h.workOrders.Comments(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, comments)
}

func (h *WorkOrderHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	id, err := uintParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid work order id")
		return
	}

	var input service.CommentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	comment, err := h.workOrders.AddComment(r.Context(), id, input, middleware.ProfileID(r.Context()))
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, CommentResponse{
		BaseResponse: BaseResponse{Ok: true},
		Message:      "comment created",
		Comment:      comment,
	})
}

func (h *WorkOrderHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	id, err := uintParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid work order id")
		return
	}
	commentID, err := uintParam(r, "commentID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid comment id")
		return
	}

	var input service.CommentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	comment, err := h.workOrders.UpdateComment(r.Context(), id, commentID, input.Comment)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, CommentResponse{
		BaseResponse: BaseResponse{Ok: true},
		Message:      "comment updated",
		Comment:      comment,
	})
}

func (h *WorkOrderHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := uintParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid work order id")
		return
	}
	commentID, err := uintParam(r, "commentID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid comment id")
		return
	}

	comment, err := h.workOrders.RemoveComment(r.Context(), id, commentID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, CommentResponse{
		BaseResponse: BaseResponse{Ok: true},
		Message:      fmt.Sprintf("comment '%d' was deleted", commentID),
		Comment:      comment,
	})
}

func (h *WorkOrderHandler) Images(w http.ResponseWriter, r *http.Request) {
	id, err := uintParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid work order id")
		return
	}

	images, err := h.workOrders.Images(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, images)
}

func (h *WorkOrderHandler) AddImage(w http.ResponseWriter, r *http.Request) {
	id, err := uintParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid work order id")
		return
	}

	var input service.ImageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	image, err := h.workOrders.AddImage(r.Context(), id, input, middleware.ProfileID(r.Context()))
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, ImageResponse{
		BaseResponse: BaseResponse{Ok: true},
		Message:      "image created",
		Image:        image,
	})
}

func (h *WorkOrderHandler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	id, err := uintParam(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid work order id")
		return
	}
	imageID, err := uintParam(r, "imageID")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid image id")
		return
	}

	image, err := h.workOrders.RemoveImage(r.Context(), id, imageID)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ImageResponse{
		BaseResponse: BaseResponse{Ok: true},
		Message:      fmt.Sprintf("image '%d' was deleted", imageID),
		Image:        image,
	})
}
