// internal/service/workorder.go
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

type WorkOrderService struct {
	repo     repository.WorkOrderRepositoryIface
	validate *validator.Validate
}

func NewWorkOrderService(repo repository.WorkOrderRepositoryIface) *WorkOrderService {
	return &WorkOrderService{
		repo:     repo,
		validate: validator.New(),
	}
}

type CreateWorkOrderInput struct {
	ID          uint   `json:"id"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	CompanyID   uint   `json:"company" validate:"required"`
	PropertyID  uint   `json:"property" validate:"required"`
	CreatedBy   string `json:"createdBy"`
	AssignedTo  string `json:"assignedTo"`
	PriorityID  uint   `json:"priority" validate:"required"`
	StatusID    uint   `json:"status" validate:"required"`
}

type UpdateWorkOrderInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	AssignedTo  *string `json:"assignedTo"`
	PriorityID  *uint   `json:"priority"`
	StatusID    *uint   `json:"status"`
	PropertyID  *uint   `json:"property"`
}

type CommentInput struct {
	Comment string `json:"comment" validate:"required"`
	Author  string `json:"author"`
}

type ImageInput struct {
	URL  string `json:"url" validate:"required,url"`
	User string `json:"user"`
}

func (s *WorkOrderService) ListWorkOrders(ctx context.Context) ([]*model.WorkOrder, error) {
	return s.repo.FindAll(ctx)
}

// WorkOrdersForUser is the caller's dashboard: work orders they created or
// are assigned to.
func (s *WorkOrderService) WorkOrdersForUser(ctx context.Context, userID string) ([]*model.WorkOrder, error) {
	return s.repo.FindByUser(ctx, userID)
}

func (s *WorkOrderService) WorkOrdersForCompany(ctx context.Context, companyID uint) ([]*model.WorkOrder, error) {
	return s.repo.FindByCompany(ctx, companyID)
}

func (s *WorkOrderService) WorkOrdersForProperty(ctx context.Context, propertyID uint) ([]*model.WorkOrder, error) {
	return s.repo.FindByProperty(ctx, propertyID)
}

func (s *WorkOrderService) GetWorkOrder(ctx context.Context, id uint) (*model.WorkOrder, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateWorkOrder inserts the work order and re-reads it through the
// aggregate query so the response carries the same expanded shape as any
// other read. callerID fills createdBy when the payload leaves it blank.
func (s *WorkOrderService) CreateWorkOrder(ctx context.Context, input CreateWorkOrderInput, callerID string) (*model.WorkOrder, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}

	if input.ID != 0 {
		if _, err := s.repo.FindByID(ctx, input.ID); err == nil {
			return nil, domain.ErrAlreadyExists
		} else if !errors.Is(err, domain.ErrWorkOrderNotFound) {
			return nil, err
		}
	}

	createdBy := input.CreatedBy
	if createdBy == "" {
		createdBy = callerID
	}

	// An absent assignee stays NULL so the profiles foreign key is not
	// checked against an empty string.
	var assignedTo *string
	if input.AssignedTo != "" {
		assignedTo = &input.AssignedTo
	}

	workOrder := &model.WorkOrder{
		ID:           input.ID,
		Title:        input.Title,
		Description:  input.Description,
		CompanyID:    input.CompanyID,
		PropertyID:   input.PropertyID,
		CreatedByID:  createdBy,
		AssignedToID: assignedTo,
		PriorityID:   input.PriorityID,
		StatusID:     input.StatusID,
	}

	if err := s.repo.Create(ctx, workOrder); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, workOrder.ID)
}

func (s *WorkOrderService) UpdateWorkOrder(ctx context.Context, id uint, input UpdateWorkOrderInput) (*model.WorkOrder, error) {
	workOrder, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		workOrder.Title = *input.Title
	}
	if input.Description != nil {
		workOrder.Description = *input.Description
	}
	if input.AssignedTo != nil {
		if *input.AssignedTo == "" {
			workOrder.AssignedToID = nil
		} else {
			workOrder.AssignedToID = input.AssignedTo
		}
	}
	if input.PriorityID != nil {
		workOrder.PriorityID = *input.PriorityID
	}
	if input.StatusID != nil {
		workOrder.StatusID = *input.StatusID
	}
	if input.PropertyID != nil {
		workOrder.PropertyID = *input.PropertyID
	}

	if err := s.repo.Update(ctx, workOrder); err != nil {
		return nil, err
	}

	return s.repo.FindByID(ctx, id)
}

func (s *WorkOrderService) DeleteWorkOrder(ctx context.Context, id uint) (*model.WorkOrder, error) {
	workOrder, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return workOrder, nil
}

func (s *WorkOrderService) Comments(ctx context.Context, workOrderID uint) ([]*model.Comment, error) {
	if _, err := s.repo.FindByID(ctx, workOrderID); err != nil {
		return nil, err
	}
	return s.repo.FindComments(ctx, workOrderID)
}

// AddComment attaches a comment to the work order, attributed to the caller
// unless the payload names another author.
func (s *WorkOrderService) AddComment(ctx context.Context, workOrderID uint, input CommentInput, callerID string) (*model.Comment, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}

	if _, err := s.repo.FindByID(ctx, workOrderID); err != nil {
		return nil, err
	}

	author := input.Author
	if author == "" {
		author = callerID
	}

	comment := &model.Comment{
		Comment:     input.Comment,
		AuthorID:    author,
		WorkOrderID: workOrderID,
	}
	if err := s.repo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// UpdateComment replaces the comment text wholesale.
func (s *WorkOrderService) UpdateComment(ctx context.Context, workOrderID, commentID uint, text string) (*model.Comment, error) {
	comment, err := s.repo.FindCommentByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.WorkOrderID != workOrderID {
		return nil, domain.ErrCommentNotFound
	}

	comment.Comment = text
	if err := s.repo.UpdateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *WorkOrderService) RemoveComment(ctx context.Context, workOrderID, commentID uint) (*model.Comment, error) {
	comment, err := s.repo.FindCommentByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.WorkOrderID != workOrderID {
		return nil, domain.ErrCommentNotFound
	}

	if err := s.repo.DeleteComment(ctx, commentID); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *WorkOrderService) Images(ctx context.Context, workOrderID uint) ([]*model.Image, error) {
	if _, err := s.repo.FindByID(ctx, workOrderID); err != nil {
		return nil, err
	}
	return s.repo.FindImages(ctx, workOrderID)
}

func (s *WorkOrderService) AddImage(ctx context.Context, workOrderID uint, input ImageInput, callerID string) (*model.Image, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}

	if _, err := s.repo.FindByID(ctx, workOrderID); err != nil {
		return nil, err
	}

	user := input.User
	if user == "" {
		user = callerID
	}

	image := &model.Image{
		URL:         input.URL,
		UserID:      user,
		WorkOrderID: workOrderID,
	}
	if err := s.repo.CreateImage(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

func (s *WorkOrderService) RemoveImage(ctx context.Context, workOrderID, imageID uint) (*model.Image, error) {
	image, err := s.repo.FindImageByID(ctx, imageID)
	if err != nil {
		return nil, err
	}
	if image.WorkOrderID != workOrderID {
		return nil, domain.ErrImageNotFound
	}

	if err := s.repo.DeleteImage(ctx, imageID); err != nil {
		return nil, err
	}
	return image, nil
}
