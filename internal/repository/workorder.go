// internal/repository/workorder.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dwellfix/dwellfix/internal/domain"
	"github.com/dwellfix/dwellfix/internal/model"
	"gorm.io/gorm"
)

type WorkOrderRepositoryIface interface {
	FindAll(ctx context.Context) ([]*model.WorkOrder, error)
	FindBy(ctx context.Context, filter map[string]interface{}) ([]*model.WorkOrder, error)
	FindByUser(ctx context.Context, userID string) ([]*model.WorkOrder, error)
	FindByCompany(ctx context.Context, companyID uint) ([]*model.WorkOrder, error)
	FindByProperty(ctx context.Context, propertyID uint) ([]*model.WorkOrder, error)
	FindByID(ctx context.Context, id uint) (*model.WorkOrder, error)
	Create(ctx context.Context, workOrder *model.WorkOrder) error
	Update(ctx context.Context, workOrder *model.WorkOrder) error
	Delete(ctx context.Context, id uint) error

	FindComments(ctx context.Context, workOrderID uint) ([]*model.Comment, error)
	FindCommentByID(ctx context.Context, id uint) (*model.Comment, error)
	CreateComment(ctx context.Context, comment *model.Comment) error
	UpdateComment(ctx context.Context, comment *model.Comment) error
	DeleteComment(ctx context.Context, id uint) error

	FindImages(ctx context.Context, workOrderID uint) ([]*model.Image, error)
	FindImageByID(ctx context.Context, id uint) (*model.Image, error)
	CreateImage(ctx context.Context, image *model.Image) error
	DeleteImage(ctx context.Context, id uint) error
}

type WorkOrderRepository struct {
	db *gorm.DB
}

func NewWorkOrderRepository(db *gorm.DB) *WorkOrderRepository {
	return &WorkOrderRepository{db: db}
}

// withAggregate attaches every association a work-order read returns. Comments
// and images are batch-fetched by parent-id set, so parent rows never
// multiply no matter how many children exist.
func (r *WorkOrderRepository) withAggregate(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Status").
		Preload("Priority").
		Preload("Company").
		Preload("Property").
		Preload("Comments").
		Preload("Images").
		Preload("CreatedBy").
		Preload("AssignedTo")
}

func normalize(workOrders []*model.WorkOrder) []*model.WorkOrder {
	for _, wo := range workOrders {
		if wo.Comments == nil {
			wo.Comments = []model.Comment{}
		}
		if wo.Images == nil {
			wo.Images = []model.Image{}
		}
	}
	return workOrders
}

func (r *WorkOrderRepository) FindAll(ctx context.Context) ([]*model.WorkOrder, error) {
	var workOrders []*model.WorkOrder
	if err := r.withAggregate(ctx).Find(&workOrders).Error; err != nil {
		return nil, fmt.Errorf("failed to find all work orders: %w", err)
	}
	return normalize(workOrders), nil
}

// FindByUser returns the caller's dashboard set: everything they created or
// are assigned to, each work order exactly once.
func (r *WorkOrderRepository) FindByUser(ctx context.Context, userID string) ([]*model.WorkOrder, error) {
	var workOrders []*model.WorkOrder
	err := r.withAggregate(ctx).
		Where("created_by_id = ? OR assigned_to_id = ?", userID, userID).
		Order("id").
		Find(&workOrders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find work orders for user: %w", err)
	}
	return normalize(workOrders), nil
}

// FindBy filters work orders by exact column matches, still returning the
// full aggregate shape.
func (r *WorkOrderRepository) FindBy(ctx context.Context, filter map[string]interface{}) ([]*model.WorkOrder, error) {
	var workOrders []*model.WorkOrder
	err := r.withAggregate(ctx).
		Where(filter).
		Order("id").
		Find(&workOrders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find work orders: %w", err)
	}
	return normalize(workOrders), nil
}

func (r *WorkOrderRepository) FindByCompany(ctx context.Context, companyID uint) ([]*model.WorkOrder, error) {
	return r.FindBy(ctx, map[string]interface{}{"company_id": companyID})
}

func (r *WorkOrderRepository) FindByProperty(ctx context.Context, propertyID uint) ([]*model.WorkOrder, error) {
	return r.FindBy(ctx, map[string]interface{}{"property_id": propertyID})
}

func (r *WorkOrderRepository) FindByID(ctx context.Context, id uint) (*model.WorkOrder, error) {
	var workOrder model.WorkOrder
	if err := r.withAggregate(ctx).First(&workOrder, "work_orders.id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrWorkOrderNotFound
		}
		return nil, fmt.Errorf("finding work order: %w", err)
	}
	normalize([]*model.WorkOrder{&workOrder})
	return &workOrder, nil
}

func (r *WorkOrderRepository) Create(ctx context.Context, workOrder *model.WorkOrder) error {
	if err := r.db.WithContext(ctx).Create(workOrder).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create work order: %w", err)
	}
	return nil
}

func (r *WorkOrderRepository) Update(ctx context.Context, workOrder *model.WorkOrder) error {
	err := r.db.WithContext(ctx).
		Omit("Status", "Priority", "Company", "Property", "Comments", "Images", "CreatedBy", "AssignedTo").
		Save(workOrder).Error
	if err != nil {
		return fmt.Errorf("updating work order: %w", err)
	}
	return nil
}

// Delete removes the work order; comments and images cascade in the schema.
func (r *WorkOrderRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.WorkOrder{}, id).Error; err != nil {
		return fmt.Errorf("deleting work order: %w", err)
	}
	return nil
}

func (r *WorkOrderRepository) FindComments(ctx context.Context, workOrderID uint) ([]*model.Comment, error) {
	var comments []*model.Comment
	if err := r.db.WithContext(ctx).Where("work_order_id = ?", workOrderID).Order("id").Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("failed to find comments: %w", err)
	}
	return comments, nil
}

func (r *WorkOrderRepository) FindCommentByID(ctx context.Context, id uint) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.WithContext(ctx).First(&comment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, fmt.Errorf("finding comment: %w", err)
	}
	return &comment, nil
}

func (r *WorkOrderRepository) CreateComment(ctx context.Context, comment *model.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (r *WorkOrderRepository) UpdateComment(ctx context.Context, comment *model.Comment) error {
	if err := r.db.WithContext(ctx).Save(comment).Error; err != nil {
		return fmt.Errorf("updating comment: %w", err)
	}
	return nil
}

func (r *WorkOrderRepository) DeleteComment(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.Comment{}, id).Error; err != nil {
		return fmt.Errorf("deleting comment: %w", err)
	}
	return nil
}

func (r *WorkOrderRepository) FindImages(ctx context.Context, workOrderID uint) ([]*model.Image, error) {
	var images []*model.Image
	if err := r.db.WithContext(ctx).Where("work_order_id = ?", workOrderID).Order("id").Find(&images).Error; err != nil {
		return nil, fmt.Errorf("failed to find images: %w", err)
	}
	return images, nil
}

func (r *WorkOrderRepository) FindImageByID(ctx context.Context, id uint) (*model.Image, error) {
	var image model.Image
	if err := r.db.WithContext(ctx).First(&image, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrImageNotFound
		}
		return nil, fmt.Errorf("finding image: %w", err)
	}
	return &image, nil
}

func (r *WorkOrderRepository) CreateImage(ctx context.Context, image *model.Image) error {
	if err := r.db.WithContext(ctx).Create(image).Error; err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}
	return nil
}

func (r *WorkOrderRepository) DeleteImage(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.Image{}, id).Error; err != nil {
		return fmt.Errorf("deleting image: %w", err)
	}
	return nil
}
