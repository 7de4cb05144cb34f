// internal/model/workorder.go
package model

import "time"

// WorkOrder is the central trackable unit of maintenance work. Reads return
// the full aggregate: the scalar foreign keys stay out of the JSON body and
// the expanded associations take their place.
type WorkOrder struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"type:text" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	CompanyID    uint      `gorm:"not null" json:"-"`
	PropertyID   uint      `gorm:"not null" json:"-"`
	CreatedByID  string    `gorm:"type:text;not null" json:"-"`
	AssignedToID *string   `gorm:"type:text" json:"-"`
	PriorityID   uint      `gorm:"not null" json:"-"`
	StatusID     uint      `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Status     Status    `gorm:"foreignKey:StatusID" json:"status"`
	Priority   Priority  `gorm:"foreignKey:PriorityID" json:"priority"`
	Company    Company   `gorm:"foreignKey:CompanyID" json:"company"`
	Property   Property  `gorm:"foreignKey:PropertyID" json:"property"`
	Images     []Image   `gorm:"foreignKey:WorkOrderID" json:"images"`
	Comments   []Comment `gorm:"foreignKey:WorkOrderID" json:"comments"`
	CreatedBy  Profile   `gorm:"foreignKey:CreatedByID" json:"createdBy"`
	AssignedTo Profile   `gorm:"foreignKey:AssignedToID" json:"assignedTo"`
}

// Comment is attached to exactly one work order and never moves. Updates
// replace the text wholesale.
type Comment struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Comment     string `gorm:"type:text" json:"comment"`
	AuthorID    string `gorm:"type:text;not null" json:"author"`
	WorkOrderID uint   `gorm:"not null" json:"workOrder"`
}

type Image struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	URL         string `gorm:"type:text" json:"url"`
	UserID      string `gorm:"type:text;not null" json:"user"`
	WorkOrderID uint   `gorm:"not null" json:"workOrder"`
}
