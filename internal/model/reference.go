// internal/model/reference.go
package model

// Priority and Status are fixed reference sets installed by migration; the API
// never creates or mutates them.

type Priority struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"type:text;not null" json:"name"`
	Color string `gorm:"type:text;not null" json:"color"`
}

func (Priority) TableName() string { return "priority" }

type Status struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:text;not null" json:"name"`
}

func (Status) TableName() string { return "status" }
