// internal/model/property.go
package model

type Property struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"type:text" json:"name"`
	Address   string `gorm:"type:text" json:"address"`
	ImageURL  string `gorm:"type:text" json:"imageUrl"`
	CompanyID uint   `gorm:"not null" json:"company"`
}
