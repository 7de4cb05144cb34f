// internal/model/profile.go
package model

// Profile is an application user. The primary key is the subject string issued
// by the external identity provider, never generated locally.
type Profile struct {
	ID        string `gorm:"type:text;primaryKey" json:"id"`
	Name      string `gorm:"type:text" json:"name"`
	Email     string `gorm:"type:text" json:"email"`
	AvatarURL string `gorm:"type:text" json:"avatarUrl"`
	RoleID    *uint  `json:"role"`
	CompanyID *uint  `json:"company"`
}
