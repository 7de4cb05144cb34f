// internal/model/company.go
package model

// Company is the root tenant boundary. Roles, properties and work orders all
// hang off a company and are removed with it.
type Company struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:text;not null" json:"name"`

	Users      []Profile  `gorm:"foreignKey:CompanyID" json:"-"`
	Properties []Property `gorm:"foreignKey:CompanyID" json:"-"`
	Roles      []Role     `gorm:"foreignKey:CompanyID" json:"-"`
}

// Role is a named permission tier scoped to one company. Code is the unique
// invite string used for self-service onboarding.
type Role struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"type:text;not null" json:"name"`
	UserLevel int    `gorm:"not null" json:"userLevel"`
	CompanyID uint   `gorm:"not null" json:"company"`
	Code      string `gorm:"type:text;uniqueIndex;not null" json:"code"`
}

// DefaultRoles returns the six roles every new company starts with. Codes are
// assigned by the caller before insert.
func DefaultRoles() []Role {
	return []Role{
		{Name: "Admin", UserLevel: 4},
		{Name: "Property Manager", UserLevel: 4},
		{Name: "IT", UserLevel: 4},
		{Name: "Supervisor", UserLevel: 3},
		{Name: "Maintenance", UserLevel: 2},
		{Name: "Tenant", UserLevel: 1},
	}
}

// AdminRoleName identifies the role granted to the creator of a new company.
const AdminRoleName = "Admin"
