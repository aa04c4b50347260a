package models

// UserRole is the coarse permission class of an account
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleEmployee UserRole = "employee"
)

// User represents an account in the system
type User struct {
	ID           int      `json:"id" gorm:"primaryKey"`
	Username     string   `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string   `json:"-" gorm:"not null"`
	DisplayName  string   `json:"display_name" gorm:"not null"`
	Role         UserRole `json:"role" gorm:"not null;default:'employee'"`
	IsActive     bool     `json:"is_active" gorm:"not null;default:true"`
}

// TableName specifies the table name for User Model
func (User) TableName() string {
	return "users"
}
