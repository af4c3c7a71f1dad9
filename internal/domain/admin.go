package domain

// Admin Model
type Admin struct {
	ID       uint   `gorm:"primaryKey" json:"id"`            // Primary key
	Username string `gorm:"unique;not null" json:"username"` // Unique login name
	Password string `gorm:"not null" json:"-"`               // Bcrypt hash, never serialized
}
