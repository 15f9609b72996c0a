package models

import "time"

type User struct {
	ID               uint              `gorm:"primaryKey" json:"id" example:"1"`
	Username         string            `gorm:"size:150;not null;uniqueIndex" json:"username" example:"alice"`
	PasswordHash     string            `gorm:"size:255;not null" json:"-"`
	IsStaff          bool              `gorm:"not null;default:false" json:"is_staff" example:"false"`
	SecurityQuestion *SecurityQuestion `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

type SecurityQuestion struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	UserID   uint   `gorm:"not null;uniqueIndex" json:"-"`
	Question string `gorm:"type:text;not null" json:"question" example:"Name of your first pet?"`
	Answer   string `gorm:"type:text;not null" json:"-"`
}

func (SecurityQuestion) TableName() string {
	return "security_questions"
}
