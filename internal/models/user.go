package models

import (
	"time"
)

type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"not null" json:"-"` // bcrypt hash，任何返回都不携带
	Name        string    `gorm:"not null" json:"name"`
	Nickname    string    `gorm:"uniqueIndex;not null" json:"nickname"`
	PhoneNumber string    `gorm:"uniqueIndex;not null" json:"phoneNumber"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	// No DeletedAt for hard delete
}
