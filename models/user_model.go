package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleAdmin = "ADMIN"
	RoleStaff = "STAFF"
)

// User is the sign-in account. Users are not part of the data snapshot and do
// not travel with backups.
type User struct {
	gorm.Model
	Email    string `json:"email" gorm:"unique"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Role     string `json:"role" gorm:"default:'STAFF'"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
}

type UserSession struct {
	gorm.Model
	UserID         uint      `json:"user_id"`
	SessionID      string    `json:"session_id" gorm:"index"`
	IPAddress      string    `json:"ip_address"`
	UserAgent      string    `json:"user_agent"`
	IsActive       bool      `json:"is_active"`
	LastActivityAt time.Time `json:"last_activity_at"`
	ExpiresAt      time.Time `json:"expires_at"`
}

type LoginLog struct {
	gorm.Model
	SessionID   string     `json:"session_id"`
	Username    string     `json:"username"`
	LoginAt     *time.Time `json:"login_at"`
	LogoutAt    *time.Time `json:"logout_at"`
	IPAddress   string     `json:"ip_address"`
	UserAgent   string     `json:"user_agent"`
	LoginStatus string     `json:"login_status"`
}
