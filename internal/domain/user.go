package domain

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleCollector Role = "collector"
	RoleAdmin     Role = "admin"
)

func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleCollector
}

type User struct {
	ID           int32     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Zone         string    `json:"zone"`
	Address      string    `json:"address,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Points       int32     `json:"points"`
	CreatedAt    time.Time `json:"created_at"`
}
