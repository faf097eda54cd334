package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Role enum
type Role string

const (
	RoleCitizen      Role = "citizen"
	RoleAdmin        Role = "admin"
	RoleFieldOfficer Role = "field_officer"
)

// GovernmentRoles are the roles allowed into the admin views.
var GovernmentRoles = []Role{RoleAdmin, RoleFieldOfficer}

// JharkhandRegions lists the regions a user or issue can belong to.
var JharkhandRegions = []string{
	"Ranchi",
	"Jamshedpur",
	"Dhanbad",
	"Bokaro",
	"Deoghar",
	"Phusro",
	"Hazaribagh",
	"Giridih",
	"Ramgarh",
	"Medininagar",
}

// User represents an authenticated person. Region and Department are only
// meaningful for non-citizen roles; a field officer is expected to carry both.
type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Role       Role      `json:"role"`
	Region     string    `json:"region,omitempty"`
	Department string    `json:"department,omitempty"`
	Password   string    `json:"password,omitempty"` // bcrypt hash, persisted record only
	CreatedAt  time.Time `json:"createdAt"`
}

func (u *User) HashPassword() error {
	if u.Password == "" {
		return nil
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

func (u *User) ComparePassword(candidate string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(candidate))
	return err == nil
}

// IsGovernment reports whether the user belongs to a government role.
func (u *User) IsGovernment() bool {
	return u.Role == RoleAdmin || u.Role == RoleFieldOfficer
}
