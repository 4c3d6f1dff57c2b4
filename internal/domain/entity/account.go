package entity

import (
	"time"
)

// Role is a closed set. Authorization rules switch over it exhaustively so
// an unknown role can never fall through to an implicit allow.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

// Account binds an opaque identity credential (its UID is the document key)
// to a role. The role is fixed at registration; only the admin-gated
// role-change path may rewrite it.
type Account struct {
	ID          string    `json:"id" firestore:"id"`
	DisplayName string    `json:"display_name" firestore:"displayName"`
	Email       string    `json:"email" firestore:"email"`
	Role        Role      `json:"role" firestore:"role"`
	Status      string    `json:"status" firestore:"status"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}
