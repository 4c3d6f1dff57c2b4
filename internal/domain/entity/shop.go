package entity

import (
	"time"
)

type Location struct {
	Latitude  float64 `json:"latitude" firestore:"latitude"`
	Longitude float64 `json:"longitude" firestore:"longitude"`
	Address   string  `json:"address" firestore:"address"`
}

type Shop struct {
	ID          string   `json:"id" firestore:"id"`
	OwnerID     string   `json:"owner_id" firestore:"ownerId"`
	Name        string   `json:"name" firestore:"name"`
	Description string   `json:"description" firestore:"description"`
	Contact     string   `json:"contact" firestore:"contact"`
	Location    Location `json:"location" firestore:"location"`

	// VerificationStatus is written only by the verification usecase. The
	// generic update path must never touch it.
	VerificationStatus VerificationStatus `json:"verification_status" firestore:"verificationStatus"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`

	// DeletedAt is stored as an explicit null for live records; the list
	// queries filter on deletedAt == nil, which only matches documents
	// that carry the field.
	DeletedAt *time.Time `json:"deleted_at,omitempty" firestore:"deletedAt"`
}
