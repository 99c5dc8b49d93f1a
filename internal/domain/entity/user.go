package entity

import (
	"time"
)

// User is the lazily-created record under users/{uid}. The ID equals the
// identity assigned by the auth provider.
type User struct {
	ID        string    `json:"id" firestore:"-"`
	Email     string    `json:"email" firestore:"email"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt,serverTimestamp"`
}

// Identity is the authenticated caller as established by the auth middleware.
type Identity struct {
	UID   string
	Email string
}
