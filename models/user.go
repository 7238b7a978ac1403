package models

import "time"

// User is an account profile. Accounts are auto-provisioned on first access in
// this prototype, so Email may start as a placeholder.
type User struct {
	ID        string    `bson:"id" json:"id"`
	Email     string    `bson:"email" json:"email"`
	Name      string    `bson:"name,omitempty" json:"name,omitempty"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// Traveler is a saved co-traveler profile attached to a user account.
type Traveler struct {
	ID        string     `bson:"id" json:"id"`
	UserID    string     `bson:"user_id" json:"userId"`
	FirstName string     `bson:"first_name" json:"firstName"`
	LastName  string     `bson:"last_name" json:"lastName"`
	Gender    string     `bson:"gender,omitempty" json:"gender,omitempty"`
	DOB       *time.Time `bson:"dob,omitempty" json:"dob,omitempty"`
	DocType   string     `bson:"doc_type,omitempty" json:"docType,omitempty"`
	DocNumber string     `bson:"doc_number,omitempty" json:"docNumber,omitempty"`
	DocExpiry *time.Time `bson:"doc_expiry,omitempty" json:"docExpiry,omitempty"`
	CreatedAt time.Time  `bson:"created_at" json:"createdAt"`
}
