package testutil

import (
	"github.com/salesboard/salesboard/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TestUser represents user data for testing HTTP handlers.
type TestUser struct {
	ID      string
	Name    string
	Email   string
	IsAdmin bool
}

// AdminUser returns a TestUser with the admin flag.
func AdminUser() TestUser {
	return TestUser{
		ID:      primitive.NewObjectID().Hex(),
		Name:    "Test Admin",
		Email:   "admin@test.com",
		IsAdmin: true,
	}
}

// RepUser returns a plain (non-admin) TestUser.
func RepUser() TestUser {
	return TestUser{
		ID:    primitive.NewObjectID().Hex(),
		Name:  "Test Rep",
		Email: "rep@test.com",
	}
}

// Session converts a TestUser into the context shape handlers read.
func (u TestUser) Session() *auth.SessionUser {
	return &auth.SessionUser{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		IsAdmin: u.IsAdmin,
	}
}
