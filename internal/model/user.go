// Package model mirrors the rows of the relational store.  The JSON tags
// reproduce the column names verbatim because the API contract exposes rows
// under their stored column names (PascalCase), as the frontend expects.
package model

import "time"

// User represents a row in the `User` table.  UserTypeId references the
// role table and decides whether the account may host spots or only book
// them.  Password is an opaque credential string; it is returned by the
// full user listing but stripped from the per-user profile endpoint.
//
// Fields:
//
//	UserId      – primary key identifier of the user.
//	Firstname   – given name.
//	Name        – family name.
//	Email       – login handle; uniqueness is a store-schema constraint.
//	Password    – opaque credential string (plaintext in the store today).
//	PhoneNumber – contact phone number.
//	UserTypeId  – role reference (host or guest).
//	Birthdate   – date of birth.
//	Gender      – free-form gender string.
//	CreatedAt   – timestamp of account creation.
type User struct {
	UserId      uint64    `json:"UserId"`      // User.UserId
	Firstname   string    `json:"Firstname"`   // User.Firstname
	Name        string    `json:"Name"`        // User.Name
	Email       string    `json:"Email"`       // User.Email
	Password    string    `json:"Password"`    // User.Password
	PhoneNumber string    `json:"PhoneNumber"` // User.PhoneNumber
	UserTypeId  uint64    `json:"UserTypeId"`  // User.UserTypeId
	Birthdate   time.Time `json:"Birthdate"`   // User.Birthdate
	Gender      string    `json:"Gender"`      // User.Gender
	CreatedAt   time.Time `json:"CreatedAt"`   // User.CreatedAt
}

// UserProfile is the credential-free projection of a user returned by the
// single-user lookup.  It carries every column except Password.
type UserProfile struct {
	UserId      uint64    `json:"UserId"`
	Firstname   string    `json:"Firstname"`
	Name        string    `json:"Name"`
	Email       string    `json:"Email"`
	PhoneNumber string    `json:"PhoneNumber"`
	UserTypeId  uint64    `json:"UserTypeId"`
	Birthdate   time.Time `json:"Birthdate"`
	Gender      string    `json:"Gender"`
	CreatedAt   time.Time `json:"CreatedAt"`
}

// Credentials is the minimal projection returned by a successful login:
// just enough for the client to identify the session user and their role.
type Credentials struct {
	UserId     uint64 `json:"userId"`
	Email      string `json:"email"`
	UserTypeId uint64 `json:"userTypeId"`
}
