// Package models defines the records the client persists locally.
package models

import "github.com/dmitrijs2005/droplogistics/internal/cryptox"

// User is the profile of a registered account.
type User struct {
	// ID is assigned at registration and never changes.
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	// Email is unique and keys the credential record.
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	// PhotoURI references device media; empty when no photo is set.
	PhotoURI string `json:"photoUri,omitempty"`
	// CreatedAt is the registration time, RFC 3339.
	CreatedAt string `json:"createdAt"`
}

// UserUpdate is a partial profile change. Nil fields are left as is.
// Email is absent on purpose: it is the credential key.
type UserUpdate struct {
	FullName *string
	Phone    *string
	Address  *string
	PhotoURI *string
}

// Apply merges the non-nil fields of upd into u.
func (u *User) Apply(upd UserUpdate) {
	if upd.FullName != nil {
		u.FullName = *upd.FullName
	}
	if upd.Phone != nil {
		u.Phone = *upd.Phone
	}
	if upd.Address != nil {
		u.Address = *upd.Address
	}
	if upd.PhotoURI != nil {
		u.PhotoURI = *upd.PhotoURI
	}
}

func (upd UserUpdate) Empty() bool {
	return upd.FullName == nil && upd.Phone == nil && upd.Address == nil && upd.PhotoURI == nil
}

// Session is the record of the signed-in user. It carries no password
// material, only the profile and the access token issued at sign-in.
type Session struct {
	User
	Token string `json:"token,omitempty"`
}

// Credential is the email-keyed record checked at login.
type Credential struct {
	User
	PasswordHash *cryptox.PasswordHash `json:"passwordHash,omitempty"`
	// LegacyPassword is a clear password left by older builds. It is
	// accepted once and replaced by PasswordHash.
	LegacyPassword string `json:"password,omitempty"`
}
