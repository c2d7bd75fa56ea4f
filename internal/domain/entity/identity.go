// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/google/uuid"
)

// IdentityClass distinguishes the two kinds of badge holders.
type IdentityClass string

const (
	// ClassStudent identifies a student credential.
	ClassStudent IdentityClass = "student"
	// ClassTeacher identifies a teacher credential.
	ClassTeacher IdentityClass = "teacher"
)

// Valid reports whether the class is one of the known identity classes.
func (c IdentityClass) Valid() bool {
	return c == ClassStudent || c == ClassTeacher
}

// Identity represents a badge holder resolved from a credential UID.
// Students and teachers share the same shape; Class tells them apart.
type Identity struct {
	ID            uuid.UUID     `json:"id"`             // The Global Unique Identifier (GUID) for the identity.
	Class         IdentityClass `json:"class"`          // Whether this identity is a student or a teacher.
	Code          string        `json:"code"`           // External registration code (NIS for students, NIP for teachers).
	Name          string        `json:"name"`           // Display name of the badge holder.
	CredentialUID string        `json:"credential_uid"` // RFID credential UID burned into the badge.
	IsActive      bool          `json:"is_active"`      // Inactive identities never resolve.
}

// IdentityRef is the (class, id) pair addressing one identity's event stream.
type IdentityRef struct {
	Class IdentityClass `json:"class"`
	ID    uuid.UUID     `json:"id"`
}

// Ref returns the ledger address of this identity.
func (i *Identity) Ref() IdentityRef {
	return IdentityRef{Class: i.Class, ID: i.ID}
}

// Key returns a stable string form of the reference, used as a serialization key.
func (r IdentityRef) Key() string {
	return string(r.Class) + ":" + r.ID.String()
}
