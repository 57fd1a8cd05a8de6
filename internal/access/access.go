// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package access implements the pure access-control decision function for
// drawings. It has no side effects and no dependencies beyond the domain
// models; every (drawing state, requester) pair maps to exactly one decision.
package access

import "github.com/MKhiriev/go-sketch-keeper/models"

// Decision is the closed result set of [Evaluate]. Representing it as a typed
// enum (rather than free-form strings) keeps the evaluator's exhaustiveness
// statically checkable.
type Decision int

const (
	// NotFound: the drawing does not exist.
	NotFound Decision = iota

	// Deleted: the drawing is in trash and the requester is not its owner.
	// A trashed drawing is invisible to everyone but the owner, who still
	// needs to see it to restore it. This outranks IsPublic on purpose.
	Deleted

	// PublicAccess: the drawing is public; any requester, including an
	// anonymous one, may read it. Read-only — never implies write access.
	PublicAccess

	// LoginRequired: the drawing is private and the requester is anonymous.
	LoginRequired

	// Forbidden: the drawing is private and the authenticated requester is
	// not its owner.
	Forbidden

	// Allowed: the requester owns the drawing (including owner access to
	// trashed drawings).
	Allowed
)

// String returns the wire tag of the decision as exposed in API responses.
func (d Decision) String() string {
	switch d {
	case NotFound:
		return "NOT_FOUND"
	case Deleted:
		return "DELETED"
	case PublicAccess:
		return "PUBLIC_ACCESS"
	case LoginRequired:
		return "LOGIN_REQUIRED"
	case Forbidden:
		return "FORBIDDEN"
	case Allowed:
		return "ALLOWED"
	default:
		return "FORBIDDEN"
	}
}

// Readable reports whether the decision grants read access to the drawing.
func (d Decision) Readable() bool {
	return d == Allowed || d == PublicAccess
}

// Evaluate maps a drawing's state and a requester to an access decision.
// A nil drawing means absent; a nil requester means anonymous.
//
// Precedence, first match wins:
//  1. absent drawing            -> NotFound
//  2. trashed, not the owner    -> Deleted
//  3. trashed, owner            -> Allowed
//  4. public                    -> PublicAccess
//  5. private, anonymous        -> LoginRequired
//  6. private, foreign          -> Forbidden
//  7. owner                     -> Allowed
func Evaluate(drawing *models.Drawing, requester *models.Identity) Decision {
	if drawing == nil {
		return NotFound
	}

	if drawing.IsDeleted {
		if requester == nil || requester.ID != drawing.OwnerID {
			return Deleted
		}
		return Allowed
	}

	if drawing.IsPublic {
		return PublicAccess
	}

	if requester == nil {
		return LoginRequired
	}

	if requester.ID != drawing.OwnerID {
		return Forbidden
	}

	return Allowed
}

// CanModify reports whether the requester may mutate the drawing. Mutation is
// ownership-only: metadata edits, content saves and permanent deletion all
// require requester == owner regardless of IsPublic.
func CanModify(drawing *models.Drawing, requester *models.Identity) bool {
	if drawing == nil || requester == nil {
		return false
	}
	return requester.ID == drawing.OwnerID
}
