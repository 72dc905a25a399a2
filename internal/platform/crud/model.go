// Copyright (c) 2026 Quanto. All rights reserved.
// Author: dev@quanto.app

/*
Package crud implements the generic CRUD framework shared by every resource
in the Quanto API.

It is built from four cooperating parts:

  - Store: the persistence port — paged/sorted/filtered retrieval, existence
    checks, and mutations over entities keyed by numeric id. The port owns
    the audit timestamps: createdAt/updatedAt are stamped on insert and
    updatedAt is refreshed on every update.
  - Mapper: the entity-mapping port — hand-written, pure conversions between
    persisted entities and wire DTOs.
  - Service: the generic CRUD service — validation, optional per-user
    ownership scoping, and orchestration of the two ports.
  - Handler: the generic HTTP controller — query-parameter parsing and
    response-envelope wrapping, with no business logic.

Domains instantiate the framework with their entity and DTO types plus a
mapper, a validation hook, and a store implementation; they inherit the full
REST surface and error-handling pipeline without further code.
*/
package crud

import "time"

// Auditable is the embedded base for every persisted entity.
//
// # Invariants
//
// ID is server-generated, unique within its collection, and immutable once
// assigned. CreatedAt is set once at persistence time and never mutated.
// UpdatedAt is refreshed by the persistence port on every mutation, so
// CreatedAt <= UpdatedAt always holds once both are set.
type Auditable struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Audit exposes the embedded audit block to the generic framework.
func (a *Auditable) Audit() *Auditable { return a }

// Record is the constraint satisfied by every entity managed by the
// framework: anything embedding [Auditable] by pointer.
type Record interface {
	Audit() *Auditable
}

// Owned is implemented by entities that belong to a single user.
//
// The owner id is never taken from client input: the service injects the
// authenticated user's id on create and scopes every other operation by it.
type Owned interface {
	Record
	OwnerID() int64
	SetOwnerID(int64)
}
