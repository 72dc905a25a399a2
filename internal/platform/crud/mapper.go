// Copyright (c) 2026 Quanto. All rights reserved.
// Author: dev@quanto.app

package crud

// Mapper is the generic entity-mapping port: total, deterministic
// conversions between the persisted entity shape and the wire DTO shape.
//
// Implementations are hand-written per domain and must be pure — no I/O,
// no clock reads, no mutation of the DTO.
//
// # Trust boundary
//
// Domains use a single unified DTO for create, update, and response, so
// incoming payloads may carry id, timestamps, or ownership fields. Mappers
// discard them: NewEntity leaves every server-assigned field zero, and
// ApplyDTO copies mutable fields only.
type Mapper[E Record, D any] interface {
	// ToDTO converts a persisted entity into its wire representation.
	ToDTO(entity E) D

	// NewEntity builds a fresh entity from a create payload. Server-assigned
	// fields (id, audit timestamps, owner) are left for the service and the
	// persistence port to fill in.
	NewEntity(dto D) E

	// ApplyDTO copies the DTO's mutable fields onto an existing entity,
	// preserving id, createdAt, and ownership.
	ApplyDTO(dto D, entity E)
}
