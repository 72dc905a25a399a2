// Copyright (c) 2026 Quanto. All rights reserved.
// Author: dev@quanto.app

/*
Package goal implements financial savings goals.

A goal tracks progress of a saved amount toward a target. Progress may be
edited directly or accumulated through contributions; a goal whose current
amount reaches its target is completed automatically.
*/
package goal

import (
	"context"
	"time"

	"github.com/quantoapp/quanto/internal/platform/crud"
	"github.com/quantoapp/quanto/pkg/pointer"
)

// Status is the lifecycle state of a goal.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Goal is the persisted entity.
type Goal struct {
	crud.Auditable

	UserID        int64 `json:"-"`
	Name          string
	TargetAmount  float64
	CurrentAmount float64
	Deadline      *time.Time
	Status        Status
}

// OwnerID implements [crud.Owned].
func (g *Goal) OwnerID() int64 { return g.UserID }

// SetOwnerID implements [crud.Owned].
func (g *Goal) SetOwnerID(id int64) { g.UserID = id }

// Progress returns the completion ratio as a percentage, capped at 100.
func (g *Goal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	percent := g.CurrentAmount / g.TargetAmount * 100
	if percent > 100 {
		return 100
	}
	return percent
}

// Repository is the goal persistence port: the generic store plus the
// atomic contribution operation.
type Repository interface {
	crud.Store[*Goal]

	// AddProgress atomically adds amount to the goal's current amount,
	// completing the goal when the target is reached, and returns the
	// updated entity.
	AddProgress(ctx context.Context, id, ownerID int64, amount float64) (*Goal, error)
}

// DTO is the unified wire representation for create, update, and response
// payloads.
type DTO struct {
	ID            int64      `json:"id,omitempty"`
	Name          string     `json:"name"`
	TargetAmount  float64    `json:"targetAmount"`
	CurrentAmount float64    `json:"currentAmount"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	Status        string     `json:"status,omitempty"`
	Progress      float64    `json:"progress"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

// ProgressRequest is the payload of a contribution.
type ProgressRequest struct {
	Amount float64 `json:"amount"`
}

// Global field names for validation
const (
	FieldName          = "name"
	FieldTargetAmount  = "targetAmount"
	FieldCurrentAmount = "currentAmount"
	FieldDeadline      = "deadline"
	FieldStatus        = "status"
	FieldAmount        = "amount"
)

// mapper implements [crud.Mapper] for the goal domain.
type mapper struct{}

func (mapper) ToDTO(entity *Goal) DTO {
	return DTO{
		ID:            entity.ID,
		Name:          entity.Name,
		TargetAmount:  entity.TargetAmount,
		CurrentAmount: entity.CurrentAmount,
		Deadline:      entity.Deadline,
		Status:        string(entity.Status),
		Progress:      entity.Progress(),
		CreatedAt:     pointer.To(entity.CreatedAt),
		UpdatedAt:     pointer.To(entity.UpdatedAt),
	}
}

func (mapper) NewEntity(dto DTO) *Goal {
	entity := &Goal{}
	applyMutable(dto, entity)
	return entity
}

func (mapper) ApplyDTO(dto DTO, entity *Goal) {
	applyMutable(dto, entity)
}

// applyMutable copies the client-controlled fields and reconciles the
// status: missing status defaults to active, and a goal that has reached
// its target is completed regardless of the requested status.
func applyMutable(dto DTO, entity *Goal) {
	entity.Name = dto.Name
	entity.TargetAmount = dto.TargetAmount
	entity.CurrentAmount = dto.CurrentAmount
	entity.Deadline = dto.Deadline

	entity.Status = Status(dto.Status)
	if entity.Status == "" {
		entity.Status = StatusActive
	}
	if entity.Status == StatusActive && entity.TargetAmount > 0 && entity.CurrentAmount >= entity.TargetAmount {
		entity.Status = StatusCompleted
	}
}
