package domain

import (
	"time"

	"github.com/google/uuid"
)

// ComplianceItem is a tracked obligation assigned to a staff member
// (a training renewal, a document upload, an inspection follow-up).
//
// CompletedAt is set by the completion flow together with the status
// transition to COMPLETED; the schema rejects a mismatched pair.
type ComplianceItem struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description *string
	Status      ComplianceStatus
	DueAt       *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Notification is a message delivered to exactly one user.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Body      string
	IsRead    bool
	CreatedAt time.Time
}

// AuditRecord logs an action performed by a user, append-only.
type AuditRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	EntityType EntityType
	EntityID   *uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
