package domain

import (
	"time"

	"github.com/google/uuid"
)

// House is a residential site staffed by employees.
type House struct {
	ID        uuid.UUID
	Name      string
	Address   *string
	CreatedAt time.Time
}

// Employee is a staffable worker. Only ACTIVE employees participate in
// bulk assignment.
type Employee struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     *string
	Status    EmployeeStatus
	CreatedAt time.Time
}

// HouseAssignment is the (employee, house) staffing pair. The pair is
// unique; duplicate creation surfaces as ErrAlreadyExists.
type HouseAssignment struct {
	ID         uuid.UUID
	EmployeeID uuid.UUID
	HouseID    uuid.UUID
	CreatedAt  time.Time
}

// CoverageRow is one assignment joined with house and employee names,
// as read for the staffing coverage report.
type CoverageRow struct {
	HouseID        uuid.UUID
	HouseName      string
	EmployeeID     uuid.UUID
	EmployeeName   string
	EmployeeStatus EmployeeStatus
}
