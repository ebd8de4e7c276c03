// Package staffing implements house staffing maintenance operations: the
// bulk assignment materializer and the coverage report.
package staffing

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ellishaven/careops-backend/internal/domain"
)

// houseRepo defines the house repository interface needed by the service.
type houseRepo interface {
	List(ctx context.Context) ([]*domain.House, error)
}

// employeeRepo defines the employee repository interface needed by the service.
type employeeRepo interface {
	List(ctx context.Context, status domain.EmployeeStatus) ([]*domain.Employee, error)
}

// assignmentRepo defines the assignment repository interface needed by the service.
type assignmentRepo interface {
	Create(ctx context.Context, a *domain.HouseAssignment) (*domain.HouseAssignment, error)
	Coverage(ctx context.Context) ([]*domain.CoverageRow, error)
}

// Service implements staffing operations.
type Service struct {
	log         *slog.Logger
	houses      houseRepo
	employees   employeeRepo
	assignments assignmentRepo
}

// NewService creates a new staffing service instance.
func NewService(logger *slog.Logger, houses houseRepo, employees employeeRepo, assignments assignmentRepo) *Service {
	return &Service{
		log:         logger.With("service", "staffing"),
		houses:      houses,
		employees:   employees,
		assignments: assignments,
	}
}

// PairFailure records one (employee, house) pair whose creation failed for
// a reason other than the pair already existing.
type PairFailure struct {
	EmployeeID   uuid.UUID
	EmployeeName string
	HouseID      uuid.UUID
	HouseName    string
	Err          error
}

// AssignmentReport summarizes one materializer run.
type AssignmentReport struct {
	Created  int
	Skipped  int
	Failures []PairFailure
}

// EmployeeCoverage is one employee's assigned houses in the coverage report.
type EmployeeCoverage struct {
	EmployeeID   uuid.UUID
	EmployeeName string
	HouseNames   []string
}

// CoverageReport summarizes house coverage across all employees.
type CoverageReport struct {
	Employees          []EmployeeCoverage
	TotalEmployees     int
	WithAssignments    int
	WithoutAssignments int
}
