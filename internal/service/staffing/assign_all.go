package staffing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ellishaven/careops-backend/internal/domain"
)

// AssignAll materializes the full cross product of houses and ACTIVE
// employees as assignment pairs. A pair that already exists counts as
// skipped, not as an error; any other per-pair failure is recorded and
// the run continues. Re-running produces zero new creates; the end
// state is the cross product at the time of the run.
func (s *Service) AssignAll(ctx context.Context) (*AssignmentReport, error) {
	houses, err := s.houses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("staffing.AssignAll list houses: %w", err)
	}

	employees, err := s.employees.List(ctx, domain.EmployeeStatusActive)
	if err != nil {
		return nil, fmt.Errorf("staffing.AssignAll list employees: %w", err)
	}

	report := &AssignmentReport{}

	for _, employee := range employees {
		for _, house := range houses {
			_, err := s.assignments.Create(ctx, &domain.HouseAssignment{
				EmployeeID: employee.ID,
				HouseID:    house.ID,
			})
			switch {
			case err == nil:
				report.Created++
			case errors.Is(err, domain.ErrAlreadyExists):
				report.Skipped++
			default:
				report.Failures = append(report.Failures, PairFailure{
					EmployeeID:   employee.ID,
					EmployeeName: employee.Name,
					HouseID:      house.ID,
					HouseName:    house.Name,
					Err:          err,
				})
				s.log.ErrorContext(ctx, "assignment create failed",
					slog.String("employee", employee.Name),
					slog.String("house", house.Name),
					slog.String("error", err.Error()))
			}
		}
	}

	s.log.InfoContext(ctx, "assignment run finished",
		slog.Int("created", report.Created),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", len(report.Failures)))

	return report, nil
}
