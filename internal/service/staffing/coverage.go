package staffing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Coverage reports, for every employee regardless of status, the houses
// they are assigned to, plus summary counts. Pure read, no mutation.
func (s *Service) Coverage(ctx context.Context) (*CoverageReport, error) {
	employees, err := s.employees.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("staffing.Coverage list employees: %w", err)
	}

	rows, err := s.assignments.Coverage(ctx)
	if err != nil {
		return nil, fmt.Errorf("staffing.Coverage list assignments: %w", err)
	}

	housesByEmployee := make(map[uuid.UUID][]string)
	for _, row := range rows {
		housesByEmployee[row.EmployeeID] = append(housesByEmployee[row.EmployeeID], row.HouseName)
	}

	report := &CoverageReport{
		TotalEmployees: len(employees),
	}
	for _, employee := range employees {
		houseNames := housesByEmployee[employee.ID]
		if len(houseNames) > 0 {
			report.WithAssignments++
		} else {
			report.WithoutAssignments++
		}
		report.Employees = append(report.Employees, EmployeeCoverage{
			EmployeeID:   employee.ID,
			EmployeeName: employee.Name,
			HouseNames:   houseNames,
		})
	}

	return report, nil
}
