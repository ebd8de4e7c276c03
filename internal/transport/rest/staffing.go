package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ellishaven/careops-backend/internal/service/staffing"
)

// staffingService defines the minimal interface needed by StaffingHandler.
type staffingService interface {
	AssignAll(ctx context.Context) (*staffing.AssignmentReport, error)
	Coverage(ctx context.Context) (*staffing.CoverageReport, error)
}

// StaffingHandler serves admin staffing REST endpoints. Routes using it
// must be registered behind the Admin middleware.
type StaffingHandler struct {
	svc staffingService
	log *slog.Logger
}

// NewStaffingHandler creates a StaffingHandler.
func NewStaffingHandler(svc staffingService, logger *slog.Logger) *StaffingHandler {
	return &StaffingHandler{svc: svc, log: logger.With("handler", "staffing")}
}

type assignmentReportResponse struct {
	Created  int                   `json:"created"`
	Skipped  int                   `json:"skipped"`
	Failures []pairFailureResponse `json:"failures"`
}

type pairFailureResponse struct {
	EmployeeName string `json:"employeeName"`
	HouseName    string `json:"houseName"`
	Error        string `json:"error"`
}

type coverageReportResponse struct {
	TotalEmployees     int                        `json:"totalEmployees"`
	WithAssignments    int                        `json:"withAssignments"`
	WithoutAssignments int                        `json:"withoutAssignments"`
	Employees          []employeeCoverageResponse `json:"employees"`
}

type employeeCoverageResponse struct {
	EmployeeID   string   `json:"employeeId"`
	EmployeeName string   `json:"employeeName"`
	HouseNames   []string `json:"houseNames"`
}

// AssignAll handles POST /admin/staffing/assign. It materializes the
// house-employee cross product and reports what happened.
func (h *StaffingHandler) AssignAll(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.AssignAll(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "assign all", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := assignmentReportResponse{
		Created:  report.Created,
		Skipped:  report.Skipped,
		Failures: make([]pairFailureResponse, 0, len(report.Failures)),
	}
	for _, f := range report.Failures {
		resp.Failures = append(resp.Failures, pairFailureResponse{
			EmployeeName: f.EmployeeName,
			HouseName:    f.HouseName,
			Error:        f.Err.Error(),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// Coverage handles GET /admin/staffing/coverage.
func (h *StaffingHandler) Coverage(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.Coverage(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "coverage report", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := coverageReportResponse{
		TotalEmployees:     report.TotalEmployees,
		WithAssignments:    report.WithAssignments,
		WithoutAssignments: report.WithoutAssignments,
		Employees:          make([]employeeCoverageResponse, 0, len(report.Employees)),
	}
	for _, e := range report.Employees {
		resp.Employees = append(resp.Employees, employeeCoverageResponse{
			EmployeeID:   e.EmployeeID.String(),
			EmployeeName: e.EmployeeName,
			HouseNames:   e.HouseNames,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
