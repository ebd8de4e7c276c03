package testhelper

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ellishaven/careops-backend/internal/domain"
)

// SeedUser inserts a user row with unique email and username and returns it.
func SeedUser(t *testing.T, pool *pgxpool.Pool) *domain.User {
	t.Helper()

	u := &domain.User{
		ID:           uuid.New(),
		Role:         domain.UserRoleUser,
		PasswordHash: "$2a$12$seeded.hash.not.a.real.one",
	}
	u.Email = fmt.Sprintf("user-%s@example.com", u.ID)
	u.Username = fmt.Sprintf("user-%s", u.ID)
	u.Name = "Seeded User"

	const q = `
INSERT INTO users (id, email, username, name, role, password_hash)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING created_at, updated_at`

	err := pool.QueryRow(context.Background(), q,
		u.ID, u.Email, u.Username, u.Name, string(u.Role), u.PasswordHash,
	).Scan(&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	return u
}

// SeedComplianceItem inserts a PENDING compliance item for a user.
func SeedComplianceItem(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) *domain.ComplianceItem {
	t.Helper()

	item := &domain.ComplianceItem{
		ID:     uuid.New(),
		UserID: userID,
		Name:   "CPR certification",
		Status: domain.ComplianceStatusPending,
	}

	const q = `
INSERT INTO compliance_items (id, user_id, name, status)
VALUES ($1, $2, $3, $4)
RETURNING created_at, updated_at`

	err := pool.QueryRow(context.Background(), q,
		item.ID, item.UserID, item.Name, string(item.Status),
	).Scan(&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		t.Fatalf("seed compliance item: %v", err)
	}

	return item
}

// SeedNotification inserts an unread notification for a user.
func SeedNotification(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) *domain.Notification {
	t.Helper()

	n := &domain.Notification{
		ID:     uuid.New(),
		UserID: userID,
		Title:  "Shift reminder",
		Body:   "Your shift starts at 8am.",
	}

	const q = `
INSERT INTO notifications (id, user_id, title, body)
VALUES ($1, $2, $3, $4)
RETURNING created_at`

	err := pool.QueryRow(context.Background(), q,
		n.ID, n.UserID, n.Title, n.Body,
	).Scan(&n.CreatedAt)
	if err != nil {
		t.Fatalf("seed notification: %v", err)
	}

	return n
}

// SeedHouse inserts a house with a unique name.
func SeedHouse(t *testing.T, pool *pgxpool.Pool) *domain.House {
	t.Helper()

	h := &domain.House{ID: uuid.New()}
	h.Name = fmt.Sprintf("House %s", h.ID)

	const q = `
INSERT INTO houses (id, name)
VALUES ($1, $2)
RETURNING created_at`

	if err := pool.QueryRow(context.Background(), q, h.ID, h.Name).Scan(&h.CreatedAt); err != nil {
		t.Fatalf("seed house: %v", err)
	}

	return h
}

// SeedEmployee inserts an employee in the given status with a unique email.
func SeedEmployee(t *testing.T, pool *pgxpool.Pool, status domain.EmployeeStatus) *domain.Employee {
	t.Helper()

	e := &domain.Employee{
		ID:     uuid.New(),
		Name:   "Seeded Employee",
		Status: status,
	}
	e.Email = fmt.Sprintf("employee-%s@example.com", e.ID)

	const q = `
INSERT INTO employees (id, name, email, status)
VALUES ($1, $2, $3, $4)
RETURNING created_at`

	err := pool.QueryRow(context.Background(), q,
		e.ID, e.Name, e.Email, string(e.Status),
	).Scan(&e.CreatedAt)
	if err != nil {
		t.Fatalf("seed employee: %v", err)
	}

	return e
}

// SeedAssignment inserts an (employee, house) assignment pair.
func SeedAssignment(t *testing.T, pool *pgxpool.Pool, employeeID, houseID uuid.UUID) *domain.HouseAssignment {
	t.Helper()

	a := &domain.HouseAssignment{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		HouseID:    houseID,
	}

	const q = `
INSERT INTO house_assignments (id, employee_id, house_id)
VALUES ($1, $2, $3)
RETURNING created_at`

	err := pool.QueryRow(context.Background(), q,
		a.ID, a.EmployeeID, a.HouseID,
	).Scan(&a.CreatedAt)
	if err != nil {
		t.Fatalf("seed assignment: %v", err)
	}

	return a
}
