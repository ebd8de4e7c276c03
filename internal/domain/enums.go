package domain

// ComplianceStatus represents the lifecycle state of a compliance item.
type ComplianceStatus string

const (
	ComplianceStatusPending   ComplianceStatus = "PENDING"
	ComplianceStatusCompleted ComplianceStatus = "COMPLETED"
	ComplianceStatusOverdue   ComplianceStatus = "OVERDUE"
)

func (s ComplianceStatus) String() string { return string(s) }

func (s ComplianceStatus) IsValid() bool {
	switch s {
	case ComplianceStatusPending, ComplianceStatusCompleted, ComplianceStatusOverdue:
		return true
	}
	return false
}

// EmployeeStatus represents the employment activity state of an employee.
type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "ACTIVE"
	EmployeeStatusInactive EmployeeStatus = "INACTIVE"
	EmployeeStatusOnLeave  EmployeeStatus = "ON_LEAVE"
)

func (s EmployeeStatus) String() string { return string(s) }

func (s EmployeeStatus) IsValid() bool {
	switch s {
	case EmployeeStatusActive, EmployeeStatusInactive, EmployeeStatusOnLeave:
		return true
	}
	return false
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeComplianceItem EntityType = "COMPLIANCE_ITEM"
	EntityTypeNotification   EntityType = "NOTIFICATION"
	EntityTypeUser           EntityType = "USER"
	EntityTypeHouse          EntityType = "HOUSE"
	EntityTypeEmployee       EntityType = "EMPLOYEE"
	EntityTypeAssignment     EntityType = "ASSIGNMENT"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeComplianceItem, EntityTypeNotification, EntityTypeUser,
		EntityTypeHouse, EntityTypeEmployee, EntityTypeAssignment:
		return true
	}
	return false
}

// AuditAction represents the kind of action recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate       AuditAction = "CREATE"
	AuditActionUpdate       AuditAction = "UPDATE"
	AuditActionDelete       AuditAction = "DELETE"
	AuditActionStatusChange AuditAction = "STATUS_CHANGE"
	AuditActionLogout       AuditAction = "LOGOUT"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete,
		AuditActionStatusChange, AuditActionLogout:
		return true
	}
	return false
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
