// Package rbac maps user roles to the capabilities the client offers.
// Every predicate is pure over the role alone; the server independently
// enforces permissions on every call, so this policy shapes what is
// offered, never what is permitted at the data layer.
package rbac

import (
	"taskboard/internal/domain"
)

// CanManageTasks reports whether the role may create and edit task fields
func CanManageTasks(role domain.Role) bool {
	return role == domain.RoleAdmin || role == domain.RoleManager
}

// CanAssignTasks reports whether the role may choose a task's assignee
func CanAssignTasks(role domain.Role) bool {
	return role == domain.RoleAdmin || role == domain.RoleManager
}

// CanDeleteTasks reports whether the role may delete tasks
func CanDeleteTasks(role domain.Role) bool {
	return CanManageTasks(role)
}

// IsPersonalView reports whether dashboards should be labeled as the
// personal view rather than the admin view. The underlying numbers are
// computed identically either way.
func IsPersonalView(role domain.Role) bool {
	return role == domain.RoleUser
}
