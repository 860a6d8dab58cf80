package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taskboard/internal/domain"
)

func TestPolicy(t *testing.T) {
	tests := []struct {
		name         string
		role         domain.Role
		canManage    bool
		canAssign    bool
		canDelete    bool
		personalView bool
	}{
		{
			name:         "should limit a plain user to the personal view",
			role:         domain.RoleUser,
			canManage:    false,
			canAssign:    false,
			canDelete:    false,
			personalView: true,
		},
		{
			name:         "should grant a manager full task management",
			role:         domain.RoleManager,
			canManage:    true,
			canAssign:    true,
			canDelete:    true,
			personalView: false,
		},
		{
			name:         "should grant an admin full task management",
			role:         domain.RoleAdmin,
			canManage:    true,
			canAssign:    true,
			canDelete:    true,
			personalView: false,
		},
		{
			name:         "should treat an unknown role as a plain user",
			role:         domain.Role("auditor"),
			canManage:    false,
			canAssign:    false,
			canDelete:    false,
			personalView: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.canManage, CanManageTasks(tt.role))
			assert.Equal(t, tt.canAssign, CanAssignTasks(tt.role))
			assert.Equal(t, tt.canDelete, CanDeleteTasks(tt.role))
			assert.Equal(t, tt.personalView, IsPersonalView(tt.role))
		})
	}
}
