package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermissionsMatrix(t *testing.T) {
	tests := []struct {
		role    Role
		feature Feature
		view    bool
		edit    bool
	}{
		{RoleAdmin, FeatureSettings, true, true},
		{RoleAdmin, FeatureFees, true, true},
		{RoleHeadTeacher, FeatureFees, true, false},
		{RoleHeadTeacher, FeatureSettings, true, false},
		{RoleTeacher, FeatureFees, false, false},
		{RoleTeacher, FeatureDashboard, false, false},
		{RoleTeacher, FeatureAttendance, true, true},
		{RoleBursar, FeatureFees, true, true},
		{RoleBursar, FeatureAttendance, false, false},
		{RoleParent, FeatureStudents, true, false},
		{RoleParent, FeatureAcademics, false, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.view, CanView(tt.role, tt.feature), "%s view %s", tt.role, tt.feature)
		assert.Equal(t, tt.edit, CanEdit(tt.role, tt.feature), "%s edit %s", tt.role, tt.feature)
	}
}

func TestPermissionsUnknownRole(t *testing.T) {
	m := Permissions(Role("ghost"))
	assert.Empty(t, m)
	assert.False(t, CanView("ghost", FeatureStudents))
}

func TestPermissionsIsDeterministic(t *testing.T) {
	for _, role := range Roles() {
		assert.Equal(t, Permissions(role), Permissions(role))
		assert.Equal(t, DeriveFlags(role), DeriveFlags(role))
	}
}

func TestDeriveFlags(t *testing.T) {
	bursar := DeriveFlags(RoleBursar)
	assert.False(t, bursar.CanEdit)
	assert.True(t, bursar.CanViewFinance)
	assert.True(t, bursar.CanViewDashboard)
	assert.False(t, bursar.CanViewAttendance)

	teacher := DeriveFlags(RoleTeacher)
	assert.True(t, teacher.CanEdit)
	assert.False(t, teacher.CanViewFinance)
	assert.False(t, teacher.CanViewDashboard)
	assert.True(t, teacher.CanViewAcademics)
}

func TestNavigationOrder(t *testing.T) {
	names := func(items []NavItem) []string {
		out := make([]string, len(items))
		for i, item := range items {
			out[i] = item.Name
		}
		return out
	}

	assert.Equal(t,
		[]string{"Dashboard", "Students", "Academics", "Attendance", "Fees & Finance", "Reports", "Settings"},
		names(Navigation(RoleAdmin)))
	assert.Equal(t,
		[]string{"Students", "Academics", "Attendance", "Reports"},
		names(Navigation(RoleTeacher)))
	assert.Equal(t,
		[]string{"Dashboard", "Students", "Fees & Finance", "Reports"},
		names(Navigation(RoleBursar)))
	assert.Equal(t,
		[]string{"Students", "Attendance", "Reports"},
		names(Navigation(RoleParent)))
}
