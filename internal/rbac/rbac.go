package rbac

// Role is one of five fixed identities. The set is closed; there are no
// custom or composable roles.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleHeadTeacher Role = "head_teacher"
	RoleTeacher     Role = "teacher"
	RoleBursar      Role = "bursar"
	RoleParent      Role = "parent"
)

// Roles lists every valid role.
func Roles() []Role {
	return []Role{RoleAdmin, RoleHeadTeacher, RoleTeacher, RoleBursar, RoleParent}
}

// Valid reports whether r is a member of the closed role set.
func Valid(r Role) bool {
	switch r {
	case RoleAdmin, RoleHeadTeacher, RoleTeacher, RoleBursar, RoleParent:
		return true
	}
	return false
}

// Feature is an area of the application gated by the capability matrix.
type Feature string

const (
	FeatureStudents   Feature = "students"
	FeatureFees       Feature = "fees"
	FeatureAttendance Feature = "attendance"
	FeatureAcademics  Feature = "academics"
	FeatureNotices    Feature = "notices"
	FeatureReports    Feature = "reports"
	FeatureDashboard  Feature = "dashboard"
	FeatureSettings   Feature = "settings"
)

// Capability is a view/edit pair for one feature.
type Capability struct {
	View bool
	Edit bool
}

// Matrix is the full per-role capability table.
type Matrix map[Feature]Capability

// Permissions returns the static capability matrix for a role. An unknown
// role yields the zero matrix: no view, no edit, anywhere.
func Permissions(r Role) Matrix {
	switch r {
	case RoleAdmin:
		return Matrix{
			FeatureStudents:   {View: true, Edit: true},
			FeatureFees:       {View: true, Edit: true},
			FeatureAttendance: {View: true, Edit: true},
			FeatureAcademics:  {View: true, Edit: true},
			FeatureNotices:    {View: true, Edit: true},
			FeatureReports:    {View: true, Edit: true},
			FeatureDashboard:  {View: true},
			FeatureSettings:   {View: true, Edit: true},
		}
	case RoleHeadTeacher:
		return Matrix{
			FeatureStudents:   {View: true, Edit: true},
			FeatureFees:       {View: true},
			FeatureAttendance: {View: true, Edit: true},
			FeatureAcademics:  {View: true, Edit: true},
			FeatureNotices:    {View: true, Edit: true},
			FeatureReports:    {View: true, Edit: true},
			FeatureDashboard:  {View: true},
			FeatureSettings:   {View: true},
		}
	case RoleTeacher:
		return Matrix{
			FeatureStudents:   {View: true},
			FeatureAttendance: {View: true, Edit: true},
			FeatureAcademics:  {View: true, Edit: true},
			FeatureNotices:    {View: true},
			FeatureReports:    {View: true},
		}
	case RoleBursar:
		return Matrix{
			FeatureStudents:  {View: true},
			FeatureFees:      {View: true, Edit: true},
			FeatureNotices:   {View: true},
			FeatureReports:   {View: true},
			FeatureDashboard: {View: true},
		}
	case RoleParent:
		return Matrix{
			FeatureStudents:   {View: true},
			FeatureFees:       {View: true},
			FeatureAttendance: {View: true},
			FeatureNotices:    {View: true},
			FeatureReports:    {View: true},
		}
	}
	return Matrix{}
}

// CanView reports the view capability for a role on a feature.
func CanView(r Role, f Feature) bool {
	return Permissions(r)[f].View
}

// CanEdit reports the edit capability for a role on a feature.
func CanEdit(r Role, f Feature) bool {
	return Permissions(r)[f].Edit
}

// Flags are the derived booleans the navigation layer consumes. They are a
// pure function of the role.
type Flags struct {
	CanEdit           bool `json:"canEdit"`
	CanViewFinance    bool `json:"canViewFinance"`
	CanViewStudents   bool `json:"canViewStudents"`
	CanViewAcademics  bool `json:"canViewAcademics"`
	CanViewAttendance bool `json:"canViewAttendance"`
	CanViewReports    bool `json:"canViewReports"`
	CanViewSettings   bool `json:"canViewSettings"`
	CanViewDashboard  bool `json:"canViewDashboard"`
}

// DeriveFlags computes the derived capability flags for a role.
func DeriveFlags(r Role) Flags {
	m := Permissions(r)
	return Flags{
		CanEdit:           r == RoleAdmin || r == RoleHeadTeacher || r == RoleTeacher,
		CanViewFinance:    r == RoleAdmin || r == RoleHeadTeacher || r == RoleBursar,
		CanViewStudents:   m[FeatureStudents].View,
		CanViewAcademics:  r == RoleAdmin || r == RoleHeadTeacher || r == RoleTeacher,
		CanViewAttendance: m[FeatureAttendance].View,
		CanViewReports:    m[FeatureReports].View,
		CanViewSettings:   m[FeatureSettings].View,
		CanViewDashboard:  r == RoleAdmin || r == RoleHeadTeacher || r == RoleBursar,
	}
}

// NavItem is a navigation entry visible to a role.
type NavItem struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

// Navigation returns the page entries visible to the role, in display order.
func Navigation(r Role) []NavItem {
	f := DeriveFlags(r)
	items := make([]NavItem, 0, 7)
	if f.CanViewDashboard {
		items = append(items, NavItem{Name: "Dashboard", Href: "/"})
	}
	if f.CanViewStudents {
		items = append(items, NavItem{Name: "Students", Href: "/students"})
	}
	if f.CanViewAcademics {
		items = append(items, NavItem{Name: "Academics", Href: "/academics"})
	}
	if f.CanViewAttendance {
		items = append(items, NavItem{Name: "Attendance", Href: "/attendance"})
	}
	if f.CanViewFinance {
		items = append(items, NavItem{Name: "Fees & Finance", Href: "/fees"})
	}
	if f.CanViewReports {
		items = append(items, NavItem{Name: "Reports", Href: "/reports"})
	}
	if f.CanViewSettings {
		items = append(items, NavItem{Name: "Settings", Href: "/settings"})
	}
	return items
}
