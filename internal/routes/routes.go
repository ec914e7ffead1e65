// Package routes is the declarative operation table shared by the server
// route registration and the typed client, so both sides agree on methods,
// paths and the capability each operation requires.
package routes

import (
	"net/http"
	"strings"

	"github.com/shule-labs/shule-api/internal/rbac"
)

// Operation describes one logical API operation.
type Operation struct {
	Name    string
	Method  string
	Path    string
	Feature rbac.Feature
	// Write marks operations that need the edit capability; the rest need
	// view only.
	Write bool
}

var (
	StudentsList   = Operation{Name: "students.list", Method: http.MethodGet, Path: "/api/students", Feature: rbac.FeatureStudents}
	StudentsCreate = Operation{Name: "students.create", Method: http.MethodPost, Path: "/api/students", Feature: rbac.FeatureStudents, Write: true}
	StudentsGet    = Operation{Name: "students.get", Method: http.MethodGet, Path: "/api/students/:id", Feature: rbac.FeatureStudents}
	StudentsUpdate = Operation{Name: "students.update", Method: http.MethodPatch, Path: "/api/students/:id", Feature: rbac.FeatureStudents, Write: true}
	StudentsDelete = Operation{Name: "students.delete", Method: http.MethodDelete, Path: "/api/students/:id", Feature: rbac.FeatureStudents, Write: true}

	ParentsList   = Operation{Name: "parents.list", Method: http.MethodGet, Path: "/api/parents", Feature: rbac.FeatureStudents}
	ParentsCreate = Operation{Name: "parents.create", Method: http.MethodPost, Path: "/api/parents", Feature: rbac.FeatureStudents, Write: true}

	FeesList   = Operation{Name: "fees.list", Method: http.MethodGet, Path: "/api/fees", Feature: rbac.FeatureFees}
	FeesCreate = Operation{Name: "fees.create", Method: http.MethodPost, Path: "/api/fees", Feature: rbac.FeatureFees, Write: true}

	PaymentsList   = Operation{Name: "payments.list", Method: http.MethodGet, Path: "/api/payments", Feature: rbac.FeatureFees}
	PaymentsCreate = Operation{Name: "payments.create", Method: http.MethodPost, Path: "/api/payments", Feature: rbac.FeatureFees, Write: true}

	AttendanceList = Operation{Name: "attendance.list", Method: http.MethodGet, Path: "/api/attendance", Feature: rbac.FeatureAttendance}
	AttendanceMark = Operation{Name: "attendance.mark", Method: http.MethodPost, Path: "/api/attendance", Feature: rbac.FeatureAttendance, Write: true}

	ExamsList   = Operation{Name: "exams.list", Method: http.MethodGet, Path: "/api/exams", Feature: rbac.FeatureAcademics}
	ExamsCreate = Operation{Name: "exams.create", Method: http.MethodPost, Path: "/api/exams", Feature: rbac.FeatureAcademics, Write: true}

	MarksList   = Operation{Name: "marks.list", Method: http.MethodGet, Path: "/api/marks", Feature: rbac.FeatureAcademics}
	MarksRecord = Operation{Name: "marks.record", Method: http.MethodPost, Path: "/api/marks", Feature: rbac.FeatureAcademics, Write: true}

	NoticesList   = Operation{Name: "notices.list", Method: http.MethodGet, Path: "/api/notices", Feature: rbac.FeatureNotices}
	NoticesCreate = Operation{Name: "notices.create", Method: http.MethodPost, Path: "/api/notices", Feature: rbac.FeatureNotices, Write: true}

	DashboardGet = Operation{Name: "dashboard.get", Method: http.MethodGet, Path: "/api/dashboard", Feature: rbac.FeatureDashboard}

	ReportsStudentsCSV = Operation{Name: "reports.students.csv", Method: http.MethodGet, Path: "/api/reports/students.csv", Feature: rbac.FeatureReports}
	ReportsPaymentsPDF = Operation{Name: "reports.payments.pdf", Method: http.MethodGet, Path: "/api/reports/payments.pdf", Feature: rbac.FeatureReports}
)

// All returns every declared operation.
func All() []Operation {
	return []Operation{
		StudentsList, StudentsCreate, StudentsGet, StudentsUpdate, StudentsDelete,
		ParentsList, ParentsCreate,
		FeesList, FeesCreate,
		PaymentsList, PaymentsCreate,
		AttendanceList, AttendanceMark,
		ExamsList, ExamsCreate,
		MarksList, MarksRecord,
		NoticesList, NoticesCreate,
		DashboardGet,
		ReportsStudentsCSV, ReportsPaymentsPDF,
	}
}

// BuildURL substitutes :param placeholders in a path template.
func BuildURL(path string, params map[string]string) string {
	url := path
	for key, value := range params {
		url = strings.ReplaceAll(url, ":"+key, value)
	}
	return url
}

// URL substitutes placeholders in the operation path.
func (o Operation) URL(params map[string]string) string {
	return BuildURL(o.Path, params)
}
