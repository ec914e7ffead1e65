package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shule-labs/shule-api/internal/middleware"
	"github.com/shule-labs/shule-api/internal/rbac"
	"github.com/shule-labs/shule-api/internal/routes"
)

// Handlers bundles every endpoint handler for route registration.
type Handlers struct {
	Students   *StudentHandler
	Parents    *ParentHandler
	Finance    *FinanceHandler
	Attendance *AttendanceHandler
	Academics  *AcademicHandler
	Notices    *NoticeHandler
	Dashboard  *DashboardHandler
	Reports    *ReportHandler

	// ReportsEnabled drops the export routes when false.
	ReportsEnabled bool
}

// RegisterRoutes walks the operation table and mounts each operation under
// prefix with its capability gate. Both sides of the API speak the same
// table, so adding an operation means declaring it once.
func (h Handlers) RegisterRoutes(r *gin.Engine, prefix string) {
	group := r.Group(strings.TrimSuffix(prefix, "/"))
	group.Use(middleware.Role())

	bindings := map[string]gin.HandlerFunc{
		routes.StudentsList.Name:   h.Students.List,
		routes.StudentsCreate.Name: h.Students.Create,
		routes.StudentsGet.Name:    h.Students.Get,
		routes.StudentsUpdate.Name: h.Students.Update,
		routes.StudentsDelete.Name: h.Students.Delete,

		routes.ParentsList.Name:   h.Parents.List,
		routes.ParentsCreate.Name: h.Parents.Create,

		routes.FeesList.Name:   h.Finance.ListFees,
		routes.FeesCreate.Name: h.Finance.CreateFee,

		routes.PaymentsList.Name:   h.Finance.ListPayments,
		routes.PaymentsCreate.Name: h.Finance.RecordPayment,

		routes.AttendanceList.Name: h.Attendance.List,
		routes.AttendanceMark.Name: h.Attendance.Mark,

		routes.ExamsList.Name:   h.Academics.ListExams,
		routes.ExamsCreate.Name: h.Academics.CreateExam,

		routes.MarksList.Name:   h.Academics.ListMarks,
		routes.MarksRecord.Name: h.Academics.RecordMark,

		routes.NoticesList.Name:   h.Notices.List,
		routes.NoticesCreate.Name: h.Notices.Create,

		routes.DashboardGet.Name: h.Dashboard.Summary,

		routes.ReportsStudentsCSV.Name: h.Reports.StudentsCSV,
		routes.ReportsPaymentsPDF.Name: h.Reports.PaymentsPDF,
	}

	for _, op := range routes.All() {
		if !h.ReportsEnabled && op.Feature == rbac.FeatureReports {
			continue
		}
		handlerFunc, ok := bindings[op.Name]
		if !ok {
			continue
		}
		gate := middleware.RequireView(op.Feature)
		if op.Write {
			gate = middleware.RequireEdit(op.Feature)
		}
		group.Handle(op.Method, strings.TrimPrefix(op.Path, "/api"), gate, handlerFunc)
	}
}
