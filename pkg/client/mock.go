package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/shule-labs/shule-api/internal/handler"
	"github.com/shule-labs/shule-api/internal/service"
	"github.com/shule-labs/shule-api/internal/store/memory"
)

// localDoer serves requests through an in-process handler, simulating
// network latency with a fixed delay.
type localDoer struct {
	handler http.Handler
	delay   time.Duration
}

func (d localDoer) Do(req *http.Request) (*http.Response, error) {
	if d.delay > 0 {
		time.Sleep(d.delay)
	}
	rec := httptest.NewRecorder()
	d.handler.ServeHTTP(rec, req)
	return rec.Result(), nil
}

// NewMock returns a client backed by a seeded in-process memory store with
// an artificial per-call delay. It needs no running server, so demos and
// tests can exercise the full request path offline.
func NewMock(delay time.Duration, opts ...Option) (*Client, error) {
	st := memory.New()
	if err := st.Seed(context.Background()); err != nil {
		return nil, err
	}

	validate := validator.New()
	logger := zap.NewNop()

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	handler.Handlers{
		Students:       handler.NewStudentHandler(service.NewStudentService(st, validate, logger)),
		Parents:        handler.NewParentHandler(service.NewParentService(st, validate, logger)),
		Finance:        handler.NewFinanceHandler(service.NewFinanceService(st, st, st, validate, logger)),
		Attendance:     handler.NewAttendanceHandler(service.NewAttendanceService(st, st, validate, logger)),
		Academics:      handler.NewAcademicHandler(service.NewAcademicService(st, st, st, validate, logger)),
		Notices:        handler.NewNoticeHandler(service.NewNoticeService(st, validate, logger)),
		Dashboard:      handler.NewDashboardHandler(service.NewDashboardService(st, nil, time.Minute, logger), nil),
		Reports:        handler.NewReportHandler(service.NewReportService(st, st, logger)),
		ReportsEnabled: true,
	}.RegisterRoutes(r, "/api")

	opts = append([]Option{WithDoer(localDoer{handler: r, delay: delay})}, opts...)
	return New("http://local", opts...), nil
}
