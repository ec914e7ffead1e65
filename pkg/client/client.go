// Package client is a typed consumer of the API route table. Reads are
// cached in process by route path; every mutation invalidates exactly the
// list (and item) keys it affects, mirroring how the web UI keeps its data
// hooks coherent. Calls are not retried; a failure surfaces once.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"

	"github.com/shule-labs/shule-api/internal/models"
	"github.com/shule-labs/shule-api/internal/rbac"
	"github.com/shule-labs/shule-api/internal/routes"
	"github.com/shule-labs/shule-api/internal/service"
	appErrors "github.com/shule-labs/shule-api/pkg/errors"
)

// Doer abstracts the HTTP transport so the client can run against a live
// server or an in-process backend.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is the typed API consumer.
type Client struct {
	baseURL string
	role    rbac.Role
	doer    Doer

	mu    sync.Mutex
	cache map[string]json.RawMessage
}

// Option customises a Client.
type Option func(*Client)

// WithRole sets the role header sent on every request.
func WithRole(role rbac.Role) Option {
	return func(c *Client) { c.role = role }
}

// WithDoer replaces the HTTP transport.
func WithDoer(d Doer) Option {
	return func(c *Client) { c.doer = d }
}

// New constructs a client against baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		doer:    http.DefaultClient,
		cache:   make(map[string]json.RawMessage),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type envelope struct {
	Data  json.RawMessage        `json:"data"`
	Error *appErrors.Error       `json:"error"`
	Meta  map[string]interface{} `json:"meta"`
}

func (c *Client) do(ctx context.Context, method, path string, payload interface{}) (envelope, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return envelope{}, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return envelope{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.role != "" {
		req.Header.Set("X-Role", string(c.role))
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return envelope{}, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return envelope{}, nil
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return envelope{}, fmt.Errorf("decode response for %s %s: %w", method, path, err)
	}
	if env.Error != nil {
		return envelope{}, env.Error
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return envelope{}, appErrors.New(appErrors.ErrInternal.Code, resp.StatusCode, fmt.Sprintf("%s %s returned %d", method, path, resp.StatusCode))
	}
	return env, nil
}

// read serves op from cache when possible, fetching and filling it otherwise.
func (c *Client) read(ctx context.Context, op routes.Operation, params map[string]string, out interface{}) error {
	key := op.URL(params)

	c.mu.Lock()
	cached, ok := c.cache[key]
	c.mu.Unlock()
	if ok {
		return json.Unmarshal(cached, out)
	}

	env, err := c.do(ctx, op.Method, key, nil)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.cache[key] = env.Data
	c.mu.Unlock()
	return json.Unmarshal(env.Data, out)
}

// mutate issues a write and drops the cache keys it stales.
func (c *Client) mutate(ctx context.Context, op routes.Operation, params map[string]string, payload, out interface{}, stale ...string) error {
	env, err := c.do(ctx, op.Method, op.URL(params), payload)
	if err != nil {
		return err
	}

	c.mu.Lock()
	for _, key := range stale {
		delete(c.cache, key)
	}
	c.mu.Unlock()

	if out != nil && env.Data != nil {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

func idParam(id int) map[string]string {
	return map[string]string{"id": strconv.Itoa(id)}
}

// ListStudents returns every student.
func (c *Client) ListStudents(ctx context.Context) ([]models.Student, error) {
	var out []models.Student
	err := c.read(ctx, routes.StudentsList, nil, &out)
	return out, err
}

// GetStudent returns one student by id.
func (c *Client) GetStudent(ctx context.Context, id int) (models.Student, error) {
	var out models.Student
	err := c.read(ctx, routes.StudentsGet, idParam(id), &out)
	return out, err
}

// CreateStudent enrols a student and invalidates the roster.
func (c *Client) CreateStudent(ctx context.Context, req service.CreateStudentRequest) (models.Student, error) {
	var out models.Student
	err := c.mutate(ctx, routes.StudentsCreate, nil, req, &out, routes.StudentsList.Path)
	return out, err
}

// UpdateStudent patches a student and invalidates the roster and the item.
func (c *Client) UpdateStudent(ctx context.Context, id int, patch models.StudentPatch) (models.Student, error) {
	var out models.Student
	err := c.mutate(ctx, routes.StudentsUpdate, idParam(id), patch, &out,
		routes.StudentsList.Path, routes.StudentsGet.URL(idParam(id)))
	return out, err
}

// DeleteStudent removes a student and invalidates the roster and the item.
func (c *Client) DeleteStudent(ctx context.Context, id int) error {
	return c.mutate(ctx, routes.StudentsDelete, idParam(id), nil, nil,
		routes.StudentsList.Path, routes.StudentsGet.URL(idParam(id)))
}

// ListParents returns every guardian.
func (c *Client) ListParents(ctx context.Context) ([]models.Parent, error) {
	var out []models.Parent
	err := c.read(ctx, routes.ParentsList, nil, &out)
	return out, err
}

// CreateParent registers a guardian and invalidates the guardian list.
func (c *Client) CreateParent(ctx context.Context, req service.CreateParentRequest) (models.Parent, error) {
	var out models.Parent
	err := c.mutate(ctx, routes.ParentsCreate, nil, req, &out, routes.ParentsList.Path)
	return out, err
}

// ListFees returns every fee line.
func (c *Client) ListFees(ctx context.Context) ([]models.Fee, error) {
	var out []models.Fee
	err := c.read(ctx, routes.FeesList, nil, &out)
	return out, err
}

// CreateFee defines a fee line and invalidates the fee list.
func (c *Client) CreateFee(ctx context.Context, req service.CreateFeeRequest) (models.Fee, error) {
	var out models.Fee
	err := c.mutate(ctx, routes.FeesCreate, nil, req, &out, routes.FeesList.Path)
	return out, err
}

// ListPayments returns every payment record.
func (c *Client) ListPayments(ctx context.Context) ([]models.Payment, error) {
	var out []models.Payment
	err := c.read(ctx, routes.PaymentsList, nil, &out)
	return out, err
}

// RecordPayment records a payment and invalidates the payment list.
func (c *Client) RecordPayment(ctx context.Context, req service.RecordPaymentRequest) (models.Payment, error) {
	var out models.Payment
	err := c.mutate(ctx, routes.PaymentsCreate, nil, req, &out, routes.PaymentsList.Path)
	return out, err
}

// ListAttendance returns the register.
func (c *Client) ListAttendance(ctx context.Context) ([]models.Attendance, error) {
	var out []models.Attendance
	err := c.read(ctx, routes.AttendanceList, nil, &out)
	return out, err
}

// MarkAttendance records a register entry and invalidates the register.
func (c *Client) MarkAttendance(ctx context.Context, req service.MarkAttendanceRequest) (models.Attendance, error) {
	var out models.Attendance
	err := c.mutate(ctx, routes.AttendanceMark, nil, req, &out, routes.AttendanceList.Path)
	return out, err
}

// ListExams returns every exam sitting.
func (c *Client) ListExams(ctx context.Context) ([]models.Exam, error) {
	var out []models.Exam
	err := c.read(ctx, routes.ExamsList, nil, &out)
	return out, err
}

// CreateExam schedules an exam and invalidates the exam list.
func (c *Client) CreateExam(ctx context.Context, req service.CreateExamRequest) (models.Exam, error) {
	var out models.Exam
	err := c.mutate(ctx, routes.ExamsCreate, nil, req, &out, routes.ExamsList.Path)
	return out, err
}

// ListMarks returns every recorded result.
func (c *Client) ListMarks(ctx context.Context) ([]models.Mark, error) {
	var out []models.Mark
	err := c.read(ctx, routes.MarksList, nil, &out)
	return out, err
}

// RecordMark stores a result and invalidates the mark list.
func (c *Client) RecordMark(ctx context.Context, req service.RecordMarkRequest) (models.Mark, error) {
	var out models.Mark
	err := c.mutate(ctx, routes.MarksRecord, nil, req, &out, routes.MarksList.Path)
	return out, err
}

// ListNotices returns every notice.
func (c *Client) ListNotices(ctx context.Context) ([]models.Notice, error) {
	var out []models.Notice
	err := c.read(ctx, routes.NoticesList, nil, &out)
	return out, err
}

// CreateNotice publishes a notice and invalidates the notice list.
func (c *Client) CreateNotice(ctx context.Context, req service.CreateNoticeRequest) (models.Notice, error) {
	var out models.Notice
	err := c.mutate(ctx, routes.NoticesCreate, nil, req, &out, routes.NoticesList.Path)
	return out, err
}

// Dashboard returns the aggregated summary. Summaries are not cached client
// side; the server already caches them per day.
func (c *Client) Dashboard(ctx context.Context) (models.DashboardSummary, error) {
	var out models.DashboardSummary
	env, err := c.do(ctx, routes.DashboardGet.Method, routes.DashboardGet.Path, nil)
	if err != nil {
		return out, err
	}
	err = json.Unmarshal(env.Data, &out)
	return out, err
}

// InvalidateAll drops every cached read.
func (c *Client) InvalidateAll() {
	c.mu.Lock()
	c.cache = make(map[string]json.RawMessage)
	c.mu.Unlock()
}
