package client

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shule-labs/shule-api/internal/models"
	"github.com/shule-labs/shule-api/internal/rbac"
	"github.com/shule-labs/shule-api/internal/service"
	appErrors "github.com/shule-labs/shule-api/pkg/errors"
)

// countingDoer wraps another Doer and counts requests that reach it.
type countingDoer struct {
	inner Doer
	calls int64
}

func (d *countingDoer) Do(req *http.Request) (*http.Response, error) {
	atomic.AddInt64(&d.calls, 1)
	return d.inner.Do(req)
}

func newCountingMock(t *testing.T) (*Client, *countingDoer) {
	t.Helper()
	c, err := NewMock(0)
	require.NoError(t, err)
	counter := &countingDoer{inner: c.doer}
	c.doer = counter
	return c, counter
}

func TestClientCachesReads(t *testing.T) {
	c, counter := newCountingMock(t)
	ctx := context.Background()

	first, err := c.ListStudents(ctx)
	require.NoError(t, err)
	assert.Len(t, first, 2)

	second, err := c.ListStudents(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.EqualValues(t, 1, atomic.LoadInt64(&counter.calls))
}

func TestClientMutationInvalidatesList(t *testing.T) {
	c, _ := newCountingMock(t)
	ctx := context.Background()

	before, err := c.ListStudents(ctx)
	require.NoError(t, err)

	created, err := c.CreateStudent(ctx, service.CreateStudentRequest{
		AdmissionNo: "ADM300",
		FirstName:   "Peter",
		LastName:    "Mugisha",
		LevelID:     "primary",
		GradeID:     "p5",
		DOB:         "2014-02-14",
		Gender:      "male",
	})
	require.NoError(t, err)
	assert.Equal(t, len(before)+1, created.ID)

	after, err := c.ListStudents(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before)+1)
}

func TestClientMutationLeavesOtherKeys(t *testing.T) {
	c, counter := newCountingMock(t)
	ctx := context.Background()

	_, err := c.ListNotices(ctx)
	require.NoError(t, err)

	_, err = c.CreateFee(ctx, service.CreateFeeRequest{LevelID: "kg", Term: "term1", Amount: 180000})
	require.NoError(t, err)

	calls := atomic.LoadInt64(&counter.calls)
	_, err = c.ListNotices(ctx)
	require.NoError(t, err)
	assert.Equal(t, calls, atomic.LoadInt64(&counter.calls), "notice list should still be cached")
}

func TestClientUpdateInvalidatesItem(t *testing.T) {
	c, _ := newCountingMock(t)
	ctx := context.Background()

	student, err := c.GetStudent(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "active", student.Status)

	status := "inactive"
	_, err = c.UpdateStudent(ctx, 1, models.StudentPatch{Status: &status})
	require.NoError(t, err)

	refreshed, err := c.GetStudent(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "inactive", refreshed.Status)
}

func TestClientSurfacesAPIErrors(t *testing.T) {
	c, _ := newCountingMock(t)
	ctx := context.Background()

	_, err := c.GetStudent(ctx, 9999)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, appErrors.FromError(err).Status)

	_, err = c.RecordPayment(ctx, service.RecordPaymentRequest{
		StudentID: 404, Amount: 1000, Method: "cash", Date: "2026-02-01", Term: "term1",
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
}

func TestClientRoleHeader(t *testing.T) {
	c, err := NewMock(0, WithRole(rbac.RoleParent))
	require.NoError(t, err)
	ctx := context.Background()

	_, err = c.ListStudents(ctx)
	require.NoError(t, err)

	_, err = c.CreateFee(ctx, service.CreateFeeRequest{LevelID: "kg", Term: "term1", Amount: 180000})
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, appErrors.FromError(err).Status)
}

func TestClientMockDelay(t *testing.T) {
	c, err := NewMock(20 * time.Millisecond)
	require.NoError(t, err)

	start := time.Now()
	_, err = c.ListStudents(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}
