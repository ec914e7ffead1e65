package service

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shule-labs/shule-api/internal/models"
	"github.com/shule-labs/shule-api/internal/store/memory"
	appErrors "github.com/shule-labs/shule-api/pkg/errors"
)

type fakeSummaryCache struct {
	entries map[string]models.DashboardSummary
	sets    int
}

func (f *fakeSummaryCache) Get(ctx context.Context, key string, dest interface{}) error {
	cached, ok := f.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	*(dest.(*models.DashboardSummary)) = cached
	return nil
}

func (f *fakeSummaryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if f.entries == nil {
		f.entries = make(map[string]models.DashboardSummary)
	}
	f.entries[key] = value.(models.DashboardSummary)
	f.sets++
	return nil
}

func seedDashboardStore(t *testing.T, st *memory.Store, today string) {
	t.Helper()
	ctx := context.Background()

	studentSvc := NewStudentService(st, validator.New(), zap.NewNop())
	kg := newTestStudent(t, studentSvc)
	primary, err := studentSvc.Create(ctx, CreateStudentRequest{
		AdmissionNo: "ADM101",
		FirstName:   "Brian",
		LastName:    "Ssali",
		LevelID:     "kg",
		GradeID:     "baby",
		DOB:         "2021-09-30",
		Gender:      "male",
		Status:      "inactive",
	})
	require.NoError(t, err)

	financeSvc := NewFinanceService(st, st, st, validator.New(), zap.NewNop())
	_, err = financeSvc.RecordPayment(ctx, RecordPaymentRequest{
		StudentID: kg.ID, Amount: 100000, Method: "cash", Date: today, Term: "term1",
	})
	require.NoError(t, err)
	_, err = financeSvc.RecordPayment(ctx, RecordPaymentRequest{
		StudentID: kg.ID, Amount: 50000, Method: "cash", Date: today, Term: "term1",
	})
	require.NoError(t, err)

	attendanceSvc := NewAttendanceService(st, st, validator.New(), zap.NewNop())
	_, err = attendanceSvc.Mark(ctx, MarkAttendanceRequest{StudentID: kg.ID, Date: today, Status: "present"})
	require.NoError(t, err)
	_, err = attendanceSvc.Mark(ctx, MarkAttendanceRequest{StudentID: primary.ID, Date: today, Status: "absent"})
	require.NoError(t, err)

	noticeSvc := NewNoticeService(st, validator.New(), zap.NewNop())
	for _, title := range []string{"First", "Second", "Third", "Fourth"} {
		_, err = noticeSvc.Create(ctx, CreateNoticeRequest{
			Title: title, Content: "body", Audience: "All", Date: today,
		})
		require.NoError(t, err)
	}
}

func TestDashboardServiceSummary(t *testing.T) {
	st := memory.New()
	fixed := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	today := fixed.Format("2006-01-02")
	seedDashboardStore(t, st, today)

	svc := NewDashboardService(st, nil, time.Minute, zap.NewNop())
	svc.now = func() time.Time { return fixed }

	summary, cached, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.False(t, cached)

	assert.Equal(t, 2, summary.TotalStudents)
	assert.Equal(t, 1, summary.ActiveStudents)
	assert.Equal(t, 150000, summary.FeesCollected)
	assert.InDelta(t, 0.5, summary.AttendanceRate, 0.001)
	assert.Equal(t, today, summary.Date)

	require.Len(t, summary.StudentsByLevel, 2)
	assert.Equal(t, models.LevelCount{LevelID: "kg", Count: 1}, summary.StudentsByLevel[0])
	assert.Equal(t, models.LevelCount{LevelID: "primary", Count: 1}, summary.StudentsByLevel[1])

	require.Len(t, summary.LatestNotices, 3)
	assert.Equal(t, "Fourth", summary.LatestNotices[0].Title)
	assert.Equal(t, "Third", summary.LatestNotices[1].Title)
}

func TestDashboardServiceSummaryCacheHit(t *testing.T) {
	st := memory.New()
	fixed := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	seedDashboardStore(t, st, fixed.Format("2006-01-02"))

	cache := &fakeSummaryCache{}
	svc := NewDashboardService(st, cache, time.Minute, zap.NewNop())
	svc.now = func() time.Time { return fixed }

	first, cached, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, 1, cache.sets)

	second, cached, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.sets)
}
