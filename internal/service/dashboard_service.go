package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/shule-labs/shule-api/internal/models"
	"github.com/shule-labs/shule-api/internal/store"
	appErrors "github.com/shule-labs/shule-api/pkg/errors"
)

// SummaryCache is the cache contract the dashboard needs. A nil cache
// disables caching entirely.
type SummaryCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// DashboardService aggregates headline figures across entities. Summaries
// are cached per calendar day so the landing page does not rescan the store
// on every load.
type DashboardService struct {
	store  store.Store
	cache  SummaryCache
	ttl    time.Duration
	now    func() time.Time
	logger *zap.Logger
}

// NewDashboardService constructs the dashboard service. cache may be nil.
func NewDashboardService(st store.Store, cache SummaryCache, ttl time.Duration, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &DashboardService{store: st, cache: cache, ttl: ttl, now: time.Now, logger: logger}
}

const latestNoticeLimit = 3

// Summary computes the dashboard figures for today. The second return value
// reports whether the summary came from cache.
func (s *DashboardService) Summary(ctx context.Context) (models.DashboardSummary, bool, error) {
	today := s.now().Format("2006-01-02")
	key := fmt.Sprintf("dash:summary:%s", today)

	if s.cache != nil {
		var cached models.DashboardSummary
		err := s.cache.Get(ctx, key, &cached)
		if err == nil {
			return cached, true, nil
		}
		if !errors.Is(err, appErrors.ErrCacheMiss) {
			s.logger.Warn("dashboard cache read failed", zap.Error(err))
		}
	}

	summary, err := s.compute(ctx, today)
	if err != nil {
		return models.DashboardSummary{}, false, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, summary, s.ttl); err != nil {
			s.logger.Warn("dashboard cache write failed", zap.Error(err))
		}
	}
	return summary, false, nil
}

func (s *DashboardService) compute(ctx context.Context, today string) (models.DashboardSummary, error) {
	students, err := s.store.ListStudents(ctx)
	if err != nil {
		return models.DashboardSummary{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	payments, err := s.store.ListPayments(ctx)
	if err != nil {
		return models.DashboardSummary{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list payments")
	}
	register, err := s.store.ListAttendance(ctx)
	if err != nil {
		return models.DashboardSummary{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list attendance")
	}
	notices, err := s.store.ListNotices(ctx)
	if err != nil {
		return models.DashboardSummary{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list notices")
	}

	summary := models.DashboardSummary{
		TotalStudents: len(students),
		Date:          today,
	}

	byLevel := map[string]int{}
	for _, st := range students {
		if st.Status == "active" {
			summary.ActiveStudents++
		}
		byLevel[st.LevelID]++
	}
	levels := make([]string, 0, len(byLevel))
	for level := range byLevel {
		levels = append(levels, level)
	}
	sort.Strings(levels)
	for _, level := range levels {
		summary.StudentsByLevel = append(summary.StudentsByLevel, models.LevelCount{LevelID: level, Count: byLevel[level]})
	}

	for _, p := range payments {
		summary.FeesCollected += p.Amount
	}

	var present, marked int
	for _, entry := range register {
		if entry.Date != today {
			continue
		}
		marked++
		if entry.Status == models.AttendancePresent || entry.Status == models.AttendanceLate {
			present++
		}
	}
	if marked > 0 {
		summary.AttendanceRate = float64(present) / float64(marked)
	}

	// Newest notices first, capped at three.
	sort.SliceStable(notices, func(i, j int) bool { return notices[i].ID > notices[j].ID })
	if len(notices) > latestNoticeLimit {
		notices = notices[:latestNoticeLimit]
	}
	summary.LatestNotices = notices

	return summary, nil
}
