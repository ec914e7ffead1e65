package models

// LevelCount is a per-level student tally.
type LevelCount struct {
	LevelID string `json:"levelId"`
	Count   int    `json:"count"`
}

// DashboardSummary aggregates headline figures for the landing page. Values
// are computed from the live store rather than hardcoded.
type DashboardSummary struct {
	TotalStudents   int          `json:"totalStudents"`
	ActiveStudents  int          `json:"activeStudents"`
	StudentsByLevel []LevelCount `json:"studentsByLevel"`
	FeesCollected   int          `json:"feesCollected"`
	AttendanceRate  float64      `json:"attendanceRate"`
	LatestNotices   []Notice     `json:"latestNotices"`
	Date            string       `json:"date"`
}
