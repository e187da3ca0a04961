package dashboard

// StatsResponse carries the dashboard counters. The four counts are
// independent point-in-time reads, not one consistent snapshot.
type StatsResponse struct {
	TotalEmployees         int64 `json:"total_employees"`
	TotalAttendanceRecords int64 `json:"total_attendance_records"`
	PresentToday           int64 `json:"present_today"`
	AbsentToday            int64 `json:"absent_today"`
}
