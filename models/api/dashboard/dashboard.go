package dashboardapimodels

import (
	feeapimodels "campus-backend/models/api/fee"
	hostelapimodels "campus-backend/models/api/hostel"
	outpassapimodels "campus-backend/models/api/outpass"
)

// DashboardView is the admin landing page summary.
type DashboardView struct {
	StudentCount int64                         `json:"student_count"`
	OutpassStats outpassapimodels.StatusStats  `json:"outpass_stats"`
	FeeTotals    feeapimodels.Totals           `json:"fee_totals"`
	Occupancy    []hostelapimodels.Occupancy   `json:"occupancy"`
	// campus-wide attendance percentage over the last 30 days
	AttendanceRate float64 `json:"attendance_rate"`
}
