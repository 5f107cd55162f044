// internal/domain/entity/stats.go
package entity

// TrendPoint is one calendar day in the booking trend, labeled by weekday
type TrendPoint struct {
	Name     string `json:"name"`
	Bookings int    `json:"bookings"`
}

// DashboardStats is the admin dashboard summary. Trend covers the trailing
// seven days, oldest first, ending today; days without bookings appear with
// a zero count.
type DashboardStats struct {
	TotalUsers        int64        `json:"totalUsers"`
	TotalBookings     int64        `json:"totalBookings"`
	TotalForumPosts   int64        `json:"totalForumPosts"`
	TotalScratchCards int64        `json:"totalScratchCards"`
	Trend             []TrendPoint `json:"trendData"`
}
