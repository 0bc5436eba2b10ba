package readmodel

// DashboardStatsRM backs the admin dashboard. Revenue only counts
// checked-out stays; occupied means currently checked-in.
type DashboardStatsRM struct {
	TotalRooms     int64
	OccupiedRooms  int64
	AvailableRooms int64
	TotalBookings  int64
	TotalRevenue   float64
}

// SystemCountsRM backs the public landing-page counters.
type SystemCountsRM struct {
	TotalUsers    int64
	TotalRooms    int64
	TotalBookings int64
}
