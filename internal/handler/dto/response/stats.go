package response

import (
	"hotelhub/internal/usecase/readmodel"

	"github.com/jinzhu/copier"
)

type DashboardStatsResponse struct {
	TotalRooms     int64   `json:"totalRooms"`
	OccupiedRooms  int64   `json:"occupiedRooms"`
	AvailableRooms int64   `json:"availableRooms"`
	TotalBookings  int64   `json:"totalBookings"`
	TotalRevenue   float64 `json:"totalRevenue"`
}

type SystemCountsResponse struct {
	TotalUsers    int64 `json:"totalUsers"`
	TotalRooms    int64 `json:"totalRooms"`
	TotalBookings int64 `json:"totalBookings"`
}

func FromDashboardStats(rm *readmodel.DashboardStatsRM) *DashboardStatsResponse {
	var res DashboardStatsResponse
	_ = copier.Copy(&res, rm)
	return &res
}

func FromSystemCounts(rm *readmodel.SystemCountsRM) *SystemCountsResponse {
	var res SystemCountsResponse
	_ = copier.Copy(&res, rm)
	return &res
}
