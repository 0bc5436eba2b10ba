package repository

import (
	"context"

	"hotelhub/internal/infra"
	"hotelhub/internal/infra/db"
	"hotelhub/internal/usecase/readmodel"
)

type StatsRepository struct {
	db db.Queryer
}

func NewStatsRepository(q db.Queryer) *StatsRepository {
	return &StatsRepository{db: q}
}

// Dashboard aggregates the admin dashboard numbers in one round trip.
// check_out - check_in on date columns is whole days, which matches the
// nights = ceil((checkOut - checkIn) / 1 day) rule for calendar dates.
func (r *StatsRepository) Dashboard(ctx context.Context) (*readmodel.DashboardStatsRM, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM rooms) AS total_rooms,
			(SELECT COUNT(*) FROM bookings WHERE status = 'checked-in') AS occupied_rooms,
			(SELECT COUNT(*) FROM bookings) AS total_bookings,
			(SELECT COALESCE(SUM((b.check_out - b.check_in) * r.tariff), 0)
			 FROM bookings b
			 JOIN rooms r ON r.id = b.room_id
			 WHERE b.status = 'checked-out') AS total_revenue`

	var rm readmodel.DashboardStatsRM
	err := r.db.QueryRow(ctx, query).Scan(
		&rm.TotalRooms, &rm.OccupiedRooms, &rm.TotalBookings, &rm.TotalRevenue,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load dashboard stats", err)
	}
	rm.AvailableRooms = rm.TotalRooms - rm.OccupiedRooms
	return &rm, nil
}

func (r *StatsRepository) SystemCounts(ctx context.Context) (*readmodel.SystemCountsRM, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM users) AS total_users,
			(SELECT COUNT(*) FROM rooms) AS total_rooms,
			(SELECT COUNT(*) FROM bookings) AS total_bookings`

	var rm readmodel.SystemCountsRM
	err := r.db.QueryRow(ctx, query).Scan(&rm.TotalUsers, &rm.TotalRooms, &rm.TotalBookings)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load system counts", err)
	}
	return &rm, nil
}
