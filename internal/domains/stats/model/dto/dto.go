package dto

type DashboardStatsResponse struct {
	Date          string  `json:"date"`
	NewBookings   int     `json:"new_bookings"`
	Cancellations int     `json:"cancellations"`
	CheckIns      int     `json:"check_ins"`
	CheckOuts     int     `json:"check_outs"`
	OccupiedRooms int     `json:"occupied_rooms"`
	TotalRooms    int     `json:"total_rooms"`
	OccupancyRate float64 `json:"occupancy_rate"`
}
