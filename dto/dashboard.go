package dto

import "resort/services"

// DashboardResponse gom toàn bộ số liệu tổng hợp cho trang dashboard
type DashboardResponse struct {
	RevenueToday     GrowthMetric                `json:"revenueToday"`
	RevenueThisYear  GrowthMetric                `json:"revenueThisYear"`
	RevenueByDay     []services.RevenueByLabel   `json:"revenueByDay"`
	RevenueByMonth   []services.RevenueByLabel   `json:"revenueByMonth"`
	RevenueByRoom    []services.RevenueByLabel   `json:"revenueByRoomType"`
	RevenueByService []services.RevenueByLabel   `json:"revenueByService"`
	RoomsByType      []services.CountByLabel     `json:"roomsByType"`
	ServicesByType   []services.CountByLabel     `json:"servicesByType"`
	Occupancy        services.OccupancySnapshot  `json:"occupancy"`
}

// GrowthMetric là số liệu kèm tỉ lệ tăng trưởng so với kỳ trước
type GrowthMetric struct {
	Value  float64 `json:"value"`
	Growth float64 `json:"growth"`
}
