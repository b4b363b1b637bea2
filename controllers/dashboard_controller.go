package controllers

import (
	"log"
	"time"

	"resort/config"
	"resort/dto"
	"resort/response"
	"resort/services"

	"github.com/gin-gonic/gin"
)

// GetDashboard gom toàn bộ số liệu tổng hợp cho trang quản trị
func GetDashboard(c *gin.Context) {
	cacheKey := "dashboard:summary"
	rdb, err := config.ConnectRedis()
	if err != nil {
		response.ServerError(c)
		return
	}

	var cached dto.DashboardResponse
	if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, &cached); err == nil && cached.Occupancy.Total > 0 {
		response.Success(c, cached)
		return
	}

	now := time.Now()

	todayRevenue, todayGrowth, err := services.DailyRevenueWithGrowth(config.DB, now)
	if err != nil {
		response.ServerError(c)
		return
	}

	yearRevenue, yearGrowth, err := services.YearlyRevenueWithGrowth(config.DB, now)
	if err != nil {
		response.ServerError(c)
		return
	}

	// Doanh thu 7 ngày gần nhất theo ngày
	revenueByDay := make([]services.RevenueByLabel, 0, 7)
	for i := 6; i >= 0; i-- {
		day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -i)
		revenue, err := services.RevenueForRange(config.DB, day, day.AddDate(0, 0, 1))
		if err != nil {
			response.ServerError(c)
			return
		}
		revenueByDay = append(revenueByDay, services.RevenueByLabel{
			Label:   day.Format(services.DateLayout),
			Revenue: revenue,
		})
	}

	// Doanh thu 12 tháng của năm hiện tại
	revenueByMonth := make([]services.RevenueByLabel, 0, 12)
	for month := 1; month <= 12; month++ {
		monthStart := time.Date(now.Year(), time.Month(month), 1, 0, 0, 0, 0, now.Location())
		revenue, err := services.RevenueForRange(config.DB, monthStart, monthStart.AddDate(0, 1, 0))
		if err != nil {
			response.ServerError(c)
			return
		}
		revenueByMonth = append(revenueByMonth, services.RevenueByLabel{
			Label:   monthStart.Format("01/2006"),
			Revenue: revenue,
		})
	}

	yearStart := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())

	revenueByRoomType, err := services.RevenueByRoomType(config.DB, yearStart, now)
	if err != nil {
		response.ServerError(c)
		return
	}

	revenueByService, err := services.RevenueByService(config.DB, yearStart, now)
	if err != nil {
		response.ServerError(c)
		return
	}

	roomsByType, err := services.RoomCountByType(config.DB)
	if err != nil {
		response.ServerError(c)
		return
	}

	servicesByType, err := services.ServiceCountByType(config.DB)
	if err != nil {
		response.ServerError(c)
		return
	}

	occupancy, err := services.TodayOccupancy(config.DB, now)
	if err != nil {
		response.ServerError(c)
		return
	}

	dashboard := dto.DashboardResponse{
		RevenueToday:     dto.GrowthMetric{Value: todayRevenue, Growth: todayGrowth},
		RevenueThisYear:  dto.GrowthMetric{Value: yearRevenue, Growth: yearGrowth},
		RevenueByDay:     revenueByDay,
		RevenueByMonth:   revenueByMonth,
		RevenueByRoom:    revenueByRoomType,
		RevenueByService: revenueByService,
		RoomsByType:      roomsByType,
		ServicesByType:   servicesByType,
		Occupancy:        *occupancy,
	}

	if err := services.SetToRedis(config.Ctx, rdb, cacheKey, dashboard, 5*time.Minute); err != nil {
		log.Printf("Lỗi khi lưu dashboard vào Redis: %v", err)
	}

	response.Success(c, dashboard)
}

// GetYearlyRevenue trả về doanh thu các năm gần đây cho biểu đồ
func GetYearlyRevenue(c *gin.Context) {
	revenues, err := services.YearlyRevenueTrailing(config.DB, time.Now(), 5)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, revenues)
}
