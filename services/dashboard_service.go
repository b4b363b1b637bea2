package services

import (
	"math"
	"time"

	"resort/constants"
	"resort/models"

	"gorm.io/gorm"
)

// CalculateGrowth tính phần trăm tăng trưởng so với kỳ trước.
// Cả hai kỳ bằng 0 thì tăng trưởng là 0; kỳ trước bằng 0 và kỳ này có doanh
// thu thì coi là tăng 100%.
func CalculateGrowth(current, previous float64) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	growth := (current - previous) / previous * 100
	return math.Round(growth*100) / 100
}

// RevenueByLabel là một dòng doanh thu theo nhãn (loại phòng / dịch vụ / năm)
type RevenueByLabel struct {
	Label   string  `json:"label"`
	Revenue float64 `json:"revenue"`
}

// CountByLabel là số lượng nhóm theo nhãn
type CountByLabel struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// OccupancySnapshot là tình hình phòng trong ngày hôm nay
type OccupancySnapshot struct {
	Booked    int64 `json:"booked"`
	Available int64 `json:"available"`
	Total     int64 `json:"total"`
}

// RevenueForRange tính tổng doanh thu từ hóa đơn đã thanh toán trong khoảng thời gian
func RevenueForRange(db *gorm.DB, from, to time.Time) (float64, error) {
	var total float64
	err := db.Model(&models.Invoice{}).
		Where("status = ? AND created_at >= ? AND created_at < ?", constants.InvoiceStatusPaid, from, to).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

// DailyRevenueWithGrowth tính doanh thu hôm nay kèm tăng trưởng so với hôm qua
func DailyRevenueWithGrowth(db *gorm.DB, now time.Time) (float64, float64, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterday := today.AddDate(0, 0, -1)

	current, err := RevenueForRange(db, today, today.AddDate(0, 0, 1))
	if err != nil {
		return 0, 0, err
	}
	previous, err := RevenueForRange(db, yesterday, today)
	if err != nil {
		return 0, 0, err
	}
	return current, CalculateGrowth(current, previous), nil
}

// YearlyRevenueWithGrowth tính doanh thu năm nay kèm tăng trưởng so với năm trước
func YearlyRevenueWithGrowth(db *gorm.DB, now time.Time) (float64, float64, error) {
	thisYear := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	lastYear := thisYear.AddDate(-1, 0, 0)

	current, err := RevenueForRange(db, thisYear, thisYear.AddDate(1, 0, 0))
	if err != nil {
		return 0, 0, err
	}
	previous, err := RevenueForRange(db, lastYear, thisYear)
	if err != nil {
		return 0, 0, err
	}
	return current, CalculateGrowth(current, previous), nil
}

// RevenueByRoomType nhóm doanh thu hóa đơn đã thanh toán theo loại phòng
func RevenueByRoomType(db *gorm.DB, from, to time.Time) ([]RevenueByLabel, error) {
	var rows []RevenueByLabel
	err := db.Model(&models.Invoice{}).
		Select("room_types.type_name AS label, COALESCE(SUM(invoices.amount), 0) AS revenue").
		Joins("JOIN bookings ON bookings.id = invoices.booking_id").
		Joins("JOIN rooms ON rooms.room_id = bookings.room_id").
		Joins("JOIN room_types ON room_types.id = rooms.room_type_id").
		Where("invoices.status = ? AND invoices.created_at >= ? AND invoices.created_at < ?",
			constants.InvoiceStatusPaid, from, to).
		Group("room_types.type_name").
		Order("revenue DESC").
		Scan(&rows).Error
	return rows, err
}

// RevenueByService nhóm doanh thu theo dịch vụ từ các dòng dịch vụ đã phục vụ
func RevenueByService(db *gorm.DB, from, to time.Time) ([]RevenueByLabel, error) {
	var rows []RevenueByLabel
	err := db.Model(&models.BookingService{}).
		Select("booking_services.name AS label, COALESCE(SUM(booking_services.price * booking_services.quantity), 0) AS revenue").
		Where("booking_services.status = ? AND booking_services.created_at >= ? AND booking_services.created_at < ?",
			constants.BookingServiceStatusServed, from, to).
		Group("booking_services.name").
		Order("revenue DESC").
		Scan(&rows).Error
	return rows, err
}

// YearlyRevenueTrailing trả về doanh thu của 5 năm gần nhất
func YearlyRevenueTrailing(db *gorm.DB, now time.Time, years int) ([]RevenueByLabel, error) {
	rows := make([]RevenueByLabel, 0, years)
	for i := years - 1; i >= 0; i-- {
		start := time.Date(now.Year()-i, 1, 1, 0, 0, 0, 0, now.Location())
		revenue, err := RevenueForRange(db, start, start.AddDate(1, 0, 0))
		if err != nil {
			return nil, err
		}
		rows = append(rows, RevenueByLabel{
			Label:   start.Format("2006"),
			Revenue: revenue,
		})
	}
	return rows, nil
}

// RoomCountByType đếm số phòng theo loại
func RoomCountByType(db *gorm.DB) ([]CountByLabel, error) {
	var rows []CountByLabel
	err := db.Model(&models.Room{}).
		Select("room_types.type_name AS label, COUNT(rooms.room_id) AS count").
		Joins("JOIN room_types ON room_types.id = rooms.room_type_id").
		Group("room_types.type_name").
		Scan(&rows).Error
	return rows, err
}

// ServiceCountByType đếm số dịch vụ theo loại
func ServiceCountByType(db *gorm.DB) ([]CountByLabel, error) {
	var rows []CountByLabel
	err := db.Model(&models.Service{}).
		Select("service_types.type_name AS label, COUNT(services.id) AS count").
		Joins("JOIN service_types ON service_types.id = services.service_type_id").
		Group("service_types.type_name").
		Scan(&rows).Error
	return rows, err
}

// TodayOccupancy chụp lại tình hình phòng hôm nay: đã đặt / còn trống / tổng
func TodayOccupancy(db *gorm.DB, now time.Time) (*OccupancySnapshot, error) {
	var snapshot OccupancySnapshot

	if err := db.Model(&models.Room{}).Count(&snapshot.Total).Error; err != nil {
		return nil, err
	}

	today := now.Format(DateLayout)
	if err := db.Model(&models.Booking{}).
		Where("status IN ?", []int{constants.BookingStatusPending, constants.BookingStatusCheckedIn}).
		Where("TO_DATE(check_in_date, 'DD/MM/YYYY') <= TO_DATE(?, 'DD/MM/YYYY') AND TO_DATE(check_out_date, 'DD/MM/YYYY') > TO_DATE(?, 'DD/MM/YYYY')",
			today, today).
		Distinct("room_id").
		Count(&snapshot.Booked).Error; err != nil {
		return nil, err
	}

	snapshot.Available = snapshot.Total - snapshot.Booked
	if snapshot.Available < 0 {
		snapshot.Available = 0
	}
	return &snapshot, nil
}
