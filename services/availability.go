package services

import (
	"time"

	"resort/models"
)

// DateLayout là định dạng ngày dùng chung toàn hệ thống
const DateLayout = "02/01/2006"

// CheckInHour là giờ nhận phòng cố định trong ngày
const CheckInHour = 14

// AvailableWeek là khoảng 7 ngày trống của một phòng
type AvailableWeek struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// bookingInterval là khoảng [checkin, checkout) đã parse của một booking
type bookingInterval struct {
	checkIn  time.Time
	checkOut time.Time
}

// parseIntervals parse ngày của các booking còn hiệu lực, bỏ qua booking đã hủy
// và booking có ngày hỏng
func parseIntervals(bookings []models.Booking) []bookingInterval {
	intervals := make([]bookingInterval, 0, len(bookings))
	for _, b := range bookings {
		if b.Status == models.BookingStatusCancelled {
			continue
		}
		checkIn, err := time.Parse(DateLayout, b.CheckInDate)
		if err != nil {
			continue
		}
		checkOut, err := time.Parse(DateLayout, b.CheckOutDate)
		if err != nil {
			continue
		}
		intervals = append(intervals, bookingInterval{checkIn: checkIn, checkOut: checkOut})
	}
	return intervals
}

// overlaps kiểm tra hai khoảng [start, end) có chồng lấn không.
// Nhận phòng đúng ngày trả phòng của khách trước (và ngược lại) không tính là chồng lấn.
func overlaps(start, end, checkIn, checkOut time.Time) bool {
	return start.Before(checkOut) && end.After(checkIn)
}

// atCheckInHour đưa một thời điểm về đầu ngày tại giờ nhận phòng
func atCheckInHour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), CheckInHour, 0, 0, 0, t.Location())
}

// startOfDay cắt một thời điểm về 0h cùng ngày
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// NextAvailableWeek tìm khoảng 7 ngày trống sớm nhất của phòng, bắt đầu không
// trước "now". Duyệt từng ngày một; luôn dừng vì sau ngày trả phòng muộn nhất
// thì mọi khoảng đều trống. Phép so trùng tính theo ngày: giờ nhận phòng chỉ
// gắn vào kết quả, không làm lệch so sánh với các booking đã parse ở 0h.
func NextAvailableWeek(bookings []models.Booking, now time.Time) AvailableWeek {
	intervals := parseIntervals(bookings)

	start := atCheckInHour(now)
	if now.After(start) {
		start = start.AddDate(0, 0, 1)
	}

	for {
		dayStart := startOfDay(start)
		dayEnd := dayStart.AddDate(0, 0, 7)
		conflict := false
		for _, iv := range intervals {
			if overlaps(dayStart, dayEnd, iv.checkIn, iv.checkOut) {
				conflict = true
				break
			}
		}
		if !conflict {
			return AvailableWeek{Start: start, End: start.AddDate(0, 0, 7)}
		}
		start = start.AddDate(0, 0, 1)
	}
}

// RoomAvailableForRange kiểm tra phòng trống trong khoảng [checkIn, checkOut)
func RoomAvailableForRange(bookings []models.Booking, checkIn, checkOut time.Time) bool {
	for _, iv := range parseIntervals(bookings) {
		if overlaps(checkIn, checkOut, iv.checkIn, iv.checkOut) {
			return false
		}
	}
	return true
}

// OccupancyByDate trả về map ngày -> có khách hay không cho "days" ngày kể từ from
func OccupancyByDate(bookings []models.Booking, from time.Time, days int) map[string]bool {
	intervals := parseIntervals(bookings)
	occupancy := make(map[string]bool, days)

	day := startOfDay(from)
	for i := 0; i < days; i++ {
		next := day.AddDate(0, 0, 1)
		occupied := false
		for _, iv := range intervals {
			if overlaps(day, next, iv.checkIn, iv.checkOut) {
				occupied = true
				break
			}
		}
		occupancy[day.Format(DateLayout)] = occupied
		day = next
	}
	return occupancy
}
