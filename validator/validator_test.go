package validator

import (
	"testing"

	"resort/models"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"nguyenvana@gmail.com", true},
		{"user.name+tag@example.co", true},
		{"khongcoatang", false},
		{"thieu@domain", false},
		{"", false},
	}

	for _, tt := range tests {
		err := ValidateEmail(tt.email)
		if tt.valid && err != nil {
			t.Errorf("ValidateEmail(%q) = %v, muốn nil", tt.email, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ValidateEmail(%q) = nil, muốn lỗi", tt.email)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("12345"); err == nil {
		t.Error("mật khẩu 5 ký tự phải bị từ chối")
	}
	if err := ValidatePassword("123456"); err != nil {
		t.Errorf("mật khẩu 6 ký tự phải hợp lệ, có lỗi: %v", err)
	}
}

func TestValidateUser(t *testing.T) {
	serviceTypeID := uint(1)
	tests := []struct {
		name  string
		user  models.User
		valid bool
	}{
		{"hợp lệ", models.User{Email: "a@b.com", Password: "secret1", Role: 0}, true},
		{"thiếu email", models.User{Password: "secret1"}, false},
		{"email sai định dạng", models.User{Email: "abc", Password: "secret1"}, false},
		{"thiếu mật khẩu", models.User{Email: "a@b.com"}, false},
		{"mật khẩu ngắn", models.User{Email: "a@b.com", Password: "123"}, false},
		{"role ngoài khoảng", models.User{Email: "a@b.com", Password: "secret1", Role: 7}, false},
		{"staff dịch vụ thiếu loại", models.User{Email: "a@b.com", Password: "secret1", Role: 2}, false},
		{"staff dịch vụ có loại", models.User{Email: "a@b.com", Password: "secret1", Role: 2, ServiceTypeID: &serviceTypeID}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUser(&tt.user)
			if tt.valid && err != nil {
				t.Errorf("muốn nil, có lỗi: %v", err)
			}
			if !tt.valid && err == nil {
				t.Error("muốn lỗi, có nil")
			}
		})
	}
}

func TestValidateBookingDates(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		valid    bool
	}{
		{"hợp lệ", "10/01/2025", "12/01/2025", true},
		{"cùng ngày", "10/01/2025", "10/01/2025", false},
		{"trả trước nhận", "12/01/2025", "10/01/2025", false},
		{"sai định dạng nhận", "2025-01-10", "12/01/2025", false},
		{"sai định dạng trả", "10/01/2025", "bậy", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBookingDates(tt.checkIn, tt.checkOut)
			if tt.valid && err != nil {
				t.Errorf("muốn nil, có lỗi: %v", err)
			}
			if !tt.valid && err == nil {
				t.Error("muốn lỗi, có nil")
			}
		})
	}
}

func TestValidatePromotion(t *testing.T) {
	base := models.Promotion{
		PromotionName: "Hè rực rỡ",
		Discount:      20,
		FromDate:      "01/06/2025",
		ToDate:        "31/08/2025",
		Quantity:      100,
	}

	tests := []struct {
		name   string
		mutate func(p *models.Promotion)
		valid  bool
	}{
		{"hợp lệ", func(p *models.Promotion) {}, true},
		{"thiếu tên", func(p *models.Promotion) { p.PromotionName = "" }, false},
		{"giảm giá âm", func(p *models.Promotion) { p.Discount = -1 }, false},
		{"giảm giá quá 100", func(p *models.Promotion) { p.Discount = 101 }, false},
		{"sai định dạng ngày", func(p *models.Promotion) { p.FromDate = "2025-06-01" }, false},
		{"kết thúc trước bắt đầu", func(p *models.Promotion) { p.ToDate = "01/05/2025" }, false},
		{"số lượng âm", func(p *models.Promotion) { p.Quantity = -5 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			tt.mutate(&p)
			err := ValidatePromotion(&p)
			if tt.valid && err != nil {
				t.Errorf("muốn nil, có lỗi: %v", err)
			}
			if !tt.valid && err == nil {
				t.Error("muốn lỗi, có nil")
			}
		})
	}
}

func TestValidateRoom(t *testing.T) {
	roomType := models.RoomType{BasePrice: 100}

	tests := []struct {
		name  string
		room  models.Room
		valid bool
	}{
		{"trong khoảng giá", models.Room{RoomNumber: "101", PricePerNight: 120}, true},
		{"cận dưới", models.Room{RoomNumber: "101", PricePerNight: 50}, true},
		{"cận trên", models.Room{RoomNumber: "101", PricePerNight: 150}, true},
		{"quá rẻ", models.Room{RoomNumber: "101", PricePerNight: 49}, false},
		{"quá đắt", models.Room{RoomNumber: "101", PricePerNight: 151}, false},
		{"giá âm", models.Room{RoomNumber: "101", PricePerNight: -10}, false},
		{"thiếu số phòng", models.Room{PricePerNight: 100}, false},
		{"số phòng quá dài", models.Room{RoomNumber: "123456", PricePerNight: 100}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRoom(&tt.room, &roomType)
			if tt.valid && err != nil {
				t.Errorf("muốn nil, có lỗi: %v", err)
			}
			if !tt.valid && err == nil {
				t.Error("muốn lỗi, có nil")
			}
		})
	}
}

func TestValidateService(t *testing.T) {
	tests := []struct {
		name    string
		service models.Service
		valid   bool
	}{
		{"hợp lệ", models.Service{ServiceName: "Spa", ServiceTypeID: 1, Price: 50}, true},
		{"thiếu tên", models.Service{ServiceTypeID: 1, Price: 50}, false},
		{"thiếu loại", models.Service{ServiceName: "Spa", Price: 50}, false},
		{"giá âm", models.Service{ServiceName: "Spa", ServiceTypeID: 1, Price: -1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateService(&tt.service)
			if tt.valid && err != nil {
				t.Errorf("muốn nil, có lỗi: %v", err)
			}
			if !tt.valid && err == nil {
				t.Error("muốn lỗi, có nil")
			}
		})
	}
}
