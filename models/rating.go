package models

import (
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"
)

// Rating là đánh giá 6 tiêu chí của người dùng cho một phòng, mỗi tiêu chí 1-5 sao
type Rating struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserID        uint      `json:"userId"`
	RoomID        uint      `json:"roomId"`
	Cleanliness   int       `json:"cleanliness"`
	Accuracy      int       `json:"accuracy"`
	CheckIn       int       `json:"checkIn"`
	Communication int       `json:"communication"`
	Location      int       `json:"location"`
	Value         int       `json:"value"`
	Average       float64   `json:"average"` // Trung bình 6 tiêu chí, làm tròn 2 chữ số
	Comment       string    `json:"comment"` // Bình luận của người dùng, không bắt buộc
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	User          User      `json:"user" gorm:"foreignKey:UserID"`
}

// ValidateScores kiểm tra từng tiêu chí nằm trong khoảng 1-5
func (r *Rating) ValidateScores() error {
	scores := map[string]int{
		"cleanliness":   r.Cleanliness,
		"accuracy":      r.Accuracy,
		"checkIn":       r.CheckIn,
		"communication": r.Communication,
		"location":      r.Location,
		"value":         r.Value,
	}
	for name, score := range scores {
		if score < 1 || score > 5 {
			return fmt.Errorf("điểm %s phải từ 1 đến 5", name)
		}
	}
	return nil
}

// ComputeAverage tính trung bình cộng 6 tiêu chí, làm tròn 2 chữ số thập phân
func (r *Rating) ComputeAverage() float64 {
	sum := r.Cleanliness + r.Accuracy + r.CheckIn + r.Communication + r.Location + r.Value
	avg := float64(sum) / 6
	return math.Round(avg*100) / 100
}

// BeforeSave tính lại Average mỗi lần lưu
func (r *Rating) BeforeSave(tx *gorm.DB) (err error) {
	if err := r.ValidateScores(); err != nil {
		return err
	}
	r.Average = r.ComputeAverage()
	return nil
}
