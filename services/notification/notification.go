package notification

import (
	"fmt"

	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// BookingMessageBuilder dựng thông báo realtime cho dashboard khi booking thay đổi
type BookingMessageBuilder struct {
	bookingID uint
	roomName  string
	event     string
}

func NewBookingMessageBuilder(bookingID uint, roomName, event string) *BookingMessageBuilder {
	return &BookingMessageBuilder{
		bookingID: bookingID,
		roomName:  roomName,
		event:     event,
	}
}

func (b *BookingMessageBuilder) Build() string {
	return fmt.Sprintf("🔔 Booking %d - phòng %s: %s", b.bookingID, b.roomName, b.event)
}

// CheckoutMessageBuilder dựng thông báo trả phòng kèm link thanh toán
type CheckoutMessageBuilder struct {
	bookingID   uint
	amount      float64
	checkoutURL string
}

func NewCheckoutMessageBuilder(bookingID uint, amount float64, checkoutURL string) *CheckoutMessageBuilder {
	return &CheckoutMessageBuilder{
		bookingID:   bookingID,
		amount:      amount,
		checkoutURL: checkoutURL,
	}
}

func (b *CheckoutMessageBuilder) Build() string {
	return fmt.Sprintf("🧾 Booking %d đã trả phòng, tổng tiền %.2f. Link thanh toán: %s", b.bookingID, b.amount, b.checkoutURL)
}
