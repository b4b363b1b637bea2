package models

import "errors"

// BookingState định nghĩa interface cho các trạng thái booking
type BookingState interface {
	CheckIn(booking *Booking) error
	CheckOut(booking *Booking) error
	Cancel(booking *Booking) error
}

// PendingState trạng thái chờ nhận phòng
type PendingState struct{}

func (s *PendingState) CheckIn(booking *Booking) error {
	booking.Status = BookingStatusCheckedIn
	return nil
}

func (s *PendingState) CheckOut(booking *Booking) error {
	return errors.New("cannot check out a pending booking")
}

func (s *PendingState) Cancel(booking *Booking) error {
	booking.Status = BookingStatusCancelled
	return nil
}

// CheckedInState trạng thái đang ở
type CheckedInState struct{}

func (s *CheckedInState) CheckIn(booking *Booking) error {
	return errors.New("booking already checked in")
}

func (s *CheckedInState) CheckOut(booking *Booking) error {
	booking.Status = BookingStatusCheckedOut
	return nil
}

func (s *CheckedInState) Cancel(booking *Booking) error {
	return errors.New("cannot cancel a checked-in booking")
}

// CheckedOutState trạng thái đã trả phòng
type CheckedOutState struct{}

func (s *CheckedOutState) CheckIn(booking *Booking) error {
	return errors.New("booking already checked out")
}

func (s *CheckedOutState) CheckOut(booking *Booking) error {
	return errors.New("booking already checked out")
}

func (s *CheckedOutState) Cancel(booking *Booking) error {
	return errors.New("cannot cancel a checked-out booking")
}

// CancelledState trạng thái đã hủy
type CancelledState struct{}

func (s *CancelledState) CheckIn(booking *Booking) error {
	return errors.New("cannot check in a cancelled booking")
}

func (s *CancelledState) CheckOut(booking *Booking) error {
	return errors.New("cannot check out a cancelled booking")
}

func (s *CancelledState) Cancel(booking *Booking) error {
	return errors.New("booking already cancelled")
}

// GetBookingState trả về state tương ứng với trạng thái booking
func GetBookingState(status int) BookingState {
	switch status {
	case BookingStatusPending:
		return &PendingState{}
	case BookingStatusCheckedIn:
		return &CheckedInState{}
	case BookingStatusCheckedOut:
		return &CheckedOutState{}
	case BookingStatusCancelled:
		return &CancelledState{}
	default:
		return &PendingState{}
	}
}

// ServeBookingService chuyển dòng dịch vụ sang đã phục vụ, chỉ một chiều
func ServeBookingService(item *BookingService) error {
	if item.Status == BookingServiceStatusServed {
		return errors.New("service already served")
	}
	item.Status = BookingServiceStatusServed
	return nil
}
