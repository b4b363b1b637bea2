package models

import "testing"

func TestBookingStateTransitions(t *testing.T) {
	cases := []struct {
		name       string
		status     int
		action     string
		wantErr    bool
		wantStatus int
	}{
		{name: "pending check in", status: BookingStatusPending, action: "checkin", wantErr: false, wantStatus: BookingStatusCheckedIn},
		{name: "pending check out", status: BookingStatusPending, action: "checkout", wantErr: true},
		{name: "pending cancel", status: BookingStatusPending, action: "cancel", wantErr: false, wantStatus: BookingStatusCancelled},
		{name: "checked in check in again", status: BookingStatusCheckedIn, action: "checkin", wantErr: true},
		{name: "checked in check out", status: BookingStatusCheckedIn, action: "checkout", wantErr: false, wantStatus: BookingStatusCheckedOut},
		{name: "checked in cancel", status: BookingStatusCheckedIn, action: "cancel", wantErr: true},
		{name: "checked out check in", status: BookingStatusCheckedOut, action: "checkin", wantErr: true},
		{name: "checked out check out", status: BookingStatusCheckedOut, action: "checkout", wantErr: true},
		{name: "checked out cancel", status: BookingStatusCheckedOut, action: "cancel", wantErr: true},
		{name: "cancelled check in", status: BookingStatusCancelled, action: "checkin", wantErr: true},
		{name: "cancelled cancel again", status: BookingStatusCancelled, action: "cancel", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			booking := &Booking{Status: tc.status}
			state := GetBookingState(booking.Status)

			var err error
			switch tc.action {
			case "checkin":
				err = state.CheckIn(booking)
			case "checkout":
				err = state.CheckOut(booking)
			case "cancel":
				err = state.Cancel(booking)
			}

			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if booking.Status != tc.status {
					t.Fatalf("status changed on failed transition: %d -> %d", tc.status, booking.Status)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if booking.Status != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, booking.Status)
			}
		})
	}
}

func TestServeBookingService(t *testing.T) {
	item := &BookingService{Status: BookingServiceStatusPending}

	if err := ServeBookingService(item); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Status != BookingServiceStatusServed {
		t.Fatalf("expected status %d, got %d", BookingServiceStatusServed, item.Status)
	}

	// Đã phục vụ thì không phục vụ lại được
	if err := ServeBookingService(item); err == nil {
		t.Fatalf("expected error when serving twice")
	}
}
