package constants

// User role
const (
	RoleUser         = 0
	RoleAdmin        = 1
	RoleServiceStaff = 2
	RoleReceptionist = 3
)

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// Booking status
const (
	BookingStatusPending    = 0
	BookingStatusCheckedIn  = 1
	BookingStatusCheckedOut = 2
	BookingStatusCancelled  = 3
)

// Booking service status
const (
	BookingServiceStatusPending = 0
	BookingServiceStatusServed  = 1
)

// Room status
const (
	RoomStatusAvailable   = 1
	RoomStatusOccupied    = 2
	RoomStatusMaintenance = 3
)

// Promotion status
const (
	PromotionStatusInactive = 0
	PromotionStatusActive   = 1
)

// Invoice status (theo trạng thái của cổng thanh toán)
const (
	InvoiceStatusPending   = "PENDING"
	InvoiceStatusPaid      = "PAID"
	InvoiceStatusCancelled = "CANCELLED"
	InvoiceStatusExpired   = "EXPIRED"
)

// Token type
const (
	TokenTypeRefresh       = 0
	TokenTypeResetPassword = 1
)
