package booking

import (
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
)

type CancellationStatus string

const (
	CancellationNone    CancellationStatus = "NONE"
	CancellationFull    CancellationStatus = "CANCELLED"
	CancellationPartial CancellationStatus = "PARTIAL_CANCELLED"
)

// Booking rows are never deleted; cancellation is a state transition.
// CreatedAt doubles as the booking time.
type Booking struct {
	gorm.Model
	PaymentID             uint               `json:"paymentID"`
	RoomID                uint               `json:"roomID"`
	CustomerID            uint               `json:"customerID"`
	CheckIn               time.Time          `json:"checkIn"`
	CheckOut              time.Time          `json:"checkOut"`
	Nights                int                `json:"nights"`
	Status                Status             `json:"status"`
	TotalAmount           float64            `json:"totalAmount"`
	CancellationStatus    CancellationStatus `json:"cancellationStatus"`
	CancellationTimestamp *time.Time         `json:"cancellationTimestamp"`
}
