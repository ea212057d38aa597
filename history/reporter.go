package history

import (
	"gorm.io/gorm"

	"github.com/shafiuddin/tajhotel/booking"
)

const (
	dateFormat      = "02-Jan-2006"
	timestampFormat = "02-Jan-2006 15:04:05"
)

// Record is a booking row formatted for display.
type Record struct {
	BookingID             uint    `json:"bookingID"`
	RoomID                uint    `json:"roomID"`
	Nights                int     `json:"nights"`
	CheckIn               string  `json:"checkIn"`
	CheckOut              string  `json:"checkOut"`
	Status                string  `json:"status"`
	BookingTime           string  `json:"bookingTime"`
	TotalAmount           float64 `json:"totalAmount"`
	CancellationStatus    string  `json:"cancellationStatus"`
	CancellationTimestamp string  `json:"cancellationTimestamp"`
}

type Reporter struct {
	db *gorm.DB
}

func NewReporter(db *gorm.DB) *Reporter {
	return &Reporter{db: db}
}

// View returns every booking for the customer in booking-id order. No
// bookings is an empty slice, not an error.
func (r *Reporter) View(customerID uint) ([]Record, error) {
	var bookings []booking.Booking
	if result := r.db.Where("customer_id = ?", customerID).Order("id").Find(&bookings); result.Error != nil {
		return nil, result.Error
	}

	records := make([]Record, 0, len(bookings))
	for _, b := range bookings {
		cancelled := "N/A"
		if b.CancellationTimestamp != nil {
			cancelled = b.CancellationTimestamp.Format(timestampFormat)
		}

		records = append(records, Record{
			BookingID:             b.ID,
			RoomID:                b.RoomID,
			Nights:                b.Nights,
			CheckIn:               b.CheckIn.Format(dateFormat),
			CheckOut:              b.CheckOut.Format(dateFormat),
			Status:                string(b.Status),
			BookingTime:           b.CreatedAt.Format(timestampFormat),
			TotalAmount:           b.TotalAmount,
			CancellationStatus:    string(b.CancellationStatus),
			CancellationTimestamp: cancelled,
		})
	}

	return records, nil
}
