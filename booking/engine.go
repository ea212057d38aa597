package booking

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/shafiuddin/tajhotel/payment"
	"github.com/shafiuddin/tajhotel/room"
)

var (
	ErrNotFound            = errors.New("booking not found")
	ErrAlreadyCancelled    = errors.New("booking already cancelled")
	ErrInvalidCancellation = errors.New("invalid cancellation")
)

// Engine owns the booking state machine: CONFIRMED is the only state a
// booking is created in, CANCELLED is terminal. Every transition runs in a
// single transaction together with the room flip and the ledger update.
type Engine struct {
	db *gorm.DB
}

func NewEngine(db *gorm.DB) *Engine {
	return &Engine{db: db}
}

// Nights returns the stay length in whole days. A same-day stay counts as
// one night.
func Nights(checkIn, checkOut time.Time) int {
	n := int(checkOut.Sub(checkIn).Hours() / 24)
	if n < 1 {
		n = 1
	}
	return n
}

// Create books a room for the customer. Availability is re-checked and
// flipped in the same conditional update, so a room shown as free by an
// earlier read cannot be booked twice.
func (e *Engine) Create(paymentID, roomID, customerID uint, checkIn, checkOut time.Time) (*Booking, error) {
	nights := Nights(checkIn, checkOut)

	tx := e.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var r room.Room
	if result := tx.First(&r, roomID); result.Error != nil {
		tx.Rollback()
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, room.ErrNotFound
		}
		return nil, fmt.Errorf("looking up room %d: %w", roomID, result.Error)
	}

	if err := room.Reserve(tx, roomID); err != nil {
		tx.Rollback()
		return nil, err
	}

	b := &Booking{
		PaymentID:          paymentID,
		RoomID:             roomID,
		CustomerID:         customerID,
		CheckIn:            checkIn,
		CheckOut:           checkOut,
		Nights:             nights,
		Status:             StatusConfirmed,
		TotalAmount:        r.Price * float64(nights),
		CancellationStatus: CancellationNone,
	}
	if result := tx.Create(b); result.Error != nil {
		tx.Rollback()
		return nil, fmt.Errorf("creating booking: %w", result.Error)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	log.Printf("booking %d created for customer %d, total $%.2f", b.ID, customerID, b.TotalAmount)
	return b, nil
}

type CancellationResult struct {
	Booking      *Booking
	RefundAmount float64
}

// CancelFull terminates a booking and refunds half the total charged.
func (e *Engine) CancelFull(bookingID uint) (*CancellationResult, error) {
	tx := e.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	b, err := confirmedBooking(tx, bookingID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	refund := b.TotalAmount / 2
	now := time.Now()

	if err := e.transition(tx, b, map[string]interface{}{
		"total_amount":           refund,
		"status":                 StatusCancelled,
		"cancellation_status":    CancellationFull,
		"cancellation_timestamp": now,
	}, refund, refund); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	b.TotalAmount = refund
	b.Status = StatusCancelled
	b.CancellationStatus = CancellationFull
	b.CancellationTimestamp = &now

	log.Printf("full cancellation processed for booking %d, refund $%.2f to customer %d", b.ID, refund, b.CustomerID)
	return &CancellationResult{Booking: b, RefundAmount: refund}, nil
}

// CancelPartial shortens the stay to end at newCheckOut, recomputes the total
// pro-rata and refunds the difference. The new date must actually shorten the
// stay; an extension is rejected.
func (e *Engine) CancelPartial(bookingID uint, newCheckOut time.Time) (*CancellationResult, error) {
	tx := e.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	b, err := confirmedBooking(tx, bookingID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if !newCheckOut.Before(b.CheckOut) {
		tx.Rollback()
		return nil, fmt.Errorf("%w: new check-out %s does not shorten the stay", ErrInvalidCancellation, newCheckOut.Format(time.DateOnly))
	}

	newNights := int(newCheckOut.Sub(b.CheckIn).Hours() / 24)
	if newNights < 0 {
		tx.Rollback()
		return nil, fmt.Errorf("%w: new check-out %s is before check-in", ErrInvalidCancellation, newCheckOut.Format(time.DateOnly))
	}

	var r room.Room
	if result := tx.First(&r, b.RoomID); result.Error != nil {
		tx.Rollback()
		return nil, fmt.Errorf("looking up room %d: %w", b.RoomID, result.Error)
	}

	newTotal := r.Price * float64(newNights)
	refund := b.TotalAmount - newTotal
	if refund < 0 {
		tx.Rollback()
		return nil, fmt.Errorf("%w: refund would be negative", ErrInvalidCancellation)
	}

	now := time.Now()
	if err := e.transition(tx, b, map[string]interface{}{
		"total_amount":           newTotal,
		"check_out":              newCheckOut,
		"nights":                 newNights,
		"status":                 StatusCancelled,
		"cancellation_status":    CancellationPartial,
		"cancellation_timestamp": now,
	}, newTotal, refund); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	b.TotalAmount = newTotal
	b.CheckOut = newCheckOut
	b.Nights = newNights
	b.Status = StatusCancelled
	b.CancellationStatus = CancellationPartial
	b.CancellationTimestamp = &now

	log.Printf("partial cancellation processed for booking %d, new total $%.2f, refund $%.2f to customer %d", b.ID, newTotal, refund, b.CustomerID)
	return &CancellationResult{Booking: b, RefundAmount: refund}, nil
}

// transition applies the cancellation updates, releases the room and records
// the refund. The status predicate on the update doubles as the guard against
// two cancellations racing each other: only one can move the row out of
// CONFIRMED.
func (e *Engine) transition(tx *gorm.DB, b *Booking, updates map[string]interface{}, newAmount, refundAmount float64) error {
	result := tx.Model(&Booking{}).
		Where("id = ? AND status = ?", b.ID, StatusConfirmed).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("updating booking %d: %w", b.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAlreadyCancelled
	}

	if err := room.Release(tx, b.RoomID); err != nil {
		return fmt.Errorf("releasing room %d: %w", b.RoomID, err)
	}

	if err := payment.Refund(tx, b.PaymentID, newAmount, refundAmount); err != nil {
		return fmt.Errorf("refunding payment %d: %w", b.PaymentID, err)
	}

	return nil
}

func (e *Engine) Get(bookingID uint) (*Booking, error) {
	var b Booking
	if result := e.db.First(&b, bookingID); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}

	return &b, nil
}

func confirmedBooking(tx *gorm.DB, bookingID uint) (*Booking, error) {
	var b Booking
	if result := tx.First(&b, bookingID); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}

	if b.Status != StatusConfirmed {
		return nil, ErrAlreadyCancelled
	}

	return &b, nil
}
