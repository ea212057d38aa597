package payment

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shafiuddin/tajhotel/room"
)

var (
	ErrNotFound            = errors.New("payment not found")
	ErrRoomNotFound        = errors.New("room not found")
	ErrInsufficientPayment = errors.New("insufficient payment")
)

// Ledger records charges and refunds. The charge record is never deleted;
// a refund overwrites the amount and tags the row.
type Ledger struct {
	db *gorm.DB
}

func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// Quote returns the amount due for a stay of the given length.
func (l *Ledger) Quote(roomID uint, nights int) (float64, error) {
	var r room.Room
	if result := l.db.First(&r, roomID); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return 0, ErrRoomNotFound
		}
		return 0, fmt.Errorf("looking up room %d: %w", roomID, result.Error)
	}

	return r.Price * float64(nights), nil
}

// Charge records a payment of paidAmount against a stay. The caller must
// supply at least the quoted total; there is no upper bound.
func (l *Ledger) Charge(roomID uint, nights int, paidAmount float64) (*Payment, error) {
	total, err := l.Quote(roomID, nights)
	if err != nil {
		return nil, err
	}

	if paidAmount < total {
		return nil, fmt.Errorf("%w: at least $%.2f required", ErrInsufficientPayment, total)
	}

	p := &Payment{
		RoomID:        roomID,
		Amount:        paidAmount,
		PaymentDate:   time.Now(),
		ReceiptNumber: uuid.NewString(),
	}
	if result := l.db.Create(p); result.Error != nil {
		return nil, fmt.Errorf("recording payment: %w", result.Error)
	}

	log.Printf("payment %d recorded for room %d, amount $%.2f", p.ID, roomID, paidAmount)
	return p, nil
}

func (l *Ledger) Get(paymentID uint) (*Payment, error) {
	var p Payment
	if result := l.db.First(&p, paymentID); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}

	return &p, nil
}

// Refund marks a charge as refunded, overwriting the recorded amount. It runs
// on the caller's transaction so that a cancellation either applies in full
// or not at all. A row already refunded does not match again.
func Refund(tx *gorm.DB, paymentID uint, newAmount, refundedAmount float64) error {
	result := tx.Model(&Payment{}).
		Where("id = ? AND is_refund = ?", paymentID, false).
		Updates(map[string]interface{}{
			"amount":          newAmount,
			"is_refund":       true,
			"refunded_amount": refundedAmount,
		})
	if result.Error != nil {
		return fmt.Errorf("updating payment %d: %w", paymentID, result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
