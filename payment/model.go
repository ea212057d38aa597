package payment

import (
	"time"

	"gorm.io/gorm"
)

type Payment struct {
	gorm.Model
	RoomID         uint      `json:"roomID"`
	Amount         float64   `json:"amount"`
	PaymentDate    time.Time `json:"paymentDate"`
	IsRefund       bool      `json:"isRefund" gorm:"default:false"`
	RefundedAmount *float64  `json:"refundedAmount"`
	ReceiptNumber  string    `json:"receiptNumber"`
}
