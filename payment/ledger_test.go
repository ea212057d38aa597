package payment

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shafiuddin/tajhotel/room"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&room.Room{}, &Payment{}))

	return db
}

func seedRoom(t *testing.T, db *gorm.DB, price float64) uint {
	t.Helper()

	r := room.Room{RoomType: "Single", Price: price, IsAvailable: true}
	require.NoError(t, db.Create(&r).Error)
	return r.ID
}

func TestQuote(t *testing.T) {
	db := newTestDB(t)
	l := NewLedger(db)
	roomID := seedRoom(t, db, 100)

	total, err := l.Quote(roomID, 3)
	require.NoError(t, err)
	assert.Equal(t, 300.0, total)

	_, err = l.Quote(9999, 3)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestCharge(t *testing.T) {
	db := newTestDB(t)
	l := NewLedger(db)
	roomID := seedRoom(t, db, 100)

	p, err := l.Charge(roomID, 3, 350)
	require.NoError(t, err)
	assert.Equal(t, 350.0, p.Amount)
	assert.False(t, p.IsRefund)
	assert.Nil(t, p.RefundedAmount)
	assert.NotEmpty(t, p.ReceiptNumber)
	assert.False(t, p.PaymentDate.IsZero())
}

func TestChargeInsufficient(t *testing.T) {
	db := newTestDB(t)
	l := NewLedger(db)
	roomID := seedRoom(t, db, 100)

	_, err := l.Charge(roomID, 3, 299.99)
	assert.ErrorIs(t, err, ErrInsufficientPayment)

	var count int64
	require.NoError(t, db.Model(&Payment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestChargeUnknownRoom(t *testing.T) {
	db := newTestDB(t)
	l := NewLedger(db)

	_, err := l.Charge(9999, 2, 500)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestRefund(t *testing.T) {
	db := newTestDB(t)
	l := NewLedger(db)
	roomID := seedRoom(t, db, 100)

	p, err := l.Charge(roomID, 3, 300)
	require.NoError(t, err)

	require.NoError(t, Refund(db, p.ID, 150, 150))

	updated, err := l.Get(p.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsRefund)
	assert.Equal(t, 150.0, updated.Amount)
	require.NotNil(t, updated.RefundedAmount)
	assert.Equal(t, 150.0, *updated.RefundedAmount)

	// a row already refunded does not match a second time
	assert.ErrorIs(t, Refund(db, p.ID, 75, 75), ErrNotFound)
}

func TestRefundUnknownPayment(t *testing.T) {
	db := newTestDB(t)

	assert.ErrorIs(t, Refund(db, 9999, 100, 100), ErrNotFound)
}
