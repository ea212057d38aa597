package booking

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shafiuddin/tajhotel/payment"
	"github.com/shafiuddin/tajhotel/room"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&room.Room{}, &payment.Payment{}, &Booking{}))

	return db
}

type fixture struct {
	db     *gorm.DB
	engine *Engine
	ledger *payment.Ledger
	roomID uint
}

func newFixture(t *testing.T, price float64) *fixture {
	t.Helper()

	db := newTestDB(t)
	r := room.Room{RoomType: "Single", Price: price, IsAvailable: true}
	require.NoError(t, db.Create(&r).Error)

	return &fixture{
		db:     db,
		engine: NewEngine(db),
		ledger: payment.NewLedger(db),
		roomID: r.ID,
	}
}

func (f *fixture) book(t *testing.T, checkIn, checkOut time.Time, paid float64) (*Booking, *payment.Payment) {
	t.Helper()

	p, err := f.ledger.Charge(f.roomID, Nights(checkIn, checkOut), paid)
	require.NoError(t, err)

	b, err := f.engine.Create(p.ID, f.roomID, 1, checkIn, checkOut)
	require.NoError(t, err)

	return b, p
}

func (f *fixture) roomAvailable(t *testing.T) bool {
	t.Helper()

	var r room.Room
	require.NoError(t, f.db.First(&r, f.roomID).Error)
	return r.IsAvailable
}

func date(s string) time.Time {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestNights(t *testing.T) {
	assert.Equal(t, 3, Nights(date("2024-06-01"), date("2024-06-04")))
	assert.Equal(t, 1, Nights(date("2024-06-01"), date("2024-06-02")))
	// same-day stay counts as one night
	assert.Equal(t, 1, Nights(date("2024-06-01"), date("2024-06-01")))
}

func TestCreateBooking(t *testing.T) {
	f := newFixture(t, 100)

	b, p := f.book(t, date("2024-06-01"), date("2024-06-04"), 300)

	assert.Equal(t, 3, b.Nights)
	assert.Equal(t, 300.0, b.TotalAmount)
	assert.Equal(t, StatusConfirmed, b.Status)
	assert.Equal(t, CancellationNone, b.CancellationStatus)
	assert.Nil(t, b.CancellationTimestamp)
	assert.GreaterOrEqual(t, p.Amount, 300.0)
	assert.False(t, f.roomAvailable(t))
}

func TestCreateBookingRoomUnknown(t *testing.T) {
	f := newFixture(t, 100)

	_, err := f.engine.Create(1, 9999, 1, date("2024-06-01"), date("2024-06-04"))
	assert.ErrorIs(t, err, room.ErrNotFound)

	var count int64
	require.NoError(t, f.db.Model(&Booking{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateBookingRoomTaken(t *testing.T) {
	f := newFixture(t, 100)

	f.book(t, date("2024-06-01"), date("2024-06-04"), 300)

	// the availability flip is conditional, so a booking off a stale read
	// fails instead of double-booking the room
	p, err := f.ledger.Charge(f.roomID, 2, 200)
	require.NoError(t, err)
	_, err = f.engine.Create(p.ID, f.roomID, 2, date("2024-06-10"), date("2024-06-12"))
	assert.ErrorIs(t, err, room.ErrNotAvailable)

	var count int64
	require.NoError(t, f.db.Model(&Booking{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCancelFull(t *testing.T) {
	f := newFixture(t, 100)
	b, p := f.book(t, date("2024-06-01"), date("2024-06-04"), 300)

	result, err := f.engine.CancelFull(b.ID)
	require.NoError(t, err)

	assert.Equal(t, 150.0, result.RefundAmount)
	assert.Equal(t, 150.0, result.Booking.TotalAmount)
	assert.Equal(t, StatusCancelled, result.Booking.Status)
	assert.Equal(t, CancellationFull, result.Booking.CancellationStatus)
	assert.NotNil(t, result.Booking.CancellationTimestamp)
	assert.True(t, f.roomAvailable(t))

	stored, err := f.engine.Get(b.ID)
	require.NoError(t, err)
	assert.Equal(t, 150.0, stored.TotalAmount)
	assert.Equal(t, StatusCancelled, stored.Status)

	refunded, err := f.ledger.Get(p.ID)
	require.NoError(t, err)
	assert.True(t, refunded.IsRefund)
	assert.Equal(t, 150.0, refunded.Amount)
	require.NotNil(t, refunded.RefundedAmount)
	assert.Equal(t, 150.0, *refunded.RefundedAmount)
}

func TestCancelPartial(t *testing.T) {
	f := newFixture(t, 100)
	b, p := f.book(t, date("2024-06-01"), date("2024-06-05"), 400)
	require.Equal(t, 400.0, b.TotalAmount)

	result, err := f.engine.CancelPartial(b.ID, date("2024-06-03"))
	require.NoError(t, err)

	assert.Equal(t, 200.0, result.Booking.TotalAmount)
	assert.Equal(t, 200.0, result.RefundAmount)
	assert.Equal(t, 2, result.Booking.Nights)
	assert.Equal(t, StatusCancelled, result.Booking.Status)
	assert.Equal(t, CancellationPartial, result.Booking.CancellationStatus)
	assert.True(t, f.roomAvailable(t))

	stored, err := f.engine.Get(b.ID)
	require.NoError(t, err)
	assert.Equal(t, 200.0, stored.TotalAmount)
	assert.Equal(t, date("2024-06-03").Format(time.DateOnly), stored.CheckOut.Format(time.DateOnly))

	refunded, err := f.ledger.Get(p.ID)
	require.NoError(t, err)
	assert.True(t, refunded.IsRefund)
	assert.Equal(t, 200.0, refunded.Amount)
	require.NotNil(t, refunded.RefundedAmount)
	assert.Equal(t, 200.0, *refunded.RefundedAmount)
}

func TestCancelPartialRejectsExtension(t *testing.T) {
	f := newFixture(t, 100)
	b, _ := f.book(t, date("2024-06-01"), date("2024-06-05"), 400)

	// equal check-out is not a shortening either
	_, err := f.engine.CancelPartial(b.ID, date("2024-06-05"))
	assert.ErrorIs(t, err, ErrInvalidCancellation)

	_, err = f.engine.CancelPartial(b.ID, date("2024-06-10"))
	assert.ErrorIs(t, err, ErrInvalidCancellation)

	stored, err := f.engine.Get(b.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, stored.Status)
	assert.Equal(t, 400.0, stored.TotalAmount)
	assert.False(t, f.roomAvailable(t))
}

func TestCancelAlreadyCancelled(t *testing.T) {
	f := newFixture(t, 100)
	b, p := f.book(t, date("2024-06-01"), date("2024-06-04"), 300)

	_, err := f.engine.CancelFull(b.ID)
	require.NoError(t, err)

	_, err = f.engine.CancelFull(b.ID)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
	_, err = f.engine.CancelPartial(b.ID, date("2024-06-02"))
	assert.ErrorIs(t, err, ErrAlreadyCancelled)

	// the rejected second cancellation changed nothing
	stored, err := f.engine.Get(b.ID)
	require.NoError(t, err)
	assert.Equal(t, 150.0, stored.TotalAmount)

	refunded, err := f.ledger.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 150.0, refunded.Amount)
	assert.True(t, f.roomAvailable(t))
}

func TestCancelUnknownBooking(t *testing.T) {
	f := newFixture(t, 100)

	_, err := f.engine.CancelFull(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelRollsBackWhenRefundFails(t *testing.T) {
	f := newFixture(t, 100)
	b, p := f.book(t, date("2024-06-01"), date("2024-06-04"), 300)

	// simulate a ledger with no matching charge
	require.NoError(t, f.db.Unscoped().Delete(&payment.Payment{}, p.ID).Error)

	_, err := f.engine.CancelFull(b.ID)
	assert.ErrorIs(t, err, payment.ErrNotFound)

	// the booking update and room release must not stay committed with no
	// matching payment update
	stored, err := f.engine.Get(b.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, stored.Status)
	assert.Equal(t, 300.0, stored.TotalAmount)
	assert.Equal(t, CancellationNone, stored.CancellationStatus)
	assert.False(t, f.roomAvailable(t))
}
