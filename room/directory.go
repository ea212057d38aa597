package room

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("room not found")
	ErrNotAvailable = errors.New("room not available")
)

type Availability struct {
	Available bool
	Price     float64
}

// Directory answers availability queries and owns the is_available flag.
// All other components go through it rather than touching rooms directly.
type Directory struct {
	db *gorm.DB
}

func NewDirectory(db *gorm.DB) *Directory {
	return &Directory{db: db}
}

func (d *Directory) CheckAvailability(roomID uint) (Availability, error) {
	var r Room
	if result := d.db.First(&r, roomID); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Availability{}, ErrNotFound
		}
		return Availability{}, fmt.Errorf("looking up room %d: %w", roomID, result.Error)
	}

	return Availability{Available: r.IsAvailable, Price: r.Price}, nil
}

// SetAvailability is idempotent: setting a room to the state it is already in
// is a no-op, not an error.
func (d *Directory) SetAvailability(roomID uint, available bool) error {
	result := d.db.Model(&Room{}).Where("id = ?", roomID).Update("is_available", available)
	if result.Error != nil {
		return fmt.Errorf("updating room %d: %w", roomID, result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := d.db.Model(&Room{}).Where("id = ?", roomID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
	}

	return nil
}

func (d *Directory) ListAvailable() ([]Room, error) {
	var rooms []Room
	if result := d.db.Where("is_available = ?", true).Order("id").Find(&rooms); result.Error != nil {
		return nil, result.Error
	}

	return rooms, nil
}

func (d *Directory) Get(roomID uint) (*Room, error) {
	var r Room
	if result := d.db.First(&r, roomID); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}

	return &r, nil
}

// Reserve flips an available room to unavailable as a single conditional
// update. A stale availability read is not trusted: if another session took
// the room in between, zero rows match and the caller gets ErrNotAvailable.
func Reserve(tx *gorm.DB, roomID uint) error {
	result := tx.Model(&Room{}).
		Where("id = ? AND is_available = ?", roomID, true).
		Update("is_available", false)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected != 1 {
		var count int64
		if err := tx.Model(&Room{}).Where("id = ?", roomID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return ErrNotAvailable
	}

	return nil
}

// Release makes a room bookable again. Runs inside the caller's transaction
// so a failed cancellation leaves the room untouched.
func Release(tx *gorm.DB, roomID uint) error {
	result := tx.Model(&Room{}).Where("id = ?", roomID).Update("is_available", true)
	if result.Error != nil {
		return result.Error
	}

	return nil
}
