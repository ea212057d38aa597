package room

import (
	"gorm.io/gorm"
)

type Room struct {
	gorm.Model
	RoomType    string  `json:"roomType" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	IsAvailable bool    `json:"isAvailable" gorm:"default:true"`
}
