package customer

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Customer struct {
	gorm.Model
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" gorm:"unique" validate:"required,email"`
	Password    string `json:"-"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	c.Password, err = generateHashPassword(c.Password)
	return
}

func generateHashPassword(password string) (string, error) {
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return "", err
	}
	return string(hashedPasswordBytes), nil
}
