package customer

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/shafiuddin/tajhotel/mail"
	"github.com/shafiuddin/tajhotel/room"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidInput       = errors.New("invalid input")
)

type RegistrationInput struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
}

type Accounts struct {
	db       *gorm.DB
	rooms    *room.Directory
	mailer   mail.Mailer
	validate *validator.Validate
}

func NewAccounts(db *gorm.DB, rooms *room.Directory, mailer mail.Mailer) *Accounts {
	return &Accounts{
		db:       db,
		rooms:    rooms,
		mailer:   mailer,
		validate: validator.New(),
	}
}

// Register creates a customer account and sends a welcome email listing the
// rooms currently available. A failed email is logged but does not fail the
// registration.
func (a *Accounts) Register(input RegistrationInput) (*Customer, error) {
	if err := a.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	switch {
	case !ValidName(input.FirstName):
		return nil, fmt.Errorf("%w: invalid first name", ErrInvalidInput)
	case !ValidName(input.LastName):
		return nil, fmt.Errorf("%w: invalid last name", ErrInvalidInput)
	case !ValidEmail(input.Email):
		return nil, fmt.Errorf("%w: invalid email format", ErrInvalidInput)
	case !ValidPassword(input.Password):
		return nil, fmt.Errorf("%w: password does not meet requirements", ErrInvalidInput)
	case !ValidPhone(input.PhoneNumber):
		return nil, fmt.Errorf("%w: invalid phone number format", ErrInvalidInput)
	}

	var count int64
	if err := a.db.Model(&Customer{}).Where("email = ?", input.Email).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("checking email: %w", err)
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	c := &Customer{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		Password:    input.Password,
		PhoneNumber: input.PhoneNumber,
	}
	if result := a.db.Create(c); result.Error != nil {
		return nil, fmt.Errorf("creating customer: %w", result.Error)
	}

	body, err := a.WelcomeMessage(c)
	if err != nil {
		log.Printf("building welcome email for %s: %v", c.Email, err)
	} else if err := a.mailer.Send(c.Email, "Taj Hotel : registered successfully.", body); err != nil {
		log.Printf("sending welcome email to %s: %v", c.Email, err)
	}

	log.Printf("customer %s %s registered successfully", c.FirstName, c.LastName)
	return c, nil
}

// WelcomeMessage builds the plaintext registration email listing every room
// currently available.
func (a *Accounts) WelcomeMessage(c *Customer) (string, error) {
	rooms, err := a.rooms.ListAvailable()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Thanks %s %s for registering with us.\n", c.FirstName, c.LastName)
	sb.WriteString("Available Rooms:\n")
	for _, r := range rooms {
		fmt.Fprintf(&sb, "  Room %d  %s  $%.2f/night\n", r.ID, r.RoomType, r.Price)
	}

	return sb.String(), nil
}

func (a *Accounts) Login(email, password string) (*Customer, error) {
	var c Customer
	if result := a.db.Where("email = ?", email).First(&c); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("looking up customer: %w", result.Error)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(c.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	log.Printf("user %s logged in successfully", email)
	return &c, nil
}
