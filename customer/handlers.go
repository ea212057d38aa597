package customer

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/golang-jwt/jwt/v5"
)

type Handler struct {
	Accounts  *Accounts
	JWTSecret string
}

func (h *Handler) Register(c fiber.Ctx) error {
	input := new(RegistrationInput)
	if err := c.Bind().JSON(input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(err)
	}

	cust, err := h.Accounts.Register(*input)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailTaken):
			return c.Status(http.StatusConflict).SendString("email is already registered, please try logging in")
		case errors.Is(err, ErrInvalidInput):
			return c.Status(http.StatusBadRequest).SendString(err.Error())
		default:
			return c.Status(http.StatusInternalServerError).JSON(err.Error())
		}
	}

	return c.Status(http.StatusCreated).JSON(cust)
}

func (h *Handler) Login(c fiber.Ctx) error {
	loginRequest := make(map[string]string)
	if err := c.Bind().JSON(&loginRequest); err != nil {
		return c.Status(http.StatusBadRequest).JSON(err)
	}

	cust, err := h.Accounts.Login(loginRequest["email"], loginRequest["password"])
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return c.Status(http.StatusUnauthorized).JSON("incorrect email or password")
		}
		return c.Status(http.StatusInternalServerError).JSON(err.Error())
	}

	claims := jwt.MapClaims{
		"customer_id": cust.ID,
		"email":       cust.Email,
		"exp":         time.Now().Add(time.Hour * 72).Unix(),
		"iat":         time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	t, err := token.SignedString([]byte(h.JWTSecret))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(err.Error())
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"token":    t,
		"customer": cust,
	})
}
