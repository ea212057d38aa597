package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/golang-jwt/jwt/v5"

	"github.com/shafiuddin/tajhotel/booking"
	"github.com/shafiuddin/tajhotel/customer"
	"github.com/shafiuddin/tajhotel/history"
	"github.com/shafiuddin/tajhotel/room"
)

func requireAuth(secret string) fiber.Handler {
	return func(c fiber.Ctx) error {
		header := c.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			return c.Status(http.StatusUnauthorized).SendString("missing or malformed token")
		}

		token, err := jwt.Parse(strings.TrimPrefix(header, "Bearer "), func(t *jwt.Token) (interface{}, error) {
			if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return c.Status(http.StatusUnauthorized).SendString("invalid or expired token")
		}

		c.Locals("user", token)
		return c.Next()
	}
}

func roomRoutes(r fiber.Router, h *room.Handler) {
	r.Get("", h.List)
	r.Get("/:id", h.GetById)
}

func customerRoutes(r fiber.Router, h *customer.Handler) {
	r.Post("", h.Register)
	r.Post("/auth/login", h.Login)
}

func bookingRoutes(r fiber.Router, h *booking.Handler, secret string) {
	r.Use(requireAuth(secret))
	r.Post("", h.Create)
	r.Get("/:id", h.GetById)
	r.Post("/:id/cancel", h.Cancel)
}

func historyRoutes(r fiber.Router, h *history.Handler, secret string) {
	r.Use(requireAuth(secret))
	r.Get("/:id", h.GetByCustomer)
	r.Get("/:id/export", h.ExportByCustomer)
}
