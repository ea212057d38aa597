package booking

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/shafiuddin/tajhotel/payment"
	"github.com/shafiuddin/tajhotel/room"
)

type Handler struct {
	Engine *Engine
	Ledger *payment.Ledger
}

type CreateRequest struct {
	RoomID     uint    `json:"roomID"`
	CustomerID uint    `json:"customerID"`
	CheckIn    string  `json:"checkIn"`
	CheckOut   string  `json:"checkOut"`
	PaidAmount float64 `json:"paidAmount"`
}

func (h *Handler) Create(c fiber.Ctx) error {
	req := new(CreateRequest)
	if err := c.Bind().JSON(req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(err)
	}

	checkIn, err := time.Parse(time.DateOnly, req.CheckIn)
	if err != nil {
		return c.Status(http.StatusBadRequest).SendString("invalid check-in date, expected YYYY-MM-DD")
	}
	checkOut, err := time.Parse(time.DateOnly, req.CheckOut)
	if err != nil {
		return c.Status(http.StatusBadRequest).SendString("invalid check-out date, expected YYYY-MM-DD")
	}
	if checkOut.Before(checkIn) {
		return c.Status(http.StatusBadRequest).SendString("check-out date must not be before check-in date")
	}

	p, err := h.Ledger.Charge(req.RoomID, Nights(checkIn, checkOut), req.PaidAmount)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrRoomNotFound):
			return c.Status(http.StatusNotFound).SendString("room not found")
		case errors.Is(err, payment.ErrInsufficientPayment):
			return c.Status(http.StatusBadRequest).SendString(err.Error())
		default:
			return c.Status(http.StatusInternalServerError).JSON(err.Error())
		}
	}

	b, err := h.Engine.Create(p.ID, req.RoomID, req.CustomerID, checkIn, checkOut)
	if err != nil {
		switch {
		case errors.Is(err, room.ErrNotFound):
			return c.Status(http.StatusNotFound).SendString("room not found")
		case errors.Is(err, room.ErrNotAvailable):
			return c.Status(http.StatusConflict).SendString("room is no longer available")
		default:
			return c.Status(http.StatusInternalServerError).JSON(err.Error())
		}
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"booking":       b,
		"receiptNumber": p.ReceiptNumber,
	})
}

type CancelRequest struct {
	Mode        string `json:"mode"`
	NewCheckOut string `json:"newCheckOut"`
}

func (h *Handler) Cancel(c fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fmt.Errorf("invalid booking id"))
	}

	req := new(CancelRequest)
	if err := c.Bind().JSON(req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(err)
	}

	var result *CancellationResult
	switch req.Mode {
	case "full":
		result, err = h.Engine.CancelFull(uint(id))
	case "partial":
		var newCheckOut time.Time
		newCheckOut, err = time.Parse(time.DateOnly, req.NewCheckOut)
		if err != nil {
			return c.Status(http.StatusBadRequest).SendString("invalid new check-out date, expected YYYY-MM-DD")
		}
		result, err = h.Engine.CancelPartial(uint(id), newCheckOut)
	default:
		return c.Status(http.StatusBadRequest).SendString("mode must be full or partial")
	}

	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return c.Status(http.StatusNotFound).SendString("no booking found with the provided id")
		case errors.Is(err, ErrAlreadyCancelled):
			return c.Status(http.StatusConflict).SendString("booking cannot be cancelled as it is already cancelled")
		case errors.Is(err, ErrInvalidCancellation):
			return c.Status(http.StatusBadRequest).SendString(err.Error())
		default:
			return c.Status(http.StatusInternalServerError).JSON(err.Error())
		}
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"booking":      result.Booking,
		"refundAmount": result.RefundAmount,
	})
}

func (h *Handler) GetById(c fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fmt.Errorf("invalid booking id"))
	}

	b, err := h.Engine.Get(uint(id))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(http.StatusNotFound).SendString("booking not found")
		}
		return c.Status(http.StatusInternalServerError).JSON(err.Error())
	}

	return c.Status(http.StatusOK).JSON(b)
}
