package room

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v3"
)

type Handler struct {
	Directory *Directory
}

func (h *Handler) List(c fiber.Ctx) error {
	rooms, err := h.Directory.ListAvailable()
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(err)
	}

	return c.Status(http.StatusOK).JSON(rooms)
}

func (h *Handler) GetById(c fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fmt.Errorf("invalid room id"))
	}

	r, err := h.Directory.Get(uint(id))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(http.StatusNotFound).SendString("room not found")
		}
		return c.Status(http.StatusInternalServerError).JSON(err)
	}

	return c.Status(http.StatusOK).JSON(r)
}
