package history

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v3"
)

type Handler struct {
	Reporter *Reporter
}

func (h *Handler) GetByCustomer(c fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fmt.Errorf("invalid customer id"))
	}

	records, err := h.Reporter.View(uint(id))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(err.Error())
	}

	return c.Status(http.StatusOK).JSON(records)
}

func (h *Handler) ExportByCustomer(c fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fmt.Errorf("invalid customer id"))
	}

	filePath := fmt.Sprintf("history_%d.xlsx", id)
	if err := h.Reporter.Export(uint(id), filePath); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate Excel file",
		})
	}

	return c.Download(filePath)
}
