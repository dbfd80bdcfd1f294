package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"motivaku_backend/internals/datastore"
	"motivaku_backend/internals/features/history/dto"
	helper "motivaku_backend/internals/helpers"
)

// Listings show at most the 10 most recent views; the store keeps the
// full log until cleared.
const historyDisplayLimit = 10

var validateHistory = validator.New()

type HistoryController struct {
	Store *datastore.MemStore
}

func NewHistoryController(store *datastore.MemStore) *HistoryController {
	return &HistoryController{Store: store}
}

// =============================
// 📄 Get History (newest first, top 10, joined with quotes)
// =============================
func (ctrl *HistoryController) GetHistory(c *fiber.Ctx) error {
	entries := ctrl.Store.History.All()

	result := make([]dto.HistoryDTO, 0, historyDisplayLimit)
	for _, entry := range entries {
		if len(result) == historyDisplayLimit {
			break
		}
		if quote, err := ctrl.Store.Quotes.ByID(entry.QuoteID); err == nil {
			result = append(result, dto.ToHistoryWithQuoteDTO(entry, &quote))
		} else {
			result = append(result, dto.ToHistoryWithQuoteDTO(entry, nil))
		}
	}
	return c.JSON(result)
}

// =============================
// ➕ Add History Entry
// =============================
func (ctrl *HistoryController) AddHistory(c *fiber.Ctx) error {
	var req dto.CreateHistoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid history data")
	}
	if err := validateHistory.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	entry := ctrl.Store.History.Add(req.QuoteID)
	return c.JSON(dto.ToHistoryDTO(entry))
}

// =============================
// 🗑️ Clear History
// =============================
func (ctrl *HistoryController) ClearHistory(c *fiber.Ctx) error {
	ctrl.Store.History.Clear()
	return c.SendStatus(fiber.StatusNoContent)
}
