package controller

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"motivaku_backend/internals/constants"
	"motivaku_backend/internals/datastore"
	prefModel "motivaku_backend/internals/features/preferences/model"
	"motivaku_backend/internals/features/quotes/dto"
	"motivaku_backend/internals/features/quotes/model"
	"motivaku_backend/internals/features/quotes/service"
	helper "motivaku_backend/internals/helpers"
)

var validateQuote = validator.New()

type QuoteController struct {
	Store *datastore.MemStore
}

func NewQuoteController(store *datastore.MemStore) *QuoteController {
	return &QuoteController{Store: store}
}

// currentPreferences returns the record for personalization, nil when
// none was ever created.
func (ctrl *QuoteController) currentPreferences() *prefModel.PreferenceModel {
	prefs, ok := ctrl.Store.Preferences.Get()
	if !ok {
		return nil
	}
	return &prefs
}

// =============================
// 📄 Get All Quotes (?category=)
// =============================
func (ctrl *QuoteController) GetAllQuotes(c *fiber.Ctx) error {
	category := c.Query("category")

	var quotes []model.QuoteModel
	if category != "" && category != constants.CategoryAll {
		quotes = ctrl.Store.Quotes.ByCategory(category)
	} else {
		quotes = ctrl.Store.Quotes.All()
	}

	result := make([]dto.QuoteDTO, 0, len(quotes))
	for _, q := range quotes {
		result = append(result, dto.ToQuoteDTO(q))
	}
	return c.JSON(result)
}

// =============================
// 🎲 Get Random Quote (?category=)
// =============================
// Picking a quote counts as a view: the entry lands in history.
func (ctrl *QuoteController) GetRandomQuote(c *fiber.Ctx) error {
	quote, err := ctrl.Store.Quotes.Random(c.Query("category"))
	if err != nil {
		if errors.Is(err, datastore.ErrNoCandidates) {
			return fiber.NewError(fiber.StatusNotFound, "No quotes found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch random quote")
	}

	ctrl.Store.History.Add(quote.QuoteID)

	personalized := service.Personalize(quote.QuoteText, ctrl.currentPreferences())
	return c.JSON(dto.ToPersonalizedQuoteDTO(quote, personalized))
}

// =============================
// 🔍 Get Quote By ID
// =============================
func (ctrl *QuoteController) GetQuoteByID(c *fiber.Ctx) error {
	quote, err := ctrl.Store.Quotes.ByID(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Quote not found")
	}

	personalized := service.Personalize(quote.QuoteText, ctrl.currentPreferences())
	return c.JSON(dto.ToPersonalizedQuoteDTO(quote, personalized))
}

// =============================
// ➕ Create Quote
// =============================
func (ctrl *QuoteController) CreateQuote(c *fiber.Ctx) error {
	var req dto.CreateQuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateQuote.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	quote := ctrl.Store.Quotes.Create(datastore.CreateQuoteInput{
		Text:             req.QuoteText,
		Category:         req.Category,
		Tags:             req.Tags,
		IsPersonalizable: req.IsPersonalizable,
	})
	return c.Status(fiber.StatusCreated).JSON(dto.ToQuoteDTO(quote))
}

// =============================
// ➕ Create Multiple Quotes
// =============================
func (ctrl *QuoteController) CreateQuotes(c *fiber.Ctx) error {
	var reqs []dto.CreateQuoteRequest
	if err := c.BodyParser(&reqs); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	// Validate every item first, store nothing on failure
	for i, req := range reqs {
		if err := validateQuote.Struct(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Error in item "+fmt.Sprint(i+1)+": "+err.Error())
		}
	}

	result := make([]dto.QuoteDTO, 0, len(reqs))
	for _, req := range reqs {
		quote := ctrl.Store.Quotes.Create(datastore.CreateQuoteInput{
			Text:             req.QuoteText,
			Category:         req.Category,
			Tags:             req.Tags,
			IsPersonalizable: req.IsPersonalizable,
		})
		result = append(result, dto.ToQuoteDTO(quote))
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}
