package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"motivaku_backend/internals/datastore"
	"motivaku_backend/internals/features/favorites/dto"
	helper "motivaku_backend/internals/helpers"
)

var validateFavorite = validator.New()

type FavoriteController struct {
	Store *datastore.MemStore
}

func NewFavoriteController(store *datastore.MemStore) *FavoriteController {
	return &FavoriteController{Store: store}
}

// =============================
// 📄 Get Favorites (joined with quotes)
// =============================
func (ctrl *FavoriteController) GetFavorites(c *fiber.Ctx) error {
	favorites := ctrl.Store.Favorites.All()

	result := make([]dto.FavoriteDTO, 0, len(favorites))
	for _, fav := range favorites {
		if quote, err := ctrl.Store.Quotes.ByID(fav.QuoteID); err == nil {
			result = append(result, dto.ToFavoriteWithQuoteDTO(fav, &quote))
		} else {
			// dangling reference: keep the entry, quote stays null
			result = append(result, dto.ToFavoriteWithQuoteDTO(fav, nil))
		}
	}
	return c.JSON(result)
}

// =============================
// ❤️ Add Favorite
// =============================
// Idempotent: favoriting an already-favorited quote returns the
// existing entry.
func (ctrl *FavoriteController) AddFavorite(c *fiber.Ctx) error {
	var req dto.CreateFavoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid favorite data")
	}
	if err := validateFavorite.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	favorite := ctrl.Store.Favorites.Add(req.QuoteID)
	return c.JSON(dto.ToFavoriteDTO(favorite))
}

// =============================
// 🗑️ Remove Favorite
// =============================
func (ctrl *FavoriteController) RemoveFavorite(c *fiber.Ctx) error {
	ctrl.Store.Favorites.Remove(c.Params("quoteId"))
	return c.SendStatus(fiber.StatusNoContent)
}
