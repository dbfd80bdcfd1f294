package route

import (
	"github.com/gofiber/fiber/v2"

	"motivaku_backend/internals/datastore"
	"motivaku_backend/internals/features/favorites/controller"
)

func FavoriteRoutes(api fiber.Router, store *datastore.MemStore) {
	ctrl := controller.NewFavoriteController(store)

	favorites := api.Group("/favorites")
	favorites.Get("/", ctrl.GetFavorites)              // 📄 All favorites joined with quote
	favorites.Post("/", ctrl.AddFavorite)              // ❤️ Favorite a quote
	favorites.Delete("/:quoteId", ctrl.RemoveFavorite) // 🗑️ Unfavorite by quote id
}
