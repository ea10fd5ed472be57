package controllers

import (
	"errors"
	"net/http"

	dbpkg "filmoteca/db"
	"filmoteca/models"
	"filmoteca/store"

	"github.com/gin-gonic/gin"
)

type FavoriteRequest struct {
	FilmID int64 `json:"film_id" form:"film_id"`
}

// GetFavorites lists the films the logged user marked as favorites.
func GetFavorites(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}
	stores, ok := dbpkg.StoresInstance(c)
	if !ok {
		RespondError(c, "stores not configured in context", http.StatusInternalServerError)
		return
	}

	favorites, err := stores.Favorites.ListByUser(c.Request.Context(), user.ID)
	if err != nil {
		RespondError(c, "could not list favorites", http.StatusInternalServerError)
		return
	}

	films := []models.Film{}
	for _, fav := range favorites {
		film, err := stores.Films.FindByFilmID(c.Request.Context(), fav.FilmID)
		if errors.Is(err, store.ErrNotFound) {
			// film removed from the catalog after being favorited
			continue
		}
		if err != nil {
			RespondError(c, "could not list favorites", http.StatusInternalServerError)
			return
		}
		films = append(films, film)
	}
	RespondSuccess(c, films)
}

func AddFavorite(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}
	var req FavoriteRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if req.FilmID <= 0 {
		RespondError(c, "film_id is required", http.StatusBadRequest)
		return
	}

	stores, ok := dbpkg.StoresInstance(c)
	if !ok {
		RespondError(c, "stores not configured in context", http.StatusInternalServerError)
		return
	}

	if _, err := stores.Films.FindByFilmID(c.Request.Context(), req.FilmID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			RespondError(c, "film not found", http.StatusNotFound)
			return
		}
		RespondError(c, "could not add favorite", http.StatusInternalServerError)
		return
	}

	if err := stores.Favorites.Add(c.Request.Context(), user.ID, req.FilmID); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			RespondError(c, "film already in favorites", http.StatusBadRequest)
			return
		}
		RespondError(c, "could not add favorite", http.StatusInternalServerError)
		return
	}
	RespondMessage(c, "favorite added")
}

func RemoveFavorite(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	stores, ok := dbpkg.StoresInstance(c)
	if !ok {
		RespondError(c, "stores not configured in context", http.StatusInternalServerError)
		return
	}
	if err := stores.Favorites.Remove(c.Request.Context(), user.ID, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			RespondError(c, "favorite not found", http.StatusNotFound)
			return
		}
		RespondError(c, "could not remove favorite", http.StatusInternalServerError)
		return
	}
	RespondMessage(c, "favorite removed")
}
