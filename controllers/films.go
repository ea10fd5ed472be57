package controllers

import (
	"errors"
	"net/http"

	dbpkg "filmoteca/db"
	"filmoteca/models"
	"filmoteca/store"

	"github.com/gin-gonic/gin"
)

func GetFilms(c *gin.Context) {
	stores, ok := dbpkg.StoresInstance(c)
	if !ok {
		RespondError(c, "stores not configured in context", http.StatusInternalServerError)
		return
	}
	films, err := stores.Films.List(c.Request.Context())
	if err != nil {
		RespondError(c, "could not list films", http.StatusInternalServerError)
		return
	}
	RespondSuccess(c, films)
}

func GetFilmByID(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	stores, ok := dbpkg.StoresInstance(c)
	if !ok {
		RespondError(c, "stores not configured in context", http.StatusInternalServerError)
		return
	}
	film, err := stores.Films.FindByFilmID(c.Request.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		RespondError(c, "film not found", http.StatusNotFound)
		return
	}
	if err != nil {
		RespondError(c, "could not fetch film", http.StatusInternalServerError)
		return
	}
	RespondSuccess(c, film)
}

func CreateFilm(c *gin.Context) {
	var film models.Film
	if err := c.Bind(&film); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if missing := film.MissingFields(); missing != "" {
		RespondError(c, "missing field "+missing, http.StatusBadRequest)
		return
	}

	stores, ok := dbpkg.StoresInstance(c)
	if !ok {
		RespondError(c, "stores not configured in context", http.StatusInternalServerError)
		return
	}
	if err := stores.Films.Create(c.Request.Context(), &film); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			RespondError(c, "film already exists", http.StatusBadRequest)
			return
		}
		RespondError(c, "could not create film", http.StatusInternalServerError)
		return
	}
	RespondSuccess(c, film)
}

func UpdateFilm(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	var film models.Film
	if err := c.Bind(&film); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	film.FilmID = id

	stores, ok := dbpkg.StoresInstance(c)
	if !ok {
		RespondError(c, "stores not configured in context", http.StatusInternalServerError)
		return
	}
	if err := stores.Films.Update(c.Request.Context(), &film); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			RespondError(c, "film not found", http.StatusNotFound)
			return
		}
		RespondError(c, "could not update film", http.StatusInternalServerError)
		return
	}
	RespondSuccess(c, film)
}

func DeleteFilm(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	stores, ok := dbpkg.StoresInstance(c)
	if !ok {
		RespondError(c, "stores not configured in context", http.StatusInternalServerError)
		return
	}
	if err := stores.Films.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			RespondError(c, "film not found", http.StatusNotFound)
			return
		}
		RespondError(c, "could not delete film", http.StatusInternalServerError)
		return
	}
	RespondMessage(c, "film deleted")
}
