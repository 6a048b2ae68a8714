package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Raymond9734/parking-customers-backend/internal/i18n"
)

// GetTranslations handles GET /translations/{lang}
func GetTranslations(w http.ResponseWriter, r *http.Request) {
	lang := chi.URLParam(r, "lang")

	table := i18n.Table(lang)
	if table == nil {
		respondError(w, http.StatusNotFound, "NOT_FOUND", fmt.Sprintf("unsupported language: %s", lang))
		return
	}

	respondSuccess(w, table)
}
