package handlers

import (
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

// Media отдаёт картинки постов из хранилища по относительному пути,
// сохранённому в строке поста. Любая ошибка чтения — 404: битая
// ссылка на картинку не должна ронять страницу.
func (h *Handlers) Media(w http.ResponseWriter, r *http.Request) {
	objectName := mux.Vars(r)["object"]

	object, contentType, err := h.Storage.GetImage(r.Context(), objectName)
	if err != nil {
		h.Renderer.NotFound(w)
		return
	}
	defer object.Close()

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=86400")

	if _, err := io.Copy(w, object); err != nil {
		log.Warn().Err(err).Str("object", objectName).Msg("Обрыв отдачи картинки")
	}
}
