package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer — общий набор шаблонов страниц. Шаблоны вшиты в бинарь,
// сервер не зависит от рабочего каталога.
type Renderer struct {
	tmpl *template.Template
}

func New() (*Renderer, error) {
	funcs := template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
	}

	tmpl, err := template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("ошибка разбора шаблонов: %w", err)
	}

	return &Renderer{tmpl: tmpl}, nil
}

// Render выполняет шаблон в буфер и возвращает готовые байты,
// чтобы их можно было и отдать клиенту, и положить в кеш.
func (r *Renderer) Render(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("ошибка рендеринга шаблона %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) Page(w http.ResponseWriter, status int, name string, data any) {
	body, err := r.Render(name, data)
	if err != nil {
		log.Error().Err(err).Str("template", name).Msg("Не удалось отрендерить страницу")
		http.Error(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(body)
}

func (r *Renderer) NotFound(w http.ResponseWriter) {
	r.Page(w, http.StatusNotFound, "404.html", map[string]any{})
}
