package test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMediaHandler(t *testing.T) {
	t.Run("Картинка отдаётся с типом содержимого", func(t *testing.T) {
		handler, mocks := newTestHandlers(t)

		body := io.NopCloser(strings.NewReader("gif-bytes"))
		mocks.storage.On("GetImage", mock.Anything, "posts/cat.gif").
			Return(body, "image/gif", nil)

		req := httptest.NewRequest(http.MethodGet, "/media/posts/cat.gif", nil)
		req = mux.SetURLVars(req, map[string]string{"object": "posts/cat.gif"})
		rr := httptest.NewRecorder()

		handler.Media(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "image/gif", rr.Header().Get("Content-Type"))
		assert.Equal(t, "gif-bytes", rr.Body.String())
		mocks.storage.AssertExpectations(t)
	})

	t.Run("Отсутствующий объект отдаёт 404", func(t *testing.T) {
		handler, mocks := newTestHandlers(t)

		mocks.storage.On("GetImage", mock.Anything, "posts/missing.gif").
			Return(nil, "", fmt.Errorf("объект posts/missing.gif не найден"))

		req := httptest.NewRequest(http.MethodGet, "/media/posts/missing.gif", nil)
		req = mux.SetURLVars(req, map[string]string{"object": "posts/missing.gif"})
		rr := httptest.NewRecorder()

		handler.Media(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		mocks.storage.AssertExpectations(t)
	})
}
