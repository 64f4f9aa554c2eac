package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAssistantService struct {
	reply      string
	transcript string
	caption    string
	err        error
}

func (s *stubAssistantService) AskText(ctx context.Context, message, travelContext string) (string, error) {
	return s.reply, s.err
}

func (s *stubAssistantService) AskAudio(ctx context.Context, filename string, audio io.Reader) (string, string, error) {
	return s.transcript, s.reply, s.err
}

func (s *stubAssistantService) AskImage(ctx context.Context, mimeType string, image []byte) (string, string, error) {
	return s.caption, s.reply, s.err
}

func newAssistantRouter(stub *stubAssistantService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := NewAssistantController(stub)
	r.POST("/ai/text", ctrl.TextChat)
	r.POST("/ai/audio", ctrl.AudioChat)
	r.POST("/ai/image", ctrl.ImageChat)
	return r
}

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestAssistantController_TextChat(t *testing.T) {
	t.Run("provider reply is passed through", func(t *testing.T) {
		r := newAssistantRouter(&stubAssistantService{reply: "hi there"})

		req := httptest.NewRequest(http.MethodPost, "/ai/text", strings.NewReader(`{"message":"hello"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var got map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, map[string]string{"reply": "hi there"}, got)
	})

	t.Run("missing message is a 400", func(t *testing.T) {
		r := newAssistantRouter(&stubAssistantService{})

		req := httptest.NewRequest(http.MethodPost, "/ai/text", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("provider failure is a plain-text 500", func(t *testing.T) {
		r := newAssistantRouter(&stubAssistantService{err: errors.New("provider down")})

		req := httptest.NewRequest(http.MethodPost, "/ai/text", strings.NewReader(`{"message":"hello"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Server Error", w.Body.String())
	})
}

func TestAssistantController_AudioChat(t *testing.T) {
	t.Run("returns transcript and reply", func(t *testing.T) {
		r := newAssistantRouter(&stubAssistantService{transcript: "tell me about rumtek", reply: "Rumtek is..."})

		body, contentType := multipartBody(t, "audio", "question.m4a", []byte("fake-audio"))
		req := httptest.NewRequest(http.MethodPost, "/ai/audio", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var got map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "tell me about rumtek", got["transcript"])
		assert.Equal(t, "Rumtek is...", got["reply"])
	})

	t.Run("missing file is a 400 with error json", func(t *testing.T) {
		r := newAssistantRouter(&stubAssistantService{})

		req := httptest.NewRequest(http.MethodPost, "/ai/audio", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var got map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.NotEmpty(t, got["error"])
	})

	t.Run("provider failure is a 500 with error json", func(t *testing.T) {
		r := newAssistantRouter(&stubAssistantService{err: errors.New("whisper down")})

		body, contentType := multipartBody(t, "audio", "question.m4a", []byte("fake-audio"))
		req := httptest.NewRequest(http.MethodPost, "/ai/audio", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var got map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.NotEmpty(t, got["error"])
	})
}

func TestAssistantController_ImageChat(t *testing.T) {
	t.Run("returns caption and reply", func(t *testing.T) {
		r := newAssistantRouter(&stubAssistantService{caption: "A hilltop gompa", reply: "That looks like Tashiding."})

		body, contentType := multipartBody(t, "image", "photo.jpg", []byte("fake-image"))
		req := httptest.NewRequest(http.MethodPost, "/ai/image", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var got map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "A hilltop gompa", got["caption"])
		assert.Equal(t, "That looks like Tashiding.", got["reply"])
	})

	t.Run("provider failure is a 500 with error json", func(t *testing.T) {
		r := newAssistantRouter(&stubAssistantService{err: errors.New("gemini down")})

		body, contentType := multipartBody(t, "image", "photo.jpg", []byte("fake-image"))
		req := httptest.NewRequest(http.MethodPost, "/ai/image", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
