package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessage(t *testing.T) {
	var got sendMessageRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bot123:abc/sendMessage", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"ok":true,"result":{}}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, Token: "123:abc"}, srv.Client())
	require.NoError(t, c.SendMessage(context.Background(), 42, "hello"))
	assert.Equal(t, sendMessageRequest{ChatID: 42, Text: "hello"}, got)
}

func TestSendMessageAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"description":"Bad Request: chat not found"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, Token: "t"}, srv.Client())
	err := c.SendMessage(context.Background(), 1, "x")
	assert.EqualError(t, err, "telegram: status 400: Bad Request: chat not found")
}

func TestUpdateDecoding(t *testing.T) {
	var u Update
	require.NoError(t, json.Unmarshal([]byte(`{
		"update_id": 10,
		"message": {"message_id": 5, "from": {"id": 7, "first_name": "Ann"}, "chat": {"id": 99, "type": "private"}, "text": "/start"}
	}`), &u))

	require.NotNil(t, u.Message)
	assert.Equal(t, int64(10), u.UpdateID)
	assert.Equal(t, int64(99), u.Message.Chat.ID)
	assert.Equal(t, int64(7), u.Message.From.ID)
	assert.Equal(t, "/start", u.Message.Text)
}
