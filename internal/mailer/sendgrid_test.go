package mailer

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/houraiteahouse/recruit-mailer/internal/logger"
)

func TestSendGrid_Send(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	sg := NewSendGridWithHost("SG.test-key", srv.URL, logger.Nop())

	msg := validMessage()
	msg.Sandbox = true
	err := sg.Send(context.Background(), msg)
	require.NoError(t, err)

	assert.Equal(t, "Bearer SG.test-key", gotAuth)
	assert.Equal(t, msg.Subject, gotBody["subject"])

	settings, ok := gotBody["mail_settings"].(map[string]any)
	require.True(t, ok, "payload should carry mail_settings")
	sandbox, ok := settings["sandbox_mode"].(map[string]any)
	require.True(t, ok, "payload should carry sandbox_mode")
	assert.Equal(t, true, sandbox["enable"])
}

func TestSendGrid_SendRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	sg := NewSendGridWithHost("SG.test-key", srv.URL, logger.Nop())

	err := sg.Send(context.Background(), validMessage())
	assert.Error(t, err, "non-2xx provider response is a dispatch failure")
}

func TestSendGrid_SendIncompleteMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("incomplete message must not reach the provider")
	}))
	defer srv.Close()

	sg := NewSendGridWithHost("SG.test-key", srv.URL, logger.Nop())

	msg := validMessage()
	msg.To = ""
	err := sg.Send(context.Background(), msg)
	assert.ErrorIs(t, err, ErrMissingRecipient)
}
