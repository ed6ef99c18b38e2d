package handler

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"

	"github.com/petrosTsatsis/KilogBackend/internal/logger"
	model "github.com/petrosTsatsis/KilogBackend/internal/models"
	"github.com/petrosTsatsis/KilogBackend/internal/utils"
)

// IdentityWebhook receives user lifecycle notifications from the identity
// provider. Bad signatures are rejected; once a payload is authentic it is
// always acknowledged with 200, even when processing fails, so the provider
// never redelivers forever.
func (h *Handler) IdentityWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "could not read body", err)
		return
	}

	if !verifySignature(h.webhookSecret, body, r.Header.Get("X-Webhook-Signature")) {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid webhook signature")
		return
	}

	var ev model.IdentityEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid webhook payload", err)
		return
	}

	logger.Info("received identity event %s", ev.Type)

	if err := h.users.ProcessIdentityEvent(r.Context(), ev); err != nil {
		// reported internally, acknowledged anyway
		logger.Error("processing identity event %s: %v", ev.Type, err)
		utils.JSON(w, http.StatusOK, utils.APIResponse{Success: false, Error: "event processing failed"})
		return
	}

	utils.Message(w, "ok")
}

func verifySignature(secret string, body []byte, signature string) bool {
	if signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
