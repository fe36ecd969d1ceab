package intake

import (
	"net"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/houraiteahouse/recruit-mailer/internal/config"
	"github.com/houraiteahouse/recruit-mailer/internal/logger"
	"github.com/houraiteahouse/recruit-mailer/internal/mailer"
	"github.com/houraiteahouse/recruit-mailer/internal/tracker"
)

const emailSubject = "Interested in contributing to Hourai Teahouse?"

// response bodies
const (
	msgForbidden = "Forbidden!"
	msgDuplicate = "Thank you for your enthusiasm, but we have already received a submission from you.\n" +
		"If you want to skip the wait, then join us on Discord at: https://discord.gg/VuZhs9V"
	msgInvalid    = "Form submission is not valid. Please enter a valid email and try again."
	msgIncomplete = "Form submission could not be processed. Please check your entries and try again."
	msgSandboxed  = "Development Mode is enabled. Email processed but not sent."
	msgThanks     = "Thanks for sharing your interest in us! We will get back to you shortly."
	msgSendFailed = "An error seems to have occurred. Please try again later."
)

// Handler serves the recruitment-form endpoint.
type Handler struct {
	tracker *tracker.Tracker
	mailer  mailer.Mailer
	cfg     *config.Config
	log     *logger.Logger
}

// NewHandler creates a handler with the given collaborators.
func NewHandler(trk *tracker.Tracker, ml mailer.Mailer, cfg *config.Config, log *logger.Logger) *Handler {
	return &Handler{
		tracker: trk,
		mailer:  ml,
		cfg:     cfg,
		log:     log,
	}
}

// Health handles GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// Submit handles a recruitment-form submission.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondText(w, http.StatusForbidden, msgForbidden)
		return
	}

	sid := uuid.New().String()
	addr := clientAddr(r)

	if h.tracker.Has(addr) {
		h.log.Info().
			Str("submission_id", sid).
			Str("address", addr).
			Msg("duplicate submission rejected")
		respondText(w, http.StatusForbidden, msgDuplicate)
		return
	}

	sub, err := ParseSubmission(r)
	if err != nil {
		respondText(w, http.StatusBadRequest, msgInvalid)
		return
	}
	if err := sub.Validate(); err != nil {
		h.log.Info().
			Str("submission_id", sid).
			Msg("submission failed validation")
		respondText(w, http.StatusBadRequest, msgInvalid)
		return
	}

	msg := &mailer.Message{
		To:      sub.Email(),
		From:    h.cfg.SenderEmail,
		Subject: emailSubject,
		HTML:    Render(EmailTemplate, sub),
		BCC:     h.cfg.BCC,
		Sandbox: h.cfg.Development,
	}
	if err := msg.Validate(); err != nil {
		h.log.Warn().
			Str("submission_id", sid).
			Err(err).
			Msg("message composition failed")
		respondText(w, http.StatusBadRequest, msgIncomplete)
		return
	}

	if err := h.mailer.Send(r.Context(), msg); err != nil {
		h.log.Error().
			Str("submission_id", sid).
			Err(err).
			Msg("dispatch failed")
		respondText(w, http.StatusInternalServerError, msgSendFailed)
		return
	}

	if h.cfg.Development {
		respondText(w, http.StatusOK, msgSandboxed)
		return
	}

	// Two in-flight submissions from the same address can both pass the Has
	// check above; the window closes when the first send completes.
	h.tracker.Record(addr)

	h.log.Info().
		Str("submission_id", sid).
		Str("to", sub.Email()).
		Msg("submission accepted")
	respondText(w, http.StatusOK, msgThanks)
}

// clientAddr extracts the submitter-identifying address: the first
// comma-separated token of X-Forwarded-For, falling back to the connection
// address. Not validated as a well-formed network address.
func clientAddr(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// helper functions

func respondText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(body))
}
