// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dispatch

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/fleetforge/runner-control/internal/logging"
	"github.com/fleetforge/runner-control/internal/monitoring"
	"github.com/fleetforge/runner-control/internal/tracing"
	"github.com/fleetforge/runner-control/internal/types"
)

const (
	eventHeader     = "X-GitHub-Event"
	signatureHeader = "X-Hub-Signature-256"

	eventWorkflowJob  = "workflow_job"
	eventInstallation = "installation"
)

type messageResponse struct {
	Message string `json:"message"`
}

type API struct {
	dispatcher ServiceInterface
	lifecycle  LifecycleInterface
	secret     []byte

	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	dispatcher ServiceInterface,
	lifecycle LifecycleInterface,
	secret string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		dispatcher: dispatcher,
		lifecycle:  lifecycle,
		secret:     []byte(secret),
		validate:   validator.New(),
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/webhook", a.handleWebhook)
}

func (a *API) handleWebhook(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "dispatch.API.handleWebhook")
	defer span.End()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	if len(a.secret) > 0 && !a.verifySignature(body, r.Header.Get(signatureHeader)) {
		a.logger.Security().AuthorizationDenied(r.RemoteAddr, "webhook signature mismatch")
		writeMessage(w, http.StatusUnauthorized, "signature verification failed")
		return
	}

	switch event := r.Header.Get(eventHeader); event {
	case eventWorkflowJob:
		a.handleWorkflowJob(ctx, w, body)
	case eventInstallation:
		a.handleInstallation(ctx, w, body)
	default:
		writeMessage(w, http.StatusOK, "event ignored")
	}
}

func (a *API) handleWorkflowJob(ctx context.Context, w http.ResponseWriter, body []byte) {
	var ev types.WorkflowJobEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid workflow_job payload")
		return
	}
	if err := a.validate.Struct(&ev); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid workflow_job payload")
		return
	}

	res := a.dispatcher.Dispatch(ctx, &ev)
	switch res.Outcome {
	case OutcomeAccepted:
		writeMessage(w, res.Code, "job dispatched to tier "+res.TierID)
	case OutcomeNotQueued:
		writeMessage(w, res.Code, res.Reason)
	case OutcomeRejected:
		writeMessage(w, res.Code, res.Reason)
	}
}

func (a *API) handleInstallation(ctx context.Context, w http.ResponseWriter, body []byte) {
	var ev types.InstallationEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid installation payload")
		return
	}
	if err := a.validate.Struct(&ev); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid installation payload")
		return
	}

	if err := a.lifecycle.HandleInstallationEvent(ctx, &ev); err != nil {
		a.logger.Errorf("failed to handle installation %s: %v", ev.Action, err)
		writeMessage(w, http.StatusInternalServerError, "failed to handle installation event")
		return
	}

	writeMessage(w, http.StatusOK, "installation "+ev.Action+" processed")
}

// verifySignature checks the hex-encoded HMAC-SHA256 of the raw body
// against the sha256= prefixed header value.
func (a *API) verifySignature(body []byte, header string) bool {
	const prefix = "sha256="
	if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
		return false
	}

	mac := hmac.New(sha256.New, a.secret)
	mac.Write(body)
	want := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(want), []byte(header[len(prefix):]))
}

func writeMessage(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(messageResponse{Message: message})
}
