// mock-provider emulates a Resend-style transactional email API for local
// development. Outcome injection via MOCK_OUTCOME_MODE: "ok" accepts every
// send, "error" returns 500, "timeout" stalls past the client timeout.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gorilla/mux"

	"enquiry/internal/config"
	"enquiry/internal/logging"
)

type emailPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo []string `json:"reply_to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	Text    string   `json:"text"`
}

type server struct {
	cfg config.MockConfig
	seq atomic.Int64
}

func (s *server) handleSend(w http.ResponseWriter, r *http.Request) {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "missing api key"})
		return
	}

	var p emailPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "invalid payload"})
		return
	}

	if s.cfg.DelayMs > 0 {
		time.Sleep(time.Duration(s.cfg.DelayMs) * time.Millisecond)
	}

	switch s.cfg.OutcomeMode {
	case "error":
		slog.Info("mock send rejected", "to", p.To, "subject", p.Subject)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "mock provider error"})
		return
	case "timeout":
		time.Sleep(time.Duration(s.cfg.TimeoutDelayMs) * time.Millisecond)
	}

	id := fmt.Sprintf("mock_%d", s.seq.Add(1))
	slog.Info("mock send accepted", "id", id, "to", p.To, "subject", p.Subject, "reply_to", p.ReplyTo)
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"id": id})
}

func main() {
	cfg := config.LoadMock()
	logging.Init("mock-provider", cfg.LogFormat)

	s := &server{cfg: cfg}
	r := mux.NewRouter()
	r.HandleFunc("/emails", s.handleSend).Methods(http.MethodPost)

	slog.Info("mock provider listening", "port", cfg.Port, "mode", cfg.OutcomeMode)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		slog.Error("mock provider failed", "err", err)
		os.Exit(1)
	}
}
