package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"enquiry/internal/domain"
	"enquiry/internal/i18n"
	"enquiry/internal/service"
	"enquiry/internal/util"
	"enquiry/internal/validate"
)

// maxBodyBytes caps the contact payload; the form carries at most a few KB
// of text.
const maxBodyBytes = 50 << 10

type API struct {
	Svc   *service.EnquiryService
	IDGen func() string
}

func (a *API) Register(r *mux.Router) {
	r.HandleFunc("/api/contact", a.handleContact).Methods(http.MethodPost)
	r.HandleFunc("/api/contact/rules", a.handleRules).Methods(http.MethodGet)
	r.HandleFunc("/api/i18n/{lang}", a.handleI18n).Methods(http.MethodGet)
}

func (a *API) handleContact(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req domain.Submission
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, domain.APIResponse{OK: false, Error: ErrInvalidForm})
		return
	}

	enquiryID := a.IDGen()
	res, err := a.Svc.Submit(r.Context(), req, enquiryID, util.NowUTC())
	if err != nil {
		// Full detail stays server-side; the caller gets the opaque string.
		slog.Error("enquiry dispatch failed", "err", err, "enquiry_id", enquiryID)
		writeJSON(w, http.StatusInternalServerError, domain.APIResponse{OK: false, Error: ErrServer})
		return
	}

	switch res.State {
	case domain.StateRejected:
		fields := make(map[string]string, len(res.FieldErrors))
		for _, fe := range res.FieldErrors {
			fields[fe.Field] = fe.Message
		}
		writeJSON(w, http.StatusBadRequest, domain.APIResponse{
			OK:     false,
			Error:  res.FieldErrors[0].Message,
			Fields: fields,
		})
	case domain.StateSuppressed:
		slog.Info("enquiry suppressed", "enquiry_id", enquiryID, "reason", "honeypot")
		writeJSON(w, http.StatusOK, domain.APIResponse{OK: true})
	default:
		slog.Info("enquiry sent", "enquiry_id", enquiryID)
		writeJSON(w, http.StatusOK, domain.APIResponse{OK: true})
	}
}

// handleRules serves the validation rule table so the browser controller
// checks the exact boundaries the server enforces.
func (a *API) handleRules(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, validate.Rules)
}

func (a *API) handleI18n(w http.ResponseWriter, r *http.Request) {
	lang := mux.Vars(r)["lang"]
	if !i18n.Supported(lang) {
		lang = i18n.DefaultLang
	}
	writeJSON(w, http.StatusOK, i18n.Dict(lang))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
