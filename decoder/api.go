package decoder

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alovak/vinflow-playground/decoder/models"
	"github.com/go-chi/chi/v5"
)

// API is a HTTP API for the decoder service
type API struct {
	decoder *Service
}

func NewAPI(decoder *Service) *API {
	return &API{
		decoder: decoder,
	}
}

func (a *API) AppendRoutes(r chi.Router) {
	r.Route("/vins/{code}", func(r chi.Router) {
		r.Get("/", a.decodeVIN)
		r.Get("/valid", a.validateVIN)
		r.Get("/extended", a.extendedInfo)
	})
}

func (a *API) decodeVIN(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	decoded := a.decoder.Decode(code)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(decoded)
}

func (a *API) validateVIN(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	result := models.ValidationResult{
		VIN:   code,
		Valid: a.decoder.Validate(code),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}

func (a *API) extendedInfo(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	info, err := a.decoder.Extended(r.Context(), code)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
		} else {
			http.Error(w, err.Error(), http.StatusBadGateway)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(info)
}
