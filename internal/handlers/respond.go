package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"lawmanBack/internal/models"
)

const maxBodyBytes = 1 << 20

// outcome holds the messages one mutation reports.
type outcome struct {
	good     string
	bad      string
	notFound string
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// The status line is already out; a failed encode only means the
	// client went away.
	_ = json.NewEncoder(w).Encode(v)
}

func WriteEnvelope(w http.ResponseWriter, status int, env models.Envelope) {
	writeJSON(w, status, env)
}

// ServerError logs err and answers with the generic failure envelope.
func ServerError(w http.ResponseWriter, r *http.Request, err error) {
	zerolog.Ctx(r.Context()).Error().Err(err).Str("uri", r.URL.RequestURI()).Msg("request failed")
	WriteEnvelope(w, http.StatusInternalServerError, models.Bad("Internal Server Error."))
}

var errTrailingData = errors.New("unexpected data after JSON body")

// decodeJSON reads exactly one JSON value from the body.
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}

func isInputError(err error) bool {
	return errors.Is(err, models.ErrInvalidID) ||
		errors.Is(err, models.ErrInvalidLimit) ||
		errors.Is(err, models.ErrInvalidField) ||
		errors.Is(err, models.ErrEmptyPatch)
}

// invalidRequest answers 400. Only input errors are described to the
// client; decoder errors are logged.
func invalidRequest(w http.ResponseWriter, r *http.Request, err error) {
	msg := "Invalid Request."
	if isInputError(err) {
		msg = "Invalid Request: " + strings.TrimPrefix(err.Error(), "models: ") + "."
	} else if err != nil {
		zerolog.Ctx(r.Context()).Debug().Err(err).Str("uri", r.URL.RequestURI()).Msg("malformed body")
	}
	WriteEnvelope(w, http.StatusBadRequest, models.Bad(msg))
}

// fail maps a domain error to a response. Unacknowledged writes are not
// HTTP errors: they answer 200 with the "bad" envelope.
func fail(w http.ResponseWriter, r *http.Request, err error, o outcome) {
	switch {
	case errors.Is(err, models.ErrNotAcknowledged):
		WriteEnvelope(w, http.StatusOK, models.Bad(o.bad))
	case errors.Is(err, models.ErrNoRecord):
		WriteEnvelope(w, http.StatusNotFound, models.Bad(o.notFound))
	case errors.Is(err, models.ErrForbidden):
		WriteEnvelope(w, http.StatusForbidden, models.Bad("Forbidden Access."))
	case isInputError(err):
		invalidRequest(w, r, err)
	default:
		ServerError(w, r, err)
	}
}
