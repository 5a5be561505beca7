// Package middleware validates JSON request bodies with a compiled
// jtval.Validator before they reach a handler.
package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/reoring/jtval"
	"github.com/reoring/jtval/internal/jsonvalue"
)

// Outcome is the batch partition of a request body.
type Outcome struct {
	Correct  []jtval.Document `json:"correct"`
	Failures []jtval.Failure  `json:"errors"`
}

type ctxKeyOutcome struct{}

// ContextWithOutcome attaches an Outcome to the context.
func ContextWithOutcome(ctx context.Context, o Outcome) context.Context {
	return context.WithValue(ctx, ctxKeyOutcome{}, o)
}

// OutcomeFromContext retrieves the Outcome stored by ValidateBody.
func OutcomeFromContext(ctx context.Context) (Outcome, bool) {
	o, ok := ctx.Value(ctxKeyOutcome{}).(Outcome)
	return o, ok
}

// ErrorPayload shapes failures for JSON responses.
func ErrorPayload(failures []jtval.Failure) map[string]any {
	return map[string]any{"failures": failures}
}

type config struct {
	rejectInvalid bool
	maxBytes      int64
}

// Option configures ValidateBody.
type Option func(*config)

// RejectInvalid answers 422 with ErrorPayload when any item is invalid,
// instead of calling the next handler.
func RejectInvalid() Option { return func(c *config) { c.rejectInvalid = true } }

// DefaultMaxBytes is the body limit used when MaxBytes is not given.
const DefaultMaxBytes = 8 << 20

// MaxBytes limits the request body size. The default is DefaultMaxBytes.
func MaxBytes(n int64) Option { return func(c *config) { c.maxBytes = n } }

// DecodeBody reads at most limit bytes of the request body as one JSON value.
// On failure the response has already been written (413 when the body is too
// large, 400 otherwise) and ok is false.
func DecodeBody(w http.ResponseWriter, r *http.Request, limit int64) (data jtval.Document, ok bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return nil, false
		}
		http.Error(w, "cannot read request body", http.StatusBadRequest)
		return nil, false
	}
	data, err = jsonvalue.Decode(body)
	if err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return nil, false
	}
	return data, true
}

// ValidateBody decodes the request body (one object or an array of items),
// validates it with v and stores the Outcome in the request context.
func ValidateBody(v *jtval.Validator, opts ...Option) func(http.Handler) http.Handler {
	cfg := config{maxBytes: DefaultMaxBytes}
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			data, ok := DecodeBody(w, r, cfg.maxBytes)
			if !ok {
				return
			}
			correct, failures, err := v.Validate(r.Context(), data)
			if err != nil {
				// raise-on-error validators report the first failure only
				var ve *jtval.ValidationError
				if errors.As(err, &ve) {
					WriteJSON(w, http.StatusUnprocessableEntity, ErrorPayload([]jtval.Failure{{
						Failing: ve.Item, Message: ve.Message, Issues: ve.Issues,
					}}))
					return
				}
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			if cfg.rejectInvalid && len(failures) > 0 {
				WriteJSON(w, http.StatusUnprocessableEntity, ErrorPayload(failures))
				return
			}
			out := Outcome{Correct: correct, Failures: failures}
			next.ServeHTTP(w, r.WithContext(ContextWithOutcome(r.Context(), out)))
		})
	}
}

// WriteJSON writes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
