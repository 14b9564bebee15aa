// Package httpjson holds the request/response helpers shared by all API
// handlers: JSON encoding, bounded body decoding, and the single place where
// the apperr taxonomy is mapped onto HTTP status codes.
package httpjson

import (
	"encoding/json"
	"net/http"

	"github.com/salesboard/salesboard/internal/app/system/apperr"
	"go.uber.org/zap"
)

// maxBodyBytes bounds request bodies. Avatars arrive as data URIs, so the
// cap is generous but finite.
const maxBodyBytes = 2 << 20 // 2 MiB

// Write encodes v as JSON with the given status.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Decode reads a JSON body into dst, rejecting unknown junk sizes and
// malformed payloads as validation errors.
func Decode(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return apperr.Validation("invalid request body")
	}
	return nil
}

// Error writes err as a JSON error response. Validation, precondition, and
// not-found messages are surfaced to the caller; everything else is logged
// and returned as a generic 500 body.
func Error(w http.ResponseWriter, logger *zap.Logger, err error) {
	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError && logger != nil {
		logger.Error("request failed", zap.Error(err))
	}
	Write(w, status, map[string]string{"error": apperr.Message(err)})
}
