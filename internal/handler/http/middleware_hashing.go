// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/help-me-shop/internal/logger"
	"github.com/MKhiriev/help-me-shop/internal/utils"
)

// hashHeader carries the hex HMAC-SHA256 of the request body, keyed with the
// secret shared with the login front-end.
const hashHeader = "HashSHA256"

// verifyHashing rejects requests whose body does not match the HashSHA256
// header. The body is restored for the next handler.
func (h *Handler) verifyHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		sum := r.Header.Get(hashHeader)
		if sum == "" {
			log.Debug().Str("func", "*Handler.verifyHashing").Msg("request is not signed")
			utils.WriteError(w, ErrMissingHash.Error(), http.StatusBadRequest)
			return
		}

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			log.Err(err).Str("func", "*Handler.verifyHashing").Msg("failed to read request body")
			utils.WriteError(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		if !utils.VerifyHash(body, sum) {
			log.Warn().Str("func", "*Handler.verifyHashing").
				Str("hash from request", sum).
				Msg("hashes are not equal")
			utils.WriteError(w, ErrIntegrityCheckFailed.Error(), http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
