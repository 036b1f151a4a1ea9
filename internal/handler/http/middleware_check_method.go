// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler meant for [chi.Mux.MethodNotAllowed].
//
// chi answers 405 when a path matches but the method does not. The vault API
// answers 404 instead, so a client probing with the wrong verb learns nothing
// about which routes exist. Parameterised routes such as /files/{id} are
// resolved through [chi.Mux.Match].
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if !router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			writeError(w, r, http.StatusNotFound, http.StatusText(http.StatusNotFound))
			return
		}

		router.ServeHTTP(w, r)
	}
}
