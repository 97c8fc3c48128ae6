package api

import (
	"encoding/json"
	"net/http"
)

// Error codes carried in the {msg, code} envelope.
const (
	codeInvalidAPIKey  = 40101
	codeInvalidRequest = 40001
	codeNotFound       = 40401
	codeInternal       = 50001
)

type errorEnvelope struct {
	Msg  string `json:"msg"`
	Code int    `json:"code"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string, code int) {
	writeJSON(w, status, errorEnvelope{Msg: msg, Code: code})
}
