package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/bharathj0204/AI-Powered-Healthcare-System-sub001/internal/apperrors"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func readBodyJSON(r *http.Request, maxBytes int64, out any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBytes))
	if err != nil {
		return err
	}
	if len(body) == 0 {
		return errors.New("empty body")
	}
	return json.Unmarshal(body, out)
}

// statusForError 错误分类 → HTTP 状态码
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrMalformedInput), errors.Is(err, apperrors.ErrOutOfDomain):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusForError(err), Fail(err.Error()))
}
