package webserver

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ironsmile/qruuid/src/capacity"
	"github.com/ironsmile/qruuid/src/webserver/webutils"
)

type capacityResponse struct {
	Level    string `json:"level"`
	Length   int    `json:"length"`
	Version  int    `json:"version"`
	Bits     int    `json:"bits"`
	Capacity int    `json:"capacity"`
}

type tableResponse struct {
	Level      string `json:"level"`
	Capacities []int  `json:"capacities"`
}

// CapacityHandler resolves the minimal symbol version for a payload. The
// payload is given either as its length in the "length" query value or as
// the payload itself in "text". The level defaults to the configured one.
type CapacityHandler struct {
	defaultLevel capacity.Level
}

// NewCapacityHandler returns a new CapacityHandler which uses defaultLevel
// when the request does not name one.
func NewCapacityHandler(defaultLevel capacity.Level) *CapacityHandler {
	return &CapacityHandler{defaultLevel: defaultLevel}
}

// ServeHTTP implements the http.Handler interface.
func (h *CapacityHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	level := h.defaultLevel
	if name := query.Get("level"); name != "" {
		var err error
		level, err = capacity.ParseLevel(name)
		if err != nil {
			webutils.JSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	length, err := payloadLength(query.Get("length"), query.Get("text"), query.Has("text"))
	if err != nil {
		webutils.JSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	version, err := capacity.MinimalVersion(length, level)
	if errors.Is(err, capacity.ErrCapacityExceeded) {
		webutils.JSONError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	} else if err != nil {
		webutils.JSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	limit, err := capacity.Capacity(level, version)
	if err != nil {
		webutils.JSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	webutils.JSONResponse(w, capacityResponse{
		Level:    level.String(),
		Length:   length,
		Version:  version,
		Bits:     capacity.BitCost(length, version),
		Capacity: limit,
	})
}

func payloadLength(rawLength, text string, hasText bool) (int, error) {
	if hasText {
		if !capacity.IsAlphanumeric(text) {
			return 0, errors.New("text contains characters outside the QR alphanumeric set")
		}
		return len(text), nil
	}

	if rawLength == "" {
		return 0, errors.New("one of length or text query values is required")
	}

	length, err := strconv.Atoi(rawLength)
	if err != nil || length < 0 {
		return 0, fmt.Errorf("length must be a non-negative integer, got %q", rawLength)
	}
	return length, nil
}

// NewCapacityTableHandler returns a handler which responds with the full
// capacity row for the level in the "level" route variable.
func NewCapacityTableHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		level, err := capacity.ParseLevel(vars["level"])
		if err != nil {
			webutils.JSONError(w, err.Error(), http.StatusNotFound)
			return
		}

		row, err := capacity.Capacities(level)
		if err != nil {
			webutils.JSONError(w, err.Error(), http.StatusInternalServerError)
			return
		}
		webutils.JSONResponse(w, tableResponse{
			Level:      level.String(),
			Capacities: row,
		})
	})
}
