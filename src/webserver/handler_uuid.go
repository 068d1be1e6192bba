package webserver

import (
	"encoding/hex"
	"fmt"
	"net/http"

	"github.com/pborman/uuid"

	"github.com/ironsmile/qruuid/src/uuid45"
	"github.com/ironsmile/qruuid/src/webserver/webutils"
)

type uuidResponse struct {
	UUID  string `json:"uuid"`
	Code  string `json:"code"`
	Bytes string `json:"bytes,omitempty"`
}

// NewGenerateHandler returns a handler which responds with a new random v4
// UUID and its code.
func NewGenerateHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid45.New()
		code, err := uuid45.Encode(id)
		if err != nil {
			errMsg := fmt.Sprintf("Error encoding UUID: %s.", err)
			webutils.JSONError(w, errMsg, http.StatusInternalServerError)
			return
		}

		webutils.JSONResponse(w, uuidResponse{
			UUID: id.String(),
			Code: code,
		})
	})
}

// NewEncodeHandler returns a handler which encodes the UUID given in the
// "uuid" query value.
func NewEncodeHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("uuid")
		if raw == "" {
			webutils.JSONError(w, "Missing uuid query value.", http.StatusBadRequest)
			return
		}

		id, err := uuid45.ParseInput(raw)
		if err != nil {
			webutils.JSONError(w, err.Error(), http.StatusBadRequest)
			return
		}

		code := uuid45.EncodeBytes(id)
		decoded, err := uuid45.DecodeString(code)
		if err != nil {
			errMsg := fmt.Sprintf("Error decoding the produced code: %s.", err)
			webutils.JSONError(w, errMsg, http.StatusInternalServerError)
			return
		}

		webutils.JSONResponse(w, uuidResponse{
			UUID: decoded,
			Code: code,
		})
	})
}

// NewDecodeHandler returns a handler which decodes the code given in the
// "code" query value.
func NewDecodeHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			webutils.JSONError(w, "Missing code query value.", http.StatusBadRequest)
			return
		}

		raw, err := uuid45.DecodeBytes(code)
		if err != nil {
			webutils.JSONError(w, err.Error(), http.StatusBadRequest)
			return
		}

		webutils.JSONResponse(w, uuidResponse{
			UUID:  uuid.UUID(raw[:]).String(),
			Code:  code,
			Bytes: hex.EncodeToString(raw[:]),
		})
	})
}
