package webserver

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ironsmile/qruuid/src/capacity"
	"github.com/ironsmile/qruuid/src/webserver/webutils"
)

// API endpoints.
const (
	EndpointGenerate      = "/v1/uuid"
	EndpointEncode        = "/v1/encode"
	EndpointDecode        = "/v1/decode"
	EndpointCapacity      = "/v1/capacity"
	EndpointCapacityTable = "/v1/capacity/{level}"
)

// NewRouter returns the handler serving every API endpoint. Capacity requests
// which do not name a level use defaultLevel.
func NewRouter(defaultLevel capacity.Level) http.Handler {
	router := mux.NewRouter()
	router.StrictSlash(true)

	router.Handle(EndpointGenerate, NewGenerateHandler()).Methods(http.MethodGet)
	router.Handle(EndpointEncode, NewEncodeHandler()).Methods(http.MethodGet)
	router.Handle(EndpointDecode, NewDecodeHandler()).Methods(http.MethodGet)
	router.Handle(EndpointCapacity, NewCapacityHandler(defaultLevel)).Methods(http.MethodGet)
	router.Handle(EndpointCapacityTable, NewCapacityTableHandler()).Methods(http.MethodGet)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		webutils.JSONError(w, "Not found.", http.StatusNotFound)
	})

	return router
}
