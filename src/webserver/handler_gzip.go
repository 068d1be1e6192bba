package webserver

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
)

// Custom writer to make our webserver gzip output when possible.
type gzipResponseWriter struct {
	io.Writer
	http.ResponseWriter
}

// Write sends b through the gzip stream. Handlers set their Content-Type
// before writing, see webutils.JSONResponse.
func (w gzipResponseWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

// GzipHandler gzips the output of the wrapped handler when the client accepts
// gzip. Otherwise it does nothing.
type GzipHandler struct {
	wrapped http.Handler
}

// ServeHTTP satisfies the http.Handler interface
func (gzh GzipHandler) ServeHTTP(writer http.ResponseWriter, req *http.Request) {
	writer.Header().Add("Vary", "Accept-Encoding")

	if !strings.Contains(req.Header.Get("Accept-Encoding"), "gzip") {
		gzh.wrapped.ServeHTTP(writer, req)
		return
	}

	writer.Header().Set("Content-Encoding", "gzip")
	gz := gzip.NewWriter(writer)
	defer gz.Close()
	gzr := gzipResponseWriter{Writer: gz, ResponseWriter: writer}
	gzh.wrapped.ServeHTTP(gzr, req)
}

// NewGzipHandler returns GzipHandler which will gzip anything written in the
// supplied handler.
func NewGzipHandler(handler http.Handler) http.Handler {
	return &GzipHandler{
		wrapped: handler,
	}
}
