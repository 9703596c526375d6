package handlers

import "net/http"

// pathParam reads a named path segment. pat exposes segments as ":name"
// query values; the net/http mux exposes them through PathValue.
func pathParam(r *http.Request, name string) string {
	if val := r.URL.Query().Get(":" + name); val != "" {
		return val
	}
	return r.PathValue(name)
}
