package server

import (
	"mime"
	"net/http"
	"strings"
)

const (
	// DefaultAPIVersion is served when the client does not ask for one.
	DefaultAPIVersion = "v1"

	// APIVersionHeader carries the negotiated version on every response.
	APIVersionHeader = "X-API-Version"

	vendorMediaPrefix = "application/vnd.coapi.validator."
	vendorMediaSuffix = "+json"
)

var supportedAPIVersions = map[string]struct{}{
	"v1": {},
}

// negotiateAPIVersion picks the version from an Accept header such as
// application/vnd.coapi.validator.v1+json. Unsupported or malformed requests
// get the default.
func negotiateAPIVersion(r *http.Request) string {
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mt, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		if !strings.HasPrefix(mt, vendorMediaPrefix) || !strings.HasSuffix(mt, vendorMediaSuffix) {
			continue
		}
		v := strings.TrimSuffix(strings.TrimPrefix(mt, vendorMediaPrefix), vendorMediaSuffix)
		if isValidAPIVersion(v) {
			return v
		}
	}
	return DefaultAPIVersion
}

func isValidAPIVersion(v string) bool {
	_, ok := supportedAPIVersions[v]
	return ok
}
