package request

import "strings"

// SyncEndpointRequest configures the spreadsheet mirror URL. An empty url
// disables sync.
type SyncEndpointRequest struct {
	URL string `json:"url"`
}

func (r SyncEndpointRequest) ResolveURL() string {
	return strings.TrimSpace(r.URL)
}
