package models

// RespondRequest is the JSON body accepted by the respond API.
type RespondRequest struct {
	Input string `json:"input"`
}

// RespondResponse contains the answer to one input.
type RespondResponse struct {
	Input     string   `json:"input"`
	Source    string   `json:"source"`
	Terms     []string `json:"terms,omitempty"`
	Responses []string `json:"responses"`
}

// SuggestResponse contains autocomplete suggestions for a prefix.
type SuggestResponse struct {
	Prefix      string   `json:"prefix"`
	Suggestions []string `json:"suggestions"`
}

// TermsResponse lists the terms of both rule sets.
type TermsResponse struct {
	Healthcare []string `json:"healthcare"`
	General    []string `json:"general"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Provider string `json:"provider"`
}
