package models

// ValueResponse is the wire shape of a single configuration value.
type ValueResponse struct {
	Value any `json:"value"`
}

// ValuesResponse is the wire shape of every value of an environment.
type ValuesResponse struct {
	Values map[string]any `json:"values"`
}

// ErrorResponse is returned by the local API on failure.
type ErrorResponse struct {
	Error string `json:"error"`
}
