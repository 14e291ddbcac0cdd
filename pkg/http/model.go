package http

// APIResponse is the body of every JSON response.
type APIResponse struct {
	Status  int         `json:"status" example:"200"`
	Message string      `json:"message" example:"OK"`
	Data    interface{} `json:"data,omitempty"`
}

// ValidationError describes one rejected input field.
type ValidationError struct {
	Code    string                 `json:"code,omitempty" example:"ERR_LTE"`
	Field   string                 `json:"field,omitempty" example:"globals.discount_rate"`
	Message string                 `json:"message,omitempty" example:"globals.discount_rate must be less than or equal to 0.3"`
	Params  map[string]interface{} `json:"params,omitempty"`
}
