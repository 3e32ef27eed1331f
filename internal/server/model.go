package server

// WorkflowRequest is the body of POST /v1/workflows. Input values may be
// strings or JSON numbers; both are normalized to strings before parsing.
type WorkflowRequest struct {
	WorkflowID string                 `json:"workflow_id"`
	Inputs     map[string]interface{} `json:"inputs"`
}

// WorkflowResponse wraps a successful result
type WorkflowResponse struct {
	Result interface{} `json:"result"`
}

// ErrorResponse is returned with every non-2xx status
type ErrorResponse struct {
	Error string `json:"error"`
}
