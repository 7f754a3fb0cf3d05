package execution

// ExecuteRequest represents a free-form code execution request
type ExecuteRequest struct {
	Code    string `json:"code"`
	Stdin   string `json:"stdin,omitempty"`
	Timeout int    `json:"timeout,omitempty"` // seconds; 0 means server default
}
