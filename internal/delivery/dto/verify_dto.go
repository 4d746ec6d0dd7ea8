package dto

// Verify responses are flat (no envelope): they are the wire contract the
// appointment service's client parses, and they deliberately expose nothing
// beyond existence and id.

type VerifyResponse struct {
	Exists bool   `json:"exists"`
	ID     uint   `json:"id,omitempty"`
	Error  string `json:"error,omitempty"`
}

type VerifyTokenResponse struct {
	Valid    bool   `json:"valid"`
	UserID   uint   `json:"user_id,omitempty"`
	Username string `json:"username,omitempty"`
	Rol      string `json:"rol,omitempty"`
	Error    string `json:"error,omitempty"`
}
