package entities

// APIResponse is the generic envelope the backend returns for mutating
// operations. Login is the exception: it returns the user object directly,
// optionally accompanied by a session token.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	User    *User  `json:"user,omitempty"`
}
