package types

// ErrorResponse is the uniform error body: {"error": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// DummyRejection is the distinguished soft rejection for bookings against
// seeded demo accounts. Clients branch on the Dummy flag.
type DummyRejection struct {
	Dummy   bool   `json:"dummy"`
	Message string `json:"message"`
}

// RegisterResponse is the user summary returned on successful registration.
type RegisterResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginResponse carries the bearer token.
type LoginResponse struct {
	Token string `json:"token"`
}
