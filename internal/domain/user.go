package domain

// User is the authenticated account as reported by the backend.
type User struct {
	ID    string
	Name  string
	Email string
	Role  Role
}

// DemoUser returns the synthetic agent identity substituted system-wide while
// demo mode is on. Callers must never see the real user in that state.
func DemoUser() *User {
	return &User{
		ID:    "demo-agent",
		Name:  "Alex Demo",
		Email: "demo@trusthome.app",
		Role:  RoleAgent,
	}
}
