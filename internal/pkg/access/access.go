package access

// Role is the caller's role as carried in the JWT.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleEditor Role = "EDITOR"
	RoleGuest  Role = "GUEST"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleGuest:
		return true
	}
	return false
}

// Caller is the authenticated identity every service operation receives.
type Caller struct {
	ID   string
	Role Role
}

// IsAdmin reports whether the caller has the admin role.
func (c Caller) IsAdmin() bool { return c.Role == RoleAdmin }

// CanApprove reports whether the caller may approve or reject posts.
func (c Caller) CanApprove() bool {
	return c.Role == RoleAdmin || c.Role == RoleEditor
}

// Owns is the single ownership predicate: admins own everything, everyone
// else owns only entities whose owner field matches their id.
func (c Caller) Owns(ownerID string) bool {
	return c.IsAdmin() || ownerID == c.ID
}

// OwnsEither covers entities with two owner-like references (e.g. a todo's
// creator and assignee).
func (c Caller) OwnsEither(a, b string) bool {
	return c.IsAdmin() || a == c.ID || b == c.ID
}

// Scope restricts list and aggregate reads. A zero UserID with All set means
// no restriction; otherwise rows are filtered to the owning user. The
// analytics aggregator reuses the same scope the owning domain applies, so
// both always agree on visibility.
type Scope struct {
	All    bool
	UserID string
}

// ScopeFor derives the read scope for a caller: admins see everything,
// everyone else only their own rows.
func ScopeFor(c Caller) Scope {
	if c.IsAdmin() {
		return Scope{All: true}
	}
	return Scope{UserID: c.ID}
}
