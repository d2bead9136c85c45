package domain

import "time"

// User is an acting agent. Password is an opaque secret compared only by
// equality; the sheet it historically lived in stored it in clear, so no
// hashing scheme is assumed here.
type User struct {
	ID          int64     `db:"id" json:"id"`
	DisplayName string    `db:"display_name" json:"nomAgent"`
	Login       string    `db:"login" json:"login"`
	Password    string    `db:"password" json:"-"`
	Assignment  string    `db:"assignment" json:"centreAffectation"`
	CreatedAt   time.Time `db:"created_at" json:"-"`
	UpdatedAt   time.Time `db:"updated_at" json:"-"`
}

// ScopeKind tags the visibility variant. Keeping this a closed tagged
// type (instead of comparing assignment strings at every use site) means
// a renamed center cannot silently widen anyone's scope.
type ScopeKind int

const (
	// ScopeVisitor reads everything but cannot personalize filters.
	ScopeVisitor ScopeKind = iota
	// ScopeAgent is pinned to one center.
	ScopeAgent
	// ScopeSupervisor chooses any center or all of them.
	ScopeSupervisor
)

// Scope is the resolved visibility of an acting principal. It is a pure
// function of the user (ScopeFor) and changes only when the user does.
type Scope struct {
	Kind   ScopeKind
	Center string // set only for ScopeAgent
	Admin  bool   // headquarters: may manage users
}

// ScopeFor resolves a user's visibility scope. A nil user is a visitor.
// The two sentinels both grant supervisor visibility; headquarters
// additionally grants user administration.
func ScopeFor(u *User) Scope {
	if u == nil {
		return Scope{Kind: ScopeVisitor}
	}
	switch u.Assignment {
	case HeadquartersSentinel:
		return Scope{Kind: ScopeSupervisor, Admin: true}
	case AllCentersSentinel:
		return Scope{Kind: ScopeSupervisor}
	}
	return Scope{Kind: ScopeAgent, Center: u.Assignment}
}
