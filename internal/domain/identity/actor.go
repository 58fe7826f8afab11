package identity

import (
	"github.com/google/uuid"

	"github.com/lmsales/backend/internal/domain/shared"
)

// Actor is the authenticated caller, passed explicitly into every
// application-service call. Nothing in the core reads ambient auth state.
type Actor struct {
	UserID   uuid.UUID
	Username string
	Role     Role
	StoreID  *uuid.UUID // nil for admins
}

// ResolveStore returns the store an operation applies to. Admins must name
// a store explicitly; store users always operate on their own store, and a
// requested ID other than their own is rejected.
func (a Actor) ResolveStore(requested *uuid.UUID) (uuid.UUID, error) {
	if a.Role == RoleAdmin {
		if requested == nil || *requested == uuid.Nil {
			return uuid.Nil, shared.ErrStoreRequired
		}
		return *requested, nil
	}
	if a.StoreID == nil {
		return uuid.Nil, shared.ErrStoreRequired
	}
	if requested != nil && *requested != uuid.Nil && *requested != *a.StoreID {
		return uuid.Nil, shared.ErrForbidden
	}
	return *a.StoreID, nil
}

// RequireAdmin rejects non-admin callers.
func (a Actor) RequireAdmin() error {
	if a.Role != RoleAdmin {
		return shared.ErrForbidden
	}
	return nil
}
