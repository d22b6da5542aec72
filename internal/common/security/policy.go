package security

import (
	"context"
	"errors"
	"fmt"

	"galaxy_api/internal/common"
	"galaxy_api/internal/domain/model"
	"galaxy_api/internal/domain/repository"
)

// roleHierarchy maps each role to the set of roles it dominates (itself and
// below). Built once at package init and never mutated; RoleInvalid has no
// entry and therefore dominates nothing.
var roleHierarchy = map[model.Role][]model.Role{
	model.RoleAdmin:  {model.RoleAdmin, model.RoleEditor, model.RoleWriter, model.RoleReader},
	model.RoleEditor: {model.RoleEditor, model.RoleWriter, model.RoleReader},
	model.RoleWriter: {model.RoleWriter, model.RoleReader},
	model.RoleReader: {model.RoleReader},
}

// Dominates reports whether a holder of role actual may act as required.
func Dominates(actual, required model.Role) bool {
	for _, r := range roleHierarchy[actual] {
		if r == required {
			return true
		}
	}
	return false
}

// Policy decides allow/deny for verified claims against a required role.
// It is stateless apart from the user store; safe for concurrent use.
type Policy struct {
	users repository.UserRepository
}

func NewPolicy(users repository.UserRepository) *Policy {
	return &Policy{users: users}
}

// Authorize resolves the claims subject to a persisted user and allows the
// request iff that user's CURRENT role dominates required. The role embedded
// in the token is deliberately ignored: a demoted user's outstanding tokens
// lose the old privileges on their very next request. On allow the
// looked-up user is returned so handlers avoid a second store round-trip.
func (p *Policy) Authorize(ctx context.Context, claims *Claims, required model.Role) (*model.User, error) {
	user, err := p.users.FindByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("user from token claims no longer exists: %w", common.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to resolve user from claims: %w", err)
	}

	if !Dominates(user.Role, required) {
		return nil, fmt.Errorf("current role of %s does not have access to %s: %w",
			user.Role, required, common.ErrUnauthorized)
	}
	return user, nil
}
