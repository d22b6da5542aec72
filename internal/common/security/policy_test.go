package security

import (
	"context"
	"sync"
	"testing"

	"galaxy_api/internal/common"
	"galaxy_api/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserRepo is an in-memory stand-in for the credential store.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]model.User // keyed by email
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]model.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.users[user.Email]; exists {
		return common.ErrConflict
	}
	user.ID = int64(len(f.users) + 1)
	f.users[user.Email] = *user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id int64) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			out := u
			return &out, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[email]; ok {
		out := u
		return &out, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeUserRepo) Update(ctx context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for email, u := range f.users {
		if u.ID == user.ID {
			delete(f.users, email)
			f.users[user.Email] = *user
			return nil
		}
	}
	return common.ErrNotFound
}

func (f *fakeUserRepo) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for email, u := range f.users {
		if u.ID == id {
			delete(f.users, email)
			return nil
		}
	}
	return common.ErrNotFound
}

func (f *fakeUserRepo) setRole(email string, role model.Role) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u := f.users[email]
	u.Role = role
	f.users[email] = u
}

func seedUser(t *testing.T, repo *fakeUserRepo, email string, role model.Role) *model.User {
	t.Helper()
	user := &model.User{Email: email, FullName: "Josef Stalhard", Role: role}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

func TestDominates_HierarchyMatrix(t *testing.T) {
	roles := []model.Role{model.RoleReader, model.RoleWriter, model.RoleEditor, model.RoleAdmin}
	rank := map[model.Role]int{
		model.RoleReader: 0,
		model.RoleWriter: 1,
		model.RoleEditor: 2,
		model.RoleAdmin:  3,
	}

	for _, actual := range roles {
		for _, required := range roles {
			want := rank[actual] >= rank[required]
			assert.Equalf(t, want, Dominates(actual, required),
				"Dominates(%s, %s)", actual, required)
		}
	}
}

func TestDominates_InvalidDominatesNothing(t *testing.T) {
	for _, required := range []model.Role{model.RoleReader, model.RoleWriter, model.RoleEditor, model.RoleAdmin, model.RoleInvalid} {
		assert.False(t, Dominates(model.RoleInvalid, required))
	}
}

func TestAuthorize_AllowReturnsUser(t *testing.T) {
	initTestKey(t)
	repo := newFakeUserRepo()
	seedUser(t, repo, "editor@galaxy.gov", model.RoleEditor)
	policy := NewPolicy(repo)

	claims := issueClaims(t, repo, "editor@galaxy.gov")

	user, err := policy.Authorize(context.Background(), claims, model.RoleWriter)
	require.NoError(t, err)
	assert.Equal(t, "editor@galaxy.gov", user.Email)
	assert.Equal(t, model.RoleEditor, user.Role)
}

func TestAuthorize_DenyInsufficientRole(t *testing.T) {
	initTestKey(t)
	repo := newFakeUserRepo()
	seedUser(t, repo, "reader@galaxy.gov", model.RoleReader)
	policy := NewPolicy(repo)

	claims := issueClaims(t, repo, "reader@galaxy.gov")

	_, err := policy.Authorize(context.Background(), claims, model.RoleAdmin)
	assert.ErrorIs(t, err, common.ErrUnauthorized)
	assert.Contains(t, err.Error(), "READER")
	assert.Contains(t, err.Error(), "ADMIN")
}

func TestAuthorize_SubjectVanished(t *testing.T) {
	initTestKey(t)
	repo := newFakeUserRepo()
	user := seedUser(t, repo, "ghost@galaxy.gov", model.RoleAdmin)
	policy := NewPolicy(repo)

	claims := issueClaims(t, repo, "ghost@galaxy.gov")
	require.NoError(t, repo.Delete(context.Background(), user.ID))

	_, err := policy.Authorize(context.Background(), claims, model.RoleReader)
	assert.ErrorIs(t, err, common.ErrUnauthorized)
}

// A demoted user's outstanding token must not retain the old privileges.
func TestAuthorize_DemotionUsesCurrentRole(t *testing.T) {
	initTestKey(t)
	repo := newFakeUserRepo()
	seedUser(t, repo, "fallen@galaxy.gov", model.RoleAdmin)
	policy := NewPolicy(repo)

	claims := issueClaims(t, repo, "fallen@galaxy.gov")
	require.Equal(t, "ADMIN", claims.Role)

	repo.setRole("fallen@galaxy.gov", model.RoleReader)

	_, err := policy.Authorize(context.Background(), claims, model.RoleEditor)
	assert.ErrorIs(t, err, common.ErrUnauthorized)

	// READER-level access still works on the same token.
	user, err := policy.Authorize(context.Background(), claims, model.RoleReader)
	require.NoError(t, err)
	assert.Equal(t, model.RoleReader, user.Role)
}

func TestAuthorize_DenyIsIdempotent(t *testing.T) {
	initTestKey(t)
	repo := newFakeUserRepo()
	seedUser(t, repo, "steady@galaxy.gov", model.RoleWriter)
	policy := NewPolicy(repo)

	claims := issueClaims(t, repo, "steady@galaxy.gov")

	_, first := policy.Authorize(context.Background(), claims, model.RoleAdmin)
	_, second := policy.Authorize(context.Background(), claims, model.RoleAdmin)
	require.Error(t, first)
	require.Error(t, second)
	assert.Equal(t, first.Error(), second.Error())
}

// issueClaims runs a real issue/verify round-trip for the given stored user.
func issueClaims(t *testing.T, repo *fakeUserRepo, email string) *Claims {
	t.Helper()
	user, err := repo.FindByEmail(context.Background(), email)
	require.NoError(t, err)
	token, err := GenerateToken(user)
	require.NoError(t, err)
	claims, err := ParseAuthorizationHeader("Bearer " + token)
	require.NoError(t, err)
	return claims
}
