package repositories

import (
	"database/sql"
	"sync"
	"testing"

	"inventory-system/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	db, err := database.Open("file:" + name + "?mode=memory&cache=shared&_busy_timeout=5000")
	require.NoError(t, err)
	// Serialize writes at the pool level; sqlite shared-cache in-memory
	// databases do not tolerate concurrent writers.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestUserRepositoryCreateAndLookup(t *testing.T) {
	db := openTestDB(t, "userrepo")
	repo := NewUserRepository(db)

	user := &database.User{
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		Role:         database.RoleUser,
	}
	require.NoError(t, repo.Create(user))
	assert.NotZero(t, user.ID)

	byName, err := repo.GetByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byName.ID)
	assert.Equal(t, "alice@example.com", byName.Email)
	assert.Nil(t, byName.LastLogin)

	byID, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	_, err = repo.GetByUsername("nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepositoryDuplicateUsername(t *testing.T) {
	db := openTestDB(t, "userdup")
	repo := NewUserRepository(db)

	first := &database.User{Username: "bob", PasswordHash: "h", Role: database.RoleUser}
	require.NoError(t, repo.Create(first))

	second := &database.User{Username: "bob", PasswordHash: "h2", Role: database.RoleUser}
	assert.ErrorIs(t, repo.Create(second), ErrDuplicateUsername)
}

func TestUserRepositoryConcurrentDuplicateRegistration(t *testing.T) {
	db := openTestDB(t, "userrace")
	repo := NewUserRepository(db)

	// Two simultaneous registrations for the same username must resolve to
	// exactly one success; the unique index decides the loser.
	var wg sync.WaitGroup
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			user := &database.User{Username: "dup_test", PasswordHash: "h", Role: database.RoleUser}
			results <- repo.Create(user)
		}()
	}
	wg.Wait()
	close(results)

	var successes, duplicates int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case err == ErrDuplicateUsername:
			duplicates++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, duplicates)
}

func TestUserRepositoryUpdateLastLoginAndList(t *testing.T) {
	db := openTestDB(t, "userlist")
	repo := NewUserRepository(db)

	admin := &database.User{Username: "root", PasswordHash: "h", Role: database.RoleAdmin}
	require.NoError(t, repo.Create(admin))
	user := &database.User{Username: "carol", PasswordHash: "h", Role: database.RoleUser}
	require.NoError(t, repo.Create(user))

	require.NoError(t, repo.UpdateLastLogin(user.ID))
	updated, err := repo.GetByID(user.ID)
	require.NoError(t, err)
	assert.NotNil(t, updated.LastLogin)

	admins, err := repo.ListUsers(database.RoleAdmin, 10, 0)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, "root", admins[0].Username)

	all, err := repo.ListUsers("", 10, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
