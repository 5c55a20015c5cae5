package tests

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-userdir/internal/server/repository"
	serr "github.com/IvanChernomyrdin/go-userdir/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-userdir/internal/shared/models"
)

func TestNewUsersRepository_Seeds(t *testing.T) {
	t.Parallel()

	repo := repository.NewUsersRepository()

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, []models.User{
		{ID: 1, Name: "Alice", Email: "alice@example.com"},
		{ID: 2, Name: "Bob", Email: "bob@example.com"},
	}, users)
}

// идентификаторы растут строго на 1, начиная с max(seed)+1
func TestCreate_MonotonicIDs(t *testing.T) {
	t.Parallel()

	repo := repository.NewUsersRepository()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		u, err := repo.Create(ctx, "Carol", "carol@example.com")
		require.NoError(t, err)
		require.Equal(t, uint32(3+i), u.ID)
	}
}

// два вызова с одинаковыми данными — две разные записи
func TestCreate_NotIdempotent(t *testing.T) {
	t.Parallel()

	repo := repository.NewUsersRepository()
	ctx := context.Background()

	u1, err := repo.Create(ctx, "Carol", "carol@example.com")
	require.NoError(t, err)
	u2, err := repo.Create(ctx, "Carol", "carol@example.com")
	require.NoError(t, err)

	require.NotEqual(t, u1.ID, u2.ID)
	require.Equal(t, u1.Name, u2.Name)
	require.Equal(t, u1.Email, u2.Email)
}

func TestGet_ReadYourWrite(t *testing.T) {
	t.Parallel()

	repo := repository.NewUsersRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, "Carol", "carol@example.com")
	require.NoError(t, err)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, got)
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()

	repo := repository.NewUsersRepository()

	_, err := repo.Get(context.Background(), 99)
	require.ErrorIs(t, err, serr.ErrNotFound)
}

// List возвращает все записи без пропусков и дублей, в порядке создания
func TestList_CompleteAndOrdered(t *testing.T) {
	t.Parallel()

	repo := repository.NewUsersRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, "Carol", "carol@example.com")
	require.NoError(t, err)
	_, err = repo.Create(ctx, "Dave", "dave@example.com")
	require.NoError(t, err)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 4)

	seen := make(map[uint32]bool, len(users))
	for i, u := range users {
		require.Equal(t, uint32(i+1), u.ID, "insertion order must match id order here")
		require.False(t, seen[u.ID], "duplicate id %d", u.ID)
		seen[u.ID] = true
	}
}

// копия из List не даёт менять внутреннее состояние хранилища
func TestList_ReturnsCopy(t *testing.T) {
	t.Parallel()

	repo := repository.NewUsersRepository()
	ctx := context.Background()

	users, err := repo.List(ctx)
	require.NoError(t, err)
	users[0].Name = "Mallory"

	again, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, "Alice", again[0].Name)
}

// N конкурентных Create получают различные id без пропусков
func TestCreate_ConcurrentLinearizable(t *testing.T) {
	t.Parallel()

	const n = 100

	repo := repository.NewUsersRepository()
	ctx := context.Background()

	ids := make(chan uint32, n)
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			u, err := repo.Create(ctx, "worker", "worker@example.com")
			if err != nil {
				t.Errorf("Create: %v", err)
				return
			}
			ids <- u.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[uint32]bool, n)
	for id := range ids {
		require.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	require.Len(t, seen, n)
	// непрерывный диапазон 3..n+2
	for id := uint32(3); id <= uint32(n+2); id++ {
		require.True(t, seen[id], "missing id %d", id)
	}
}

// после Close все операции отдают ErrStoreUnavailable, не ErrNotFound
func TestClose_StoreUnavailable(t *testing.T) {
	t.Parallel()

	repo := repository.NewUsersRepository()
	ctx := context.Background()

	repo.Close()
	repo.Close() // повторный вызов безопасен

	_, err := repo.List(ctx)
	require.ErrorIs(t, err, serr.ErrStoreUnavailable)

	_, err = repo.Get(ctx, 1)
	require.ErrorIs(t, err, serr.ErrStoreUnavailable)
	require.False(t, errors.Is(err, serr.ErrNotFound))

	_, err = repo.Create(ctx, "Carol", "carol@example.com")
	require.ErrorIs(t, err, serr.ErrStoreUnavailable)
}
