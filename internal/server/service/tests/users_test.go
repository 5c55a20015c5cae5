package tests

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zoobzio/tracez"
	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-userdir/internal/server/service"
	"github.com/IvanChernomyrdin/go-userdir/internal/server/service/mocks"
	serr "github.com/IvanChernomyrdin/go-userdir/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-userdir/internal/shared/logger"
	"github.com/IvanChernomyrdin/go-userdir/internal/shared/models"
)

// spanRecorder собирает завершённые спаны для проверок.
type spanRecorder struct {
	mu    sync.Mutex
	spans []tracez.Span
}

func (r *spanRecorder) record(span tracez.Span) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.spans = append(r.spans, span)
}

func (r *spanRecorder) byName(name string) (tracez.Span, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.spans {
		if s.Name == name {
			return s, true
		}
	}
	return tracez.Span{}, false
}

func newUsersService(t *testing.T) (*service.UsersService, *mocks.MockUsersRepo, *spanRecorder) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockUsersRepo(ctrl)

	tracer := tracez.New()
	t.Cleanup(tracer.Close)

	rec := &spanRecorder{}
	tracer.OnSpanComplete(rec.record)

	svc := service.NewUsersService(repo, tracer, logger.NewHTTPLogger())
	return svc, repo, rec
}

func TestUsersService_List_OK(t *testing.T) {
	t.Parallel()

	svc, repo, rec := newUsersService(t)

	want := []models.User{
		{ID: 1, Name: "Alice", Email: "alice@example.com"},
		{ID: 2, Name: "Bob", Email: "bob@example.com"},
	}
	repo.EXPECT().List(gomock.Any()).Return(want, nil)

	got, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, want, got)

	span, ok := rec.byName("users.list")
	require.True(t, ok, "expected users.list span")
	require.Equal(t, "2", span.Tags["user.count"])
}

func TestUsersService_List_StoreUnavailable(t *testing.T) {
	t.Parallel()

	svc, repo, rec := newUsersService(t)

	repo.EXPECT().List(gomock.Any()).Return(nil, serr.ErrStoreUnavailable)

	_, err := svc.List(context.Background())
	require.ErrorIs(t, err, serr.ErrStoreUnavailable)

	span, ok := rec.byName("users.list")
	require.True(t, ok)
	require.NotEmpty(t, span.Tags["error"])
}

func TestUsersService_Get_Found(t *testing.T) {
	t.Parallel()

	svc, repo, rec := newUsersService(t)

	want := models.User{ID: 3, Name: "Carol", Email: "carol@example.com"}
	repo.EXPECT().Get(gomock.Any(), uint32(3)).Return(want, nil)

	got, err := svc.Get(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, want, got)

	span, ok := rec.byName("users.get")
	require.True(t, ok)
	require.Equal(t, "3", span.Tags["user.id"])
}

func TestUsersService_Get_NotFound(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newUsersService(t)

	repo.EXPECT().Get(gomock.Any(), uint32(99)).Return(models.User{}, serr.ErrNotFound)

	_, err := svc.Get(context.Background(), 99)
	require.ErrorIs(t, err, serr.ErrNotFound)
}

func TestUsersService_Create_OK(t *testing.T) {
	t.Parallel()

	svc, repo, rec := newUsersService(t)

	want := models.User{ID: 3, Name: "Carol", Email: "carol@example.com"}
	repo.EXPECT().
		Create(gomock.Any(), "Carol", "carol@example.com").
		Return(want, nil)

	got, err := svc.Create(context.Background(), "Carol", "carol@example.com")
	require.NoError(t, err)
	require.Equal(t, want, got)

	span, ok := rec.byName("users.create")
	require.True(t, ok)
	require.Equal(t, "3", span.Tags["user.id"])
}

func TestUsersService_Create_StoreUnavailable(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newUsersService(t)

	repo.EXPECT().
		Create(gomock.Any(), "Carol", "carol@example.com").
		Return(models.User{}, serr.ErrStoreUnavailable)

	_, err := svc.Create(context.Background(), "Carol", "carol@example.com")
	require.ErrorIs(t, err, serr.ErrStoreUnavailable)
}
