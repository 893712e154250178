package ebooks

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	backend_mocks "github.com/johnbooks/admin-gateway/internal/backend/mocks"
	"github.com/johnbooks/admin-gateway/internal/domain"
)

type nopNotifier struct{ failures []string }

func (n *nopNotifier) Success(context.Context, string) {}
func (n *nopNotifier) Error(_ context.Context, msg string) { n.failures = append(n.failures, msg) }

func TestLoadAndSearch(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := backend_mocks.NewMockAPI(ctrl)
	store := NewStore(api, &nopNotifier{}, zap.NewNop())
	ctx := context.Background()

	api.EXPECT().ListEbooks(ctx).Return([]domain.Ebook{
		{ID: "1", Title: "Foo"},
		{ID: "2", Title: "Bar"},
	}, nil)
	store.Load(ctx)
	require.Len(t, store.Ebooks(), 2)
	assert.False(t, store.Loading())

	// case-insensitive local filter, no refetch
	matched := store.Search("foo")
	require.Len(t, matched, 1)
	assert.Equal(t, "Foo", matched[0].Title)

	assert.Len(t, store.Search(""), 2)
	assert.Empty(t, store.Search("qux"))
}

func TestLoadFailureNotifies(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := backend_mocks.NewMockAPI(ctrl)
	notifier := &nopNotifier{}
	store := NewStore(api, notifier, zap.NewNop())
	ctx := context.Background()

	api.EXPECT().ListEbooks(ctx).Return(nil, errors.New("backend down"))
	store.Load(ctx)

	assert.Empty(t, store.Ebooks())
	assert.Equal(t, []string{"Failed to load ebooks."}, notifier.failures)
	assert.False(t, store.Loading())
}
