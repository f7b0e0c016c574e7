package sqlite

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/goserg/bizness/internal/session"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBackend(t *testing.T, file string) *Backend {
	t.Helper()
	l := logrus.New()
	l.SetOutput(io.Discard)
	b, err := New(l, file)
	require.NoError(t, err)
	return b
}

func TestBackend_Slot(t *testing.T) {
	ctx := context.Background()
	b := newBackend(t, filepath.Join(t.TempDir(), "session.sqlite"))
	defer b.Close()

	_, err := b.Get(ctx, "k")
	assert.ErrorIs(t, err, session.ErrNotFound)

	require.NoError(t, b.Set(ctx, "k", []byte("first")))
	require.NoError(t, b.Set(ctx, "k", []byte("second")))
	got, err := b.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got)

	require.NoError(t, b.Delete(ctx, "k"))
	_, err = b.Get(ctx, "k")
	assert.ErrorIs(t, err, session.ErrNotFound)

	require.NoError(t, b.Delete(ctx, "k"))
}

func TestBackend_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	file := filepath.Join(t.TempDir(), "session.sqlite")

	b := newBackend(t, file)
	require.NoError(t, b.Set(ctx, "k", []byte(`{"id":"x"}`)))
	require.NoError(t, b.Close())

	b = newBackend(t, file)
	defer b.Close()
	got, err := b.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"id":"x"}`), got)
}
