package snapshot

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteStore_LoadMissingKey(t *testing.T) {
	s, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer s.Close()

	v, err := s.Load(context.Background(), "erp_invoices")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestSQLiteStore_SaveOverwrites(t *testing.T) {
	s, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer s.Close()
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "erp_trips", []byte(`[{"id":"t1"}]`)))
	require.NoError(t, s.Save(ctx, "erp_trips", []byte(`[]`)))

	v, err := s.Load(ctx, "erp_trips")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(v))
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "erp.db")
	ctx := context.Background()

	s1, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s1.Save(ctx, "erp_users", []byte(`[{"id":"u1"}]`)))
	require.NoError(t, s1.Close())

	s2, err := OpenSQLite(path)
	require.NoError(t, err)
	defer s2.Close()

	v, err := s2.Load(ctx, "erp_users")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"u1"}]`, string(v))
}
