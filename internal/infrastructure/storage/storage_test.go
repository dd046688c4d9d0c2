package storage

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NolanFinn/Check-Splitter/internal/domain/check"
	"github.com/NolanFinn/Check-Splitter/internal/domain/engine"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	store, err := NewStorage(filepath.Join(t.TempDir(), "snapshots.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStorage_SaveAndLoadSnapshot(t *testing.T) {
	store := newTestStorage(t)

	c := check.Default()
	require.NoError(t, c.AddPerson("Alice", false))
	item, err := c.AddItem("Pizza", 1, 10.00)
	require.NoError(t, err)
	require.NoError(t, c.SetSurcharges(1.25, 3.00, 0))
	require.NoError(t, c.SetPayer("Alice"))

	require.NoError(t, store.SaveSnapshot(c))

	loaded, err := store.LoadSnapshot()
	require.NoError(t, err)

	assert.Equal(t, []string{"Me", "Alice"}, loaded.People)
	assert.Equal(t, "Alice", loaded.Payer)
	assert.Equal(t, 1.25, loaded.TaxAmount)
	assert.Equal(t, 3.00, loaded.TipAmount)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, item.ID, loaded.Items[0].ID)
	assert.Equal(t, "Pizza", loaded.Items[0].Description)
	assert.Equal(t, []string{"Me"}, loaded.Assignments[item.ID])
}

func TestStorage_LoadSnapshot_MissingRowReturnsDefault(t *testing.T) {
	store := newTestStorage(t)

	loaded, err := store.LoadSnapshot()
	require.NoError(t, err)

	assert.Equal(t, []string{check.DefaultPerson}, loaded.People)
	assert.Equal(t, check.DefaultPerson, loaded.Payer)
	assert.Empty(t, loaded.Items)
}

func TestStorage_LoadSnapshot_MalformedBlobReturnsDefault(t *testing.T) {
	store := newTestStorage(t)

	_, err := store.db.Exec(
		`INSERT INTO snapshots (key, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)`,
		SnapshotKey, "{not valid json",
	)
	require.NoError(t, err)

	loaded, err := store.LoadSnapshot()
	require.NoError(t, err)
	assert.Equal(t, []string{check.DefaultPerson}, loaded.People)
}

func TestStorage_LoadSnapshot_ShallowMergeOverDefaults(t *testing.T) {
	store := newTestStorage(t)

	// Blob with only some top-level fields present: the rest fall back
	// to defaults.
	partial := `{"taxAmount": 2.50, "people": ["Ana", "Bo"]}`
	_, err := store.db.Exec(
		`INSERT INTO snapshots (key, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)`,
		SnapshotKey, partial,
	)
	require.NoError(t, err)

	loaded, err := store.LoadSnapshot()
	require.NoError(t, err)

	assert.Equal(t, 2.50, loaded.TaxAmount)
	assert.Equal(t, []string{"Ana", "Bo"}, loaded.People)
	// Payer was absent and the default "Me" is no longer a member, so
	// normalization moves it to the first person.
	assert.Equal(t, "Ana", loaded.Payer)
	assert.Empty(t, loaded.Items)
}

func TestStorage_LoadSnapshot_RepairsDirtyState(t *testing.T) {
	store := newTestStorage(t)

	// Hand-edited blob: an assignee who is not a member, a negative
	// price, and a zero quantity.
	dirty := `{
		"items": [{"id": "i1", "description": "Pizza", "quantity": 0, "price": -10.01}],
		"people": ["Alice"],
		"payer": "Alice",
		"assignments": {"i1": ["Alice", "Ghost"]}
	}`
	_, err := store.db.Exec(
		`INSERT INTO snapshots (key, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)`,
		SnapshotKey, dirty,
	)
	require.NoError(t, err)

	loaded, err := store.LoadSnapshot()
	require.NoError(t, err)

	assert.Equal(t, []string{"Alice"}, loaded.Assignments["i1"])
	assert.Equal(t, 0.0, loaded.Items[0].Price)
	assert.Equal(t, 1, loaded.Items[0].Quantity)

	// Every cent of the repaired check lands on a known person.
	result := engine.Compute(loaded)
	var owed int64
	for _, p := range loaded.People {
		owed += result.TotalByPerson[p]
	}
	assert.Equal(t, result.TotalCents, owed)
}

func TestStorage_LastWriteWins(t *testing.T) {
	store := newTestStorage(t)

	first := check.Default()
	_, err := first.AddItem("Salad", 1, 8.00)
	require.NoError(t, err)
	require.NoError(t, store.SaveSnapshot(first))

	second := check.Default()
	_, err = second.AddItem("Burger", 2, 24.00)
	require.NoError(t, err)
	require.NoError(t, store.SaveSnapshot(second))

	loaded, err := store.LoadSnapshot()
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, "Burger", loaded.Items[0].Description)
}

func TestStorage_MigrationsApplyInVersionOrder(t *testing.T) {
	orig := allMigrations
	t.Cleanup(func() { allMigrations = orig })

	var order []int
	noop := func(version int) Migration {
		return Migration{
			Version: version,
			Name:    fmt.Sprintf("noop_%03d", version),
			Up: func(*sql.Tx) error {
				order = append(order, version)
				return nil
			},
		}
	}

	// Listed out of order on purpose.
	allMigrations = []Migration{noop(3), orig[0], noop(2)}

	store, err := NewStorage(filepath.Join(t.TempDir(), "snapshots.db"))
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, []int{2, 3}, order)
}

func TestStorage_MigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshots.db")

	store, err := NewStorage(path)
	require.NoError(t, err)
	require.NoError(t, store.SaveSnapshot(check.Default()))
	require.NoError(t, store.Close())

	// Reopening runs migrations again; the existing snapshot survives.
	store, err = NewStorage(path)
	require.NoError(t, err)
	defer store.Close()

	loaded, err := store.LoadSnapshot()
	require.NoError(t, err)
	assert.Equal(t, []string{check.DefaultPerson}, loaded.People)
}
