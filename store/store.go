// Package store keeps named checkpoints of Networks in a SQLite database. Each checkpoint holds the
// encoding from the 'persist' package, along with the ID of the Network it came from.
package store

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	nn "github.com/LazureLeming/object-oriented-neural-network"
	"github.com/LazureLeming/object-oriented-neural-network/persist"
)

// ErrNotFound is returned by Get and Delete when there is no checkpoint with the given name
var ErrNotFound = errors.New("checkpoint not found")

// Store is a database of checkpoints. It is safe for concurrent use.
type Store struct {
	db *sql.DB
}

// Entry describes a single checkpoint, without its contents
type Entry struct {
	Name      string
	NetworkID uuid.UUID
	Layers    []int
	Saved     time.Time
}

const schema = `
	CREATE TABLE IF NOT EXISTS checkpoints(
		name TEXT PRIMARY KEY,
		network_id TEXT NOT NULL,
		layers TEXT NOT NULL,
		saved INTEGER NOT NULL,
		data BLOB NOT NULL
	)`

// Open opens the database at 'path', creating it if necessary. The path ":memory:" gives a
// database that lasts until Close.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "Opening database %s failed\n", path)
	}

	// every connection to ":memory:" is a separate database
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	} else if _, err = db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "Setting journal mode of %s failed\n", path)
	}

	if _, err = db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "Creating tables in %s failed\n", path)
	}

	return &Store{db}, nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// Put saves the Network as the checkpoint with the given name, replacing any checkpoint already
// there.
func (s *Store) Put(ctx context.Context, name string, net *nn.Network) error {
	if net == nil {
		return errors.Errorf("Can't save checkpoint %q, Network is nil", name)
	}

	data, err := persist.Marshal(net)
	if err != nil {
		return errors.Wrapf(err, "Encoding checkpoint %q failed\n", name)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO checkpoints(name, network_id, layers, saved, data) VALUES(?,?,?,?,?)
		ON CONFLICT(name) DO UPDATE SET
			network_id=excluded.network_id,
			layers=excluded.layers,
			saved=excluded.saved,
			data=excluded.data`,
		name, net.ID().String(), formatLayers(net.LayerSizes()), time.Now().UnixNano(), data)
	if err != nil {
		return errors.Wrapf(err, "Writing checkpoint %q failed\n", name)
	}

	return nil
}

// Get returns a new Network built from the checkpoint with the given name. If there is no such
// checkpoint, the cause of the error is ErrNotFound.
func (s *Store) Get(ctx context.Context, name string) (*nn.Network, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, "SELECT data FROM checkpoints WHERE name=?", name).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, errors.Wrapf(ErrNotFound, "name %q", name)
	} else if err != nil {
		return nil, errors.Wrapf(err, "Reading checkpoint %q failed\n", name)
	}

	net, err := persist.Unmarshal(data)
	if err != nil {
		return nil, errors.Wrapf(err, "Decoding checkpoint %q failed\n", name)
	}

	return net, nil
}

// Delete removes the checkpoint with the given name
func (s *Store) Delete(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM checkpoints WHERE name=?", name)
	if err != nil {
		return errors.Wrapf(err, "Deleting checkpoint %q failed\n", name)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errors.Wrapf(ErrNotFound, "name %q", name)
	}

	return nil
}

// List returns every checkpoint in the Store, most recently saved first
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name, network_id, layers, saved FROM checkpoints ORDER BY saved DESC, name")
	if err != nil {
		return nil, errors.Wrapf(err, "Listing checkpoints failed\n")
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var id, layers string
		var saved int64

		if err = rows.Scan(&e.Name, &id, &layers, &saved); err != nil {
			return nil, errors.Wrapf(err, "Reading checkpoint list failed\n")
		}

		if e.NetworkID, err = uuid.Parse(id); err != nil {
			return nil, errors.Wrapf(err, "Checkpoint %q has a bad network ID\n", e.Name)
		}

		if e.Layers, err = parseLayers(layers); err != nil {
			return nil, errors.Wrapf(err, "Checkpoint %q has bad layer sizes\n", e.Name)
		}

		e.Saved = time.Unix(0, saved)
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "Listing checkpoints failed\n")
	}

	return entries, nil
}

// formatLayers gives layer sizes as a comma-separated list, for example "2,1"
func formatLayers(sizes []int) string {
	strs := make([]string, len(sizes))
	for i, s := range sizes {
		strs[i] = strconv.Itoa(s)
	}

	return strings.Join(strs, ",")
}

func parseLayers(str string) ([]int, error) {
	if str == "" {
		return nil, nil
	}

	strs := strings.Split(str, ",")
	sizes := make([]int, len(strs))
	for i, s := range strs {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, err
		}
		sizes[i] = n
	}

	return sizes, nil
}
