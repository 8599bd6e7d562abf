package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/arbor/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/arbor/internal/core/domain"
	"github.com/custodia-labs/arbor/internal/core/ports/driven"
)

// Store is a SQLite-based storage that provides access to the node and
// collection stores through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.arbor/data/arbor.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".arbor", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "arbor.db")

	// WAL mode lets readers proceed while a write is in progress.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// NodeStore returns a NodeStore interface backed by this store.
func (s *Store) NodeStore() driven.NodeStore {
	return &nodeStore{store: s}
}

// CollectionStore returns a CollectionStore interface backed by this store.
func (s *Store) CollectionStore() driven.CollectionStore {
	return &collectionStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_initial.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}

		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if err := s.applyMigration(version, string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// applyMigration runs one migration and records its version atomically.
func (s *Store) applyMigration(version int, content string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.Exec(content); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
		return err
	}
	return tx.Commit()
}

// ==================== Node Store ====================

// nodeStore implements driven.NodeStore.
type nodeStore struct {
	store *Store
}

var _ driven.NodeStore = (*nodeStore)(nil)

const upsertNodeSQL = `
	INSERT INTO nodes (id, collection_id, parent_id, title, uri, position, metadata, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(collection_id, id) DO UPDATE SET
		parent_id = excluded.parent_id,
		title = excluded.title,
		uri = excluded.uri,
		position = excluded.position,
		metadata = excluded.metadata,
		updated_at = excluded.updated_at
`

const selectNodeSQL = `
	SELECT id, collection_id, parent_id, title, uri, position, metadata, created_at, updated_at
	FROM nodes`

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Save stores or updates a node. Updates keep the original insertion order.
func (s *nodeStore) Save(ctx context.Context, node *domain.Node) error {
	return saveNode(ctx, s.store.db, node)
}

// SaveBatch stores or updates several nodes in one transaction.
func (s *nodeStore) SaveBatch(ctx context.Context, nodes []domain.Node) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for i := range nodes {
		if err := saveNode(ctx, tx, &nodes[i]); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func saveNode(ctx context.Context, db execer, node *domain.Node) error {
	metadataJSON, err := json.Marshal(node.Metadata)
	if err != nil {
		return fmt.Errorf("marshalling metadata: %w", err)
	}

	_, err = db.ExecContext(ctx, upsertNodeSQL,
		node.ID, node.CollectionID, node.ParentID, node.Title, node.URI,
		node.Position, string(metadataJSON), node.CreatedAt, node.UpdatedAt)
	if err != nil {
		return fmt.Errorf("saving node %s: %w", node.ID, err)
	}
	return nil
}

// Get retrieves a node by collection and ID.
func (s *nodeStore) Get(ctx context.Context, collectionID, id string) (*domain.Node, error) {
	row := s.store.db.QueryRowContext(ctx,
		selectNodeSQL+" WHERE collection_id = ? AND id = ?", collectionID, id)
	return scanNode(row)
}

// Delete removes a node. Its children are left in place.
func (s *nodeStore) Delete(ctx context.Context, collectionID, id string) error {
	_, err := s.store.db.ExecContext(ctx,
		"DELETE FROM nodes WHERE collection_id = ? AND id = ?", collectionID, id)
	if err != nil {
		return fmt.Errorf("deleting node: %w", err)
	}
	return nil
}

// DeleteCollection removes every node in a collection.
func (s *nodeStore) DeleteCollection(ctx context.Context, collectionID string) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM nodes WHERE collection_id = ?", collectionID)
	if err != nil {
		return fmt.Errorf("deleting nodes: %w", err)
	}
	return nil
}

// List returns the nodes of a collection ordered by position, then by
// insertion order.
func (s *nodeStore) List(ctx context.Context, collectionID string) ([]domain.Node, error) {
	rows, err := s.store.db.QueryContext(ctx,
		selectNodeSQL+" WHERE collection_id = ? ORDER BY position, seq", collectionID)
	if err != nil {
		return nil, fmt.Errorf("querying nodes: %w", err)
	}
	defer rows.Close()

	var nodes []domain.Node //nolint:prealloc // size unknown from query
	for rows.Next() {
		node, err := scanNode(rows)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, *node)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating nodes: %w", err)
	}

	return nodes, nil
}

// ==================== Collection Store ====================

// collectionStore implements driven.CollectionStore.
type collectionStore struct {
	store *Store
}

var _ driven.CollectionStore = (*collectionStore)(nil)

// Save stores or updates a collection.
func (s *collectionStore) Save(ctx context.Context, collection domain.Collection) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO collections (id, name, description, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description
	`, collection.ID, collection.Name, collection.Description, collection.CreatedAt)
	if err != nil {
		return fmt.Errorf("saving collection: %w", err)
	}
	return nil
}

// Get retrieves a collection by ID.
func (s *collectionStore) Get(ctx context.Context, id string) (*domain.Collection, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, name, description, created_at FROM collections WHERE id = ?
	`, id)

	var c domain.Collection
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning collection: %w", err)
	}
	return &c, nil
}

// List returns all collections ordered by name.
func (s *collectionStore) List(ctx context.Context) ([]domain.Collection, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, name, description, created_at FROM collections ORDER BY name, id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying collections: %w", err)
	}
	defer rows.Close()

	var collections []domain.Collection //nolint:prealloc // size unknown from query
	for rows.Next() {
		var c domain.Collection
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning collection: %w", err)
		}
		collections = append(collections, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating collections: %w", err)
	}

	return collections, nil
}

// Delete removes a collection. Remaining nodes are removed by cascade.
func (s *collectionStore) Delete(ctx context.Context, id string) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM collections WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting collection: %w", err)
	}
	return nil
}

// ==================== Scan Helpers ====================

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanNode(row scanner) (*domain.Node, error) {
	var node domain.Node
	var metadataJSON string

	if err := row.Scan(&node.ID, &node.CollectionID, &node.ParentID, &node.Title, &node.URI,
		&node.Position, &metadataJSON, &node.CreatedAt, &node.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning node: %w", err)
	}

	if metadataJSON != "" && metadataJSON != "null" {
		if err := json.Unmarshal([]byte(metadataJSON), &node.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshaling metadata: %w", err)
		}
	}

	return &node, nil
}
