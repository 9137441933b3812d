package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/veldt-labs/canopy-cli/internal/core/domain"
	"github.com/veldt-labs/canopy-cli/internal/core/ports/driven"
)

// jsonNull is the JSON representation of null.
const jsonNull = "null"

// Store is a SQLite-backed article store. One store serves any number of
// article tables; every method takes the table name explicitly.
//
// Read paths leave Article.Embedding nil. The stored vector only matters
// inside the distance function, so queries never ship it back out.
type Store struct {
	db   *sql.DB
	path string
}

var _ driven.ArticleStore = (*Store)(nil)

// tableNamePattern restricts table names to plain identifiers, since
// table names cannot travel as bound parameters.
var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// NewStore opens (creating if needed) the database at path. If path is
// empty, it defaults to ~/.canopy/data/canopy.db.
func NewStore(path string) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, ".canopy", "data", "canopy.db")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	// Register before opening so every connection sees the function.
	registerVectorFunctions()

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	return &Store{
		db:   db,
		path: path,
	}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// CreateTable ensures the article table and its indexes exist. It is
// idempotent and safe to run on every startup. The embedding column is
// sized to dimensions via a length check, so the table rejects vectors
// of any other dimensionality, and re-running with different dimensions
// leaves an existing table unchanged.
func (s *Store) CreateTable(ctx context.Context, table string, dimensions int) error {
	if err := validateTable(table); err != nil {
		return err
	}
	if dimensions <= 0 {
		return fmt.Errorf("%w: dimensions must be positive, got %d", domain.ErrInvalidInput, dimensions)
	}

	ddl := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			slug TEXT NOT NULL UNIQUE,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			folder TEXT NOT NULL DEFAULT 'root',
			tags TEXT NOT NULL DEFAULT '[]',
			embedding BLOB NOT NULL CHECK (length(embedding) = %d),
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)
	`, table, dimensions*4)

	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("creating table %s: %w", table, err)
	}

	indexes := []string{
		fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_embedding ON %s(embedding)", table, table),
		fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_folder ON %s(folder)", table, table),
		fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_slug ON %s(slug)", table, table),
	}
	for _, ddl := range indexes {
		if _, err := s.db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("creating index on %s: %w", table, err)
		}
	}

	return nil
}

// Clear removes every article from the table.
func (s *Store) Clear(ctx context.Context, table string) error {
	if err := validateTable(table); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", table)); err != nil {
		return fmt.Errorf("clearing table %s: %w", table, err)
	}
	return nil
}

// InsertArticle stores a new article and fills in its assigned ID. A slug
// collision returns domain.ErrDuplicateSlug.
func (s *Store) InsertArticle(ctx context.Context, table string, article *domain.Article) error {
	if err := validateTable(table); err != nil {
		return err
	}

	if article.Folder == "" {
		article.Folder = domain.RootFolder
	}
	if article.Tags == nil {
		article.Tags = []string{}
	}

	tagsJSON, err := json.Marshal(article.Tags)
	if err != nil {
		return fmt.Errorf("marshalling tags: %w", err)
	}

	now := time.Now().UTC()
	if article.CreatedAt.IsZero() {
		article.CreatedAt = now
	}
	article.UpdatedAt = now

	result, err := s.db.ExecContext(ctx, fmt.Sprintf(`
		INSERT INTO %s (slug, title, content, folder, tags, embedding, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, table), article.Slug, article.Title, article.Content, article.Folder,
		string(tagsJSON), encodeEmbedding(article.Embedding),
		article.CreatedAt, article.UpdatedAt)

	if err != nil {
		var sqliteErr *sqlite.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateSlug, article.Slug)
		}
		return fmt.Errorf("inserting article %s: %w", article.Slug, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading inserted id: %w", err)
	}
	article.ID = id

	return nil
}

// SearchSimilar returns up to limit articles ranked by ascending cosine
// distance to the query vector.
func (s *Store) SearchSimilar(ctx context.Context, table string, query []float32, limit int) ([]domain.RankedArticle, error) {
	if err := validateTable(table); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = domain.DefaultSearchLimit
	}

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT id, slug, title, content, folder, tags,
			%s(embedding, ?) AS distance,
			created_at, updated_at
		FROM %s
		WHERE embedding IS NOT NULL
		ORDER BY distance ASC
		LIMIT ?
	`, distanceFunction, table), encodeEmbedding(query), limit)
	if err != nil {
		return nil, fmt.Errorf("querying similar articles: %w", err)
	}
	defer rows.Close()

	results := []domain.RankedArticle{}
	for rows.Next() {
		var ranked domain.RankedArticle
		var tagsJSON string
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(&ranked.ID, &ranked.Slug, &ranked.Title, &ranked.Content,
			&ranked.Folder, &tagsJSON, &ranked.Distance, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning ranked article: %w", err)
		}

		if err := applyScanned(&ranked.Article, tagsJSON, createdAt, updatedAt); err != nil {
			return nil, err
		}
		results = append(results, ranked)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating ranked articles: %w", err)
	}

	return results, nil
}

// GetAllArticles returns the table's articles ordered by title.
func (s *Store) GetAllArticles(ctx context.Context, table string) ([]domain.Article, error) {
	if err := validateTable(table); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT id, slug, title, content, folder, tags, created_at, updated_at
		FROM %s
		ORDER BY title ASC
	`, table))
	if err != nil {
		return nil, fmt.Errorf("querying articles: %w", err)
	}
	defer rows.Close()

	return scanArticles(rows)
}

// GetArticleBySlug returns the article with the given slug, or
// domain.ErrNotFound when no row matches.
func (s *Store) GetArticleBySlug(ctx context.Context, table, slug string) (*domain.Article, error) {
	if err := validateTable(table); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT id, slug, title, content, folder, tags, created_at, updated_at
		FROM %s
		WHERE slug = ?
	`, table), slug)

	var article domain.Article
	var tagsJSON string
	var createdAt, updatedAt sql.NullTime
	if err := row.Scan(&article.ID, &article.Slug, &article.Title, &article.Content,
		&article.Folder, &tagsJSON, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: article %s", domain.ErrNotFound, slug)
		}
		return nil, fmt.Errorf("scanning article: %w", err)
	}

	if err := applyScanned(&article, tagsJSON, createdAt, updatedAt); err != nil {
		return nil, err
	}

	return &article, nil
}

// GetArticlesByFolder returns the folder's articles ordered by title. An
// unknown folder yields an empty slice, not an error.
func (s *Store) GetArticlesByFolder(ctx context.Context, table, folder string) ([]domain.Article, error) {
	if err := validateTable(table); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT id, slug, title, content, folder, tags, created_at, updated_at
		FROM %s
		WHERE folder = ?
		ORDER BY title ASC
	`, table), folder)
	if err != nil {
		return nil, fmt.Errorf("querying articles by folder: %w", err)
	}
	defer rows.Close()

	return scanArticles(rows)
}

// GetFolders returns the distinct folder names present in the table,
// sorted alphabetically.
func (s *Store) GetFolders(ctx context.Context, table string) ([]string, error) {
	if err := validateTable(table); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT DISTINCT folder FROM %s ORDER BY folder ASC
	`, table))
	if err != nil {
		return nil, fmt.Errorf("querying folders: %w", err)
	}
	defer rows.Close()

	folders := []string{}
	for rows.Next() {
		var folder string
		if err := rows.Scan(&folder); err != nil {
			return nil, fmt.Errorf("scanning folder: %w", err)
		}
		folders = append(folders, folder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating folders: %w", err)
	}

	return folders, nil
}

// validateTable rejects table names that are not plain identifiers.
func validateTable(table string) error {
	if !tableNamePattern.MatchString(table) {
		return fmt.Errorf("%w: invalid table name %q", domain.ErrInvalidInput, table)
	}
	return nil
}

// scanArticles collects article rows sharing the standard column order.
func scanArticles(rows *sql.Rows) ([]domain.Article, error) {
	articles := []domain.Article{}
	for rows.Next() {
		var article domain.Article
		var tagsJSON string
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(&article.ID, &article.Slug, &article.Title, &article.Content,
			&article.Folder, &tagsJSON, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning article: %w", err)
		}

		if err := applyScanned(&article, tagsJSON, createdAt, updatedAt); err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating articles: %w", err)
	}

	return articles, nil
}

// applyScanned finishes a scanned article: tags JSON becomes a never-nil
// slice and nullable timestamps collapse to zero values.
func applyScanned(article *domain.Article, tagsJSON string, createdAt, updatedAt sql.NullTime) error {
	article.Tags = []string{}
	if tagsJSON != "" && tagsJSON != jsonNull {
		if err := json.Unmarshal([]byte(tagsJSON), &article.Tags); err != nil {
			return fmt.Errorf("unmarshalling tags: %w", err)
		}
		if article.Tags == nil {
			article.Tags = []string{}
		}
	}

	if createdAt.Valid {
		article.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		article.UpdatedAt = updatedAt.Time
	}

	return nil
}
