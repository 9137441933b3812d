package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/veldt-labs/canopy-cli/internal/core/domain"
	"github.com/veldt-labs/canopy-cli/internal/core/ports/driven"
	"github.com/veldt-labs/canopy-cli/internal/core/ports/driving"
	"github.com/veldt-labs/canopy-cli/internal/logger"
)

// Ensure IndexerService implements the interface.
var _ driving.IndexService = (*IndexerService)(nil)

// IndexerService builds the article index from a content tree. Each run
// replaces the table's rows wholesale; there is no incremental diffing.
type IndexerService struct {
	scanner driven.ContentScanner
	parser  driven.DocumentParser
	store   driven.ArticleStore
	factory driven.EmbeddingFactory
}

// NewIndexerService creates a new indexer service.
func NewIndexerService(
	scanner driven.ContentScanner,
	parser driven.DocumentParser,
	store driven.ArticleStore,
	factory driven.EmbeddingFactory,
) *IndexerService {
	return &IndexerService{
		scanner: scanner,
		parser:  parser,
		store:   store,
		factory: factory,
	}
}

// EnsureTable creates the article table and its indexes if absent.
func (s *IndexerService) EnsureTable(ctx context.Context, table string, dimensions int) error {
	if table == "" {
		table = domain.DefaultTable
	}
	if dimensions <= 0 {
		dimensions = domain.DefaultDimensions
	}

	if err := s.store.CreateTable(ctx, table, dimensions); err != nil {
		return fmt.Errorf("ensure table: %w", err)
	}
	return nil
}

// Index scans the content tree and rebuilds the article table from what
// it finds. Files are processed one at a time in traversal order, and a
// failure inside one file is counted rather than aborting the run.
func (s *IndexerService) Index(ctx context.Context, opts domain.IndexOptions) (*domain.IndexSummary, error) {
	opts = opts.Normalised()

	logger.Section("Content Indexing")
	runID := uuid.New().String()
	logger.Debug("Run %s: path=%s table=%s provider=%s dimensions=%d",
		runID, opts.ContentPath, opts.Table, opts.Embedding.Provider, opts.Embedding.Dimensions)

	files, err := s.scanner.Scan(opts.ContentPath, opts.Extensions, opts.Exclude)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	summary := &domain.IndexSummary{Total: len(files)}

	// An empty scan leaves existing rows untouched; the clear below
	// only runs once there is something to replace them with.
	if len(files) == 0 {
		logger.Info("No content files found under %s", opts.ContentPath)
		return summary, nil
	}
	logger.Info("Found %d content files", len(files))

	// A misconfigured provider fails every file rather than aborting
	// the run; existing rows stay in place.
	embedder, err := s.factory.Create(opts.Embedding)
	if err != nil {
		logger.Error("Embedding provider unavailable: %v", err)
		for i, file := range files {
			if opts.OnProgress != nil {
				opts.OnProgress(i+1, len(files), file.RelPath)
			}
			logger.Error("Indexing %s failed: %v", file.RelPath, err)
			summary.Failed++
		}
		logger.Info("Indexed %d/%d articles (%d failed)", summary.Success, summary.Total, summary.Failed)
		return summary, nil
	}

	if err := s.store.CreateTable(ctx, opts.Table, opts.Embedding.Dimensions); err != nil {
		return nil, fmt.Errorf("ensure table %s: %w", opts.Table, err)
	}
	if err := s.store.Clear(ctx, opts.Table); err != nil {
		return nil, fmt.Errorf("clear table %s: %w", opts.Table, err)
	}

	for i, file := range files {
		if opts.OnProgress != nil {
			opts.OnProgress(i+1, len(files), file.RelPath)
		}

		if err := s.indexFile(ctx, embedder, opts.Table, file); err != nil {
			logger.Error("Indexing %s failed: %v", file.RelPath, err)
			summary.Failed++
			continue
		}
		summary.Success++
	}

	logger.Info("Indexed %d/%d articles (%d failed)", summary.Success, summary.Total, summary.Failed)
	return summary, nil
}

// indexFile reads, parses, embeds, and stores a single content file.
func (s *IndexerService) indexFile(
	ctx context.Context, embedder driven.EmbeddingService, table string, file domain.ContentFile,
) error {
	raw, err := os.ReadFile(file.AbsPath)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}

	meta, body, err := s.parser.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	article := buildArticle(file.RelPath, meta, body)

	text := PrepareEmbeddingText(EmbeddingFields{
		Title:       article.Title,
		Description: stringField(meta, "description"),
		Tags:        article.Tags,
		Content:     article.Content,
	})

	embedding, err := embedder.Embed(ctx, text)
	if err != nil {
		return fmt.Errorf("embed: %w", err)
	}
	article.Embedding = embedding

	if err := s.store.InsertArticle(ctx, table, article); err != nil {
		return fmt.Errorf("insert: %w", err)
	}

	return nil
}

// buildArticle derives the stored article fields from a file's relative
// path, parsed front-matter, and body.
func buildArticle(relPath string, meta map[string]any, body string) *domain.Article {
	return &domain.Article{
		Slug:    slugFromPath(relPath),
		Title:   titleFor(meta, relPath),
		Content: body,
		Folder:  folderFromPath(relPath),
		Tags:    stringListField(meta, "tags"),
	}
}

// slugFromPath turns a relative path into its slug: extension stripped,
// separators normalised to forward slashes. The slug stays stable across
// re-indexes as long as the path does not change.
func slugFromPath(relPath string) string {
	slug := filepath.ToSlash(relPath)
	return strings.TrimSuffix(slug, filepath.Ext(slug))
}

// folderFromPath returns the directory component of a relative path, or
// the root sentinel for files at the top of the content tree.
func folderFromPath(relPath string) string {
	dir := filepath.ToSlash(filepath.Dir(relPath))
	if dir == "." || dir == "" {
		return domain.RootFolder
	}
	return dir
}

// titleFor prefers the front-matter title, then the filename with
// hyphens read as spaces, then the literal "Untitled".
func titleFor(meta map[string]any, relPath string) string {
	if title := stringField(meta, "title"); title != "" {
		return title
	}

	base := filepath.Base(relPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	title := strings.TrimSpace(strings.ReplaceAll(base, "-", " "))
	if title == "" {
		return "Untitled"
	}
	return title
}

// stringField reads a front-matter value as a trimmed string. Missing
// keys and non-string values read as empty.
func stringField(meta map[string]any, key string) string {
	if meta == nil {
		return ""
	}
	if value, ok := meta[key].(string); ok {
		return strings.TrimSpace(value)
	}
	return ""
}

// stringListField reads a front-matter sequence as strings. Missing keys
// and scalar values read as an empty list, never nil; non-string
// elements are rendered in their default format.
func stringListField(meta map[string]any, key string) []string {
	if meta == nil {
		return []string{}
	}
	items, ok := meta[key].([]any)
	if !ok {
		return []string{}
	}

	values := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			values = append(values, s)
			continue
		}
		values = append(values, fmt.Sprintf("%v", item))
	}
	return values
}
