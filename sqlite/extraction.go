package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/fwojciec/pdfoutline"
)

// Compile-time interface verification.
var _ pdfoutline.ExtractionService = (*ExtractionService)(nil)

// ExtractionService implements pdfoutline.ExtractionService using SQLite.
type ExtractionService struct {
	db *DB
}

// NewExtractionService creates a new ExtractionService.
func NewExtractionService(db *DB) *ExtractionService {
	return &ExtractionService{db: db}
}

// hashOutline computes xxHash over the title and the ordered headings and
// returns a hex string. Two runs that produced identical outlines share a
// hash.
func hashOutline(extraction *pdfoutline.Extraction) string {
	var b strings.Builder
	b.WriteString(extraction.Title)
	for _, heading := range extraction.Headings {
		fmt.Fprintf(&b, "\n%s\x1f%s\x1f%d", heading.Level, heading.Text, heading.Page)
	}

	h := xxhash.Sum64String(b.String())
	buf := make([]byte, 8)
	buf[0] = byte(h >> 56)
	buf[1] = byte(h >> 48)
	buf[2] = byte(h >> 40)
	buf[3] = byte(h >> 32)
	buf[4] = byte(h >> 24)
	buf[5] = byte(h >> 16)
	buf[6] = byte(h >> 8)
	buf[7] = byte(h)
	return hex.EncodeToString(buf)
}

// CreateExtraction stores a new extraction record with its headings.
func (s *ExtractionService) CreateExtraction(ctx context.Context, extraction *pdfoutline.Extraction) error {
	if err := extraction.Validate(); err != nil {
		return err
	}

	extraction.ID = uuid.New().String()
	extraction.CreatedAt = time.Now().UTC()
	extraction.OutlineHash = hashOutline(extraction)
	extraction.HeadingCount = len(extraction.Headings)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO extractions (id, source_path, title, error, outline_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, extraction.ID, extraction.SourcePath, extraction.Title, extraction.Err,
		extraction.OutlineHash, extraction.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	for i, heading := range extraction.Headings {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO headings (extraction_id, position, level, text, page)
			VALUES (?, ?, ?, ?, ?)
		`, extraction.ID, i, heading.Level.String(), heading.Text, heading.Page)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindExtractionByID retrieves an extraction and its headings by ID.
func (s *ExtractionService) FindExtractionByID(ctx context.Context, id string) (*pdfoutline.Extraction, error) {
	var extraction pdfoutline.Extraction
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, source_path, title, error, outline_hash, created_at
		FROM extractions
		WHERE id = ?
	`, id).Scan(&extraction.ID, &extraction.SourcePath, &extraction.Title,
		&extraction.Err, &extraction.OutlineHash, &createdAt)

	if err == sql.ErrNoRows {
		return nil, pdfoutline.Errorf(pdfoutline.ENOTFOUND, "extraction not found")
	}
	if err != nil {
		return nil, err
	}

	extraction.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT level, text, page
		FROM headings
		WHERE extraction_id = ?
		ORDER BY position ASC
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	extraction.Headings = []pdfoutline.Heading{}
	for rows.Next() {
		var heading pdfoutline.Heading
		var level string

		if err := rows.Scan(&level, &heading.Text, &heading.Page); err != nil {
			return nil, err
		}
		if heading.Level, err = pdfoutline.ParseLevel(level); err != nil {
			return nil, err
		}

		extraction.Headings = append(extraction.Headings, heading)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	extraction.HeadingCount = len(extraction.Headings)
	return &extraction, nil
}

// FindExtractions retrieves extraction summaries matching the filter,
// newest first. Headings are not loaded; HeadingCount is.
func (s *ExtractionService) FindExtractions(ctx context.Context, filter pdfoutline.ExtractionFilter) ([]*pdfoutline.Extraction, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`
		SELECT e.id, e.source_path, e.title, e.error, e.outline_hash, e.created_at,
			(SELECT COUNT(*) FROM headings h WHERE h.extraction_id = e.id) AS heading_count
		FROM extractions e
		WHERE 1=1`)

	if filter.ID != nil {
		query.WriteString(" AND e.id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourcePath != nil {
		query.WriteString(" AND e.source_path = ?")
		args = append(args, *filter.SourcePath)
	}

	// rowid breaks ties between records created within the same second.
	query.WriteString(" ORDER BY e.created_at DESC, e.rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var extractions []*pdfoutline.Extraction
	for rows.Next() {
		var extraction pdfoutline.Extraction
		var createdAt string

		if err := rows.Scan(&extraction.ID, &extraction.SourcePath, &extraction.Title,
			&extraction.Err, &extraction.OutlineHash, &createdAt, &extraction.HeadingCount); err != nil {
			return nil, err
		}

		if extraction.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}

		extractions = append(extractions, &extraction)
	}

	return extractions, rows.Err()
}

// DeleteExtraction permanently removes an extraction; its headings go with
// it through the foreign-key cascade.
func (s *ExtractionService) DeleteExtraction(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM extractions WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return pdfoutline.Errorf(pdfoutline.ENOTFOUND, "extraction not found")
	}

	return nil
}

// parseRFC3339 parses an RFC3339 formatted timestamp string.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// appendPagination appends LIMIT and OFFSET clauses to a query builder if
// values are > 0.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
