package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/resumeparse"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ resumeparse.ResumeService = (*ResumeService)(nil)

// ResumeService implements resumeparse.ResumeService using SQLite.
type ResumeService struct {
	db *DB
}

// NewResumeService creates a new ResumeService.
func NewResumeService(db *DB) *ResumeService {
	return &ResumeService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// CreateResume persists a new parsing result. The ID, content hash and
// parse timestamp are assigned here.
func (s *ResumeService) CreateResume(ctx context.Context, res *resumeparse.ParsedResume) error {
	if err := res.Validate(); err != nil {
		return err
	}

	res.ID = uuid.New().String()
	res.ParsedAt = time.Now().UTC()
	res.ContentHash = hashContent(res.SourceText)

	skills, err := json.Marshal(res.Skills)
	if err != nil {
		return fmt.Errorf("failed to encode skills: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO resumes (id, file_path, name, email, skills, source_text, content_hash, parsed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, res.ID, res.FilePath, res.Name, res.Email, string(skills), res.SourceText,
		res.ContentHash, res.ParsedAt.Format(time.RFC3339))

	return err
}

// FindResumeByID retrieves a parsing result by ID.
func (s *ResumeService) FindResumeByID(ctx context.Context, id string) (*resumeparse.ParsedResume, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, file_path, name, email, skills, source_text, content_hash, parsed_at
		FROM resumes
		WHERE id = ?
	`, id)

	res, err := scanResume(row.Scan)
	if err == sql.ErrNoRows {
		return nil, resumeparse.Errorf(resumeparse.ENOTFOUND, "parsed resume not found")
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

// FindResumes retrieves parsing results matching the filter, newest first.
func (s *ResumeService) FindResumes(ctx context.Context, filter resumeparse.ResumeFilter) ([]*resumeparse.ParsedResume, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, file_path, name, email, skills, source_text, content_hash, parsed_at FROM resumes WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.FilePath != nil {
		query.WriteString(" AND file_path = ?")
		args = append(args, *filter.FilePath)
	}
	if filter.Email != nil {
		query.WriteString(" AND email = ?")
		args = append(args, *filter.Email)
	}

	query.WriteString(" ORDER BY parsed_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resumes []*resumeparse.ParsedResume
	for rows.Next() {
		res, err := scanResume(rows.Scan)
		if err != nil {
			return nil, err
		}
		resumes = append(resumes, res)
	}
	return resumes, rows.Err()
}

// DeleteResume permanently removes a parsing result.
func (s *ResumeService) DeleteResume(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM resumes WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return resumeparse.Errorf(resumeparse.ENOTFOUND, "parsed resume not found")
	}
	return nil
}

// scanResume scans one resumes row using the given scan function.
func scanResume(scan func(...any) error) (*resumeparse.ParsedResume, error) {
	var res resumeparse.ParsedResume
	var skills, parsedAt string

	if err := scan(&res.ID, &res.FilePath, &res.Name, &res.Email, &skills,
		&res.SourceText, &res.ContentHash, &parsedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(skills), &res.Skills); err != nil {
		return nil, fmt.Errorf("failed to decode skills: %w", err)
	}

	var err error
	res.ParsedAt, err = time.Parse(time.RFC3339, parsedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse parsed_at: %w", err)
	}

	return &res, nil
}
