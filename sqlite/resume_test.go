package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/resumeparse"
	"github.com/fwojciec/resumeparse/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func testResume(path string) *resumeparse.ParsedResume {
	return &resumeparse.ParsedResume{
		FilePath:   path,
		Name:       "John Doe",
		Email:      "john@example.com",
		Skills:     []string{"Python", "Docker"},
		SourceText: "John Doe\njohn@example.com\nSkills: Python, Docker",
	}
}

func TestResumeService_CreateResume(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID, hash and timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewResumeService(db)
		ctx := context.Background()

		res := testResume("/resumes/john.pdf")
		err := svc.CreateResume(ctx, res)
		require.NoError(t, err)

		assert.NotEmpty(t, res.ID, "ID should be generated")
		assert.NotEmpty(t, res.ContentHash, "content hash should be computed")
		assert.False(t, res.ParsedAt.IsZero(), "ParsedAt should be set")
	})

	t.Run("same source text yields same hash", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewResumeService(db)
		ctx := context.Background()

		a := testResume("/resumes/a.pdf")
		b := testResume("/resumes/b.pdf")
		require.NoError(t, svc.CreateResume(ctx, a))
		require.NoError(t, svc.CreateResume(ctx, b))

		assert.Equal(t, a.ContentHash, b.ContentHash)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("returns error for invalid resume", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewResumeService(db)
		ctx := context.Background()

		res := &resumeparse.ParsedResume{} // missing file path

		err := svc.CreateResume(ctx, res)
		require.Error(t, err)
		assert.Equal(t, resumeparse.EINVALID, resumeparse.ErrorCode(err))
	})
}

func TestResumeService_FindResumeByID(t *testing.T) {
	t.Parallel()

	t.Run("returns resume when found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewResumeService(db)
		ctx := context.Background()

		res := testResume("/resumes/john.pdf")
		require.NoError(t, svc.CreateResume(ctx, res))

		found, err := svc.FindResumeByID(ctx, res.ID)
		require.NoError(t, err)
		assert.Equal(t, res.ID, found.ID)
		assert.Equal(t, res.FilePath, found.FilePath)
		assert.Equal(t, res.Name, found.Name)
		assert.Equal(t, res.Email, found.Email)
		assert.Equal(t, []string{"Python", "Docker"}, found.Skills)
		assert.Equal(t, res.SourceText, found.SourceText)
		assert.Equal(t, res.ContentHash, found.ContentHash)
	})

	t.Run("round-trips empty skills", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewResumeService(db)
		ctx := context.Background()

		res := testResume("/resumes/john.pdf")
		res.Skills = []string{}
		require.NoError(t, svc.CreateResume(ctx, res))

		found, err := svc.FindResumeByID(ctx, res.ID)
		require.NoError(t, err)
		assert.Empty(t, found.Skills)
	})

	t.Run("returns ENOTFOUND when not found", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewResumeService(db)
		ctx := context.Background()

		_, err := svc.FindResumeByID(ctx, "nonexistent-id")
		require.Error(t, err)
		assert.Equal(t, resumeparse.ENOTFOUND, resumeparse.ErrorCode(err))
	})
}

func TestResumeService_FindResumes(t *testing.T) {
	t.Parallel()

	t.Run("returns all resumes with empty filter", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewResumeService(db)
		ctx := context.Background()

		for _, path := range []string{"/resumes/a.pdf", "/resumes/b.docx", "/resumes/c.html"} {
			require.NoError(t, svc.CreateResume(ctx, testResume(path)))
		}

		resumes, err := svc.FindResumes(ctx, resumeparse.ResumeFilter{})
		require.NoError(t, err)
		assert.Len(t, resumes, 3)
	})

	t.Run("filters by file path", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewResumeService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateResume(ctx, testResume("/resumes/a.pdf")))
		require.NoError(t, svc.CreateResume(ctx, testResume("/resumes/b.pdf")))

		path := "/resumes/a.pdf"
		resumes, err := svc.FindResumes(ctx, resumeparse.ResumeFilter{FilePath: &path})
		require.NoError(t, err)
		require.Len(t, resumes, 1)
		assert.Equal(t, path, resumes[0].FilePath)
	})

	t.Run("filters by email", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewResumeService(db)
		ctx := context.Background()

		a := testResume("/resumes/a.pdf")
		require.NoError(t, svc.CreateResume(ctx, a))
		b := testResume("/resumes/b.pdf")
		b.Email = "jane@example.com"
		require.NoError(t, svc.CreateResume(ctx, b))

		email := "jane@example.com"
		resumes, err := svc.FindResumes(ctx, resumeparse.ResumeFilter{Email: &email})
		require.NoError(t, err)
		require.Len(t, resumes, 1)
		assert.Equal(t, email, resumes[0].Email)
	})

	t.Run("respects limit", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewResumeService(db)
		ctx := context.Background()

		for _, path := range []string{"/resumes/a.pdf", "/resumes/b.pdf", "/resumes/c.pdf"} {
			require.NoError(t, svc.CreateResume(ctx, testResume(path)))
		}

		resumes, err := svc.FindResumes(ctx, resumeparse.ResumeFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, resumes, 2)
	})
}

func TestResumeService_DeleteResume(t *testing.T) {
	t.Parallel()

	t.Run("deletes existing resume", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewResumeService(db)
		ctx := context.Background()

		res := testResume("/resumes/john.pdf")
		require.NoError(t, svc.CreateResume(ctx, res))

		require.NoError(t, svc.DeleteResume(ctx, res.ID))

		_, err := svc.FindResumeByID(ctx, res.ID)
		assert.Equal(t, resumeparse.ENOTFOUND, resumeparse.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND for missing resume", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewResumeService(db)
		ctx := context.Background()

		err := svc.DeleteResume(ctx, "nonexistent-id")
		require.Error(t, err)
		assert.Equal(t, resumeparse.ENOTFOUND, resumeparse.ErrorCode(err))
	})
}
