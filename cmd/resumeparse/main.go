package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/resumeparse"
	"github.com/fwojciec/resumeparse/docx"
	"github.com/fwojciec/resumeparse/extract"
	"github.com/fwojciec/resumeparse/gemini"
	rpgoquery "github.com/fwojciec/resumeparse/goquery"
	rppdfcpu "github.com/fwojciec/resumeparse/pdfcpu"
	rpregexp "github.com/fwojciec/resumeparse/regexp"
	rpslog "github.com/fwojciec/resumeparse/slog"
	"github.com/fwojciec/resumeparse/sqlite"
	"golang.org/x/time/rate"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Service for end-to-end testing.
	ResumeService resumeparse.ResumeService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("resumeparse"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'resumeparse --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set RESUMEPARSE_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.ResumeService = sqlite.NewResumeService(m.DB)
	deps.Resumes = m.ResumeService
	deps.ReaderFor = readerFor(logger)

	// The extraction coordinator is only needed by parsing commands; it
	// requires a Gemini credential for the skills extractor.
	if cmd == "parse" || cmd == "batch" {
		client, err := gemini.NewClient(ctx, "")
		if err != nil {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return err
		}

		skills := gemini.NewSkillsExtractor(client, rpregexp.NewSkillsExtractor(), logger)
		skills.Timeout = 30 * time.Second
		skills.Limiter = rate.NewLimiter(rate.Limit(2), 1)

		coordinator, err := extract.NewCoordinator(map[string]resumeparse.FieldExtractor{
			resumeparse.FieldName:   rpregexp.NewNameExtractor(),
			resumeparse.FieldEmail:  rpregexp.NewEmailExtractor(),
			resumeparse.FieldSkills: skills,
		})
		if err != nil {
			return err
		}
		deps.Extractor = rpslog.NewLoggingRecordExtractor(coordinator, logger)
	}

	return kongCtx.Run(deps)
}

// readerFor returns the reader selector used by parsing commands. Readers
// are wrapped with logging.
func readerFor(logger *slog.Logger) func(path string) (resumeparse.DocumentReader, error) {
	return func(path string) (resumeparse.DocumentReader, error) {
		var reader resumeparse.DocumentReader
		switch strings.ToLower(filepath.Ext(path)) {
		case ".pdf":
			reader = rppdfcpu.NewReader()
		case ".doc", ".docx":
			reader = docx.NewReader()
		case ".html", ".htm":
			reader = rpgoquery.NewReader()
		default:
			return nil, resumeparse.Errorf(resumeparse.EUNSUPPORTED,
				"unsupported file type: %s (supported: .pdf, .doc, .docx, .html, .htm)", path)
		}
		return rpslog.NewLoggingReader(reader, logger), nil
	}
}

func defaultDBPath() string {
	if path := os.Getenv("RESUMEPARSE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "resumeparse.db"
	}
	dir := filepath.Join(home, ".resumeparse")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "resumeparse.db")
}
