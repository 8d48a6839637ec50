package driver

import (
	"bufio"
	"context"
	"errors"
	"io"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"tsplain/internal/diagfmt"
	"tsplain/internal/lexer"
	"tsplain/internal/source"
	"tsplain/internal/suggest"
	"tsplain/internal/token"
	"tsplain/internal/tserr"
)

// ErrNoDiagnostics reports that the log contained no parseable diagnostics.
var ErrNoDiagnostics = errors.New("no diagnostics in input")

// Options configures an explain run.
type Options struct {
	// Log is the compiler output to read, line by line.
	Log io.Reader
	// BaseDir anchors relative path display; empty means the working directory.
	BaseDir string
	// Jobs limits parallel suggestion synthesis; 0 means GOMAXPROCS.
	Jobs int
	// MaxErrors truncates the run after N diagnostics; 0 means unlimited.
	MaxErrors int
	// TokenCache, when non-nil, is consulted before scanning each file.
	TokenCache *TokenCache
	// Progress receives per-file events; nil disables reporting.
	Progress ProgressSink
}

// Result is the outcome of an explain run.
type Result struct {
	Entries []diagfmt.Entry
	// Skipped counts input lines that were not diagnostics.
	Skipped int
	// FailedFiles lists referenced files that could not be loaded. Their
	// diagnostics are still explained, without position-based lookup.
	FailedFiles []string
	FileSet     *source.FileSet
}

// ParseLog reads compiler output line by line and keeps the lines that
// parse as diagnostics. skipped counts the rest; parse never fails a run.
func ParseLog(r io.Reader) (diags []tserr.Diagnostic, skipped int, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		d, ok := tserr.Parse(scanner.Text())
		if !ok {
			skipped++
			continue
		}
		diags = append(diags, d)
	}
	return diags, skipped, scanner.Err()
}

// LogFiles returns the unique file paths the diagnostics reference, in
// first-appearance order. The UI uses it to size its progress list.
func LogFiles(diags []tserr.Diagnostic) []string {
	var files []string
	seen := make(map[string]bool, len(diags))
	for _, d := range diags {
		if !seen[d.File] {
			seen[d.File] = true
			files = append(files, d.File)
		}
	}
	return files
}

// Explain reads a tsc log and synthesizes suggestions for every diagnostic
// in it. It returns ErrNoDiagnostics when the log parses to nothing; the
// returned Result still carries the skipped-line count.
func Explain(ctx context.Context, opts Options) (*Result, error) {
	diags, skipped, err := ParseLog(opts.Log)
	if err != nil {
		return nil, err
	}
	result, err := ExplainDiagnostics(ctx, diags, opts)
	if result != nil {
		result.Skipped = skipped
	}
	return result, err
}

// ExplainDiagnostics loads and tokenizes each referenced file once, then
// synthesizes suggestions for all diagnostics in parallel. Entry order
// follows diagnostic order regardless of Jobs.
func ExplainDiagnostics(ctx context.Context, diags []tserr.Diagnostic, opts Options) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.MaxErrors > 0 && len(diags) > opts.MaxErrors {
		diags = diags[:opts.MaxErrors]
	}

	fileSet := source.NewFileSet()
	if opts.BaseDir != "" {
		fileSet.SetBaseDir(opts.BaseDir)
	}
	result := &Result{FileSet: fileSet}
	if len(diags) == 0 {
		return result, ErrNoDiagnostics
	}

	files := LogFiles(diags)
	for _, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageTokenize, Status: StatusQueued})
	}

	tokensByFile := make(map[string][]token.Token, len(files))
	for _, path := range files {
		start := time.Now()
		emit(opts.Progress, Event{File: path, Stage: StageTokenize, Status: StatusWorking})

		id, err := fileSet.Load(path)
		if err != nil {
			// Suggestions for this file degrade to message-only wording.
			result.FailedFiles = append(result.FailedFiles, path)
			emit(opts.Progress, Event{File: path, Stage: StageTokenize, Status: StatusError, Err: err})
			continue
		}
		file := fileSet.Get(id)

		tokens, hit, err := opts.TokenCache.Get(file.Hash)
		if err != nil {
			return nil, err
		}
		if !hit {
			tokens = lexer.Scan(file)
			if err := opts.TokenCache.Put(file.Hash, file.Path, tokens); err != nil {
				return nil, err
			}
		}
		tokensByFile[path] = tokens
		emit(opts.Progress, Event{File: path, Stage: StageTokenize, Status: StatusDone, Elapsed: time.Since(start)})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Index-addressed results: no mutex needed, each goroutine owns its slot.
	entries := make([]diagfmt.Entry, len(diags))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(diags)))
	for i, d := range diags {
		i, d := i, d
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			emit(opts.Progress, Event{File: d.File, Stage: StageExplain, Status: StatusWorking})
			s, ok := suggest.Build(d, tokensByFile[d.File])
			entries[i] = diagfmt.Entry{Diag: d, Suggestion: s, HasSuggestion: ok}
			emit(opts.Progress, Event{File: d.File, Stage: StageExplain, Status: StatusDone})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result.Entries = entries
	return result, nil
}
