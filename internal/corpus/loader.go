package corpus

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/types"
)

// DefaultWorkers is the parse parallelism used when none is given.
const DefaultWorkers = 4

// Loader turns corpus sources into parsed records.
type Loader struct {
	Kit     *parsing.Kit
	Workers int
	Logger  *slog.Logger
}

// NewLoader returns a loader parsing with kit.
func NewLoader(kit *parsing.Kit, workers int, logger *slog.Logger) *Loader {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{Kit: kit, Workers: workers, Logger: logger}
}

// LoadJob reads and parses one job file, or decodes it when it is a parsed
// JSON record.
func (l *Loader) LoadJob(path string) (*types.ParsedJob, error) {
	doc, err := ReadDocument(path)
	if err != nil {
		return nil, err
	}
	return l.job(doc)
}

// LoadResume reads and parses one résumé file, or decodes it when it is a
// parsed JSON record.
func (l *Loader) LoadResume(path string) (*types.ParsedResume, error) {
	doc, err := ReadDocument(path)
	if err != nil {
		return nil, err
	}
	return l.resume(doc)
}

// LoadJobs loads a job corpus from a directory, a job sheet or a single file.
func (l *Loader) LoadJobs(ctx context.Context, path string) ([]*types.ParsedJob, error) {
	docs, err := l.documents(path, true)
	if err != nil {
		return nil, err
	}
	return parseAll(ctx, l, docs, l.job)
}

// LoadResumes loads a résumé corpus from a directory or a single file.
func (l *Loader) LoadResumes(ctx context.Context, path string) ([]*types.ParsedResume, error) {
	docs, err := l.documents(path, false)
	if err != nil {
		return nil, err
	}
	return parseAll(ctx, l, docs, l.resume)
}

func (l *Loader) documents(path string, sheets bool) ([]Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "corpus not found", Cause: err}
	}
	switch {
	case info.IsDir():
		return ReadDir(path, l.Logger)
	case sheets && IsSheet(path):
		return ReadSheet(path)
	default:
		doc, err := ReadDocument(path)
		if err != nil {
			return nil, err
		}
		return []Document{doc}, nil
	}
}

func (l *Loader) job(doc Document) (*types.ParsedJob, error) {
	var job *types.ParsedJob
	if doc.Parsed {
		job = &types.ParsedJob{}
		if err := decode(doc, job); err != nil {
			return nil, err
		}
	} else {
		job = l.Kit.ParseJob(doc.Text)
	}
	stamp(&job.ParsedDocument, doc)
	return job, nil
}

func (l *Loader) resume(doc Document) (*types.ParsedResume, error) {
	var resume *types.ParsedResume
	if doc.Parsed {
		resume = &types.ParsedResume{}
		if err := decode(doc, resume); err != nil {
			return nil, err
		}
	} else {
		resume = l.Kit.ParseResume(doc.Text)
	}
	stamp(&resume.ParsedDocument, doc)
	return resume, nil
}

func decode(doc Document, v any) error {
	if err := json.Unmarshal([]byte(doc.Text), v); err != nil {
		return &LoadError{Path: doc.Source, Message: "invalid parsed record", Cause: err}
	}
	return nil
}

// stamp fills the ID and source of a record that does not carry its own.
func stamp(d *types.ParsedDocument, doc Document) {
	if d.ID == "" {
		d.ID = doc.ID
	}
	if d.Source == "" {
		d.Source = doc.Source
	}
}

// parseAll converts docs in parallel, keeping input order. Documents that
// fail to decode are skipped with a warning.
func parseAll[T any](ctx context.Context, l *Loader, docs []Document, convert func(Document) (*T, error)) ([]*T, error) {
	results := make([]*T, len(docs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(l.Workers)
	for i, doc := range docs {
		if gCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			rec, err := convert(doc)
			if err != nil {
				l.Logger.Warn("skipping record", slog.String("source", doc.Source), slog.String("error", err.Error()))
				return nil
			}
			results[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]*T, 0, len(results))
	for _, r := range results {
		if r != nil {
			out = append(out, r)
		}
	}
	l.Logger.Debug("loaded corpus", slog.Int("documents", len(docs)), slog.Int("records", len(out)))
	return out, nil
}
