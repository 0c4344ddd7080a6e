package importer

import (
	"context"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/fragmede/modview/internal/note"
)

// Sink receives parsed notes.
type Sink interface {
	PutNote(n note.Note) error
}

// Result summarises an import run.
type Result struct {
	Files    int
	Notes    int
	Failed   int
	Failures map[string]error
}

// Import reads and parses the note files at paths concurrently and stores
// every note in sink. A file that cannot be read or parsed is recorded in
// the result and skipped; a failing sink aborts the import.
func Import(ctx context.Context, sink Sink, paths []string, concurrency int, logger *zap.Logger) (Result, error) {
	if concurrency < 1 {
		concurrency = 1
	}
	res := Result{Files: len(paths), Failures: make(map[string]error)}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, path := range paths {
		path := path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			notes, err := readFile(path)
			if err != nil {
				logger.Warn("skipping note file", zap.String("path", path), zap.Error(err))
				mu.Lock()
				res.Failed++
				res.Failures[path] = err
				mu.Unlock()
				return nil
			}

			// Parsing runs in parallel; stores are serialised.
			mu.Lock()
			defer mu.Unlock()
			for _, n := range notes {
				if err := sink.PutNote(n); err != nil {
					return fmt.Errorf("importing %s: %w", path, err)
				}
				res.Notes++
			}
			logger.Debug("imported note file", zap.String("path", path), zap.Int("notes", len(notes)))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return res, err
	}
	return res, nil
}

func readFile(path string) ([]note.Note, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	notes, err := note.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return notes, nil
}
