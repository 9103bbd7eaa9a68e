// SPDX-License-Identifier: MIT
package hints

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/modellex/lexer"
	"gitlab.com/fisherprime/modellex/types"
)

type (
	// BatchConfig defines configuration options for the Batch operation.
	BatchConfig struct {
		Logger   logrus.FieldLogger
		PoolSize int
		Debug    bool
	}

	// BatchOption defines the BatchConfig functional option type.
	BatchOption func(*BatchConfig)
)

const defPoolSize = 8

// Batch errors.
var (
	ErrBatchHints = errors.New("failed to hint document batch")
)

// DefaultBatchConfig configures the Batch operation's BatchConfig.
func DefaultBatchConfig() *BatchConfig {
	return &BatchConfig{
		Logger:   logrus.New(),
		PoolSize: defPoolSize,
	}
}

// Validate populates missing BatchConfig entries with defaults.
func (c *BatchConfig) Validate() {
	if c.Logger == nil {
		c.Logger = logrus.New()
	}
	if c.PoolSize < 1 {
		c.PoolSize = defPoolSize
	}
}

// WithBatchLogger configures the logger option.
func WithBatchLogger(logger logrus.FieldLogger) BatchOption {
	return func(c *BatchConfig) { c.Logger = logger }
}

// WithPoolSize configures the goroutine pool size.
func WithPoolSize(size int) BatchOption {
	return func(c *BatchConfig) { c.PoolSize = size }
}

// WithBatchDebug configures the debug option.
func WithBatchDebug(debug bool) BatchOption {
	return func(c *BatchConfig) { c.Debug = debug }
}

// Batch tokenizes & hints a set of documents, keyed by name, on a goroutine
// pool. Documents are independent: a document that fails to schedule does
// not invalidate the rest of the batch, its name is reported through the
// aggregated error while the remaining tables are still returned.
func Batch(ctx context.Context, docs map[string]string, options ...BatchOption) (tables map[string]lexer.Hints, err error) {
	cfg := DefaultBatchConfig()
	for _, opt := range options {
		opt(cfg)
	}
	cfg.Validate()

	defer func() {
		if err != nil {
			err = fmt.Errorf("%w: %v", ErrBatchHints, err)
		}
	}()

	tables = make(map[string]lexer.Hints, len(docs))
	if len(docs) < 1 {
		return
	}

	pool, err := ants.NewPool(cfg.PoolSize)
	if err != nil {
		return
	}
	defer pool.Release()

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		failed types.StringSlice
	)

	scanner := lexer.NewScanner(lexer.WithLogger(cfg.Logger))

	for name, text := range docs {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			wg.Wait()
			return
		default:
		}

		name, text := name, text

		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()

			toks, scanErr := scanner.ScanModel(text, nil)
			if scanErr != nil {
				mu.Lock()
				failed = append(failed, name)
				mu.Unlock()

				return
			}

			table := Extract(toks)

			mu.Lock()
			tables[name] = table
			mu.Unlock()
		})
		if submitErr != nil {
			wg.Done()

			mu.Lock()
			failed = append(failed, name)
			mu.Unlock()
		}
	}

	wg.Wait()

	if len(failed) > 0 {
		// Map iteration scrambles the batch order; report failures sorted.
		failed.Sort()

		if cfg.Debug {
			cfg.Logger.Debugf("batch remnants: %s", spew.Sprint(failed))
		}

		err = fmt.Errorf("%d document(s) not hinted: %s", len(failed), failed.String())
	}

	return
}
