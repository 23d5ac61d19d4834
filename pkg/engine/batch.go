package engine

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/lbliii/rosettes/internal/xlog"
	"github.com/lbliii/rosettes/pkg/token"
)

// sequentialThreshold is the batch size below which HighlightMany/
// TokenizeMany run sequentially rather than paying goroutine setup cost,
// spec §4.6's "small batches run inline."
const sequentialThreshold = 8

// BatchOption configures HighlightMany/TokenizeMany.
type BatchOption func(*batchOptions)

type batchOptions struct {
	maxWorkers int
}

func defaultBatchOptions() batchOptions {
	n := runtime.NumCPU()
	if n > 4 {
		n = 4
	}
	return batchOptions{maxWorkers: n}
}

// WithMaxWorkers overrides the default min(4, NumCPU) worker cap.
func WithMaxWorkers(n int) BatchOption {
	return func(o *batchOptions) {
		if n > 0 {
			o.maxWorkers = n
		}
	}
}

// HighlightItem pairs one HighlightMany input with its own per-call options.
type HighlightItem struct {
	Input    string
	Language string
	Opts     []Option
}

// HighlightResult carries one HighlightMany output. It holds no index of
// its own: the result at position i of the returned slice belongs to
// items[i], even though workers may finish out of order.
type HighlightResult struct {
	Output string
	Err    error
}

// HighlightMany runs Highlight over every item, bounded by max_workers
// concurrent goroutines (default min(4, NumCPU)), preserving input order in
// the returned slice regardless of completion order — spec §4.6. Batches
// smaller than sequentialThreshold run inline with no goroutines at all.
func HighlightMany(ctx context.Context, items []HighlightItem, opts ...BatchOption) []HighlightResult {
	o := defaultBatchOptions()
	for _, opt := range opts {
		opt(&o)
	}

	results := make([]HighlightResult, len(items))

	if len(items) < sequentialThreshold {
		for i, item := range items {
			results[i] = safeHighlight(item)
		}
		return results
	}

	sem := semaphore.NewWeighted(int64(o.maxWorkers))
	var wg sync.WaitGroup

	for i, item := range items {
		i, item := i, item
		if err := sem.Acquire(ctx, 1); err != nil {
			results[i] = HighlightResult{Err: err}
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)
			results[i] = safeHighlight(item)
		}()
	}

	wg.Wait()
	return results
}

// runHighlight performs one Highlight call. Both the sequential (small
// batch) path and the worker path call it through safeHighlight, so a panic
// in one job never aborts the jobs after it.
func runHighlight(item HighlightItem) HighlightResult {
	out, err := Highlight(item.Input, item.Language, item.Opts...)
	return HighlightResult{Output: out, Err: err}
}

// safeHighlight wraps runHighlight with panic recovery so one bad input
// (e.g. a lexer bug triggered by pathological input) cannot take down the
// whole batch — a supplemented behavior beyond the literal text of the
// dispatcher's spec entry, grounded on the same defensive wrapping
// denisvmedia/inventario's worker pools use around background goroutines.
func safeHighlight(item HighlightItem) (result HighlightResult) {
	defer func() {
		if r := recover(); r != nil {
			xlog.Warnf("engine: recovered panic in batch worker for language %q: %v", item.Language, r)
			result = HighlightResult{Err: &PanicError{Value: r}}
		}
	}()
	return runHighlight(item)
}

// PanicError wraps a recovered panic value as an error, preserving it for
// the caller instead of discarding it once logged.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return "engine: batch worker panicked"
}

// TokenizeItem pairs one TokenizeMany input with its own per-call options.
type TokenizeItem struct {
	Input    string
	Language string
	Opts     []Option
}

// TokenizeResult carries one TokenizeMany output. Tokens is materialized
// (not returned as an iter.Seq) because the sequence is produced inside a
// worker goroutine: the caller consumes it after the goroutine has already
// returned, so it cannot stay lazy the way a direct Tokenize call can.
type TokenizeResult struct {
	Tokens []token.Token
	Err    error
}

// TokenizeMany is HighlightMany's Highlight-less sibling: same batching,
// worker cap, ordering, and panic containment, but over raw token streams
// instead of rendered output.
func TokenizeMany(ctx context.Context, items []TokenizeItem, opts ...BatchOption) []TokenizeResult {
	o := defaultBatchOptions()
	for _, opt := range opts {
		opt(&o)
	}

	results := make([]TokenizeResult, len(items))

	if len(items) < sequentialThreshold {
		for i, item := range items {
			results[i] = safeTokenize(item)
		}
		return results
	}

	sem := semaphore.NewWeighted(int64(o.maxWorkers))
	var wg sync.WaitGroup

	for i, item := range items {
		i, item := i, item
		if err := sem.Acquire(ctx, 1); err != nil {
			results[i] = TokenizeResult{Err: err}
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)
			results[i] = safeTokenize(item)
		}()
	}

	wg.Wait()
	return results
}

func runTokenize(item TokenizeItem) TokenizeResult {
	var toks []token.Token
	for tok := range Tokenize(item.Input, item.Language, item.Opts...) {
		toks = append(toks, tok)
	}
	return TokenizeResult{Tokens: toks}
}

func safeTokenize(item TokenizeItem) (result TokenizeResult) {
	defer func() {
		if r := recover(); r != nil {
			xlog.Warnf("engine: recovered panic in batch worker for language %q: %v", item.Language, r)
			result = TokenizeResult{Err: &PanicError{Value: r}}
		}
	}()
	return runTokenize(item)
}
