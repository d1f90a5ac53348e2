package http

import (
	"context"

	"http-arena/lib/arena"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

const DefaultArenaCapacity = 64 << 10

type Options struct {
	// Clock times every parse. Defaults to the wall clock.
	Clock clock.Clock

	// Registerer receives the parser metrics. Metrics are disabled when nil.
	// Registering two parsers with the same Registerer panics.
	Registerer prometheus.Registerer

	// ArenaCapacity sets the size of the arena ParseAll creates for each request.
	ArenaCapacity int

	// Concurrency limits the number of requests ParseAll parses at once.
	// Zero or less means no limit.
	Concurrency int
}

var DefaultOptions = Options{
	Clock:         nil,
	Registerer:    nil,
	ArenaCapacity: DefaultArenaCapacity,
	Concurrency:   0,
}

// Parser wraps [ParseRequest] with timing and metrics.
// It is safe for concurrent use as long as each call gets its own arena.
type Parser struct {
	opts    Options
	clock   clock.Clock
	metrics *metrics
}

func NewParser(opts Options) *Parser {
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	if opts.ArenaCapacity <= 0 {
		opts.ArenaCapacity = DefaultArenaCapacity
	}

	p := &Parser{opts: opts, clock: opts.Clock}
	if opts.Registerer != nil {
		p.metrics = newMetrics(opts.Registerer)
	}

	return p
}

func (p *Parser) Parse(buf []byte, a *arena.Arena, r *Request) error {
	start := p.clock.Now()
	before := a.Len()

	err := ParseRequest(buf, a, r)

	p.metrics.observe(CodeOf(err), p.clock.Since(start), a.Len()-before)
	return err
}

// Result is a request parsed by ParseAll together with the arena owning its memory.
type Result struct {
	Request Request
	Arena   *arena.Arena
}

// Release destroys the arena. The request must not be used afterwards.
func (res *Result) Release() {
	res.Request.Reset()
	res.Arena.Destroy()
}

// ParseAll parses every buffer of bufs concurrently, each into its own arena.
// The results keep the order of bufs.
//
// The first failure cancels the remaining parses, releases every arena and is
// returned with the index of the offending buffer.
func (p *Parser) ParseAll(ctx context.Context, bufs [][]byte) ([]*Result, error) {
	results := make([]*Result, len(bufs))

	g, ctx := errgroup.WithContext(ctx)
	if p.opts.Concurrency > 0 {
		g.SetLimit(p.opts.Concurrency)
	}

	for i, buf := range bufs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			a, err := arena.New(p.opts.ArenaCapacity)
			if err != nil {
				return errors.Wrapf(err, "creating arena for request %d", i)
			}

			res := &Result{Arena: a}
			results[i] = res

			if err := p.Parse(buf, a, &res.Request); err != nil {
				return errors.Wrapf(err, "request %d", i)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		for _, res := range results {
			if res != nil {
				res.Release()
			}
		}
		return nil, err
	}

	return results, nil
}
