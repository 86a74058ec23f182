package latte

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/go-logr/logr"
	"github.com/spf13/afero"

	"github.com/katalvlaran/lattix/polytope"
)

// DefaultBinary is the conventional name of the counting executable,
// resolved through PATH when no explicit path is configured.
const DefaultBinary = "count"

// workdirPrefix names the per-invocation directories created under the
// base directory.
const workdirPrefix = "lattix-"

// Client runs the full pipeline: classify → normalize → emit → invoke →
// decode. It is stateless between calls; every invocation gets a fresh,
// uniquely-timestamped working directory that is never cleaned up
// (post-mortem inspection is part of the contract).
type Client struct {
	engine  Engine
	log     logr.Logger
	baseDir string
}

// Option configures a Client.
type Option func(*Client)

// WithEngine injects the subprocess boundary; tests use stubs, callers
// with unusual installations wrap ExecEngine themselves.
func WithEngine(e Engine) Option {
	return func(c *Client) { c.engine = e }
}

// WithLogger injects the logger used for classifier warnings and
// decoder notices. Defaults to a discarding logger.
func WithLogger(log logr.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithBaseDir sets the directory under which per-invocation working
// directories are created. Defaults to the system temp directory.
func WithBaseDir(dir string) Option {
	return func(c *Client) { c.baseDir = dir }
}

// NewClient builds a Client. Without options it runs the "count"
// binary from PATH against the host filesystem and discards logs.
func NewClient(opts ...Option) *Client {
	c := &Client{
		log:     logr.Discard(),
		baseDir: os.TempDir(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.engine == nil {
		c.engine = NewExecEngine(afero.NewOsFs(), DefaultBinary, c.log)
	}
	return c
}

// prepared is one normalized invocation: emitted code, the original
// variable order (for generating-function substitution) and the
// resolved options.
type prepared struct {
	code string
	vars []string
	opts countOptions
}

// key returns the canonicalized (code, flags) memoization key.
func (p *prepared) key() string {
	flags := p.opts.CanonicalFlags()
	s := p.code
	for _, f := range flags {
		s += "\x1f" + f
	}
	return s
}

// prepare validates and normalizes a specification without touching
// the filesystem. Every input-validation error surfaces here, before
// any subprocess work, so a failed call wastes no I/O.
func (c *Client) prepare(spec any, opts []CountOption) (*prepared, error) {
	o := gatherCountOptions(opts...)

	// Recognized but unimplemented: refuse before any work happens.
	if o.simplifiedPoly {
		return nil, fmt.Errorf("simplified-ehrhart-polynomial: %w", ErrUnsupportedOption)
	}

	sp, autoVrep, err := polytope.Classify(spec, o.vrep, c.log)
	if err != nil {
		return nil, err
	}
	if autoVrep {
		o.vrep = true
	}

	p := &prepared{opts: o}
	switch sp.Kind() {
	case polytope.KindRawCode:
		p.code = sp.Code()

	case polytope.KindVertexList:
		m, err := polytope.VertexMatrix(sp.Vertices())
		if err != nil {
			return nil, err
		}
		p.code = m.Code()
		p.opts.vrep = true // vertex input always rides the vrep flag

	case polytope.KindConstraints:
		sys, err := polytope.ParseConstraints(sp.ConstraintStrings())
		if err != nil {
			return nil, err
		}
		m, err := polytope.BuildMatrix(sys)
		if err != nil {
			return nil, err
		}
		p.code = m.Code()
		p.vars = m.Vars()

	case polytope.KindLinearSystem:
		m, err := polytope.BuildFromRows(sp.Rows())
		if err != nil {
			return nil, err
		}
		p.code = m.Code()
		p.vars = m.Vars()

	default:
		return nil, fmt.Errorf("Count: %v: %w", sp.Kind(), polytope.ErrUnclassifiable)
	}
	return p, nil
}

// run invokes the engine on a prepared invocation and decodes the
// output. Failures are not retried; the working directory survives.
func (c *Client) run(ctx context.Context, p *prepared) (Result, error) {
	req := RunRequest{
		Dir:     c.newWorkdir(),
		Code:    p.code,
		Args:    p.opts.Flags(),
		Verbose: p.opts.verbose,
	}
	out, err := c.engine.Run(ctx, req)
	if err != nil {
		return Result{}, err
	}
	return decodeResult(&p.opts, p.vars, out, c.log)
}

// Count translates the specification, invokes the counting tool and
// decodes the requested output format. spec may be a
// polytope.Specification or any of the loosely-typed shorthand forms
// polytope.Classify accepts.
func (c *Client) Count(ctx context.Context, spec any, opts ...CountOption) (Result, error) {
	p, err := c.prepare(spec, opts)
	if err != nil {
		return Result{}, err
	}
	return c.run(ctx, p)
}

// EhrhartPolynomial is Count with the ehrhart-polynomial flag.
func (c *Client) EhrhartPolynomial(ctx context.Context, spec any, opts ...CountOption) (Result, error) {
	return c.Count(ctx, spec, append(opts, WithEhrhartPolynomial())...)
}

// EhrhartSeries is Count with the ehrhart-series flag. The result is
// always raw rational-function text.
func (c *Client) EhrhartSeries(ctx context.Context, spec any, opts ...CountOption) (Result, error) {
	return c.Count(ctx, spec, append(opts, WithEhrhartSeries())...)
}

// workdirSeq disambiguates invocations that share a timestamp.
var workdirSeq atomic.Uint64

// newWorkdir returns a fresh uniquely-named directory path under the
// base directory. Uniqueness keeps concurrent and repeated calls from
// colliding; creation happens in the engine.
func (c *Client) newWorkdir() string {
	n := workdirSeq.Add(1)
	return filepath.Join(c.baseDir, fmt.Sprintf("%s%d-%d", workdirPrefix, time.Now().UnixNano(), n))
}
