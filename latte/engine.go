package latte

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-logr/logr"
	"github.com/spf13/afero"
)

// Names of the files the tool reads and writes inside the working
// directory. The code filename is fixed; output names derive from it.
const (
	// CodeFileName is the fixed name the generated code is written to.
	CodeFileName = "problem.latte"

	// NumFileName is the primary numeric-result file.
	NumFileName = "numOfLatticePoints"

	// RatFileName is the rational-function output written for the
	// series and generating-function options.
	RatFileName = CodeFileName + ".rat"

	// StatsFileName is the tool's diagnostic file. Never parsed; listed
	// so callers know what to expect during post-mortem inspection.
	StatsFileName = "latte_stats"
)

// RunRequest carries one prepared invocation: an isolated working
// directory, the generated code text, and the serialized flags.
type RunRequest struct {
	Dir     string
	Code    string
	Args    []string
	Verbose bool
}

// RunResult captures everything the decoder may need. File fields hold
// contents, not paths; a missing optional file is an empty string.
type RunResult struct {
	Stdout  string
	Stderr  string
	NumFile string // contents of NumFileName
	RatFile string // contents of RatFileName
}

// Engine is the subprocess boundary. Implementations run the counting
// tool (or a stand-in, in tests) against the given request. A non-zero
// exit must surface as an error wrapping ErrExternalTool; the working
// directory must be left intact either way.
type Engine interface {
	Run(ctx context.Context, req RunRequest) (RunResult, error)
}

// ExecEngine invokes the real counting executable. File access goes
// through an afero.Fs; the subprocess itself always touches the host
// filesystem, so production use pairs ExecEngine with afero.NewOsFs().
type ExecEngine struct {
	fs     afero.Fs
	binary string
	shell  bool // route through a compatibility shell (Windows)
	log    logr.Logger
}

// NewExecEngine builds an engine around the given executable path.
// The compatibility-shell route is chosen automatically per platform:
// direct execution everywhere except Windows, where the tool ships as
// a POSIX binary and runs through "sh -c".
func NewExecEngine(fs afero.Fs, binary string, log logr.Logger) *ExecEngine {
	return &ExecEngine{
		fs:     fs,
		binary: binary,
		shell:  runtime.GOOS == "windows",
		log:    log,
	}
}

// Run writes the code file, invokes the tool inside req.Dir, and reads
// back the output files. The directory and every file in it survive
// both success and failure for post-mortem inspection.
func (e *ExecEngine) Run(ctx context.Context, req RunRequest) (RunResult, error) {
	if err := e.fs.MkdirAll(req.Dir, 0o755); err != nil {
		return RunResult{}, fmt.Errorf("create workdir %s: %w", req.Dir, err)
	}
	codePath := filepath.Join(req.Dir, CodeFileName)
	if err := afero.WriteFile(e.fs, codePath, []byte(req.Code), 0o644); err != nil {
		return RunResult{}, fmt.Errorf("write %s: %w", codePath, err)
	}

	cmd := e.command(ctx, req)
	cmd.Dir = req.Dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if req.Verbose {
		e.log.Info("invoking counting tool", "binary", e.binary, "args", req.Args, "dir", req.Dir)
	}
	runErr := cmd.Run()

	res := RunResult{
		Stdout:  stdout.String(),
		Stderr:  stderr.String(),
		NumFile: e.readOptional(filepath.Join(req.Dir, NumFileName)),
		RatFile: e.readOptional(filepath.Join(req.Dir, RatFileName)),
	}
	if runErr != nil {
		if req.Verbose {
			return res, fmt.Errorf("%s: %s: %w", runErr, strings.TrimSpace(res.Stderr), ErrExternalTool)
		}
		return res, fmt.Errorf("%s: %w", runErr, ErrExternalTool)
	}
	return res, nil
}

// command builds the platform-appropriate exec.Cmd: direct execution,
// or a compatibility shell where direct execution of the tool is not
// possible.
func (e *ExecEngine) command(ctx context.Context, req RunRequest) *exec.Cmd {
	argv := append(append([]string{}, req.Args...), CodeFileName)
	if e.shell {
		line := e.binary + " " + strings.Join(argv, " ")
		return exec.CommandContext(ctx, "sh", "-c", line)
	}
	return exec.CommandContext(ctx, e.binary, argv...)
}

// readOptional returns a file's contents or "" when it does not exist;
// the decoder decides which outputs are required for which option.
func (e *ExecEngine) readOptional(path string) string {
	data, err := afero.ReadFile(e.fs, path)
	if err != nil {
		return ""
	}
	return string(data)
}
