// Command lattix translates a polytope description into counting-tool
// code, runs the tool and prints the decoded result.
//
// The polytope is given either as positional inequality arguments,
//
//	lattix "x + y <= 10" "x >= 1" "y >= 1"
//
// as a semicolon-separated vertex list,
//
//	lattix --vertices "1,1;10,1;1,10;10,10"
//
// or as a prewritten code file,
//
//	lattix --code-file problem.latte
//
// Every flag can also be set through the environment with the LATTIX_
// prefix (LATTIX_BINARY, LATTIX_DILATION, ...).
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/lattix/latte"
	"github.com/katalvlaran/lattix/polytope"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "lattix:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("lattix", pflag.ContinueOnError)

	flags.String("binary", latte.DefaultBinary, "path to the counting executable")
	flags.String("base-dir", "", "directory for per-run working directories (default: system temp)")
	flags.String("code-file", "", "read tool code from this file instead of building it")
	flags.String("vertices", "", "vertex list, e.g. \"1,1;10,1;1,10\"")

	flags.Bool("vrep", false, "treat the input as a vertex list (V-representation)")
	flags.Bool("ehrhart-polynomial", false, "compute the Ehrhart polynomial")
	flags.Bool("ehrhart-series", false, "compute the Ehrhart series (rational function)")
	flags.Bool("multivariate-generating-function", false, "compute the multivariate generating function")
	flags.Bool("homog", false, "treat the input as a homogenized cone")
	flags.Int("ehrhart-taylor", 0, "Taylor expansion order of the Ehrhart series")
	flags.Int("dilation", 0, "dilate the polytope by an integer factor before counting")
	flags.Bool("raw", false, "print decodable results as raw text instead of parsing them")
	flags.BoolP("verbose", "v", false, "log tool invocations and attach stderr to failures")

	if err := flags.Parse(args); err != nil {
		return err
	}

	v := viper.New()
	v.SetEnvPrefix("LATTIX")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return err
	}

	log, flush, err := buildLogger(v.GetBool("verbose"))
	if err != nil {
		return err
	}
	defer flush()

	spec, err := buildSpec(v, flags.Args())
	if err != nil {
		return err
	}

	clientOpts := []latte.Option{
		latte.WithLogger(log),
		latte.WithEngine(latte.NewExecEngine(afero.NewOsFs(), v.GetString("binary"), log)),
	}
	if dir := v.GetString("base-dir"); dir != "" {
		clientOpts = append(clientOpts, latte.WithBaseDir(dir))
	}
	client := latte.NewClient(clientOpts...)

	res, err := client.Count(context.Background(), spec, countOptions(v)...)
	if err != nil {
		return err
	}
	fmt.Println(render(res))
	return nil
}

// buildLogger bridges a zap core into the logr surface the library
// logs through. Verbose mode switches to the human-oriented
// development encoder and unlocks V(1) notices.
func buildLogger(verbose bool) (logr.Logger, func(), error) {
	var (
		zl  *zap.Logger
		err error
	)
	if verbose {
		zl, err = zap.NewDevelopment()
	} else {
		zl, err = zap.NewProduction(zap.IncreaseLevel(zap.WarnLevel))
	}
	if err != nil {
		return logr.Logger{}, nil, fmt.Errorf("build logger: %w", err)
	}
	return zapr.NewLogger(zl), func() { _ = zl.Sync() }, nil
}

// buildSpec resolves the three input modes. Exactly one is used, in
// fixed precedence: code file, vertex list, positional inequalities.
func buildSpec(v *viper.Viper, positional []string) (polytope.Specification, error) {
	if path := v.GetString("code-file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return polytope.Specification{}, fmt.Errorf("read code file: %w", err)
		}
		return polytope.RawCode(string(data)), nil
	}
	if verts := v.GetString("vertices"); verts != "" {
		points, err := parseVertices(verts)
		if err != nil {
			return polytope.Specification{}, err
		}
		return polytope.Vertices(points), nil
	}
	if len(positional) == 0 {
		return polytope.Specification{}, fmt.Errorf("no polytope given; pass inequalities, --vertices or --code-file")
	}
	return polytope.Constraints(positional...), nil
}

// parseVertices reads "1,1;10,1;1,10" into integer coordinate tuples.
// Dimension consistency is checked later by the matrix builder.
func parseVertices(s string) ([][]int64, error) {
	var points [][]int64
	for _, tuple := range strings.Split(s, ";") {
		tuple = strings.TrimSpace(tuple)
		if tuple == "" {
			continue
		}
		var point []int64
		for _, c := range strings.Split(tuple, ",") {
			n, err := strconv.ParseInt(strings.TrimSpace(c), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("bad vertex coordinate %q: %w", c, err)
			}
			point = append(point, n)
		}
		points = append(points, point)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("empty vertex list")
	}
	return points, nil
}

// countOptions maps resolved flag values onto the library's option
// setters.
func countOptions(v *viper.Viper) []latte.CountOption {
	var opts []latte.CountOption
	if v.GetBool("vrep") {
		opts = append(opts, latte.WithVrep())
	}
	if v.GetBool("ehrhart-polynomial") {
		opts = append(opts, latte.WithEhrhartPolynomial())
	}
	if v.GetBool("ehrhart-series") {
		opts = append(opts, latte.WithEhrhartSeries())
	}
	if v.GetBool("multivariate-generating-function") {
		opts = append(opts, latte.WithMultivariateGeneratingFunction())
	}
	if v.GetBool("homog") {
		opts = append(opts, latte.WithHomogenized())
	}
	if n := v.GetInt("ehrhart-taylor"); n > 0 {
		opts = append(opts, latte.WithEhrhartTaylor(n))
	}
	if n := v.GetInt("dilation"); n > 0 {
		opts = append(opts, latte.WithDilation(n))
	}
	if v.GetBool("raw") {
		opts = append(opts, latte.WithRawOutput())
	}
	if v.GetBool("verbose") {
		opts = append(opts, latte.WithVerbose())
	}
	return opts
}

// render formats a Result for the terminal, one line per invocation.
func render(res latte.Result) string {
	switch res.Kind() {
	case latte.KindCount:
		return strconv.FormatInt(res.Count(), 10)
	case latte.KindBigCount:
		return res.BigCount()
	case latte.KindPolynomial, latte.KindTaylorSeries:
		if p := res.Polynomial(); p != nil {
			return p.String()
		}
		return res.Raw()
	default:
		return res.Raw()
	}
}
