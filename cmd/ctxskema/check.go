package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/reoring/ctxskema"
	"github.com/reoring/ctxskema/decode"
	"github.com/reoring/ctxskema/i18n"
	"github.com/reoring/ctxskema/internal/admission"
	"github.com/reoring/ctxskema/source"
)

var errRejected = errors.New("one or more documents were rejected")

type checkResult struct {
	path   string
	format source.Format
	req    admission.Request
	err    error
}

type checkOptions struct {
	limitsPath string
	format     string
	failFast   bool
	lang       string
	verbose    bool
	maxBytes   int64
}

func newCheckCmd() *cobra.Command {
	var opts checkOptions
	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Decode deployment requests against operator limits",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(opts.verbose)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			limits, err := loadLimits(opts.limitsPath)
			if err != nil {
				return err
			}
			log.Debug("loaded limits",
				zap.String("path", opts.limitsPath),
				zap.Float64("max_replicas", limits.MaxReplicas),
				zap.Strings("regions", limits.Regions),
			)
			i18n.SetLanguage(opts.lang)
			return runCheck(cmd.Context(), log, cmd.OutOrStdout(), limits, opts, args)
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&opts.limitsPath, "limits", "limits.yaml", "limits file (yaml, json or toml); CTXSKEMA_* env vars override it")
	fs.StringVar(&opts.format, "format", "", "input format: json, yaml or msgpack (default: by file extension)")
	fs.BoolVar(&opts.failFast, "fail-fast", false, "stop at the first issue of each document")
	fs.StringVar(&opts.lang, "lang", "en", "message language (en, ja)")
	fs.BoolVar(&opts.verbose, "verbose", false, "enable development logging")
	fs.Int64Var(&opts.maxBytes, "max-bytes", 0, "reject documents larger than this many bytes (0: unlimited)")
	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// loadLimits reads the decode context from a config file with env overrides.
func loadLimits(path string) (admission.Limits, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("CTXSKEMA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	v.SetDefault("max_replicas", 1)
	v.SetDefault("regions", []string{})
	v.SetDefault("reserved_names", []string{})

	var limits admission.Limits
	if err := v.ReadInConfig(); err != nil {
		return limits, fmt.Errorf("reading limits %s: %w", path, err)
	}
	if err := v.Unmarshal(&limits); err != nil {
		return limits, fmt.Errorf("decoding limits %s: %w", path, err)
	}
	return limits, nil
}

func runCheck(ctx context.Context, log *zap.Logger, out io.Writer, limits admission.Limits, opts checkOptions, files []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.failFast {
		ctx = decode.WithFailFast(ctx, true)
	}
	var forced *source.Format
	if opts.format != "" {
		f, ok := source.ParseFormat(opts.format)
		if !ok {
			return fmt.Errorf("unknown format %q", opts.format)
		}
		forced = &f
	}

	// Documents are decoded concurrently; output keeps argument order.
	schema := admission.Schema()
	results := make([]checkResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range files {
		i, path := i, path
		format := source.FormatFromPath(path)
		if forced != nil {
			format = *forced
		}
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			req, err := ctxskema.DecodeFrom(gctx, schema, limits, format, data, source.Options{MaxBytes: opts.maxBytes})
			results[i] = checkResult{path: path, format: format, req: req, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	rejected := 0
	for _, r := range results {
		if r.err != nil {
			rejected++
			log.Warn("document rejected", zap.String("path", r.path), zap.String("format", r.format.String()), zap.Error(r.err))
			fmt.Fprintf(out, "REJECTED %s\n%s\n", r.path, decode.Draw(r.err))
			continue
		}
		log.Info("document admitted", zap.String("path", r.path), zap.String("name", r.req.Name), zap.Int("replicas", r.req.Replicas))
		fmt.Fprintf(out, "OK %s\n", r.path)
	}
	if rejected > 0 {
		return errRejected
	}
	return nil
}
