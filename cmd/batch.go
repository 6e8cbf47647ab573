package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/fblissjr/articularity/pkg/articularity"
	grovelogging "github.com/grovetools/core/logging"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var ulogBatch = grovelogging.NewUnifiedLogger("articularity.cmd.batch")

func newBatchCmd() *cobra.Command {
	var flags renderFlags
	var outDir string
	var jobs int

	cmd := &cobra.Command{
		Use:   "batch <input_json>... --out-dir <dir>",
		Short: "Convert several transcripts concurrently",
		Long:  "Convert each input to <out-dir>/<name>.txt using the same rendering flags. Stops at the first failure.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			opts, err := flags.options(cfg.Render)
			if err != nil {
				return err
			}

			if jobs <= 0 {
				jobs = cfg.Batch.Jobs
			}
			if jobs <= 0 {
				jobs = runtime.NumCPU()
			}

			targets, err := batchTargets(args, outDir)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(outDir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}

			return runBatch(context.Background(), targets, opts, flags.headLimit(), jobs)
		},
	}

	flags.bind(cmd)
	cmd.Flags().StringVarP(&outDir, "out-dir", "o", "", "Directory to write the .txt files to")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "Number of files converted concurrently (default: config or CPU count)")
	cmd.MarkFlagRequired("out-dir")

	return cmd
}

// batchTarget pairs an input document with its output path.
type batchTarget struct {
	input  string
	output string
}

// batchTargets derives one output per input and rejects inputs that would
// overwrite each other.
func batchTargets(inputs []string, outDir string) ([]batchTarget, error) {
	seen := make(map[string]string, len(inputs))
	targets := make([]batchTarget, 0, len(inputs))
	for _, in := range inputs {
		base := filepath.Base(in)
		name := strings.TrimSuffix(base, filepath.Ext(base)) + ".txt"
		out := filepath.Join(outDir, name)
		if prev, ok := seen[out]; ok {
			return nil, fmt.Errorf("inputs %s and %s would both be written to %s", prev, in, out)
		}
		seen[out] = in
		targets = append(targets, batchTarget{input: in, output: out})
	}
	return targets, nil
}

func runBatch(ctx context.Context, targets []batchTarget, opts articularity.Options, limit, jobs int) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for _, t := range targets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			src := articularity.NewFileSource(t.input)
			src.Limit = limit
			sink := articularity.NewFileSink(t.output)
			if err := articularity.Convert(gctx, src, sink, opts); err != nil {
				return fmt.Errorf("%s: %w", t.input, err)
			}

			ulogBatch.Info("Transcript converted").
				Field("input", t.input).
				Field("output", t.output).
				Field("bytes", sink.Result.Bytes).
				Field("digest", sink.Result.Digest).
				Pretty(fmt.Sprintf("%s -> %s\n", t.input, t.output)).
				PrettyOnly().
				Log(gctx)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("batch conversion failed: %w", err)
	}
	return nil
}
