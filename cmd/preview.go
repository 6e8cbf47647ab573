package cmd

import (
	"context"
	"fmt"

	"github.com/fblissjr/articularity/internal/display"
	"github.com/fblissjr/articularity/internal/render"
	grovelogging "github.com/grovetools/core/logging"
	"github.com/spf13/cobra"
)

var ulogPreview = grovelogging.NewUnifiedLogger("articularity.cmd.preview")

func newPreviewCmd() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "preview <input_json>",
		Short: "Print a styled rendering of a transcript to the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			inputPath := args[0]

			opts, err := flags.options(loadConfig().Render)
			if err != nil {
				return err
			}
			seq, err := flags.loadSequence(inputPath)
			if err != nil {
				return err
			}

			var segments []render.Segments
			for _, rec := range seq {
				if seg, ok := render.Split(rec, opts); ok {
					segments = append(segments, seg)
				}
			}

			ulogPreview.Info("Preview transcript").
				Field("input", inputPath).
				Field("line_count", len(segments)).
				Field("total_records", len(seq)).
				Pretty(fmt.Sprintf("Showing %d lines from %s:\n\n", len(segments), inputPath)).
				PrettyOnly().
				Log(ctx)

			previewer := display.NewPreviewer()
			for i, seg := range segments {
				ulogPreview.Info("Line").
					Field("index", i).
					Field("speaker", seg.Speaker).
					Field("time_range", seg.TimeRange).
					Pretty(previewer.Line(seg) + "\n").
					PrettyOnly().
					Log(ctx)
			}
			return nil
		},
	}

	flags.bind(cmd)
	return cmd
}
