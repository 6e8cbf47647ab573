package cmd

import (
	"fmt"
	"strings"

	"github.com/fblissjr/articularity/internal/output"
	"github.com/fblissjr/articularity/internal/render"
	"github.com/grovetools/core/cli"
	grovelogging "github.com/grovetools/core/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	ulogConvert = grovelogging.NewUnifiedLogger("articularity.cmd.convert")
	logConvert  = grovelogging.NewLogger("articularity-convert")
)

// NewRootCmd creates the root command for articularity. Given an input and
// an output path, the root command itself performs the conversion.
func NewRootCmd() *cobra.Command {
	rootCmd := cli.NewStandardCommand(
		"articularity",
		"Render speech transcript JSON as readable text",
	)

	var flags renderFlags
	rootCmd.Use = "articularity <input_json> <output_txt>"
	rootCmd.Long = "Convert a JSON transcript (an array of {timestamp, speaker, text} chunks) into one line per chunk:\n\n" +
		"  [00:00:00 - 00:00:05] SPEAKER_01: Hello\n\n" +
		"Use \"-\" as output_txt to write to stdout."
	rootCmd.Args = func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return fmt.Errorf("accepts input_json and output_txt, received %d arg(s)", len(args))
		}
		return nil
	}
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runConvert(&flags, args[0], args[1])
	}
	flags.bind(rootCmd)

	rootCmd.AddCommand(newPreviewCmd())
	rootCmd.AddCommand(newSpeakersCmd())
	rootCmd.AddCommand(newBatchCmd())

	return rootCmd
}

func runConvert(flags *renderFlags, inputPath, outputPath string) error {
	cfg := loadConfig()
	opts, err := flags.options(cfg.Render)
	if err != nil {
		return err
	}

	seq, err := flags.loadSequence(inputPath)
	if err != nil {
		return err
	}

	lines := render.Lines(seq, opts)
	res, err := output.WriteFile(outputPath, strings.Join(lines, "\n"))
	if err != nil {
		return err
	}

	logConvert.WithFields(logrus.Fields{
		"input":   inputPath,
		"output":  res.Path,
		"records": len(seq),
		"lines":   len(lines),
		"bytes":   res.Bytes,
		"digest":  res.Digest,
	}).Debug("Transcript rendered")

	if outputPath != output.Stdout {
		ulogConvert.Info("Transcript written").
			Field("input", inputPath).
			Field("output", res.Path).
			Field("lines", len(lines)).
			Field("digest", res.Digest).
			Pretty(fmt.Sprintf("Wrote %d lines to %s\n", len(lines), res.Path)).
			PrettyOnly().
			Emit()
	}
	return nil
}
