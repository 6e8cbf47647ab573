package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fblissjr/articularity/internal/display"
	"github.com/fblissjr/articularity/internal/render"
	"github.com/fblissjr/articularity/internal/transcript"
	"github.com/spf13/cobra"
)

// speakerReport is the JSON form of one row of the speakers table.
type speakerReport struct {
	transcript.SpeakerStats
	Name         string `json:"name,omitempty"`
	SpeakingTime string `json:"speakingTime"`
}

func newSpeakersCmd() *cobra.Command {
	var flags renderFlags
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "speakers <input_json>",
		Short: "Summarize who speaks and for how long",
		Long:  "List each speaker tag with its resolved display name, line count, word count and total speaking time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(loadConfig().Render)
			if err != nil {
				return err
			}
			seq, err := flags.loadSequence(args[0])
			if err != nil {
				return err
			}

			sum := transcript.Summarize(seq)
			if len(sum.Speakers) == 0 {
				fmt.Println("No renderable records found.")
				return nil
			}

			if jsonOutput {
				reports := make([]speakerReport, 0, len(sum.Speakers))
				for _, s := range sum.Speakers {
					name, _ := opts.Speakers.Lookup(s.Tag)
					duration := s.Duration
					reports = append(reports, speakerReport{
						SpeakerStats: s,
						Name:         name,
						SpeakingTime: render.FormatOffset(&duration),
					})
				}
				data, err := json.MarshalIndent(reports, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal speakers to JSON: %w", err)
				}
				fmt.Println(string(data))
				return nil
			}

			display.PrintSpeakersTable(sum, opts.Speakers, os.Stdout)
			return nil
		},
	}

	flags.bind(cmd)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
