package cmd

import (
	"fmt"
	"os"
	"strings"

	articularity_config "github.com/fblissjr/articularity/config"
	"github.com/fblissjr/articularity/internal/render"
	"github.com/fblissjr/articularity/internal/transcript"
	core_config "github.com/grovetools/core/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// firstThree is the record count kept by --first_three.
const firstThree = 3

// renderFlags holds the flags shared by every command that renders.
type renderFlags struct {
	noTimestamp bool
	noSpeaker   bool
	speakerIDs  []string
	speakerMap  string
	tagFormat   string
	firstThree  bool
	limit       int
}

func (f *renderFlags) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.noTimestamp, "no_timestamp", false, "Exclude timestamps from the output")
	cmd.Flags().BoolVar(&f.noSpeaker, "no_speaker", false, "Exclude speaker information from the output")
	cmd.Flags().StringArrayVar(&f.speakerIDs, "speaker_id", nil, "Display name for the next speaker tag (SPEAKER_01, SPEAKER_02, ...); repeat once per speaker")
	cmd.Flags().StringVar(&f.speakerMap, "speaker_map", "", "YAML file mapping speaker tags to display names")
	cmd.Flags().StringVar(&f.tagFormat, "tag_format", "", "printf format of the producer's speaker tags (default \"SPEAKER_%02d\")")
	cmd.Flags().BoolVar(&f.firstThree, "first_three", false, "Process only the first 3 records of the transcript")
	cmd.Flags().IntVar(&f.limit, "limit", 0, "Process only the first N records (0 for all)")
}

// headLimit returns the number of records to keep, 0 meaning all.
func (f *renderFlags) headLimit() int {
	n := f.limit
	if n < 0 {
		n = 0
	}
	if f.firstThree && (n == 0 || n > firstThree) {
		n = firstThree
	}
	return n
}

// options merges config defaults with the flags. Flags win.
func (f *renderFlags) options(cfg articularity_config.RenderConfig) (render.Options, error) {
	opts := render.DefaultOptions()
	if cfg.IncludeTimestamps != nil {
		opts.IncludeTimestamps = *cfg.IncludeTimestamps
	}
	if cfg.IncludeSpeakers != nil {
		opts.IncludeSpeakers = *cfg.IncludeSpeakers
	}
	if f.noTimestamp {
		opts.IncludeTimestamps = false
	}
	if f.noSpeaker {
		opts.IncludeSpeakers = false
	}

	format := cfg.SpeakerTagFormat
	if f.tagFormat != "" {
		format = f.tagFormat
	}
	scheme := render.DefaultTagScheme
	if format != "" {
		if err := validateTagFormat(format); err != nil {
			return opts, err
		}
		scheme = render.FormatTagScheme(format)
	}

	names := cfg.SpeakerNames
	if len(f.speakerIDs) > 0 {
		names = f.speakerIDs
	}
	speakers := render.NewSpeakerIDMap(names, scheme).With(cfg.SpeakerMap)

	if f.speakerMap != "" {
		overrides, err := readSpeakerMap(f.speakerMap)
		if err != nil {
			return opts, err
		}
		speakers = speakers.With(overrides)
	}
	opts.Speakers = speakers

	return opts, nil
}

// loadSequence decodes the input and applies the record limit.
func (f *renderFlags) loadSequence(path string) (transcript.Sequence, error) {
	seq, err := transcript.NewDecoder().DecodeFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load transcript %s: %w", path, err)
	}
	return seq.Head(f.headLimit()), nil
}

func validateTagFormat(format string) error {
	if s := fmt.Sprintf(format, 1); strings.Contains(s, "%!") {
		return fmt.Errorf("invalid speaker tag format %q: want a single integer verb such as SPEAKER_%%02d", format)
	}
	return nil
}

func readSpeakerMap(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read speaker map: %w", err)
	}
	var m map[string]string
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse speaker map %s: %w", path, err)
	}
	return m, nil
}

// extensionSource is the part of the grove config loadConfig needs.
type extensionSource interface {
	UnmarshalExtension(name string, target interface{}) error
}

// loadConfig reads the articularity extension from grove.yml. A missing or
// unreadable config yields the zero Config.
func loadConfig() articularity_config.Config {
	coreCfg, err := core_config.LoadDefault()
	if err != nil {
		logConvert.WithError(err).Debug("No grove config loaded")
		return articularity_config.Config{}
	}
	return extensionConfig(coreCfg, logConvert)
}

// extensionConfig decodes the articularity block. A block that does not
// decode is logged and replaced by the zero Config.
func extensionConfig(src extensionSource, logger *logrus.Entry) articularity_config.Config {
	var cfg articularity_config.Config
	if err := src.UnmarshalExtension("articularity", &cfg); err != nil {
		logger.WithError(err).WithField("extension", "articularity").
			Debug("Ignoring invalid articularity config")
		return articularity_config.Config{}
	}
	return cfg
}
