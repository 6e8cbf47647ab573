package config

//go:generate go run ../tools/schema-generator

// RenderConfig defines the default rendering settings. Command-line flags
// override every field.
type RenderConfig struct {
	// IncludeTimestamps controls the "[HH:MM:SS - HH:MM:SS]" prefix.
	// Unset (default) includes timestamps.
	IncludeTimestamps *bool `yaml:"include_timestamps,omitempty"`

	// IncludeSpeakers controls the "Name:" prefix.
	// Unset (default) includes speakers.
	IncludeSpeakers *bool `yaml:"include_speakers,omitempty"`

	// SpeakerNames are display names assigned in order to the first,
	// second, ... speaker tag.
	SpeakerNames []string `yaml:"speaker_names,omitempty"`

	// SpeakerTagFormat is the printf format producers use for speaker tags.
	// "" (default) means "SPEAKER_%02d".
	SpeakerTagFormat string `yaml:"speaker_tag_format,omitempty"`

	// SpeakerMap maps tags to display names explicitly. Entries win over
	// SpeakerNames.
	SpeakerMap map[string]string `yaml:"speaker_map,omitempty"`
}

// BatchConfig defines settings for multi-file conversion.
type BatchConfig struct {
	// Jobs is the number of files converted concurrently.
	// 0 (default): one per CPU.
	Jobs int `yaml:"jobs,omitempty"`
}

// Config is the top-level configuration structure for articularity.
type Config struct {
	Render RenderConfig `yaml:"render,omitempty"`
	Batch  BatchConfig  `yaml:"batch,omitempty"`
}
