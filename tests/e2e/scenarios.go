package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/grovetools/tend/pkg/assert"
	"github.com/grovetools/tend/pkg/command"
	"github.com/grovetools/tend/pkg/fs"
	"github.com/grovetools/tend/pkg/harness"
)

const meetingTranscript = `[
  {"timestamp": [0, 5], "speaker": "SPEAKER_01", "text": "Hello"},
  {"timestamp": [5.4, 9.9], "speaker": "SPEAKER_02", "text": "Hi, thanks for joining."},
  {"timestamp": [3661, null], "speaker": "SPEAKER_01", "text": "Much later."},
  {"timestamp": [3700, 3710], "speaker": "SPEAKER_03", "text": "Sorry I'm late."},
  {"text": "Hello Hi, thanks for joining. Much later. Sorry I'm late."}
]`

// setupTranscripts writes sample transcript documents to a fresh directory.
func setupTranscripts(ctx *harness.Context) error {
	dir := ctx.NewDir("transcripts")
	if err := fs.CreateDir(dir); err != nil {
		return err
	}

	if err := fs.WriteString(filepath.Join(dir, "meeting.json"), meetingTranscript); err != nil {
		return fmt.Errorf("failed to write meeting.json: %w", err)
	}
	if err := fs.WriteString(filepath.Join(dir, "hello.json"), `[{"timestamp":[0,5],"speaker":"SPEAKER_01","text":"Hello"}]`); err != nil {
		return err
	}
	if err := fs.WriteString(filepath.Join(dir, "wrapped.json"), `{"speakers":[{"timestamp":[1,2],"speaker":"SPEAKER_00","text":"wrapped"}],"chunks":[],"text":"wrapped"}`); err != nil {
		return err
	}
	if err := fs.WriteString(filepath.Join(dir, "broken.json"), `[{"timestamp": [0, 5], "text": `); err != nil {
		return err
	}
	if err := fs.WriteString(filepath.Join(dir, "speakers.yaml"), "SPEAKER_03: Carol\n"); err != nil {
		return err
	}

	ctx.Set("transcripts_dir", dir)
	return nil
}

// convert runs the root command and returns the written output file.
func convert(ctx *harness.Context, input, output string, flags ...string) (string, error) {
	bin, err := FindProjectBinary()
	if err != nil {
		return "", err
	}
	dir := ctx.GetString("transcripts_dir")
	outPath := filepath.Join(dir, output)

	args := append([]string{filepath.Join(dir, input), outPath}, flags...)
	cmd := command.New(bin, args...)
	result := cmd.Run()
	ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)
	if result.ExitCode != 0 {
		return "", fmt.Errorf("articularity failed: %s", result.Stderr)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		return "", fmt.Errorf("output not written: %w", err)
	}
	return string(data), nil
}

// ConvertScenario tests the default conversion.
func ConvertScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "articularity-convert",
		Steps: []harness.Step{
			harness.NewStep("Setup transcripts", setupTranscripts),
			harness.NewStep("Convert with defaults", func(ctx *harness.Context) error {
				got, err := convert(ctx, "hello.json", "hello.txt")
				if err != nil {
					return err
				}
				return assert.Equal("[00:00:00 - 00:00:05] SPEAKER_01: Hello", got, "Should render timestamp, speaker and text")
			}),
			harness.NewStep("Convert drops trailer block", func(ctx *harness.Context) error {
				got, err := convert(ctx, "meeting.json", "meeting.txt")
				if err != nil {
					return err
				}
				want := "[00:00:00 - 00:00:05] SPEAKER_01: Hello\n" +
					"[00:00:05 - 00:00:09] SPEAKER_02: Hi, thanks for joining.\n" +
					"[01:01:01 - 00:00:00] SPEAKER_01: Much later.\n" +
					"[01:01:40 - 01:01:50] SPEAKER_03: Sorry I'm late."
				return assert.Equal(want, got, "Should render every chunk except the trailer")
			}),
			harness.NewStep("Convert wrapped document", func(ctx *harness.Context) error {
				got, err := convert(ctx, "wrapped.json", "wrapped.txt")
				if err != nil {
					return err
				}
				return assert.Equal("[00:00:01 - 00:00:02] SPEAKER_00: wrapped", got, "Should read the speakers array")
			}),
		},
	}
}

// ConvertOptionsScenario tests the inclusion and speaker flags.
func ConvertOptionsScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "articularity-convert-options",
		Steps: []harness.Step{
			harness.NewStep("Setup transcripts", setupTranscripts),
			harness.NewStep("Convert with --speaker_id", func(ctx *harness.Context) error {
				got, err := convert(ctx, "hello.json", "alice.txt", "--speaker_id", "Alice")
				if err != nil {
					return err
				}
				return assert.Equal("[00:00:00 - 00:00:05] Alice: Hello", got, "Should map SPEAKER_01 to Alice")
			}),
			harness.NewStep("Convert with --no_timestamp --no_speaker", func(ctx *harness.Context) error {
				got, err := convert(ctx, "hello.json", "plain.txt", "--no_timestamp", "--no_speaker")
				if err != nil {
					return err
				}
				return assert.Equal("Hello", got, "Should render text only")
			}),
			harness.NewStep("Convert with --first_three and --speaker_map", func(ctx *harness.Context) error {
				dir := ctx.GetString("transcripts_dir")
				got, err := convert(ctx, "meeting.json", "short.txt",
					"--first_three", "--no_timestamp",
					"--speaker_id", "Alice", "--speaker_id", "Bob",
					"--speaker_map", filepath.Join(dir, "speakers.yaml"))
				if err != nil {
					return err
				}
				want := "Alice: Hello\nBob: Hi, thanks for joining.\nAlice: Much later."
				if err := assert.Equal(want, got, "Should keep only three chunks"); err != nil {
					return err
				}
				return assert.NotContains(got, "Carol", "Fourth chunk should be cut")
			}),
		},
	}
}

// ConvertErrorsScenario tests fatal input failures.
func ConvertErrorsScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "articularity-convert-errors",
		Steps: []harness.Step{
			harness.NewStep("Setup transcripts", setupTranscripts),
			harness.NewStep("Invalid JSON fails", func(ctx *harness.Context) error {
				bin, err := FindProjectBinary()
				if err != nil {
					return err
				}
				dir := ctx.GetString("transcripts_dir")
				cmd := command.New(bin, filepath.Join(dir, "broken.json"), filepath.Join(dir, "broken.txt"))
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if result.ExitCode == 0 {
					return fmt.Errorf("expected non-zero exit for invalid JSON")
				}
				if _, err := os.Stat(filepath.Join(dir, "broken.txt")); err == nil {
					return fmt.Errorf("output should not be written on parse failure")
				}
				return nil
			}),
			harness.NewStep("Missing input fails", func(ctx *harness.Context) error {
				bin, err := FindProjectBinary()
				if err != nil {
					return err
				}
				dir := ctx.GetString("transcripts_dir")
				cmd := command.New(bin, filepath.Join(dir, "nope.json"), filepath.Join(dir, "nope.txt"))
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if result.ExitCode == 0 {
					return fmt.Errorf("expected non-zero exit for missing input")
				}
				return nil
			}),
		},
	}
}

// SpeakersScenario tests the 'articularity speakers' command.
func SpeakersScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "articularity-speakers",
		Steps: []harness.Step{
			harness.NewStep("Setup transcripts", setupTranscripts),
			harness.NewStep("Run 'articularity speakers'", func(ctx *harness.Context) error {
				bin, err := FindProjectBinary()
				if err != nil {
					return err
				}
				dir := ctx.GetString("transcripts_dir")
				cmd := command.New(bin, "speakers", filepath.Join(dir, "meeting.json"), "--speaker_id", "Alice")
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "speakers should exit successfully"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stdout, "SPEAKING TIME", "Should print table header"); err != nil {
					return err
				}
				if err := assert.Contains(result.Stdout, "Alice", "Should show resolved names"); err != nil {
					return err
				}
				return assert.Contains(result.Stdout, "4 of 5 records rendered", "Should report excluded records")
			}),
			harness.NewStep("Run 'articularity speakers --json'", func(ctx *harness.Context) error {
				bin, err := FindProjectBinary()
				if err != nil {
					return err
				}
				dir := ctx.GetString("transcripts_dir")
				cmd := command.New(bin, "speakers", filepath.Join(dir, "meeting.json"), "--json")
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if result.ExitCode != 0 {
					return fmt.Errorf("speakers --json failed: %s", result.Stderr)
				}

				var speakers []map[string]interface{}
				if err := json.Unmarshal([]byte(result.Stdout), &speakers); err != nil {
					return fmt.Errorf("failed to parse JSON output: %w", err)
				}
				if err := assert.Equal(3, len(speakers), "Should list three speakers"); err != nil {
					return err
				}
				for _, s := range speakers {
					if _, ok := s["tag"]; !ok {
						return fmt.Errorf("missing tag field in JSON output")
					}
					if _, ok := s["speakingTime"]; !ok {
						return fmt.Errorf("missing speakingTime field in JSON output")
					}
				}
				return nil
			}),
		},
	}
}

// BatchScenario tests the 'articularity batch' command.
func BatchScenario() *harness.Scenario {
	return &harness.Scenario{
		Name: "articularity-batch",
		Steps: []harness.Step{
			harness.NewStep("Setup transcripts", setupTranscripts),
			harness.NewStep("Run 'articularity batch'", func(ctx *harness.Context) error {
				bin, err := FindProjectBinary()
				if err != nil {
					return err
				}
				dir := ctx.GetString("transcripts_dir")
				outDir := filepath.Join(dir, "out")
				cmd := command.New(bin, "batch",
					filepath.Join(dir, "hello.json"),
					filepath.Join(dir, "meeting.json"),
					"--out-dir", outDir, "--jobs", "2", "--no_speaker")
				result := cmd.Run()
				ctx.ShowCommandOutput(cmd.String(), result.Stdout, result.Stderr)

				if err := assert.Equal(0, result.ExitCode, "batch should exit successfully"); err != nil {
					return err
				}
				hello, err := os.ReadFile(filepath.Join(outDir, "hello.txt"))
				if err != nil {
					return err
				}
				if err := assert.Equal("[00:00:00 - 00:00:05] Hello", string(hello), "Should render hello.json"); err != nil {
					return err
				}
				_, err = os.Stat(filepath.Join(outDir, "meeting.txt"))
				return err
			}),
		},
	}
}
