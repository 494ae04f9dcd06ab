package cutlist

import "fmt"

// Config carries the parameters of one conversion run. A Config is
// built once, validated once, and never mutated afterwards; each run
// gets its own.
type Config struct {
	// SourcePath is the .vdscript file to read.
	SourcePath string
	// DestPath is where the .llc document is written.
	DestPath string
	// MediaFilename is the name of the original video file, embedded
	// in the .llc so LosslessCut can match the project to its media.
	MediaFilename string
	// FPS is the frame rate of the video the cuts belong to. The
	// accuracy of every timestamp depends on it.
	FPS float64
	// ExtraFramesStart is added before each cut's start frame.
	// Positive values extend the cut backward, negative values trim
	// frames off the front. The start never goes below frame 0.
	ExtraFramesStart int
	// ExtraFramesEnd is added after each cut's end frame. Positive
	// values extend the cut, negative values trim its tail.
	ExtraFramesEnd int
	// AddSegmentNumber names surviving segments "segment 1",
	// "segment 2", ... in output order.
	AddSegmentNumber bool
	// Overwrite allows replacing an existing destination file.
	Overwrite bool
}

// ConfigError reports an invalid Config field.
type ConfigError struct {
	Field string
	Msg   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Msg)
}

// Validate checks the Config before any file is touched.
func (c Config) Validate() error {
	if c.SourcePath == "" {
		return &ConfigError{Field: "source path", Msg: "required"}
	}
	if c.DestPath == "" {
		return &ConfigError{Field: "destination path", Msg: "required"}
	}
	if c.MediaFilename == "" {
		return &ConfigError{Field: "media filename", Msg: "required"}
	}
	if c.FPS <= 0 {
		return &ConfigError{Field: "fps", Msg: fmt.Sprintf("must be greater than zero, got %g", c.FPS)}
	}
	return nil
}
