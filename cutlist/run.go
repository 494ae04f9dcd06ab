package cutlist

import (
	"errors"

	"vdcut/llc"
	"vdcut/vdscript"
)

// Result reports a completed conversion.
type Result struct {
	// Segments are the cuts written to the destination, in order.
	Segments []Segment
	// Skipped lists the cuts dropped during adjustment. A run with
	// skipped cuts is still a success.
	Skipped []SkippedSegment
}

// Run performs one whole conversion: parse the .vdscript, adjust and
// convert its ranges, and write the .llc document. Fatal errors abort
// before the destination is touched; the destination is written
// atomically, so a failed run never leaves a partial file behind.
func Run(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ranges, err := vdscript.ParseFile(cfg.SourcePath)
	if err != nil {
		var parseErr *vdscript.ParseError
		if errors.As(err, &parseErr) {
			return nil, err
		}
		// Anything else means the source could not be read, which is a
		// configuration problem rather than corrupt input.
		return nil, &ConfigError{Field: "source path", Msg: err.Error()}
	}

	segments, skipped := Build(ranges, cfg)

	doc := llc.New(cfg.MediaFilename)
	for _, s := range segments {
		doc.CutSegments = append(doc.CutSegments, llc.Segment{
			Start: s.Start,
			End:   s.End,
			Name:  s.Name,
		})
	}

	if err := llc.WriteFile(cfg.DestPath, doc, cfg.Overwrite); err != nil {
		return nil, err
	}

	return &Result{Segments: segments, Skipped: skipped}, nil
}
