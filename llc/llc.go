package llc

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Version is the .llc project format version this package writes.
const Version = 1

// Document is a LosslessCut project (.llc) file.
type Document struct {
	Version       int       `json:"version"`
	MediaFileName string    `json:"mediaFileName"`
	CutSegments   []Segment `json:"cutSegments"`
}

// Segment is one cut of the project. Start and End are timestamps in
// seconds; Name may be empty.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Name  string  `json:"name"`
}

// New returns a Document for the given media file with no cuts yet.
func New(mediaFileName string) *Document {
	return &Document{
		Version:       Version,
		MediaFileName: mediaFileName,
		CutSegments:   []Segment{},
	}
}

// Marshal renders the document the way LosslessCut saves it: JSON with
// two-space indentation.
func Marshal(doc *Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// WriteFile serializes doc to path. The document is written to a
// temporary file next to the destination and renamed into place, so a
// failure never leaves a partial file. Unless overwrite is set, an
// existing destination is an error.
func WriteFile(path string, doc *Document, overwrite bool) error {
	data, err := Marshal(doc)
	if err != nil {
		return err
	}

	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("destination %s already exists (use overwrite to replace it)", path)
		} else if !os.IsNotExist(err) {
			return err
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	// CreateTemp opens the file 0600; the rename would carry that over.
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
