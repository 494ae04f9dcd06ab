package vdscript

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// RawRange is one cut declared by a .vdscript subset, in frames.
// End is Start plus the declared frame count, so a range covers
// frames [Start, End).
type RawRange struct {
	Start int
	End   int
}

// Frames returns the number of frames the range covers.
func (r RawRange) Frames() int {
	return r.End - r.Start
}

// ParseError reports a .vdscript document that cannot be converted.
// Line is the 1-based line number of the offending entry, or 0 when
// the document as a whole is at fault.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("vdscript: line %d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("vdscript: %s", e.Msg)
}

const addRangePrefix = "VirtualDub.subset.AddRange("

// Regex to match subset lines like "VirtualDub.subset.AddRange(412,208);"
var addRangePattern = regexp.MustCompile(`^VirtualDub\.subset\.AddRange\((-?\d+)\s*,\s*(-?\d+)\);?$`)

// ParseFile reads a .vdscript file and returns its cut ranges in
// declaration order.
func ParseFile(path string) ([]RawRange, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var ranges []RawRange
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		r, ok, err := parseLine(scanner.Text(), lineNum)
		if err != nil {
			return nil, err
		}
		if ok {
			ranges = append(ranges, r)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(ranges) == 0 {
		return nil, &ParseError{Msg: "no VirtualDub.subset.AddRange entries found"}
	}
	return ranges, nil
}

// Parse extracts the cut ranges from .vdscript content. It is the
// string-based counterpart of ParseFile, mostly useful in tests.
func Parse(content string) ([]RawRange, error) {
	var ranges []RawRange
	for i, line := range strings.Split(content, "\n") {
		r, ok, err := parseLine(line, i+1)
		if err != nil {
			return nil, err
		}
		if ok {
			ranges = append(ranges, r)
		}
	}
	if len(ranges) == 0 {
		return nil, &ParseError{Msg: "no VirtualDub.subset.AddRange entries found"}
	}
	return ranges, nil
}

// parseLine recognizes a single AddRange entry. Lines that are not
// subset entries (settings, MRUList, subset.Clear, blanks) are skipped;
// a line that starts an AddRange entry but does not resolve to two
// valid integers is a hard error rather than silently ignored.
func parseLine(line string, lineNum int) (RawRange, bool, error) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, addRangePrefix) {
		return RawRange{}, false, nil
	}

	matches := addRangePattern.FindStringSubmatch(line)
	if matches == nil {
		return RawRange{}, false, &ParseError{Line: lineNum, Msg: "malformed AddRange entry: " + line}
	}

	start, err := strconv.Atoi(matches[1])
	if err != nil {
		return RawRange{}, false, &ParseError{Line: lineNum, Msg: "invalid start frame: " + matches[1]}
	}
	count, err := strconv.Atoi(matches[2])
	if err != nil {
		return RawRange{}, false, &ParseError{Line: lineNum, Msg: "invalid frame count: " + matches[2]}
	}

	if start < 0 {
		return RawRange{}, false, &ParseError{Line: lineNum, Msg: fmt.Sprintf("start frame must not be negative, got %d", start)}
	}
	if count < 0 {
		return RawRange{}, false, &ParseError{Line: lineNum, Msg: fmt.Sprintf("range ends %d frames before it starts", -count)}
	}

	return RawRange{Start: start, End: start + count}, true, nil
}
