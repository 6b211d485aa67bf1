// Package output writes statement-line pairs in the supported formats.
package output

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/phobologic/locstostms/internal/model"
	"github.com/phobologic/locstostms/internal/toon"
)

// Format names an output encoding.
type Format string

const (
	// Lines writes one "<artifact>#<owner>:<artifact>#<member>" line per pair.
	Lines Format = "lines"
	// TOON writes a files table and a pairs table.
	TOON Format = "toon"
)

// ErrUnknownFormat is returned for format names other than Lines and TOON.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case Lines, TOON:
		return f, nil
	}
	return "", fmt.Errorf("%w %q (want %q or %q)", ErrUnknownFormat, name, Lines, TOON)
}

// Line formats a single pair of r.
func Line(r model.FileResult, p model.Pair) string {
	artifact := r.Artifact()
	return fmt.Sprintf("%s#%d:%s#%d", artifact, p.Owner, artifact, p.Member)
}

// Write encodes results to w in format f.
func Write(w io.Writer, f Format, results []model.FileResult) error {
	bw := bufio.NewWriter(w)
	switch f {
	case Lines:
		for _, r := range results {
			for _, p := range r.Pairs {
				if _, err := fmt.Fprintln(bw, Line(r, p)); err != nil {
					return err
				}
			}
		}
	case TOON:
		if _, err := fmt.Fprintln(bw, toon.Encode(results)); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, f)
	}
	return bw.Flush()
}
