// Package toon implements TOON (Token-Oriented Object Notation) encoding of
// statement-line maps.
package toon

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/phobologic/locstostms/internal/model"
)

var (
	needsQuoting = regexp.MustCompile(`[,:"\\{}\[\]]`)
	looksNumeric = regexp.MustCompile(`^-?(?:0|[1-9]\d*)(?:\.\d+)?$`)
	keywords     = map[string]struct{}{
		"true":  {},
		"false": {},
		"null":  {},
	}
)

// Encode converts mapped files into TOON: a files table followed by a pairs
// table keyed by artifact name.
func Encode(results []model.FileResult) string {
	var parts []string

	var fileRows [][]string
	for i := range results {
		r := &results[i]
		fileRows = append(fileRows, []string{
			r.Artifact(),
			r.Path,
			fmt.Sprintf("%d", r.Owners),
			fmt.Sprintf("%d", len(r.Pairs)),
		})
	}
	parts = append(parts, formatTabular("files", []string{"artifact", "source", "statements", "pairs"}, fileRows))

	var pairRows [][]string
	for i := range results {
		r := &results[i]
		artifact := r.Artifact()
		for _, p := range r.Pairs {
			pairRows = append(pairRows, []string{
				artifact,
				fmt.Sprintf("%d", p.Owner),
				fmt.Sprintf("%d", p.Member),
			})
		}
	}
	parts = append(parts, formatTabular("pairs", []string{"artifact", "owner", "member"}, pairRows))

	return strings.Join(parts, "\n")
}

func formatTabular(name string, columns []string, rows [][]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s[%d]{%s}:", name, len(rows), strings.Join(columns, ","))
	for _, row := range rows {
		encoded := make([]string, len(row))
		for i, cell := range row {
			encoded[i] = encodeValue(cell)
		}
		fmt.Fprintf(&b, "\n  %s", strings.Join(encoded, ","))
	}
	return b.String()
}

func encodeValue(value string) string {
	if value == "" {
		return `""`
	}

	if value != strings.TrimSpace(value) {
		return quote(value)
	}

	if strings.ContainsAny(value, "\n\r\t") {
		return quote(value)
	}

	if _, ok := keywords[strings.ToLower(value)]; ok {
		return quote(value)
	}

	if looksNumeric.MatchString(value) {
		return value
	}

	if needsQuoting.MatchString(value) {
		return quote(value)
	}

	if strings.HasPrefix(value, "-") {
		return quote(value)
	}

	return value
}

func quote(value string) string {
	escaped := strings.ReplaceAll(value, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	escaped = strings.ReplaceAll(escaped, "\n", `\n`)
	escaped = strings.ReplaceAll(escaped, "\r", `\r`)
	escaped = strings.ReplaceAll(escaped, "\t", `\t`)
	return `"` + escaped + `"`
}
