package tote

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// DecodeRecords reads raw records from r, one per line.
//
// Empty lines and lines starting with '#' are skipped, every other line is
// returned verbatim (without its line ending), whatever its kind.
func DecodeRecords(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading records: %w", err)
	}
	return lines, nil
}

// DecodeRecordsJSON reads raw records out of a JSON document.
//
// path is a JSONPath expression selecting either a single string or a list of
// strings, for instance "$.race.records[*]".
func DecodeRecordsJSON(r io.Reader, path string) ([]string, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("error decoding JSON records: %w", err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}

	// jsonpath returns a list for wildcards and a single value otherwise.
	jlist, ok := jval.([]any)
	if !ok {
		jlist = []any{jval}
	}
	lines := make([]string, 0, len(jlist))
	for i, v := range jlist {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("error evaluating %q: item %d is not a string: %v", path, i, v)
		}
		lines = append(lines, s)
	}
	return lines, nil
}

// EncodeLines writes lines to w in JSONL format, one object per line.
func EncodeLines(w io.Writer, lines []Line) error {
	for _, l := range lines {
		data, err := json.Marshal(l)
		if err != nil {
			return fmt.Errorf("failed to marshal line %q: %w", l, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write line: %w", err)
		}
	}
	return nil
}
