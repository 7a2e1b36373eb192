package tote

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeRecords(t *testing.T) {
	input := "# race 7\r\nBet:W:1:100\r\n\nScratch:7\n   \nResult:1:2:3"
	got, err := DecodeRecords(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeRecords() unexpected error: %v", err)
	}
	want := []string{"Bet:W:1:100", "Scratch:7", "Result:1:2:3"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DecodeRecords() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeRecordsJSON(t *testing.T) {
	doc := `{"race": {"id": 7, "records": ["Bet:W:1:100", "Bet:W:2:50", "Result:1:2:3"]}}`
	testCases := []struct {
		name    string
		path    string
		want    []string
		wantErr bool
	}{
		{name: "wildcard", path: "$.race.records[*]", want: []string{"Bet:W:1:100", "Bet:W:2:50", "Result:1:2:3"}},
		{name: "array", path: "$.race.records", want: []string{"Bet:W:1:100", "Bet:W:2:50", "Result:1:2:3"}},
		{name: "single", path: "$.race.records[2]", want: []string{"Result:1:2:3"}},
		{name: "not a string", path: "$.race.id", wantErr: true},
		{name: "missing", path: "$.nope", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeRecordsJSON(strings.NewReader(doc), tc.path)
			if (err != nil) != tc.wantErr {
				t.Fatalf("DecodeRecordsJSON(%q) error = %v, wantErr %v", tc.path, err, tc.wantErr)
			}
			if tc.wantErr {
				return
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("DecodeRecordsJSON(%q) mismatch (-want +got):\n%s", tc.path, diff)
			}
		})
	}
}

func TestEncodeLines(t *testing.T) {
	lines, err := Compute(ParseRecords([]string{"Bet:W:1:100", "Bet:W:2:50", "Result:1:2:3"}))
	if err != nil {
		t.Fatalf("Compute() unexpected error: %v", err)
	}
	var buf bytes.Buffer
	if err := EncodeLines(&buf, lines[:1]); err != nil {
		t.Fatalf("EncodeLines() unexpected error: %v", err)
	}
	want := `{"product":"Win","selections":["1"],"dividend":"1.28"}` + "\n"
	if got := buf.String(); got != want {
		t.Errorf("EncodeLines() = %q, want %q", got, want)
	}
}
