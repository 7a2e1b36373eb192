package tote

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// raceDay is a small but complete race: bets on the three products and a result.
var raceDay = []string{
	"Bet:W:1:100",
	"Bet:W:2:50",
	"Bet:P:1:40",
	"Bet:P:2:30",
	"Bet:P:3:20",
	"Bet:P:5:10",
	"Bet:E:1,2:25",
	"Bet:E:2,1:75",
	"Result:1:2:3",
}

var raceDayPayouts = []string{
	"Win:1:$1.28",
	"Place:1:$0.73",
	"Place:2:$0.98",
	"Place:3:$1.47",
	"Exacta:1,2:$3.28",
}

func TestProcess(t *testing.T) {
	got, err := Process(raceDay)
	if err != nil {
		t.Fatalf("Process() unexpected error: %v", err)
	}
	if diff := cmp.Diff(raceDayPayouts, got); diff != "" {
		t.Errorf("Process() mismatch (-want +got):\n%s", diff)
	}
}

func TestProcess_Degenerate(t *testing.T) {
	testCases := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "win only",
			input: []string{"Bet:W:1:100", "Bet:W:2:50", "Result:1:2:3"},
			want: []string{
				"Win:1:$1.28",
				"Place:1:$NaN",
				"Place:2:$NaN",
				"Place:3:$NaN",
				"Exacta:1,2:$NaN",
			},
		},
		{
			name:  "nobody picked the winner",
			input: []string{"Bet:W:2:50", "Bet:P:2:30", "Bet:P:5:70", "Bet:E:2,1:10", "Result:1:2:3"},
			want: []string{
				"Win:1:$Infinity",
				"Place:1:$Infinity",
				"Place:2:$0.98",
				"Place:3:$Infinity",
				"Exacta:1,2:$Infinity",
			},
		},
		{
			name:  "unreadable stake",
			input: []string{"Bet:W:1:100", "Bet:W:2:fifty", "Result:1:2:3"},
			want: []string{
				"Win:1:$NaN",
				"Place:1:$NaN",
				"Place:2:$NaN",
				"Place:3:$NaN",
				"Exacta:1,2:$NaN",
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Process(tc.input)
			if err != nil {
				t.Fatalf("Process() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Process() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestProcess_IgnoresUnknownRecords(t *testing.T) {
	var noisy []string
	for _, line := range raceDay {
		noisy = append(noisy, "Scratch:7", line)
	}
	noisy = append(noisy, "Scratch:7", "", "Weather:fine")

	got, err := Process(noisy)
	if err != nil {
		t.Fatalf("Process() unexpected error: %v", err)
	}
	if diff := cmp.Diff(raceDayPayouts, got); diff != "" {
		t.Errorf("Process() mismatch (-want +got):\n%s", diff)
	}
}

func TestProcess_FirstResultIsAuthoritative(t *testing.T) {
	input := append([]string{}, raceDay...)
	input = append(input, "Result:5:3:2", "Result:2:1:5")

	got, err := Process(input)
	if err != nil {
		t.Fatalf("Process() unexpected error: %v", err)
	}
	if diff := cmp.Diff(raceDayPayouts, got); diff != "" {
		t.Errorf("Process() mismatch (-want +got):\n%s", diff)
	}
}

func TestProcess_Idempotent(t *testing.T) {
	first, err := Process(raceDay)
	if err != nil {
		t.Fatalf("Process() unexpected error: %v", err)
	}
	second, err := Process(raceDay)
	if err != nil {
		t.Fatalf("Process() unexpected error: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Process() is not idempotent (-first +second):\n%s", diff)
	}
}

func TestProcess_NoResult(t *testing.T) {
	_, err := Process([]string{"Bet:W:1:100", "Scratch:7"})
	if !errors.Is(err, ErrNoResult) {
		t.Errorf("Process() error = %v, want %v", err, ErrNoResult)
	}
}

func TestCompute_Order(t *testing.T) {
	lines, err := Compute(ParseRecords([]string{"Result:4:8:9"}))
	if err != nil {
		t.Fatalf("Compute() unexpected error: %v", err)
	}
	type head struct {
		Product    Product
		Selections []string
	}
	var got []head
	for _, l := range lines {
		got = append(got, head{l.Product, l.Selections})
	}
	want := []head{
		{Win, []string{"4"}},
		{Place, []string{"4"}},
		{Place, []string{"8"}},
		{Place, []string{"9"}},
		{Exacta, []string{"4", "8"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Compute() mismatch (-want +got):\n%s", diff)
	}
}
