package cmd

import (
	"github.com/etnz/tote/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
//
// A main package calls Completion().Complete(name) before parsing flags: it
// is a no-op unless the shell is asking for completions.
func Completion() *complete.Command {
	topics, _ := docs.List()
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"currency": predict.Set{"USD", "AUD", "NZD", "EUR", "GBP"},
			"v":        predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"dividends": {
				Flags: map[string]complete.Predictor{
					"f":        predict.Files("*"),
					"format":   predict.Set(formats),
					"jsonpath": predict.Something,
				},
			},
			"products": {
				Flags: map[string]complete.Predictor{"html": predict.Nothing},
				Args:  predict.Set{"W", "P", "E", "Win", "Place", "Exacta"},
			},
			"topic": {Args: predict.Set(topics)},
			"help":  {},
		},
	}
}
