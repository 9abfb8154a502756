package main

import (
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// TestParseFlags - Flag parsing
// ---------------------------------------------------------------------------

func TestParseFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		want     cliFlags
		wantArgs int
		wantErr  error
	}{
		{name: "no arguments", args: []string{"notesite"}},
		{name: "program name only missing", args: nil},
		{name: "config short", args: []string{"notesite", "-c", "site.yaml"}, want: cliFlags{config: "site.yaml"}},
		{name: "config long", args: []string{"notesite", "--config=site.yaml"}, want: cliFlags{config: "site.yaml"}},
		{name: "quiet", args: []string{"notesite", "-q"}, want: cliFlags{quiet: true}},
		{name: "verbose", args: []string{"notesite", "--verbose"}, want: cliFlags{verbose: true}},
		{name: "version", args: []string{"notesite", "--version"}, want: cliFlags{version: true}},
		{name: "help", args: []string{"notesite", "-h"}, want: cliFlags{help: true}},
		{name: "positional", args: []string{"notesite", "extra"}, wantArgs: 1},
		{name: "unknown flag", args: []string{"notesite", "--output", "x"}, wantErr: ErrUsage},
		{name: "quiet and verbose", args: []string{"notesite", "-q", "-v"}, wantErr: ErrUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, rest, err := parseFlags(tt.args)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("parseFlags() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFlags() unexpected error: %v", err)
			}
			if *got != tt.want {
				t.Errorf("parseFlags() = %+v, want %+v", *got, tt.want)
			}
			if len(rest) != tt.wantArgs {
				t.Errorf("positional = %v, want %d", rest, tt.wantArgs)
			}
		})
	}
}
