package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouter_Resolve(t *testing.T) {
	r := NewRouter()

	tests := []struct {
		input    string
		wantCmd  Command
		wantArgs []string
		wantOK   bool
	}{
		{input: "/st", wantCmd: Start, wantOK: true},
		{input: "/sta", wantCmd: Start, wantOK: true},
		{input: "/star", wantCmd: Start, wantOK: true},
		{input: "/start", wantCmd: Start, wantOK: true},
		{input: "/get", wantCmd: GetPDF, wantOK: true},
		{input: "/getp", wantCmd: GetPDF, wantOK: true},
		{input: "/getpdf", wantCmd: GetPDF, wantOK: true},
		{input: "/prem", wantCmd: Premium, wantOK: true},
		{input: "/premium", wantCmd: Premium, wantOK: true},
		{input: "/hel", wantCmd: Help, wantOK: true},
		{input: "/help", wantCmd: Help, wantOK: true},
		{input: "/addprem", wantCmd: AddPremium, wantOK: true},
		{input: "/addpremium", wantCmd: AddPremium, wantOK: true},

		// Case-insensitive.
		{input: "/ST", wantCmd: Start, wantOK: true},
		{input: "/GetPDF Dune", wantCmd: GetPDF, wantArgs: []string{"Dune"}, wantOK: true},

		// Arguments pass through.
		{input: "/get Dune Messiah", wantCmd: GetPDF, wantArgs: []string{"Dune", "Messiah"}, wantOK: true},
		{input: "/addprem 12345", wantCmd: AddPremium, wantArgs: []string{"12345"}, wantOK: true},

		// Not recognized: too short, unknown, missing slash, empty.
		{input: "/s", wantOK: false},
		{input: "/ge", wantOK: false},
		{input: "/addpre", wantOK: false},
		{input: "/unknown", wantOK: false},
		{input: "start", wantOK: false},
		{input: "", wantOK: false},
		{input: "   ", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd, args, ok := r.Resolve(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			assert.Equal(t, tt.wantCmd, cmd)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestRouter_NoPrefixCollisions(t *testing.T) {
	// Every generated alias must map to exactly one command; building the
	// table from the canonical list must not silently shadow an entry.
	aliases := make(map[string]Command)
	for _, spec := range prefixSpecs {
		name := string(spec.cmd)
		for i := spec.minChars; i <= len(name); i++ {
			key := "/" + name[:i]
			if prev, exists := aliases[key]; exists {
				t.Fatalf("alias %q maps to both %q and %q", key, prev, spec.cmd)
			}
			aliases[key] = spec.cmd
		}
	}
}

func TestKnown(t *testing.T) {
	assert.True(t, Known(Start))
	assert.True(t, Known(GetPDF))
	assert.False(t, Known(Command("unknown")))
	assert.False(t, Known(Command("")))
}
