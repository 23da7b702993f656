// Package command resolves abbreviated command input to canonical commands.
//
// Telegram delivers exact commands ("/getpdf") through the normal command
// path; this router is the secondary catch-all that maps truncated input
// ("/get", "/prem") onto the same canonical commands. The prefix table is
// generated from the canonical command list at startup, so it cannot drift
// from the commands the bot actually handles.
package command

import "strings"

// Command is a canonical bot command, without the leading slash.
type Command string

// Canonical commands.
const (
	Start      Command = "start"
	Help       Command = "help"
	Premium    Command = "premium"
	AddPremium Command = "addpremium"
	GetPDF     Command = "getpdf"
)

// prefixSpec declares the shortest abbreviation accepted for a command.
type prefixSpec struct {
	cmd      Command
	minChars int
}

// prefixSpecs lists every canonical command with its minimum abbreviation:
// /st -> start, /hel -> help, /prem -> premium, /addprem -> addpremium,
// /get -> getpdf. Minimums are chosen so no two commands share a prefix.
var prefixSpecs = []prefixSpec{
	{Start, 2},
	{Help, 3},
	{Premium, 4},
	{AddPremium, 7},
	{GetPDF, 3},
}

// Router maps abbreviated command tokens to canonical commands.
type Router struct {
	aliases map[string]Command
}

// NewRouter builds the prefix table from the canonical command list.
func NewRouter() *Router {
	aliases := make(map[string]Command)
	for _, spec := range prefixSpecs {
		name := string(spec.cmd)
		for i := spec.minChars; i <= len(name); i++ {
			aliases["/"+name[:i]] = spec.cmd
		}
	}
	return &Router{aliases: aliases}
}

// Resolve extracts the first whitespace-delimited token of rawText,
// lowercases it, and looks it up in the prefix table. The remaining tokens
// are returned as arguments. Unrecognized tokens report ok=false and are
// expected to be silently ignored by the caller.
func (r *Router) Resolve(rawText string) (cmd Command, args []string, ok bool) {
	fields := strings.Fields(rawText)
	if len(fields) == 0 {
		return "", nil, false
	}

	token := strings.ToLower(fields[0])
	cmd, ok = r.aliases[token]
	if !ok {
		return "", nil, false
	}
	return cmd, fields[1:], true
}

// Known reports whether cmd is one of the canonical commands.
func Known(cmd Command) bool {
	switch cmd {
	case Start, Help, Premium, AddPremium, GetPDF:
		return true
	}
	return false
}
