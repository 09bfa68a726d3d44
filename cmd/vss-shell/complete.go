package main

import (
	"sort"
	"strings"

	"github.com/chzyer/readline"

	"github.com/sdv-edge/vehicle-model-go/pkg/inspect"
	"github.com/sdv-edge/vehicle-model-go/pkg/vss"
)

var commandNames = []string{
	"exit", "get", "help", "load", "ls", "quit", "save", "seat", "set",
	"status", "tree", "unwatch", "watch",
}

var seatCommands = []string{"component", "move", "position"}

// pathCompleter completes command names, seat subcommands and tree paths.
type pathCompleter struct {
	inspector *inspect.Inspector
}

// Do implements readline.AutoCompleter. Candidates are the suffixes that
// extend the word before the cursor.
func (c *pathCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])
	fields := strings.Fields(text)
	word := ""
	if !strings.HasSuffix(text, " ") && len(fields) > 0 {
		word = fields[len(fields)-1]
		fields = fields[:len(fields)-1]
	}

	var candidates []string
	switch {
	case len(fields) == 0:
		candidates = matching(commandNames, word)
	case fields[0] == "seat" && len(fields) == 1:
		candidates = matching(seatCommands, word)
	case fields[0] == "seat":
		return nil, 0
	case len(fields) == 1:
		candidates = c.paths(word)
	default:
		return nil, 0
	}

	out := make([][]rune, 0, len(candidates))
	for _, cand := range candidates {
		out = append(out, []rune(cand[len(word):]))
	}
	return out, len([]rune(word))
}

// paths returns completions of word in the form it was typed: absolute
// when it starts with the root name, relative otherwise.
func (c *pathCompleter) paths(word string) []string {
	norm := strings.ReplaceAll(word, "/", ".")
	absolute := norm == vss.RootName || strings.HasPrefix(norm, vss.RootName+".")

	var out []string
	for _, p := range c.inspector.Complete(norm) {
		if !absolute {
			p = strings.TrimPrefix(p, vss.RootName+".")
		}
		if strings.HasPrefix(p, norm) {
			out = append(out, word+p[len(norm):])
		}
	}
	return out
}

func matching(names []string, prefix string) []string {
	var out []string
	for _, n := range names {
		if strings.HasPrefix(n, prefix) {
			out = append(out, n+" ")
		}
	}
	sort.Strings(out)
	return out
}

var _ readline.AutoCompleter = (*pathCompleter)(nil)
