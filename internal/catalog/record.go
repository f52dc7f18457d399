// Package catalog defines the video colour records Colorsful lays out and
// turns them into colour samples ready for the layout engine.
package catalog

import (
	"encoding/json"
	"fmt"
	"strings"
)

// knownFields are the JSON keys decoded into Record fields. Everything else
// is carried through Extra untouched.
var knownFields = []string{"url", "title", "color", "hex1", "hex45", "hexpick", "hexpickhome"}

// Record is one video in the catalog. Colour fields hold hex strings; an empty
// string (or JSON null) means the sample is absent.
type Record struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Color       string `json:"color"`
	Hex1        string `json:"hex1,omitempty"`
	Hex45       string `json:"hex45,omitempty"`
	HexPick     string `json:"hexpick,omitempty"`
	HexPickHome string `json:"hexpickhome,omitempty"`

	// Extra holds fields the core does not interpret.
	Extra map[string]json.RawMessage `json:"-"`
}

// recordFields avoids recursion in the JSON methods.
type recordFields Record

// UnmarshalJSON decodes the known fields and keeps the rest in Extra.
func (r *Record) UnmarshalJSON(data []byte) error {
	var fields recordFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, key := range knownFields {
		delete(raw, key)
	}
	if len(raw) == 0 {
		raw = nil
	}

	*r = Record(fields)
	r.Extra = raw
	return nil
}

// MarshalJSON emits the known fields merged with Extra.
func (r Record) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal(recordFields(r))
	if err != nil {
		return nil, err
	}
	if len(r.Extra) == 0 {
		return known, nil
	}

	merged := make(map[string]json.RawMessage, len(r.Extra)+len(knownFields))
	for k, v := range r.Extra {
		merged[k] = v
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(known, &fields); err != nil {
		return nil, err
	}
	for k, v := range fields {
		merged[k] = v
	}
	return json.Marshal(merged)
}

// Context selects which colour sample a visualisation reads from a record.
type Context int

const (
	// ContextDefault reads the primary colour only.
	ContextDefault Context = iota
	// ContextGrid prefers the hand-picked grid colour: hexpick, hex45, color.
	ContextGrid
	// ContextHome prefers the home/logo colour: hexpickhome, color.
	ContextHome
)

// String returns the flag spelling of the context.
func (c Context) String() string {
	switch c {
	case ContextDefault:
		return "default"
	case ContextGrid:
		return "grid"
	case ContextHome:
		return "home"
	default:
		return "unknown"
	}
}

// ParseContext parses "default", "grid" or "home".
func ParseContext(s string) (Context, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return ContextDefault, nil
	case "grid":
		return ContextGrid, nil
	case "home":
		return ContextHome, nil
	default:
		return ContextDefault, fmt.Errorf("invalid colour context: %s (valid: default, grid, home)", s)
	}
}

// Candidates returns the record's colour fields in fallback order for ctx.
func (r Record) Candidates(ctx Context) []string {
	switch ctx {
	case ContextGrid:
		return []string{r.HexPick, r.Hex45, r.Color}
	case ContextHome:
		return []string{r.HexPickHome, r.Color}
	default:
		return []string{r.Color}
	}
}
