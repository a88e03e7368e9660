package dreambook

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/clipperhouse/uax29/words"

	"github.com/bububa/atomic-agents/schema"
	"github.com/bububa/atomic-agents/tools"

	"github.com/caravela-ai/agent-cookbook/tools/bicho"
)

// Input Tool for interpreting a dream into Jogo do Bicho suggestions.
// Matches the symbols mentioned in the dream against the dream book and
// returns the animals and dezenas traditionally associated with them.
type Input struct {
	schema.Base
	// Dream is the free text description of the dream.
	Dream string `json:"dream" jsonschema:"title=dream,description=A free text description of the dream." validate:"required"`
}

func NewInput(dream string) *Input {
	return &Input{
		Dream: dream,
	}
}

func (s Input) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// Match is a single dream symbol matched by the dream book.
type Match struct {
	schema.Base
	// Symbol is the dream symbol that matched.
	Symbol string `json:"symbol" jsonschema:"title=symbol,description=The dream symbol that matched."`
	// Group is the group associated with the symbol.
	Group int `json:"group" jsonschema:"title=group,description=The group associated with the symbol."`
	// Animal is the animal of the group.
	Animal string `json:"animal" jsonschema:"title=animal,description=The animal of the group."`
	// Dezenas are the suggested dezenas for the group.
	Dezenas []string `json:"dezenas" jsonschema:"title=dezenas,description=The suggested dezenas for the group."`
}

// Output Schema for the output of the dream book tool. An empty match list
// means the dream book has nothing to say about the dream.
type Output struct {
	schema.Base
	// Matches lists the matched symbols in dream book order.
	Matches []Match `json:"matches,omitempty" jsonschema:"title=matches,description=The matched dream symbols with their animals and dezenas."`
}

func (s Output) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// Tool interprets dreams using the traditional dream book table.
type Tool struct {
	tools.Config
}

func New(opts ...tools.Option) *Tool {
	ret := new(Tool)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("DreamBookTool")
	}
	if ret.Description() == "" {
		ret.SetDescription("Interprets a dream into Jogo do Bicho animals and dezenas.")
	}
	return ret
}

// Run executes the dream book lookup with the given parameters.
func (t *Tool) Run(ctx context.Context, input *Input) (*Output, error) {
	mentioned := make(map[string]struct{})
	for _, seg := range words.SegmentAll([]byte(input.Dream)) {
		if w := normalize(string(seg)); w != "" {
			mentioned[w] = struct{}{}
		}
	}
	ret := new(Output)
	matched := make(map[int]struct{}, len(mentioned))
	for _, e := range dreamBook {
		if _, ok := mentioned[e.symbol]; !ok {
			continue
		}
		// first symbol wins per group
		if _, ok := matched[e.group]; ok {
			continue
		}
		matched[e.group] = struct{}{}
		ret.Matches = append(ret.Matches, Match{
			Symbol:  e.symbol,
			Group:   e.group,
			Animal:  bicho.Animal(e.group),
			Dezenas: bicho.Dezenas(e.group),
		})
	}
	return ret, nil
}

// normalize lower cases a word and folds Portuguese diacritics. Returns an
// empty string for whitespace and punctuation segments.
func normalize(word string) string {
	word = strings.TrimSpace(strings.ToLower(word))
	return strings.Map(func(r rune) rune {
		if v, ok := diacritics[r]; ok {
			return v
		}
		return r
	}, word)
}
