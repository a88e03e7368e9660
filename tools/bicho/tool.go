package bicho

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bububa/atomic-agents/schema"
	"github.com/bububa/atomic-agents/tools"
)

// Input Tool for resolving a Jogo do Bicho number. Takes any bet number up to
// a milhar (four digits) and resolves the dezena (last two digits) to its
// group and animal on the traditional table.
type Input struct {
	schema.Base
	// Number is the bet number, 0-9999. Only the last two digits (the dezena) select the group.
	Number int `json:"number" jsonschema:"title=number,description=The bet number between 0 and 9999. The last two digits select the group." validate:"gte=0,lte=9999"`
}

func NewInput(number int) *Input {
	return &Input{
		Number: number,
	}
}

func (s Input) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// Output Schema for the output of the group lookup.
type Output struct {
	schema.Base
	// Group is the group number on the table, 1-25.
	Group int `json:"group" jsonschema:"title=group,description=The group number between 1 and 25."`
	// Animal is the animal name of the group.
	Animal string `json:"animal" jsonschema:"title=animal,description=The animal of the group."`
	// Dezenas are the four dezenas the group covers, zero padded.
	Dezenas []string `json:"dezenas" jsonschema:"title=dezenas,description=The four dezenas covered by the group."`
}

func (s Output) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// GroupOf returns the group of a dezena (0-99). Dezena 00 belongs to group 25.
func GroupOf(dezena int) int {
	if dezena == 0 {
		return MaxGroup
	}
	return (dezena + 3) / 4
}

// Animal returns the animal name for a group, or an empty string when the
// group is outside the table.
func Animal(group int) string {
	if group < 1 || group > MaxGroup {
		return ""
	}
	return animals[group-1]
}

// Dezenas returns the four dezenas covered by a group, zero padded.
func Dezenas(group int) []string {
	if group < 1 || group > MaxGroup {
		return nil
	}
	ret := make([]string, 0, 4)
	for i := range 4 {
		d := (group-1)*4 + 1 + i
		ret = append(ret, fmt.Sprintf("%02d", d%100))
	}
	return ret
}

// Tool resolves bet numbers against the Jogo do Bicho table.
type Tool struct {
	tools.Config
}

func New(opts ...tools.Option) *Tool {
	ret := new(Tool)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("GroupLookupTool")
	}
	if ret.Description() == "" {
		ret.SetDescription("Resolves a bet number to its Jogo do Bicho group, animal and dezenas.")
	}
	return ret
}

// Run executes the lookup with the given parameters.
func (t *Tool) Run(ctx context.Context, input *Input) (*Output, error) {
	if input.Number < 0 || input.Number > 9999 {
		return nil, fmt.Errorf("number out of range: %d", input.Number)
	}
	group := GroupOf(input.Number % 100)
	return &Output{
		Group:   group,
		Animal:  Animal(group),
		Dezenas: Dezenas(group),
	}, nil
}
