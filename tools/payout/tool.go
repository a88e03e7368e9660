package payout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Knetic/govaluate"

	"github.com/bububa/atomic-agents/schema"
	"github.com/bububa/atomic-agents/tools"
)

var (
	// ErrUnknownBetKind is returned for a bet kind outside the table.
	ErrUnknownBetKind = errors.New("unknown bet kind")
	// ErrInvalidStake is returned for a zero or negative stake.
	ErrInvalidStake = errors.New("stake must be positive")
)

// Input Tool for quoting the payout of a bet. Supports the grupo, dezena,
// centena and milhar modalities.
type Input struct {
	schema.Base
	// Kind is the bet modality.
	Kind BetKind `json:"kind" jsonschema:"title=kind,enum=grupo,enum=dezena,enum=centena,enum=milhar,description=The bet modality." validate:"required,oneof=grupo dezena centena milhar"`
	// Stake is the amount wagered.
	Stake float64 `json:"stake" jsonschema:"title=stake,description=The amount wagered." validate:"gt=0"`
}

func NewInput(kind BetKind, stake float64) *Input {
	return &Input{
		Kind:  kind,
		Stake: stake,
	}
}

func (s Input) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// Output Schema for the output of the payout tool.
type Output struct {
	schema.Base
	// Kind is the quoted bet modality.
	Kind BetKind `json:"kind" jsonschema:"title=kind,description=The quoted bet modality."`
	// Multiplier is the odds applied.
	Multiplier float64 `json:"multiplier" jsonschema:"title=multiplier,description=The odds applied to the stake."`
	// Payout is the amount paid on a winning bet.
	Payout float64 `json:"payout" jsonschema:"title=payout,description=The amount paid on a winning bet."`
}

func (s Output) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

type Config struct {
	tools.Config
	formula     string
	multipliers map[BetKind]float64
}

// Tool quotes bet payouts.
type Tool struct {
	Config
}

func New(opts ...Option) *Tool {
	ret := new(Tool)
	ret.multipliers = make(map[BetKind]float64, len(multipliers))
	for k, v := range multipliers {
		ret.multipliers[k] = v
	}
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("PayoutTool")
	}
	if ret.Description() == "" {
		ret.SetDescription("Quotes the payout of a Jogo do Bicho bet.")
	}
	if ret.formula == "" {
		ret.formula = defaultFormula
	}
	return ret
}

// Run quotes the payout for the given bet.
func (t *Tool) Run(ctx context.Context, input *Input) (*Output, error) {
	if input.Stake <= 0 {
		return nil, fmt.Errorf("%w: %.2f", ErrInvalidStake, input.Stake)
	}
	multiplier, ok := t.multipliers[input.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownBetKind, input.Kind)
	}
	exp, err := govaluate.NewEvaluableExpression(t.formula)
	if err != nil {
		return nil, fmt.Errorf("invalid payout formula: %w", err)
	}
	params := map[string]interface{}{
		"stake":      input.Stake,
		"multiplier": multiplier,
	}
	for k, v := range t.multipliers {
		params[k] = v
	}
	result, err := exp.Evaluate(params)
	if err != nil {
		return nil, err
	}
	value, ok := result.(float64)
	if !ok {
		return nil, fmt.Errorf("payout formula did not evaluate to a number: %v", result)
	}
	return &Output{
		Kind:       input.Kind,
		Multiplier: multiplier,
		Payout:     value,
	}, nil
}
