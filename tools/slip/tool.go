package slip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/xid"

	"github.com/bububa/atomic-agents/schema"
	"github.com/bububa/atomic-agents/tools"

	"github.com/caravela-ai/agent-cookbook/tools/payout"
)

var (
	// ErrNoPlayer is returned when the tool runs without an injected player.
	ErrNoPlayer = errors.New("no player injected")
	// ErrUnknownPlayer is returned when the injected player is not registered.
	ErrUnknownPlayer = errors.New("unknown player")
)

// Player is a registered player.
type Player struct {
	// Name is the display name of the player.
	Name string `json:"name"`
	// Document is the player document number kept for the banca's records.
	Document string `json:"document,omitempty"`
}

// Registry holds the registered players keyed by name. It is injected into
// the tool as an opaque dependency.
type Registry map[string]Player

// Input Tool for issuing a betting slip. The player is not part of the
// schema: it is injected into the tool when the run starts.
type Input struct {
	schema.Base
	// Kind is the bet modality.
	Kind payout.BetKind `json:"kind" jsonschema:"title=kind,enum=grupo,enum=dezena,enum=centena,enum=milhar,description=The bet modality." validate:"required,oneof=grupo dezena centena milhar"`
	// Numbers are the numbers wagered on.
	Numbers []int `json:"numbers" jsonschema:"title=numbers,description=The numbers wagered on." validate:"required,min=1"`
	// Stake is the amount wagered.
	Stake float64 `json:"stake" jsonschema:"title=stake,description=The amount wagered." validate:"gt=0"`
}

func NewInput(kind payout.BetKind, numbers []int, stake float64) *Input {
	return &Input{
		Kind:    kind,
		Numbers: numbers,
		Stake:   stake,
	}
}

func (s Input) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// Output Schema for an issued betting slip.
type Output struct {
	schema.Base
	// ID is the slip id.
	ID string `json:"id" jsonschema:"title=id,description=The slip id."`
	// IssuedAt is the issuing timestamp.
	IssuedAt time.Time `json:"issued_at" jsonschema:"title=issued_at,description=The issuing timestamp."`
	// Player is the player the slip was issued for.
	Player string `json:"player" jsonschema:"title=player,description=The player the slip was issued for."`
	// Kind is the bet modality.
	Kind payout.BetKind `json:"kind" jsonschema:"title=kind,description=The bet modality."`
	// Numbers are the numbers wagered on.
	Numbers []int `json:"numbers" jsonschema:"title=numbers,description=The numbers wagered on."`
	// Stake is the amount wagered.
	Stake float64 `json:"stake" jsonschema:"title=stake,description=The amount wagered."`
	// PayoutQuote is the payout on a winning bet.
	PayoutQuote float64 `json:"payout_quote" jsonschema:"title=payout_quote,description=The payout on a winning bet."`
}

func (s Output) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

type Config struct {
	tools.Config
	registry Registry
	player   string
	now      func() time.Time
	quoter   *payout.Tool
}

// Tool issues betting slips for the injected player.
type Tool struct {
	Config
}

func New(opts ...Option) *Tool {
	ret := new(Tool)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("BettingSlipTool")
	}
	if ret.Description() == "" {
		ret.SetDescription("Issues a betting slip for the current player.")
	}
	if ret.now == nil {
		ret.now = time.Now
	}
	if ret.quoter == nil {
		ret.quoter = payout.New()
	}
	return ret
}

// Run issues a slip with the given parameters for the injected player.
func (t *Tool) Run(ctx context.Context, input *Input) (*Output, error) {
	if t.player == "" {
		return nil, ErrNoPlayer
	}
	player, ok := t.registry[t.player]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlayer, t.player)
	}
	quote, err := t.quoter.Run(ctx, payout.NewInput(input.Kind, input.Stake))
	if err != nil {
		return nil, err
	}
	return &Output{
		ID:          xid.New().String(),
		IssuedAt:    t.now(),
		Player:      player.Name,
		Kind:        input.Kind,
		Numbers:     input.Numbers,
		Stake:       input.Stake,
		PayoutQuote: quote.Payout,
	}, nil
}
