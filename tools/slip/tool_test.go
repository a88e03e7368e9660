package slip

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/caravela-ai/agent-cookbook/tools/payout"
)

var testRegistry = Registry{
	"Joana":  {Name: "Joana", Document: "123.456.789-00"},
	"Rafael": {Name: "Rafael"},
}

func TestRun(t *testing.T) {
	ctx := context.Background()
	issued := time.Date(2025, 6, 13, 11, 0, 0, 0, time.UTC)
	tool := New(
		WithRegistry(testRegistry),
		WithPlayer("Joana"),
		WithNow(func() time.Time { return issued }),
	)
	ret, err := tool.Run(ctx, NewInput(payout.GrupoBet, []int{13}, 10))
	require.NoError(t, err)
	require.NotEmpty(t, ret.ID)
	require.Equal(t, issued, ret.IssuedAt)
	require.Equal(t, "Joana", ret.Player)
	require.InDelta(t, 180.0, ret.PayoutQuote, 1e-9)

	other, err := tool.Run(ctx, NewInput(payout.GrupoBet, []int{13}, 10))
	require.NoError(t, err)
	require.NotEqual(t, ret.ID, other.ID, "slip ids are unique")
}

func TestRunDependencyErrors(t *testing.T) {
	ctx := context.Background()
	input := NewInput(payout.GrupoBet, []int{13}, 10)

	_, err := New(WithRegistry(testRegistry)).Run(ctx, input)
	require.ErrorIs(t, err, ErrNoPlayer)

	_, err = New(WithRegistry(testRegistry), WithPlayer("Zé")).Run(ctx, input)
	require.ErrorIs(t, err, ErrUnknownPlayer)
}

func ExampleTool() {
	ctx := context.Background()
	tool := New(WithRegistry(testRegistry), WithPlayer("Rafael"))
	ret, _ := tool.Run(ctx, NewInput(payout.MilharBet, []int{4321}, 2))
	fmt.Printf("%s apostou R$%.2f na milhar, paga R$%.2f\n", ret.Player, ret.Stake, ret.PayoutQuote)
	// Output:
	// Rafael apostou R$2.00 na milhar, paga R$8000.00
}
