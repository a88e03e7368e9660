package dreambook

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	ctx := context.Background()
	tool := New()
	for _, tt := range []struct {
		name    string
		dream   string
		animals []string
	}{
		{"accented symbol", "Sonhei com uma COBRA enorme no quintal", []string{"Cobra"}},
		{"diacritics folded", "sonhei com traição e veneno", []string{"Cobra"}},
		{"multiple groups", "um cavalo correndo atrás de um macaco", []string{"Cavalo", "Macaco"}},
		{"no match", "sonhei com nada de especial", nil},
		{"substring must not match", "cobrador na porta", nil},
	} {
		t.Run(tt.name, func(t *testing.T) {
			ret, err := tool.Run(ctx, NewInput(tt.dream))
			require.NoError(t, err)
			var animals []string
			for _, m := range ret.Matches {
				animals = append(animals, m.Animal)
			}
			require.ElementsMatch(t, tt.animals, animals)
		})
	}
}

func TestRunDedups(t *testing.T) {
	ctx := context.Background()
	tool := New()
	ret, err := tool.Run(ctx, NewInput("sonhei com veneno, inveja e uma cobra"))
	require.NoError(t, err)
	require.Len(t, ret.Matches, 1, "one match per group")
	require.Equal(t, 9, ret.Matches[0].Group)
}

func ExampleTool() {
	ctx := context.Background()
	tool := New()
	ret, _ := tool.Run(ctx, NewInput("Sonhei que um leão entrava na minha casa"))
	for _, m := range ret.Matches {
		fmt.Println(m.Animal, m.Dezenas)
	}
	// Output:
	// Leão [61 62 63 64]
}
