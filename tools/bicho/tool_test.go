package bicho

import (
	"context"
	"fmt"
	"testing"
)

func TestGroupTable(t *testing.T) {
	// every dezena maps to exactly one group, and every group covers
	// exactly four dezenas
	counts := make(map[int]int, MaxGroup)
	for dezena := 0; dezena < 100; dezena++ {
		group := GroupOf(dezena)
		if group < 1 || group > MaxGroup {
			t.Fatalf("dezena %02d resolved to group %d", dezena, group)
		}
		counts[group]++
	}
	for group := 1; group <= MaxGroup; group++ {
		if counts[group] != 4 {
			t.Errorf("group %d covers %d dezenas, expecting 4", group, counts[group])
		}
	}
}

func TestGroupOf(t *testing.T) {
	for _, tt := range []struct {
		dezena int
		group  int
		animal string
	}{
		{1, 1, "Avestruz"},
		{4, 1, "Avestruz"},
		{5, 2, "Águia"},
		{23, 6, "Cabra"},
		{96, 24, "Veado"},
		{97, 25, "Vaca"},
		{99, 25, "Vaca"},
		{0, 25, "Vaca"},
	} {
		if group := GroupOf(tt.dezena); group != tt.group {
			t.Errorf("GroupOf(%02d) = %d, expecting %d", tt.dezena, group, tt.group)
		} else if animal := Animal(group); animal != tt.animal {
			t.Errorf("Animal(%d) = %s, expecting %s", group, animal, tt.animal)
		}
	}
}

func TestRunMilhar(t *testing.T) {
	ctx := context.Background()
	tool := New()
	// only the dezena of a milhar selects the group
	ret, err := tool.Run(ctx, NewInput(4321))
	if err != nil {
		t.Fatal(err)
	}
	if ret.Animal != "Cabra" {
		t.Errorf("expecting Cabra, but got %s", ret.Animal)
	}
	if _, err := tool.Run(ctx, NewInput(10000)); err == nil {
		t.Error("expecting out of range error")
	}
}

func ExampleTool() {
	ctx := context.Background()
	tool := New()
	ret, _ := tool.Run(ctx, NewInput(13))
	fmt.Println(ret.Group, ret.Animal, ret.Dezenas)
	// Output:
	// 4 Borboleta [13 14 15 16]
}
