package tile

import "testing"

func TestNextTileCycles(t *testing.T) {
	cases := []struct {
		in, want ID
	}{
		{Man9, Man1},
		{Man1, Man2},
		{Pin9, Pin1},
		{Sou9, Sou1},
		{North, East},
		{East, South},
		{Red, White},
		{White, Green},
	}
	for _, c := range cases {
		if got := NextTile(c.in); got != c.want {
			t.Errorf("NextTile(%s) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestHand37ReduceFoldsRedFives(t *testing.T) {
	var h Hand37
	h[Man5] = 2
	h[RedMan5] = 1
	reduced := h.Reduce()
	if reduced[Man5] != 3 {
		t.Fatalf("reduced Man5 count = %d, want 3", reduced[Man5])
	}
}

func TestHand37ValidateRejectsExcessRed(t *testing.T) {
	var h Hand37
	h[Man5] = 1
	h[RedMan5] = 2
	if err := h.Validate(); err == nil {
		t.Fatal("expected error when red count exceeds plain count")
	}
}

func TestHand37ValidateRejectsOverfullKind(t *testing.T) {
	var h Hand37
	h[Man1] = 5
	if err := h.Validate(); err == nil {
		t.Fatal("expected error for a kind count above 4")
	}
}

func TestSuitHashDistinctForDistinctCounts(t *testing.T) {
	a := [9]uint8{1, 0, 0, 0, 0, 0, 0, 0, 0}
	b := [9]uint8{0, 1, 0, 0, 0, 0, 0, 0, 0}
	if SuitHash(a) == SuitHash(b) {
		t.Fatal("expected distinct hashes for distinct count vectors")
	}
	zero := [9]uint8{}
	if SuitHash(zero) != 0 {
		t.Fatalf("SuitHash(zero) = %d, want 0", SuitHash(zero))
	}
}

func TestNewHandKeyStable(t *testing.T) {
	var h Hand34
	h[Man1] = 3
	h[East] = 2
	k1 := NewHandKey(h, false, true, false)
	k2 := NewHandKey(h, false, true, false)
	if k1 != k2 {
		t.Fatal("NewHandKey should be deterministic for identical input")
	}
	k3 := NewHandKey(h, true, true, false)
	if k1 == k3 {
		t.Fatal("expected distinct keys when red-five flags differ")
	}
}
