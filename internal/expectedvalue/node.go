package expectedvalue

import "mahjongev/internal/tile"

// afterDrawNode is a 14-tile state reached by drawing a tile into a
// 13-tile after-discard state.
type afterDrawNode struct {
	hand      tile.Hand37
	key       tile.HandKey
	distance  int // shanten distance of this 14-tile state (the hand minus its best discard)
	discards  []discardEdge
	winPayment int // never set: the payment of a winning draw is carried on drawEdge.WinPayment
}

// afterDiscardNode is a 13-tile state reached by discarding from an
// after-draw state (or the root, supplied externally).
type afterDiscardNode struct {
	hand     tile.Hand37
	key      tile.HandKey
	distance int
	draws    []drawEdge
}

// discardEdge represents discarding tile Kind from an after-draw node,
// landing on the after-discard vertex at DestIndex.
type discardEdge struct {
	Kind      int
	DestIndex int
}

// drawEdge represents drawing tile Kind from an after-discard node,
// landing on the after-draw vertex at DestIndex. WallCount is the
// number of that tile remaining in the wall at the time this edge was
// built — the recurrence's w_e weight. WinPayment is nonzero when this
// draw directly completes a winning hand.
type drawEdge struct {
	Kind       int
	DestIndex  int
	WallCount  int
	WinPayment float64
	IsWin      bool
}
