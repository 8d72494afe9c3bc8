// Package tile implements the tile-identifier data model: the 0..36
// numbering scheme, the 37-count hand representation, melds, blocks,
// the wall, and the round/player descriptors that the rest of the core
// operates on.
package tile

import "fmt"

// ID is a tile identifier in 0..36. 0..8 manzu 1-9, 9..17 pinzu 1-9,
// 18..26 souzu 1-9, 27..33 winds/dragons (E,S,W,N,White,Green,Red),
// 34..36 the red-five replacements for manzu5/pinzu5/souzu5.
type ID int

const (
	Man1 ID = iota
	Man2
	Man3
	Man4
	Man5
	Man6
	Man7
	Man8
	Man9
	Pin1
	Pin2
	Pin3
	Pin4
	Pin5
	Pin6
	Pin7
	Pin8
	Pin9
	Sou1
	Sou2
	Sou3
	Sou4
	Sou5
	Sou6
	Sou7
	Sou8
	Sou9
	East
	South
	West
	North
	White
	Green
	Red
	RedMan5
	RedPin5
	RedSou5
)

// NumKinds is the number of distinct shapes (34): reds fold into their
// plain counterpart for shape/yaku purposes.
const NumKinds = 34

// NumIDs is the full tile-identifier space, including the three red fives.
const NumIDs = 37

// normalOf returns the shape-relevant (0..33) tile for any identifier,
// folding the red fives onto their plain counterpart.
func (t ID) normalOf() ID {
	switch t {
	case RedMan5:
		return Man5
	case RedPin5:
		return Pin5
	case RedSou5:
		return Sou5
	default:
		return t
	}
}

// Kind34 is the shape-relevant index (0..33) for t.
func (t ID) Kind34() int { return int(t.normalOf()) }

// IsHonor reports whether t is a wind or dragon.
func (t ID) IsHonor() bool { return t >= East && t <= Red }

// IsTerminal reports whether t is a 1 or 9 of a numbered suit.
func (t ID) IsTerminal() bool {
	k := t.normalOf()
	return k == Man1 || k == Man9 || k == Pin1 || k == Pin9 || k == Sou1 || k == Sou9
}

// IsTerminalOrHonor reports whether t is a terminal or an honor tile.
func (t ID) IsTerminalOrHonor() bool { return t.IsHonor() || t.IsTerminal() }

// IsRedFive reports whether t is one of the three red-five identifiers.
func (t ID) IsRedFive() bool { return t >= RedMan5 && t <= RedSou5 }

// Suit identifies which of the four tile groups a kind belongs to.
type Suit int

const (
	SuitMan Suit = iota
	SuitPin
	SuitSou
	SuitHonor
)

// SuitOf returns the suit of t, valid for 0..33 kinds (reds normalize first).
func (t ID) SuitOf() Suit {
	k := int(t.normalOf())
	switch {
	case k < 9:
		return SuitMan
	case k < 18:
		return SuitPin
	case k < 27:
		return SuitSou
	default:
		return SuitHonor
	}
}

// NumberIndex returns the 0..8 within-suit offset for a numbered-suit
// kind, or -1 for honors.
func (t ID) NumberIndex() int {
	k := int(t.normalOf())
	switch t.SuitOf() {
	case SuitMan:
		return k - int(Man1)
	case SuitPin:
		return k - int(Pin1)
	case SuitSou:
		return k - int(Sou1)
	default:
		return -1
	}
}

// NextTile returns the dora tile that a given indicator tile points to,
// following the fixed successor mapping: 1->2, ..., 9->1 within each
// suit, E->S->W->N->E, White->Green->Red->White. A red-five indicator
// is folded onto its plain five, so it points to the 6 of its suit.
func NextTile(indicator ID) ID {
	k := indicator.normalOf()
	switch k.SuitOf() {
	case SuitMan:
		return Man1 + (k-Man1+1)%9
	case SuitPin:
		return Pin1 + (k-Pin1+1)%9
	case SuitSou:
		return Sou1 + (k-Sou1+1)%9
	default:
		switch k {
		case East, South, West, North:
			return East + (k-East+1)%4
		case White, Green, Red:
			return White + (k-White+1)%3
		default:
			panic(fmt.Sprintf("tile: NextTile called on non-indicator tile %d", indicator))
		}
	}
}

func (t ID) String() string {
	names := [...]string{
		"1m", "2m", "3m", "4m", "5m", "6m", "7m", "8m", "9m",
		"1p", "2p", "3p", "4p", "5p", "6p", "7p", "8p", "9p",
		"1s", "2s", "3s", "4s", "5s", "6s", "7s", "8s", "9s",
		"East", "South", "West", "North", "White", "Green", "Red",
		"0m", "0p", "0s",
	}
	if int(t) < 0 || int(t) >= len(names) {
		return fmt.Sprintf("ID(%d)", int(t))
	}
	return names[t]
}
