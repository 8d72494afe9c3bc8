package request

import "testing"

func baseRequest() Analysis {
	return Analysis{
		Version:   "1.0.0",
		RoundWind: 27,
		SeatWind:  27,
		Hand:      []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 27, 27},
	}
}

func TestValidateAcceptsWellFormedRequest(t *testing.T) {
	r := baseRequest()
	if err := r.Validate("1.0.0"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRejectsVersionMismatch(t *testing.T) {
	r := baseRequest()
	if err := r.Validate("2.0.0"); err == nil {
		t.Fatal("expected version mismatch error")
	}
}

func TestValidateRejectsWindOutOfRange(t *testing.T) {
	r := baseRequest()
	r.RoundWind = 5
	if err := r.Validate("1.0.0"); err == nil {
		t.Fatal("expected round_wind range error")
	}
}

func TestValidateRejectsHandLengthMismatch(t *testing.T) {
	r := baseRequest()
	r.Hand = append(r.Hand, 8)
	if err := r.Validate("1.0.0"); err == nil {
		t.Fatal("expected hand length mismatch error")
	}
}

func TestValidateRejectsTileOverCount(t *testing.T) {
	r := baseRequest()
	r.Hand = []int{0, 0, 0, 0, 0, 1, 2, 3, 4, 5, 6, 7, 27, 27}
	if err := r.Validate("1.0.0"); err == nil {
		t.Fatal("expected tile over-count error")
	}
}

func TestValidateRejectsWallOverSubscription(t *testing.T) {
	r := baseRequest()
	r.Wall = make([]int, numTileIDs)
	r.Wall[0] = 4 // hand already shows one copy of tile 0, so 4 more is 5 total
	if err := r.Validate("1.0.0"); err == nil {
		t.Fatal("expected wall over-subscription error")
	}
}

func TestValidateRejectsWrongWallLength(t *testing.T) {
	r := baseRequest()
	r.Wall = make([]int, 10)
	if err := r.Validate("1.0.0"); err == nil {
		t.Fatal("expected wall length error")
	}
}
