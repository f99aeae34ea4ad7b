package mahjong

import "testing"

func countsOf(t *testing.T, names string) TileCounts {
	t.Helper()
	tiles, err := ParseTiles(names)
	if err != nil {
		t.Fatal(err)
	}
	return tileCountsOf(tiles)
}

func Test_canFormSets(t *testing.T) {
	testCases := []struct {
		cards string
		need  int
		want  bool
	}{
		{"", 0, true},
		{"", 1, false},
		{"1m 2m 3m", 1, true},
		{"1m 2m 3m", 0, false},
		{"1m 1m 1m 2m 2m 2m 3m 3m 3m", 3, true},
		{"7m 8m 9m", 1, true},
		{"8m 9m 1s", 1, false},
		{"E S W", 1, false},
		{"C C C", 1, true},
		{"1m 1m 2m 2m 3m 3m", 2, true},
		{"1m 2m 2m 3m 3m 4m", 2, true},
		{"1m 2m 4m", 1, false},
	}
	for _, tc := range testCases {
		h := countsOf(t, tc.cards)
		before := h
		if got := canFormSets(h, tc.need); got != tc.want {
			t.Errorf("canFormSets(%q, %d) = %v, want %v", tc.cards, tc.need, got, tc.want)
		}
		if h != before {
			t.Errorf("canFormSets(%q) changed counts", tc.cards)
		}
	}
}

func Test_isSequenceStart(t *testing.T) {
	for i := range TileKindCount {
		want := i < 27 && i%9 < 7
		if got := isSequenceStart(i); got != want {
			t.Errorf("isSequenceStart(%d) = %v, want %v", i, got, want)
		}
	}
}

func Test_specialShapes(t *testing.T) {
	if !isSevenPairs(countsOf(t, "1m 1m 3m 3m 5p 5p 7s 7s E E C C F F")) {
		t.Error("seven pairs")
	}
	if isSevenPairs(countsOf(t, "1m 1m 3m 3m 5p 5p 7s 7s E E C C F")) {
		t.Error("odd count is never seven pairs")
	}
	if !isThirteenOrphans(countsOf(t, "1m 9m 1s 9s 1p 9p E S W N C F P P")) {
		t.Error("thirteen orphans")
	}
	if isThirteenOrphans(countsOf(t, "1m 9m 1s 9s 1p 9p E S W N C F P P 5m")) {
		t.Error("non orphan tile")
	}
	if isThirteenOrphans(countsOf(t, "1m 9m 1s 9s 1p 9p E S W N C F P")) {
		t.Error("thirteen orphans needs a pair")
	}
}

func Test_specialAllowed(t *testing.T) {
	r := NewRule()
	if !r.specialAllowed(14, 0) || r.specialAllowed(17, 0) || r.specialAllowed(14, 1) {
		t.Error("default rule: specials only for 14 tiles without groups")
	}
	r.SpecialOnDealer = true
	if !r.specialAllowed(17, 0) || r.specialAllowed(17, 1) {
		t.Error("SpecialOnDealer allows 17 tiles without groups")
	}
}

func Test_tileCountsOf(t *testing.T) {
	counts := tileCountsOf([]Tile{TileZhong, TileZhong, TileNull, 0})
	if counts.Total() != 2 || counts[TileZhong.Index()] != 2 {
		t.Errorf("tileCountsOf = %v", counts)
	}
	if len(counts.key(1, 1)) != 8+TileKindCount+1 {
		t.Error("cache key length")
	}
	if counts.key(1, 0) == counts.key(1, 1) {
		t.Error("cache key must include fixed groups")
	}
	if counts.key(1, 0) == counts.key(2, 0) {
		t.Error("cache key must include the core generation")
	}
}
