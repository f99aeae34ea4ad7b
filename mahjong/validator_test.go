package mahjong_test

import (
	"slices"
	"testing"

	"github.com/kevin-chtw/tw_tai/mahjong"
)

func Test_ValidatorPonKon(t *testing.T) {
	v := mahjong.NewValidator(nil)
	testCases := []struct {
		hand string
		pon  bool
		kon  bool
	}{
		{"5p", false, false},
		{"5p 5p", true, false},
		{"5p 5p 5p", true, true},
		{"5p 5p 5p 5p", true, true},
		{"5s 5m", false, false},
	}
	tile := mahjong.MakeTile(mahjong.ColorDot, 4)
	for _, tc := range testCases {
		h := mustHand(t, tc.hand)
		if got := v.CanPon(h, tile); got != tc.pon {
			t.Errorf("CanPon(%s) = %v, want %v", tc.hand, got, tc.pon)
		}
		if got := v.CanKon(h, tile); got != tc.kon {
			t.Errorf("CanKon(%s) = %v, want %v", tc.hand, got, tc.kon)
		}
	}
	if v.CanPon(mustHand(t, "5p 5p"), mahjong.TileNull) {
		t.Error("CanPon(TileNull)")
	}
}

func Test_ChowOptions(t *testing.T) {
	v := mahjong.NewValidator(nil)
	testCases := []struct {
		name    string
		hand    string
		discard string
		want    []string
	}{
		{"all three", "1m 2m 4m 5m", "3m", []string{"1m 2m", "2m 4m", "4m 5m"}},
		{"middle", "1m 3m", "2m", []string{"1m 3m"}},
		{"low edge", "2m 3m", "1m", []string{"2m 3m"}},
		{"high edge", "7s 8s", "9s", []string{"7s 8s"}},
		{"other suit", "1p 3p", "2m", nil},
		{"honor", "E S W N", "E", nil},
		{"no wrap", "8m 9m 1s", "1s", nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := mustHand(t, tc.hand)
			before := h.Tiles()
			got := v.ChowOptions(h, mustTile(t, tc.discard))
			if len(got) != len(tc.want) {
				t.Fatalf("ChowOptions = %v, want %v", got, tc.want)
			}
			for i, o := range got {
				want := mustTiles(t, tc.want[i])
				if !slices.Equal(o.Tiles[:], want) {
					t.Errorf("option %d = %v, want %v", i, o.Tiles, want)
				}
				if o.Left != min(o.Tiles[0], mustTile(t, tc.discard)) {
					t.Errorf("option %d left = %s", i, o.Left)
				}
			}
			if v.CanChow(h, mustTile(t, tc.discard)) != (len(tc.want) > 0) {
				t.Error("CanChow disagrees with ChowOptions")
			}
			if !slices.Equal(h.Tiles(), before) {
				t.Error("ChowOptions changed the hand")
			}
		})
	}
}

func Test_ValidatorHu(t *testing.T) {
	v := mahjong.NewValidator(nil)
	h := mustHand(t, "1m 2m 3m 4m 5m 6m 7m 8m 9m 1s 1s 5p 5p")
	for _, tc := range []struct {
		tile string
		want bool
	}{{"1s", true}, {"5p", true}, {"9m", false}, {"E", false}} {
		if got := v.CanHu(h, mustTile(t, tc.tile)); got != tc.want {
			t.Errorf("CanHu(+%s) = %v, want %v", tc.tile, got, tc.want)
		}
	}
	if h.TileCount() != 13 {
		t.Error("CanHu changed the hand")
	}
}

func Test_KonOptions(t *testing.T) {
	v := mahjong.NewValidator(nil)
	h := mustHand(t, "1m 1m 1m 1m 9p 9p 9p E", "E,E,E", "C,C,C")
	if got := v.ConcealedKonTiles(h); !slices.Equal(got, mustTiles(t, "1m")) {
		t.Errorf("ConcealedKonTiles = %v", got)
	}
	if got := v.BuKonTiles(h); !slices.Equal(got, mustTiles(t, "E")) {
		t.Errorf("BuKonTiles = %v", got)
	}
}
