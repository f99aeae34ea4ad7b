package mahjong_test

import (
	"testing"

	"github.com/kevin-chtw/tw_tai/mahjong"
)

func Test_CalcTai(t *testing.T) {
	c := mahjong.NewTaiCalculator()
	testCases := []struct {
		name     string
		tiles    string
		groups   []string
		selfDraw bool
		round    mahjong.Tile
		seat     mahjong.Tile
		want     int
	}{
		{"all pongs dragon round wind", "C C C E E E 1m 1m 1m 5p 5p 5p 9s 9s", nil, false, mahjong.TileDong, mahjong.TileNull, 6},
		{"exposed dragon self draw", "E E E 1m 1m 1m 5p 5p 5p 9s 9s", []string{"C,C,C"}, true, mahjong.TileDong, mahjong.TileDong, 8},
		{"no winds given", "C C C E E E 1m 1m 1m 5p 5p 5p 9s 9s", nil, false, mahjong.TileNull, mahjong.TileNull, 5},
		{"wrong wind", "C C C E E E 1m 1m 1m 5p 5p 5p 9s 9s", nil, false, mahjong.TileNan, mahjong.TileXi, 5},
		{"full flush", "1m 1m 1m 2m 3m 4m 5m 6m 7m 8m 8m 8m 9m 9m", nil, false, mahjong.TileNull, mahjong.TileNull, 8},
		{"half flush", "1m 1m 1m 2m 3m 4m 5m 5m 5m E E E C C", nil, false, mahjong.TileNull, mahjong.TileNull, 4},
		{"chow breaks all pongs", "C C C E E E 1m 1m 1m 9s 9s", []string{"1p,2p,3p"}, false, mahjong.TileNull, mahjong.TileNull, 1},
		{"plain", "1m 2m 3m 4p 5p 6p 7s 8s 9s 2m 3m 4m 5s 5s", nil, false, mahjong.TileNull, mahjong.TileNull, 0},
		{"kon pongs", "1m 1m 1m 5p 5p 5p 9s 9s", []string{"F,F,F,F", "2s,2s,2s"}, true, mahjong.TileNull, mahjong.TileNull, 6},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := mustHand(t, tc.tiles, tc.groups...)
			if got := c.CalcTai(h, tc.selfDraw, tc.round, tc.seat); got != tc.want {
				res := c.Evaluate(h, mahjong.TaiContext{SelfDraw: tc.selfDraw, RoundWind: tc.round, SeatWind: tc.seat})
				t.Errorf("CalcTai(%s) = %d, want %d: %+v", h, got, tc.want, res.Items)
			}
		})
	}
}

func Test_EvaluateItems(t *testing.T) {
	c := mahjong.NewTaiCalculator()
	h := mustHand(t, "C C C E E E 1m 1m 1m 5p 5p 5p 9s 9s")
	res := c.Evaluate(h, mahjong.TaiContext{RoundWind: mahjong.TileDong, SeatWind: mahjong.TileNull})
	want := []mahjong.TaiItem{
		{Type: mahjong.TaiDragon, Tile: mahjong.TileZhong, Tai: 1},
		{Type: mahjong.TaiRoundWind, Tile: mahjong.TileDong, Tai: 1},
		{Type: mahjong.TaiAllPongs, Tile: mahjong.TileNull, Tai: 4},
	}
	if res.Total != 6 || len(res.Items) != len(want) {
		t.Fatalf("Evaluate = %+v", res)
	}
	for i := range want {
		if res.Items[i] != want[i] {
			t.Errorf("item %d = %+v, want %+v", i, res.Items[i], want[i])
		}
	}
}
