package mahjong_test

import (
	"slices"
	"testing"

	"github.com/kevin-chtw/tw_tai/mahjong"
)

func Test_DetectTing(t *testing.T) {
	d := mahjong.NewTingDetector(nil)
	testCases := []struct {
		name   string
		tiles  string
		groups []string
		want   string
	}{
		{"shanpon", "1m 2m 3m 4m 5m 6m 7m 8m 9m 1s 1s 5p 5p", nil, "1s 5p"},
		{"three sided", "2m 3m 4m 5m 6m 7m 8m 1p 1p 1p 2s 3s 4s", nil, "2m 5m 8m"},
		{"with group", "1m 2m 3m 4m 5m 6m 7m 8m 9m 1s", []string{"C,C,C"}, "1s"},
		{"orphans", "1m 9m 1s 9s 1p 9p E S W N C F P", nil, "1m 9m 1s 9s 1p 9p E S W N C F P"},
		{"not waiting", "1m 4m 7m 1p 4p 7p 1s 4s 7s E S W N", nil, ""},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := mustHand(t, tc.tiles, tc.groups...)
			before := h.String()
			res := d.DetectTing(h)
			want := mustTiles(t, tc.want)
			if res.Ting != (len(want) > 0) || !slices.Equal(res.Tiles, want) {
				t.Errorf("DetectTing(%s) = %v %s, want %s", h, res.Ting, mahjong.TilesName(res.Tiles), mahjong.TilesName(want))
			}
			if h.String() != before {
				t.Error("DetectTing changed the hand")
			}
			for _, w := range want {
				if !d.CanWinWithTile(h, w) {
					t.Errorf("CanWinWithTile(%s) = false", w)
				}
			}
		})
	}
}

func Test_DetectTingSizes(t *testing.T) {
	d := mahjong.NewTingDetector(nil)
	h := mustHand(t, "1m 1m 1m 2p 2p 2p 3s 3s 3s 5s 5s 5s 7s 7s 7s E")
	if res := d.DetectTing(h); res.Ting || len(res.Tiles) != 0 {
		t.Errorf("16 tiles with default sizes = %v", res)
	}

	rule := mahjong.NewRule()
	rule.TingSizes = []int{13, 16}
	d = mahjong.NewTingDetector(mahjong.NewHuCore(rule))
	if res := d.DetectTing(h); !res.Ting || !slices.Equal(res.Tiles, mustTiles(t, "E")) {
		t.Errorf("16 tiles = %v", res)
	}

	// 14张已成胡，再加一张为15张，不会有听牌
	d = mahjong.NewTingDetector(nil)
	complete := mustHand(t, "1m 1m 2m 3m 4m 1p 1p 1p 1s 2s 3s E E E")
	if res := d.DetectTing(complete); res.Ting {
		t.Errorf("complete 14 = %v", res)
	}
	if !d.IsWinningHand(complete) {
		t.Error("IsWinningHand = false")
	}
}

func Test_CallMap(t *testing.T) {
	d := mahjong.NewTingDetector(nil)
	h := mustHand(t, "1m 2m 3m 4m 5m 6m 7m 8m 9m 1s 1s 5p 5p E")
	calls := d.CallMap(h)
	if got := calls[mahjong.TileDong]; !slices.Equal(got, mustTiles(t, "1s 5p")) {
		t.Errorf("discard E waits = %v", got)
	}
	if _, ok := calls[mustTile(t, "5m")]; ok {
		t.Error("discarding 5m should not ting")
	}
	if got := d.CallMap(mustHand(t, "1m 2m 3m")); len(got) != 0 {
		t.Errorf("short hand = %v", got)
	}
}
