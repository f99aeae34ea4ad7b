package mahjong_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/kevin-chtw/tw_tai/mahjong"
)

func Test_Settle(t *testing.T) {
	rule := mahjong.NewRule()
	testCases := []struct {
		name     string
		winner   int32
		from     int32
		selfDraw bool
		want     []int64
	}{
		{"self draw", 1, mahjong.SeatNull, true, []int64{-140, 420, -140, -140}},
		{"discard", 2, 0, false, []int64{-140, 0, 140, 0}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := rule.Settle(2, tc.winner, tc.from, tc.selfDraw, mahjong.NP4)
			if err != nil {
				t.Fatal(err)
			}
			if !slices.Equal(got, tc.want) {
				t.Errorf("Settle = %v, want %v", got, tc.want)
			}
		})
	}

	for _, players := range []int32{-1, 0, 1, 5, 1 << 30} {
		if _, err := rule.Settle(1, 0, 1, false, players); !errors.Is(err, mahjong.ErrInvalidArgument) {
			t.Errorf("Settle(%d players) error = %v", players, err)
		}
	}
	for _, bad := range [][2]int32{{4, 0}, {1, 1}, {1, mahjong.SeatNull}} {
		if _, err := rule.Settle(1, bad[0], bad[1], false, mahjong.NP4); !errors.Is(err, mahjong.ErrInvalidArgument) {
			t.Errorf("Settle(winner %d, from %d) error = %v", bad[0], bad[1], err)
		}
	}
}

func Test_ScorelatorMinScoreSelfDraw(t *testing.T) {
	win := []int64{-140, 420, -140, -140}
	testCases := []struct {
		name string
		take []int64
		want []int64
	}{
		{"losers capped", []int64{100, 1000, 1000, 30}, []int64{-100, 270, -140, -30}},
		{"winner capped", []int64{1000, 200, 1000, 1000}, []int64{-68, 200, -66, -66}},
		{"winner without chips", []int64{1000, 0, 1000, 1000}, []int64{0, 0, 0, 0}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := mahjong.NewScorelator(mahjong.ScoreTypeMinScore).Calculate(tc.take, win)
			if err != nil {
				t.Fatal(err)
			}
			if !slices.Equal(got, tc.want) {
				t.Errorf("Calculate = %v, want %v", got, tc.want)
			}
			var sum int64
			for _, v := range got {
				sum += v
			}
			if sum != 0 {
				t.Errorf("scores sum to %d", sum)
			}
		})
	}
}

func Test_Scorelator(t *testing.T) {
	win := []int64{140, -140, 0, 0}
	take := []int64{1000, 50, 1000, 1000}
	testCases := []struct {
		typ  mahjong.ScoreType
		want []int64
	}{
		{mahjong.ScoreTypeNatural, []int64{140, -140, 0, 0}},
		{mahjong.ScoreTypeMinScore, []int64{50, -50, 0, 0}},
		{mahjong.ScoreTypePositive, []int64{140, -50, 0, 0}},
		{mahjong.ScoreTypeJustWin, []int64{140, 0, 0, 0}},
	}
	for _, tc := range testCases {
		got, err := mahjong.NewScorelator(tc.typ).Calculate(take, win)
		if err != nil {
			t.Fatalf("score type %d: %v", tc.typ, err)
		}
		if !slices.Equal(got, tc.want) {
			t.Errorf("score type %d = %v, want %v", tc.typ, got, tc.want)
		}
	}
	if !slices.Equal(win, []int64{140, -140, 0, 0}) {
		t.Error("Calculate changed its input")
	}

	if _, err := mahjong.NewScorelator(mahjong.ScoreTypeMinScore).Calculate(take, []int64{1, 0, 0, 0}); !errors.Is(err, mahjong.ErrInvalidArgument) {
		t.Errorf("unbalanced error = %v", err)
	}
}
