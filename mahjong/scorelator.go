package mahjong

import (
	"fmt"
	"slices"
)

type ScoreType int //算分方式

const (
	ScoreTypeNatural  ScoreType = iota // 自然分
	ScoreTypeMinScore                  // 积分最小化
	ScoreTypePositive                  // 超出玩家带入的输分由系统支出
	ScoreTypeJustWin                   // 只赢不输
)

// Settle 一手牌的输赢：每家付 底 + 台数*每台，自摸三家付，点炮放炮者付
func (r *Rule) Settle(tai int, winner, from int32, selfDraw bool, playerCount int32) ([]int64, error) {
	if playerCount < NP2 || playerCount > NP4 {
		return nil, fmt.Errorf("%w: %d players", ErrInvalidArgument, playerCount)
	}
	if winner < 0 || winner >= playerCount {
		return nil, fmt.Errorf("%w: winner seat %d of %d", ErrInvalidArgument, winner, playerCount)
	}
	if !selfDraw && (from < 0 || from >= playerCount || from == winner) {
		return nil, fmt.Errorf("%w: discarder seat %d", ErrInvalidArgument, from)
	}
	pay := r.BaseScore + int64(tai)*r.TaiScore
	scores := make([]int64, playerCount)
	for seat := range playerCount {
		if seat == winner || (!selfDraw && seat != from) {
			continue
		}
		scores[seat] -= pay
		scores[winner] += pay
	}
	return scores, nil
}

// Scorelator 按带入分数修正输赢
type Scorelator struct {
	scoreType ScoreType
}

func NewScorelator(scoreType ScoreType) *Scorelator {
	return &Scorelator{scoreType: scoreType}
}

// Calculate takeScores 为各家带入分，winScores 为自然输赢（总和为0）
func (s *Scorelator) Calculate(takeScores, winScores []int64) ([]int64, error) {
	res := slices.Clone(winScores)
	switch s.scoreType {
	case ScoreTypeNatural:
	case ScoreTypeMinScore:
		return s.minScore(takeScores, winScores)
	case ScoreTypePositive:
		if len(takeScores) != len(winScores) {
			return nil, fmt.Errorf("%w: %d take scores for %d seats", ErrInvalidArgument, len(takeScores), len(winScores))
		}
		for i := range res {
			if takeScores[i] < 0 {
				res[i] = 0
			} else if winScores[i]+takeScores[i] < 0 {
				res[i] = -takeScores[i]
			}
		}
	case ScoreTypeJustWin:
		for i := range res {
			if res[i] < 0 {
				res[i] = 0
			}
		}
	default:
		panic(fmt.Sprintf("mahjong: unknown score type %d", int(s.scoreType)))
	}
	return res, nil
}

// minScore 输赢都不超过各自带入分，两边按较小的总额等比缩放
func (s *Scorelator) minScore(takeScores, winScores []int64) ([]int64, error) {
	if err := s.checkArgs(takeScores, winScores); err != nil {
		return nil, err
	}
	res := make([]int64, len(winScores))
	var won, lost int64
	for i, w := range winScores {
		switch {
		case w > 0:
			res[i] = min(w, takeScores[i])
			won += res[i]
		case w < 0:
			res[i] = -min(-w, takeScores[i])
			lost -= res[i]
		}
	}
	if won == 0 || lost == 0 {
		return make([]int64, len(winScores)), nil
	}
	total := min(won, lost)
	scaleSide(res, total, won, 1)
	scaleSide(res, total, lost, -1)
	return res, nil
}

// scaleSide 把 sign 一侧的分数从 sum 缩放到 total，取整余数给该侧第一家
func scaleSide(res []int64, total, sum, sign int64) {
	first := -1
	var got int64
	for i, v := range res {
		if v*sign <= 0 {
			continue
		}
		if first < 0 {
			first = i
		}
		scaled := v * sign * total / sum
		res[i] = scaled * sign
		got += scaled
	}
	if first >= 0 {
		res[first] += (total - got) * sign
	}
}

func (s *Scorelator) checkArgs(takeScores, winScores []int64) error {
	if len(takeScores) != len(winScores) {
		return fmt.Errorf("%w: %d take scores for %d seats", ErrInvalidArgument, len(takeScores), len(winScores))
	}
	for _, v := range takeScores {
		if v < 0 {
			return fmt.Errorf("%w: take score must >= 0", ErrInvalidArgument)
		}
	}
	var sumWin int64
	for _, v := range winScores {
		sumWin += v
	}
	if sumWin != 0 {
		return fmt.Errorf("%w: win scores must sum to 0", ErrInvalidArgument)
	}
	return nil
}
