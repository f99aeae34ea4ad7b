package mahjong

import "fmt"

type TaiType int

const (
	TaiSelfDraw  TaiType = iota // 自摸
	TaiDragon                   // 三元牌刻
	TaiRoundWind                // 圈风刻
	TaiSeatWind                 // 门风刻
	TaiFullFlush                // 清一色
	TaiHalfFlush                // 混一色
	TaiAllPongs                 // 碰碰胡
)

func (t TaiType) String() string {
	switch t {
	case TaiSelfDraw:
		return "SelfDraw"
	case TaiDragon:
		return "Dragon"
	case TaiRoundWind:
		return "RoundWind"
	case TaiSeatWind:
		return "SeatWind"
	case TaiFullFlush:
		return "FullFlush"
	case TaiHalfFlush:
		return "HalfFlush"
	case TaiAllPongs:
		return "AllPongs"
	default:
		panic(fmt.Sprintf("mahjong: unknown tai type %d", int(t)))
	}
}

type TaiItem struct {
	Type TaiType
	Tile Tile // 刻子类的牌，其余为 TileNull
	Tai  int
}

// TaiResult 按计算顺序列出的各项台数
type TaiResult struct {
	Total int
	Items []TaiItem
}

func (r *TaiResult) add(typ TaiType, tile Tile, tai int) {
	r.Items = append(r.Items, TaiItem{Type: typ, Tile: tile, Tai: tai})
	r.Total += tai
}

// TaiContext 胡牌时的场况，风为 TileNull 时不计
type TaiContext struct {
	SelfDraw  bool
	RoundWind Tile
	SeatWind  Tile
}

// TaiCalculator 算台，只读手牌
type TaiCalculator struct{}

func NewTaiCalculator() *TaiCalculator {
	return &TaiCalculator{}
}

func (c *TaiCalculator) CalcTai(h *Hand, selfDraw bool, roundWind, seatWind Tile) int {
	return c.Evaluate(h, TaiContext{SelfDraw: selfDraw, RoundWind: roundWind, SeatWind: seatWind}).Total
}

func (c *TaiCalculator) Evaluate(h *Hand, ctx TaiContext) TaiResult {
	var res TaiResult
	if ctx.SelfDraw {
		res.add(TaiSelfDraw, TileNull, 1)
	}
	for _, t := range []Tile{TileZhong, TileFa, TileBai} {
		if hasTriplet(h, t) {
			res.add(TaiDragon, t, 1)
		}
	}
	if ctx.RoundWind != TileNull && hasTriplet(h, ctx.RoundWind) {
		res.add(TaiRoundWind, ctx.RoundWind, 1)
	}
	if ctx.SeatWind != TileNull && hasTriplet(h, ctx.SeatWind) {
		res.add(TaiSeatWind, ctx.SeatWind, 1)
	}

	suits, honors := colorsOf(h.AllTiles())
	switch {
	case len(suits) == 1 && honors == 0:
		res.add(TaiFullFlush, TileNull, 8)
	case len(suits) == 1 && honors > 0:
		res.add(TaiHalfFlush, TileNull, 4)
	}
	if isAllPongs(h) {
		res.add(TaiAllPongs, TileNull, 4)
	}
	return res
}

// hasTriplet 副露的碰杠或立牌中至少3张
func hasTriplet(h *Hand, tile Tile) bool {
	if !tile.IsValid() {
		return false
	}
	for _, g := range h.groups {
		if g.IsTriplet() && g.Tile() == tile {
			return true
		}
	}
	return h.Count(tile) >= NP3
}

// colorsOf 数牌花色集合与字牌张数
func colorsOf(tiles []Tile) (map[EColor]struct{}, int) {
	suits := make(map[EColor]struct{})
	honors := 0
	for _, t := range tiles {
		if t.IsHonor() {
			honors++
		} else {
			suits[t.Color()] = struct{}{}
		}
	}
	return suits, honors
}

// isAllPongs 无吃，立牌除一对将外全是刻子
func isAllPongs(h *Hand) bool {
	for _, g := range h.groups {
		if !g.IsTriplet() {
			return false
		}
	}
	pairs := 0
	for _, n := range h.Counts() {
		switch n {
		case 0, NP3:
		case NP2:
			pairs++
		default:
			return false
		}
	}
	return pairs == 1
}
