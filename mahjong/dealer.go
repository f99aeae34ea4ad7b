package mahjong

import (
	"math/rand"
	"slices"
)

// Dealer 牌墙：34种各4张，共136张，无花牌
type Dealer struct {
	rnd      *rand.Rand
	manual   *Manual
	tileWall []Tile
}

// NewDealer rnd 为 nil 时使用全局随机源
func NewDealer(rnd *rand.Rand) *Dealer {
	return &Dealer{
		rnd:      rnd,
		tileWall: make([]Tile, 0, TileKindCount*SameTileCount),
	}
}

// SetManual 配牌，启用时 Initialize 按配牌生成牌墙
func (d *Dealer) SetManual(m *Manual) {
	d.manual = m
}

// Initialize 洗牌；playerCount 人配牌时用于计算每家手牌
func (d *Dealer) Initialize(playerCount int) error {
	if d.manual.enabled() {
		wall, err := d.manual.load(playerCount, d.intn)
		if err != nil {
			return err
		}
		d.tileWall = wall
		return nil
	}

	d.tileWall = d.tileWall[:0]
	for _, t := range AllTiles() {
		d.tileWall = append(d.tileWall, makeTiles(t, SameTileCount)...)
	}
	shuffle(d.tileWall, d.intn)
	return nil
}

func (d *Dealer) intn(n int) int {
	if d.rnd == nil {
		return rand.Intn(n)
	}
	return d.rnd.Intn(n)
}

// shuffle Fisher-Yates
func shuffle(s []Tile, intn func(int) int) {
	for i := len(s) - 1; i > 0; i-- {
		j := intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// DrawTile 抽牌，牌墙空时返回 TileNull
func (d *Dealer) DrawTile() Tile {
	if len(d.tileWall) == 0 {
		return TileNull
	}
	tile := d.tileWall[0]
	d.tileWall = d.tileWall[1:]
	return tile
}

// Deal 一次抽 count 张，不足时抽完为止
func (d *Dealer) Deal(count int) []Tile {
	count = min(max(count, 0), len(d.tileWall))
	tiles := slices.Clone(d.tileWall[:count])
	d.tileWall = d.tileWall[count:]
	return tiles
}

// Banker 配牌生效时以配牌的庄家为准
func (d *Dealer) Banker(banker int32) int32 {
	if d.manual.enabled() {
		return d.manual.Banker()
	}
	return banker
}

// DealHands 庄家17张，其余16张
func (d *Dealer) DealHands(playerCount int, banker int32) []*Hand {
	banker = d.Banker(banker)
	hands := make([]*Hand, playerCount)
	for i := range hands {
		n := TileCountInitNormal
		if int32(i) == banker {
			n = TileCountInitBanker
		}
		hands[i] = NewHand(d.Deal(n)...)
	}
	return hands
}

func (d *Dealer) GetRestCount() int32 {
	return int32(len(d.tileWall))
}

func (d *Dealer) HasTile(tile Tile) bool {
	return slices.Contains(d.tileWall, tile)
}

func (d *Dealer) Count(tile Tile) int {
	return countTile(d.tileWall, tile)
}
