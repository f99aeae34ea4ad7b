package mahjong

import (
	"fmt"

	"github.com/spf13/viper"
)

// Manual 配牌，yaml 格式：
//
//	enable: true
//	banker: 0
//	cards:
//	  - "1m,1m,1m,2m"
//	  - "E,E,E"
type Manual struct {
	vp *viper.Viper
}

func LoadManual(path string) (*Manual, error) {
	m := &Manual{
		vp: viper.New(),
	}
	m.vp.SetConfigFile(path)
	m.vp.SetDefault("enable", true)
	m.vp.SetDefault("banker", 0)
	if err := m.vp.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read manual %s: %w", path, err)
	}
	return m, nil
}

func (m *Manual) enabled() bool {
	if m == nil {
		return false
	}
	return m.vp.GetBool("enable")
}

// Banker 配牌时的庄家座位
func (m *Manual) Banker() int32 {
	return int32(m.vp.GetInt("banker"))
}

// load 各家先放配好的牌，不足部分从余牌中随机补齐，剩余的牌接在后面
func (m *Manual) load(playerCount int, intn func(int) int) ([]Tile, error) {
	if b := m.Banker(); b < 0 || int(b) >= playerCount {
		return nil, fmt.Errorf("%w: manual banker %d for %d players", ErrInvalidArgument, b, playerCount)
	}
	cards := m.vp.GetStringSlice("cards")
	if len(cards) > playerCount {
		return nil, fmt.Errorf("%w: %d manual hands for %d players", ErrInvalidArgument, len(cards), playerCount)
	}
	groups := make([][]Tile, playerCount)
	for i := range cards {
		tiles, err := ParseTiles(cards[i])
		if err != nil {
			return nil, err
		}
		groups[i] = tiles
	}

	var rest TileCounts
	for i := range rest {
		rest[i] = SameTileCount
	}
	for i, g := range groups {
		if len(g) > m.handCount(i) {
			return nil, fmt.Errorf("%w: seat %d has %d manual tiles", ErrInvalidArgument, i, len(g))
		}
		for _, t := range g {
			rest[t.Index()]--
			if rest[t.Index()] < 0 {
				return nil, fmt.Errorf("%w: tile %s overflow", ErrInvalidArgument, t.Name())
			}
		}
	}

	var rests []Tile
	for i, count := range rest {
		rests = append(rests, makeTiles(TileFromIndex(i), count)...)
	}
	shuffle(rests, intn)

	var out []Tile
	for i, g := range groups {
		out = append(out, g...)
		more := m.handCount(i) - len(g)
		out = append(out, rests[:more]...)
		rests = rests[more:]
	}
	return append(out, rests...), nil
}

func (m *Manual) handCount(seat int) int {
	if int32(seat) == m.Banker() {
		return TileCountInitBanker
	}
	return TileCountInitNormal
}
