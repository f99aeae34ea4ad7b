package mahjong

import (
	"fmt"
	"slices"
)

// Hand 玩家手牌：立牌（始终有序）+ 副露牌组
// 非并发安全，同一时刻只允许一个回合持有并修改
type Hand struct {
	tiles  []Tile
	groups []*Group
}

func NewHand(tiles ...Tile) *Hand {
	h := &Hand{
		tiles:  make([]Tile, 0, TileCountInitBanker),
		groups: make([]*Group, 0),
	}
	for _, t := range tiles {
		h.AddTile(t)
	}
	return h
}

// AddTile 非法牌（含 TileNull）忽略
func (h *Hand) AddTile(tile Tile) {
	if !tile.IsValid() {
		return
	}
	i, _ := slices.BinarySearch(h.tiles, tile)
	h.tiles = slices.Insert(h.tiles, i, tile)
}

func (h *Hand) RemoveTile(tile Tile) bool {
	return h.removeTiles(tile, 1)
}

// removeTiles 不足 count 张时不做任何修改
func (h *Hand) removeTiles(tile Tile, count int) bool {
	tiles, ok := removeTiles(h.tiles, tile, count)
	if ok {
		h.tiles = tiles
	}
	return ok
}

func (h *Hand) AddGroup(g *Group) error {
	if g == nil {
		return fmt.Errorf("%w: nil group", ErrInvalidArgument)
	}
	h.groups = append(h.groups, g)
	return nil
}

// Tiles 立牌副本
func (h *Hand) Tiles() []Tile {
	return slices.Clone(h.tiles)
}

func (h *Hand) Groups() []*Group {
	return slices.Clone(h.groups)
}

func (h *Hand) Count(tile Tile) int {
	return countTile(h.tiles, tile)
}

func (h *Hand) Contains(tile Tile) bool {
	_, ok := slices.BinarySearch(h.tiles, tile)
	return ok
}

// TileCount 实际张数：立牌 + 牌组张数（杠算4张）
func (h *Hand) TileCount() int {
	n := len(h.tiles)
	for _, g := range h.groups {
		n += g.Size()
	}
	return n
}

// ShapeCount 牌型张数：每个副露牌组按3张计
func (h *Hand) ShapeCount() int {
	return len(h.tiles) + NP3*len(h.groups)
}

// AllTiles 立牌与牌组展开后的全部牌，有序
func (h *Hand) AllTiles() []Tile {
	all := slices.Clone(h.tiles)
	for _, g := range h.groups {
		all = append(all, g.tiles...)
	}
	slices.Sort(all)
	return all
}

func (h *Hand) Counts() TileCounts {
	return tileCountsOf(h.tiles)
}

func (h *Hand) Clone() *Hand {
	return &Hand{
		tiles:  slices.Clone(h.tiles),
		groups: slices.Clone(h.groups),
	}
}

// IsMenQin 门清：无吃碰明杠
func (h *Hand) IsMenQin() bool {
	for _, g := range h.groups {
		if !g.IsConcealed() {
			return false
		}
	}
	return true
}

// PonGroup 对应的碰组下标，没有返回 -1
func (h *Hand) PonGroup(tile Tile) int {
	return slices.IndexFunc(h.groups, func(g *Group) bool {
		return g.typ == GroupTypePon && g.Tile() == tile
	})
}

func (h *Hand) String() string {
	s := TilesName(h.tiles)
	for _, g := range h.groups {
		s += " " + g.String()
	}
	return s
}

// ParseHand 立牌与副露牌组的文本形式，见 ParseTiles 与 ParseGroup
func ParseHand(tiles string, groups ...string) (*Hand, error) {
	ts, err := ParseTiles(tiles)
	if err != nil {
		return nil, err
	}
	h := NewHand(ts...)
	for _, s := range groups {
		g, err := ParseGroup(s)
		if err != nil {
			return nil, err
		}
		h.groups = append(h.groups, g)
	}
	return h, nil
}
