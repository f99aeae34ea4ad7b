package mahjong

import (
	"fmt"
	"slices"
)

// Group 吃碰杠将，创建后不可变
type Group struct {
	typ     EGroupType
	konType KonType
	tiles   []Tile
	from    int32
}

// NewGroup 校验牌数与牌型，非法时返回 ErrInvalidArgument
func NewGroup(typ EGroupType, tiles ...Tile) (*Group, error) {
	return newGroup(typ, KonTypeNone, SeatNull, tiles)
}

// NewKonGroup 杠，konType 区分明杠/暗杠/补杠
func NewKonGroup(konType KonType, from int32, tiles ...Tile) (*Group, error) {
	switch konType {
	case KonTypeZhi, KonTypeAn, KonTypeBu:
	case KonTypeNone:
		return nil, fmt.Errorf("%w: kon type required", ErrInvalidArgument)
	default:
		panic(fmt.Sprintf("mahjong: unknown kon type %d", int(konType)))
	}
	return newGroup(GroupTypeKon, konType, from, tiles)
}

func newGroup(typ EGroupType, konType KonType, from int32, tiles []Tile) (*Group, error) {
	if typ == GroupTypeNone {
		return nil, fmt.Errorf("%w: group type required", ErrInvalidArgument)
	}
	if len(tiles) != typ.Size() {
		return nil, fmt.Errorf("%w: %s needs %d tiles, got %d", ErrInvalidArgument, typ, typ.Size(), len(tiles))
	}
	for _, t := range tiles {
		if !t.IsValid() {
			return nil, fmt.Errorf("%w: invalid tile %d", ErrInvalidArgument, t)
		}
	}

	sorted := slices.Clone(tiles)
	slices.Sort(sorted)
	switch typ {
	case GroupTypeChow:
		if !isSequence(sorted) {
			return nil, fmt.Errorf("%w: %s is not a sequence", ErrInvalidArgument, TilesName(sorted))
		}
	case GroupTypePon, GroupTypeKon, GroupTypeEyes:
		if countTile(sorted, sorted[0]) != len(sorted) {
			return nil, fmt.Errorf("%w: %s tiles differ: %s", ErrInvalidArgument, typ, TilesName(sorted))
		}
	default:
		panic(fmt.Sprintf("mahjong: unknown group type %d", int(typ)))
	}
	if typ == GroupTypeKon && konType == KonTypeNone {
		konType = KonTypeZhi
	}
	if typ != GroupTypeKon {
		konType = KonTypeNone
	}
	return &Group{typ: typ, konType: konType, tiles: sorted, from: from}, nil
}

// isSequence 已排序的三张同花色连续数牌
func isSequence(sorted []Tile) bool {
	if len(sorted) != NP3 || !sorted[0].IsSuit() {
		return false
	}
	return sorted[1] == sorted[0].Next(1) && sorted[2] == sorted[0].Next(2)
}

func (g *Group) Type() EGroupType {
	return g.typ
}

func (g *Group) KonType() KonType {
	return g.konType
}

func (g *Group) From() int32 {
	return g.from
}

// Tiles 返回副本
func (g *Group) Tiles() []Tile {
	return slices.Clone(g.tiles)
}

// Tile 首张牌，碰杠将即该牌，吃为最小的牌
func (g *Group) Tile() Tile {
	return g.tiles[0]
}

func (g *Group) Size() int {
	return len(g.tiles)
}

// IsConcealed 暗杠不算开门
func (g *Group) IsConcealed() bool {
	return g.typ == GroupTypeKon && g.konType == KonTypeAn
}

// IsTriplet 碰或杠
func (g *Group) IsTriplet() bool {
	return g.typ == GroupTypePon || g.typ == GroupTypeKon
}

func (g *Group) Equal(o *Group) bool {
	if g == nil || o == nil {
		return g == o
	}
	return g.typ == o.typ && slices.Equal(g.tiles, o.tiles)
}

func (g *Group) String() string {
	return fmt.Sprintf("%s[%s]", g.typ, TilesName(g.tiles))
}

// ParseGroup 按牌推断牌组："1m,2m,3m" 吃，"C,C,C" 碰，四张为明杠
func ParseGroup(names string) (*Group, error) {
	tiles, err := ParseTiles(names)
	if err != nil {
		return nil, err
	}
	switch len(tiles) {
	case NP3:
		if countTile(tiles, tiles[0]) == NP3 {
			return NewGroup(GroupTypePon, tiles...)
		}
		return NewGroup(GroupTypeChow, tiles...)
	case NP4:
		return NewKonGroup(KonTypeZhi, SeatNull, tiles...)
	default:
		return nil, fmt.Errorf("%w: cannot group %d tiles", ErrInvalidArgument, len(tiles))
	}
}
