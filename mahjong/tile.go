package mahjong

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	TileNull  Tile = -1
	TileZhong Tile = MakeTile(ColorDragon, 0) // 中
	TileFa    Tile = MakeTile(ColorDragon, 1) // 发
	TileBai   Tile = MakeTile(ColorDragon, 2) // 白
	TileDong  Tile = MakeTile(ColorWind, 0)   // 东
	TileNan   Tile = MakeTile(ColorWind, 1)   // 南
	TileXi    Tile = MakeTile(ColorWind, 2)   // 西
	TileBei   Tile = MakeTile(ColorWind, 3)   // 北
)

// 静态表
var singleTileMap = map[rune]Tile{
	// 风
	'东': TileDong,
	'南': TileNan,
	'西': TileXi,
	'北': TileBei,
	// 箭
	'中': TileZhong,
	'发': TileFa,
	'白': TileBai,
	// ascii
	'E': TileDong,
	'S': TileNan,
	'W': TileXi,
	'N': TileBei,
	'C': TileZhong,
	'F': TileFa,
	'P': TileBai,
}

// 静态表：最后一个 rune -> 颜色
var lastRuneToColor = map[rune]EColor{
	'万': ColorCharacter,
	'条': ColorBamboo,
	'筒': ColorDot,
	'm':  ColorCharacter,
	's':  ColorBamboo,
	'p':  ColorDot,
}

// 十三幺
var orphanTiles = [13]Tile{
	MakeTile(ColorCharacter, 0),
	MakeTile(ColorCharacter, 8),
	MakeTile(ColorBamboo, 0),
	MakeTile(ColorBamboo, 8),
	MakeTile(ColorDot, 0),
	MakeTile(ColorDot, 8),
	TileDong,
	TileNan,
	TileXi,
	TileBei,
	TileZhong,
	TileFa,
	TileBai,
}

type Tile int32

func MakeTile(color EColor, point int) Tile {
	return Tile((int(color)<<8 | (point << 4) | 1))
}

// TileFromIndex 0-33 的规范下标转牌
func TileFromIndex(index int) Tile {
	if index < 0 || index >= TileKindCount {
		return TileNull
	}
	for c := ColorEnd - 1; c >= ColorBegin; c-- {
		if index >= SEQ_BEGIN_BY_COLOR[c] {
			return MakeTile(c, index-SEQ_BEGIN_BY_COLOR[c])
		}
	}
	return TileNull
}

// AllTiles 34种牌，规范顺序
func AllTiles() []Tile {
	tiles := make([]Tile, TileKindCount)
	for i := range tiles {
		tiles[i] = TileFromIndex(i)
	}
	return tiles
}

func (t Tile) Color() EColor {
	return EColor((t >> 8) & 0x0F)
}

func (t Tile) Point() int {
	return int((t >> 4) & 0x0F)
}

func (t Tile) Info() (EColor, int) {
	return t.Color(), t.Point()
}

func (t Tile) Flag() int {
	return int(t & 0x0F)
}

// Index 规范下标 0-33，非法牌返回 -1
func (t Tile) Index() int {
	if !t.IsValid() {
		return -1
	}
	return SEQ_BEGIN_BY_COLOR[t.Color()] + t.Point()
}

func (t Tile) IsValid() bool {
	if t <= 0 || t.Flag() != 1 {
		return false
	}
	c := t.Color()
	return c >= ColorBegin && c < ColorEnd && t.Point() < PointCountByColor[c]
}

func (t Tile) IsSuit() bool { // 数牌
	return t.IsValid() && t.Color() >= ColorCharacter && t.Color() <= ColorDot
}

func (t Tile) IsHonor() bool { // 字牌
	return t.IsValid() && (t.Color() == ColorWind || t.Color() == ColorDragon)
}

func (t Tile) IsDragon() bool { // 箭牌
	return t.IsValid() && t.Color() == ColorDragon
}

func (t Tile) IsWind() bool {
	return t.IsValid() && t.Color() == ColorWind
}

func (t Tile) IsOrphan() bool { // 幺九字
	return slices.Contains(orphanTiles[:], t)
}

// Next 同花色下 step 张，越界返回 TileNull
func (t Tile) Next(step int) Tile {
	if !t.IsSuit() {
		return TileNull
	}
	p := t.Point() + step
	if p < 0 || p >= PointCountByColor[t.Color()] {
		return TileNull
	}
	return MakeTile(t.Color(), p)
}

func (t Tile) Name() string {
	if !t.IsValid() {
		return ""
	}
	c, p := t.Info()
	switch c {
	case ColorCharacter:
		return strconv.Itoa(p+1) + "万"
	case ColorBamboo:
		return strconv.Itoa(p+1) + "条"
	case ColorDot:
		return strconv.Itoa(p+1) + "筒"
	case ColorWind:
		names := []string{"东", "南", "西", "北"}
		return names[p]
	case ColorDragon:
		names := []string{"中", "发", "白"}
		return names[p]
	case ColorUndefined, ColorEnd:
		return ""
	default:
		panic(fmt.Sprintf("mahjong: unknown color %d", int(c)))
	}
}

func (t Tile) String() string {
	return t.Name()
}

func TilesName(tiles []Tile) string {
	var tileNames []string
	for _, tile := range tiles {
		tileNames = append(tileNames, tile.Name())
	}
	return strings.Join(tileNames, ", ")
}

// ParseTiles 解析 "1万,2万,东" 或 "1m 2m E"
func ParseTiles(names string) ([]Tile, error) {
	parts := strings.FieldsFunc(names, func(r rune) bool {
		return r == ',' || r == ' ' || r == '，'
	})
	res := make([]Tile, 0, len(parts))
	for _, name := range parts {
		t := nameToTile(name)
		if t == TileNull {
			return nil, fmt.Errorf("%w: unknown tile %q", ErrInvalidArgument, name)
		}
		res = append(res, t)
	}
	return res, nil
}

func namesToTiles(names string) []Tile {
	parts := strings.Split(names, ",")
	res := make([]Tile, len(parts))
	for i, name := range parts {
		res[i] = nameToTile(strings.TrimSpace(name))
	}
	return res
}

func nameToTile(name string) Tile {
	if name == "" {
		return TileNull
	}

	r, size := utf8.DecodeRuneInString(name)
	if size == len(name) {
		if t, ok := singleTileMap[r]; ok {
			return t
		}
		return TileNull
	}

	r, size = utf8.DecodeLastRuneInString(name)
	color, ok := lastRuneToColor[r]
	if !ok {
		return TileNull
	}
	num, err := strconv.Atoi(name[:len(name)-size])
	if err != nil || num < 1 || num > 9 {
		return TileNull
	}
	return MakeTile(color, num-1)
}

func makeTiles(t Tile, count int) []Tile {
	if count <= 0 {
		return []Tile{}
	}
	res := make([]Tile, count)
	for i := range res {
		res[i] = t
	}
	return res
}

func countTile(tiles []Tile, tile Tile) int {
	count := 0
	for _, t := range tiles {
		if t == tile {
			count++
		}
	}
	return count
}

// removeTiles 移除 count 张 tile，返回新切片，不足时返回 false 且不改动原切片
func removeTiles(tiles []Tile, tile Tile, count int) ([]Tile, bool) {
	if countTile(tiles, tile) < count {
		return tiles, false
	}
	res := make([]Tile, 0, len(tiles)-count)
	for _, t := range tiles {
		if t == tile && count > 0 {
			count--
			continue
		}
		res = append(res, t)
	}
	return res, true
}
