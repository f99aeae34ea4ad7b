package mahjong

import "fmt"

const (
	OperateNone    = 0               // 无操作
	OperatePass    = 1 << (iota - 1) // 过  1<<0 = 1
	OperateChow                      // 吃  1<<1 = 2
	OperatePon                       // 碰  1<<2 = 4
	OperateKon                       // 杠  1<<3 = 8
	OperateTing                      // 听  1<<4 = 16
	OperateHu                        // 胡  1<<5 = 32
	OperateDiscard                   // 出牌  1<<6 = 64
	OperateDraw                      // 摸牌  1<<7 = 128
)

var OperateNames = map[int]string{
	OperatePass:    "Pass",
	OperateChow:    "Chow",
	OperatePon:     "Pon",
	OperateKon:     "Kon",
	OperateTing:    "Ting",
	OperateHu:      "Win",
	OperateDiscard: "Discard",
	OperateDraw:    "Draw",
}

var OperateIDs = map[string]int{
	"Pass":    OperatePass,
	"Chow":    OperateChow,
	"Pon":     OperatePon,
	"Kon":     OperateKon,
	"Ting":    OperateTing,
	"Win":     OperateHu,
	"Discard": OperateDiscard,
	"Draw":    OperateDraw,
}

// OperatePriority 抢牌优先级：胡 > 杠 > 碰 > 吃
func OperatePriority(op int) int {
	switch op {
	case OperateHu:
		return 4
	case OperateKon:
		return 3
	case OperatePon:
		return 2
	case OperateChow:
		return 1
	case OperateNone, OperatePass, OperateTing, OperateDiscard, OperateDraw:
		return 0
	default:
		panic(fmt.Sprintf("mahjong: unknown operate %d", op))
	}
}

type Operates struct {
	Value int32
}

func (o *Operates) AddOperate(op int32) {
	o.Value |= op
}

func (o *Operates) HasOperate(op int32) bool {
	return (o.Value & op) != 0
}

func GetOperateName(operate int, names map[int]string) string {
	if name, ok := names[operate]; ok {
		return name
	}
	return ""
}

// Action 某家对一张打出牌可做的响应
type Action struct {
	Operate   int
	Seat      int32
	From      int32
	Tile      Tile
	ChowTiles [2]Tile // 仅吃牌：手里拿出的两张
}

func (a Action) String() string {
	s := fmt.Sprintf("seat %d %s %s", a.Seat, GetOperateName(a.Operate, OperateNames), a.Tile.Name())
	if a.Operate == OperateChow {
		s += fmt.Sprintf(" with %s", TilesName(a.ChowTiles[:]))
	}
	return s
}
