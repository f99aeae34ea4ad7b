package mahjong

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument 参数不合法（牌数、牌型、动作类型不符）
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIllegalState 执行时前置条件不满足（手牌不足）
	ErrIllegalState = errors.New("illegal state")
)

const (
	SeatNull int32 = -1
)

const (
	NP4 = 4
	NP3 = 3
	NP2 = 2
)

const (
	TileCountInitBanker = 17
	TileCountInitNormal = 16
	TileKindCount       = 34 // 万条筒各9 + 风4 + 箭3
	SameTileCount       = 4
)

type EColor int

const (
	ColorUndefined EColor = -1
	ColorCharacter EColor = iota - 1 // 万
	ColorBamboo                      // 条
	ColorDot                         // 筒
	ColorWind                        // 风牌
	ColorDragon                      // 箭牌
	ColorEnd
	ColorBegin = ColorCharacter
)

var PointCountByColor = [ColorEnd]int{9, 9, 9, 4, 3}
var SEQ_BEGIN_BY_COLOR = [ColorEnd]int{0, 9, 18, 27, 31}

func (c EColor) String() string {
	switch c {
	case ColorCharacter:
		return "万"
	case ColorBamboo:
		return "条"
	case ColorDot:
		return "筒"
	case ColorWind:
		return "风"
	case ColorDragon:
		return "箭"
	case ColorUndefined, ColorEnd:
		return ""
	default:
		panic(fmt.Sprintf("mahjong: unknown color %d", int(c)))
	}
}

type KonType int

const (
	KonTypeNone KonType = -1 + iota
	KonTypeZhi  // 明杠
	KonTypeAn   // 暗杠
	KonTypeBu   // 补杠
)

type EGroupType int

const (
	GroupTypeNone EGroupType = iota
	GroupTypeChow
	GroupTypePon
	GroupTypeKon
	GroupTypeEyes
)

func (t EGroupType) String() string {
	switch t {
	case GroupTypeNone:
		return "None"
	case GroupTypeChow:
		return "Chow"
	case GroupTypePon:
		return "Pon"
	case GroupTypeKon:
		return "Kon"
	case GroupTypeEyes:
		return "Eyes"
	default:
		panic(fmt.Sprintf("mahjong: unknown group type %d", int(t)))
	}
}

// Size 牌组应有的张数
func (t EGroupType) Size() int {
	switch t {
	case GroupTypeChow, GroupTypePon:
		return NP3
	case GroupTypeKon:
		return NP4
	case GroupTypeEyes:
		return NP2
	case GroupTypeNone:
		return 0
	default:
		panic(fmt.Sprintf("mahjong: unknown group type %d", int(t)))
	}
}

func GetNextSeat(seat, step, seatCount int32) int32 {
	return (seat + step) % seatCount
}
