package mahjong

// discardEvent 一次出牌，供各检查器读取
type discardEvent struct {
	hands []*Hand
	tile  Tile
	from  int32
	next  int32 // 下家
}

// CheckerWait 对出牌者以外的某一家做检查
type CheckerWait interface {
	Check(e *discardEvent, seat int32) []Action
}

type CheckerPao struct{ v *Validator } // 点炮检查器
func NewCheckerPao(v *Validator) CheckerWait {
	return &CheckerPao{v: v}
}

func (c *CheckerPao) Check(e *discardEvent, seat int32) []Action {
	if !c.v.CanHu(e.hands[seat], e.tile) {
		return nil
	}
	return []Action{{Operate: OperateHu, Seat: seat, From: e.from, Tile: e.tile}}
}

type CheckerZhiKon struct{ v *Validator } // 直杠检查器
func NewCheckerZhiKon(v *Validator) CheckerWait {
	return &CheckerZhiKon{v: v}
}

func (c *CheckerZhiKon) Check(e *discardEvent, seat int32) []Action {
	if !c.v.CanKon(e.hands[seat], e.tile) {
		return nil
	}
	return []Action{{Operate: OperateKon, Seat: seat, From: e.from, Tile: e.tile}}
}

type CheckerPon struct{ v *Validator } // 碰牌检查器
func NewCheckerPon(v *Validator) CheckerWait {
	return &CheckerPon{v: v}
}

func (c *CheckerPon) Check(e *discardEvent, seat int32) []Action {
	if !c.v.CanPon(e.hands[seat], e.tile) {
		return nil
	}
	return []Action{{Operate: OperatePon, Seat: seat, From: e.from, Tile: e.tile}}
}

type CheckerChow struct{ v *Validator } // 吃牌检查器，只有下家能吃
func NewCheckerChow(v *Validator) CheckerWait {
	return &CheckerChow{v: v}
}

func (c *CheckerChow) Check(e *discardEvent, seat int32) []Action {
	if seat != e.next {
		return nil
	}
	options := c.v.ChowOptions(e.hands[seat], e.tile)
	actions := make([]Action, 0, len(options))
	for _, o := range options {
		actions = append(actions, Action{
			Operate:   OperateChow,
			Seat:      seat,
			From:      e.from,
			Tile:      e.tile,
			ChowTiles: o.Tiles,
		})
	}
	return actions
}
