package mahjong

import (
	"fmt"
	"slices"

	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

// Processor 出牌后收集各家可做的动作，并执行选定的动作
type Processor struct {
	core         *HuCore
	validator    *Validator
	ting         *TingDetector
	selfCheckers []CheckerSelf
	waitCheckers []CheckerWait
}

// NewProcessor 默认按 胡、杠、碰、吃 的顺序注册检查器
func NewProcessor(core *HuCore) *Processor {
	if core == nil {
		core = DefaultHuCore
	}
	v := NewValidator(core)
	p := &Processor{
		core:         core,
		validator:    v,
		ting:         NewTingDetector(core),
		selfCheckers: make([]CheckerSelf, 0),
		waitCheckers: make([]CheckerWait, 0),
	}
	p.RegisterWaitCheck(NewCheckerPao(v), NewCheckerZhiKon(v), NewCheckerPon(v), NewCheckerChow(v))
	p.RegisterSelfCheck(NewCheckerHu(p), NewCheckerKon(v), NewCheckerTing(p.ting))
	return p
}

func (p *Processor) RegisterSelfCheck(cks ...CheckerSelf) {
	p.selfCheckers = append(p.selfCheckers, cks...)
}

func (p *Processor) RegisterWaitCheck(cks ...CheckerWait) {
	p.waitCheckers = append(p.waitCheckers, cks...)
}

func (p *Processor) Core() *HuCore {
	return p.core
}

func (p *Processor) Validator() *Validator {
	return p.validator
}

func (p *Processor) Ting() *TingDetector {
	return p.ting
}

// CheckActions 从下家开始按座次检查每一家，结果按 胡 > 杠 > 碰 > 吃 稳定排序，
// actions[0] 即全桌优先级最高的响应
func (p *Processor) CheckActions(hands []*Hand, tile Tile, from int32) []Action {
	count := int32(len(hands))
	if from < 0 || from >= count || !tile.IsValid() {
		logger.Log.Errorf("check actions: invalid discard %d from seat %d of %d", tile, from, count)
		return nil
	}

	e := &discardEvent{
		hands: hands,
		tile:  tile,
		from:  from,
		next:  GetNextSeat(from, 1, count),
	}
	actions := make([]Action, 0)
	for step := int32(1); step < count; step++ {
		seat := GetNextSeat(from, step, count)
		if hands[seat] == nil {
			continue
		}
		for _, ck := range p.waitCheckers {
			actions = append(actions, ck.Check(e, seat)...)
		}
	}
	slices.SortStableFunc(actions, func(a, b Action) int {
		return OperatePriority(b.Operate) - OperatePriority(a.Operate)
	})
	logger.Log.Debugf("discard %s from seat %d: %v", tile.Name(), from, actions)
	return actions
}

// SeatOperates 按座位汇总可做的操作，用于下发请求
func SeatOperates(actions []Action) map[int32]*Operates {
	res := make(map[int32]*Operates)
	for _, a := range actions {
		opt, ok := res[a.Seat]
		if !ok {
			opt = &Operates{Value: OperatePass}
			res[a.Seat] = opt
		}
		opt.AddOperate(int32(a.Operate))
	}
	return res
}

// Resolve 选出最终生效的动作：有胡时取胡（允许一炮多响时取全部），否则取第一个
func (p *Processor) Resolve(actions []Action) []Action {
	if len(actions) == 0 {
		return nil
	}
	if actions[0].Operate != OperateHu || !p.core.rule.MultiHu {
		return slices.Clone(actions[:1])
	}
	end := slices.IndexFunc(actions, func(a Action) bool { return a.Operate != OperateHu })
	if end < 0 {
		end = len(actions)
	}
	return slices.Clone(actions[:end])
}

// FetchSelfOperates 摸牌后自己可做的操作，出牌总是可以
func (p *Processor) FetchSelfOperates(h *Hand) *Operates {
	opt := &Operates{Value: OperateDiscard}
	for _, ck := range p.selfCheckers {
		ck.Check(h, opt)
	}
	return opt
}

// Execute 执行吃碰杠，胡牌由调用方结算
func (p *Processor) Execute(h *Hand, a Action) error {
	switch a.Operate {
	case OperateChow:
		return p.ExecuteChow(h, a)
	case OperatePon:
		return p.ExecutePon(h, a.Tile, a.From)
	case OperateKon:
		return p.ExecuteKon(h, a.Tile, a.From)
	default:
		return fmt.Errorf("%w: cannot execute %s", ErrInvalidArgument, GetOperateName(a.Operate, OperateNames))
	}
}

func (p *Processor) ExecutePon(h *Hand, tile Tile, from int32) error {
	return p.claim(h, GroupTypePon, KonTypeNone, tile, from, NP2)
}

// ExecuteKon 直杠：手里3张 + 打出的1张
func (p *Processor) ExecuteKon(h *Hand, tile Tile, from int32) error {
	return p.claim(h, GroupTypeKon, KonTypeZhi, tile, from, NP3)
}

func (p *Processor) ExecuteConcealedKon(h *Hand, tile Tile) error {
	return p.claim(h, GroupTypeKon, KonTypeAn, tile, SeatNull, NP4)
}

// claim 先建牌组再移牌，失败时手牌不变
func (p *Processor) claim(h *Hand, typ EGroupType, konType KonType, tile Tile, from int32, need int) error {
	if !tile.IsValid() {
		return fmt.Errorf("%w: invalid tile %d", ErrInvalidArgument, tile)
	}
	if n := h.Count(tile); n < need {
		logger.Log.Errorf("player cannot %s %s: has %d, needs %d", typ, tile.Name(), n, need)
		return fmt.Errorf("%w: %s %s needs %d in hand, has %d", ErrIllegalState, typ, tile.Name(), need, n)
	}
	g, err := newGroup(typ, konType, from, makeTiles(tile, typ.Size()))
	if err != nil {
		return err
	}
	h.removeTiles(tile, need)
	h.groups = append(h.groups, g)
	return nil
}

// ExecuteBuKon 补杠：已碰的牌组加上手里的第4张
func (p *Processor) ExecuteBuKon(h *Hand, tile Tile) error {
	idx := h.PonGroup(tile)
	if idx < 0 || !h.Contains(tile) {
		logger.Log.Errorf("player cannot bu kon %s", tile.Name())
		return fmt.Errorf("%w: no pon of %s with the fourth tile in hand", ErrIllegalState, tile.Name())
	}
	g, err := newGroup(GroupTypeKon, KonTypeBu, h.groups[idx].from, makeTiles(tile, NP4))
	if err != nil {
		return err
	}
	h.removeTiles(tile, 1)
	h.groups[idx] = g
	return nil
}

func (p *Processor) ExecuteChow(h *Hand, a Action) error {
	if a.Operate != OperateChow {
		return fmt.Errorf("%w: %s is not a chow", ErrInvalidArgument, GetOperateName(a.Operate, OperateNames))
	}
	g, err := newGroup(GroupTypeChow, KonTypeNone, a.From, []Tile{a.ChowTiles[0], a.ChowTiles[1], a.Tile})
	if err != nil {
		return err
	}
	for _, t := range a.ChowTiles {
		if !h.Contains(t) {
			logger.Log.Errorf("player cannot chow %s: missing %s", a.Tile.Name(), t.Name())
			return fmt.Errorf("%w: chow needs %s in hand", ErrIllegalState, t.Name())
		}
	}
	for _, t := range a.ChowTiles {
		h.RemoveTile(t)
	}
	h.groups = append(h.groups, g)
	return nil
}

// CanSelfDrawHu 摸牌后自摸判定
func (p *Processor) CanSelfDrawHu(h *Hand) bool {
	return p.core.CheckHandHu(h, TileNull) != HU_NON
}
