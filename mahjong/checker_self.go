package mahjong

// CheckerSelf 摸牌后对自己手牌的检查
type CheckerSelf interface {
	Check(h *Hand, opt *Operates)
}

type CheckerHu struct{ p *Processor } // 自摸检查器
func NewCheckerHu(p *Processor) CheckerSelf {
	return &CheckerHu{p: p}
}

func (c *CheckerHu) Check(h *Hand, opt *Operates) {
	if c.p.CanSelfDrawHu(h) {
		opt.AddOperate(OperateHu)
	}
}

type CheckerKon struct{ v *Validator } // 暗杠、补杠检查器
func NewCheckerKon(v *Validator) CheckerSelf {
	return &CheckerKon{v: v}
}

func (c *CheckerKon) Check(h *Hand, opt *Operates) {
	if len(c.v.ConcealedKonTiles(h)) > 0 || len(c.v.BuKonTiles(h)) > 0 {
		opt.AddOperate(OperateKon)
	}
}

type CheckerTing struct{ t *TingDetector } // 打一张可听
func NewCheckerTing(t *TingDetector) CheckerSelf {
	return &CheckerTing{t: t}
}

func (c *CheckerTing) Check(h *Hand, opt *Operates) {
	if len(c.t.CallMap(h)) > 0 {
		opt.AddOperate(OperateTing)
	}
}
