package mahjong

import "slices"

// TingResult 听牌结果，Tiles 按牌序排列且不重复
type TingResult struct {
	Ting  bool
	Tiles []Tile
}

// TingDetector 查听，不修改手牌
type TingDetector struct {
	core *HuCore
}

func NewTingDetector(core *HuCore) *TingDetector {
	if core == nil {
		core = DefaultHuCore
	}
	return &TingDetector{core: core}
}

// DetectTing 牌型张数不在 TingSizes 内时直接返回不听
func (d *TingDetector) DetectTing(h *Hand) TingResult {
	if !d.core.rule.isTingSize(h.ShapeCount()) {
		return TingResult{}
	}
	tiles := d.waits(h.Counts(), len(h.groups))
	return TingResult{Ting: len(tiles) > 0, Tiles: tiles}
}

// waits 逐一加入34种牌试胡
func (d *TingDetector) waits(counts TileCounts, fixedGroups int) []Tile {
	var tiles []Tile
	for i := range TileKindCount {
		work := counts
		work[i]++
		if d.core.CheckHu(work, fixedGroups) != HU_NON {
			tiles = append(tiles, TileFromIndex(i))
		}
	}
	return tiles
}

func (d *TingDetector) CanWinWithTile(h *Hand, tile Tile) bool {
	return tile.IsValid() && d.core.CheckHandHu(h, tile) != HU_NON
}

// IsWinningHand 立牌加副露牌组是否已成胡
func (d *TingDetector) IsWinningHand(h *Hand) bool {
	return d.core.CheckHandHu(h, TileNull) != HU_NON
}

// CallMap 摸牌后打哪张可以听哪些牌
func (d *TingDetector) CallMap(h *Hand) map[Tile][]Tile {
	res := make(map[Tile][]Tile)
	if !d.core.rule.isHandSize(h.ShapeCount()) {
		return res
	}
	counts := h.Counts()
	for _, t := range slices.Compact(h.Tiles()) {
		work := counts
		work[t.Index()]--
		if tiles := d.waits(work, len(h.groups)); len(tiles) > 0 {
			res[t] = tiles
		}
	}
	return res
}
