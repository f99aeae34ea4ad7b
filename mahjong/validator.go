package mahjong

// ChowOption 一种吃法：Left 为顺子最小的牌，Tiles 为需从手里拿出的两张
type ChowOption struct {
	Left  Tile
	Tiles [2]Tile
}

// Validator 判断某家对一张牌能否吃碰杠胡，不修改手牌
type Validator struct {
	core *HuCore
}

func NewValidator(core *HuCore) *Validator {
	if core == nil {
		core = DefaultHuCore
	}
	return &Validator{core: core}
}

func (v *Validator) CanPon(h *Hand, tile Tile) bool {
	return tile.IsValid() && h.Count(tile) >= NP2
}

// CanKon 直杠：手里已有3张
func (v *Validator) CanKon(h *Hand, tile Tile) bool {
	return tile.IsValid() && h.Count(tile) >= NP3
}

func (v *Validator) CanChow(h *Hand, tile Tile) bool {
	return len(v.ChowOptions(h, tile)) > 0
}

// ChowOptions 依次检查 (d-2,d-1,d) (d-1,d,d+1) (d,d+1,d+2)
func (v *Validator) ChowOptions(h *Hand, tile Tile) []ChowOption {
	if !tile.IsSuit() {
		return nil
	}
	var options []ChowOption
	for left := -2; left <= 0; left++ {
		var need []Tile
		for i := range NP3 {
			if left+i == 0 {
				continue
			}
			need = append(need, tile.Next(left+i))
		}
		if need[0] == TileNull || need[1] == TileNull {
			continue
		}
		if !h.Contains(need[0]) || !h.Contains(need[1]) {
			continue
		}
		options = append(options, ChowOption{
			Left:  tile.Next(left),
			Tiles: [2]Tile{need[0], need[1]},
		})
	}
	return options
}

// CanHu 点炮胡
func (v *Validator) CanHu(h *Hand, tile Tile) bool {
	return tile.IsValid() && v.core.CheckHandHu(h, tile) != HU_NON
}

// ConcealedKonTiles 手里正好4张的牌
func (v *Validator) ConcealedKonTiles(h *Hand) []Tile {
	counts := h.Counts()
	var tiles []Tile
	for i, n := range counts {
		if n == SameTileCount {
			tiles = append(tiles, TileFromIndex(i))
		}
	}
	return tiles
}

// BuKonTiles 已碰且第4张在手里
func (v *Validator) BuKonTiles(h *Hand) []Tile {
	var tiles []Tile
	for _, g := range h.groups {
		if g.typ == GroupTypePon && h.Contains(g.Tile()) {
			tiles = append(tiles, g.Tile())
		}
	}
	return tiles
}
