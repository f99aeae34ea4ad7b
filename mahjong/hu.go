package mahjong

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/dgraph-io/ristretto"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

type HuCoreType int

const (
	HU_NON   HuCoreType = iota // 不能胡
	HU_PIN                     // 平胡：将 + 刻/顺
	HU_QIDUI                   // 七对
	HU_SSY                     // 十三幺
)

func (t HuCoreType) String() string {
	switch t {
	case HU_NON:
		return "None"
	case HU_PIN:
		return "Normal"
	case HU_QIDUI:
		return "SevenPairs"
	case HU_SSY:
		return "ThirteenOrphans"
	default:
		return "Unknown"
	}
}

// TileCounts 按规范下标统计的张数
type TileCounts [TileKindCount]int

func tileCountsOf(tiles []Tile) TileCounts {
	var counts TileCounts
	for _, t := range tiles {
		if i := t.Index(); i >= 0 {
			counts[i]++
		}
	}
	return counts
}

func (c TileCounts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// key 前8字节为判胡核心的代号，共用缓存的不同规则互不干扰
func (c TileCounts) key(gen uint64, fixedGroups int) string {
	var b [8 + TileKindCount + 1]byte
	binary.BigEndian.PutUint64(b[:8], gen)
	for i, v := range c {
		b[8+i] = byte(v)
	}
	b[8+TileKindCount] = byte(fixedGroups)
	return string(b[:])
}

var huCoreGen atomic.Uint64

var DefaultHuCore = NewHuCore(nil)

// IsCompleteHand 使用默认规则判断一组牌是否成胡
func IsCompleteHand(tiles []Tile) bool {
	return DefaultHuCore.IsCompleteHand(tiles)
}

type HuCoreOption func(*HuCore)

// WithCache 缓存判胡结果，查听时同一牌型会被反复判定
func WithCache(cache *ristretto.Cache) HuCoreOption {
	return func(c *HuCore) {
		c.cache = cache
	}
}

// NewHuCache 创建判胡缓存，每个结果成本为1
func NewHuCache(maxEntries int64) (*ristretto.Cache, error) {
	return ristretto.NewCache(&ristretto.Config{
		NumCounters: maxEntries * 10,
		MaxCost:     maxEntries,
		BufferItems: 64,
	})
}

// HuCore 判胡核心，无状态可并发使用
type HuCore struct {
	rule  *Rule
	cache *ristretto.Cache
	gen   uint64
}

func NewHuCore(rule *Rule, opts ...HuCoreOption) *HuCore {
	if rule == nil {
		rule = NewRule()
	}
	c := &HuCore{rule: rule, gen: huCoreGen.Add(1)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ResetCache 规则变化后旧的判定结果作废
func (c *HuCore) ResetCache() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

func (c *HuCore) Rule() *Rule {
	return c.rule
}

func (c *HuCore) IsCompleteHand(tiles []Tile) bool {
	for _, t := range tiles {
		if !t.IsValid() {
			return false
		}
	}
	return c.CheckHu(tileCountsOf(tiles), 0) != HU_NON
}

// CheckHandHu 立牌加 extra（可为 TileNull），副露牌组按已成的面子计
func (c *HuCore) CheckHandHu(h *Hand, extra Tile) HuCoreType {
	counts := h.Counts()
	if extra != TileNull {
		if !extra.IsValid() {
			return HU_NON
		}
		counts[extra.Index()]++
	}
	return c.CheckHu(counts, len(h.groups))
}

// CheckHu counts 为立牌，fixedGroups 为副露牌组数；counts 不会被修改
func (c *HuCore) CheckHu(counts TileCounts, fixedGroups int) HuCoreType {
	if c.cache == nil {
		return c.checkHu(counts, fixedGroups)
	}
	key := counts.key(c.gen, fixedGroups)
	if v, ok := c.cache.Get(key); ok {
		if t, ok := v.(HuCoreType); ok {
			return t
		}
	}
	t := c.checkHu(counts, fixedGroups)
	c.cache.Set(key, t, 1)
	return t
}

func (c *HuCore) checkHu(counts TileCounts, fixedGroups int) HuCoreType {
	total := counts.Total()
	shape := total + NP3*fixedGroups
	if !c.rule.isHandSize(shape) {
		return HU_NON
	}

	if isStandardHu(counts, (total-NP2)/NP3) {
		return HU_PIN
	}
	if !c.rule.specialAllowed(shape, fixedGroups) {
		return HU_NON
	}
	if c.rule.SevenPairs && isSevenPairs(counts) {
		return HU_QIDUI
	}
	if c.rule.ThirteenOrphans && isThirteenOrphans(counts) {
		return HU_SSY
	}
	logger.Log.Debugf("not complete: %v fixed=%d", counts, fixedGroups)
	return HU_NON
}

// isStandardHu 依次尝试每种 >=2 张的牌作将
func isStandardHu(counts TileCounts, need int) bool {
	for i := range counts {
		if counts[i] < NP2 {
			continue
		}
		work := counts
		work[i] -= NP2
		if canFormSets(work, need) {
			return true
		}
	}
	return false
}

// canFormSets 从最左的牌开始，先试刻子再试顺子；数组按值传递，回溯无需复原
func canFormSets(h TileCounts, need int) bool {
	i := -1
	for k := range h {
		if h[k] > 0 {
			i = k
			break
		}
	}
	if i == -1 {
		return need == 0
	}
	if need <= 0 {
		return false
	}

	if h[i] >= NP3 {
		work := h
		work[i] -= NP3
		if canFormSets(work, need-1) {
			return true
		}
	}
	if isSequenceStart(i) && h[i+1] > 0 && h[i+2] > 0 {
		work := h
		work[i]--
		work[i+1]--
		work[i+2]--
		if canFormSets(work, need-1) {
			return true
		}
	}
	return false
}

// isSequenceStart 只有数牌 1-7 可作顺子的首张
func isSequenceStart(index int) bool {
	return index < SEQ_BEGIN_BY_COLOR[ColorWind] && index%9 <= 6
}

func isSevenPairs(counts TileCounts) bool {
	total := counts.Total()
	if total%NP2 != 0 {
		return false
	}
	kinds := 0
	for _, n := range counts {
		if n%NP2 != 0 {
			return false
		}
		if n > 0 {
			kinds++
		}
	}
	return kinds == total/NP2
}

func isThirteenOrphans(counts TileCounts) bool {
	pairs := 0
	seen := 0
	for _, t := range orphanTiles {
		switch n := counts[t.Index()]; {
		case n == 1:
			seen += n
		case n == NP2:
			seen += n
			pairs++
		default:
			return false
		}
	}
	// 只允许幺九字
	return pairs == 1 && seen == counts.Total()
}
