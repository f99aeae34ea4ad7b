package mahjong

import (
	"fmt"
	"slices"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

// Rule 台湾十六张规则开关
type Rule struct {
	HandSizes       []int     `mapstructure:"hand_sizes"`        // 可胡的牌型张数
	SevenPairs      bool      `mapstructure:"seven_pairs"`       // 七对
	ThirteenOrphans bool      `mapstructure:"thirteen_orphans"`  // 十三幺
	SpecialOnDealer bool      `mapstructure:"special_on_dealer"` // 17张时也检查七对/十三幺
	TingSizes       []int     `mapstructure:"ting_sizes"`        // 可查听的牌型张数
	MultiHu         bool      `mapstructure:"multi_hu"`          // 一炮多响
	BaseScore       int64     `mapstructure:"base_score"`        // 底
	TaiScore        int64     `mapstructure:"tai_score"`         // 每台
	ScoreType       ScoreType `mapstructure:"score_type"`
}

func NewRule() *Rule {
	return &Rule{
		HandSizes:       []int{14, 17},
		SevenPairs:      true,
		ThirteenOrphans: true,
		SpecialOnDealer: false,
		TingSizes:       []int{13, 14},
		MultiHu:         false,
		BaseScore:       100,
		TaiScore:        20,
		ScoreType:       ScoreTypeNatural,
	}
}

func (r *Rule) isHandSize(n int) bool {
	return slices.Contains(r.HandSizes, n)
}

func (r *Rule) isTingSize(n int) bool {
	return slices.Contains(r.TingSizes, n)
}

// specialAllowed 七对/十三幺只在无副露时检查，17张需打开 SpecialOnDealer
func (r *Rule) specialAllowed(total, fixedGroups int) bool {
	if fixedGroups > 0 {
		return false
	}
	return total == 14 || (total == TileCountInitBanker && r.SpecialOnDealer)
}

func (r *Rule) Validate() error {
	if len(r.HandSizes) == 0 {
		return fmt.Errorf("%w: hand_sizes is empty", ErrInvalidArgument)
	}
	for _, n := range r.HandSizes {
		if n%3 != 2 {
			return fmt.Errorf("%w: hand size %d is not 3n+2", ErrInvalidArgument, n)
		}
	}
	if r.BaseScore < 0 || r.TaiScore < 0 {
		return fmt.Errorf("%w: negative score", ErrInvalidArgument)
	}
	if r.ScoreType < ScoreTypeNatural || r.ScoreType > ScoreTypeJustWin {
		return fmt.Errorf("%w: unknown score type %d", ErrInvalidArgument, r.ScoreType)
	}
	return nil
}

func newRuleViper(path string) *viper.Viper {
	def := NewRule()
	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetDefault("hand_sizes", def.HandSizes)
	vp.SetDefault("seven_pairs", def.SevenPairs)
	vp.SetDefault("thirteen_orphans", def.ThirteenOrphans)
	vp.SetDefault("special_on_dealer", def.SpecialOnDealer)
	vp.SetDefault("ting_sizes", def.TingSizes)
	vp.SetDefault("multi_hu", def.MultiHu)
	vp.SetDefault("base_score", def.BaseScore)
	vp.SetDefault("tai_score", def.TaiScore)
	vp.SetDefault("score_type", int(def.ScoreType))
	return vp
}

func unmarshalRule(vp *viper.Viper) (*Rule, error) {
	rule := NewRule()
	if err := vp.Unmarshal(rule); err != nil {
		return nil, err
	}
	if err := rule.Validate(); err != nil {
		return nil, err
	}
	return rule, nil
}

// LoadRule 从 yaml/json/toml 文件加载规则，缺省项用 NewRule 的值
func LoadRule(path string) (*Rule, error) {
	vp := newRuleViper(path)
	if err := vp.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read rule %s: %w", path, err)
	}
	return unmarshalRule(vp)
}

// WatchRule 加载规则并在文件变化时回调新规则
func WatchRule(path string, onChange func(*Rule)) (*Rule, error) {
	vp := newRuleViper(path)
	if err := vp.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read rule %s: %w", path, err)
	}
	rule, err := unmarshalRule(vp)
	if err != nil {
		return nil, err
	}

	vp.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		r, err := unmarshalRule(vp)
		if err != nil {
			logger.Log.Errorf("reload rule %s: %v", e.Name, err)
			return
		}
		logger.Log.Infof("rule reloaded from %s", e.Name)
		onChange(r)
	})
	vp.WatchConfig()
	return rule, nil
}
