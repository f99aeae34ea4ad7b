package service

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"sync/atomic"

	"github.com/kevin-chtw/tw_tai/mahjong"
	"github.com/kevin-chtw/tw_tai/utils"
	pitaya "github.com/topfreegames/pitaya/v3/pkg"
	"github.com/topfreegames/pitaya/v3/pkg/component"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"
)

type handler func(*Evaluator, context.Context, *structpb.Struct) (map[string]any, error)

// engine 一套规则下的算牌组件，规则更新时整体替换
type engine struct {
	processor *mahjong.Processor
	rule      *mahjong.Rule
}

// Evaluator 算牌远程服务，请求的 op 字段选择处理函数
type Evaluator struct {
	component.Base
	engine   atomic.Pointer[engine]
	tai      *mahjong.TaiCalculator
	opts     []mahjong.HuCoreOption
	handlers map[string]handler
}

// NewEvaluator rule 为 nil 时使用默认规则
func NewEvaluator(rule *mahjong.Rule, opts ...mahjong.HuCoreOption) *Evaluator {
	e := &Evaluator{
		tai:      mahjong.NewTaiCalculator(),
		opts:     opts,
		handlers: make(map[string]handler),
	}
	e.SetRule(rule)
	return e
}

// SetRule 之后的请求使用新规则
func (e *Evaluator) SetRule(rule *mahjong.Rule) {
	core := mahjong.NewHuCore(rule, e.opts...)
	core.ResetCache()
	e.engine.Store(&engine{
		processor: mahjong.NewProcessor(core),
		rule:      core.Rule(),
	})
}

// WatchRule 从文件加载规则，文件变化时自动更新
func (e *Evaluator) WatchRule(path string) error {
	rule, err := mahjong.WatchRule(path, e.SetRule)
	if err != nil {
		return err
	}
	e.SetRule(rule)
	return nil
}

func (e *Evaluator) Rule() *mahjong.Rule {
	return e.engine.Load().rule
}

// Register 注册为 pitaya remote，路由为 evaluator.message
func Register(app pitaya.Pitaya, e *Evaluator) {
	app.RegisterRemote(e, component.WithName("evaluator"), component.WithNameFunc(strings.ToLower))
}

// Init 组件初始化
func (e *Evaluator) Init() {
	e.handlers["hu"] = (*Evaluator).handleHu
	e.handlers["ting"] = (*Evaluator).handleTing
	e.handlers["tai"] = (*Evaluator).handleTai
	e.handlers["actions"] = (*Evaluator).handleActions
	e.handlers["settle"] = (*Evaluator).handleSettle
}

func (e *Evaluator) Message(ctx context.Context, req *structpb.Struct) (rsp *structpb.Struct, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Log.Errorf("panic recovered %s\n %s", r, string(debug.Stack()))
			err = fmt.Errorf("internal error: %v", r)
		}
	}()
	if req == nil {
		return nil, errors.New("nil request")
	}
	op := utils.StringField(req, "op")
	h, ok := e.handlers[op]
	if !ok {
		return nil, fmt.Errorf("%w: invalid op %q", mahjong.ErrInvalidArgument, op)
	}
	res, err := h(e, ctx, req)
	if err != nil {
		logger.Log.Errorf("op %s: %v", op, err)
		return nil, err
	}
	return utils.ToStruct(res)
}

// Any 与 Message 相同，请求和应答用 anypb 包装
func (e *Evaluator) Any(ctx context.Context, req *anypb.Any) (*anypb.Any, error) {
	s, err := utils.FromAny(req)
	if err != nil {
		return nil, err
	}
	rsp, err := e.Message(ctx, s)
	if err != nil {
		return nil, err
	}
	return utils.ToAny(rsp), nil
}

func parseHand(req *structpb.Struct) (*mahjong.Hand, error) {
	return mahjong.ParseHand(utils.StringField(req, "tiles"), utils.ListField(req, "groups")...)
}

// parseWind 缺省为无风
func parseWind(req *structpb.Struct, key string) (mahjong.Tile, error) {
	name := utils.StringField(req, key)
	if name == "" {
		return mahjong.TileNull, nil
	}
	tiles, err := mahjong.ParseTiles(name)
	if err != nil {
		return mahjong.TileNull, err
	}
	if len(tiles) != 1 || !tiles[0].IsWind() {
		return mahjong.TileNull, fmt.Errorf("%w: %s is not a wind", mahjong.ErrInvalidArgument, name)
	}
	return tiles[0], nil
}

func tileNames(tiles []mahjong.Tile) []any {
	res := make([]any, len(tiles))
	for i, t := range tiles {
		res[i] = t.Name()
	}
	return res
}

func (e *Evaluator) handleHu(ctx context.Context, req *structpb.Struct) (map[string]any, error) {
	h, err := parseHand(req)
	if err != nil {
		return nil, err
	}
	typ := e.engine.Load().processor.Core().CheckHandHu(h, mahjong.TileNull)
	return map[string]any{
		"hu":   typ != mahjong.HU_NON,
		"type": typ.String(),
	}, nil
}

func (e *Evaluator) handleTing(ctx context.Context, req *structpb.Struct) (map[string]any, error) {
	h, err := parseHand(req)
	if err != nil {
		return nil, err
	}
	res := e.engine.Load().processor.Ting().DetectTing(h)
	return map[string]any{
		"ting":  res.Ting,
		"tiles": tileNames(res.Tiles),
	}, nil
}

func (e *Evaluator) handleTai(ctx context.Context, req *structpb.Struct) (map[string]any, error) {
	h, err := parseHand(req)
	if err != nil {
		return nil, err
	}
	if !e.engine.Load().processor.Ting().IsWinningHand(h) {
		return nil, fmt.Errorf("%w: %s is not a winning hand", mahjong.ErrIllegalState, h)
	}
	round, err := parseWind(req, "round_wind")
	if err != nil {
		return nil, err
	}
	seat, err := parseWind(req, "seat_wind")
	if err != nil {
		return nil, err
	}
	res := e.tai.Evaluate(h, mahjong.TaiContext{
		SelfDraw:  utils.BoolField(req, "self_draw"),
		RoundWind: round,
		SeatWind:  seat,
	})
	items := make([]any, 0, len(res.Items))
	for _, it := range res.Items {
		items = append(items, map[string]any{
			"type": it.Type.String(),
			"tile": it.Tile.Name(),
			"tai":  it.Tai,
		})
	}
	return map[string]any{
		"tai":   res.Total,
		"items": items,
	}, nil
}

// handleActions hands 为各家立牌，tile 为打出的牌，from 为出牌座位
func (e *Evaluator) handleActions(ctx context.Context, req *structpb.Struct) (map[string]any, error) {
	names := utils.ListField(req, "hands")
	if len(names) < mahjong.NP2 {
		return nil, fmt.Errorf("%w: need at least 2 hands", mahjong.ErrInvalidArgument)
	}
	hands := make([]*mahjong.Hand, len(names))
	for i, s := range names {
		h, err := mahjong.ParseHand(s)
		if err != nil {
			return nil, err
		}
		hands[i] = h
	}
	tiles, err := mahjong.ParseTiles(utils.StringField(req, "tile"))
	if err != nil {
		return nil, err
	}
	if len(tiles) != 1 {
		return nil, fmt.Errorf("%w: need exactly one discard", mahjong.ErrInvalidArgument)
	}
	from := int32(utils.NumberField(req, "from", 0))
	if from < 0 || int(from) >= len(hands) {
		return nil, fmt.Errorf("%w: from seat %d", mahjong.ErrInvalidArgument, from)
	}

	p := e.engine.Load().processor
	actions := p.CheckActions(hands, tiles[0], from)
	list := make([]any, 0, len(actions))
	for _, a := range actions {
		list = append(list, a.String())
	}
	resolved := make([]any, 0)
	for _, a := range p.Resolve(actions) {
		resolved = append(resolved, a.String())
	}
	return map[string]any{
		"actions":  list,
		"resolved": resolved,
	}, nil
}

func (e *Evaluator) handleSettle(ctx context.Context, req *structpb.Struct) (map[string]any, error) {
	n := utils.NumberField(req, "players", mahjong.NP4)
	if n < mahjong.NP2 || n > mahjong.NP4 {
		return nil, fmt.Errorf("%w: %d players", mahjong.ErrInvalidArgument, n)
	}
	players := int32(n)
	rule := e.Rule()
	scores, err := rule.Settle(
		int(utils.NumberField(req, "tai", 0)),
		int32(utils.NumberField(req, "winner", 0)),
		int32(utils.NumberField(req, "from", int64(mahjong.SeatNull))),
		utils.BoolField(req, "self_draw"),
		players,
	)
	if err != nil {
		return nil, err
	}
	scores, err = mahjong.NewScorelator(rule.ScoreType).Calculate(takeScores(req, players), scores)
	if err != nil {
		return nil, err
	}
	res := make([]any, len(scores))
	for i, s := range scores {
		res[i] = s
	}
	return map[string]any{"scores": res}, nil
}

// takeScores 带入分，缺省视为足够大
func takeScores(req *structpb.Struct, players int32) []int64 {
	res := make([]int64, players)
	values := req.GetFields()["take_scores"].GetListValue().GetValues()
	for i := range res {
		if i < len(values) {
			res[i] = int64(values[i].GetNumberValue())
		} else {
			res[i] = 1 << 40
		}
	}
	return res
}
