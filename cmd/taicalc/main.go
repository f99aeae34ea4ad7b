package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/kevin-chtw/tw_tai/mahjong"
	"github.com/kevin-chtw/tw_tai/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

var (
	configFile string
	logLevel   string
	logDir     string
	cacheSize  int64
	groups     []string

	core *mahjong.HuCore
)

var rootCmd = &cobra.Command{
	Use:   "taicalc",
	Short: "台湾十六张 判胡/查听/算台",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logger.SetLogger(utils.Logger(level, logDir))

		rule := mahjong.NewRule()
		if configFile != "" {
			if rule, err = mahjong.LoadRule(configFile); err != nil {
				return err
			}
		}
		var opts []mahjong.HuCoreOption
		if cacheSize > 0 {
			cache, err := mahjong.NewHuCache(cacheSize)
			if err != nil {
				return err
			}
			opts = append(opts, mahjong.WithCache(cache))
		}
		core = mahjong.NewHuCore(rule, opts...)
		return nil
	},
}

var huCmd = &cobra.Command{
	Use:   "hu <tiles>",
	Short: "判断是否胡牌",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := mahjong.ParseHand(args[0], groups...)
		if err != nil {
			return err
		}
		typ := core.CheckHandHu(h, mahjong.TileNull)
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", h, typ)
		return nil
	},
}

var tingCmd = &cobra.Command{
	Use:   "ting <tiles>",
	Short: "查听，手牌多一张时列出打哪张听哪些",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := mahjong.ParseHand(args[0], groups...)
		if err != nil {
			return err
		}
		d := mahjong.NewTingDetector(core)
		out := cmd.OutOrStdout()
		if res := d.DetectTing(h); res.Ting {
			fmt.Fprintf(out, "ting: %s\n", mahjong.TilesName(res.Tiles))
			return nil
		}
		calls := d.CallMap(h)
		if len(calls) == 0 {
			fmt.Fprintln(out, "not ting")
			return nil
		}
		for _, t := range mahjong.AllTiles() {
			if waits, ok := calls[t]; ok {
				fmt.Fprintf(out, "discard %s: %s\n", t, mahjong.TilesName(waits))
			}
		}
		return nil
	},
}

var (
	selfDraw  bool
	roundWind string
	seatWind  string
)

var taiCmd = &cobra.Command{
	Use:   "tai <tiles>",
	Short: "算台",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := mahjong.ParseHand(args[0], groups...)
		if err != nil {
			return err
		}
		if !mahjong.NewTingDetector(core).IsWinningHand(h) {
			return fmt.Errorf("%w: %s is not a winning hand", mahjong.ErrIllegalState, h)
		}
		round, err := parseWind(roundWind)
		if err != nil {
			return err
		}
		seat, err := parseWind(seatWind)
		if err != nil {
			return err
		}
		res := mahjong.NewTaiCalculator().Evaluate(h, mahjong.TaiContext{
			SelfDraw:  selfDraw,
			RoundWind: round,
			SeatWind:  seat,
		})
		out := cmd.OutOrStdout()
		for _, it := range res.Items {
			fmt.Fprintf(out, "%-10s %s %d\n", it.Type, it.Tile, it.Tai)
		}
		fmt.Fprintf(out, "total %d\n", res.Total)
		return nil
	},
}

func parseWind(name string) (mahjong.Tile, error) {
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

var from int32

var actionsCmd = &cobra.Command{
	Use:   "actions <discard> <hand0> <hand1> [hand2] [hand3]",
	Short: "列出各家对一张打出牌可做的动作",
	Args:  cobra.RangeArgs(3, 5),
	RunE: func(cmd *cobra.Command, args []string) error {
		tiles, err := mahjong.ParseTiles(args[0])
		if err != nil {
			return err
		}
		if len(tiles) != 1 {
			return fmt.Errorf("%w: need exactly one discard", mahjong.ErrInvalidArgument)
		}
		hands := make([]*mahjong.Hand, 0, len(args)-1)
		for _, s := range args[1:] {
			h, err := mahjong.ParseHand(s)
			if err != nil {
				return err
			}
			hands = append(hands, h)
		}
		if from < 0 || int(from) >= len(hands) {
			return fmt.Errorf("%w: from seat %d", mahjong.ErrInvalidArgument, from)
		}
		p := mahjong.NewProcessor(core)
		out := cmd.OutOrStdout()
		actions := p.CheckActions(hands, tiles[0], from)
		for _, a := range actions {
			fmt.Fprintln(out, a)
		}
		for _, a := range p.Resolve(actions) {
			fmt.Fprintf(out, "resolved: %s\n", a)
		}
		return nil
	},
}

var (
	seed       int64
	manualFile string
)

var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "洗牌发牌，庄家为0号位（配牌时以配牌为准）",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		d := mahjong.NewDealer(rand.New(rand.NewSource(seed)))
		if manualFile != "" {
			m, err := mahjong.LoadManual(manualFile)
			if err != nil {
				return err
			}
			d.SetManual(m)
		}
		if err := d.Initialize(mahjong.NP4); err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		t := mahjong.NewTingDetector(core)
		banker := d.Banker(0)
		for i, h := range d.DealHands(mahjong.NP4, banker) {
			line := fmt.Sprintf("seat %d: %s", i, h)
			if int32(i) == banker {
				line += " [banker]"
			}
			if calls := t.CallMap(h); len(calls) > 0 {
				line += fmt.Sprintf(" (%d discards to ting)", len(calls))
			}
			fmt.Fprintln(out, line)
		}
		fmt.Fprintf(out, "rest %d, seed %d\n", d.GetRestCount(), seed)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "rule file (yaml/json/toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "rotating log directory, stderr when empty")
	rootCmd.PersistentFlags().Int64Var(&cacheSize, "cache", 0, "hu verdict cache entries, 0 disables")

	for _, c := range []*cobra.Command{huCmd, tingCmd, taiCmd} {
		c.Flags().StringSliceVarP(&groups, "group", "g", nil, `exposed group, e.g. "C,C,C" (repeatable)`)
	}
	taiCmd.Flags().BoolVar(&selfDraw, "self-draw", false, "win by self draw")
	taiCmd.Flags().StringVar(&roundWind, "round", "", "round wind: E S W N")
	taiCmd.Flags().StringVar(&seatWind, "seat", "", "seat wind: E S W N")
	actionsCmd.Flags().Int32Var(&from, "from", 0, "discarder seat")
	dealCmd.Flags().Int64Var(&seed, "seed", 0, "shuffle seed, random when 0")
	dealCmd.Flags().StringVar(&manualFile, "manual", "", "preset deal file")

	rootCmd.AddCommand(huCmd, tingCmd, taiCmd, actionsCmd, dealCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimSpace(err.Error()))
		os.Exit(1)
	}
}
