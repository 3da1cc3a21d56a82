package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// MissionConfig 任务流程的全部文字内容
// 对应 data/mission.yaml，可通过 --content 指定外部文件覆盖
type MissionConfig struct {
	Title       string             `yaml:"title"`       // 窗口标题
	Commander   string             `yaml:"commander"`   // 收件人称呼
	Gate        GateContent        `yaml:"gate"`        // 任务控制台
	Launch      LaunchContent      `yaml:"launch"`      // 发射页
	Terminal    TerminalContent    `yaml:"terminal"`    // 终端打字机
	Story       FadePageContent    `yaml:"story"`       // 故事页
	Stargaze    StargazeContent    `yaml:"stargaze"`    // 星座页
	Gallery     GalleryContent     `yaml:"gallery"`     // 回忆星系页
	Memories    []MemoryRecord     `yaml:"memories"`    // 回忆星系中的星球（按显示顺序）
	Bridge      BridgeContent      `yaml:"bridge"`      // 小游戏入口
	Moon        MoonContent        `yaml:"moon"`        // 月球页
	Proposal    ProposalContent    `yaml:"proposal"`    // 告白页
	Celebration CelebrationContent `yaml:"celebration"` // 庆祝页
	Confetti    ConfettiContent    `yaml:"confetti"`    // 五彩纸屑
}

// GateContent 通行密码页文字
type GateContent struct {
	Heading     string `yaml:"heading"`
	Prompt      string `yaml:"prompt"`
	Placeholder string `yaml:"placeholder"`
	Button      string `yaml:"button"`
	Granted     string `yaml:"granted"`
	Denied      string `yaml:"denied"`
}

// LaunchContent 发射页文字
type LaunchContent struct {
	Heading string `yaml:"heading"`
	Body    string `yaml:"body"`
	Button  string `yaml:"button"`
}

// TerminalContent 终端页文字
// StartDelay 进入终端页后开始打字的延迟（毫秒）
type TerminalContent struct {
	Heading    string   `yaml:"heading"`
	Lines      []string `yaml:"lines"`
	StartDelay int      `yaml:"startDelay"`
}

// FadeLine 一行延迟淡入的文字
type FadeLine struct {
	Text  string `yaml:"text"`
	Delay int    `yaml:"delay"` // 毫秒
	Large bool   `yaml:"large"` // 使用标题字号
}

// FadePageContent 由若干淡入文字行和一个继续按钮组成的页面
type FadePageContent struct {
	Heading string     `yaml:"heading"`
	Lines   []FadeLine `yaml:"lines"`
	Button  string     `yaml:"button"`
}

// ConstellationPoint 星座中的一颗星（绘制面局部坐标）
type ConstellationPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// StargazeContent 星座页内容
type StargazeContent struct {
	Heading string               `yaml:"heading"`
	Hint    string               `yaml:"hint"`
	Reveal  string               `yaml:"reveal"` // 点击星座后揭示的文字
	Button  string               `yaml:"button"`
	Points  []ConstellationPoint `yaml:"points"`
	Edges   [][2]int             `yaml:"edges"`
}

// GalleryContent 回忆星系页文字
type GalleryContent struct {
	Heading string `yaml:"heading"`
	Hint    string `yaml:"hint"`
	Button  string `yaml:"button"`
	Close   string `yaml:"close"` // 弹窗关闭按钮
}

// MemoryRecord 一条回忆
type MemoryRecord struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label"` // 星球下方的名称
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
	Color string `yaml:"color"` // 星球颜色（#rrggbb）
}

// BridgeContent 小游戏入口页
type BridgeContent struct {
	Heading string `yaml:"heading"`
	Body    string `yaml:"body"`
	Play    string `yaml:"play"`
	Skip    string `yaml:"skip"`
	Won     string `yaml:"won"` // 通关提示
	// Goal 小游戏需要接住的爱心数量
	Goal int `yaml:"goal"`
}

// MoonContent 月球页
type MoonContent struct {
	FadePageContent `yaml:",inline"`
	SecretHint      string `yaml:"secretHint"`
	Secret          string `yaml:"secret"`
}

// ProposalContent 告白页
type ProposalContent struct {
	FadePageContent `yaml:",inline"`
	Yes             string `yaml:"yes"`
	No              string `yaml:"no"`
}

// CelebrationContent 庆祝页
type CelebrationContent struct {
	Heading string   `yaml:"heading"`
	Lines   []string `yaml:"lines"`
	Restart string   `yaml:"restart"`
}

// ConfettiContent 五彩纸屑参数
// 粒子数量固定为 ConfettiPoolSize，内容文件只能换颜色
type ConfettiContent struct {
	Colors []string `yaml:"colors"`
}

// 默认值
var (
	defaultConstellationPoints = []ConstellationPoint{
		{X: 50, Y: 50}, {X: 150, Y: 80}, {X: 250, Y: 60},
		{X: 200, Y: 150}, {X: 100, Y: 180}, {X: 300, Y: 200},
	}
	defaultConstellationEdges = [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}, {1, 3}}
	defaultConfettiColors     = []string{"#64ffda", "#e95aa3", "#f4f1de", "#ffffff"}
)

const (
	// ConfettiPoolSize 纸屑粒子数量
	ConfettiPoolSize = 150
	// DefaultTerminalStartDelay 进入终端页后开始打字的延迟（毫秒）
	DefaultTerminalStartDelay = 500
	// DefaultBridgeGoal 小游戏默认目标
	DefaultBridgeGoal = 10
)

// LoadMissionConfig 从YAML文件加载任务内容
func LoadMissionConfig(path string) (*MissionConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mission config file %s: %w", path, err)
	}

	cfg, err := ParseMissionConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseMissionConfig 解析YAML数据，应用默认值并校验
func ParseMissionConfig(data []byte) (*MissionConfig, error) {
	var cfg MissionConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse mission config YAML: %w", err)
	}

	applyMissionDefaults(&cfg)

	if err := validateMissionConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid mission config: %w", err)
	}
	return &cfg, nil
}

// applyMissionDefaults 为缺失的可选字段设置默认值
func applyMissionDefaults(cfg *MissionConfig) {
	if cfg.Title == "" {
		cfg.Title = "Mission To The Moon"
	}
	if len(cfg.Stargaze.Points) == 0 {
		cfg.Stargaze.Points = append([]ConstellationPoint(nil), defaultConstellationPoints...)
		if len(cfg.Stargaze.Edges) == 0 {
			cfg.Stargaze.Edges = append([][2]int(nil), defaultConstellationEdges...)
		}
	}
	if cfg.Gallery.Close == "" {
		cfg.Gallery.Close = "Close"
	}
	if cfg.Terminal.StartDelay <= 0 {
		cfg.Terminal.StartDelay = DefaultTerminalStartDelay
	}
	if cfg.Bridge.Won == "" {
		cfg.Bridge.Won = "Fuel tanks full!"
	}
	if cfg.Bridge.Goal <= 0 {
		cfg.Bridge.Goal = DefaultBridgeGoal
	}
	if len(cfg.Confetti.Colors) == 0 {
		cfg.Confetti.Colors = append([]string(nil), defaultConfettiColors...)
	}
}

// validateMissionConfig 验证内容的完整性
func validateMissionConfig(cfg *MissionConfig) error {
	for i, edge := range cfg.Stargaze.Edges {
		for _, idx := range edge {
			if idx < 0 || idx >= len(cfg.Stargaze.Points) {
				return fmt.Errorf("constellation edge %d references unknown point %d", i, idx)
			}
		}
	}

	seen := make(map[string]bool, len(cfg.Memories))
	for i, m := range cfg.Memories {
		if m.Key == "" {
			return fmt.Errorf("memory %d: key is required", i)
		}
		if seen[m.Key] {
			return fmt.Errorf("memory %d: duplicate key %q", i, m.Key)
		}
		seen[m.Key] = true
		if m.Color != "" {
			if _, err := ParseHexColor(m.Color); err != nil {
				return fmt.Errorf("memory %q: %w", m.Key, err)
			}
		}
	}

	for _, c := range cfg.Confetti.Colors {
		if _, err := ParseHexColor(c); err != nil {
			return fmt.Errorf("confetti: %w", err)
		}
	}
	return nil
}

// Memory 按键查找回忆
func (c *MissionConfig) Memory(key string) (MemoryRecord, bool) {
	for _, m := range c.Memories {
		if m.Key == key {
			return m, true
		}
	}
	return MemoryRecord{}, false
}

// ConfettiPalette 返回解析后的纸屑颜色
func (c *MissionConfig) ConfettiPalette() []color.RGBA {
	palette := make([]color.RGBA, 0, len(c.Confetti.Colors))
	for _, s := range c.Confetti.Colors {
		if col, err := ParseHexColor(s); err == nil {
			palette = append(palette, col)
		}
	}
	return palette
}

// ParseHexColor 解析 #rgb / #rrggbb 格式的颜色
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
