package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/decker502/anniversary/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// ErrInvalidCardConfig 贺卡配置校验失败
var ErrInvalidCardConfig = errors.New("invalid card config")

// DefaultCardConfigPath 默认贺卡配置文件路径
const DefaultCardConfigPath = "data/card.yaml"

// CardConfig 贺卡完整配置（data/card.yaml）
// 文案、资源ID、淡入参数、粒子参数都在这里，代码中不写死内容
type CardConfig struct {
	Window   WindowConfig  `yaml:"window"`
	Theme    ThemeConfig   `yaml:"theme"`
	Cover    CoverConfig   `yaml:"cover"`
	Message  MessageConfig `yaml:"message"`
	Reveal   RevealConfig  `yaml:"reveal"`
	Fade     FadeConfig    `yaml:"fade"`
	Sparkles SparkleConfig `yaml:"sparkles"`
	Hearts   HeartConfig   `yaml:"hearts"`
}

// WindowConfig 窗口尺寸（逻辑像素）
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// ThemeConfig 配色（十六进制颜色字符串）
type ThemeConfig struct {
	Paper       string `yaml:"paper"`       // 背景纸张色
	Gold        string `yaml:"gold"`        // 主强调色
	Charcoal    string `yaml:"charcoal"`    // 标题文字
	Muted       string `yaml:"muted"`       // 次要文字
	Heart       string `yaml:"heart"`       // 漂浮爱心
	Frame       string `yaml:"frame"`       // 相框
	Placeholder string `yaml:"placeholder"` // 照片缺失时的填充色
}

// CoverConfig 封面文案
type CoverConfig struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Button   string `yaml:"button"`
}

// MessageConfig 寄语页文案
type MessageConfig struct {
	Greeting string `yaml:"greeting"`
	Quote    string `yaml:"quote"`
	Note     string `yaml:"note"`
	Link     string `yaml:"link"`
}

// RevealConfig 揭晓页配置
type RevealConfig struct {
	PhotoID   string `yaml:"photoId"` // resources.yaml 中的图片资源ID
	SongID    string `yaml:"songId"`  // resources.yaml 中的音乐资源ID
	Heading   string `yaml:"heading"`
	Signature string `yaml:"signature"`
}

// FadeConfig 背景音乐淡入参数
type FadeConfig struct {
	Step         float64 `yaml:"step"`         // 每次增加的音量
	Interval     float64 `yaml:"interval"`     // 增加间隔（秒）
	Ceiling      float64 `yaml:"ceiling"`      // 音量上限
	StartTimeout float64 `yaml:"startTimeout"` // 等待播放许可的最长时间（秒）
}

// SparkleConfig 背景闪光粒子参数
type SparkleConfig struct {
	Count       int      `yaml:"count"`
	Palette     []string `yaml:"palette"`
	MinSize     float64  `yaml:"minSize"`
	MaxSize     float64  `yaml:"maxSize"`
	MinDuration float64  `yaml:"minDuration"`
	MaxDuration float64  `yaml:"maxDuration"`
	MinRise     float64  `yaml:"minRise"`
	MaxRise     float64  `yaml:"maxRise"`
	MaxScale    float64  `yaml:"maxScale"`
	MaxDelay    float64  `yaml:"maxDelay"`
}

// HeartConfig 揭晓页漂浮爱心参数
type HeartConfig struct {
	Count    int     `yaml:"count"`
	Duration float64 `yaml:"duration"` // 单次上升时长（秒）
	Stagger  float64 `yaml:"stagger"`  // 相邻爱心的启动间隔（秒）
	Rise     float64 `yaml:"rise"`     // 上升高度（像素）
	Spread   float64 `yaml:"spread"`   // 相邻爱心水平间距（窗口宽度百分比）
	OriginY  float64 `yaml:"originY"`  // 起点高度（窗口高度比例）
	Size     float64 `yaml:"size"`     // 字号
}

// DefaultCardConfig 返回默认配置
func DefaultCardConfig() *CardConfig {
	return &CardConfig{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "50 Years - A Love Story",
		},
		Theme: ThemeConfig{
			Paper:       "#FDFBF7",
			Gold:        "#D4AF37",
			Charcoal:    "#333333",
			Muted:       "#6B7280",
			Heart:       "#F87171",
			Frame:       "#FFFFFF",
			Placeholder: "#F3F4F6",
		},
		Cover: CoverConfig{
			Title:    "50 Years",
			Subtitle: "A LOVE STORY",
			Button:   "Open Book",
		},
		Message: MessageConfig{
			Greeting: "To Mumma & Papa,",
			Quote:    "\"True love isn't about finding someone you can live with...\nit's about finding someone you can't live without.\"",
			Note:     "Watching you two has been the greatest lesson of our lives.",
			Link:     "See the magic moment →",
		},
		Reveal: RevealConfig{
			PhotoID:   "IMAGE_PHOTO",
			SongID:    "SOUND_SONG",
			Heading:   "Happy Anniversary",
			Signature: "With love, Name & SisterName",
		},
		Fade: FadeConfig{
			Step:         0.1,
			Interval:     0.2,
			Ceiling:      0.9,
			StartTimeout: 3,
		},
		Sparkles: SparkleConfig{
			Count:       30,
			Palette:     []string{"#D4AF37", "#F3E5AB"},
			MinSize:     2,
			MaxSize:     8,
			MinDuration: 2,
			MaxDuration: 5,
			MinRise:     50,
			MaxRise:     150,
			MaxScale:    1.5,
			MaxDelay:    5,
		},
		Hearts: HeartConfig{
			Count:    5,
			Duration: 4,
			Stagger:  1.5,
			Rise:     300,
			Spread:   15,
			OriginY:  0.6,
			Size:     36,
		},
	}
}

// LoadCardConfig 从 YAML 文件加载贺卡配置
// 文件中未出现的字段保留默认值
//
// 参数：
//
//	path - 配置文件路径（"data/..." 走嵌入资源，其余路径读取磁盘）
func LoadCardConfig(path string) (*CardConfig, error) {
	var data []byte
	var err error
	if embedded.HasKnownPrefix(path) {
		data, err = embedded.ReadFile(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read card config %s: %w", path, err)
	}

	cfg, err := ParseCardConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load card config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseCardConfig 解析并校验 YAML 数据
func ParseCardConfig(data []byte) (*CardConfig, error) {
	cfg := DefaultCardConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse card YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 校验配置合法性
func (c *CardConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size must be positive, got %dx%d", ErrInvalidCardConfig, c.Window.Width, c.Window.Height)
	}

	if c.Fade.Step <= 0 {
		return fmt.Errorf("%w: fade.step must be positive, got %v", ErrInvalidCardConfig, c.Fade.Step)
	}
	if c.Fade.Interval <= 0 {
		return fmt.Errorf("%w: fade.interval must be positive, got %v", ErrInvalidCardConfig, c.Fade.Interval)
	}
	if c.Fade.Ceiling <= 0 || c.Fade.Ceiling > 1 {
		return fmt.Errorf("%w: fade.ceiling must be in (0, 1], got %v", ErrInvalidCardConfig, c.Fade.Ceiling)
	}
	if c.Fade.StartTimeout < 0 {
		return fmt.Errorf("%w: fade.startTimeout cannot be negative, got %v", ErrInvalidCardConfig, c.Fade.StartTimeout)
	}

	s := c.Sparkles
	if s.Count < 0 {
		return fmt.Errorf("%w: sparkles.count cannot be negative, got %d", ErrInvalidCardConfig, s.Count)
	}
	if len(s.Palette) == 0 {
		return fmt.Errorf("%w: sparkles.palette must not be empty", ErrInvalidCardConfig)
	}
	for _, hex := range s.Palette {
		if _, err := ParseHexColor(hex); err != nil {
			return fmt.Errorf("%w: sparkles.palette: %v", ErrInvalidCardConfig, err)
		}
	}
	if s.MinSize <= 0 || s.MaxSize < s.MinSize {
		return fmt.Errorf("%w: sparkles size range [%v, %v] is invalid", ErrInvalidCardConfig, s.MinSize, s.MaxSize)
	}
	if s.MinDuration <= 0 || s.MaxDuration < s.MinDuration {
		return fmt.Errorf("%w: sparkles duration range [%v, %v] is invalid", ErrInvalidCardConfig, s.MinDuration, s.MaxDuration)
	}
	if s.MaxRise < s.MinRise || s.MaxScale < 0 || s.MaxDelay < 0 {
		return fmt.Errorf("%w: sparkles motion parameters are invalid", ErrInvalidCardConfig)
	}

	if c.Hearts.Count < 0 || c.Hearts.Duration <= 0 {
		return fmt.Errorf("%w: hearts need a non-negative count and a positive duration", ErrInvalidCardConfig)
	}

	theme := []string{c.Theme.Paper, c.Theme.Gold, c.Theme.Charcoal, c.Theme.Muted, c.Theme.Heart, c.Theme.Frame, c.Theme.Placeholder}
	for _, hex := range theme {
		if _, err := ParseHexColor(hex); err != nil {
			return fmt.Errorf("%w: theme: %v", ErrInvalidCardConfig, err)
		}
	}

	return nil
}

// ParseHexColor 解析 "#RRGGBB" 或 "#RRGGBBAA" 颜色
func ParseHexColor(hex string) (color.NRGBA, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("color %q must be #RRGGBB or #RRGGBBAA", hex)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", hex, err)
	}

	if len(s) == 6 {
		return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// MustColor 解析已通过校验的颜色；解析失败时返回不透明黑色
func MustColor(hex string) color.NRGBA {
	c, err := ParseHexColor(hex)
	if err != nil {
		return color.NRGBA{A: 0xff}
	}
	return c
}
