// Package dash assembles whole dashboards: a YAML file declares a list
// of charts, each bound to a CSV data file and an SVG output file.
package dash

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/midbel/taskviz"
	"gopkg.in/yaml.v3"
)

var (
	DefaultWidth  = 800.0
	DefaultHeight = 600.0
	DefaultPad    = 40.0
)

const (
	TypeLine   = "line"
	TypeArea   = "area"
	TypeBar    = "bar"
	TypeDonut  = "donut"
	TypeMatrix = "matrix"
)

type Sides struct {
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
}

func (s Sides) padding() taskviz.Padding {
	return taskviz.Padding{
		Top:    s.Top,
		Right:  s.Right,
		Bottom: s.Bottom,
		Left:   s.Left,
	}
}

type Serie struct {
	Key   string `yaml:"key"`
	Label string `yaml:"label"`
	Color string `yaml:"color"`
}

type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type Chart struct {
	Title       string  `yaml:"title"`
	Type        string  `yaml:"type"`
	Data        string  `yaml:"data"`
	Output      string  `yaml:"output"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Padding     *Sides  `yaml:"padding"`
	Periodicity string  `yaml:"periodicity"`
	Max         float64 `yaml:"max"`
	Thickness   float64 `yaml:"thickness"`
	BarWidth    float64 `yaml:"barWidth"`
	Range       *Range  `yaml:"range"`
	Series      []Serie `yaml:"series"`
}

type Config struct {
	Title       string  `yaml:"title"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Padding     Sides   `yaml:"padding"`
	Periodicity string  `yaml:"periodicity"`
	Charts      []Chart `yaml:"charts"`

	// data and output paths resolve against the config directory
	dir string
}

func Load(path string) (*Config, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	cfg := Config{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Padding: Sides{Top: DefaultPad, Right: DefaultPad, Bottom: DefaultPad, Left: DefaultPad},
	}
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.dir = filepath.Dir(path)
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if len(c.Charts) == 0 {
		return fmt.Errorf("no charts declared")
	}
	for i, ch := range c.Charts {
		switch ch.Type {
		case TypeLine, TypeArea, TypeBar, TypeDonut, TypeMatrix:
		default:
			return fmt.Errorf("chart %d: %s: unknown chart type", i, ch.Type)
		}
		if ch.Data == "" {
			return fmt.Errorf("chart %d: missing data file", i)
		}
		if ch.Output == "" {
			return fmt.Errorf("chart %d: missing output file", i)
		}
		if _, err := taskviz.ParsePeriodicity(c.periodicity(ch)); err != nil {
			return fmt.Errorf("chart %d: %w", i, err)
		}
	}
	return nil
}

// chartAt merges page level defaults into one chart block.
func (c *Config) chartAt(i int) Chart {
	ch := c.Charts[i]
	if ch.Width <= 0 {
		ch.Width = c.Width
	}
	if ch.Height <= 0 {
		ch.Height = c.Height
	}
	if ch.Padding == nil {
		pad := c.Padding
		ch.Padding = &pad
	}
	if ch.Periodicity == "" {
		ch.Periodicity = c.Periodicity
	}
	ch.Data = c.resolve(ch.Data)
	ch.Output = c.resolve(ch.Output)
	return ch
}

func (c *Config) periodicity(ch Chart) string {
	if ch.Periodicity != "" {
		return ch.Periodicity
	}
	return c.Periodicity
}

func (c *Config) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.dir, path)
}
