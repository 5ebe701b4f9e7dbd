package projectconfig

import (
	"fmt"
	"os"
	"strings"

	"github.com/aalvaropc/slidey/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads a slidey.yaml file and applies it on top of the defaults.
func LoadConfig(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "projectconfig.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "projectconfig.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	sy := y.Slidey

	if sy.Defaults.Units != "" {
		u, err := domain.ParseUnits(sy.Defaults.Units)
		if err != nil {
			return cfg, invalidField(path, "slidey.defaults.units", err.Error())
		}
		cfg.Defaults.Units = u
	}
	if sy.Defaults.Layout != nil {
		if *sy.Defaults.Layout < 0 {
			return cfg, invalidField(path, "slidey.defaults.layout", "must not be negative")
		}
		cfg.Defaults.Layout = *sy.Defaults.Layout
	}

	setFloat(&cfg.Chart.X, sy.Chart.X)
	setFloat(&cfg.Chart.Y, sy.Chart.Y)
	if err := setPositive(&cfg.Chart.CX, sy.Chart.CX); err != nil {
		return cfg, invalidField(path, "slidey.chart.cx", err.Error())
	}
	if err := setPositive(&cfg.Chart.CY, sy.Chart.CY); err != nil {
		return cfg, invalidField(path, "slidey.chart.cy", err.Error())
	}
	if err := setPositive(&cfg.Chart.DPI, sy.Chart.DPI); err != nil {
		return cfg, invalidField(path, "slidey.chart.dpi", err.Error())
	}
	if sy.Chart.Legend != "" {
		switch domain.LegendPosition(strings.ToLower(strings.TrimSpace(sy.Chart.Legend))) {
		case domain.LegendRight:
			cfg.Chart.Legend = domain.LegendRight
		case domain.LegendNone:
			cfg.Chart.Legend = domain.LegendNone
		default:
			return cfg, invalidField(path, "slidey.chart.legend", fmt.Sprintf("unsupported legend %q (expected right|none)", sy.Chart.Legend))
		}
	}

	if err := setPositive(&cfg.Images.DPI, sy.Images.DPI); err != nil {
		return cfg, invalidField(path, "slidey.images.dpi", err.Error())
	}

	if sy.Output.Dir != "" {
		cfg.Output.Dir = sy.Output.Dir
	}

	return cfg, nil
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setPositive(dst *float64, v *float64) error {
	if v == nil {
		return nil
	}
	if *v <= 0 {
		return fmt.Errorf("must be positive, got %v", *v)
	}
	*dst = *v
	return nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "projectconfig.validate",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s", field, msg),
	}
}

type yamlConfig struct {
	Slidey struct {
		Defaults struct {
			Units  string `yaml:"units"`
			Layout *int   `yaml:"layout"`
		} `yaml:"defaults"`

		Chart struct {
			X      *float64 `yaml:"x"`
			Y      *float64 `yaml:"y"`
			CX     *float64 `yaml:"cx"`
			CY     *float64 `yaml:"cy"`
			Legend string   `yaml:"legend"`
			DPI    *float64 `yaml:"dpi"`
		} `yaml:"chart"`

		Images struct {
			DPI *float64 `yaml:"dpi"`
		} `yaml:"images"`

		Output struct {
			Dir string `yaml:"dir"`
		} `yaml:"output"`
	} `yaml:"slidey"`
}
