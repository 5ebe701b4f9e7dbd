package domain

// Config represents the project defaults loaded from slidey.yaml.
type Config struct {
	Defaults DefaultsConfig
	Chart    ChartConfig
	Images   ImagesConfig
	Output   OutputConfig
}

type DefaultsConfig struct {
	Units  Units
	Layout int
}

// ChartConfig holds the default chart frame, in deck units, and render options.
type ChartConfig struct {
	X, Y, CX, CY float64
	Legend       LegendPosition
	DPI          float64
}

type ImagesConfig struct {
	DPI float64
}

type OutputConfig struct {
	Dir string
}

// DefaultConfig provides sane defaults if slidey.yaml is missing or partial.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Units:  UnitsInches,
			Layout: 1,
		},
		Chart: ChartConfig{
			X:      1,
			Y:      2,
			CX:     8,
			CY:     5,
			Legend: LegendRight,
			DPI:    144,
		},
		Images: ImagesConfig{DPI: 72},
	}
}
