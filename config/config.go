package config

import "image/color"

// Config holds general viewer configuration
type Config struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	TPS    int    `toml:"tps"` // logic ticks per second, the input frame rate
	Title  string `toml:"title"`
}

// DebugConfig contains debug command-line options
type DebugConfig struct {
	ShowHUD   bool `toml:"show_hud"`   // Draw the live button/axis panel
	LogEvents bool `toml:"log_events"` // Print every consumed event to the log
}

// UIConfig contains viewer layout and colors
type UIConfig struct {
	BackgroundColor color.RGBA
	HeaderColor     color.RGBA
	TextColor       color.RGBA
	ActiveColor     color.RGBA // Pressed buttons and live events
	DimColor        color.RGBA // Released buttons and disconnected pads
	AxisBarColor    color.RGBA
	AxisBarBgColor  color.RGBA

	Margin        float64
	LineHeight    float64
	ColumnWidth   float64
	AxisBarWidth  float64
	AxisBarHeight float64

	// Font sizes
	HUDFontSize   float64
	SmallFontSize float64
}

// Global configuration instances
var C *Config
var Debug DebugConfig
var UI UIConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Gray         = color.RGBA{R: 110, G: 110, B: 120, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Background   = color.RGBA{R: 24, G: 24, B: 32, A: 255}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		TPS:    60,
		Title:  "Doomerang Input Viewer",
	}

	Debug = DebugConfig{
		ShowHUD: true,
	}

	UI = UIConfig{
		BackgroundColor: Background,
		HeaderColor:     Yellow,
		TextColor:       White,
		ActiveColor:     BrightGreen,
		DimColor:        Gray,
		AxisBarColor:    LightBlue,
		AxisBarBgColor:  DarkBlue,

		Margin:        12,
		LineHeight:    16,
		ColumnWidth:   330,
		AxisBarWidth:  120,
		AxisBarHeight: 8,

		HUDFontSize:   12,
		SmallFontSize: 10,
	}
}
