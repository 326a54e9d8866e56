// File: internal/config/humanoid_config.go
// This file defines the HumanoidConfig struct, which contains all the tunable
// parameters for the pointer simulation: trajectory shaping, the micro-delays
// between movement points, and the timing windows of every composed behavior.
//
// The defaults mirror humanoid.DefaultConfig so a missing section in the config
// file yields the standard profile.
package config

import (
	"github.com/spf13/viper"

	"github.com/xkilldash9x/humanmouse/internal/humanoid"
)

// HumanoidConfig is the file and environment representation of humanoid.Config.
// Ranges are in seconds; click hold bounds are in milliseconds.
type HumanoidConfig struct {
	// Seed for the random source. Zero means seeded from the clock.
	Seed     int64   `mapstructure:"seed" yaml:"seed"`
	InitialX float64 `mapstructure:"initial_x" yaml:"initial_x"`
	InitialY float64 `mapstructure:"initial_y" yaml:"initial_y"`

	// -- Trajectory --
	DefaultSteps       int     `mapstructure:"default_steps" yaml:"default_steps"`
	BezierJitter       float64 `mapstructure:"bezier_jitter" yaml:"bezier_jitter"`
	SplineAnchorOffset float64 `mapstructure:"spline_anchor_offset" yaml:"spline_anchor_offset"`

	// -- Motion Execution --
	StepDelay humanoid.DurationRange `mapstructure:"step_delay" yaml:"step_delay"`

	// -- Hover and Click --
	HoverPause     humanoid.DurationRange `mapstructure:"hover_pause" yaml:"hover_pause"`
	PreClickPause  humanoid.DurationRange `mapstructure:"pre_click_pause" yaml:"pre_click_pause"`
	PostClickPause humanoid.DurationRange `mapstructure:"post_click_pause" yaml:"post_click_pause"`
	ClickHoldMinMs int                    `mapstructure:"click_hold_min_ms" yaml:"click_hold_min_ms"`
	ClickHoldMaxMs int                    `mapstructure:"click_hold_max_ms" yaml:"click_hold_max_ms"`

	// -- Scrolling --
	DefaultScrollSteps int                    `mapstructure:"default_scroll_steps" yaml:"default_scroll_steps"`
	ScrollStepPause    humanoid.DurationRange `mapstructure:"scroll_step_pause" yaml:"scroll_step_pause"`

	// -- Idle, Wander, Drift --
	IdleRange       humanoid.DurationRange `mapstructure:"idle_range" yaml:"idle_range"`
	WanderMinRadius float64                `mapstructure:"wander_min_radius" yaml:"wander_min_radius"`
	WanderMinSteps  int                    `mapstructure:"wander_min_steps" yaml:"wander_min_steps"`
	WanderMaxSteps  int                    `mapstructure:"wander_max_steps" yaml:"wander_max_steps"`
	WanderPause     humanoid.DurationRange `mapstructure:"wander_pause" yaml:"wander_pause"`
	DriftRange      humanoid.DurationRange `mapstructure:"drift_range" yaml:"drift_range"`
	DriftOffset     float64                `mapstructure:"drift_offset" yaml:"drift_offset"`
	DriftMinSteps   int                    `mapstructure:"drift_min_steps" yaml:"drift_min_steps"`
	DriftMaxSteps   int                    `mapstructure:"drift_max_steps" yaml:"drift_max_steps"`
	DriftPause      humanoid.DurationRange `mapstructure:"drift_pause" yaml:"drift_pause"`
	DriftOverhead   float64                `mapstructure:"drift_overhead" yaml:"drift_overhead"`
}

// ToHumanoid converts the loaded settings into the simulator's configuration.
func (h HumanoidConfig) ToHumanoid() humanoid.Config {
	return humanoid.Config{
		Seed:               h.Seed,
		InitialPosition:    humanoid.Vector2D{X: h.InitialX, Y: h.InitialY},
		DefaultSteps:       h.DefaultSteps,
		BezierJitter:       h.BezierJitter,
		SplineAnchorOffset: h.SplineAnchorOffset,
		StepDelay:          h.StepDelay,
		HoverPause:         h.HoverPause,
		PreClickPause:      h.PreClickPause,
		PostClickPause:     h.PostClickPause,
		ClickHoldMinMs:     h.ClickHoldMinMs,
		ClickHoldMaxMs:     h.ClickHoldMaxMs,
		DefaultScrollSteps: h.DefaultScrollSteps,
		ScrollStepPause:    h.ScrollStepPause,
		IdleRange:          h.IdleRange,
		WanderMinRadius:    h.WanderMinRadius,
		WanderMinSteps:     h.WanderMinSteps,
		WanderMaxSteps:     h.WanderMaxSteps,
		WanderPause:        h.WanderPause,
		DriftRange:         h.DriftRange,
		DriftOffset:        h.DriftOffset,
		DriftMinSteps:      h.DriftMinSteps,
		DriftMaxSteps:      h.DriftMaxSteps,
		DriftPause:         h.DriftPause,
		DriftOverhead:      h.DriftOverhead,
	}
}

// setHumanoidDefaults registers every humanoid default with viper.
func setHumanoidDefaults(v *viper.Viper) {
	d := humanoid.DefaultConfig()

	v.SetDefault("humanoid.seed", int64(0))
	v.SetDefault("humanoid.initial_x", d.InitialPosition.X)
	v.SetDefault("humanoid.initial_y", d.InitialPosition.Y)

	v.SetDefault("humanoid.default_steps", d.DefaultSteps)
	v.SetDefault("humanoid.bezier_jitter", d.BezierJitter)
	v.SetDefault("humanoid.spline_anchor_offset", d.SplineAnchorOffset)

	setRangeDefault(v, "humanoid.step_delay", d.StepDelay)

	setRangeDefault(v, "humanoid.hover_pause", d.HoverPause)
	setRangeDefault(v, "humanoid.pre_click_pause", d.PreClickPause)
	setRangeDefault(v, "humanoid.post_click_pause", d.PostClickPause)
	v.SetDefault("humanoid.click_hold_min_ms", d.ClickHoldMinMs)
	v.SetDefault("humanoid.click_hold_max_ms", d.ClickHoldMaxMs)

	v.SetDefault("humanoid.default_scroll_steps", d.DefaultScrollSteps)
	setRangeDefault(v, "humanoid.scroll_step_pause", d.ScrollStepPause)

	setRangeDefault(v, "humanoid.idle_range", d.IdleRange)

	v.SetDefault("humanoid.wander_min_radius", d.WanderMinRadius)
	v.SetDefault("humanoid.wander_min_steps", d.WanderMinSteps)
	v.SetDefault("humanoid.wander_max_steps", d.WanderMaxSteps)
	setRangeDefault(v, "humanoid.wander_pause", d.WanderPause)

	setRangeDefault(v, "humanoid.drift_range", d.DriftRange)
	v.SetDefault("humanoid.drift_offset", d.DriftOffset)
	v.SetDefault("humanoid.drift_min_steps", d.DriftMinSteps)
	v.SetDefault("humanoid.drift_max_steps", d.DriftMaxSteps)
	setRangeDefault(v, "humanoid.drift_pause", d.DriftPause)
	v.SetDefault("humanoid.drift_overhead", d.DriftOverhead)
}

func setRangeDefault(v *viper.Viper, key string, r humanoid.DurationRange) {
	v.SetDefault(key+".min", r.Min)
	v.SetDefault(key+".max", r.Max)
}
