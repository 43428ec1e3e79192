package core

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const CourtWidth = 800          // 球場寬度
const CourtHeight = 600         // 球場高度
const PaddleWidth = 15          // 球拍寬度
const PaddleHeight = 100        // 球拍高度
const PaddleSpeed = 8           // 球拍每幀移動量
const PaddleInset = 30          // 球拍離邊線距離
const BallSize = 15             // 球大小
const InitialBallSpeed = 5      // 發球速度
const WinningScore = 11         // 遊戲結束分數
const DeflectionGain = 10       // 擊球角度增益
const AccelerationFactor = 1.05 // 每次擊球加速

// Config holds the court and entity constants. They are fixed once a Simulation is created.
type Config struct {
	CourtWidth         float64
	CourtHeight        float64
	PaddleWidth        float64
	PaddleHeight       float64
	PaddleSpeed        float64
	PaddleInset        float64
	BallSize           float64
	InitialBallSpeed   float64
	WinningScore       int
	DeflectionGain     float64
	AccelerationFactor float64
}

func DefaultConfig() Config {
	return Config{
		CourtWidth:         CourtWidth,
		CourtHeight:        CourtHeight,
		PaddleWidth:        PaddleWidth,
		PaddleHeight:       PaddleHeight,
		PaddleSpeed:        PaddleSpeed,
		PaddleInset:        PaddleInset,
		BallSize:           BallSize,
		InitialBallSpeed:   InitialBallSpeed,
		WinningScore:       WinningScore,
		DeflectionGain:     DeflectionGain,
		AccelerationFactor: AccelerationFactor,
	}
}

// Validate reports the first constant that cannot produce a playable court.
func (c Config) Validate() error {
	positives := []struct {
		name  string
		value float64
	}{
		{"COURT_WIDTH", c.CourtWidth},
		{"COURT_HEIGHT", c.CourtHeight},
		{"PADDLE_WIDTH", c.PaddleWidth},
		{"PADDLE_HEIGHT", c.PaddleHeight},
		{"PADDLE_SPEED", c.PaddleSpeed},
		{"BALL_SIZE", c.BallSize},
		{"INITIAL_BALL_SPEED", c.InitialBallSpeed},
		{"DEFLECTION_GAIN", c.DeflectionGain},
	}
	for _, p := range positives {
		if p.value <= 0 {
			return fmt.Errorf("%s must be positive, got %v", p.name, p.value)
		}
	}

	if c.PaddleInset < 0 {
		return fmt.Errorf("PADDLE_INSET must not be negative, got %v", c.PaddleInset)
	}
	if c.WinningScore < 1 {
		return fmt.Errorf("WINNING_SCORE must be at least 1, got %d", c.WinningScore)
	}
	if c.AccelerationFactor <= 1 {
		return fmt.Errorf("ACCELERATION_FACTOR must be greater than 1, got %v", c.AccelerationFactor)
	}
	if c.PaddleHeight > c.CourtHeight {
		return errors.New("paddle does not fit the court height")
	}
	if 2*(c.PaddleInset+c.PaddleWidth) >= c.CourtWidth {
		return errors.New("paddles overlap across the court width")
	}
	return nil
}

// ReadProperties loads <dir>/properties/<env>.properties on top of DefaultConfig.
// Keys missing from the file keep their default value.
func ReadProperties(dir, env string) (Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("properties")
	v.AddConfigPath(filepath.Join(dir, "properties"))

	def := DefaultConfig()
	v.SetDefault("COURT_WIDTH", def.CourtWidth)
	v.SetDefault("COURT_HEIGHT", def.CourtHeight)
	v.SetDefault("PADDLE_WIDTH", def.PaddleWidth)
	v.SetDefault("PADDLE_HEIGHT", def.PaddleHeight)
	v.SetDefault("PADDLE_SPEED", def.PaddleSpeed)
	v.SetDefault("PADDLE_INSET", def.PaddleInset)
	v.SetDefault("BALL_SIZE", def.BallSize)
	v.SetDefault("INITIAL_BALL_SPEED", def.InitialBallSpeed)
	v.SetDefault("WINNING_SCORE", def.WinningScore)
	v.SetDefault("DEFLECTION_GAIN", def.DeflectionGain)
	v.SetDefault("ACCELERATION_FACTOR", def.AccelerationFactor)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("read properties %q: %w", env, err)
	}

	var cfg Config
	var err error
	floats := []struct {
		key string
		dst *float64
	}{
		{"COURT_WIDTH", &cfg.CourtWidth},
		{"COURT_HEIGHT", &cfg.CourtHeight},
		{"PADDLE_WIDTH", &cfg.PaddleWidth},
		{"PADDLE_HEIGHT", &cfg.PaddleHeight},
		{"PADDLE_SPEED", &cfg.PaddleSpeed},
		{"PADDLE_INSET", &cfg.PaddleInset},
		{"BALL_SIZE", &cfg.BallSize},
		{"INITIAL_BALL_SPEED", &cfg.InitialBallSpeed},
		{"DEFLECTION_GAIN", &cfg.DeflectionGain},
		{"ACCELERATION_FACTOR", &cfg.AccelerationFactor},
	}
	for _, f := range floats {
		if *f.dst, err = cast.ToFloat64E(v.Get(f.key)); err != nil {
			return Config{}, fmt.Errorf("property %s: %w", f.key, err)
		}
	}
	if cfg.WinningScore, err = cast.ToIntE(v.Get("WINNING_SCORE")); err != nil {
		return Config{}, fmt.Errorf("property WINNING_SCORE: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("properties %q: %w", env, err)
	}
	return cfg, nil
}
