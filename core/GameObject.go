package core

// Rectangle is an axis-aligned box in court coordinates, origin top-left.
type Rectangle struct {
	X, Y          float64
	Width, Height float64
}

func (r Rectangle) Right() float64 {
	return r.X + r.Width
}

func (r Rectangle) Bottom() float64 {
	return r.Y + r.Height
}

func (r Rectangle) CenterY() float64 {
	return r.Y + r.Height/2
}

// Overlaps reports whether a and b intersect. Touching edges do not count.
func Overlaps(a, b Rectangle) bool {
	return a.X < b.Right() &&
		a.Right() > b.X &&
		a.Y < b.Bottom() &&
		a.Bottom() > b.Y
}

// Side identifies a player by the court edge it defends.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "Left Player"
	case Right:
		return "Right Player"
	}
	panic("core: invalid side")
}

func (s Side) Opponent() Side {
	if s == Left {
		return Right
	}
	return Left
}

type Paddle struct {
	Rectangle
	Side Side
}

// Ball may leave the court horizontally; that is how a point is detected.
type Ball struct {
	Rectangle
	VX, VY float64
}

// RandomSource supplies uniform values in [0, 1). *math/rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// ClampPaddle keeps the paddle fully inside the court vertically.
func ClampPaddle(p Paddle, courtHeight float64) Paddle {
	if p.Y < 0 {
		p.Y = 0
	}
	if limit := courtHeight - p.Height; p.Y > limit {
		p.Y = limit
	}
	return p
}

func InitialPaddle(side Side, cfg Config) Paddle {
	x := cfg.PaddleInset
	if side == Right {
		x = cfg.CourtWidth - cfg.PaddleInset - cfg.PaddleWidth
	}
	return Paddle{
		Rectangle: Rectangle{
			X:      x,
			Y:      cfg.CourtHeight/2 - cfg.PaddleHeight/2,
			Width:  cfg.PaddleWidth,
			Height: cfg.PaddleHeight,
		},
		Side: side,
	}
}

// SpawnBall serves a new ball from the court center toward serve, with a random vertical
// component in [-speed/2, speed/2).
func SpawnBall(cfg Config, serve Side, rng RandomSource) Ball {
	vx := cfg.InitialBallSpeed
	if serve == Left {
		vx = -vx
	}
	return Ball{
		Rectangle: Rectangle{
			X:      cfg.CourtWidth / 2,
			Y:      cfg.CourtHeight / 2,
			Width:  cfg.BallSize,
			Height: cfg.BallSize,
		},
		VX: vx,
		VY: (rng.Float64() - 0.5) * cfg.InitialBallSpeed,
	}
}
