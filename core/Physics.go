package core

import "math"

// ScoreEvent reports the side that won a point during a tick, if any.
type ScoreEvent struct {
	Scored bool
	Side   Side
}

// Advance runs one physics tick: paddles, ball integration, wall rebound,
// paddle collisions (left then right) and boundary scoring.
// The ball is never clamped, so fast balls may tunnel through a paddle.
func Advance(left, right *Paddle, ball *Ball, d Directives, cfg Config) ScoreEvent {
	//兩個球拍
	movePaddle(left, d, cfg)
	movePaddle(right, d, cfg)

	//球
	ball.X += ball.VX
	ball.Y += ball.VY

	//檢查有沒有撞到上下牆壁
	if isCollidesWithWall(ball, cfg) {
		ball.VY = -ball.VY
	}

	//檢查是否有碰到球拍
	for _, p := range []*Paddle{left, right} {
		if Overlaps(ball.Rectangle, p.Rectangle) {
			deflect(ball, p, cfg)
		}
	}

	if isBallOutSide(ball, cfg) {
		return calculateScore(ball)
	}
	return ScoreEvent{}
}

func movePaddle(p *Paddle, d Directives, cfg Config) {
	if d.Has(up(p.Side)) && isTouchTopBorder(p) {
		p.Y -= cfg.PaddleSpeed
	}
	if d.Has(down(p.Side)) && isTouchBottomBorder(p, cfg) {
		p.Y += cfg.PaddleSpeed
	}
	*p = ClampPaddle(*p, cfg.CourtHeight)
}

// deflect sends the ball back toward the opponent. The further from the paddle's center
// it hits, the steeper the rebound.
func deflect(ball *Ball, p *Paddle, cfg Config) {
	hitPos := (ball.CenterY() - p.Y) / p.Height
	ball.VY = (hitPos - 0.5) * cfg.DeflectionGain

	speed := math.Abs(ball.VX) * cfg.AccelerationFactor
	if p.Side == Left {
		ball.VX = speed
		ball.X = p.Right()
	} else {
		ball.VX = -speed
		ball.X = p.X - ball.Width
	}
}

func isTouchTopBorder(p *Paddle) bool {
	return p.Y > 0
}

func isTouchBottomBorder(p *Paddle, cfg Config) bool {
	return p.Bottom() < cfg.CourtHeight
}

func isCollidesWithWall(ball *Ball, cfg Config) bool {
	return ball.Y <= 0 || ball.Bottom() >= cfg.CourtHeight
}

func isBallOutSide(ball *Ball, cfg Config) bool {
	return ball.X < 0 || ball.X > cfg.CourtWidth
}

func calculateScore(ball *Ball) ScoreEvent {
	if ball.X < 0 {
		return ScoreEvent{Scored: true, Side: Right}
	}
	return ScoreEvent{Scored: true, Side: Left}
}
