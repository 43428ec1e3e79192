// Package render draws simulation snapshots onto a tcell screen.
package render

import (
	"fmt"
	"math"
	"strconv"

	"ArcadePong/core"

	"github.com/gdamore/tcell"
)

const BallSymbol = 0x25CF   // 球符號
const PaddleSymbol = 0x2588 // 球拍符號
const NetSymbol = 0x2590    // 中線

// Renderer maps court coordinates onto the terminal cell grid of its screen.
type Renderer struct {
	screen tcell.Screen
	style  tcell.Style
}

func NewRenderer(screen tcell.Screen) *Renderer {
	style := tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite)
	screen.SetStyle(style)
	return &Renderer{screen: screen, style: style}
}

// Draw renders one frame. It never writes back into the simulation.
func (r *Renderer) Draw(s core.Snapshot, cfg core.Config) {
	r.screen.Clear()
	width, height := r.screen.Size()
	if width == 0 || height == 0 {
		return
	}
	scale := courtScale{cols: width, rows: height, cfg: cfg}

	//中線
	for row := 0; row < height; row += 2 {
		r.screen.SetContent(width/2, row, NetSymbol, nil, r.style)
	}

	if s.Phase.Kind != core.Idle {
		//兩個球拍
		r.fill(scale.cells(s.LeftPaddle.Rectangle), PaddleSymbol)
		r.fill(scale.cells(s.RightPaddle.Rectangle), PaddleSymbol)
		//球
		if s.Phase.Kind != core.Finished {
			r.fill(scale.cells(s.Ball.Rectangle), BallSymbol)
		}
	}

	//分數更新
	r.drawText(width/4, 1, strconv.Itoa(s.Score.Left))
	r.drawText(width/4*3, 1, strconv.Itoa(s.Score.Right))

	switch s.Phase.Kind {
	case core.Idle:
		r.drawText(width/2, height/2-2, "PONG")
		r.drawText(width/2, height/2, "LEFT: A (Up) / Z (Down)   RIGHT: L (Up) / M (Down)")
		r.drawText(width/2, height/2+1, fmt.Sprintf("ENTER to start | SPACE to pause | First to %d wins", cfg.WinningScore))
	case core.Paused:
		r.drawText(width/2, height/2, "PAUSED")
	case core.Finished:
		r.drawText(width/2, height/2-1, fmt.Sprintf("%s WINS!", s.Phase.Winner))
		r.drawText(width/2, height/2, fmt.Sprintf("%d - %d", s.Score.Left, s.Score.Right))
		r.drawText(width/2, height/2+2, "ENTER to play again")
	}

	r.screen.Show()
}

type cellRect struct {
	col, row, width, height int
}

type courtScale struct {
	cols, rows int
	cfg        core.Config
}

// cells converts a court rectangle to terminal cells, at least one cell in each direction.
func (c courtScale) cells(rect core.Rectangle) cellRect {
	sx := float64(c.cols) / c.cfg.CourtWidth
	sy := float64(c.rows) / c.cfg.CourtHeight

	col := int(math.Floor(rect.X * sx))
	row := int(math.Floor(rect.Y * sy))
	return cellRect{
		col:    col,
		row:    row,
		width:  maxInt(1, int(math.Round(rect.Width*sx))),
		height: maxInt(1, int(math.Round(rect.Height*sy))),
	}
}

func (r *Renderer) fill(c cellRect, ch rune) {
	for dr := 0; dr < c.height; dr++ {
		for dc := 0; dc < c.width; dc++ {
			r.screen.SetContent(c.col+dc, c.row+dr, ch, nil, r.style)
		}
	}
}

// drawText centers text on column x.
func (r *Renderer) drawText(x, y int, text string) {
	runes := []rune(text)
	start := x - len(runes)/2
	for i, ch := range runes {
		r.screen.SetContent(start+i, y, ch, nil, r.style)
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
