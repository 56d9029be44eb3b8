// Package tui is an interactive terminal editor for the curve. It shows the
// editable fields on the left and an ASCII projection of the curve, its
// control points and weight lines on the right.
//
// Keys:
//
//	Up/Down       select field
//	Left/Right    adjust selected field (Shift: 10 steps)
//	+/-           adjust selected field
//	w/s/a/d       move camera forward, back, left, right
//	f             fit camera to the curve
//	r             reset all fields
//	q, Esc, ^C    quit
package tui

import (
	"context"
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/bezier3d"
	"github.com/gogpu/bezier3d/camera"
	"github.com/gogpu/bezier3d/internal/editor"
	"github.com/gogpu/bezier3d/render"
)

const (
	panelWidth  = 30
	moveStep    = 0.25
	coarseSteps = 10

	// Terminal cells are roughly twice as tall as they are wide.
	cellAspect = 2
)

var (
	styleText     = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim      = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleSection  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	styleCurve    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, 255, 0))
	stylePoint    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 0, 0))
	styleWeight   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(160, 0, 0))
)

// App runs the editor on a tcell screen.
type App struct {
	screen  tcell.Screen
	ed      *editor.Editor
	cam     *camera.Camera
	printer *message.Printer
	status  string
	top     int
}

// New returns an editor app drawing to screen. Run initializes the screen;
// callers using Draw and HandleEvent directly must initialize it themselves.
func New(screen tcell.Screen, ed *editor.Editor, cam *camera.Camera) *App {
	return &App{
		screen:  screen,
		ed:      ed,
		cam:     cam,
		printer: message.NewPrinter(language.English),
	}
}

// Editor returns the edited state.
func (a *App) Editor() *editor.Editor {
	return a.ed
}

// Camera returns the view camera.
func (a *App) Camera() *camera.Camera {
	return a.cam
}

// Run initializes the screen and processes events until the user quits or
// ctx is done. It returns ctx.Err() in the latter case.
func (a *App) Run(ctx context.Context) error {
	if err := a.screen.Init(); err != nil {
		return fmt.Errorf("tui: screen init failed: %w", err)
	}
	defer a.screen.Fini()

	stop := context.AfterFunc(ctx, func() {
		_ = a.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	for {
		a.Draw()
		a.screen.Show()
		if err := ctx.Err(); err != nil {
			return err
		}
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if a.HandleEvent(ev) {
			return nil
		}
	}
}

// HandleEvent applies one input event and reports whether the app should
// quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return false
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	steps := 1.0
	if ev.Modifiers()&tcell.ModShift != 0 {
		steps = coarseSteps
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		a.ed.Select(a.ed.Selected() - 1)
	case tcell.KeyDown:
		a.ed.Select(a.ed.Selected() + 1)
	case tcell.KeyLeft:
		a.adjust(-steps)
	case tcell.KeyRight:
		a.adjust(steps)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case '+', '=':
			a.adjust(1)
		case '-', '_':
			a.adjust(-1)
		case 'r', 'R':
			a.ed.Reset()
			a.status = "reset"
		case 'f', 'F':
			a.fit()
		case 'w':
			a.move(1, 0)
		case 's':
			a.move(-1, 0)
		case 'a':
			a.move(0, -1)
		case 'd':
			a.move(0, 1)
		}
	}
	return false
}

func (a *App) adjust(steps float64) {
	if err := a.ed.Adjust(a.ed.Selected(), steps); err != nil {
		a.status = err.Error()
		return
	}
	a.status = ""
}

func (a *App) move(forward, right float64) {
	if err := a.cam.MoveLocal(forward, right, 0, moveStep); err != nil {
		a.status = err.Error()
	}
}

func (a *App) fit() {
	frame, err := a.ed.Frame()
	if err != nil {
		a.status = err.Error()
		return
	}
	if w, h := a.viewSize(); w > 0 && h > 0 {
		a.cam.SetViewport(w, h*cellAspect)
	}
	a.cam.Fit(frame.Bounds())
	a.status = "camera fitted"
}

// Draw renders the current state to the screen's back buffer. It does not
// call Show.
func (a *App) Draw() {
	s := a.screen
	s.Clear()
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return
	}

	frame, err := a.ed.Frame()
	if err != nil {
		a.status = err.Error()
	}

	a.drawPanel(min(panelWidth, w), h-1)
	if vw, vh := a.viewSize(); vw > 1 && vh > 0 && err == nil {
		a.drawView(frame, panelWidth+1, 0, vw, vh)
	}

	status := a.status
	if status == "" {
		status = "↑↓ select  ←→ adjust  wasd move  f fit  r reset  q quit"
	}
	status = a.printer.Sprintf("det %.2f  ", a.ed.Parameters().Determinant()) + status
	drawText(s, 0, h-1, w, styleDim, status)
}

func (a *App) drawPanel(w, h int) {
	fields := a.ed.Fields()
	sel := a.ed.Selected()

	// Keep the selection visible; each section header takes a row too.
	rows := a.panelRows()
	selRow := 0
	for i, r := range rows {
		if r.field == sel {
			selRow = i
		}
	}
	if selRow < a.top {
		a.top = selRow
	}
	if selRow >= a.top+h {
		a.top = selRow - h + 1
	}

	for y := 0; y < h && a.top+y < len(rows); y++ {
		r := rows[a.top+y]
		if r.field < 0 {
			drawText(a.screen, 0, y, w, styleSection, r.title)
			continue
		}
		f := fields[r.field]
		style := styleText
		if r.field == sel {
			style = styleSelected
		}
		value := a.format(f, a.ed.Value(r.field))
		line := fmt.Sprintf(" %-*s%*s ", w-12, f.Label, 10, value)
		drawText(a.screen, 0, y, w, style, line)
	}
}

// viewSize returns the size in cells of the projection area.
func (a *App) viewSize() (int, int) {
	w, h := a.screen.Size()
	return w - panelWidth - 1, h - 1
}

type panelRow struct {
	title string
	field int // -1 for section headers
}

func (a *App) panelRows() []panelRow {
	var rows []panelRow
	last := editor.Kind(-1)
	for i, f := range a.ed.Fields() {
		if f.Kind != last {
			rows = append(rows, panelRow{title: f.Kind.String(), field: -1})
			last = f.Kind
		}
		rows = append(rows, panelRow{field: i})
	}
	return rows
}

func (a *App) format(f editor.Field, v float64) string {
	switch f.Kind {
	case editor.KindReflection:
		return bezier3d.Axis(v).String()
	case editor.KindRotation:
		return a.printer.Sprintf("%.0f°", v)
	default:
		return a.printer.Sprintf("%.2f", v)
	}
}

// drawView plots the frame into the w x h cell rectangle at (x0, y0).
func (a *App) drawView(frame render.Frame, x0, y0, w, h int) {
	// Project into a virtual viewport with square "pixels".
	vw, vh := w, h*cellAspect
	cam := *a.cam
	cam.SetViewport(vw, vh)
	pr := cam.Projector(vw, vh)

	cell := func(p bezier3d.Point3) (int, int, bool) {
		x, y, _, ok := pr.Project(p)
		if !ok {
			return 0, 0, false
		}
		cx, cy := int(math.Floor(x)), int(math.Floor(y/cellAspect))
		return cx, cy, cx >= 0 && cx < w && cy >= 0 && cy < h
	}
	put := func(cx, cy int, r rune, style tcell.Style) {
		if cx >= 0 && cx < w && cy >= 0 && cy < h {
			a.screen.SetContent(x0+cx, y0+cy, r, nil, style)
		}
	}
	line := func(p, q bezier3d.Point3, r rune, style tcell.Style) {
		px, py, pok := cell(p)
		qx, qy, qok := cell(q)
		if !pok || !qok {
			return
		}
		for _, c := range bresenham(px, py, qx, qy) {
			put(c[0], c[1], r, style)
		}
	}

	ctl := frame.Control
	line(ctl[0], ctl[1], '.', styleWeight)
	line(ctl[2], ctl[3], '.', styleWeight)
	for i := 1; i < len(frame.Samples); i++ {
		line(frame.Samples[i-1], frame.Samples[i], '*', styleCurve)
	}
	for i, p := range ctl {
		cx, cy, ok := cell(p)
		if !ok {
			continue
		}
		put(cx, cy, 'O', stylePoint)
		label := fmt.Sprintf("P%d", i)
		for j, r := range label {
			put(cx+1+j, cy, r, stylePoint)
		}
	}
}

// bresenham returns the cells on the line from (x0, y0) to (x1, y1).
func bresenham(x0, y0, x1, y1 int) [][2]int {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	var out [][2]int
	for {
		out = append(out, [2]int{x0, y0})
		if x0 == x1 && y0 == y1 {
			return out
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func drawText(s tcell.Screen, x, y, maxWidth int, style tcell.Style, str string) {
	i := 0
	for _, r := range str {
		if i >= maxWidth {
			return
		}
		s.SetContent(x+i, y, r, nil, style)
		i++
	}
}
