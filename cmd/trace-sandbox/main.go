// Interactive sandbox for the geom kernel: move a cursor with vi keys and
// watch the Bresenham ray from the anchor, the midpoint circle around it,
// and the compass/lateral readout update live.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/gridkit/geom"
)

var (
	radiusFlag = flag.Int("radius", 6, "Initial circle radius")
	seedFlag   = flag.Uint64("seed", 1, "Seed for the scatter generator")
	muteFlag   = flag.Bool("mute", false, "Disable the commit blip")
)

const sampleRate = beep.SampleRate(44100)

type sandbox struct {
	screen tcell.Screen
	width  int
	height int

	anchor  geom.Point
	cursor  geom.Point
	radius  int32
	filled  bool
	scatter []geom.Point
	rng     *geom.FastRand

	committed []geom.Point

	audioInit bool
}

func newSandbox(screen tcell.Screen) *sandbox {
	w, h := screen.Size()
	s := &sandbox{
		screen: screen,
		width:  w,
		height: h,
		radius: int32(*radiusFlag),
		rng:    geom.NewFastRand(*seedFlag),
	}
	s.anchor = geom.Pt(int32(w/2), int32(h/2))
	s.cursor = s.anchor.AddDir(geom.East).AddDir(geom.East)
	return s
}

func (s *sandbox) initAudio() {
	if *muteFlag {
		return
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err == nil {
		s.audioInit = true
	}
	// Silent mode is fine; the sandbox runs without sound.
}

func (s *sandbox) playBlip() {
	if !s.audioInit {
		return
	}
	sine, _ := generators.SineTone(sampleRate, 880)
	speaker.Play(beep.Take(sampleRate.N(50*time.Millisecond), sine))
}

func (s *sandbox) bounds() geom.Rect {
	return geom.Rect{X: 0, Y: 0, Width: int32(s.width), Height: int32(s.height - 1)}
}

func (s *sandbox) moveCursor(d geom.Direction) {
	next := s.cursor.AddDir(d)
	if s.bounds().Contains(next) {
		s.cursor = next
	}
}

func (s *sandbox) scatterPoints() {
	area := s.bounds()
	s.scatter = s.scatter[:0]
	for i := 0; i < 24; i++ {
		s.scatter = append(s.scatter, area.DistributePoint(i*int(area.Width*area.Height)/24, s.rng))
	}
}

func (s *sandbox) commit() {
	s.committed = append(s.committed, geom.LineTo(s.anchor, s.cursor)...)
	s.playBlip()
}

func (s *sandbox) draw() {
	s.screen.Clear()
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)
	ray := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	ring := tcell.StyleDefault.Foreground(tcell.ColorTeal)
	mark := tcell.StyleDefault.Foreground(tcell.ColorGreen)

	for _, p := range s.committed {
		s.setCell(p, '·', dim)
	}
	for _, p := range s.scatter {
		s.setCell(p, '*', dim)
	}

	circle := geom.Circle(s.anchor, s.radius)
	if s.filled {
		circle = geom.FilledCircle(s.anchor, s.radius)
	}
	for _, p := range circle {
		s.setCell(p, '▒', ring)
	}

	for _, p := range geom.LineTo(s.anchor, s.cursor) {
		s.setCell(p, '█', ray)
	}
	s.setCell(s.anchor, '@', mark)
	s.setCell(s.cursor, '+', mark)

	s.drawStatus()
	s.screen.Show()
}

func (s *sandbox) setCell(p geom.Point, r rune, style tcell.Style) {
	if s.bounds().Contains(p) {
		s.screen.SetContent(int(p.X), int(p.Y), r, nil, style)
	}
}

func (s *sandbox) drawStatus() {
	dir := s.anchor.DirectionTo(s.cursor)
	facing := "-"
	if lat, err := geom.LateralFromDirection(dir); err == nil {
		facing = lat.String()
	}
	status := fmt.Sprintf(
		" %v -> %v  dir=%v  facing=%s  dist=%.2f  r=%d  [hjkl/yubn move, a anchor, +/- radius, f fill, s scatter, space commit, c clear, q quit]",
		s.anchor, s.cursor, dir, facing, s.anchor.Distance(s.cursor), s.radius,
	)
	style := tcell.StyleDefault.Reverse(true)
	y := s.height - 1
	for x := 0; x < s.width; x++ {
		r := ' '
		if x < len(status) {
			r = rune(status[x])
		}
		s.screen.SetContent(x, y, r, nil, style)
	}
}

func (s *sandbox) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		s.moveCursor(geom.West)
	case tcell.KeyRight:
		s.moveCursor(geom.East)
	case tcell.KeyUp:
		s.moveCursor(geom.North)
	case tcell.KeyDown:
		s.moveCursor(geom.South)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'h':
			s.moveCursor(geom.West)
		case 'l':
			s.moveCursor(geom.East)
		case 'k':
			s.moveCursor(geom.North)
		case 'j':
			s.moveCursor(geom.South)
		case 'y':
			s.moveCursor(geom.NorthWest)
		case 'u':
			s.moveCursor(geom.NorthEast)
		case 'b':
			s.moveCursor(geom.SouthWest)
		case 'n':
			s.moveCursor(geom.SouthEast)
		case 'a':
			s.anchor = s.cursor
		case '+', '=':
			s.radius++
		case '-':
			if s.radius > 0 {
				s.radius--
			}
		case 'f':
			s.filled = !s.filled
		case 's':
			s.scatterPoints()
		case ' ':
			s.commit()
		case 'c':
			s.committed = s.committed[:0]
			s.scatter = s.scatter[:0]
		}
	}
	return true
}

func (s *sandbox) run() {
	for {
		s.draw()
		switch ev := s.screen.PollEvent().(type) {
		case *tcell.EventResize:
			s.width, s.height = ev.Size()
			s.screen.Sync()
		case *tcell.EventKey:
			if !s.handleKey(ev) {
				return
			}
		}
	}
}

func main() {
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Restore the terminal before the stack trace hits stderr.
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "trace-sandbox crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	s := newSandbox(screen)
	s.initAudio()
	s.run()
}
