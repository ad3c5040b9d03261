// Browser for the 256-glyph code page 437 table: a 16x16 grid with a
// movable selection and a byte/rune readout.
package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridkit/cp437"
	"github.com/lixenwraith/gridkit/geom"
)

const (
	gridOriginX = 4
	gridOriginY = 2
	cellSpacing = 2
)

type viewer struct {
	screen tcell.Screen
	sel    geom.Point // selected cell in the 16x16 glyph grid
}

var gridBounds = geom.Rect{X: 0, Y: 0, Width: 16, Height: 16}

func (v *viewer) selectedByte() byte {
	idx, ok := v.sel.ToIndex(gridBounds.Width)
	if !ok {
		return 0
	}
	return byte(idx)
}

func (v *viewer) move(d geom.Direction) {
	next := v.sel.AddDir(d)
	if gridBounds.Contains(next) {
		v.sel = next
	}
}

func (v *viewer) draw() {
	v.screen.Clear()
	normal := tcell.StyleDefault
	header := tcell.StyleDefault.Foreground(tcell.ColorGray)
	selected := tcell.StyleDefault.Reverse(true)

	for i := 0; i < 16; i++ {
		label := fmt.Sprintf("%X", i)
		v.screen.SetContent(gridOriginX+i*cellSpacing, gridOriginY-1, rune(label[0]), nil, header)
		v.screen.SetContent(gridOriginX-2, gridOriginY+i, rune(label[0]), nil, header)
	}

	for b := 0; b < 256; b++ {
		p := geom.PointFromIndex(b, gridBounds.Width)
		style := normal
		if p == v.sel {
			style = selected
		}
		x := gridOriginX + int(p.X)*cellSpacing
		y := gridOriginY + int(p.Y)
		v.screen.SetContent(x, y, cp437.Rune(byte(b)), nil, style)
	}

	b := v.selectedByte()
	r := cp437.Rune(b)
	info := fmt.Sprintf("byte 0x%02X  rune %q (U+%04X)  [hjkl/arrows move, q quit]", b, r, r)
	col := 0
	for _, c := range info {
		v.screen.SetContent(gridOriginX-2+col, gridOriginY+18, c, nil, normal)
		col++
	}

	v.screen.Show()
}

func (v *viewer) run() {
	for {
		v.draw()
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return
			case tcell.KeyLeft:
				v.move(geom.West)
			case tcell.KeyRight:
				v.move(geom.East)
			case tcell.KeyUp:
				v.move(geom.North)
			case tcell.KeyDown:
				v.move(geom.South)
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'q':
					return
				case 'h':
					v.move(geom.West)
				case 'l':
					v.move(geom.East)
				case 'k':
					v.move(geom.North)
				case 'j':
					v.move(geom.South)
				}
			}
		}
	}
}

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "glyph-table crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault)
	v := &viewer{screen: screen}
	v.run()
}
