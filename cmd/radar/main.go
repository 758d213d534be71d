package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/encounter/common"
	"github.com/milk9111/encounter/config"
	"github.com/milk9111/encounter/encounter"
	"github.com/milk9111/encounter/logging"
	"github.com/rs/zerolog"
)

type radar struct {
	screen  tcell.Screen
	session *encounter.Session
	log     zerolog.Logger

	width, height int
	paused        bool
}

func newRadar(session *encounter.Session, log zerolog.Logger) (*radar, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	r := &radar{screen: screen, session: session, log: log}
	r.width, r.height = screen.Size()
	return r, nil
}

// handleInput returns false when the radar should exit.
func (r *radar) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case 'p', ' ':
				r.paused = !r.paused
			case 'k':
				r.session.DestroyNearest()
			}
		}
	case *tcell.EventResize:
		r.width, r.height = r.screen.Size()
		r.screen.Sync()
	}
	return true
}

// pumpEvents forwards screen events to out until poll returns nil or done
// is closed.
func pumpEvents(poll func() tcell.Event, out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := poll()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

func (r *radar) run() error {
	frame := common.FrameMillis * float64(time.Millisecond)
	ticker := time.NewTicker(time.Duration(frame))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pumpEvents(r.screen.PollEvent, eventChan, done)

	for {
		select {
		case ev := <-eventChan:
			if !r.handleInput(ev) {
				return nil
			}
		case <-ticker.C:
			if !r.paused {
				if err := r.session.Update(common.FrameMillis); err != nil {
					return err
				}
			}
			r.draw()
		}
	}
}

func (r *radar) draw() {
	r.screen.Clear()

	view := newRadarView(r.session.Config.Arena.Size, r.width, r.height-2)
	for _, blip := range collectBlips(r.session) {
		col, row, ok := view.cell(blip.x, blip.z)
		if !ok {
			continue
		}
		g := glyphFor(blip.kind)
		r.screen.SetContent(col, row+2, g.r, nil, g.style)
	}

	enc := r.session.Encounter
	status := fmt.Sprintf("encounter %s  phase %-8s kills %d  saucers %d", enc.ID().String()[:8], enc.Phase(), enc.Kills(), encounter.LiveSaucers(r.session.World))
	r.drawText(0, 0, status, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
	r.drawText(0, 1, "k: destroy nearest  p: pause  q: quit", tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.screen.Show()
}

func (r *radar) drawText(x, y int, s string, style tcell.Style) {
	for i, ch := range s {
		if x+i >= r.width {
			return
		}
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func main() {
	configPath := flag.String("config", "", "path to an encounter config file (yaml)")
	logPath := flag.String("log", "", "write logs to this file (the terminal is owned by the radar)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var out io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	log := logging.New(out, cfg.Log.Level, false)

	session, err := encounter.NewSession(cfg, nil, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer session.Close()
	session.Start()

	r, err := newRadar(session, session.Encounter.Logger())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	runErr := r.run()
	r.screen.Fini()
	if runErr != nil {
		log.Error().Err(runErr).Msg("radar stopped")
		fmt.Fprintln(os.Stderr, runErr)
		os.Exit(1)
	}
}
