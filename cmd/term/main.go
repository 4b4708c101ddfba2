// cmd/term/main.go
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-bug-run/internal/app"
	"go-bug-run/internal/component"
	"go-bug-run/internal/config"
	"go-bug-run/pkg/render/termsurface"
)

// Размер одной клетки сетки в символах
const (
	charsPerCellX = 10
	charsPerCellY = 3
)

var arrowKeys = map[tcell.Key]component.Direction{
	tcell.KeyLeft:  component.DirectionLeft,
	tcell.KeyUp:    component.DirectionUp,
	tcell.KeyRight: component.DirectionRight,
	tcell.KeyDown:  component.DirectionDown,
}

func main() {
	configPath := flag.String("config", "", "path to a YAML settings file")
	seed := flag.Int64("seed", 0, "PRNG seed, 0 means current time")
	logPath := flag.String("log", "", "log file (stdout belongs to the screen)")
	flag.Parse()

	logger := log.New(os.Stderr, "", log.LstdFlags)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		logger.SetOutput(f)
	}

	settings, err := config.LoadSettings(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *seed != 0 {
		settings.Seed = *seed
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	// После Init логи в stderr ломают экран
	if *logPath == "" {
		logger.SetOutput(io.Discard)
	}

	game := app.NewGame(settings)
	app.AttachLogger(game, logger)
	surface := termsurface.New(screen, config.Dims, charsPerCellX, charsPerCellY, glyphs)

	if err := run(screen, game, surface, settings.TPS); err != nil {
		logger.Println(err)
	}
}

// run крутит цикл: события tcell приходят из отдельной горутины по каналу,
// состояние игры меняется только здесь.
func run(screen tcell.Screen, game *app.Game, surface *termsurface.Surface, tps int) error {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil { // Экран закрыт
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	clock := app.NewClock(nil)
	clock.Start()

	var buttons tcell.ButtonMask
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					return nil
				}
				handleKey(game, ev)
			case *tcell.EventMouse:
				pressed := ev.Buttons()
				if pressed&tcell.Button1 != 0 && buttons&tcell.Button1 == 0 {
					col, row := ev.Position()
					game.HandleClick(surface.PixelAt(col, row))
				}
				buttons = pressed
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			game.Update(clock.Tick())
			screen.Clear()
			game.Draw(surface)
			screen.Show()
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

func handleKey(game *app.Game, ev *tcell.EventKey) {
	if dir, ok := arrowKeys[ev.Key()]; ok {
		game.HandleInput(dir)
		return
	}
	if ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && ev.Rune() == ' ') {
		game.Restart()
	}
}
