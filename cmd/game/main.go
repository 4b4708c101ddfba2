// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"

	"github.com/hajimehoshi/ebiten/v2"

	"go-bug-run/internal/app"
	"go-bug-run/internal/assets"
	"go-bug-run/internal/config"
	"go-bug-run/internal/state"
	"go-bug-run/pkg/render/ebitensurface"
)

type AppGame struct {
	stateMachine *state.StateMachine
	clock        *app.Clock
}

func (a *AppGame) Update() error {
	a.stateMachine.Update(a.clock.Tick())
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "path to a YAML settings file")
	assetsDir := flag.String("assets", "", "directory with sprite PNGs (placeholders if empty)")
	seed := flag.Int64("seed", 0, "PRNG seed, 0 means current time")
	pprofAddr := flag.String("pprof", "", "address for net/http/pprof, e.g. localhost:6060")
	flag.Parse()

	settings, err := config.LoadSettings(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *assetsDir != "" {
		settings.AssetsDir = *assetsDir
	}
	if *seed != 0 {
		settings.Seed = *seed
	}

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	game := app.NewGame(settings)
	app.AttachLogger(game, log.Default())

	cache := assets.NewCache(assets.DefaultLoader(settings.AssetsDir))
	surface, err := ebitensurface.New(cache)
	if err != nil {
		log.Fatal(err)
	}

	sm := state.NewStateMachine() // Создаём машину состояний
	sm.SetState(state.NewLoadingState(sm, game, cache, surface))

	clock := app.NewClock(nil)
	clock.Start()
	a := &AppGame{stateMachine: sm, clock: clock}

	ebiten.SetWindowSize(
		int(float64(config.ScreenWidth)*settings.WindowScale),
		int(float64(config.ScreenHeight)*settings.WindowScale),
	)
	ebiten.SetTPS(settings.TPS)
	ebiten.SetWindowTitle("Bug Run")
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
