// shadowmaster is a dark-fantasy idle strategy game for the terminal: recruit
// monsters, outfit them, and send raiding parties against the surface world.
//
// Local play:
//
//	go run . [--data data] [--save shadowmaster_save.json]
//
// For multiplayer over SSH, see cmd/server.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"shadowmaster/assets"
	"shadowmaster/internal/catalog"
	"shadowmaster/internal/game"
	"shadowmaster/internal/save"
	"shadowmaster/internal/tui"
)

func main() {
	dataDir := flag.String("data", "data", "content document directory")
	savePath := flag.String("save", "shadowmaster_save.json", "save file path")
	fresh := flag.Bool("new", false, "ignore any existing save and start over")
	flag.Parse()

	cat, warnings := catalog.Load(*dataDir, assets.Defaults())
	for _, w := range warnings {
		log.Printf("content: %v", w)
	}

	store := save.NewStore(*savePath)
	g := game.New(cat, rand.New(rand.NewSource(time.Now().UnixNano())))
	if store.Exists() && !*fresh {
		snap, err := store.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "cannot load %s: %v\nrun with --new to start over\n", *savePath, err)
			os.Exit(1)
		}
		g.Restore(snap)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal setup failed: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "screen init failed: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	tui.NewSession(screen, g, store, "overlord").Run()
}
