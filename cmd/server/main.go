// shadowmaster-server runs the dungeon over SSH. Every connection gets its
// own game, saved per username, so players can drop in and out. Build:
//
//	go build -o shadowmaster-server ./cmd/server
//
// Usage:
//
//	./shadowmaster-server [--port 2222] [--key server_host_key] [--data data] [--saves saves]
//
// Flags default from the environment (SHADOW_PORT, SHADOW_HOST_KEY,
// SHADOW_DATA_DIR, SHADOW_SAVE_DIR), loaded from a .env file if one exists.
//
// Connect with:
//
//	ssh -p 2222 <name>@localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"log"
	mathrand "math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/joho/godotenv"
	xssh "golang.org/x/crypto/ssh"

	"shadowmaster/assets"
	"shadowmaster/internal/catalog"
	"shadowmaster/internal/game"
	"shadowmaster/internal/save"
	internalssh "shadowmaster/internal/ssh"
	"shadowmaster/internal/tui"
)

func main() {
	_ = godotenv.Load()

	port := flag.Int("port", envInt("SHADOW_PORT", 2222), "SSH server port")
	keyFile := flag.String("key", envStr("SHADOW_HOST_KEY", "server_host_key"), "PEM host key path (auto-generated if absent)")
	dataDir := flag.String("data", envStr("SHADOW_DATA_DIR", "data"), "content document directory")
	saveDir := flag.String("saves", envStr("SHADOW_SAVE_DIR", "saves"), "per-player save directory")
	flag.Parse()

	cat, warnings := catalog.Load(*dataDir, assets.Defaults())
	for _, w := range warnings {
		log.Printf("content: %v", w)
	}

	signer := loadOrCreateHostKey(*keyFile)
	srv := &gossh.Server{
		Addr: fmt.Sprintf(":%d", *port),
		Handler: func(s gossh.Session) {
			handleSession(s, cat, *saveDir)
		},
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		HostSigners: []gossh.Signer{signer},
	}

	log.Printf("shadowmaster SSH server listening on :%d", *port)
	log.Printf("Connect with:  ssh -p %d -o StrictHostKeyChecking=no <name>@localhost", *port)
	log.Fatal(srv.ListenAndServe())
}

// handleSession runs one player's game for the life of their connection.
func handleSession(s gossh.Session, cat *catalog.Catalog, saveDir string) {
	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "The dungeon requires a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}

	term := "xterm-256color"
	for _, env := range s.Environ() {
		if strings.HasPrefix(env, "TERM=") {
			term = env[5:]
			break
		}
	}

	// TERM must be in the process environment before the screen is built;
	// the mutex keeps concurrent connections from racing on it.
	tty := internalssh.NewSessionTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}
	defer screen.Fini()

	name := playerName(s.User())
	store := save.NewStore(filepath.Join(saveDir, name+".json"))
	g := game.New(cat, mathrand.New(mathrand.NewSource(time.Now().UnixNano())))
	if store.Exists() {
		snap, err := store.Load()
		if err != nil {
			log.Printf("%s: load save: %v (starting fresh)", name, err)
		} else {
			g.Restore(snap)
		}
	}

	log.Printf("%s connected", name)
	tui.NewSession(screen, g, store, name).Run()
	log.Printf("%s disconnected", name)
}

// termMu serializes os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

// playerName sanitizes an SSH username into a save file name.
func playerName(user string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(user) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "overlord"
	}
	return b.String()
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string) gossh.Signer {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Printf("Loaded host key from %s", path)
			return signer
		}
	}

	log.Printf("Generating new ed25519 host key at %s", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		log.Fatalf("generate host key: %v", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		log.Fatalf("create signer: %v", err)
	}
	if pemBlock, err := xssh.MarshalPrivateKey(key, "shadowmaster server"); err == nil {
		_ = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0600)
	}
	return signer
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var n int
	if _, err := fmt.Sscanf(v, "%d", &n); err != nil {
		log.Printf("bad %s=%q, using %d", key, v, def)
		return def
	}
	return n
}
