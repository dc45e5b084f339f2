package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/jask/minisa/internal/config"
	"github.com/jask/minisa/internal/logging"
	"github.com/jask/minisa/internal/theme"
	"github.com/jask/minisa/internal/tui"
)

func main() {
	writeConfig := flag.Bool("write-config", false, "write the effective config to "+config.Path()+" and exit")
	noSplash := flag.Bool("no-splash", false, "skip the splash screen")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("warn: .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *writeConfig {
		if err := config.Save(cfg); err != nil {
			log.Fatalf("save config: %v", err)
		}
		fmt.Println("wrote", config.Path())
		return
	}

	logger, closer, err := logging.New(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer closer.Close()

	th, err := theme.Load(cfg.UI.ThemePath)
	if err != nil {
		log.Fatalf("theme: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []tui.Option{
		tui.WithTheme(th),
		tui.WithLogger(logger),
		tui.WithContext(ctx),
	}
	if *noSplash {
		opts = append(opts, tui.WithoutSplash())
	}

	logging.Component(logger, "main").WithField("version", cfg.UI.Version).Info("starting")
	p := tea.NewProgram(tui.NewModel(cfg, opts...), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Fatalf("tui: %v", err)
	}
}
