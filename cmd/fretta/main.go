package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/jask/fretta/internal/config"
	"github.com/jask/fretta/internal/console"
	"github.com/jask/fretta/internal/trainer"
	"github.com/jask/fretta/internal/tui"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const appName = "fretta"

func main() {
	log.SetFlags(0)
	log.SetPrefix(appName + ": ")
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(args []string, stdin io.Reader, stdout io.Writer) int {
	fs := pflag.NewFlagSet(appName, pflag.ContinueOnError)
	fs.SetOutput(stdout)
	fs.Usage = func() {
		fmt.Fprintf(stdout, "%s: tool for training one's knowledge of the fretboard\n\nUsage:\n  %s [flags]\n\nFlags:\n%s", appName, appName, fs.FlagUsages())
	}
	config.Flags(fs)
	showVersion := fs.BoolP("version", "v", false, "Print the version and exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		log.Printf("%v", err)
		return 2
	}
	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", appName, version)
		return 0
	}

	cfg, err := config.Load(fs)
	if err != nil {
		log.Printf("config: %v", err)
		return 1
	}

	tr, err := trainer.New(cfg.Trainer.Tuning, cfg.TrainerOptions()...)
	if err != nil {
		log.Printf("%v", err)
		return 1
	}

	if cfg.UI.Plain {
		if err := console.Run(context.Background(), stdin, stdout, tr, console.WithColor(cfg.UI.Color)); err != nil {
			log.Printf("error: %v", err)
			return 1
		}
		return 0
	}

	if err := tui.Run(tr, cfg.UI.Color, tea.WithInput(stdin), tea.WithOutput(stdout)); err != nil {
		log.Printf("error: %v", err)
		return 1
	}
	return 0
}
