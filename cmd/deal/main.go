package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"fivecarddraw/internal/config"
	"fivecarddraw/internal/rng"
	"fivecarddraw/pkg/deck"
	"fivecarddraw/pkg/game"
	"fivecarddraw/pkg/poker"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// Version is the build version
var Version = "v0.0.0-dev"

var (
	players = flag.Int("players", 0, "the number of hands to deal, 1-4 (defaults to the configured player count)")
	seed    = flag.Int64("seed", 0, "shuffle seed; 0 uses a crypto source unless one is configured")
	plain   = flag.Bool("plain", false, "print plain text even on a terminal")
	hand    = flag.String("hand", "", "classify a single hand instead of dealing, i.e., 2c,3d,4h,5s,14c")
)

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()
	styled := useStyledOutput(cfg)

	if *hand != "" {
		if err := classify(*hand, styled); err != nil {
			logrus.WithError(err).Fatal("could not classify hand")
		}

		return
	}

	opts := game.DefaultOptions()
	opts.PlayerCount = cfg.PlayerCount
	if *players > 0 {
		opts.PlayerCount = *players
	}

	s := cfg.Seed
	if *seed != 0 {
		s = *seed
	}

	logger := logrus.WithField("version", Version)
	if s != 0 {
		logger = logger.WithField("seed", s)
	}

	g, err := game.New(logger, rng.New(s), opts)
	if err != nil {
		logrus.WithError(err).Fatal("could not create game")
	}

	res, err := g.Play()
	if err != nil {
		logrus.WithError(err).WithField("game", g.ID()).Fatal("could not play round")
	}

	if styled {
		fmt.Println(game.RenderStyled(res))
		return
	}

	if err := game.WriteReport(os.Stdout, res); err != nil {
		logrus.WithError(err).Fatal("could not write report")
	}
}

func classify(s string, styled bool) error {
	cards, err := deck.ParseCards(s)
	if err != nil {
		return err
	}

	h, err := poker.NewHand(cards)
	if err != nil {
		return err
	}

	if styled {
		fmt.Println(game.RenderStyledHand("Hand", h))
		return nil
	}

	return game.WriteHand(os.Stdout, h)
}

func useStyledOutput(cfg config.Config) bool {
	if *plain || cfg.Output.Plain {
		return false
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		pterm.DisableStyling()
		return false
	}

	return true
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(config.Instance().Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
