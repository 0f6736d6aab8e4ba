package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/letterfall/internal/audio"
	"github.com/vovakirdan/letterfall/internal/config"
	"github.com/vovakirdan/letterfall/internal/core"
	"github.com/vovakirdan/letterfall/internal/dictionary"
	"github.com/vovakirdan/letterfall/internal/games/letterfall"
	"github.com/vovakirdan/letterfall/internal/platform/tui"
)

// settings is everything a game host needs, resolved from flags, env and
// config before the terminal is taken over.
type settings struct {
	cfg       config.Letterfall
	runtime   core.RuntimeConfig
	logger    *log.Logger
	sound     tui.Sound
	closeLog  func()
	stopAudio func()
}

// Close releases the log file and the audio device.
func (s *settings) Close() {
	if s.stopAudio != nil {
		s.stopAudio()
	}
	if s.closeLog != nil {
		s.closeLog()
	}
}

// loadConfig reads the config and applies the difficulty preset. Errors are
// reported instead of falling back to defaults.
func loadConfig() (config.Letterfall, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Letterfall{}, err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Letterfall{}, err
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.Letterfall{}, err
	}
	return cfg, nil
}

// loadDictionary returns the word list named by --words, the config, or the
// built-in list, in that order.
func loadDictionary(cfg config.Letterfall) (*dictionary.WordList, error) {
	path := flagWords
	if path == "" {
		path = cfg.Dictionary.Path
	}
	if path == "" {
		return dictionary.Default(), nil
	}
	return dictionary.Load(path)
}

// prepare resolves settings for an interactive session and hands the
// config and dictionary to the game package.
func prepare() (*settings, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	words, err := loadDictionary(cfg)
	if err != nil {
		return nil, err
	}

	logger, closeLog, err := newLogger(flagLog, true)
	if err != nil {
		return nil, err
	}

	letterfall.SetConfigPath(flagConfig)
	letterfall.SetDifficultyPreset(flagDifficulty)
	letterfall.SetDictionary(words)

	tickRate := flagFPS
	if tickRate == 0 {
		tickRate = cfg.Timing.TickRate
	}

	s := &settings{
		cfg:      cfg,
		runtime:  terminalConfig(tickRate),
		logger:   logger,
		closeLog: closeLog,
	}

	if flagSound || cfg.Feedback.Sound {
		volume := float64(config.GetEnvInt("LETTERFALL_VOLUME", int(audio.DefaultVolume*100))) / 100
		sm := audio.NewSoundManager(volume)
		if err := sm.Initialize(); err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			s.sound = sm
			s.stopAudio = sm.Cleanup
		}
	}

	logger.Debug("settings resolved",
		"config", flagConfig,
		"difficulty", flagDifficulty,
		"words", words.Len(),
		"fps", tickRate,
		"sound", s.sound != nil,
	)
	return s, nil
}

// terminalConfig builds a runtime config sized to the current terminal.
func terminalConfig(tickRate int) core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate,
		Seed:     flagSeed,
	}
}

// newLogger opens the log destination. With no path, interactive commands
// discard logs because the TUI owns the terminal; others log to stderr.
func newLogger(path string, interactive bool) (*log.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closeFn := func() {}

	switch {
	case path != "":
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
			}
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "letterfall",
	})
	if level := config.GetEnv("LETTERFALL_LOG_LEVEL", ""); level != "" {
		if lvl, err := log.ParseLevel(level); err == nil {
			logger.SetLevel(lvl)
		}
	}
	return logger, closeFn, nil
}

// options converts settings into host options.
func (s *settings) options() tui.Options {
	return tui.Options{
		Runtime: s.runtime,
		Logger:  s.logger,
		Sound:   s.sound,
	}
}
