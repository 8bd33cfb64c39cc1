// Copyright 2025 The predtext Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the predtext predictor and its msgpack IPC server.

predtext loads a word list into a popularity-ranked prefix tree and predicts
the most popular completions for typed prefixes.

# Usage

Start the interactive predictor with the default dictionary:

	predtext

Use a custom word list and enable debug mode:

	predtext -dict /path/to/words.txt -d

Serve predictions over msgpack on stdin/stdout:

	predtext -server

# Dictionary

A ranked word list holds one word per line, most popular first; each word's
popularity is its negated line number. A scored list holds "word score" per
line. Latin-1 and Windows-1252 files are decoded with -encoding.

# Interactive mode

Every prefix prints the top predictions and the single best one:

	> wo
	---> [world, word]
	---> world

Lines starting with ':' are commands (:stats, :add, :rm, :has, :words, :quit).

# Configuration

Runtime configuration lives in a TOML file created with defaults on first
run:

	[dict]
	path = "word-popularity.txt"
	encoding = "utf-8"
	format = "ranked"

	[cli]
	limit = 5

	[server]
	max_limit = 64

Flags override the file.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/predtext/internal/cli"
	"github.com/bastiangx/predtext/internal/logger"
	"github.com/bastiangx/predtext/internal/utils"
	"github.com/bastiangx/predtext/pkg/config"
	"github.com/bastiangx/predtext/pkg/dictionary"
	"github.com/bastiangx/predtext/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "predtext"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main only manages the flow: flags, config, dictionary, then the selected
// front end.
func main() {
	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	configPath := flag.String("config", "", "Path to a custom config.toml")
	dictPath := flag.String("dict", "", "Word list to load (overrides dict.path)")
	encodingName := flag.String("encoding", "", "Word list encoding: utf-8, latin1, windows-1252")
	formatName := flag.String("format", "", "Word list format: ranked or scored")
	limit := flag.Int("limit", 0, "Number of predictions to show (overrides cli.limit)")
	serverMode := flag.Bool("server", false, "Serve predictions over msgpack on stdin/stdout")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetDefault(logger.NewWithConfig(os.Stderr, "", log.DebugLevel, true))
	} else {
		log.SetDefault(logger.NewWithConfig(os.Stderr, "", log.WarnLevel, false))
	}

	cfg, usedPath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.DisplayPath(usedPath))

	if *dictPath != "" {
		cfg.Dict.Path = *dictPath
	}
	if *encodingName != "" {
		cfg.Dict.Encoding = *encodingName
	}
	if *formatName != "" {
		cfg.Dict.Format = *formatName
	}
	if *limit > 0 {
		cfg.CLI.Limit = *limit
	}

	format, err := dictionary.ParseFormat(cfg.Dict.Format)
	if err != nil {
		log.Fatalf("Invalid dictionary format: %v", err)
	}

	if !*serverMode {
		fmt.Print("Loading dictionary ... ")
	}
	dict, stats, err := dictionary.Load(cfg.Dict.Path, dictionary.Options{
		Encoding:  cfg.Dict.Encoding,
		Format:    format,
		Normalize: cfg.Dict.Normalize,
	})
	if err != nil {
		if !*serverMode {
			fmt.Println("failed")
		}
		log.Fatalf("Failed to load dictionary %s: %v", cfg.Dict.Path, err)
	}
	log.Debug("Dictionary loaded",
		"words", utils.FormatWithCommas(stats.Words),
		"duplicates", stats.Duplicates,
		"skipped", stats.Skipped,
		"took", stats.Elapsed)

	if *serverMode {
		sigHandler()
		srv := server.NewServer(dict, cfg, os.Stdin, os.Stdout)
		if err := srv.Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
		return
	}
	fmt.Println("done")

	rl, err := cli.NewReadline(cfg.CLI)
	if err != nil {
		log.Fatalf("Failed to open terminal: %v", err)
	}
	inputHandler := cli.NewInputHandler(dict, cfg, rl, os.Stdout)
	if err := inputHandler.Start(); err != nil {
		log.Fatalf("CLI error: %v", err)
	}
}

// printVersion shows the styled version banner.
func printVersion() {
	banner := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	banner.SetStyles(styles)

	banner.Print("")
	banner.Print("[ predtext ] popularity-ranked word prediction")
	banner.Print("", "version", Version)
	banner.Print("")
	banner.Print("use -h or --help to see available options")
}
