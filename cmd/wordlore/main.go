// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the wordlore report, CLI and IPC server.

wordlore reads one novel-length Project Gutenberg text and answers
statistical and generative queries about its vocabulary: word counts,
the most frequent, interesting and rare words, per-chapter frequencies,
quote lookup, sentence autocomplete and sentence generation in the
author's style.

# Usage

Print the summary report for the default book:

	wordlore

Analyze another book, excluding the 500 most common English words:

	wordlore -book Emma.txt -n 500

Explore the book interactively:

	wordlore -c

Serve queries over stdin/stdout with MessagePack:

	wordlore -s

# Configuration

Defaults are read from a TOML file, created on first run in the user config
dir, or given with -config:

	[source]
	book_path = "Pride-and-Prejudice.txt"
	common_words_path = "1-1000.txt"

	[analysis]
	rank_limit = 20
	common_word_count = 300
	sentence_budget = 20
	start_word = "The"
	seed = 0

Flags override the file. Relative paths are looked up in the working dir,
next to the executable, and in the config dir.

# Command Line Flags

	-book string      book to analyze
	-common string    common English words list, one per line
	-n int            number of common words to exclude (0 to 1000)
	-seed int         random seed for sentence generation, 0 for time based
	-config string    config file path
	-c                run the interactive CLI
	-s                run the MessagePack IPC server
	-d                enable debug logging
	-version          show current version
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/wordlore/internal/cli"
	"github.com/bastiangx/wordlore/internal/utils"
	"github.com/bastiangx/wordlore/pkg/analyzer"
	"github.com/bastiangx/wordlore/pkg/config"
	"github.com/bastiangx/wordlore/pkg/server"
	"github.com/bastiangx/wordlore/pkg/source"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.1.0"
	AppName = "wordlore"
	gh      = "https://github.com/bastiangx/wordlore"
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

// main resolves config and inputs, builds the book and hands it to the
// selected mode. It does not implement any of the modes itself.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run the interactive CLI")
	serverMode := flag.Bool("s", false, "Run the MessagePack IPC server on stdin/stdout")
	configFile := flag.String("config", "", "Path to a config file")
	bookPath := flag.String("book", "", "Book to analyze (default from config)")
	commonPath := flag.String("common", "", "Common English words list (default from config)")
	commonCount := flag.Int("n", -1, "Number of common words to exclude, 0 to 1000 (default from config)")
	seed := flag.Int("seed", 0, "Random seed for sentence generation (default from config)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}
	log.SetOutput(os.Stderr)

	cfg, configPath, err := config.LoadConfigWithPriority(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(configPath))

	if *bookPath != "" {
		cfg.Source.BookPath = *bookPath
	}
	if *commonPath != "" {
		cfg.Source.CommonWordsPath = *commonPath
	}
	if *commonCount >= 0 {
		cfg.Analysis.CommonWordCount = *commonCount
	}
	if *seed != 0 {
		cfg.Analysis.Seed = *seed
	}

	book, err := loadBook(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	switch {
	case *cliMode:
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(book, cfg, os.Stdin, os.Stdout)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
	case *serverMode:
		log.Debug("spawning IPC")
		srv := server.NewServer(book, cfg, configPath)
		showStartupInfo(cfg)
		if err := srv.Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	default:
		if err := cli.Report(os.Stdout, book, cfg.Analysis.CommonWordCount); err != nil {
			log.Fatalf("Report failed: %v", err)
		}
	}
}

// loadBook reads the book and the common words list named in cfg.
func loadBook(cfg *config.Config) (*analyzer.Book, error) {
	pathResolver, err := utils.NewPathResolver(AppName)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize path resolver: %w", err)
	}

	bookPath := pathResolver.FindFile(cfg.Source.BookPath)
	c, err := source.LoadBook(bookPath, cfg.Source.Markers())
	if err != nil {
		return nil, fmt.Errorf("failed to load book: %w", err)
	}

	commonWords, err := source.LoadCommonWords(pathResolver.FindFile(cfg.Source.CommonWordsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to load common words: %w", err)
	}
	if len(commonWords) < cfg.Analysis.MaxCommonWords {
		log.Warnf("Common words list has %d entries, expected %d", len(commonWords), cfg.Analysis.MaxCommonWords)
	}

	log.Debugf("Analyzing %s", bookPath)
	return analyzer.New(c, commonWords, cfg.Analysis, nil), nil
}

// printVersion shows the styled version banner.
func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ wordlore ] Word statistics and sentences from your favorite novel")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the server on stderr.
func showStartupInfo(cfg *config.Config) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("book: ( %s )", cfg.Source.BookPath)
	log.Info("status: ready")

	log.SetLevel(currentLevel)
}
