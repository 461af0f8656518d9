// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the word index server and interactive CLI.

wordindex loads a word list of "word category length" lines into a character
trie and answers prefix suggestions, spell checks, auto-corrections and
category lookups. It runs either as a msgpack IPC server over stdin/stdout or
as an interactive CLI.

# Usage

Start the server with the configured word list:

	wordindex

Use a specific word list and enable debug logging:

	wordindex -words /path/to/temp.txt -d

Run the interactive CLI:

	wordindex -c

# Configuration

Runtime configuration lives in a TOML file, created with defaults when
missing:

	[index]
	word_list = "words.txt"
	cache_size = 512

	[server]
	max_prefix = 60
	max_sentence = 4096
	max_results = 0

	[cli]
	show_entries = false

In server mode the file is watched and changes to the [server] section apply
without a restart. Relative word list paths are resolved against the config
directory, then the working directory and the executable directory.

# Command Line Flags

	-config string
	    Path to a config file (default: user config dir)
	-words string
	    Word list to load, overrides [index] word_list
	-cache int
	    Prefix cache entries, overrides [index] cache_size (-1 keeps config)
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-version
	    Show current version
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/wordindex/internal/cli"
	"github.com/bastiangx/wordindex/internal/utils"
	"github.com/bastiangx/wordindex/pkg/config"
	"github.com/bastiangx/wordindex/pkg/dictionary"
	"github.com/bastiangx/wordindex/pkg/server"
	"github.com/bastiangx/wordindex/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.1.0"
	AppName = "wordindex"
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

// main only manages the flow between config, loading and the chosen frontend.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	configFile := flag.String("config", "", "Path to a config file")
	wordList := flag.String("words", "", "Word list to load (overrides config)")
	cacheSize := flag.Int("cache", -1, "Prefix cache entries (overrides config, 0 disables)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI instead of the IPC server")

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

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}

	cfg, configPath := loadConfig(pathResolver, *configFile)
	log.Debugf("Using config file: (%s)", utils.GetAbsolutePath(configPath))

	if *wordList != "" {
		cfg.Index.WordList = *wordList
	}
	if *cacheSize >= 0 {
		cfg.Index.CacheSize = *cacheSize
	}

	index := suggest.NewCachedTrie(cfg.Index.CacheSize)
	loadWordList(index, pathResolver, cfg, configPath, *wordList != "")

	if *cliMode {
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(index, cfg.CLI.ShowEntries)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(index, cfg, os.Stdin, os.Stdout)
	if configPath != "" {
		watcher, err := config.NewWatcher(configPath)
		if err != nil {
			log.Warnf("Config reload disabled: %v", err)
		} else {
			defer watcher.Close()
			srv.WatchConfig(watcher.Updates())
		}
	}

	showStartupInfo(index)

	if err := srv.Start(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

// loadConfig picks the -config file when given, else the per-user default.
func loadConfig(pathResolver *utils.PathResolver, customPath string) (*config.Config, string) {
	if customPath != "" {
		cfg, path, err := config.LoadConfigWithPriority(customPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		return cfg, path
	}

	configPath, err := pathResolver.GetConfigPath("config.toml")
	if err != nil {
		log.Warnf("Failed to determine config path: (%v). Using built-in defaults...", err)
		return config.DefaultConfig(), ""
	}
	cfg, err := config.InitConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg, configPath
}

// loadWordList resolves the configured word list and loads it into index.
// A missing list leaves the index empty.
func loadWordList(index suggest.Index, pathResolver *utils.PathResolver, cfg *config.Config, configPath string, fromFlag bool) {
	if cfg.Index.WordList == "" {
		log.Warn("No word list configured, running with empty index...")
		return
	}

	path := cfg.Index.WordList
	if !fromFlag {
		path = cfg.ResolveWordList(configPath)
	}
	if !utils.FileExists(path) {
		resolved, err := pathResolver.GetWordListPath(cfg.Index.WordList)
		if err != nil {
			log.Warnf("Word list %s not found, running with empty index...", cfg.Index.WordList)
			return
		}
		path = resolved
	}

	stats, err := dictionary.LoadInto(index, path)
	if err != nil {
		log.Errorf("Failed to load word list: %v", err)
		return
	}
	if stats.Skipped > 0 {
		log.Warnf("Skipped %d malformed lines in %s", stats.Skipped, path)
	}
	log.Debugf("Loaded %d records from %s", stats.Records, path)
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ wordindex ] word suggestions, spell checks and categories")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
}

// showStartupInfo displays some basic info about the init process on stderr.
func showStartupInfo(index suggest.Index) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	stats := index.Stats()
	log.Infof("%s %s", AppName, Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("words: %d, entries: %d", stats["words"], stats["entries"])
	log.Info("status: ready")

	log.SetLevel(currentLevel)
}
