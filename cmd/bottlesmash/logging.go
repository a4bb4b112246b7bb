package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

const (
	logFileName   = "bottlesmash.log"
	rotatedPrefix = "bottlesmash-"
	maxLogSize    = 10 * 1024 * 1024
	keepRotated   = 5
)

// setupLogging routes the standard logger to dir/bottlesmash.log when debug
// is set. A file over maxLogSize is rotated aside and only the newest
// keepRotated rotations are kept. Without debug logs are discarded so
// nothing writes over the terminal
func setupLogging(debug bool, dir string) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "create %s: %v\n", dir, err)
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(dir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, rotatedPrefix+time.Now().Format("20060102-150405.000")+".log")
		if err := os.Rename(logPath, rotated); err != nil {
			fmt.Fprintf(os.Stderr, "rotate %s: %v\n", logPath, err)
		}
		pruneRotated(dir, keepRotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open %s: %v\n", logPath, err)
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.Printf("Main: Logging started (pid %d)", os.Getpid())
	return f
}

// pruneRotated removes the oldest rotated logs beyond keep
// Rotation names embed a sortable timestamp, so name order is age order
func pruneRotated(dir string, keep int) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	var rotated []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, rotatedPrefix) && filepath.Ext(name) == ".log" {
			rotated = append(rotated, name)
		}
	}
	if len(rotated) <= keep {
		return
	}
	slices.Sort(rotated)
	for _, name := range rotated[:len(rotated)-keep] {
		os.Remove(filepath.Join(dir, name))
	}
}
