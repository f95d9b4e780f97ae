package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/casttivi/casttivi/internal/ui"
)

func configDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, "casttivi")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

func main() {
	dir, err := configDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "casttivi: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the UI, so logs go to a file
	logFile, err := os.OpenFile(filepath.Join(dir, "casttivi.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "casttivi: opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	settings, err := ui.LoadSettings(dir)
	if err != nil {
		log.Printf("Failed to load settings, using defaults: %v", err)
		settings = ui.DefaultSettings()
	}

	if err := ui.NewApp(settings).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "casttivi: %v\n", err)
		os.Exit(1)
	}
}
