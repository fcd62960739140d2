package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"quill/internal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "quill: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := internal.LoadConfig(internal.DefaultConfigPath())
	if err != nil {
		return err
	}

	// Arg 1 is the file to edit; without it the editor starts on an empty
	// unnamed document. An unopenable path degrades to an empty document
	// plus a warning, not a startup failure.
	initialStatus := "ctrl-f: find | ctrl-s: save | ctrl-q: quit | ctrl-b: backup"
	doc := internal.NewDocument()
	if len(os.Args) > 1 {
		path := os.Args[1]
		if opened, err := internal.OpenDocument(path); err != nil {
			initialStatus = fmt.Sprintf("warning: cannot open %s: %v", path, err)
		} else {
			doc = opened
		}
	}

	term, err := internal.OpenTerminal()
	if err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}

	editor := internal.NewSession(term, doc, internal.SystemClipboard(), cfg, initialStatus)
	defer editor.Close()

	// Also restore the terminal if the process is signalled away.
	go func() {
		signalChan := make(chan os.Signal, 1)
		signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)
		<-signalChan
		editor.Close()
		os.Exit(1)
	}()

	return editor.Run()
}
