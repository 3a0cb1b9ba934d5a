// Package main implements the tasktrack command line interface, an
// interactive shell over the in-memory task store. Tasks live for the
// duration of the process; exports can write a report before exit.
package main

import (
	"log"
	"os"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.runREPL(os.Stdin, os.Stdout); err != nil {
		log.Fatalf("Shell terminated: %v", err)
	}
}
