// Package main is the platform-service entry point (HTTP + WebSocket).
package main

import (
	"log"

	"github.com/streamvault/platform-service/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
