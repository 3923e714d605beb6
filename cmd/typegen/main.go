// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package main is the entry point for the typegen CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dacolabs/typegen/cmd/internal"
)

func main() {
	if err := internal.Run(context.Background(), os.Getenv); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", internal.Describe(err))
		os.Exit(1)
	}
}
