// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package main is the entry point for the kgmcp CLI.
package main

import (
	"os"

	"github.com/kgfoundry/kgmcp/cmd/kgmcp/app"
	"github.com/kgfoundry/kgmcp/pkg/logger"
)

func main() {
	// Initialize the logger
	logger.Initialize()

	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
