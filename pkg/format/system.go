// SPDX-FileCopyrightText: Copyright 2025 KG Foundry, Inc.
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"fmt"
	"strings"

	"github.com/kgfoundry/kgmcp/pkg/config"
	"github.com/kgfoundry/kgmcp/pkg/kgclient"
)

// DatabaseStats renders node and relationship counts by type.
func DatabaseStats(resp *kgclient.DatabaseStats) string {
	var b strings.Builder
	b.WriteString("# Database Statistics\n")
	if len(resp.Nodes) > 0 {
		b.WriteString("\n## Nodes\n")
		for _, label := range sortedKeys(resp.Nodes) {
			fmt.Fprintf(&b, "- %s: %d\n", label, resp.Nodes[label])
		}
	}
	if len(resp.Relationships) > 0 {
		b.WriteString("\n## Relationships\n")
		for _, relType := range sortedKeys(resp.Relationships) {
			fmt.Fprintf(&b, "- %s: %s\n", relType, renderValue(resp.Relationships[relType]))
		}
	}
	if len(resp.Nodes) == 0 && len(resp.Relationships) == 0 {
		b.WriteString("\nThe database is empty.\n")
	}
	return b.String()
}

// DatabaseInfo renders the graph database connection details.
func DatabaseInfo(resp *kgclient.DatabaseInfo) string {
	var b strings.Builder
	b.WriteString("# Database Connection\n")
	fmt.Fprintf(&b, "- Connected: %t\n", resp.Connected)
	kv(&b, "URI", resp.URI)
	kv(&b, "User", resp.User)
	kv(&b, "Version", resp.Version)
	kv(&b, "Edition", resp.Edition)
	if resp.Error != "" {
		fmt.Fprintf(&b, "\nError: %s\n", resp.Error)
	}
	return b.String()
}

// DatabaseHealth renders the database health probe.
func DatabaseHealth(resp *kgclient.DatabaseHealth) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Database Health: %s\n", resp.Status)
	fmt.Fprintf(&b, "- Responsive: %t\n", resp.Responsive)
	if len(resp.Checks) > 0 {
		b.WriteString("\n## Checks\n")
		for _, check := range sortedKeys(resp.Checks) {
			fmt.Fprintf(&b, "- %s: %s\n", check, renderValue(resp.Checks[check]))
		}
	}
	if resp.Error != "" {
		fmt.Fprintf(&b, "\nError: %s\n", resp.Error)
	}
	return b.String()
}

// SystemStatus renders the full deployment status report.
func SystemStatus(resp *kgclient.SystemStatus) string {
	var b strings.Builder
	b.WriteString("# System Status\n")
	writeStatusSection(&b, "Docker", resp.Docker)
	writeStatusSection(&b, "Database Connection", resp.DatabaseConnection)
	writeStatusSection(&b, "Database Statistics", resp.DatabaseStats)
	writeStatusSection(&b, "Python Environment", resp.PythonEnv)
	writeStatusSection(&b, "Configuration", resp.Configuration)
	if resp.Neo4jBrowserURL != "" || resp.BoltURL != "" {
		b.WriteString("\n## Endpoints\n")
		kv(&b, "Browser", resp.Neo4jBrowserURL)
		kv(&b, "Bolt", resp.BoltURL)
	}
	return b.String()
}

func writeStatusSection(b *strings.Builder, title string, section map[string]any) {
	if len(section) == 0 {
		return
	}
	fmt.Fprintf(b, "\n## %s\n", title)
	for _, key := range sortedKeys(section) {
		fmt.Fprintf(b, "- %s: %s\n", key, renderValue(section[key]))
	}
}

// APIHealth renders the backend liveness report.
func APIHealth(resp *kgclient.APIHealth) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# API Health: %s\n", resp.Status)
	kv(&b, "Service", resp.Service)
	kv(&b, "Version", resp.Version)
	if resp.Epoch > 0 {
		fmt.Fprintf(&b, "- Graph epoch: %d\n", resp.Epoch)
	}
	if len(resp.Queue) > 0 {
		b.WriteString("\n## Queue\n")
		for _, key := range sortedKeys(resp.Queue) {
			fmt.Fprintf(&b, "- %s: %s\n", key, renderValue(resp.Queue[key]))
		}
	}
	return b.String()
}

// AllowedPaths renders the local allowlist configuration. This view is
// built entirely from local state; no backend call is involved.
func AllowedPaths(cfg *config.Config, configPath string) string {
	var b strings.Builder
	b.WriteString("# Allowed Ingestion Paths\n")
	kv(&b, "Config file", configPath)

	if len(cfg.AllowedDirectories) == 0 {
		b.WriteString("\nNo directories are allowed yet. ")
		b.WriteString("Add one to allowed_directories in the config file, then restart the server.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "\n## Directories (%d)\n", len(cfg.AllowedDirectories))
	for _, dir := range cfg.AllowedDirectories {
		fmt.Fprintf(&b, "- %s\n", dir)
	}
	if len(cfg.AllowedPatterns) > 0 {
		fmt.Fprintf(&b, "\n## Allowed Patterns\n- %s\n", strings.Join(cfg.AllowedPatterns, "\n- "))
	}
	if len(cfg.BlockedPatterns) > 0 {
		fmt.Fprintf(&b, "\n## Blocked Patterns\n- %s\n", strings.Join(cfg.BlockedPatterns, "\n- "))
	}
	b.WriteString("\n## Limits\n")
	fmt.Fprintf(&b, "- Max file size: %d MB\n", cfg.MaxFileSizeMB)
	fmt.Fprintf(&b, "- Max files per directory: %d\n", cfg.MaxFilesPerDirectory)
	return b.String()
}
