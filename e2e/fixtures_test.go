//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// testConfig mirrors the application's config file layout
type testConfig struct {
	Version int            `toml:"version"`
	DBPath  string         `toml:"db_path"`
	UI      testUISettings `toml:"ui"`
}

type testUISettings struct {
	PageSize      int  `toml:"page_size"`
	ConfirmDelete bool `toml:"confirm_delete"`
}

// CreateTestWorkspace creates an isolated temporary directory for one app run
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteFixtures writes a YAML fixture file with the given product names.
// Each product gets one variant so the editor always has a block to show.
func (tf *TUITestFramework) WriteFixtures(names ...string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}

	b := &strings.Builder{}
	b.WriteString("products:\n")
	for i, name := range names {
		fmt.Fprintf(b, "  - name: %s\n", name)
		fmt.Fprintf(b, "    sku: SKU-%03d\n", i+1)
		fmt.Fprintf(b, "    price: %d.50\n", i+1)
		fmt.Fprintf(b, "    stock: %d\n", (i+1)*2)
		b.WriteString("    variants:\n")
		fmt.Fprintf(b, "      - label: %s-standard\n", name)
		b.WriteString("        sku_suffix: \"-STD\"\n")
		fmt.Fprintf(b, "        stock: %d\n", i+1)
	}

	path := filepath.Join(tf.workspace, "fixtures.yaml")
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// WriteConfig writes a TOML config file into the workspace
func (tf *TUITestFramework) WriteConfig(pageSize int) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}

	cfg := testConfig{
		Version: 1,
		DBPath:  tf.DBPath(),
		UI:      testUISettings{PageSize: pageSize, ConfirmDelete: true},
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", err
	}

	path := filepath.Join(tf.workspace, "config.toml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// DBPath returns the workspace database path
func (tf *TUITestFramework) DBPath() string {
	return filepath.Join(tf.workspace, "catalog.db")
}

// StartSeeded writes fixtures for the given names and starts the app against
// a fresh workspace database
func (tf *TUITestFramework) StartSeeded(names ...string) error {
	fixtures, err := tf.WriteFixtures(names...)
	if err != nil {
		return err
	}
	return tf.StartApp("-db", tf.DBPath(), "-seed", fixtures)
}
