/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package export provides the export command for tokenbench.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"bennypowers.dev/tokenbench/cmd/app"
	"bennypowers.dev/tokenbench/codesyntax"
	convertlib "bennypowers.dev/tokenbench/convert"
	"bennypowers.dev/tokenbench/convert/formatter"
	"bennypowers.dev/tokenbench/fs"
	"bennypowers.dev/tokenbench/internal/version"
	"bennypowers.dev/tokenbench/workspace"
)

// Cmd is the export cobra command.
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the working set",
	Long: `Export the working set.

Output Formats:
  zip   Figma variable files, one per group, in a zip archive (default)
  css   CSS custom properties on :root
  js    ES module with one export per variable
  cjs   CommonJS module with one export per variable
  json  Flat JSON of variable names to resolved values

The zip archive is written to ` + convertlib.ArchiveName + ` unless --output
names another file; "-" writes it to stdout. With --dir the Figma files are
written unpacked into a directory instead. Other formats go to stdout unless
--output is given.

Code syntax in the output follows --syntax: css (--ob-color-bg-primary) or
js (colorBgPrimary).`,
	Example: `  tokenbench export
  tokenbench export --dir ./figma --syntax js
  tokenbench export --format css -o tokens.css`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", string(convertlib.FormatZip), "Output format: "+strings.Join(convertlib.ValidFormats(), ", "))
	Cmd.Flags().StringP("output", "o", "", "Output file, - for stdout")
	Cmd.Flags().String("dir", "", "Write the Figma files unpacked into a directory")
}

func run(cmd *cobra.Command, args []string) error {
	formatFlag, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")
	dir, _ := cmd.Flags().GetString("dir")

	format, err := convertlib.ParseFormat(formatFlag)
	if err != nil {
		return err
	}
	if dir != "" && format != convertlib.FormatZip {
		return fmt.Errorf("--dir writes Figma files and cannot be used with --format %s", format)
	}

	session, err := app.Open(cmd.Context())
	if err != nil {
		return err
	}
	defer session.Close()

	filesystem := fs.NewOSFileSystem()
	ws := session.Workspace

	if dir != "" {
		return writeDir(filesystem, ws, session.Syntax, dir)
	}

	var data []byte
	if format == convertlib.FormatZip {
		if output == "" {
			output = convertlib.ArchiveName
		}
		data, err = archive(ws, session.Syntax)
	} else {
		data, err = convertlib.FormatRows(ws.Rows(), format, formatter.Options{
			Syntax: session.Syntax,
			Table:  ws.Table(),
			Header: fmt.Sprintf("Generated by tokenbench %s. Do not edit.", version.Get()),
		})
	}
	if err != nil {
		return err
	}

	if output == "" || output == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := filesystem.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("error writing to %s: %w", output, err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", output)
	return nil
}

// errNothingToExport is returned when every group of the working set is empty.
var errNothingToExport = errors.New("nothing to export: every group is empty")

func exportFiles(ws *workspace.Workspace, syntax codesyntax.Syntax) ([]convertlib.File, error) {
	files, err := ws.Export(syntax)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errNothingToExport
	}
	return files, nil
}

func archive(ws *workspace.Workspace, syntax codesyntax.Syntax) ([]byte, error) {
	files, err := exportFiles(ws, syntax)
	if err != nil {
		return nil, err
	}
	modified := ws.Status().SavedAt
	if modified.IsZero() {
		modified = time.Now()
	}
	var buf bytes.Buffer
	if err := convertlib.WriteArchive(&buf, files, modified); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeDir(filesystem fs.FileSystem, ws *workspace.Workspace, syntax codesyntax.Syntax, dir string) error {
	files, err := exportFiles(ws, syntax)
	if err != nil {
		return err
	}
	if err := filesystem.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	for _, f := range files {
		path := filepath.Join(dir, f.Name)
		if err := filesystem.WriteFile(path, f.Data, 0644); err != nil {
			return fmt.Errorf("error writing to %s: %w", path, err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
	}
	return nil
}
