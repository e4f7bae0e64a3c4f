// Package main provides the CLI entry point for gridsheet-go.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/models"
	"github.com/ukaji3/gridsheet-go/pkg/gridsheet/parser"
)

var (
	outputPath string
	printArea  bool
	debug      bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gridsheet",
		Short: "Render table layouts with merged cells into xlsx files",
		Long: `gridsheet-go reads a JSON workbook definition (rows of cells that may
span several columns and rows) and renders it into an xlsx file.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Print debug traces to stderr")

	renderCmd := &cobra.Command{
		Use:   "render [input.json]",
		Short: "Render a workbook definition into an xlsx file",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}
	renderCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: input name with .xlsx)")
	renderCmd.Flags().BoolVar(&printArea, "print-area", false, "Set each sheet's print area to its grid")

	previewCmd := &cobra.Command{
		Use:   "preview [input.json]",
		Short: "Print the resolved grids as text tables",
		Args:  cobra.ExactArgs(1),
		RunE:  runPreview,
	}

	checkCmd := &cobra.Command{
		Use:   "check [input.json]",
		Short: "Validate that merged cells fit together",
		Args:  cobra.ExactArgs(1),
		RunE:  runCheck,
	}

	rootCmd.AddCommand(renderCmd, previewCmd, checkCmd)
	return rootCmd
}

func options() gridsheet.Options {
	opts := gridsheet.DefaultOptions()
	opts.PrintArea = printArea
	opts.Logger = gridsheet.NewLogger(debug)
	return opts
}

func load(inputPath string) (*models.Document, error) {
	// Validate input file exists
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", inputPath)
	}

	doc, err := parser.ParseFile(inputPath)
	if err != nil {
		return nil, fmt.Errorf("parse failed: %w", err)
	}
	return doc, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	doc, err := load(args[0])
	if err != nil {
		return err
	}

	path := outputPath
	if path == "" {
		path = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".xlsx"
	}
	if err := gridsheet.RenderFile(doc, path, options()); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	doc, err := load(args[0])
	if err != nil {
		return err
	}
	return gridsheet.Preview(doc, cmd.OutOrStdout(), options())
}

func runCheck(cmd *cobra.Command, args []string) error {
	doc, err := load(args[0])
	if err != nil {
		return err
	}
	if err := gridsheet.Check(doc, options()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d sheet(s) ok\n", args[0], len(doc.Sheets))
	return nil
}
