// Package main provides the CLI entry point for gridspan-go.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukaji3/gridspan-go/pkg/gridspan"
	"github.com/ukaji3/gridspan-go/pkg/gridspan/models"
	"github.com/ukaji3/gridspan-go/pkg/gridspan/navigate"
	"github.com/ukaji3/gridspan-go/pkg/gridspan/output"
	"github.com/ukaji3/gridspan-go/pkg/gridspan/parser"
)

var (
	outputPath   string
	pretty       bool
	sheetName    string
	rangeRef     string
	policy       string
	editableOnly bool
	verbose      bool
	maxWidth     int
	fromCell     string
	direction    string
	rowOffset    int
	colOffset    int
	keys         string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gridspan",
		Short: "Inspect, navigate and edit merged-cell grids in Excel files",
		Long: `gridspan-go loads a worksheet as a merged-cell grid, resolves
merge-aware navigation targets and replays keyboard edit sessions.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&sheetName, "sheet", "", "Worksheet name (default: first sheet)")
	rootCmd.PersistentFlags().StringVar(&rangeRef, "range", "", "Grid range, e.g. A1:D10 (default: data bounds)")
	rootCmd.PersistentFlags().StringVar(&policy, "policy", "smart", "Navigation policy: smart, plain")
	rootCmd.PersistentFlags().BoolVar(&editableOnly, "editable-only", false, "Skip non-editable cells (default: true for plain)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log warnings and transitions to stderr")

	mapCmd := &cobra.Command{
		Use:   "map [input.xlsx]",
		Short: "Print the anchor map as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runMap,
	}
	mapCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	mapCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	showCmd := &cobra.Command{
		Use:   "show [input.xlsx]",
		Short: "Render the grid as text",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
	showCmd.Flags().IntVar(&maxWidth, "max-width", 24, "Truncate cell text to this width (0: no limit)")

	navCmd := &cobra.Command{
		Use:   "nav [input.xlsx]",
		Short: "Resolve a navigation target",
		Args:  cobra.ExactArgs(1),
		RunE:  runNav,
	}
	navCmd.Flags().StringVar(&fromCell, "from", "", "Start cell, e.g. B2 (required)")
	navCmd.Flags().StringVar(&direction, "dir", "next", "Direction: up, down, left, right, next")
	navCmd.Flags().IntVar(&rowOffset, "row-offset", 0, "Carried row offset (smart policy)")
	navCmd.Flags().IntVar(&colOffset, "col-offset", 0, "Carried column offset (smart policy)")
	_ = navCmd.MarkFlagRequired("from")

	editCmd := &cobra.Command{
		Use:   "edit [input.xlsx]",
		Short: "Replay a key sequence against the grid and save the result",
		Args:  cobra.ExactArgs(1),
		RunE:  runEdit,
	}
	editCmd.Flags().StringVar(&fromCell, "at", "", "Focused cell before the first key (default: first anchor)")
	editCmd.Flags().StringVar(&keys, "keys", "", `Comma separated keys, e.g. "Enter,type:42,Tab,Esc"`)
	editCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: overwrite input)")
	editCmd.Flags().IntVar(&maxWidth, "max-width", 24, "Truncate cell text to this width (0: no limit)")

	rootCmd.AddCommand(mapCmd, showCmd, navCmd, editCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func options(cmd *cobra.Command) (gridspan.Options, error) {
	opts := gridspan.DefaultOptions()
	opts.Sheet = sheetName
	opts.Range = rangeRef

	switch policy {
	case "smart":
		opts.Policy = gridspan.PolicySmart
	case "plain":
		opts.Policy = gridspan.PolicyPlain
	default:
		return opts, fmt.Errorf("invalid policy: %s (must be smart or plain)", policy)
	}
	if cmd.Flags().Changed("editable-only") {
		opts.EditableOnly = &editableOnly
	}

	if verbose {
		l := logrus.New()
		l.SetOutput(os.Stderr)
		l.SetLevel(logrus.DebugLevel)
		opts.Logger = l
	}
	return opts, nil
}

func load(cmd *cobra.Command, path string) (*models.Sheet, gridspan.Options, error) {
	opts, err := options(cmd)
	if err != nil {
		return nil, opts, err
	}
	sheet, err := gridspan.LoadSheet(path, opts)
	if err != nil {
		return nil, opts, fmt.Errorf("load failed: %w", err)
	}
	return sheet, opts, nil
}

func runMap(cmd *cobra.Command, args []string) error {
	sheet, _, err := load(cmd, args[0])
	if err != nil {
		return err
	}

	cells := gridspan.BuildCellMap(sheet.Rows, sheet.Columns)
	jsonData, err := output.ToJSON(output.NewSnapshot(cells), pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(jsonData))
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	sheet, _, err := load(cmd, args[0])
	if err != nil {
		return err
	}
	cells := gridspan.BuildCellMap(sheet.Rows, sheet.Columns)
	fmt.Print(output.RenderText(cells, sheet.Columns, output.TextOptions{MaxWidth: maxWidth}))
	return nil
}

func runNav(cmd *cobra.Command, args []string) error {
	sheet, opts, err := load(cmd, args[0])
	if err != nil {
		return err
	}
	dir, ok := navigate.ParseDirection(direction)
	if !ok {
		return fmt.Errorf("invalid direction: %s (must be up, down, left, right or next)", direction)
	}
	row, col, err := gridCoord(sheet, fromCell)
	if err != nil {
		return err
	}

	cells := gridspan.BuildCellMap(sheet.Rows, sheet.Columns)
	var target *models.Anchor
	if opts.Policy == gridspan.PolicyPlain {
		start := gridspan.ResolveCoordinate(row, col, cells)
		if start == nil {
			return fmt.Errorf("no cell at %s", fromCell)
		}
		target = gridspan.NavigateNext(start.Row, start.Col, dir, cells, opts)
	} else {
		ctx := navigate.Context{RowOffset: rowOffset, ColOffset: colOffset}
		if res, ok := gridspan.NavigateDirectional(row, col, dir, cells, ctx, opts); ok {
			target = res.Anchor
			defer fmt.Printf("row_offset=%d col_offset=%d\n", res.Context.RowOffset, res.Context.ColOffset)
		}
	}
	if target == nil {
		fmt.Println("no target")
		return nil
	}

	name, err := parser.CellName(sheet.Origin, target.Row, target.Col)
	if err != nil {
		return err
	}
	fmt.Printf("%s (row %d, col %d, %dx%d)\n", name, target.Row, target.Col, target.RowSpan, target.ColSpan)
	return nil
}

// gridCoord converts a worksheet cell name to grid coordinates.
func gridCoord(sheet *models.Sheet, cell string) (int, int, error) {
	area, err := parser.ParseRange(cell)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid cell %q: %w", cell, err)
	}
	return area.R1 - sheet.Origin.Row, area.C1 - sheet.Origin.Col, nil
}
