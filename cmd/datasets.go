package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gomech/internal/dataset"
	"github.com/alexiusacademia/gomech/internal/record"
)

var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "List the built-in property datasets",
	Long: `List every property dataset with its key columns and fields.

Each dataset can be replaced by a file named <dataset>.csv or
<dataset>.yaml in --data-dir, or by a table in the --sqlite file named
after the dataset with dashes replaced by underscores.`,
	Args: cobra.NoArgs,
	RunE: runDatasets,
}

var describeWidth int

var datasetsDescribeCmd = &cobra.Command{
	Use:   "describe <dataset>",
	Short: "Show the field reference of one dataset",
	Long: `Render the fields of a dataset as a markdown reference: source columns
and units per unit system, and accepted aliases.

Example:
  gomech datasets describe unified-thread`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := dataset.ByName(args[0])
		if err != nil {
			return err
		}
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(describeWidth),
		)
		if err != nil {
			return err
		}
		md, err := r.Render(datasetMarkdown(ds))
		if err != nil {
			return err
		}
		fmt.Fprint(out, md)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(datasetsCmd)
	datasetsCmd.AddCommand(datasetsDescribeCmd)
	datasetsDescribeCmd.Flags().IntVarP(&describeWidth, "width", "w", 100, "word wrap width")
}

func runDatasets(cmd *cobra.Command, args []string) error {
	printHeader("PROPERTY DATASETS")

	w := newTabWriter()
	fmt.Fprintln(w, "  NAME\tKEY\tDESCRIPTION")
	for _, ds := range dataset.All() {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", CmdStyle.Render(ds.Name), strings.Join(ds.Schema.Keys, " + "), ds.Description)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(out)

	if !verbose {
		fmt.Fprintln(out, SubtitleStyle.Render("  Use --verbose to list the fields of each dataset."))
		return nil
	}
	for _, ds := range dataset.All() {
		printSection(strings.ToUpper(ds.Name))
		w := newTabWriter()
		for _, f := range ds.Schema.Fields {
			fmt.Fprintf(w, "  %s\t%s\t%s\n", f.Name, describeField(f), strings.Join(f.Aliases, ", "))
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}
	return nil
}

func describeField(f record.Field) string {
	var kind string
	switch f.Kind {
	case record.KindQuantity:
		kind = "quantity"
	case record.KindScalar:
		kind = "number"
	default:
		kind = "text"
	}
	if f.Optional {
		kind += " (optional)"
	}
	return kind
}

// datasetMarkdown documents a dataset's schema as a markdown table.
func datasetMarkdown(ds dataset.Dataset) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s\n\n", ds.Name, ds.Description)
	fmt.Fprintf(&b, "Key: `%s`\n\n", strings.Join(ds.Schema.Keys, "` + `"))
	b.WriteString("| Field | Kind | SI | Imperial | Aliases |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, f := range ds.Schema.Fields {
		si, imp := "", ""
		if f.Kind == record.KindQuantity {
			si, imp = describeSource(f.SI), describeSource(f.Imperial)
		} else {
			si, imp = f.Column, f.Column
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			f.Name, describeField(f), si, imp, strings.Join(f.Aliases, ", "))
	}
	return b.String()
}

func describeSource(s record.Source) string {
	if s.Column == "" {
		return "-"
	}
	u := s.Unit
	if s.As != "" && s.As != s.Unit {
		u += " → " + s.As
	}
	return fmt.Sprintf("%s (%s)", s.Column, u)
}
