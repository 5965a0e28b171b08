package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"advselect/internal/catalog"
	"advselect/internal/config"
	"advselect/internal/domain"
	"advselect/internal/engine"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "advselect %s\n", version)
		},
	}
}

func newRowsCmd(flags *globalFlags) *cobra.Command {
	var (
		query     string
		scrollTop int
		selected  []string
	)

	cmd := &cobra.Command{
		Use:   "rows",
		Short: "Print the rendered row window for a query and scroll offset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(config.NewConfigService(), flags)
			if err != nil {
				return err
			}
			items, err := catalog.Read(cmd.Context(), catalogSource(cfg, flags))
			if err != nil {
				return err
			}

			session, err := engine.NewSession(cfg.Options(), items, nil)
			if err != nil {
				return err
			}
			session.SetQuery(query)
			session.SetScrollTop(scrollTop)

			selection := engine.Normalize(selected)
			printRows(cmd.OutOrStdout(), session.Evaluate(selection), len(items), cfg.UI.Placeholder)
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "filter query")
	cmd.Flags().IntVar(&scrollTop, "scroll", 0, "scroll offset (same units as row_height)")
	cmd.Flags().StringSliceVar(&selected, "select", nil, "selected ids, comma separated")
	return cmd
}

func printRows(out io.Writer, view engine.View, total int, placeholder string) {
	fmt.Fprintf(out, "query %q: %s of %s items, %s rows\n",
		view.Query,
		humanize.Comma(int64(len(view.Filtered))),
		humanize.Comma(int64(total)),
		humanize.Comma(int64(len(view.Rows))))
	w := view.Window
	fmt.Fprintf(out, "window: rows [%d, %d) top=%d bottom=%d total=%d\n",
		w.StartIndex, w.EndIndex, w.TopPadding, w.BottomPadding, w.TotalHeight())

	for _, row := range view.VisibleRows {
		switch r := row.(type) {
		case domain.GroupHeader:
			fmt.Fprintf(out, "# %s\n", r.Group)
		case domain.ItemRow:
			box := "[ ]"
			if view.Selected[r.Item.ID] {
				box = "[x]"
			}
			fmt.Fprintf(out, "  %s %s (%s)\n", box, r.Item.Label, r.Item.ID)
		}
	}

	if view.SelectedCount == 0 {
		fmt.Fprintln(out, placeholder)
	} else {
		fmt.Fprintf(out, "%s selected\n", humanize.Comma(int64(view.SelectedCount)))
	}
	fmt.Fprintf(out, "all filtered selected: %t\n", view.AllFilteredSelected)
}

func newWindowCmd(flags *globalFlags) *cobra.Command {
	var rowCount, scrollTop int
	var rowHeight, viewport, overscan int

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Compute the virtualization window for a row count and scroll offset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(config.NewConfigService(), flags)
			if err != nil {
				return err
			}
			opts := cfg.Options()
			if cmd.Flags().Changed("row-height") {
				opts.RowHeight = rowHeight
			}
			if cmd.Flags().Changed("viewport") {
				opts.ViewportHeight = viewport
			}
			if cmd.Flags().Changed("overscan") {
				opts.Overscan = overscan
			}
			if err := opts.Validate(); err != nil {
				return err
			}

			w := engine.ComputeWindow(rowCount, opts.RowHeight, opts.ViewportHeight, scrollTop, opts.Overscan)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "start=%d end=%d rendered=%d\n", w.StartIndex, w.EndIndex, w.Len())
			fmt.Fprintf(out, "top=%d bottom=%d total=%d\n", w.TopPadding, w.BottomPadding, w.TotalHeight())
			return nil
		},
	}

	cmd.Flags().IntVar(&rowCount, "rows", 0, "number of rows")
	cmd.Flags().IntVar(&scrollTop, "scroll", 0, "scroll offset")
	cmd.Flags().IntVar(&rowHeight, "row-height", 0, "row height (default from config)")
	cmd.Flags().IntVar(&viewport, "viewport", 0, "viewport height (default from config)")
	cmd.Flags().IntVar(&overscan, "overscan", 0, "overscan rows (default from config)")
	return cmd
}

func newConfigCmd(flags *globalFlags) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := flags.configPath
			if path == "" {
				path = config.FileName
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("failed to check %s: %w", path, err)
			}

			if err := config.NewConfigService().SaveToPath(config.DefaultConfig(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	configCmd.AddCommand(initCmd)
	return configCmd
}

func newCatalogCmd() *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Work with catalog files",
	}

	var size int
	exportCmd := &cobra.Command{
		Use:   "export PATH",
		Short: "Write the synthetic demo catalog as a TOML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if size < 0 {
				return fmt.Errorf("size must be >= 0, got %d", size)
			}
			if err := catalog.WriteFile(args[0], catalog.Synthetic(size)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s items to %s\n", humanize.Comma(int64(size)), args[0])
			return nil
		},
	}
	exportCmd.Flags().IntVar(&size, "size", 128, "number of items")

	catalogCmd.AddCommand(exportCmd)
	return catalogCmd
}
