package main

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"furrow"
	nt "furrow/entity"
	"furrow/filter"
	"furrow/jobspanel"
	"furrow/mock"
	"furrow/style"
	"furrow/util"
)

func newBrowseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse listings in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {

			ctx := a.ctx(cmd)
			lgr, closer, err := a.logger()
			if err != nil {
				return
			}
			defer closer()

			store, err := loadedStore(ctx, a.cfg, lgr)
			if err != nil {
				return
			}
			defer store.Close()

			layout, err := furrow.LoadLayout(a.cfg.Layout)
			if err != nil {
				return
			}

			model, err := furrow.NewModel(ctx, store, layout, lgr)
			if err != nil {
				return
			}
			model.LayoutPath = a.cfg.Layout

			lgr.Info(ctx, "starting browser", "store", store.Name())
			_, err = tea.NewProgram(model, tea.WithContext(ctx)).Run()
			err = errors.Wrapf(err, "failed to run browser")
			return
		},
	}
}

func newListCmd(a *app) *cobra.Command {

	ctl := filter.Controls{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List listings matching the work list controls",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {

			ctx := a.ctx(cmd)
			lgr, closer, err := a.logger()
			if err != nil {
				return
			}
			defer closer()

			store, err := loadedStore(ctx, a.cfg, lgr)
			if err != nil {
				return
			}
			defer store.Close()

			layout, err := furrow.LoadLayout(a.cfg.Layout)
			if err != nil {
				return
			}

			jobs, err := store.Query(ctx, ctl.Set())
			if err != nil {
				return
			}

			if len(jobs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), jobspanel.NoJobs)
				return
			}
			fmt.Fprintln(cmd.OutOrStdout(), jobsTable(layout.Columns, jobs))
			return
		},
	}

	cmd.Flags().StringVar(&ctl.Search, "search", "", "Search titles and descriptions")
	cmd.Flags().StringVar(&ctl.Category, "category", "", "Category, or Any")
	cmd.Flags().StringVar(&ctl.Distance, "distance", "", "Maximum distance in km, or Any")
	cmd.Flags().StringVar(&ctl.Tag, "tag", "", "Tag, or Any")
	cmd.Flags().StringVar(&ctl.Status, "status", "", "Status, or Any")

	return cmd
}

func newFacetsCmd(a *app) *cobra.Command {

	ctl := filter.Controls{}

	cmd := &cobra.Command{
		Use:   "facets FIELD",
		Short: "Count listings per value of a field",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {

			ctx := a.ctx(cmd)
			lgr, closer, err := a.logger()
			if err != nil {
				return
			}
			defer closer()

			store, err := loadedStore(ctx, a.cfg, lgr)
			if err != nil {
				return
			}
			defer store.Close()

			counts, err := store.Facets(ctx, ctl.Set(), args[0])
			if err != nil {
				return
			}

			tbl := table.New()
			style.StyleTable(tbl)
			tbl.Headers(args[0], "count")
			for _, vc := range counts {
				tbl.Row(vc.Value, fmt.Sprintf("%d", vc.Count))
			}
			fmt.Fprintln(cmd.OutOrStdout(), tbl.Render())
			return
		},
	}

	cmd.Flags().StringVar(&ctl.Search, "search", "", "Search titles and descriptions")
	cmd.Flags().StringVar(&ctl.Category, "category", "", "Category, or Any")
	cmd.Flags().StringVar(&ctl.Distance, "distance", "", "Maximum distance in km, or Any")
	cmd.Flags().StringVar(&ctl.Tag, "tag", "", "Tag, or Any")
	cmd.Flags().StringVar(&ctl.Status, "status", "", "Status, or Any")

	return cmd
}

func newSampleCmd(a *app) *cobra.Command {

	var (
		count int
		seed  int64
		out   string
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write sample listings as yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {

			jobs := mock.Sample()
			if count > 0 {
				var generated []nt.Job
				generated, err = mock.Generate(count, seed)
				if err != nil {
					return
				}
				jobs = append(jobs, generated...)
			}

			if out != "" {
				return util.WriteYaml(jobs, out, fileMode)
			}
			return writeYaml(cmd, jobs)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0, "Random listings to add")
	cmd.Flags().Int64Var(&seed, "seed", 1, "Random seed")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file, default stdout")

	return cmd
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init PATH",
		Short: "Write a sample config file unless one exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {

			written, err := util.SampleConfig(sampleConfig, args[0], fileMode)
			if err != nil {
				return
			}
			if !written {
				fmt.Fprintf(cmd.OutOrStdout(), "%s exists, leaving it be\n", args[0])
				return
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return
		},
	}
}

func jobsTable(columns []nt.Column, jobs []nt.Job) string {

	tbl := table.New()
	style.StyleTable(tbl)

	var headers []string
	for _, col := range columns {
		if !col.Hidden {
			headers = append(headers, col.Heading())
		}
	}
	tbl.Headers(headers...)

	for _, job := range jobs {
		var row []string
		for _, col := range columns {
			if !col.Hidden {
				row = append(row, jobspanel.Format(job, col.Field))
			}
		}
		tbl.Row(row...)
	}

	return tbl.Render()
}

func writeYaml(cmd *cobra.Command, v any) (err error) {

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)

	err = enc.Encode(v)
	if err != nil {
		err = errors.Wrapf(err, "failed to encode yaml")
		return
	}

	err = enc.Close()
	err = errors.Wrapf(err, "failed to flush yaml")
	return
}
