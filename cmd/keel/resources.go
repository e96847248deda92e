package main

import (
	"bufio"
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/scottbass3/keel/internal/actions"
	"github.com/scottbass3/keel/internal/api"
	"github.com/scottbass3/keel/internal/listview"
	"github.com/scottbass3/keel/internal/resource"
)

var (
	tableHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Bold(true).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1)
	tableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

type listOptions struct {
	sort   string
	order  string
	search string
}

// listing is a rendered collection: column titles and formatted rows.
type listing struct {
	headers []string
	rows    [][]string
	noData  bool
}

func newListCommand(opts *options) *cobra.Command {
	var list listOptions
	cmd := &cobra.Command{
		Use:     "ls <resource>",
		Aliases: []string{"list"},
		Short:   "List " + strings.Join(resource.KindNames(), ", "),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := resource.ParseKind(args[0])
			if err != nil {
				return err
			}
			s, err := openSession(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			client, err := s.client()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), s.timeout)
			defer cancel()

			result, err := listKind(ctx, client, s.context.Node, kind, list)
			if err != nil {
				return fmt.Errorf("list %s: %s", kind.Slug(), api.Message(err))
			}
			out := cmd.OutOrStdout()
			switch {
			case result.noData:
				fmt.Fprintln(out, "No data")
			case len(result.rows) == 0:
				fmt.Fprintf(out, "No %s to display.\n", kind.Slug())
			default:
				fmt.Fprintln(out, renderTable(result.headers, result.rows))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&list.sort, "sort", "", "Column key to sort by")
	cmd.Flags().StringVar(&list.order, "order", "", "Sort order: asc or desc")
	cmd.Flags().StringVar(&list.search, "search", "", "Only show rows whose name contains this text")
	return cmd
}

func newRemoveCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <resource> <key>",
		Aliases: []string{"delete"},
		Short:   "Delete one image, network or volume by id or name",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := resource.ParseKind(args[0])
			if err != nil {
				return err
			}
			s, err := openSession(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			client, err := s.client()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), s.timeout)
			defer cancel()

			d := actions.New(client, s.context.Node, actions.WithLogger(s.logger), actions.WithCloseDelay(0))
			outcome, err := removeKind(ctx, d, client, kind, args[1])
			if err != nil {
				return err
			}
			return report(cmd.OutOrStdout(), outcome)
		},
	}
}

func newPruneCommand(opts *options) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "prune <resource>",
		Short: "Delete all unused images, networks or volumes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := resource.ParseKind(args[0])
			if err != nil {
				return err
			}
			s, err := openSession(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			client, err := s.client()
			if err != nil {
				return err
			}
			if !yes {
				question := fmt.Sprintf("Are you sure you want to delete all unused %s?", kind.Slug())
				if !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), question) {
					fmt.Fprintln(cmd.OutOrStdout(), "Canceled.")
					return nil
				}
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), s.timeout)
			defer cancel()

			d := actions.New(client, s.context.Node, actions.WithLogger(s.logger), actions.WithCloseDelay(0))
			outcome, err := pruneKind(ctx, d, kind)
			if err != nil {
				return err
			}
			return report(cmd.OutOrStdout(), outcome)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func listKind(ctx context.Context, client api.Client, node string, kind resource.Kind, opts listOptions) (listing, error) {
	switch kind {
	case resource.KindComposeLibrary:
		return listRows(ctx, client, node, resource.ComposeLibrary(), opts)
	case resource.KindImages:
		return listRows(ctx, client, node, resource.Images(), opts)
	case resource.KindNetworks:
		return listRows(ctx, client, node, resource.Networks(), opts)
	case resource.KindVolumes:
		return listRows(ctx, client, node, resource.Volumes(), opts)
	default:
		return listing{}, resource.ErrUnknownKind
	}
}

func listRows[T any](ctx context.Context, client api.Client, node string, desc resource.Descriptor[T], opts listOptions) (listing, error) {
	query, err := buildQuery(desc.Spec, opts)
	if err != nil {
		return listing{}, err
	}
	collection, err := desc.Load(ctx, client, node)
	if err != nil {
		return listing{}, err
	}

	result := listing{headers: make([]string, 0, len(desc.Spec.Columns))}
	for _, column := range desc.Spec.Columns {
		result.headers = append(result.headers, column.Title)
	}
	if collection.NoData() {
		result.noData = true
		return result, nil
	}
	for _, item := range listview.Derive(collection.Items, desc.Spec, query) {
		result.rows = append(result.rows, listview.Cells(desc.Spec, item))
	}
	return result, nil
}

func buildQuery[T any](spec listview.Spec[T], opts listOptions) (listview.Query, error) {
	query := listview.Query{Search: strings.TrimSpace(opts.search), Sort: spec.DefaultSort}
	if key := strings.TrimSpace(opts.sort); key != "" {
		if _, ok := spec.Column(key); !ok {
			return listview.Query{}, fmt.Errorf("unknown sort column %q (want one of %s)", key, strings.Join(spec.Keys(), ", "))
		}
		query.Sort = listview.Sort{Key: key, Order: listview.Ascending}
	}
	if opts.order != "" {
		order, ok := listview.ParseOrder(opts.order)
		if !ok {
			return listview.Query{}, fmt.Errorf("unknown sort order %q", opts.order)
		}
		query.Sort.Order = order
	}
	if query.Search != "" && !spec.Searchable() {
		return listview.Query{}, fmt.Errorf("search is not available for this resource")
	}
	return query, nil
}

func removeKind(ctx context.Context, d *actions.Dispatcher, client api.Client, kind resource.Kind, key string) (actions.Outcome, error) {
	switch kind {
	case resource.KindImages:
		return removeByKey(ctx, d, client, resource.Images(), key)
	case resource.KindNetworks:
		return removeByKey(ctx, d, client, resource.Networks(), key)
	case resource.KindVolumes:
		return removeByKey(ctx, d, client, resource.Volumes(), key)
	case resource.KindComposeLibrary:
		return actions.Outcome{}, fmt.Errorf("library projects cannot be deleted from keel")
	default:
		return actions.Outcome{}, resource.ErrUnknownKind
	}
}

// removeByKey looks the entity up first so the same rules as the list
// screens apply: entities in use and system networks are refused locally.
func removeByKey[T any](ctx context.Context, d *actions.Dispatcher, client api.Client, desc resource.Descriptor[T], key string) (actions.Outcome, error) {
	collection, err := desc.Load(ctx, client, d.NodeID())
	if err != nil {
		return actions.Outcome{}, fmt.Errorf("list %s: %s", desc.Plural, api.Message(err))
	}
	item, ok := desc.Find(collection.Items, key)
	if !ok {
		return actions.Outcome{}, fmt.Errorf("no %s with id or name %q", desc.Singular, key)
	}
	if !desc.CanDelete(item) {
		return actions.Outcome{}, fmt.Errorf("%s %q cannot be deleted", desc.Singular, desc.Label(item))
	}
	return actions.Remove(ctx, d, desc, item), nil
}

func pruneKind(ctx context.Context, d *actions.Dispatcher, kind resource.Kind) (actions.Outcome, error) {
	switch kind {
	case resource.KindImages:
		return actions.Prune(ctx, d, resource.Images()), nil
	case resource.KindNetworks:
		return actions.Prune(ctx, d, resource.Networks()), nil
	case resource.KindVolumes:
		return actions.Prune(ctx, d, resource.Volumes()), nil
	case resource.KindComposeLibrary:
		return actions.Outcome{}, fmt.Errorf("library projects cannot be pruned")
	default:
		return actions.Outcome{}, resource.ErrUnknownKind
	}
}

// report prints the notice and turns a failure into the command's error.
func report(out io.Writer, outcome actions.Outcome) error {
	if outcome.OK() {
		color.New(color.FgGreen).Fprintln(out, outcome.Notice.Text)
		return nil
	}
	return errors.New(cmp.Or(outcome.Notice.Text, "Request failed"))
}

func confirm(in io.Reader, out io.Writer, question string) bool {
	color.New(color.FgYellow).Fprintf(out, "%s [y/N] ", question)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		})
	return t.String()
}
