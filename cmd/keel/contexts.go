package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/scottbass3/keel/internal/contextstore"
)

func newContextsCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "contexts",
		Aliases: []string{"ctx"},
		Short:   "List configured backends",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			contexts, err := contextstore.NewService(s.path).Load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(contexts) == 0 {
				fmt.Fprintf(out, "No contexts configured in %s\n", s.path)
				return nil
			}
			rows := make([][]string, 0, len(contexts))
			for _, ctx := range contexts {
				marker := ""
				if ctx.Name == s.context.Name {
					marker = "*"
				}
				rows = append(rows, []string{marker, ctx.Name, ctx.API, ctx.Node})
			}
			fmt.Fprintln(out, renderTable([]string{"", "Name", "API", "Node"}, rows))
			return nil
		},
	}
	cmd.AddCommand(newContextAddCommand(opts), newContextRemoveCommand(opts))
	return cmd
}

func newContextAddCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <api> [node]",
		Short: "Add a backend",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			service := contextstore.NewService(s.path)
			existing, err := service.Load()
			if err != nil {
				return err
			}
			candidate := contextstore.Context{Name: args[0], API: args[1]}
			if len(args) == 3 {
				candidate.Node = args[2]
			}
			updated, index, err := service.Add(existing, candidate)
			if err != nil {
				return err
			}
			if err := service.Save(updated); err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Added context %s (%s)\n", updated[index].Name, updated[index].API)
			return nil
		},
	}
}

func newContextRemoveCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <name>",
		Aliases: []string{"remove"},
		Short:   "Remove a backend",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			service := contextstore.NewService(s.path)
			existing, err := service.Load()
			if err != nil {
				return err
			}
			updated, removed, _, err := service.RemoveByName(existing, args[0])
			if err != nil {
				return err
			}
			if err := service.Save(updated); err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Removed context %s\n", removed.Name)
			return nil
		},
	}
}
