package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/metalagman/todo/internal/render"
	"github.com/spf13/cobra"
)

var errNameRequired = errors.New("name is required")

// checkName rejects blank names. The store itself accepts any string, so the
// check lives here.
func checkName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errNameRequired
	}
	return nil
}

func addCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <description>",
		Short: "Add a pending task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkName(args[0]); err != nil {
				return err
			}
			t, err := a.store.Add(args[0], args[1])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "added %q\n", t.Name)
			return err
		},
	}
}

func editCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <name> <description>",
		Short: "Replace the description of a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkName(args[0]); err != nil {
				return err
			}
			t, err := a.store.Edit(args[0], args[1])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "updated %q\n", t.Name)
			return err
		},
	}
}

func tickCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "tick <name>",
		Aliases: []string{"done"},
		Short:   "Mark a task as done",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkName(args[0]); err != nil {
				return err
			}
			t, err := a.store.Tick(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ticked %q\n", t.Name)
			return err
		},
	}
}

func removeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <name>",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkName(args[0]); err != nil {
				return err
			}
			if err := a.store.Remove(args[0]); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "removed %q\n", args[0])
			return err
		},
	}
}

func listCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks in insertion order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tasks, err := a.store.List()
			if err != nil {
				return err
			}
			return render.Tasks(cmd.OutOrStdout(), tasks, a.renderOptions())
		},
	}
}

func showCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a single task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.store.Get(args[0])
			if err != nil {
				return err
			}
			return render.Task(cmd.OutOrStdout(), t, a.renderOptions())
		},
	}
}
