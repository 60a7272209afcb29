package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCategoryCmd(f *rootFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "category",
		Short: "Manage game categories",
	}

	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := f.env()
			if err != nil {
				return err
			}
			if _, err := env.Library.AddCategory(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Category %s ready\n", args[0])
			return nil
		},
	}

	rm := &cobra.Command{
		Use:   "rm <name>",
		Short: "Delete a category; its games become uncategorized",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := f.env()
			if err != nil {
				return err
			}
			if _, err := env.Library.DeleteCategory(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted category %s\n", args[0])
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := f.env()
			if err != nil {
				return err
			}
			lib, err := env.Library.GetLibrary()
			if err != nil {
				return err
			}
			for _, name := range lib.Categories {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	c.AddCommand(add, rm, list)
	return c
}
