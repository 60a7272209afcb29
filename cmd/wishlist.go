package cmd

import (
	"fmt"
	"strconv"

	"go-game-library/icon"
	"go-game-library/installer"
	"go-game-library/library"
	"go-game-library/types"

	"github.com/spf13/cobra"
)

func newWishlistCmd(f *rootFlags) *cobra.Command {
	c := &cobra.Command{
		Use:   "wishlist",
		Short: "Manage games you want to buy or install",
	}
	c.AddCommand(newWishlistAddCmd(f), newWishlistListCmd(f), newWishlistInstallCmd(f))
	return c
}

func newWishlistAddCmd(f *rootFlags) *cobra.Command {
	var in types.WishlistInput
	c := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a wishlist item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := f.env()
			if err != nil {
				return err
			}
			in.Name = args[0]
			lib, err := env.Library.AddWishlistItem(in)
			if err != nil {
				return err
			}
			added := lib.Wishlist[len(lib.Wishlist)-1]
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s to the wishlist (id %d)\n", added.Name, added.ID)
			return nil
		},
	}
	c.Flags().StringVar(&in.URL, "url", "", "store page")
	c.Flags().StringVar(&in.LocalPath, "local-path", "", "downloaded archive or installer")
	return c
}

func newWishlistListCmd(f *rootFlags) *cobra.Command {
	var sortBy, output string
	c := &cobra.Command{
		Use:   "list",
		Short: "List the wishlist",
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
			return renderWishlist(cmd.OutOrStdout(), library.SortWishlist(lib.Wishlist, sortBy), output)
		},
	}
	c.Flags().StringVar(&sortBy, "sort", library.SortName, "name or dateAdded")
	c.Flags().StringVarP(&output, "output", "o", OutputTable, "table, json or yaml")
	return c
}

func newWishlistInstallCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "install <id>",
		Short: "Extract the item's local archive and move it to the installed games",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[0], err)
			}
			env, err := f.env()
			if err != nil {
				return err
			}
			ui := newConsoleUI(cmd, env)
			inst := installer.New(env.Library, env.Config, ui, env.Logger, icon.Extract)
			lib, err := inst.Install(id)
			fmt.Fprintln(ui.out)
			if err != nil {
				return err
			}
			game := lib.Installed[len(lib.Installed)-1]
			fmt.Fprintf(cmd.OutOrStdout(), "Installed %s at %s\n", game.Name, game.Path)
			return nil
		},
	}
}
