package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"go-game-library/constants"
	"go-game-library/icon"
	"go-game-library/installer"
	"go-game-library/launcher"
	"go-game-library/library"
	"go-game-library/types"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// consoleUI stands in for the desktop window on the command line.
type consoleUI struct {
	out    io.Writer
	env    *Env
	logger *zap.SugaredLogger
}

func (c *consoleUI) EventsEmit(eventName string, args ...interface{}) {
	if eventName == constants.EventInstallProgress && len(args) > 0 {
		if p, ok := args[0].(installer.Progress); ok {
			fmt.Fprintf(c.out, "\rInstalling... %3.0f%%", p.Percentage)
			return
		}
	}
	c.logger.Debugf("Event %s: %v", eventName, args)
}

func (c *consoleUI) BrowserOpenURL(url string) {
	if err := c.env.Shell.Start(url, nil); err != nil {
		c.logger.Errorf("Failed to open %s: %v", url, err)
	}
}

func newConsoleUI(cmd *cobra.Command, env *Env) *consoleUI {
	return &consoleUI{out: cmd.ErrOrStderr(), env: env, logger: env.Logger}
}

func newListCmd(f *rootFlags) *cobra.Command {
	var opts types.ViewOptions
	var output string
	c := &cobra.Command{
		Use:   "list",
		Short: "List installed games",
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
			return renderGames(cmd.OutOrStdout(), library.FilterGames(lib.Installed, opts), output)
		},
	}
	c.Flags().StringVar(&opts.Category, "category", library.CategoryAll, "only show games in this category")
	c.Flags().StringVar(&opts.Sort, "sort", library.SortName, "name, dateAdded or lastPlayed")
	c.Flags().StringVarP(&output, "output", "o", OutputTable, "table, json or yaml")
	return c
}

func newAddCmd(f *rootFlags) *cobra.Command {
	var name string
	c := &cobra.Command{
		Use:   "add <executable>",
		Short: "Register an installed game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := f.env()
			if err != nil {
				return err
			}
			path, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			in := types.GameInput{Path: path, Name: name}
			if in.Name == "" {
				in.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			}
			if uri, err := icon.Extract(path); err == nil {
				in.Image = &uri
			} else {
				env.Logger.Debugf("No icon for %s: %v", path, err)
			}

			lib, err := env.Library.AddGame(in)
			if err != nil {
				return err
			}
			added := lib.Installed[len(lib.Installed)-1]
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (id %d)\n", added.Name, added.ID)
			return nil
		},
	}
	c.Flags().StringVar(&name, "name", "", "display name (defaults to the file name)")
	return c
}

func newLaunchCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "launch <path|id>",
		Short: "Launch a game and record when it was played",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := f.env()
			if err != nil {
				return err
			}
			path, err := resolveGamePath(env, args[0])
			if err != nil {
				return err
			}
			l := launcher.New(env.Library, env.Shell, newConsoleUI(cmd, env), env.Logger)
			if _, err := l.Launch(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Started %s\n", path)
			env.Shell.Wait()
			return nil
		},
	}
}

// resolveGamePath accepts either a path or the id of an installed game.
func resolveGamePath(env *Env, arg string) (string, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return arg, nil
	}
	lib, err := env.Library.GetLibrary()
	if err != nil {
		return "", err
	}
	for _, g := range lib.Installed {
		if g.ID == id {
			return g.Path, nil
		}
	}
	return arg, nil
}

func newRmCmd(f *rootFlags) *cobra.Command {
	var kind string
	c := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a game or wishlist item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[0], err)
			}
			k, ok := types.ParseEntityKind(kind)
			if !ok {
				return fmt.Errorf("%w: unknown kind %q", library.ErrInvalidInput, kind)
			}
			env, err := f.env()
			if err != nil {
				return err
			}
			if _, err := env.Library.Delete(k, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d\n", id)
			return nil
		},
	}
	c.Flags().StringVar(&kind, "kind", string(types.KindAny), "game, wishlist or any")
	return c
}
