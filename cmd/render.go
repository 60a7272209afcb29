package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"go-game-library/types"
	"go-game-library/utils"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --output.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	starStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

func renderGames(w io.Writer, games []types.Game, format string) error {
	if format != OutputTable {
		return renderData(w, games, format)
	}
	rows := make([][]string, 0, len(games))
	for _, g := range games {
		category := ""
		if g.Category != nil {
			category = *g.Category
		}
		rows = append(rows, []string{
			strconv.FormatInt(g.ID, 10),
			favorite(g.IsFavorite) + g.Name,
			category,
			shortDate(g.LastPlayed),
			g.Path,
		})
	}
	return renderTable(w, []string{"ID", "NAME", "CATEGORY", "LAST PLAYED", "PATH"}, rows)
}

func renderWishlist(w io.Writer, items []types.WishlistItem, format string) error {
	if format != OutputTable {
		return renderData(w, items, format)
	}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			strconv.FormatInt(it.ID, 10),
			favorite(it.IsFavorite) + it.Name,
			shortDate(it.Added),
			it.URL,
			it.LocalPath,
		})
	}
	return renderTable(w, []string{"ID", "NAME", "ADDED", "URL", "LOCAL FILE"}, rows)
}

func renderTable(w io.Writer, headers []string, rows [][]string) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

// renderData writes v as JSON or YAML. YAML goes through JSON first so
// both formats use the same field names.
func renderData(w io.Writer, v any, format string) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case OutputYAML:
		raw, err := json.Marshal(v)
		if err != nil {
			return err
		}
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		var generic any
		if err := dec.Decode(&generic); err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(plainNumbers(generic)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want table, json or yaml)", format)
	}
}

// plainNumbers replaces json.Number values so ids stay integers in YAML.
func plainNumbers(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, e := range x {
			x[k] = plainNumbers(e)
		}
	case []any:
		for i, e := range x {
			x[i] = plainNumbers(e)
		}
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return n
		}
		if f, err := x.Float64(); err == nil {
			return f
		}
		return x.String()
	}
	return v
}

func favorite(fav bool) string {
	if fav {
		return starStyle.Render("★") + " "
	}
	return ""
}

func shortDate(ts string) string {
	t, err := utils.ParseTimestamp(ts)
	if err != nil || ts == "" {
		return ""
	}
	return t.Local().Format("2006-01-02 15:04")
}
