package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"darkconsole/pkg/engine/world"
	"darkconsole/pkg/game/computer"
	"darkconsole/pkg/game/content"
	"darkconsole/pkg/game/devtools"
	"darkconsole/pkg/game/station"
)

func inspectCmd() *cobra.Command {
	var templates string
	var dumpMap bool
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "List the terminals of the station with their options and failures",
		RunE: func(cmd *cobra.Command, args []string) error {
			if templates != "" {
				return inspectTemplates(templates)
			}
			st, err := loadStation()
			if err != nil {
				return err
			}
			w, err := station.New(st, station.NewConsole(os.Stdout, station.NewScripted(), cfg.Width), cfg.Rand())
			if err != nil {
				return err
			}
			if dumpMap {
				devtools.DumpMap(os.Stdout, w)
				return nil
			}
			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.SetTitle(w.Name)
			tw.AppendHeader(table.Row{"#", "Terminal", "At", "Security", "Mission", "Options", "Failures"})
			for i, t := range w.Terminals() {
				tw.AppendRow(terminalRow(i+1, t.At, t.Computer))
			}
			tw.Render()
			return nil
		},
	}
	cmd.Flags().StringVar(&templates, "templates", "", "inspect a yaml list of terminal templates instead")
	cmd.Flags().BoolVar(&dumpMap, "map", false, "print a debug dump of the level instead")
	return cmd
}

func inspectTemplates(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	tmpls, err := content.LoadTemplates(data)
	if err != nil {
		return err
	}
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.AppendHeader(table.Row{"#", "Terminal", "At", "Security", "Mission", "Options", "Failures"})
	for i, tmpl := range tmpls {
		c, err := tmpl.Build()
		if err != nil {
			return err
		}
		tw.AppendRow(terminalRow(i+1, world.Point{}, c))
	}
	tw.Render()
	return nil
}

func terminalRow(n int, at world.Point, c *computer.Computer) table.Row {
	var options, failures []string
	for _, opt := range c.Options() {
		options = append(options, fmt.Sprintf("%s (%s, %d)", opt.Name, opt.Action, opt.Security))
	}
	for _, f := range c.Failures() {
		failures = append(failures, f.Type.String())
	}
	mission := "-"
	if c.MissionID != computer.NoMission {
		mission = strconv.Itoa(c.MissionID)
	}
	return table.Row{n, c.Name, fmt.Sprintf("%d,%d,%d", at.X, at.Y, at.Z), c.Security, mission,
		actionList(options), actionList(failures)}
}

// actionList puts one entry per line in a table cell
func actionList(names []string) string {
	return strings.Join(names, "\n")
}

func storeCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "store", Short: "Manage saved terminals"}
	cmd.AddCommand(storePutCmd())
	cmd.AddCommand(storeGetCmd())
	cmd.AddCommand(storeListCmd())
	cmd.AddCommand(storeImportCmd())
	cmd.AddCommand(storeDeleteCmd())
	return cmd
}

func parsePoint(args []string) (world.Point, error) {
	var v [3]int
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return world.Point{}, fmt.Errorf("invalid coordinate %q: %w", a, err)
		}
		v[i] = n
	}
	return world.Point{X: v[0], Y: v[1], Z: v[2]}, nil
}

func storePutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "put",
		Short: "Save every terminal of the station",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := loadStation()
			if err != nil {
				return err
			}
			w, err := station.New(st, station.NewConsole(os.Stdout, station.NewScripted(), cfg.Width), cfg.Rand())
			if err != nil {
				return err
			}
			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()
			terms := w.Terminals()
			for _, t := range terms {
				id, err := s.Put(cmd.Context(), w.Name, t.At, t.Computer)
				if err != nil {
					return err
				}
				fmt.Printf("%s  %s\n", id, t.Computer.Name)
			}
			fmt.Printf("Saved %d %s.\n", len(terms), plural(len(terms), "terminal", "terminals"))
			return nil
		},
	}
}

func storeGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get X Y Z",
		Short: "Print the saved terminal at a position",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePoint(args)
			if err != nil {
				return err
			}
			st, err := loadStation()
			if err != nil {
				return err
			}
			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()
			c, err := s.Get(cmd.Context(), st.Name, p)
			if err != nil {
				return err
			}
			data, err := computer.Encode(c)
			if err != nil {
				return err
			}
			var out bytes.Buffer
			if err := json.Indent(&out, data, "", "  "); err != nil {
				return err
			}
			fmt.Println(out.String())
			return nil
		},
	}
}

func storeListCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved terminals",
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if !all {
				st, err := loadStation()
				if err != nil {
					return err
				}
				name = st.Name
			}
			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()
			entries, err := s.List(cmd.Context(), name)
			if err != nil {
				return err
			}
			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"ID", "Station", "At", "Name", "Legacy", "Updated"})
			for _, e := range entries {
				tw.AppendRow(table.Row{e.ID, e.Station, fmt.Sprintf("%d,%d,%d", e.Pos.X, e.Pos.Y, e.Pos.Z), e.Name, e.Legacy, e.UpdatedAt})
			}
			tw.Render()
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "list the terminals of every station")
	return cmd
}

func storeImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE X Y Z",
		Short: "Save terminal data from a file, in the structured or the legacy format",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			p, err := parsePoint(args[1:])
			if err != nil {
				return err
			}
			st, err := loadStation()
			if err != nil {
				return err
			}
			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()
			id, err := s.PutRaw(cmd.Context(), st.Name, p, bytes.TrimSpace(data))
			if err != nil {
				return err
			}
			fmt.Println(id)
			return nil
		},
	}
}

func storeDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete X Y Z",
		Short: "Delete the saved terminal at a position",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePoint(args)
			if err != nil {
				return err
			}
			st, err := loadStation()
			if err != nil {
				return err
			}
			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()
			return s.Delete(cmd.Context(), st.Name, p)
		},
	}
}
