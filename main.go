package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"darkconsole/pkg/engine/input"
	"darkconsole/pkg/game/config"
	"darkconsole/pkg/game/content"
	"darkconsole/pkg/game/devtools"
	"darkconsole/pkg/game/menu"
	"darkconsole/pkg/game/renderer"
	"darkconsole/pkg/game/station"
	"darkconsole/pkg/game/store"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "darkconsole",
	Short: "Station computer terminals",
	Long: `darkconsole runs the computer terminals of a station section.
Each terminal offers a menu of options guarded by a security level. Operators without clearance
can try to hack in, and failed attempts trigger the terminal's failures.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("config")
		c, err := config.Load(viper.GetViper(), file)
		if err != nil {
			return err
		}
		cfg = c
		return nil
	},
}

func main() {
	addPersistentFlags()
	registerCommands()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func addPersistentFlags() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file")
	flags.String(config.KeyStation, "", "station yaml file (defaults to the built in station)")
	flags.String(config.KeySavePath, "darkconsole.db", "save database")
	flags.Int64(config.KeySeed, 0, "random seed, 0 seeds from the clock")
	flags.Int(config.KeyWidth, 0, "console width, 0 asks the terminal")
	for _, key := range []string{config.KeyStation, config.KeySavePath, config.KeySeed, config.KeyWidth} {
		_ = viper.BindPFlag(key, flags.Lookup(key))
	}
}

func registerCommands() {
	rootCmd.AddCommand(playCmd())
	rootCmd.AddCommand(inspectCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(storeCmd())
	rootCmd.AddCommand(keysCmd())
}

func keysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Show the keys the terminal console answers to",
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer.InitColors()
			menu.PrintBindings(os.Stdout)
			return nil
		},
	}
}

func loadStation() (*content.Station, error) {
	if cfg.Station == "" {
		return content.Default(), nil
	}
	return content.FromFile(cfg.Station)
}

func playCmd() *cobra.Command {
	var terminalNo int
	var save, dump bool
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Log into a terminal of the station",
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer.InitColors()

			st, err := loadStation()
			if err != nil {
				return err
			}
			con := station.NewConsole(os.Stdout, station.StdinPrompter{}, cfg.Width)
			con.ClearScreen = renderer.Clear
			w, err := station.New(st, con, cfg.Rand())
			if err != nil {
				return err
			}

			var s *store.Store
			if save {
				if s, err = openStore(); err != nil {
					return err
				}
				defer s.Close()
				if err := restoreTerminals(cmd, s, w); err != nil {
					return err
				}
			}

			t, ok := pickTerminal(w, terminalNo)
			if !ok {
				return sessionErr(con.Err())
			}
			if !w.StandAt(t.At) {
				return fmt.Errorf("no room to stand at %s", t.Computer.Name)
			}

			cfg.Session(cfg.Engine(cfg.Rand()), t.Computer, w).Use()

			renderer.PrintStatusBar(os.Stdout, w.Game)
			renderer.PrintMessagesPane(os.Stdout, w.Game)

			if dump {
				path, err := devtools.DumpMapToFile(w)
				if err != nil {
					return err
				}
				fmt.Println("Map dumped to", path)
			}

			if s != nil {
				for _, t := range w.Terminals() {
					if _, err := s.Put(cmd.Context(), w.Name, t.At, t.Computer); err != nil {
						return err
					}
				}
			}
			return sessionErr(con.Err())
		},
	}
	cmd.Flags().IntVarP(&terminalNo, "terminal", "t", 0, "terminal number, 0 shows a menu")
	cmd.Flags().BoolVar(&save, "save", false, "load and save terminals in the save database")
	cmd.Flags().BoolVar(&dump, "dump", false, "write a debug dump of the level to "+devtools.MapDumpFilename+" after the session")
	return cmd
}

// sessionErr drops the errors that end a session normally
func sessionErr(err error) error {
	if err == nil || errors.Is(err, io.EOF) || errors.Is(err, input.ErrInterrupted) {
		return nil
	}
	return err
}

func pickTerminal(w *station.World, n int) (station.Terminal, bool) {
	terms := w.Terminals()
	if len(terms) == 0 {
		w.PrintError("No terminals on this level.")
		return station.Terminal{}, false
	}
	if n > 0 {
		if n > len(terms) {
			w.PrintError("There is no terminal %d.", n)
			return station.Terminal{}, false
		}
		return terms[n-1], true
	}
	names := make([]string, len(terms))
	for i, t := range terms {
		names[i] = t.Computer.Name
	}
	i, ok := w.Choose(w.Name, names)
	if !ok {
		return station.Terminal{}, false
	}
	return terms[i], true
}

// restoreTerminals replaces the station's terminals with their saved state
func restoreTerminals(cmd *cobra.Command, s *store.Store, w *station.World) error {
	for _, t := range w.Terminals() {
		c, err := s.Get(cmd.Context(), w.Name, t.At)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		w.SetTerminal(t.At, c)
	}
	return nil
}

func openStore() (*store.Store, error) {
	s, err := store.Open(cfg.SavePath)
	if err != nil {
		return nil, err
	}
	if err := s.Migrate(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Migrate the save database and upgrade legacy terminals",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()
			n, err := s.Upgrade(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Upgraded %d legacy %s.\n", n, plural(n, "terminal", "terminals"))
			return nil
		},
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
