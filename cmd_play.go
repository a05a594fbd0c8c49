package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"warzone/communication"
	"warzone/engine"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game from the console or a command file",
	Long: `Reads commands such as "loadmap switzerland", "validatemap", "addplayer alice aggressive"
and "gamestart" from the console, or from a file with --file. Human players type their
orders on the same input.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("file")
		return runPlay(path)
	},
}

func init() {
	playCmd.Flags().StringP("file", "f", "", "Read commands from this file instead of the console")
	rootCmd.AddCommand(playCmd)
}

func runPlay(path string) error {
	src := communication.NewConsole(os.Stdin, os.Stdout)
	if path != "" {
		file, err := communication.OpenFile(path, os.Stdout)
		if err != nil {
			return err
		}
		defer file.Close()
		src = file.Console
	}

	sinks, closeLog, err := openSinks()
	if err != nil {
		return err
	}
	defer closeLog()

	options := append(cfg.EngineOptions(), engine.WithPrompter(src), engine.WithSinks(sinks...))
	e := engine.New(newLoader(), options...)
	src.Say("commands: %s", e.State().ValidCommands())
	e.Run(src)

	if err := src.Err(); err != nil {
		return fmt.Errorf("failed to read commands: %w", err)
	}
	if w := e.Winner(); w != nil {
		fmt.Printf("%s won after %d rounds\n", w.Name, e.Round())
	} else if e.State() >= engine.Win && e.Round() > 0 {
		fmt.Printf("draw after %d rounds\n", e.Round())
	}
	return nil
}
