package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/c360studio/semworld/command"
	"github.com/c360studio/semworld/config"
	"github.com/c360studio/semworld/world"
)

func playCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "play [files...]",
		Short: "Start an interactive session",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(flags)
			if err != nil {
				return err
			}
			return runPlay(cfg, args)
		},
	}
}

// buildWorld resolves the definition file patterns and loads them into
// a fresh model. Arguments override the configured patterns.
func buildWorld(cfg *config.Config, args []string) (*world.Model, *world.Applied, error) {
	patterns := cfg.World.Files
	if len(args) > 0 {
		patterns = args
	}
	paths, err := world.ResolveFiles(patterns)
	if err != nil {
		return nil, nil, err
	}

	m := world.NewModel(
		world.WithBaseIRI(cfg.World.BaseIRI),
		world.WithLogger(slog.Default()),
	)
	applied, err := world.LoadFiles(m, paths)
	if err != nil {
		return nil, nil, err
	}
	return m, applied, nil
}

// resolveActor picks the player the session controls: the first player
// a world file declared, or a new one in the first declared room.
func resolveActor(m *world.Model, applied *world.Applied, cfg *config.Config) (world.ID, error) {
	if len(applied.Players) > 0 {
		return applied.Players[0], nil
	}
	if len(applied.RoomKeys) == 0 {
		return "", fmt.Errorf("no rooms declared in world files")
	}
	start := applied.Rooms[applied.RoomKeys[0]]
	return m.CreatePlayer(cfg.Play.PlayerName, start), nil
}

// runPlay builds the world and runs the read-eval-print loop until the
// player quits or input ends.
func runPlay(cfg *config.Config, args []string) error {
	m, applied, err := buildWorld(cfg, args)
	if err != nil {
		return err
	}
	actor, err := resolveActor(m, applied, cfg)
	if err != nil {
		return err
	}

	session := uuid.New().String()
	slog.Info("Session started", "session", session, "player", string(actor))
	defer slog.Info("Session ended", "session", session)

	registry := command.NewDefaultRegistry()

	// Opening view of the starting room.
	fmt.Println(registry.Dispatch(m, actor, "look").Message)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(cfg.Play.Prompt)
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(input) {
		case "quit", "exit":
			fmt.Println("goodbye")
			return nil
		case "export":
			turtle, err := m.ExportWorld(context.Background())
			if err != nil {
				fmt.Println("export failed:", err)
			} else {
				fmt.Println(turtle)
			}
			continue
		}

		fmt.Println(registry.Dispatch(m, actor, input).Message)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}
