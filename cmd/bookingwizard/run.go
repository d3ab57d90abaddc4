package main

import (
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	wizard "github.com/dhwrwm/intergalactic-booking-wizard"
	"github.com/dhwrwm/intergalactic-booking-wizard/internal/config"
	"github.com/dhwrwm/intergalactic-booking-wizard/internal/logging"
	"github.com/dhwrwm/intergalactic-booking-wizard/internal/presentation/tui"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the wizard interactively in the terminal",
	Long:  `Walks the three booking steps on stdin/stdout. With --session and a file or redis store, an interrupted run resumes where it left off.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}

		sessionID, _ := cmd.Flags().GetString("session")
		if sessionID == "" {
			sessionID = uuid.NewString()
		}

		debug, _ := cmd.Flags().GetBool("debug")
		level := slog.LevelWarn
		if debug {
			level = slog.LevelDebug
		}
		logger := logging.New(level)

		store, locker, err := buildStore(cfg)
		if err != nil {
			return err
		}

		opts := []wizard.Option{
			wizard.WithStore(store),
			wizard.WithLogger(logger),
		}
		if locker != nil {
			opts = append(opts, wizard.WithSessionLocker(locker))
		}
		w := wizard.New(opts...)

		runner := wizard.NewRunner(sessionID)
		runner.Input = os.Stdin
		runner.Output = os.Stdout
		runner.Renderer = tui.NewRenderer()

		return runner.Run(w)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringP("session", "s", "", "Session ID to resume (default: a fresh one)")
	runCmd.Flags().Bool("debug", false, "Enable debug logging")
}
