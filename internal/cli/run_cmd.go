package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/internal/cli/formatter"
	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/internal/exercise"
	"github.com/spf13/cobra"
)

const progressWidth = 20

func newRunCmd(app *App) *cobra.Command {
	var step time.Duration
	var speed float64

	cmd := &cobra.Command{
		Use:   "run <exercise-id>",
		Short: "Play a guided exercise step by step",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid exercise id %q", args[0])
			}
			if speed <= 0 {
				return fmt.Errorf("--speed must be positive")
			}

			ex, err := app.Catalog.Exercise(id)
			if err != nil {
				return err
			}
			session, err := exercise.NewSession(ex.Steps, step)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header(ex.Title))
			if ex.Quote != "" {
				fmt.Fprintln(out, formatter.Dim(ex.Quote))
			}

			player := exercise.NewPlayer(session)
			defer player.Close()

			s := player.Start()
			printStep(out, s)

			// each wall-clock tick advances the session by one second
			ticker := time.NewTicker(time.Duration(float64(time.Second) / speed))
			defer ticker.Stop()

			ctx := cmd.Context()
			for {
				select {
				case <-ctx.Done():
					s = player.Pause()
					fmt.Fprintf(out, "\n%s at step %d of %d\n", formatter.Dim("Paused"), s.StepIndex()+1, s.StepCount())
					return nil
				case <-ticker.C:
					prev := s.StepIndex()
					s = player.Tick(time.Second)
					if s.Completed() {
						fmt.Fprintf(out, "%s %s\n", formatter.ProgressBar(1, progressWidth), formatter.Bold("Completed"))
						fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("Session time %s", s.Elapsed())))
						return nil
					}
					if s.StepIndex() != prev {
						printStep(out, s)
					}
				}
			}
		},
	}

	cmd.Flags().DurationVar(&step, "step", exercise.DefaultStepDuration, "Time spent on each step")
	cmd.Flags().Float64Var(&speed, "speed", 1, "Playback speed multiplier")

	return cmd
}

func printStep(out io.Writer, s exercise.Session) {
	fmt.Fprintf(out, "%s [%d/%d] %s\n",
		formatter.ProgressBar(float64(s.StepIndex())/float64(s.StepCount()), progressWidth),
		s.StepIndex()+1, s.StepCount(), s.StepText())
}
