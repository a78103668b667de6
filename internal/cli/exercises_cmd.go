package cli

import (
	"fmt"

	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/internal/cli/formatter"
	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/internal/exercise"
	"github.com/spf13/cobra"
)

func newExercisesCmd(app *App) *cobra.Command {
	var filter exercise.Filter

	cmd := &cobra.Command{
		Use:   "exercises",
		Short: "List guided exercises",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			list := app.Catalog.Exercises(filter)
			if len(list) == 0 {
				fmt.Fprintln(out, formatter.Dim("No exercises match."))
				return nil
			}

			fmt.Fprintln(out, formatter.Header("Exercises"))
			for _, ex := range list {
				fmt.Fprintf(out, "%2d  %s  %s\n", ex.ID, formatter.Bold(ex.Title),
					formatter.Dim(fmt.Sprintf("%s · %s · %s · %d steps", ex.Category, ex.Difficulty, ex.Duration, len(ex.Steps))))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filter.Category, "category", "", "Breathing, Yoga, Meditation or Movement")
	cmd.Flags().StringVar(&filter.Difficulty, "difficulty", "", "Beginner, Intermediate or Advanced")

	return cmd
}
