package cli

import (
	"fmt"

	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/internal/cli/formatter"
	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/internal/service"
	"github.com/spf13/cobra"
)

func newAssessCmd(app *App) *cobra.Command {
	var req service.AssessmentRequest

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Score a stress check-in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Assessments.Assess(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			orb := formatter.OrbStyle(result.Color)

			fmt.Fprintln(out, formatter.Header("Stress check-in"))
			fmt.Fprintf(out, "Score     %s\n", orb.Render(fmt.Sprintf("%d / 100", result.Score)))
			fmt.Fprintf(out, "Category  %s\n", orb.Render(string(result.Category)))
			fmt.Fprintf(out, "Orb       %s %s\n\n", orb.Render("●"), formatter.Dim(fmt.Sprintf("%s at %.0f%%", result.Color, result.Intensity*100)))
			fmt.Fprintln(out, formatter.Bold("Recommendations"))
			fmt.Fprint(out, formatter.Bullets(result.Recommendations))
			return nil
		},
	}

	cmd.Flags().StringVar(&req.SleepHours, "sleep", "", "Hours slept last night")
	cmd.Flags().StringVar(&req.BloodPressure, "bp", "", "Blood pressure as systolic/diastolic")
	cmd.Flags().StringVar(&req.RespirationRate, "respiration", "", "Breaths per minute")
	cmd.Flags().StringVar(&req.MaxHeartRate, "max-hr", "", "Maximum heart rate in bpm")
	cmd.Flags().StringVar(&req.CaffeineIntake, "caffeine", "", "Caffeinated drinks today")
	cmd.Flags().StringVar(&req.MoodRating, "mood", "", "Mood from 1 to 10")
	_ = cmd.MarkFlagRequired("sleep")
	_ = cmd.MarkFlagRequired("bp")
	_ = cmd.MarkFlagRequired("respiration")
	_ = cmd.MarkFlagRequired("max-hr")

	return cmd
}
