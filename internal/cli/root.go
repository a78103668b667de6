package cli

import (
	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/internal/exercise"
	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services used by CLI commands.
type App struct {
	Assessments *service.AssessmentService
	Chat        *service.ChatService
	Catalog     *exercise.Catalog
}

// NewRootCmd creates the top-level "calmctl" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "calmctl",
		Short:         "Stress check-ins, supportive chat and guided exercises from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newAssessCmd(app),
		newChatCmd(app),
		newExercisesCmd(app),
		newRunCmd(app),
	)

	return root
}
