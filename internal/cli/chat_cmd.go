package cli

import (
	"fmt"
	"strings"

	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chat <message>",
		Short: "Talk to the support assistant",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reply, err := app.Chat.Reply(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, reply.Reply)
			if len(reply.Suggestions) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, formatter.Dim("You could say:"))
				fmt.Fprint(out, formatter.Bullets(reply.Suggestions))
			}
			return nil
		},
	}
}
