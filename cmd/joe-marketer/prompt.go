package main

import (
	"fmt"

	"github.com/joestump/joe-marketer/internal/llm"
	"github.com/spf13/cobra"
)

func newPromptCmd() *cobra.Command {
	var flags *briefFlags
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print the prompt that would be sent, without calling the model",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := flags.brief()
			if err != nil {
				return err
			}
			src, err := flags.templateSource("")
			if err != nil {
				return err
			}
			pb, err := llm.NewPromptBuilder(src)
			if err != nil {
				return err
			}
			p, err := pb.Build(b)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "# system\n%s\n\n# user\n%s\n", p.System, p.User)
			return nil
		},
	}
	flags = addBriefFlags(cmd)
	return cmd
}
