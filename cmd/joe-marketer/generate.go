package main

import (
	"fmt"
	"os"

	"github.com/joestump/joe-marketer/internal/config"
	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	var (
		flags *briefFlags
		out   string
		save  bool
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate descriptions and hashtags once and print them",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := flags.brief()
			if err != nil {
				return err
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.LLM.Prompt, err = flags.templateSource(cfg.LLM.Prompt); err != nil {
				return err
			}
			ctrl, err := newController(cfg.LLM)
			if err != nil {
				return err
			}
			defer func() { _ = ctrl.Close() }()

			res, err := ctrl.Complete(cmd.Context(), b)
			if err != nil {
				return fmt.Errorf("generate: %w", err)
			}

			if out == "" && save {
				out = res.Filename()
			}
			if out == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Text)
				return err
			}
			if err := os.WriteFile(out, []byte(res.Text), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "saved %s\n", out)
			return nil
		},
	}
	flags = addBriefFlags(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the result to this file instead of stdout")
	cmd.Flags().BoolVar(&save, "save", false, "write the result to the default download filename")
	return cmd
}
