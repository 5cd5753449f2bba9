package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/templui/smartgoals/internal/config"
	"github.com/templui/smartgoals/internal/model"
	"github.com/templui/smartgoals/internal/service"
	"github.com/templui/smartgoals/internal/service/llm"
	"github.com/templui/smartgoals/internal/validation"
)

func SynthCmd() *cobra.Command {
	var req model.GoalRequest

	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Synthesize a SMART goal against the configured model without storing it",
		Example: `  do synth --prompt "get fit" --specific "Run 5km" --measurable "lose 10kg" \
    --achievable "daily runs" --relevant "health" --timebound "June"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := validation.ValidateGoalRequest(req)
			if err != nil {
				return err
			}

			cfg := config.Load()

			provider, err := llm.NewProvider(cfg)
			if err != nil {
				return err
			}

			synthesizer := service.NewSynthesizer(provider, cfg.SynthesisTimeout)
			syn := synthesizer.Synthesize(cmd.Context(), req.Responses, req.InitialPrompt)

			out, err := json.MarshalIndent(syn, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&req.InitialPrompt, "prompt", "", "initial goal in the user's words")
	flags.StringVar(&req.Responses.Specific, "specific", "", "what exactly should be accomplished")
	flags.StringVar(&req.Responses.Measurable, "measurable", "", "how progress is measured")
	flags.StringVar(&req.Responses.Achievable, "achievable", "", "the daily action that makes it achievable")
	flags.StringVar(&req.Responses.Relevant, "relevant", "", "why it matters")
	flags.StringVar(&req.Responses.Timebound, "timebound", "", "the deadline")

	return cmd
}
