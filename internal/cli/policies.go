package cli

import (
	"github.com/spf13/cobra"

	"cpusched/internal/render"
	"cpusched/internal/sched"
)

func newPoliciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "policies",
		Short: "List the registered policy keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return render.Policies(cmd.OutOrStdout(), sched.DefaultRegistry())
		},
	}
}
