package cli

import (
	"encoding/json"
	"fmt"

	"github.com/ehsaniara/peerflow/internal/flowctl/common"
	"github.com/ehsaniara/peerflow/pkg/version"

	"github.com/spf13/cobra"
)

func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show flowctl version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if common.JSONOutput {
				data, err := json.MarshalIndent(version.GetBuildInfo("flowctl"), "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), version.GetLongVersion("flowctl"))
			return nil
		},
	}
}
