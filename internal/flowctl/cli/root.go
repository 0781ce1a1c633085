package cli

import (
	"fmt"

	"github.com/ehsaniara/peerflow/internal/flowctl/common"
	"github.com/ehsaniara/peerflow/internal/flowctl/mirrors"
	"github.com/ehsaniara/peerflow/internal/flowctl/peers"
	"github.com/ehsaniara/peerflow/pkg/config"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the flowctl command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "flowctl",
		Short: "flowctl - client for the peerflow mirror service",
		Long: `flowctl talks to a peerflow server over gRPC using the certificates
embedded in flowctl-config.yml.

Quick Examples:
  flowctl peer validate -f pg.yaml            # Check a peer definition
  flowctl peer create -f pg.yaml              # Register a peer
  flowctl mirror create-cdc -f orders.yaml    # Start a CDC mirror
  flowctl mirror status orders                # Show mirror progress
  flowctl --node=prod mirror status orders    # Ask another node

Use 'flowctl <command> --help' for detailed information about any command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "version" {
				return nil
			}

			var err error
			common.NodeConfig, err = config.LoadClientConfig(common.ConfigPath)
			if err != nil {
				return fmt.Errorf("%w\n\nPlease create a flowctl-config.yml file with the node address and embedded certificates", err)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&common.ConfigPath, "config", "",
		"Path to client configuration file (searches common locations if not specified)")
	rootCmd.PersistentFlags().StringVar(&common.NodeName, "node", "default",
		"Node name from configuration file")
	rootCmd.PersistentFlags().BoolVar(&common.JSONOutput, "json", false,
		"Output in JSON format")

	rootCmd.AddCommand(peers.NewPeerCmd())
	rootCmd.AddCommand(mirrors.NewMirrorCmd())
	rootCmd.AddCommand(NewNodesCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}
