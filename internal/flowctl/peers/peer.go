package peers

import (
	"context"
	"fmt"
	"time"

	pb "github.com/ehsaniara/peerflow/api/gen"
	"github.com/ehsaniara/peerflow/internal/flowctl/common"

	"github.com/spf13/cobra"
)

const requestTimeout = 30 * time.Second

func NewPeerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "peer",
		Short: "Validate and register peers",
		Long: `Validate and register the databases mirrors read from and write to.

A peer is described in a YAML or JSON file:

  name: pg_source
  type: POSTGRES
  postgres_config:
    host: db.internal
    port: 5432
    user: replicator
    password: secret
    database: app`,
	}

	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newCreateCmd())
	return cmd
}

func newValidateCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "validate -f <peer.yaml>",
		Short: "Check a peer definition and whether the peer is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, file)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Peer definition file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newCreateCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "create -f <peer.yaml>",
		Short: "Validate a peer and store it in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, file)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Peer definition file")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runValidate(cmd *cobra.Command, file string) error {
	peer := &pb.Peer{}
	if err := common.LoadDefinition(file, peer); err != nil {
		return err
	}

	flowClient, err := common.NewFlowClient()
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	defer flowClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	resp, err := flowClient.ValidatePeer(ctx, peer)
	if err != nil {
		return fmt.Errorf("failed to validate peer: %v", err)
	}

	out := cmd.OutOrStdout()
	if common.JSONOutput {
		if err := common.PrintJSON(out, resp); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(out, "Peer %s (%s): %s\n", peer.GetName(), peer.GetType(), resp.GetStatus())
		if resp.GetMessage() != "" {
			fmt.Fprintf(out, "  %s\n", resp.GetMessage())
		}
	}

	if resp.GetStatus() != pb.ValidatePeerStatus_VALID {
		return fmt.Errorf("peer %s is not valid", peer.GetName())
	}
	return nil
}

func runCreate(cmd *cobra.Command, file string) error {
	peer := &pb.Peer{}
	if err := common.LoadDefinition(file, peer); err != nil {
		return err
	}

	flowClient, err := common.NewFlowClient()
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	defer flowClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	resp, err := flowClient.CreatePeer(ctx, peer)
	if err != nil {
		return fmt.Errorf("failed to create peer: %v", err)
	}

	out := cmd.OutOrStdout()
	if common.JSONOutput {
		if err := common.PrintJSON(out, resp); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(out, "Peer %s: %s\n", peer.GetName(), resp.GetStatus())
		if resp.GetMessage() != "" {
			fmt.Fprintf(out, "  %s\n", resp.GetMessage())
		}
	}

	if resp.GetStatus() != pb.CreatePeerStatus_CREATED {
		return fmt.Errorf("peer %s was not created", peer.GetName())
	}
	return nil
}
