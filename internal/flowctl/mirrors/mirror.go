package mirrors

import (
	"context"
	"fmt"
	"time"

	pb "github.com/ehsaniara/peerflow/api/gen"
	"github.com/ehsaniara/peerflow/internal/flowctl/common"

	"github.com/spf13/cobra"
)

const requestTimeout = 30 * time.Second

func NewMirrorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mirror",
		Short: "Create, inspect and shut down mirrors",
		Long: `Create, inspect and shut down mirrors.

CDC mirrors stream changes from a Postgres source; QRep mirrors copy the
result of a query in partitions.

Examples:
  flowctl mirror create-cdc -f orders-cdc.yaml
  flowctl mirror create-qrep -f orders-copy.yaml --catalog=false
  flowctl mirror status orders
  flowctl mirror shutdown orders --workflow-id orders-peerflow-<uuid> --source pg.yaml`,
	}

	cmd.AddCommand(newCreateCDCCmd())
	cmd.AddCommand(newCreateQRepCmd())
	cmd.AddCommand(NewStatusCmd())
	cmd.AddCommand(newShutdownCmd())
	return cmd
}

func newCreateCDCCmd() *cobra.Command {
	var (
		file    string
		catalog bool
	)
	cmd := &cobra.Command{
		Use:   "create-cdc -f <mirror.yaml>",
		Short: "Start a change data capture mirror",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := &pb.FlowConnectionConfigs{}
			if err := common.LoadDefinition(file, cfg); err != nil {
				return err
			}

			flowClient, err := common.NewFlowClient()
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}
			defer flowClient.Close()

			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()

			resp, err := flowClient.CreateCDCFlow(ctx, cfg, catalog)
			if err != nil {
				return fmt.Errorf("failed to create cdc mirror: %v", err)
			}

			if common.JSONOutput {
				return common.PrintJSON(cmd.OutOrStdout(), resp)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "CDC mirror %s started\nWorkflow ID: %s\n", cfg.GetFlowJobName(), resp.GetWorflowId())
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Mirror definition file")
	cmd.Flags().BoolVar(&catalog, "catalog", true, "Record the mirror in the catalog")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newCreateQRepCmd() *cobra.Command {
	var (
		file    string
		catalog bool
	)
	cmd := &cobra.Command{
		Use:   "create-qrep -f <qrep.yaml>",
		Short: "Start a query replication mirror",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := &pb.QRepConfig{}
			if err := common.LoadDefinition(file, cfg); err != nil {
				return err
			}

			flowClient, err := common.NewFlowClient()
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}
			defer flowClient.Close()

			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()

			resp, err := flowClient.CreateQRepFlow(ctx, cfg, catalog)
			if err != nil {
				return fmt.Errorf("failed to create qrep mirror: %v", err)
			}

			if common.JSONOutput {
				return common.PrintJSON(cmd.OutOrStdout(), resp)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "QRep mirror %s started\nWorkflow ID: %s\n", cfg.GetFlowJobName(), resp.GetWorflowId())
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "QRep definition file")
	cmd.Flags().BoolVar(&catalog, "catalog", true, "Record the mirror in the catalog")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newShutdownCmd() *cobra.Command {
	var workflowID, sourceFile, destinationFile string
	cmd := &cobra.Command{
		Use:   "shutdown <flow-job-name> --workflow-id <id>",
		Short: "Stop a mirror and clean up its peers",
		Long: `Stop the mirror's workflow, then drop what it left on the peers:
the replication slot and publication on a Postgres source, the raw table
on a Snowflake destination. Peers are only cleaned when given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &pb.ShutdownRequest{WorkflowId: workflowID, FlowJobName: args[0]}
			if sourceFile != "" {
				req.SourcePeer = &pb.Peer{}
				if err := common.LoadDefinition(sourceFile, req.SourcePeer); err != nil {
					return err
				}
			}
			if destinationFile != "" {
				req.DestinationPeer = &pb.Peer{}
				if err := common.LoadDefinition(destinationFile, req.DestinationPeer); err != nil {
					return err
				}
			}

			flowClient, err := common.NewFlowClient()
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}
			defer flowClient.Close()

			resp, err := flowClient.ShutdownFlow(context.Background(), req)
			if err != nil {
				return fmt.Errorf("failed to shut down mirror: %v", err)
			}

			if common.JSONOutput {
				if err := common.PrintJSON(cmd.OutOrStdout(), resp); err != nil {
					return err
				}
			}
			if !resp.GetOk() {
				return fmt.Errorf("mirror %s did not shut down cleanly: %s", args[0], resp.GetErrorMessage())
			}
			if !common.JSONOutput {
				fmt.Fprintf(cmd.OutOrStdout(), "Mirror %s shut down\n", args[0])
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&workflowID, "workflow-id", "", "Workflow returned when the mirror was created")
	cmd.Flags().StringVar(&sourceFile, "source", "", "Source peer definition to clean up")
	cmd.Flags().StringVar(&destinationFile, "destination", "", "Destination peer definition to clean up")
	_ = cmd.MarkFlagRequired("workflow-id")
	return cmd
}
