package mirrors

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	pb "github.com/ehsaniara/peerflow/api/gen"
	"github.com/ehsaniara/peerflow/internal/flowctl/common"

	"github.com/spf13/cobra"
)

func NewStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <flow-job-name>",
		Short: "Show the progress of a mirror",
		Args:  cobra.ExactArgs(1),
		RunE:  runStatus,
	}
}

func runStatus(cmd *cobra.Command, args []string) error {
	flowClient, err := common.NewFlowClient()
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	defer flowClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	resp, err := flowClient.MirrorStatus(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to get mirror status: %v", err)
	}

	if common.JSONOutput {
		return common.PrintJSON(cmd.OutOrStdout(), resp)
	}
	if resp.GetErrorMessage() != "" {
		return fmt.Errorf("%s", resp.GetErrorMessage())
	}

	printStatus(cmd.OutOrStdout(), resp)
	return nil
}

func printStatus(out io.Writer, resp *pb.MirrorStatusResponse) {
	fmt.Fprintf(out, "Mirror: %s\n", resp.GetFlowJobName())

	switch status := resp.GetStatus().(type) {
	case *pb.MirrorStatusResponse_QrepStatus:
		cfg := status.QrepStatus.GetConfig()
		fmt.Fprintf(out, "Type: QRep\n")
		fmt.Fprintf(out, "Source: %s\n", cfg.GetSourcePeer().GetName())
		fmt.Fprintf(out, "Destination: %s (%s)\n", cfg.GetDestinationPeer().GetName(), cfg.GetDestinationTableIdentifier())
		printPartitions(out, status.QrepStatus.GetPartitions())

	case *pb.MirrorStatusResponse_CdcStatus:
		cfg := status.CdcStatus.GetConfig()
		fmt.Fprintf(out, "Type: CDC\n")
		fmt.Fprintf(out, "Source: %s\n", cfg.GetSource().GetName())
		fmt.Fprintf(out, "Destination: %s\n", cfg.GetDestination().GetName())
		fmt.Fprintf(out, "Tables: %d\n", len(cfg.GetTableMappings()))

		if clones := status.CdcStatus.GetSnapshotStatus().GetClones(); len(clones) > 0 {
			fmt.Fprintf(out, "\nInitial snapshot:\n")
			for _, clone := range clones {
				fmt.Fprintf(out, "  %s\n", clone.GetConfig().GetDestinationTableIdentifier())
				printPartitions(out, clone.GetPartitions())
			}
		}

		syncs := status.CdcStatus.GetCdcSyncs()
		fmt.Fprintf(out, "\nCDC batches: %d\n", len(syncs))
		if len(syncs) > 0 {
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "START LSN\tEND LSN\tROWS\tSTARTED\tFINISHED")
			for _, s := range syncs {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
					common.FormatLSN(s.GetStartLsn()),
					common.FormatLSN(s.GetEndLsn()),
					s.GetNumRows(),
					common.FormatTimestamp(s.GetStartTime()),
					common.FormatTimestamp(s.GetEndTime()))
			}
			_ = w.Flush()
		}

	default:
		fmt.Fprintf(out, "Type: unknown\n")
	}
}

func printPartitions(out io.Writer, partitions []*pb.PartitionStatus) {
	fmt.Fprintf(out, "Partitions: %d\n", len(partitions))
	if len(partitions) == 0 {
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PARTITION\tROWS\tSTARTED\tFINISHED")
	for _, p := range partitions {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n",
			p.GetPartitionId(),
			p.GetNumRows(),
			common.FormatTimestamp(p.GetStartTime()),
			common.FormatTimestamp(p.GetEndTime()))
	}
	_ = w.Flush()
}
