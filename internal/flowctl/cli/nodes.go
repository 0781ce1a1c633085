package cli

import (
	"fmt"
	"sort"

	"github.com/ehsaniara/peerflow/internal/flowctl/common"

	"github.com/spf13/cobra"
)

func NewNodesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nodes",
		Short: "List available nodes from configuration",
		Long:  "Display all configured nodes and their connection details from flowctl-config.yml",
		Args:  cobra.NoArgs,
		RunE:  runNodes,
	}
}

func runNodes(cmd *cobra.Command, args []string) error {
	if common.NodeConfig == nil {
		return fmt.Errorf("no client configuration loaded")
	}

	nodes := common.NodeConfig.ListNodes()
	sort.Strings(nodes)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Available nodes from configuration:\n\n")

	for _, name := range nodes {
		node, err := common.NodeConfig.GetNode(name)
		if err != nil {
			fmt.Fprintf(out, "  %s: error - %v\n", name, err)
			continue
		}

		marker := "  "
		if name == common.NodeName {
			marker = "* "
		}

		fmt.Fprintf(out, "%s%s\n", marker, name)
		fmt.Fprintf(out, "   Address:  %s\n", node.Address)
		if node.Insecure {
			fmt.Fprintf(out, "   TLS:      disabled\n")
		} else {
			fmt.Fprintf(out, "   Cert:     %s\n", masked(node.Cert))
			fmt.Fprintf(out, "   Key:      %s\n", masked(node.Key))
			fmt.Fprintf(out, "   CA:       %s\n", masked(node.CA))
		}
		fmt.Fprintln(out)
	}

	return nil
}

func masked(pem string) string {
	if pem == "" {
		return "-"
	}
	return "***"
}
