package common

import (
	"fmt"

	"github.com/ehsaniara/peerflow/pkg/client"
	"github.com/ehsaniara/peerflow/pkg/config"
)

var (
	NodeConfig *config.ClientConfig
	ConfigPath string
	NodeName   string
	JSONOutput bool
)

// NewFlowClient dials the node selected with --node.
func NewFlowClient() (*client.FlowClient, error) {
	// NodeConfig should be loaded by PersistentPreRunE
	if NodeConfig == nil {
		return nil, fmt.Errorf("no configuration loaded")
	}

	node, err := NodeConfig.GetNode(NodeName)
	if err != nil {
		return nil, fmt.Errorf("failed to get node configuration for '%s': %w", NodeName, err)
	}

	return client.NewFlowClient(node)
}
