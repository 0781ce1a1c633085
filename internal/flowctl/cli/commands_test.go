package cli

import (
	"bytes"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ehsaniara/peerflow/internal/flowctl/common"
	"github.com/ehsaniara/peerflow/internal/peerflow/catalog"
	"github.com/ehsaniara/peerflow/internal/peerflow/monitor"
	"github.com/ehsaniara/peerflow/internal/peerflow/server"
	"github.com/ehsaniara/peerflow/internal/peerflow/workflow"
	"github.com/ehsaniara/peerflow/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCmd()
	assert.Equal(t, "flowctl", cmd.Use)

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Subset(t, names, []string{"peer", "mirror", "nodes", "version"})
}

func TestGlobalFlags(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		expectedConfig string
		expectedNode   string
		expectedJSON   bool
	}{
		{"default values", []string{}, "", "default", false},
		{"config flag", []string{"--config", "/path/to/config.yml"}, "/path/to/config.yml", "default", false},
		{"node flag", []string{"--node", "production"}, "", "production", false},
		{"json flag", []string{"--json"}, "", "default", true},
		{"all flags combined", []string{"--config", "/etc/flowctl.yml", "--node", "staging", "--json"}, "/etc/flowctl.yml", "staging", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewRootCmd()
			require.NoError(t, cmd.PersistentFlags().Parse(tt.args))

			assert.Equal(t, tt.expectedConfig, common.ConfigPath)
			assert.Equal(t, tt.expectedNode, common.NodeName)
			assert.Equal(t, tt.expectedJSON, common.JSONOutput)
		})
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// startServer runs an insecure flow server on a loopback port and returns a
// client config pointing at it.
func startServer(t *testing.T) string {
	t.Helper()

	cfg := config.DefaultConfig
	cfg.Security.Insecure = true
	cfg.Validation.Connectivity = false

	store := catalog.NewMemoryStore()
	registry := workflow.NewRegistry()
	srv, err := server.NewGRPCServer(&cfg, server.Components{
		Store:    store,
		Monitor:  monitor.NewCatalogMirrorMonitor(store),
		Registry: registry,
	})
	require.NoError(t, err)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(func() {
		srv.Stop()
		registry.Close()
	})

	return writeFile(t, t.TempDir(), "flowctl-config.yml", fmt.Sprintf(`version: "1.0"
nodes:
  default:
    address: %q
    insecure: true
`, lis.Addr().String()))
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestNodesCmd(t *testing.T) {
	path := writeFile(t, t.TempDir(), "flowctl-config.yml", `version: "1.0"
nodes:
  default:
    address: "localhost:8110"
    insecure: true
  prod:
    address: "flow.example.com:8110"
    cert: "cert"
    key: "key"
    ca: "ca"
`)

	out, err := run(t, "--config", path, "nodes")
	require.NoError(t, err)
	assert.Contains(t, out, "* default")
	assert.Contains(t, out, "TLS:      disabled")
	assert.Contains(t, out, "flow.example.com:8110")
	assert.Contains(t, out, "Cert:     ***")
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.yml"), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "flowctl version")
}

func TestMissingClientConfig(t *testing.T) {
	_, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.yml"), "nodes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestPeerAndMirrorCommands(t *testing.T) {
	configPath := startServer(t)
	dir := t.TempDir()

	peerFile := writeFile(t, dir, "pg.yaml", `name: pg_source
type: POSTGRES
postgres_config:
  host: db.internal
  port: 5432
  user: replicator
  database: app
`)
	badPeerFile := writeFile(t, dir, "bad.yaml", `name: broken
type: POSTGRES
postgres_config:
  port: 5432
`)
	mirrorFile := writeFile(t, dir, "orders.yaml", `flow_job_name: orders
source:
  name: pg_source
  type: POSTGRES
  postgres_config: {host: db.internal, port: 5432, user: replicator, database: app}
destination:
  name: pg_target
  type: POSTGRES
  postgres_config: {host: wh.internal, port: 5432, user: loader, database: wh}
table_mappings:
  - source_table_identifier: public.orders
    destination_table_identifier: public.orders
`)

	out, err := run(t, "--config", configPath, "peer", "validate", "-f", peerFile)
	require.NoError(t, err, out)
	assert.Contains(t, out, "VALID")

	out, err = run(t, "--config", configPath, "peer", "validate", "-f", badPeerFile)
	require.Error(t, err)
	assert.Contains(t, out, "host is required")

	out, err = run(t, "--config", configPath, "peer", "create", "-f", peerFile)
	require.NoError(t, err, out)
	assert.Contains(t, out, "CREATED")

	out, err = run(t, "--config", configPath, "mirror", "create-cdc", "-f", mirrorFile)
	require.NoError(t, err, out)
	require.Contains(t, out, "Workflow ID: orders-peerflow-")
	workflowID := strings.TrimSpace(out[strings.Index(out, "Workflow ID: ")+len("Workflow ID: "):])

	out, err = run(t, "--config", configPath, "mirror", "status", "orders")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Type: CDC")
	assert.Contains(t, out, "Source: pg_source")
	assert.Contains(t, out, "CDC batches: 0")

	out, err = run(t, "--config", configPath, "--json", "mirror", "status", "orders")
	require.NoError(t, err, out)
	assert.Contains(t, out, `"cdc_status"`)

	_, err = run(t, "--config", configPath, "mirror", "status", "users")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, err = run(t, "--config", configPath, "mirror", "shutdown", "orders", "--workflow-id", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did not shut down cleanly")

	out, err = run(t, "--config", configPath, "mirror", "shutdown", "orders", "--workflow-id", workflowID)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Mirror orders shut down")
}
