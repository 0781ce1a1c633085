package connectors

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	stderrors "errors"
	"fmt"
	"strings"

	pb "github.com/ehsaniara/peerflow/api/gen"
	"github.com/ehsaniara/peerflow/pkg/errors"
)

// ValidatePeer checks that a peer definition is complete enough to connect
// with. It does not touch the network.
func ValidatePeer(peer *pb.Peer) error {
	if peer == nil {
		return errors.NewInvalidPeerError("", "peer is required")
	}
	name := peer.GetName()
	if strings.TrimSpace(name) == "" {
		return errors.NewInvalidPeerError(name, "peer name is required")
	}
	if peer.GetConfig() == nil {
		return errors.NewInvalidPeerError(name, "peer config is required")
	}

	var problems []string
	switch peer.GetType() {
	case pb.DBType_POSTGRES:
		problems = checkPostgres(peer.GetPostgresConfig())
	case pb.DBType_SNOWFLAKE:
		problems = checkSnowflake(peer.GetSnowflakeConfig())
	case pb.DBType_BIGQUERY:
		problems = checkBigquery(peer.GetBigqueryConfig())
	case pb.DBType_MONGO:
		problems = checkMongo(peer.GetMongoConfig())
	case pb.DBType_EVENTHUB:
		problems = checkEventhub(peer.GetEventhubConfig())
	case pb.DBType_S3:
		problems = checkS3(peer.GetS3Config())
	default:
		return errors.WrapPeerError(name, "validate",
			fmt.Errorf("%w: %s", errors.ErrUnsupportedPeer, peer.GetType()))
	}

	if len(problems) > 0 {
		return errors.NewInvalidPeerError(name, strings.Join(problems, "; "))
	}
	return nil
}

func checkPostgres(cfg *pb.PostgresConfig) []string {
	if cfg == nil {
		return []string{"postgres_config is required for a POSTGRES peer"}
	}
	var problems []string
	if cfg.GetHost() == "" {
		problems = append(problems, "host is required")
	}
	if cfg.GetPort() == 0 || cfg.GetPort() > 65535 {
		problems = append(problems, fmt.Sprintf("port %d is out of range", cfg.GetPort()))
	}
	if cfg.GetUser() == "" {
		problems = append(problems, "user is required")
	}
	if cfg.GetDatabase() == "" {
		problems = append(problems, "database is required")
	}
	return problems
}

func checkSnowflake(cfg *pb.SnowflakeConfig) []string {
	if cfg == nil {
		return []string{"snowflake_config is required for a SNOWFLAKE peer"}
	}
	var problems []string
	if cfg.GetAccountId() == "" {
		problems = append(problems, "account_id is required")
	}
	if cfg.GetUsername() == "" {
		problems = append(problems, "username is required")
	}
	if cfg.GetDatabase() == "" {
		problems = append(problems, "database is required")
	}
	if cfg.GetWarehouse() == "" {
		problems = append(problems, "warehouse is required")
	}
	if _, err := readPKCS8PrivateKey([]byte(cfg.GetPrivateKey())); err != nil {
		problems = append(problems, err.Error())
	}
	return problems
}

func checkBigquery(cfg *pb.BigqueryConfig) []string {
	if cfg == nil {
		return []string{"bigquery_config is required for a BIGQUERY peer"}
	}
	required := []struct {
		field, value string
	}{
		{"project_id", cfg.GetProjectId()},
		{"dataset_id", cfg.GetDatasetId()},
		{"client_email", cfg.GetClientEmail()},
		{"private_key", cfg.GetPrivateKey()},
	}
	var problems []string
	for _, r := range required {
		if r.value == "" {
			problems = append(problems, r.field+" is required")
		}
	}
	return problems
}

func checkMongo(cfg *pb.MongoConfig) []string {
	if cfg == nil {
		return []string{"mongo_config is required for a MONGO peer"}
	}
	var problems []string
	if cfg.GetClusterurl() == "" {
		problems = append(problems, "clusterurl is required")
	}
	if cfg.GetClusterport() <= 0 || cfg.GetClusterport() > 65535 {
		problems = append(problems, fmt.Sprintf("clusterport %d is out of range", cfg.GetClusterport()))
	}
	if cfg.GetDatabase() == "" {
		problems = append(problems, "database is required")
	}
	return problems
}

func checkEventhub(cfg *pb.EventHubConfig) []string {
	if cfg == nil {
		return []string{"eventhub_config is required for an EVENTHUB peer"}
	}
	var problems []string
	if cfg.GetNamespace() == "" {
		problems = append(problems, "namespace is required")
	}
	if cfg.GetResourceGroup() == "" {
		problems = append(problems, "resource_group is required")
	}
	if cfg.GetMetadataDb() != nil {
		for _, p := range checkPostgres(cfg.GetMetadataDb()) {
			problems = append(problems, "metadata_db: "+p)
		}
	}
	return problems
}

func checkS3(cfg *pb.S3Config) []string {
	if cfg == nil {
		return []string{"s3_config is required for an S3 peer"}
	}
	if !strings.HasPrefix(cfg.GetUrl(), "s3://") || len(cfg.GetUrl()) == len("s3://") {
		return []string{fmt.Sprintf("url %q must look like s3://bucket/prefix", cfg.GetUrl())}
	}
	return nil
}

// readPKCS8PrivateKey parses a PEM encoded, unencrypted PKCS#8 RSA key as
// used for Snowflake key-pair authentication.
func readPKCS8PrivateKey(rawKey []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(rawKey)
	if block == nil {
		return nil, stderrors.New("private_key is not a PEM encoded key")
	}

	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("private_key is not a PKCS#8 key: %v", err)
	}

	rsaKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, stderrors.New("private_key is not an RSA key")
	}
	return rsaKey, nil
}
