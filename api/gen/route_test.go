package gen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/types/known/timestamppb"
	"pgregory.net/rapid"
)

func roundTrip[T proto.Message](t *testing.T, in T, out T) T {
	t.Helper()
	data, err := proto.Marshal(in)
	require.NoError(t, err)
	require.NoError(t, proto.Unmarshal(data, out))
	return out
}

func TestCreateCDCFlowResponse_RoundTrip(t *testing.T) {
	got := roundTrip(t, &CreateCDCFlowResponse{WorflowId: "wf-123"}, &CreateCDCFlowResponse{})
	assert.Equal(t, "wf-123", got.GetWorflowId())
}

func TestShutdownResponse_RoundTrip(t *testing.T) {
	got := roundTrip(t, &ShutdownResponse{Ok: false, ErrorMessage: "peer unreachable"}, &ShutdownResponse{})
	assert.False(t, got.GetOk())
	assert.Equal(t, "peer unreachable", got.GetErrorMessage())
}

func TestMirrorStatusResponse_OnlyCDCVariant(t *testing.T) {
	in := &MirrorStatusResponse{
		FlowJobName: "orders",
		Status:      &MirrorStatusResponse_CdcStatus{CdcStatus: &CDCMirrorStatus{}},
	}
	got := roundTrip(t, in, &MirrorStatusResponse{})

	assert.Nil(t, got.GetQrepStatus())
	assert.NotNil(t, got.GetCdcStatus())
	assert.Empty(t, got.GetErrorMessage())
}

func TestMirrorStatusResponse_SettingVariantReplacesPrevious(t *testing.T) {
	resp := &MirrorStatusResponse{}
	resp.Status = &MirrorStatusResponse_QrepStatus{QrepStatus: &QRepMirrorStatus{}}
	resp.Status = &MirrorStatusResponse_CdcStatus{CdcStatus: &CDCMirrorStatus{}}

	assert.Nil(t, resp.GetQrepStatus())
	assert.NotNil(t, resp.GetCdcStatus())
}

func TestMirrorStatusResponse_LastVariantOnWireWins(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendString(b, "orders")
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendBytes(b, nil)
	b = protowire.AppendTag(b, 3, protowire.BytesType)
	b = protowire.AppendBytes(b, nil)

	got := &MirrorStatusResponse{}
	require.NoError(t, proto.Unmarshal(b, got))
	assert.Nil(t, got.GetQrepStatus())
	assert.NotNil(t, got.GetCdcStatus())

	// and the other way round
	b = b[:0]
	b = protowire.AppendTag(b, 3, protowire.BytesType)
	b = protowire.AppendBytes(b, nil)
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendBytes(b, nil)

	got = &MirrorStatusResponse{}
	require.NoError(t, proto.Unmarshal(b, got))
	assert.NotNil(t, got.GetQrepStatus())
	assert.Nil(t, got.GetCdcStatus())
}

func TestUnknownEnumValuesArePreserved(t *testing.T) {
	tests := []struct {
		name string
		msg  func() proto.Message
		get  func(proto.Message) int32
	}{
		{
			name: "ValidatePeerResponse",
			msg:  func() proto.Message { return &ValidatePeerResponse{} },
			get:  func(m proto.Message) int32 { return int32(m.(*ValidatePeerResponse).GetStatus()) },
		},
		{
			name: "CreatePeerResponse",
			msg:  func() proto.Message { return &CreatePeerResponse{} },
			get:  func(m proto.Message) int32 { return int32(m.(*CreatePeerResponse).GetStatus()) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b []byte
			b = protowire.AppendTag(b, 1, protowire.VarintType)
			b = protowire.AppendVarint(b, 42)

			msg := tt.msg()
			require.NoError(t, proto.Unmarshal(b, msg))
			assert.Equal(t, int32(42), tt.get(msg))

			out, err := proto.Marshal(msg)
			require.NoError(t, err)
			assert.Equal(t, b, out)
		})
	}
}

func TestUnknownFieldsArePreserved(t *testing.T) {
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, 1)
	b = protowire.AppendTag(b, 99, protowire.BytesType)
	b = protowire.AppendString(b, "from a newer schema")

	got := &ShutdownResponse{}
	require.NoError(t, proto.Unmarshal(b, got))
	assert.True(t, got.GetOk())

	out, err := proto.Marshal(got)
	require.NoError(t, err)
	assert.Equal(t, b, out)
}

func TestMalformedInputFailsToDecode(t *testing.T) {
	full, err := proto.Marshal(&ShutdownRequest{
		WorkflowId:  "wf-1",
		FlowJobName: "orders",
		SourcePeer:  &Peer{Name: "pg", Type: DBType_POSTGRES},
	})
	require.NoError(t, err)

	tests := []struct {
		name string
		data []byte
	}{
		{"truncated message", full[:len(full)-1]},
		{"invalid varint", []byte{0x08, 0xff, 0xff}},
		{"length past end", []byte{0x0a, 0x10, 'w', 'f'}},
		{"field number zero", []byte{0x00, 0x01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, proto.Unmarshal(tt.data, &ShutdownRequest{}))
		})
	}
}

func TestEmptyInputDecodesToZeroValue(t *testing.T) {
	got := &MirrorStatusResponse{}
	require.NoError(t, proto.Unmarshal(nil, got))
	assert.Nil(t, got.GetStatus())
	assert.Empty(t, got.GetFlowJobName())
}

func TestEnumNames(t *testing.T) {
	for _, s := range []ValidatePeerStatus{ValidatePeerStatus_CREATION_UNKNOWN, ValidatePeerStatus_VALID, ValidatePeerStatus_INVALID} {
		parsed, ok := ParseValidatePeerStatus(s.String())
		assert.True(t, ok)
		assert.Equal(t, s, parsed)
	}
	for _, s := range []CreatePeerStatus{CreatePeerStatus_VALIDATION_UNKNOWN, CreatePeerStatus_CREATED, CreatePeerStatus_FAILED} {
		parsed, ok := ParseCreatePeerStatus(s.String())
		assert.True(t, ok)
		assert.Equal(t, s, parsed)
	}

	assert.Equal(t, "VALID", ValidatePeerStatus_VALID.String())
	assert.Equal(t, "FAILED", CreatePeerStatus_FAILED.String())

	_, ok := ParseValidatePeerStatus("valid")
	assert.False(t, ok)
	_, ok = ParseCreatePeerStatus("")
	assert.False(t, ok)

	typ, ok := ParseDBType("SNOWFLAKE")
	assert.True(t, ok)
	assert.Equal(t, DBType_SNOWFLAKE, typ)
}

func TestFlowServiceDescriptor(t *testing.T) {
	fd := protodesc.ToFileDescriptorProto(File_route_proto)
	assert.Equal(t, "peerdb_route", fd.GetPackage())
	require.Len(t, fd.GetService(), 1)

	svc := fd.GetService()[0]
	assert.Equal(t, "FlowService", svc.GetName())

	var names []string
	for _, m := range svc.GetMethod() {
		names = append(names, m.GetName())
		assert.Nil(t, m.GetOptions(), "method %s carries options", m.GetName())
		assert.False(t, m.GetClientStreaming() || m.GetServerStreaming(), "method %s streams", m.GetName())
	}
	assert.Equal(t, []string{
		"ValidatePeer", "CreatePeer", "CreateCDCFlow", "CreateQRepFlow", "ShutdownFlow", "MirrorStatus",
	}, names)
}

func TestProtoJSONUsesSchemaFieldNames(t *testing.T) {
	in := &MirrorStatusResponse{
		FlowJobName: "orders",
		Status: &MirrorStatusResponse_QrepStatus{QrepStatus: &QRepMirrorStatus{
			Partitions: []*PartitionStatus{{PartitionId: "p1", NumRows: 10}},
		}},
	}

	data, err := protojson.MarshalOptions{UseProtoNames: true}.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"flow_job_name"`)
	assert.Contains(t, string(data), `"qrep_status"`)
	assert.Contains(t, string(data), `"partition_id"`)

	got := &MirrorStatusResponse{}
	require.NoError(t, protojson.Unmarshal(data, got))
	assert.True(t, proto.Equal(in, got))

	wf, err := protojson.MarshalOptions{UseProtoNames: true}.Marshal(&CreateQRepFlowResponse{WorflowId: "wf-9"})
	require.NoError(t, err)
	assert.Contains(t, string(wf), `"worflow_id"`)
}

func timestampGen() *rapid.Generator[*timestamppb.Timestamp] {
	return rapid.Custom(func(t *rapid.T) *timestamppb.Timestamp {
		if rapid.Bool().Draw(t, "set") {
			return nil
		}
		sec := rapid.Int64Range(0, 4102444800).Draw(t, "sec")
		nanos := rapid.Int32Range(0, 999999999).Draw(t, "nanos")
		return timestamppb.New(time.Unix(sec, int64(nanos)).UTC())
	})
}

func peerGen() *rapid.Generator[*Peer] {
	return rapid.Custom(func(t *rapid.T) *Peer {
		if rapid.Bool().Draw(t, "nil") {
			return nil
		}
		p := &Peer{
			Name: rapid.String().Draw(t, "name"),
			Type: DBType(rapid.Int32Range(-1, 8).Draw(t, "type")),
		}
		switch rapid.IntRange(0, 3).Draw(t, "config") {
		case 1:
			p.Config = &Peer_PostgresConfig{PostgresConfig: &PostgresConfig{
				Host: rapid.String().Draw(t, "host"),
				Port: rapid.Uint32().Draw(t, "port"),
			}}
		case 2:
			p.Config = &Peer_SnowflakeConfig{SnowflakeConfig: &SnowflakeConfig{
				AccountId:    rapid.String().Draw(t, "account"),
				QueryTimeout: rapid.Uint64().Draw(t, "timeout"),
			}}
		case 3:
			p.Config = &Peer_S3Config{S3Config: &S3Config{Url: rapid.String().Draw(t, "url")}}
		}
		return p
	})
}

func qrepStatusGen() *rapid.Generator[*QRepMirrorStatus] {
	return rapid.Custom(func(t *rapid.T) *QRepMirrorStatus {
		s := &QRepMirrorStatus{}
		if rapid.Bool().Draw(t, "config") {
			s.Config = &QRepConfig{
				FlowJobName: rapid.String().Draw(t, "flow"),
				SourcePeer:  peerGen().Draw(t, "source"),
				Query:       rapid.String().Draw(t, "query"),
			}
		}
		n := rapid.IntRange(0, 4).Draw(t, "partitions")
		for i := 0; i < n; i++ {
			s.Partitions = append(s.Partitions, &PartitionStatus{
				PartitionId: rapid.String().Draw(t, "id"),
				StartTime:   timestampGen().Draw(t, "start"),
				EndTime:     timestampGen().Draw(t, "end"),
				NumRows:     rapid.Int32().Draw(t, "rows"),
			})
		}
		return s
	})
}

func cdcStatusGen() *rapid.Generator[*CDCMirrorStatus] {
	return rapid.Custom(func(t *rapid.T) *CDCMirrorStatus {
		s := &CDCMirrorStatus{}
		if rapid.Bool().Draw(t, "config") {
			s.Config = &FlowConnectionConfigs{
				Source:      peerGen().Draw(t, "source"),
				Destination: peerGen().Draw(t, "destination"),
				FlowJobName: rapid.String().Draw(t, "flow"),
			}
		}
		if rapid.Bool().Draw(t, "snapshot") {
			s.SnapshotStatus = &SnapshotStatus{
				Clones: rapid.SliceOfN(qrepStatusGen(), 0, 3).Draw(t, "clones"),
			}
		}
		n := rapid.IntRange(0, 4).Draw(t, "syncs")
		for i := 0; i < n; i++ {
			s.CdcSyncs = append(s.CdcSyncs, &CDCSyncStatus{
				StartLsn:  rapid.Int64().Draw(t, "start_lsn"),
				EndLsn:    rapid.Int64().Draw(t, "end_lsn"),
				NumRows:   rapid.Int32().Draw(t, "rows"),
				StartTime: timestampGen().Draw(t, "start"),
				EndTime:   timestampGen().Draw(t, "end"),
			})
		}
		return s
	})
}

func TestMirrorStatusResponse_RoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := &MirrorStatusResponse{
			FlowJobName:  rapid.String().Draw(t, "flow"),
			ErrorMessage: rapid.String().Draw(t, "error"),
		}
		switch rapid.IntRange(0, 2).Draw(t, "variant") {
		case 1:
			in.Status = &MirrorStatusResponse_QrepStatus{QrepStatus: qrepStatusGen().Draw(t, "qrep")}
		case 2:
			in.Status = &MirrorStatusResponse_CdcStatus{CdcStatus: cdcStatusGen().Draw(t, "cdc")}
		}

		data, err := proto.Marshal(in)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		got := &MirrorStatusResponse{}
		if err := proto.Unmarshal(data, got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !proto.Equal(in, got) {
			t.Fatalf("round trip mismatch:\n in: %v\nout: %v", in, got)
		}
	})
}

func TestRequestResponse_RoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		msgs := []proto.Message{
			&ShutdownRequest{
				WorkflowId:      rapid.String().Draw(t, "workflow"),
				FlowJobName:     rapid.String().Draw(t, "flow"),
				SourcePeer:      peerGen().Draw(t, "source"),
				DestinationPeer: peerGen().Draw(t, "destination"),
			},
			&ShutdownResponse{Ok: rapid.Bool().Draw(t, "ok"), ErrorMessage: rapid.String().Draw(t, "msg")},
			&ValidatePeerRequest{Peer: peerGen().Draw(t, "peer")},
			&CreatePeerRequest{Peer: peerGen().Draw(t, "peer")},
			&ValidatePeerResponse{
				Status:  ValidatePeerStatus(rapid.Int32Range(-2, 5).Draw(t, "vstatus")),
				Message: rapid.String().Draw(t, "vmsg"),
			},
			&CreatePeerResponse{
				Status:  CreatePeerStatus(rapid.Int32Range(-2, 5).Draw(t, "cstatus")),
				Message: rapid.String().Draw(t, "cmsg"),
			},
			&CreateCDCFlowRequest{CreateCatalogEntry: rapid.Bool().Draw(t, "catalog")},
			&CreateQRepFlowRequest{
				QrepConfig:         &QRepConfig{FlowJobName: rapid.String().Draw(t, "qflow")},
				CreateCatalogEntry: rapid.Bool().Draw(t, "qcatalog"),
			},
			&CreateCDCFlowResponse{WorflowId: rapid.String().Draw(t, "cdc_wf")},
			&CreateQRepFlowResponse{WorflowId: rapid.String().Draw(t, "qrep_wf")},
			&MirrorStatusRequest{FlowJobName: rapid.String().Draw(t, "status_flow")},
		}

		for _, in := range msgs {
			data, err := proto.Marshal(in)
			if err != nil {
				t.Fatalf("marshal %T: %v", in, err)
			}
			got := in.ProtoReflect().New().Interface()
			if err := proto.Unmarshal(data, got); err != nil {
				t.Fatalf("unmarshal %T: %v", in, err)
			}
			if !proto.Equal(in, got) {
				t.Fatalf("%T round trip mismatch:\n in: %v\nout: %v", in, in, got)
			}
		}
	})
}

func TestOptionalMessagePresenceSurvivesRoundTrip(t *testing.T) {
	withEmpty := &CDCMirrorStatus{SnapshotStatus: &SnapshotStatus{}}
	got := roundTrip(t, withEmpty, &CDCMirrorStatus{})
	assert.NotNil(t, got.GetSnapshotStatus())
	assert.Empty(t, got.GetSnapshotStatus().GetClones())

	without := roundTrip(t, &CDCMirrorStatus{}, &CDCMirrorStatus{})
	assert.Nil(t, without.GetSnapshotStatus())
}
