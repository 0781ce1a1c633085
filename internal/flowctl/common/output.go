package common

import (
	"fmt"
	"io"

	"github.com/jackc/pglogrepl"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

var jsonMarshaler = protojson.MarshalOptions{
	Multiline:     true,
	Indent:        "  ",
	UseProtoNames: true,
}

func PrintJSON(w io.Writer, msg proto.Message) error {
	data, err := jsonMarshaler.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// FormatLSN prints an LSN the way Postgres does, e.g. 0/16B3748.
func FormatLSN(lsn int64) string {
	return pglogrepl.LSN(uint64(lsn)).String()
}

func FormatTimestamp(ts *timestamppb.Timestamp) string {
	if ts == nil {
		return "-"
	}
	return ts.AsTime().Local().Format("2006-01-02 15:04:05")
}
