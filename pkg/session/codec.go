package session

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

const recordFormatVersion = 1

// Encode serializes a record as
//
//	version u8 | len u16 | subject | expires_at i64 | len u16 | csrf_token
//
// with big-endian integers. The output is deterministic.
func Encode(r Record) ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(1 + 2 + len(r.Subject) + 8 + 2 + len(r.CSRFToken))

	buf.WriteByte(recordFormatVersion)

	writeString(&buf, r.Subject)

	if err := binary.Write(&buf, binary.BigEndian, r.ExpiresAt); err != nil {
		return nil, err
	}

	writeString(&buf, r.CSRFToken)

	return buf.Bytes(), nil
}

func writeString(buf *bytes.Buffer, s string) {
	var n [2]byte
	binary.BigEndian.PutUint16(n[:], uint16(len(s)))
	buf.Write(n[:])
	buf.WriteString(s)
}

// Decode parses the output of Encode. Any structural problem, including
// trailing bytes and field values Encode would refuse, is reported as an
// error wrapping ErrDecode.
func Decode(data []byte) (Record, error) {
	reader := bytes.NewReader(data)

	version, err := reader.ReadByte()
	if err != nil {
		return Record{}, fmt.Errorf("%w: version: %v", ErrDecode, err)
	}
	if version != recordFormatVersion {
		return Record{}, fmt.Errorf("%w: unknown version %d", ErrDecode, version)
	}

	var r Record

	if r.Subject, err = readString(reader); err != nil {
		return Record{}, fmt.Errorf("%w: subject: %v", ErrDecode, err)
	}

	if err := binary.Read(reader, binary.BigEndian, &r.ExpiresAt); err != nil {
		return Record{}, fmt.Errorf("%w: expires_at: %v", ErrDecode, err)
	}

	if r.CSRFToken, err = readString(reader); err != nil {
		return Record{}, fmt.Errorf("%w: csrf_token: %v", ErrDecode, err)
	}

	if reader.Len() != 0 {
		return Record{}, fmt.Errorf("%w: %d trailing bytes", ErrDecode, reader.Len())
	}

	if err := r.Validate(); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return r, nil
}

func readString(reader *bytes.Reader) (string, error) {
	var n uint16
	if err := binary.Read(reader, binary.BigEndian, &n); err != nil {
		return "", err
	}
	if int(n) > reader.Len() {
		return "", io.ErrUnexpectedEOF
	}

	value := make([]byte, n)
	if _, err := io.ReadFull(reader, value); err != nil {
		return "", err
	}
	return string(value), nil
}
