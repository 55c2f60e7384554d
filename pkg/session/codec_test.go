package session

import (
	"encoding/binary"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	records := []Record{
		testRecord(),
		{Subject: "a", ExpiresAt: 1, CSRFToken: strings.Repeat("Z", CSRFTokenLength)},
		{Subject: "host/app:prod", ExpiresAt: 1 << 40, CSRFToken: strings.Repeat("9", CSRFTokenLength)},
		{Subject: strings.Repeat("s", maxSubjectLength), ExpiresAt: 7, CSRFToken: strings.Repeat("a", CSRFTokenLength)},
	}

	for _, rec := range records {
		data, err := Encode(rec)
		require.NoError(t, err)

		decoded, err := Decode(data)
		require.NoError(t, err)
		assert.Equal(t, rec, decoded)
	}
}

func TestEncodeLayout(t *testing.T) {
	rec := testRecord()

	data, err := Encode(rec)
	require.NoError(t, err)

	require.Len(t, data, 1+2+len(rec.Subject)+8+2+CSRFTokenLength)
	assert.Equal(t, byte(recordFormatVersion), data[0])
	assert.Equal(t, uint16(len(rec.Subject)), binary.BigEndian.Uint16(data[1:3]))
	assert.Equal(t, rec.Subject, string(data[3:10]))
	assert.Equal(t, rec.ExpiresAt, int64(binary.BigEndian.Uint64(data[10:18])))
	assert.Equal(t, uint16(CSRFTokenLength), binary.BigEndian.Uint16(data[18:20]))
	assert.Equal(t, rec.CSRFToken, string(data[20:]))

	again, err := Encode(rec)
	require.NoError(t, err)
	assert.Equal(t, data, again, "encoding must be deterministic")
}

func TestEncodeRejectsInvalidRecords(t *testing.T) {
	valid := testRecord()

	tests := []struct {
		name   string
		mutate func(*Record)
	}{
		{"empty subject", func(r *Record) { r.Subject = "" }},
		{"oversized subject", func(r *Record) { r.Subject = strings.Repeat("x", maxSubjectLength+1) }},
		{"unset expiry", func(r *Record) { r.ExpiresAt = 0 }},
		{"empty csrf token", func(r *Record) { r.CSRFToken = "" }},
		{"short csrf token", func(r *Record) { r.CSRFToken = "abc" }},
		{"non alphanumeric csrf token", func(r *Record) { r.CSRFToken = strings.Repeat("-", CSRFTokenLength) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := valid
			tc.mutate(&rec)

			_, err := Encode(rec)
			assert.ErrorIs(t, err, ErrInvalidRecord)
		})
	}
}

func TestDecodeRejectsMalformedInput(t *testing.T) {
	valid, err := Encode(testRecord())
	require.NoError(t, err)

	t.Run("every truncation", func(t *testing.T) {
		for i := 0; i < len(valid); i++ {
			_, err := Decode(valid[:i])
			assert.ErrorIs(t, err, ErrDecode, "prefix of %d bytes", i)
		}
	})

	t.Run("trailing bytes", func(t *testing.T) {
		_, err := Decode(append(append([]byte{}, valid...), 0))
		assert.ErrorIs(t, err, ErrDecode)
	})

	t.Run("unknown version", func(t *testing.T) {
		data := append([]byte{}, valid...)
		data[0] = 2
		_, err := Decode(data)
		assert.ErrorIs(t, err, ErrDecode)
	})

	t.Run("subject length beyond input", func(t *testing.T) {
		data := append([]byte{}, valid...)
		binary.BigEndian.PutUint16(data[1:3], 0xffff)
		_, err := Decode(data)
		assert.ErrorIs(t, err, ErrDecode)
	})

	t.Run("empty subject", func(t *testing.T) {
		data := []byte{recordFormatVersion, 0, 0}
		data = binary.BigEndian.AppendUint64(data, 100)
		data = binary.BigEndian.AppendUint16(data, CSRFTokenLength)
		data = append(data, strings.Repeat("a", CSRFTokenLength)...)

		_, err := Decode(data)
		assert.ErrorIs(t, err, ErrDecode)
	})

	t.Run("malformed csrf token", func(t *testing.T) {
		data := append([]byte{}, valid...)
		data[len(data)-1] = '!'
		_, err := Decode(data)
		assert.ErrorIs(t, err, ErrDecode)
	})
}
