package transcript

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_SkipsMalformedLines(t *testing.T) {
	data := `{"type":"user","message":{"content":"one"}}
this is not json
{"type":"file-history-snapshot"}

{"type":"assistant","message":{"content":[{"type":"text","text":"two"}]}}
`
	records := NewParser().Parse([]byte(data))
	require.Len(t, records, 3)
	assert.Equal(t, KindHuman, records[0].Kind)
	assert.Equal(t, KindOther, records[1].Kind)
	assert.Equal(t, KindAgent, records[2].Kind)
}

func TestParser_EmptyInput(t *testing.T) {
	assert.Empty(t, NewParser().Parse([]byte("  \n\n ")))
}

func TestParser_ParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(`{"type":"user","message":{"content":"hello"}}`), 0644))

	records, err := NewParser().ParseFile(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, PlainText("hello"), records[0].Payload)
}

func TestParser_ParseFileMissing(t *testing.T) {
	_, err := NewParser().ParseFile(filepath.Join(t.TempDir(), "nope.jsonl"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRecordTime(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  time.Time
		valid bool
	}{
		{"iso zulu", `"2025-01-02T10:30:00.123Z"`, time.Date(2025, 1, 2, 10, 30, 0, 123000000, time.UTC), true},
		{"iso no zone", `"2025-01-02T10:30:00"`, time.Date(2025, 1, 2, 10, 30, 0, 0, time.UTC), true},
		{"epoch seconds", `1735813800`, time.Date(2025, 1, 2, 10, 30, 0, 0, time.UTC), true},
		{"epoch millis", `1735813800000`, time.Date(2025, 1, 2, 10, 30, 0, 0, time.UTC), true},
		{"empty string", `""`, time.Time{}, false},
		{"zero", `0`, time.Time{}, false},
		{"garbage", `"yesterday"`, time.Time{}, false},
		{"absent", ``, time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Record{Timestamp: json.RawMessage(tt.raw)}
			got, ok := rec.Time()
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.True(t, tt.want.Equal(got), "got %v want %v", got, tt.want)
			}
		})
	}
}

func TestRecordTime_KeepsOffset(t *testing.T) {
	rec := Record{Timestamp: json.RawMessage(`"2025-01-02T10:30:00+02:00"`)}
	got, ok := rec.Time()
	require.True(t, ok)
	assert.Equal(t, "2025-01-02_1030", got.Format("2006-01-02_1504"))
}
