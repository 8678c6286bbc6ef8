package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindingDecode(t *testing.T) {
	payload := `[{"host":"10.0.0.5","severity":"High","message":"Open port 22"}]`

	var findings []Finding
	require.NoError(t, json.Unmarshal([]byte(payload), &findings))
	require.Len(t, findings, 1)
	assert.Equal(t, Finding{Host: "10.0.0.5", Severity: "High", Message: "Open port 22"}, findings[0])
}

func TestFindingDecodePermissive(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    Finding
	}{
		{
			name:    "missing keys yield blank cells",
			payload: `{"host":"10.0.0.5"}`,
			want:    Finding{Host: "10.0.0.5"},
		},
		{
			name:    "unknown keys are ignored",
			payload: `{"host":"h","severity":"Low","message":"m","score":9.8,"tags":["a"]}`,
			want:    Finding{Host: "h", Severity: "Low", Message: "m"},
		},
		{
			name:    "numbers render as display strings",
			payload: `{"host":22,"severity":3.5,"message":"m"}`,
			want:    Finding{Host: "22", Severity: "3.5", Message: "m"},
		},
		{
			name:    "bools render as display strings",
			payload: `{"host":"h","severity":true,"message":false}`,
			want:    Finding{Host: "h", Severity: "true", Message: "false"},
		},
		{
			name:    "null values render blank",
			payload: `{"host":null,"severity":"High","message":null}`,
			want:    Finding{Severity: "High"},
		},
		{
			name:    "nested values render blank",
			payload: `{"host":{"ip":"10.0.0.5"},"severity":["High"],"message":"m"}`,
			want:    Finding{Message: "m"},
		},
		{
			name:    "non-object element yields a blank row",
			payload: `"not a row"`,
			want:    Finding{},
		},
		{
			name:    "null element yields a blank row",
			payload: `null`,
			want:    Finding{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var f Finding
			require.NoError(t, json.Unmarshal([]byte(test.payload), &f))
			assert.Equal(t, test.want, f)
		})
	}
}

func TestFindingDecodeRejectsNonArray(t *testing.T) {
	var findings []Finding
	assert.Error(t, json.Unmarshal([]byte(`{"rows":[]}`), &findings))
	assert.Error(t, json.Unmarshal([]byte(`not json`), &findings))
}

func TestFindingIsBlank(t *testing.T) {
	assert.True(t, Finding{}.IsBlank())
	assert.False(t, Finding{Message: "m"}.IsBlank())
}

func TestRankSeverity(t *testing.T) {
	tests := []struct {
		label string
		want  SeverityRank
	}{
		{"Critical", RankCritical},
		{"CRIT", RankCritical},
		{"High", RankHigh},
		{"high", RankHigh},
		{"Medium", RankMedium},
		{"moderate", RankMedium},
		{"Low", RankLow},
		{"Info", RankInfo},
		{"informational", RankInfo},
		{"none", RankInfo},
		{" high ", RankHigh},
		{"", RankUnknown},
		{"banana", RankUnknown},
	}

	for _, test := range tests {
		assert.Equal(t, test.want, RankSeverity(test.label), "label %q", test.label)
	}
}

func TestSeverityRankString(t *testing.T) {
	assert.Equal(t, "critical", RankCritical.String())
	assert.Equal(t, "unknown", RankUnknown.String())
	assert.Equal(t, "unknown", SeverityRank(99).String())
}
