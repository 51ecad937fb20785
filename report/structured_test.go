package report_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sodatea/berry/message"
	"github.com/sodatea/berry/report"
)

type decodedRecord struct {
	Type        string `json:"type"`
	Name        int    `json:"name"`
	DisplayName string `json:"displayName"`
	Indent      string `json:"indent"`
	Data        string `json:"data"`
}

func structuredStream(out *bytes.Buffer) *report.Stream {
	return report.New(report.Options{
		Out:           out,
		Structured:    true,
		IncludeFooter: true,
	})
}

func decodeLines(t *testing.T, out *bytes.Buffer) []decodedRecord {
	t.Helper()
	var records []decodedRecord
	for _, line := range strings.Split(strings.TrimRight(out.String(), "\n"), "\n") {
		var r decodedRecord
		require.NoError(t, json.Unmarshal([]byte(line), &r), "line %q", line)
		records = append(records, r)
	}
	return records
}

func TestStructuredWarningRecord(t *testing.T) {
	out := &bytes.Buffer{}
	sut := structuredStream(out)

	sut.ReportWarning(message.DeprecatedPackage, "x")

	records := decodeLines(t, out)
	require.Len(t, records, 1)
	assert.Equal(t, "warning", records[0].Type)
	assert.Equal(t, int(message.DeprecatedPackage), records[0].Name)
	assert.Equal(t, "BR0061", records[0].DisplayName)
	assert.Equal(t, "x", records[0].Data)
	assert.NotContains(t, out.String(), "\x1b", "no terminal control sequences in structured output")
}

func TestStructuredEmitsAllSeverities(t *testing.T) {
	out := &bytes.Buffer{}
	sut := structuredStream(out)

	sut.ReportInfo(message.Unnamed, "i")
	sut.ReportWarning(message.Unnamed, "w")
	sut.ReportError(message.Unnamed, "e")

	records := decodeLines(t, out)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"info", "warning", "error"},
		[]string{records[0].Type, records[1].Type, records[2].Type})
}

func TestStructuredIndentField(t *testing.T) {
	out := &bytes.Buffer{}
	sut := structuredStream(out)

	_ = sut.Section(message.ResolutionStep, "Resolution step", func() error {
		sut.ReportInfo(message.Unnamed, "inside")
		return nil
	})

	records := decodeLines(t, out)
	require.Len(t, records, 3)
	assert.Equal(t, "", records[0].Indent)
	assert.Equal(t, "│ ", records[1].Indent)
	assert.Equal(t, "", records[2].Indent)
}

func TestStructuredProgressDrawsNothing(t *testing.T) {
	out := &bytes.Buffer{}
	sut := structuredStream(out)

	progress := make(chan report.Progress)
	handle := sut.StartProgress(progress)
	progress <- report.Progress{Fraction: 0.5}
	progress <- report.Progress{Fraction: 0.5} // fence
	close(progress)
	<-handle.Done()

	assert.Empty(t, out.String(), "progress rows are never drawn in structured mode")
	assert.Equal(t, 0, sut.ActiveSources())
}

func TestStructuredFinalizeRecord(t *testing.T) {
	out := &bytes.Buffer{}
	sut := structuredStream(out)

	sut.ReportCacheMiss(nil)
	sut.Finalize()

	records := decodeLines(t, out)
	require.Len(t, records, 1)
	assert.Equal(t, "info", records[0].Type)
	assert.Contains(t, records[0].Data, "Done with one had to be fetched")
}
