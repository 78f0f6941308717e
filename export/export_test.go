package export_test

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	"github.com/programme-lv/scoreboard/export"
	"github.com/programme-lv/scoreboard/scoreboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBucket struct {
	keys      []string
	contents  map[string][]byte
	mediaType map[string]string
}

func newFakeBucket() *fakeBucket {
	return &fakeBucket{
		contents:  map[string][]byte{},
		mediaType: map[string]string{},
	}
}

func (b *fakeBucket) Upload(content []byte, key string, mediaType string) (string, error) {
	b.keys = append(b.keys, key)
	b.contents[key] = content
	b.mediaType[key] = mediaType
	return "https://bucket.example.com/" + key, nil
}

func TestExportStandings(t *testing.T) {
	bucket := newFakeBucket()
	exporter := export.NewExporter(bucket, "regional-2024")

	snap := scoreboard.Snapshot{
		Problems: []string{"A", "B"},
		Rows: []scoreboard.TeamStanding{
			{
				Team: "alpha", Rank: 1, Solved: 1, Penalty: 70,
				Cells: []scoreboard.ProblemCell{
					{Kind: scoreboard.CellSolved, WrongBefore: 2},
					{Kind: scoreboard.CellUntried},
				},
			},
		},
	}

	url, err := exporter.ExportStandings(snap)
	require.NoError(t, err)
	assert.Equal(t, "https://bucket.example.com/regional-2024/standings.json", url)
	assert.Equal(t, "application/json", bucket.mediaType["regional-2024/standings.json"])

	var doc struct {
		Problems []string `json:"problems"`
		Rows     []struct {
			Team    string   `json:"team"`
			Rank    int      `json:"rank"`
			Penalty int      `json:"penalty"`
			Cells   []string `json:"cells"`
		} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(bucket.contents["regional-2024/standings.json"], &doc))
	assert.Equal(t, []string{"A", "B"}, doc.Problems)
	require.Len(t, doc.Rows, 1)
	assert.Equal(t, "alpha", doc.Rows[0].Team)
	assert.Equal(t, []string{"+2", "."}, doc.Rows[0].Cells)
}

func TestExportSubmissionLogIsZstdCompressedJson(t *testing.T) {
	bucket := newFakeBucket()
	exporter := export.NewExporter(bucket, "regional-2024")

	subms := []scoreboard.Submission{
		{UUID: uuid.New(), Team: "alpha", Problem: "A", Verdict: scoreboard.VerdictAccepted, Time: 10},
		{UUID: uuid.New(), Team: "beta", Problem: "B", Verdict: scoreboard.VerdictWrongAnswer, Time: 20, ReceivedFrozen: true},
	}

	url, err := exporter.ExportSubmissionLog(subms)
	require.NoError(t, err)
	assert.Equal(t, "https://bucket.example.com/regional-2024/submissions.json.zst", url)
	assert.Equal(t, "application/zstd", bucket.mediaType["regional-2024/submissions.json.zst"])

	reader, err := zstd.NewReader(bytes.NewReader(bucket.contents["regional-2024/submissions.json.zst"]))
	require.NoError(t, err)
	defer reader.Close()
	decompressed, err := io.ReadAll(reader)
	require.NoError(t, err)

	var rows []struct {
		Team           string `json:"team"`
		Verdict        string `json:"verdict"`
		ReceivedFrozen bool   `json:"received_frozen"`
	}
	require.NoError(t, json.Unmarshal(decompressed, &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "Accepted", rows[0].Verdict)
	assert.True(t, rows[1].ReceivedFrozen)
}
