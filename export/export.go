// Package export publishes final contest results: the standings as JSON
// and the full submission log as zstd-compressed JSON. This is
// publication of results to an object store, not restart persistence;
// the engine never reads anything back.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/programme-lv/scoreboard/render"
	"github.com/programme-lv/scoreboard/scoreboard"
)

// Uploader is the object-store surface the exporter needs. s3bucket
// implements it.
type Uploader interface {
	Upload(content []byte, key string, mediaType string) (string, error)
}

type Exporter struct {
	bucket Uploader
	prefix string // object key prefix, e.g. the contest name
}

func NewExporter(bucket Uploader, prefix string) *Exporter {
	return &Exporter{bucket: bucket, prefix: prefix}
}

func (e *Exporter) Prefix() string {
	return e.prefix
}

type standingRow struct {
	Team    string   `json:"team"`
	Rank    int      `json:"rank"`
	Solved  int      `json:"solved"`
	Penalty int      `json:"penalty"`
	Cells   []string `json:"cells"`
}

type standingsDoc struct {
	ExportedAt time.Time     `json:"exported_at"`
	Problems   []string      `json:"problems"`
	Rows       []standingRow `json:"rows"`
}

type submissionRow struct {
	UUID           string `json:"uuid"`
	Team           string `json:"team"`
	Problem        string `json:"problem"`
	Verdict        string `json:"verdict"`
	Time           int    `json:"time"`
	ReceivedFrozen bool   `json:"received_frozen"`
}

// ExportStandings uploads the scoreboard snapshot as
// <prefix>/standings.json and returns the object URL.
func (e *Exporter) ExportStandings(snap scoreboard.Snapshot) (string, error) {
	doc := standingsDoc{
		ExportedAt: time.Now().UTC(),
		Problems:   snap.Problems,
		Rows:       make([]standingRow, 0, len(snap.Rows)),
	}
	for _, row := range snap.Rows {
		cells := make([]string, 0, len(row.Cells))
		for _, c := range row.Cells {
			cells = append(cells, render.Cell(c))
		}
		doc.Rows = append(doc.Rows, standingRow{
			Team:    row.Team,
			Rank:    row.Rank,
			Solved:  row.Solved,
			Penalty: row.Penalty,
			Cells:   cells,
		})
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to marshal standings: %w", err)
	}

	key := e.prefix + "/standings.json"
	url, err := e.bucket.Upload(body, key, "application/json")
	if err != nil {
		return "", fmt.Errorf("failed to upload standings: %w", err)
	}
	return url, nil
}

// ExportSubmissionLog uploads the full submission log as
// <prefix>/submissions.json.zst and returns the object URL.
func (e *Exporter) ExportSubmissionLog(subms []scoreboard.Submission) (string, error) {
	rows := make([]submissionRow, 0, len(subms))
	for _, sub := range subms {
		rows = append(rows, submissionRow{
			UUID:           sub.UUID.String(),
			Team:           sub.Team,
			Problem:        sub.Problem,
			Verdict:        sub.Verdict.String(),
			Time:           sub.Time,
			ReceivedFrozen: sub.ReceivedFrozen,
		})
	}

	body, err := json.Marshal(rows)
	if err != nil {
		return "", fmt.Errorf("failed to marshal submission log: %w", err)
	}

	compressed, err := compressWithZstd(body)
	if err != nil {
		return "", fmt.Errorf("failed to compress submission log: %w", err)
	}

	key := e.prefix + "/submissions.json.zst"
	url, err := e.bucket.Upload(compressed, key, "application/zstd")
	if err != nil {
		return "", fmt.Errorf("failed to upload submission log: %w", err)
	}
	return url, nil
}

// compressWithZstd compresses the given data using Zstandard compression.
func compressWithZstd(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	writer, err := zstd.NewWriter(&buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd writer: %w", err)
	}
	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return nil, fmt.Errorf("failed to write compressed data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close zstd writer: %w", err)
	}
	return buf.Bytes(), nil
}
