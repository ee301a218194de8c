// Package storage persists the high score table as a JSON file.
package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/meghashyamc/spacerocks/game"
)

// ErrMalformed is wrapped by Load when the file exists but is not a valid score table.
var ErrMalformed = errors.New("malformed high score file")

// JSONFile stores records as an array of [name, score, timestamp] triples.
// Every Save rewrites the whole file.
type JSONFile struct {
	fs   afero.Fs
	path string
}

func NewJSONFile(fs afero.Fs, path string) *JSONFile {
	return &JSONFile{
		fs:   fs,
		path: path,
	}
}

func (f *JSONFile) Path() string {
	return f.path
}

// Load returns the stored records in file order. A missing file is an empty table.
func (f *JSONFile) Load() ([]game.HighScoreRecord, error) {
	data, err := afero.ReadFile(f.fs, f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", f.path, err)
	}

	records, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.path, err)
	}
	return records, nil
}

// Save writes records to a temporary file and renames it over the old one.
func (f *JSONFile) Save(records []game.HighScoreRecord) error {
	data, err := encode(records)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := f.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	tmp := f.path + ".tmp"
	if err := afero.WriteFile(f.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := f.fs.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", f.path, err)
	}
	return nil
}

func encode(records []game.HighScoreRecord) ([]byte, error) {
	rows := make([][3]any, 0, len(records))
	for _, r := range records {
		rows = append(rows, [3]any{r.Name, r.Score, r.Timestamp})
	}

	data, err := json.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to encode high scores: %w", err)
	}
	return data, nil
}

func decode(data []byte) ([]game.HighScoreRecord, error) {
	var rows []json.RawMessage
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	records := make([]game.HighScoreRecord, 0, len(rows))
	for i, row := range rows {
		record, err := decodeRow(row)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrMalformed, i, err)
		}
		records = append(records, record)
	}
	return records, nil
}

func decodeRow(row json.RawMessage) (game.HighScoreRecord, error) {
	var fields []json.RawMessage
	if err := json.Unmarshal(row, &fields); err != nil {
		return game.HighScoreRecord{}, err
	}
	if len(fields) != 3 {
		return game.HighScoreRecord{}, fmt.Errorf("want 3 fields, got %d", len(fields))
	}

	var record game.HighScoreRecord
	if err := unmarshalStrict(fields[0], &record.Name); err != nil {
		return game.HighScoreRecord{}, fmt.Errorf("name: %v", err)
	}
	if err := unmarshalStrict(fields[1], &record.Score); err != nil {
		return game.HighScoreRecord{}, fmt.Errorf("score: %v", err)
	}
	if err := unmarshalStrict(fields[2], &record.Timestamp); err != nil {
		return game.HighScoreRecord{}, fmt.Errorf("timestamp: %v", err)
	}
	return record, nil
}

// unmarshalStrict rejects null, which json.Unmarshal would otherwise accept as a zero value.
func unmarshalStrict(raw json.RawMessage, v any) error {
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return errors.New("null value")
	}
	return json.Unmarshal(raw, v)
}
