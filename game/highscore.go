package game

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/meghashyamc/spacerocks/logger"
)

// TimestampLayout formats the moment a score was recorded.
const TimestampLayout = "2006-01-02 15:04:05.000000"

const anonymousName = "Anonymous"

type HighScoreRecord struct {
	Name      string
	Score     int
	Timestamp string
}

// HighScores keeps every recorded score, highest first, and writes the whole list
// back to its store on each new record.
type HighScores struct {
	store   ScoreStore
	records []HighScoreRecord
	logger  logger.Logger
}

func NewHighScores(store ScoreStore, log logger.Logger) (*HighScores, error) {
	records, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load high scores: %w", err)
	}
	SortHighScores(records)

	log.Info("high scores loaded", "count", len(records))
	return &HighScores{
		store:   store,
		records: records,
		logger:  log,
	}, nil
}

// Record appends a score, re-sorts, and persists the full list.
func (h *HighScores) Record(record HighScoreRecord) error {
	h.records = append(h.records, record)
	SortHighScores(h.records)

	if err := h.store.Save(slices.Clone(h.records)); err != nil {
		return fmt.Errorf("failed to save high scores: %w", err)
	}

	h.logger.Info("high score recorded", "name", record.Name, "score", record.Score, "count", len(h.records))
	return nil
}

// Reload reads the list back from the store, sorted highest first.
func (h *HighScores) Reload() ([]HighScoreRecord, error) {
	records, err := h.store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to reload high scores: %w", err)
	}
	SortHighScores(records)
	return records, nil
}

func (h *HighScores) Records() []HighScoreRecord {
	return slices.Clone(h.records)
}

// SortHighScores orders records by descending score. Equal scores keep their order.
func SortHighScores(records []HighScoreRecord) {
	slices.SortStableFunc(records, func(a, b HighScoreRecord) int {
		return cmp.Compare(b.Score, a.Score)
	})
}

// Top returns at most n leading records.
func Top(records []HighScoreRecord, n int) []HighScoreRecord {
	if n < 0 || len(records) <= n {
		return records
	}
	return records[:n]
}

// CleanName strips non-printable characters and surrounding space. An empty result
// becomes Anonymous.
func CleanName(name string) string {
	cleanName := strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, name)

	cleanName = strings.TrimSpace(cleanName)
	if cleanName == "" {
		return anonymousName
	}
	return cleanName
}
