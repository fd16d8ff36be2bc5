package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// BattleRecord is one row of the battle metrics file.
type BattleRecord struct {
	Scenario string
	Seed     uint64
	BattleMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of dir named by the current timestamp.
func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(dir, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

// Dir is the folder the writer puts its files in.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteBattleRecords(records []BattleRecord) error {
	path := filepath.Join(w.baseDir, "battle_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create battle records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{"scenario", "seed", "duration", "moves", "steps", "attacks", "dice", "hits", "destroyed"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write battle records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.Scenario,
			strconv.FormatUint(record.Seed, 10),
			record.Duration.String(),
			strconv.Itoa(record.Moves),
			strconv.Itoa(record.Steps),
			strconv.Itoa(record.Attacks),
			strconv.Itoa(record.DiceRolled),
			strconv.Itoa(record.Hits),
			strconv.Itoa(record.Destroyed),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write battle record row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush battle records: %w", err)
	}
	return nil
}
