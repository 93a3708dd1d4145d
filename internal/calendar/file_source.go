package calendar

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/username/day-counter/internal/daycount"
	"go.uber.org/zap"
)

// FileSource implements Source using a local text file.
//
// Each line holds a pattern optionally followed by free text:
//
//	# comment
//	2025-01-01 holiday New Year
//	*-12-25 Christmas
//	2025-11-01 shortened 7
//
// Lines whose second field is "workday" or "shortened" describe working
// days and are skipped.
type FileSource struct {
	filePath string
	logger   *zap.Logger

	mu       sync.Mutex
	loaded   bool
	patterns []string
}

// NewFileSource creates a new FileSource instance
func NewFileSource(filePath string, logger *zap.Logger) *FileSource {
	return &FileSource{
		filePath: filePath,
		logger:   logger,
	}
}

// Load loads patterns from file
func (fs *FileSource) Load() error {
	file, err := os.Open(fs.filePath)
	if err != nil {
		return fmt.Errorf("failed to open holiday file: %w", err)
	}
	defer file.Close()

	var patterns []string
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) > 1 && (fields[1] == "workday" || fields[1] == "shortened") {
			continue
		}

		if _, err := daycount.ParsePattern(fields[0]); err != nil {
			fs.logger.Warn("Skipping invalid holiday line",
				zap.String("file", fs.filePath),
				zap.Int("line", lineNo),
				zap.Error(err))
			continue
		}
		patterns = append(patterns, fields[0])
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading holiday file: %w", err)
	}

	fs.mu.Lock()
	fs.patterns = patterns
	fs.loaded = true
	fs.mu.Unlock()

	fs.logger.Info("Holiday file loaded",
		zap.String("file", fs.filePath),
		zap.Int("patterns", len(patterns)))

	return nil
}

// Patterns returns every pattern in the file, loading it on first use.
func (fs *FileSource) Patterns(ctx context.Context, from, to time.Time) ([]string, error) {
	fs.mu.Lock()
	loaded := fs.loaded
	fs.mu.Unlock()

	if !loaded {
		if err := fs.Load(); err != nil {
			return nil, err
		}
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()
	return append([]string(nil), fs.patterns...), nil
}
