package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// RotateConfig controls the file sink used while the demo TUI owns stderr.
type RotateConfig struct {
	Dir        string
	Name       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// LogRotator is a size-rotated file writer.
type LogRotator struct {
	mu          sync.Mutex
	cfg         RotateConfig
	maxSize     int64
	maxAge      time.Duration
	currentFile *os.File
	currentSize int64
	now         func() time.Time
}

// NewLogRotator opens (or creates) cfg.Dir/cfg.Name for appending.
func NewLogRotator(cfg RotateConfig) (*LogRotator, error) {
	if cfg.Name == "" {
		cfg.Name = "listnav.log"
	}
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = 5
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	r := &LogRotator{
		cfg:     cfg,
		maxSize: int64(cfg.MaxSizeMB) * 1024 * 1024,
		maxAge:  time.Duration(cfg.MaxAgeDays) * 24 * time.Hour,
		now:     time.Now,
	}
	if err := r.openCurrentFile(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the active log file path.
func (r *LogRotator) Path() string {
	return filepath.Join(r.cfg.Dir, r.cfg.Name)
}

func (r *LogRotator) openCurrentFile() error {
	r.currentSize = 0
	if info, err := os.Stat(r.Path()); err == nil {
		r.currentSize = info.Size()
	}

	file, err := os.OpenFile(r.Path(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	r.currentFile = file
	return nil
}

func (r *LogRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		if err := r.openCurrentFile(); err != nil {
			return 0, err
		}
	}

	if r.currentSize > 0 && r.currentSize+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.currentFile.Write(p)
	r.currentSize += int64(n)
	return n, err
}

func (r *LogRotator) rotate() error {
	if err := r.currentFile.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to close current log file: %v\n", err)
	}
	r.currentFile = nil

	backupPath := fmt.Sprintf("%s.%s", r.Path(), r.now().Format("2006-01-02-15-04-05.000"))
	if err := os.Rename(r.Path(), backupPath); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}

	if r.cfg.Compress {
		if err := compressFile(backupPath); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to compress log file %s: %v\n", backupPath, err)
		} else if err := os.Remove(backupPath); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to remove uncompressed log file %s: %v\n", backupPath, err)
		}
	}

	r.cleanup()
	return r.openCurrentFile()
}

func compressFile(path string) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(path + ".gz")
	if err != nil {
		return err
	}
	defer out.Close()

	gz := gzip.NewWriter(out)
	if _, err := io.Copy(gz, in); err != nil {
		_ = gz.Close()
		return err
	}
	return gz.Close()
}

// Backups lists rotated files, oldest first.
func (r *LogRotator) Backups() []string {
	entries, err := os.ReadDir(r.cfg.Dir)
	if err != nil {
		return nil
	}

	type backup struct {
		name string
		mod  time.Time
	}
	var found []backup
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), r.cfg.Name+".") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		found = append(found, backup{name: e.Name(), mod: info.ModTime()})
	}
	sort.Slice(found, func(i, j int) bool {
		if found[i].mod.Equal(found[j].mod) {
			return found[i].name < found[j].name
		}
		return found[i].mod.Before(found[j].mod)
	})

	names := make([]string, len(found))
	for i, b := range found {
		names[i] = b.name
	}
	return names
}

func (r *LogRotator) cleanup() {
	backups := r.Backups()
	now := r.now()

	kept := backups[:0]
	for _, name := range backups {
		path := filepath.Join(r.cfg.Dir, name)
		if r.maxAge > 0 {
			if info, err := os.Stat(path); err == nil && now.Sub(info.ModTime()) > r.maxAge {
				if err := os.Remove(path); err != nil {
					fmt.Fprintf(os.Stderr, "warning: failed to remove old log file: %v\n", err)
				}
				continue
			}
		}
		kept = append(kept, name)
	}

	if r.cfg.MaxBackups > 0 && len(kept) > r.cfg.MaxBackups {
		for _, name := range kept[:len(kept)-r.cfg.MaxBackups] {
			if err := os.Remove(filepath.Join(r.cfg.Dir, name)); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to remove excess backup file: %v\n", err)
			}
		}
	}
}

// Close closes the active file.
func (r *LogRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		return nil
	}
	err := r.currentFile.Close()
	r.currentFile = nil
	return err
}
