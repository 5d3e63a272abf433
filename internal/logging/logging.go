package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultMaxLogFiles is the rotation limit used when no flag, env var or setting overrides it
const DefaultMaxLogFiles = 1000

// Logger is the public logger instance accessible from all packages.
// It discards everything until Initialize is called.
var Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))

// Options configures Initialize
type Options struct {
	Command  string // names the log file and tags every record, e.g. "pick" or "settings-keys-set"
	Debug    bool
	Dir      string // where rotated log files live
	File     string // explicit log file; no rotation
	MaxFiles int    // 0 keeps every file
}

// inherit fills options a parent filearr process exported to the environment
func (o Options) inherit() Options {
	if os.Getenv("FILEARR_DEBUG") == "1" {
		o.Debug = true
	}
	if o.File == "" {
		o.File = os.Getenv("FILEARR_DEBUG_FILE")
	}
	if o.MaxFiles == DefaultMaxLogFiles {
		if n, err := strconv.Atoi(os.Getenv("FILEARR_MAX_LOG_FILES")); err == nil {
			o.MaxFiles = n
		}
	}
	return o
}

// Initialize points Logger at a log file when debugging is on and returns its path.
// With debugging off the logger discards and the path is "".
func Initialize(opts Options) (string, error) {
	opts = opts.inherit()
	if !opts.Debug && opts.File == "" {
		Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
		return "", nil
	}

	logPath := opts.File
	if logPath == "" {
		if err := os.MkdirAll(opts.Dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
		if err := pruneLogs(opts.Dir, opts.MaxFiles); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
		}
		logPath = filepath.Join(opts.Dir, logFileName(opts.Command, time.Now()))
	} else if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}

	Logger = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})).
		With("command", opts.Command, "pid", os.Getpid())

	// stdout is reserved for the picked path; announce only in the process that enabled debugging
	if os.Getenv("FILEARR_DEBUG") == "" {
		fmt.Fprintf(os.Stderr, "Debug mode enabled. Logs: %s\n", logPath)
	}
	Logger.Info("Debug logging initialized", "log_file", logPath)

	return logPath, nil
}

// logFileName sorts by start time: "<command>-20060102T150405-<id>.log"
func logFileName(command string, started time.Time) string {
	if command == "" {
		command = "filearr"
	}
	return fmt.Sprintf("%s-%s-%s.log", command, started.UTC().Format("20060102T150405"), uuid.NewString()[:8])
}

// pruneLogs deletes the oldest .log files in dir so that, with the file about
// to be created, at most maxFiles remain
func pruneLogs(dir string, maxFiles int) error {
	if maxFiles <= 0 {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	type logFile struct {
		modTime time.Time
		name    string
	}
	var files []logFile
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".log") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, logFile{modTime: info.ModTime(), name: e.Name()})
	}

	excess := len(files) - (maxFiles - 1)
	if excess <= 0 {
		return nil
	}

	slices.SortFunc(files, func(a, b logFile) int {
		if c := a.modTime.Compare(b.modTime); c != 0 {
			return c
		}
		return strings.Compare(a.name, b.name)
	})

	for _, f := range files[:excess] {
		if err := os.Remove(filepath.Join(dir, f.name)); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old log file %s: %v\n", f.name, err)
		}
	}
	return nil
}
