package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/FranGuam/remote-id-encoder-decoder/internal/feed"
	"github.com/FranGuam/remote-id-encoder-decoder/internal/remoteid"
)

const (
	filePrefix = "rid_"
	fileSuffix = ".log"
	dateLayout = "2006-01-02"

	// RecordTag starts every frame log line
	RecordTag = "RID"
)

// FrameLog appends scanned frames to one CSV file per day, compressing each
// finished day with gzip
type FrameLog struct {
	dir    string
	useUTC bool
	clock  remoteid.Clock
	logger *logrus.Logger

	mu          sync.Mutex
	file        *os.File
	currentDate string
	compressing sync.WaitGroup
}

// NewFrameLog creates the log directory and opens today's file. A nil clock
// means the host clock.
func NewFrameLog(dir string, useUTC bool, clock remoteid.Clock, logger *logrus.Logger) (*FrameLog, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	if clock == nil {
		clock = remoteid.SystemClock
	}

	l := &FrameLog{
		dir:    dir,
		useUTC: useUTC,
		clock:  clock,
		logger: logger,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.rotate(l.today()); err != nil {
		return nil, fmt.Errorf("failed to initialize log file: %w", err)
	}
	return l, nil
}

// WriteFrame appends one line for frame, switching files first when the day
// has changed
func (l *FrameLog) WriteFrame(frame *feed.Frame) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return fmt.Errorf("frame log is closed")
	}

	if date := l.today(); date != l.currentDate {
		l.logger.WithFields(logrus.Fields{
			"old_date": l.currentDate,
			"new_date": date,
		}).Info("Rotating frame log")
		if err := l.rotate(date); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(l.file, FormatLine(frame, l.useUTC)+"\n"); err != nil {
		return fmt.Errorf("failed to write frame log: %w", err)
	}
	return nil
}

// FormatLine renders a frame as a CSV line:
// RID,type,date,time,uas id,lat,lon,geodetic alt,speed,direction,hex
func FormatLine(frame *feed.Frame, useUTC bool) string {
	received := frame.Received
	if useUTC {
		received = received.UTC()
	}

	a := &frame.Aircraft
	fields := []string{
		RecordTag,
		frame.Type.String(),
		received.Format("2006/01/02"),
		received.Format("15:04:05.000"),
		a.ID,
		strconv.FormatFloat(a.Latitude, 'f', 7, 64),
		strconv.FormatFloat(a.Longitude, 'f', 7, 64),
		strconv.FormatFloat(a.GeodeticAltitude, 'f', 1, 64),
		strconv.FormatFloat(a.HorizontalSpeed, 'f', 2, 64),
		strconv.Itoa(a.Direction),
		fmt.Sprintf("%X", frame.Raw),
	}
	return strings.Join(fields, ",")
}

// CurrentFile returns the path of the file being written
func (l *FrameLog) CurrentFile() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.path(l.currentDate)
}

// Files lists every frame log in the directory, compressed or not
func (l *FrameLog) Files() ([]string, error) {
	files, err := filepath.Glob(filepath.Join(l.dir, filePrefix+"*"+fileSuffix+"*"))
	if err != nil {
		return nil, fmt.Errorf("failed to list log files: %w", err)
	}
	return files, nil
}

// CleanupOldLogs removes log files last modified more than maxDays ago. The
// current file is always kept.
func (l *FrameLog) CleanupOldLogs(maxDays int) error {
	if maxDays <= 0 {
		return fmt.Errorf("maxDays must be positive")
	}

	files, err := l.Files()
	if err != nil {
		return err
	}

	cutoff := l.clock.Now().AddDate(0, 0, -maxDays)
	current := l.CurrentFile()

	removed := 0
	for _, file := range files {
		if file == current {
			continue
		}
		info, err := os.Stat(file)
		if err != nil {
			l.logger.WithError(err).WithField("file", file).Warn("Failed to stat log file")
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(file); err != nil {
				l.logger.WithError(err).WithField("file", file).Error("Failed to remove old log file")
				continue
			}
			l.logger.WithField("file", file).Info("Removed old log file")
			removed++
		}
	}

	l.logger.WithField("count", removed).Debug("Cleaned up old log files")
	return nil
}

// Close closes the current file and waits for pending compression
func (l *FrameLog) Close() error {
	l.mu.Lock()
	var err error
	if l.file != nil {
		err = l.file.Close()
		l.file = nil
	}
	l.mu.Unlock()

	l.compressing.Wait()
	return err
}

func (l *FrameLog) today() string {
	now := l.clock.Now()
	if l.useUTC {
		now = now.UTC()
	}
	return now.Format(dateLayout)
}

func (l *FrameLog) path(date string) string {
	if date == "" {
		return ""
	}
	return filepath.Join(l.dir, filePrefix+date+fileSuffix)
}

// rotate must be called with mu held
func (l *FrameLog) rotate(date string) error {
	if l.file != nil {
		if err := l.file.Close(); err != nil {
			l.logger.WithError(err).Error("Failed to close old log file")
		}
		old := l.path(l.currentDate)
		l.compressing.Add(1)
		go func() {
			defer l.compressing.Done()
			l.compress(old)
		}()
	}

	path := l.path(date)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		l.file = nil
		return fmt.Errorf("failed to create log file %s: %w", path, err)
	}

	l.file = file
	l.currentDate = date
	l.logger.WithField("file", path).Debug("Opened frame log")
	return nil
}

func (l *FrameLog) compress(path string) {
	target := path + ".gz"
	logger := l.logger.WithFields(logrus.Fields{"source": path, "target": target})

	if err := gzipFile(path, target); err != nil {
		logger.WithError(err).Error("Failed to compress log file")
		return
	}
	if err := os.Remove(path); err != nil {
		logger.WithError(err).Error("Failed to remove original log file")
		return
	}
	logger.Debug("Log file compressed")
}

func gzipFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	zw := gzip.NewWriter(out)
	zw.Name = filepath.Base(src)
	zw.ModTime = time.Now()

	if _, err := io.Copy(zw, in); err != nil {
		return err
	}
	if err := zw.Close(); err != nil {
		return err
	}
	return out.Close()
}
