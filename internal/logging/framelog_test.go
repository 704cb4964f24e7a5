package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FranGuam/remote-id-encoder-decoder/internal/feed"
	"github.com/FranGuam/remote-id-encoder-decoder/internal/remoteid"
)

var testTime = time.Date(2024, 5, 17, 10, 23, 45, 600_000_000, time.UTC)

// manualClock is advanced by the test
type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testFrame() *feed.Frame {
	a := remoteid.NewAircraft()
	a.ID = "DRONE001"
	return &feed.Frame{
		Type:     remoteid.MessageTypeBasicID,
		Types:    []remoteid.MessageType{remoteid.MessageTypeBasicID},
		Raw:      []byte{0x02, 0x12},
		Received: testTime,
		Aircraft: a,
	}
}

func readGzip(t *testing.T, path string) string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	zr, err := gzip.NewReader(f)
	require.NoError(t, err)
	defer zr.Close()

	data, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(data)
}

// TestNewFrameLog tests directory and file creation
func TestNewFrameLog(t *testing.T) {
	tests := []struct {
		name   string
		subdir string
		useUTC bool
	}{
		{name: "Flat directory", subdir: "logs", useUTC: false},
		{name: "UTC dates", subdir: "logs_utc", useUTC: true},
		{name: "Nested directory", subdir: "nested/test/logs", useUTC: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), tt.subdir)

			l, err := NewFrameLog(dir, tt.useUTC, remoteid.FixedClock(testTime), quietLogger())
			require.NoError(t, err)
			defer l.Close()

			assert.DirExists(t, dir)
			assert.FileExists(t, l.CurrentFile())
			if tt.useUTC {
				assert.Equal(t, "rid_2024-05-17.log", filepath.Base(l.CurrentFile()))
			}
		})
	}
}

func TestFormatLine(t *testing.T) {
	frame := testFrame()
	frame.Aircraft.Latitude = 39.9042
	frame.Aircraft.Longitude = 116.4074
	frame.Aircraft.GeodeticAltitude = 100
	frame.Aircraft.HorizontalSpeed = 15
	frame.Aircraft.Direction = 180

	assert.Equal(t,
		"RID,BASIC_ID,2024/05/17,10:23:45.600,DRONE001,39.9042000,116.4074000,100.0,15.00,180,0212",
		FormatLine(frame, true))
}

func TestFrameLogWriteFrame(t *testing.T) {
	l, err := NewFrameLog(t.TempDir(), true, remoteid.FixedClock(testTime), quietLogger())
	require.NoError(t, err)

	require.NoError(t, l.WriteFrame(testFrame()))
	require.NoError(t, l.WriteFrame(testFrame()))
	path := l.CurrentFile()
	require.NoError(t, l.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	assert.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "RID,BASIC_ID,"))

	assert.ErrorContains(t, l.WriteFrame(testFrame()), "closed")
}

// TestFrameLogRotation tests date-based rotation and compression
func TestFrameLogRotation(t *testing.T) {
	dir := t.TempDir()
	clock := &manualClock{now: testTime}

	l, err := NewFrameLog(dir, true, clock, quietLogger())
	require.NoError(t, err)

	require.NoError(t, l.WriteFrame(testFrame()))
	first := l.CurrentFile()

	clock.Set(testTime.Add(24 * time.Hour))
	require.NoError(t, l.WriteFrame(testFrame()))
	second := l.CurrentFile()
	require.NoError(t, l.Close())

	assert.Equal(t, "rid_2024-05-18.log", filepath.Base(second))
	assert.NoFileExists(t, first)
	assert.FileExists(t, first+".gz")
	assert.True(t, strings.HasPrefix(readGzip(t, first+".gz"), "RID,BASIC_ID,"))

	files, err := l.Files()
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestFrameLogCleanupOldLogs(t *testing.T) {
	dir := t.TempDir()
	l, err := NewFrameLog(dir, false, remoteid.FixedClock(time.Now()), quietLogger())
	require.NoError(t, err)
	defer l.Close()

	oldFile := filepath.Join(dir, "rid_2023-01-01.log.gz")
	require.NoError(t, os.WriteFile(oldFile, []byte("old"), 0644))
	oldTime := time.Now().AddDate(0, 0, -10)
	require.NoError(t, os.Chtimes(oldFile, oldTime, oldTime))

	recentFile := filepath.Join(dir, "rid_2023-12-31.log")
	require.NoError(t, os.WriteFile(recentFile, []byte("recent"), 0644))

	unrelated := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(unrelated, []byte("keep"), 0644))
	require.NoError(t, os.Chtimes(unrelated, oldTime, oldTime))

	require.NoError(t, l.CleanupOldLogs(5))

	assert.NoFileExists(t, oldFile)
	assert.FileExists(t, recentFile)
	assert.FileExists(t, unrelated)
	assert.FileExists(t, l.CurrentFile())
}

func TestFrameLogCleanupInvalidMaxDays(t *testing.T) {
	l, err := NewFrameLog(t.TempDir(), false, nil, quietLogger())
	require.NoError(t, err)
	defer l.Close()

	for _, days := range []int{0, -1} {
		assert.ErrorContains(t, l.CleanupOldLogs(days), "maxDays must be positive")
	}
}

// TestFrameLogConcurrentWrites tests concurrent access to the frame log
func TestFrameLogConcurrentWrites(t *testing.T) {
	l, err := NewFrameLog(t.TempDir(), true, remoteid.FixedClock(testTime), quietLogger())
	require.NoError(t, err)

	const goroutines, writes = 10, 50
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			frame := testFrame()
			frame.Aircraft.ID = fmt.Sprintf("G%d", id)
			for j := 0; j < writes; j++ {
				if err := l.WriteFrame(frame); err != nil {
					t.Errorf("WriteFrame failed: %v", err)
					return
				}
			}
		}(i)
	}
	wg.Wait()

	path := l.CurrentFile()
	require.NoError(t, l.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, goroutines*writes, strings.Count(string(content), "\n"))
	assert.Contains(t, string(content), ",G0,")
	assert.Contains(t, string(content), fmt.Sprintf(",G%d,", goroutines-1))
}

// BenchmarkFrameLogWrite benchmarks writing performance
func BenchmarkFrameLogWrite(b *testing.B) {
	l, err := NewFrameLog(b.TempDir(), true, remoteid.FixedClock(testTime), quietLogger())
	require.NoError(b, err)
	defer l.Close()

	frame := testFrame()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := l.WriteFrame(frame); err != nil {
			b.Fatal(err)
		}
	}
}
