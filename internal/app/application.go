package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/FranGuam/remote-id-encoder-decoder/internal/feed"
	"github.com/FranGuam/remote-id-encoder-decoder/internal/logging"
	"github.com/FranGuam/remote-id-encoder-decoder/internal/remoteid"
	"github.com/FranGuam/remote-id-encoder-decoder/internal/render"
)

const readChunkSize = 4096

// Application represents the main application
type Application struct {
	config    Config
	logger    *logrus.Logger
	out       io.Writer
	clock     remoteid.Clock
	describer *render.Describer
}

// NewApplication creates a new application instance
func NewApplication(config Config) *Application {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if level, err := config.Level(); err == nil {
		logger.SetLevel(level)
	}

	return &Application{
		config:    config,
		logger:    logger,
		out:       os.Stdout,
		clock:     remoteid.SystemClock,
		describer: render.NewDescriber(config.Color),
	}
}

// SetOutput sets where results are written
func (app *Application) SetOutput(w io.Writer) {
	app.out = w
}

// SetClock sets the clock written into Location and System messages
func (app *Application) SetClock(clock remoteid.Clock) {
	app.clock = clock
}

// Logger returns the application logger
func (app *Application) Logger() *logrus.Logger {
	return app.logger
}

// Encode encodes one message of type t from the record at recordPath
func (app *Application) Encode(recordPath string, t remoteid.MessageType) error {
	a, err := app.loadAircraft(recordPath)
	if err != nil {
		return err
	}

	msg, err := remoteid.NewEncoder(app.clock).Encode(&a, t)
	if err != nil {
		return fmt.Errorf("failed to encode %s message: %w", t, err)
	}

	app.logger.WithFields(logrus.Fields{
		"type":   t.String(),
		"record": recordPath,
	}).Debug("Encoded message")

	return app.writeEncoded([]remoteid.MessageType{t}, msg)
}

// EncodePack encodes the configured Pack layout from the record at recordPath
func (app *Application) EncodePack(recordPath string) error {
	types, err := app.config.MessageTypes()
	if err != nil {
		return err
	}

	a, err := app.loadAircraft(recordPath)
	if err != nil {
		return err
	}

	pack, err := remoteid.NewEncoder(app.clock).EncodePack(&a, types)
	if err != nil {
		return fmt.Errorf("failed to encode pack: %w", err)
	}

	app.logger.WithFields(logrus.Fields{
		"messages": len(types),
		"record":   recordPath,
	}).Debug("Encoded pack")

	return app.writeEncoded(types, pack)
}

// Decode decodes a single message or Pack given as hex text
func (app *Application) Decode(hexText string) error {
	data, err := render.ParseHex(hexText)
	if err != nil {
		return err
	}

	types, err := remoteid.ContainedTypes(data)
	if err != nil {
		return fmt.Errorf("failed to decode message: %w", err)
	}
	a, err := remoteid.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to decode message: %w", err)
	}

	app.logger.WithFields(logrus.Fields{
		"bytes":    len(data),
		"messages": len(types),
	}).Debug("Decoded message")

	return app.writeDecoded(data, types, &a)
}

// Scan decodes a stream of concatenated messages from r until EOF or ctx is
// done. With hexInput set, r holds hex text instead of raw bytes.
func (app *Application) Scan(ctx context.Context, r io.Reader, hexInput bool) error {
	decoder := feed.NewDecoder(app.logger)
	decoder.SetClock(app.clock)

	var frameLog *logging.FrameLog
	if app.config.LogDir != "" {
		var err error
		frameLog, err = logging.NewFrameLog(app.config.LogDir, app.config.LogRotateUTC, app.clock, app.logger)
		if err != nil {
			return err
		}
		defer frameLog.Close()

		if app.config.KeepDays > 0 {
			if err := frameLog.CleanupOldLogs(app.config.KeepDays); err != nil {
				app.logger.WithError(err).Warn("Failed to clean up old frame logs")
			}
		}
		app.logger.WithField("file", frameLog.CurrentFile()).Info("Logging frames")
	}

	chunks := make(chan []byte)
	readErr := make(chan error, 1)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(chunks)
		if hexInput {
			readErr <- readHexLines(ctx, r, chunks)
		} else {
			readErr <- readRaw(ctx, r, chunks)
		}
	}()

	app.logger.WithField("hex", hexInput).Info("Scanning for Remote ID frames")

	var werr error
loop:
	for {
		select {
		case <-ctx.Done():
			app.logger.Info("Scan cancelled")
			break loop
		case chunk, ok := <-chunks:
			if !ok {
				break loop
			}
			for _, frame := range decoder.Decode(chunk) {
				if werr = app.writeFrame(frame); werr != nil {
					break loop
				}
				if frameLog != nil {
					if werr = frameLog.WriteFrame(frame); werr != nil {
						break loop
					}
				}
			}
		}
	}

	stopped := werr != nil || ctx.Err() != nil
	if stopped {
		// The reader may still be blocked in Read; drain it in the background
		go func() {
			for range chunks {
			}
		}()
	} else {
		wg.Wait()
	}

	stats := decoder.Stats()
	app.logger.WithFields(logrus.Fields{
		"frames":        stats.Frames,
		"messages":      stats.Messages,
		"rejected":      stats.Rejected,
		"skipped_bytes": stats.SkippedBytes,
		"pending_bytes": decoder.Pending(),
	}).Info("Scan finished")

	if werr != nil {
		return werr
	}
	if stopped {
		return ctx.Err()
	}
	if err := <-readErr; err != nil {
		return err
	}
	return nil
}

func readRaw(ctx context.Context, r io.Reader, chunks chan<- []byte) error {
	buf := make([]byte, readChunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			select {
			case chunks <- chunk:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
	}
}

func readHexLines(ctx context.Context, r io.Reader, chunks chan<- []byte) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		data, err := render.ParseHex(text)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if len(data) == 0 {
			continue
		}
		select {
		case chunks <- data:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

func (app *Application) loadAircraft(path string) (remoteid.Aircraft, error) {
	record, err := LoadRecord(path)
	if err != nil {
		return remoteid.Aircraft{}, err
	}
	return record.Aircraft()
}

type encodedOutput struct {
	Types []remoteid.MessageType `yaml:"types"`
	Hex   string                 `yaml:"hex"`
}

type decodedOutput struct {
	Types  []remoteid.MessageType `yaml:"types"`
	Hex    string                 `yaml:"hex"`
	Record Record                 `yaml:"record"`
}

func (app *Application) writeEncoded(types []remoteid.MessageType, data []byte) error {
	if app.config.Format == FormatYAML {
		return app.writeYAML(encodedOutput{Types: types, Hex: render.FormatHex(data)})
	}
	_, err := fmt.Fprintln(app.out, render.FormatHex(data))
	return err
}

func (app *Application) writeDecoded(data []byte, types []remoteid.MessageType, a *remoteid.Aircraft) error {
	switch app.config.Format {
	case FormatYAML:
		return app.writeYAML(decodedOutput{
			Types:  types,
			Hex:    render.FormatHex(data),
			Record: RecordFromAircraft(a),
		})
	case FormatHex:
		_, err := fmt.Fprintln(app.out, render.FormatHex(data))
		return err
	default:
		_, err := fmt.Fprint(app.out, app.describer.Describe(a, types...))
		return err
	}
}

func (app *Application) writeFrame(frame *feed.Frame) error {
	if app.config.Format == FormatText {
		if _, err := fmt.Fprintf(app.out, "# %s %s\n", frame.Type, render.FormatHex(frame.Raw)); err != nil {
			return err
		}
	}
	return app.writeDecoded(frame.Raw, frame.Types, &frame.Aircraft)
}

func (app *Application) writeYAML(v interface{}) error {
	enc := yaml.NewEncoder(app.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return enc.Close()
}
