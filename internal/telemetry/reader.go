package telemetry

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/mkcho/brewstation/internal/models"
	"go.uber.org/zap"
)

// Reader ingests line-delimited telemetry from the serial stream and
// publishes every successfully decoded snapshot to the channel. Decode
// failures are steady-state noise: they are logged and the loop
// continues after a fixed delay.
type Reader struct {
	stream io.ReadCloser
	ch     *Channel
	logger *zap.Logger
	retry  time.Duration
}

// NewReader creates new Reader instance over an opened stream
func NewReader(stream io.ReadCloser, ch *Channel, logger *zap.Logger, retry time.Duration) *Reader {
	return &Reader{
		stream: stream,
		ch:     ch,
		logger: logger,
		retry:  retry,
	}
}

// Run reads the stream until ctx is cancelled. Cancellation closes the
// stream to unblock the pending read and returns ctx.Err(); any other
// return value is a reader crash.
func (r *Reader) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		r.stream.Close()
	}()

	buf := bufio.NewReader(r.stream)

	for {
		if err := ctx.Err(); err != nil {
			r.logger.Debug("telemetry reader is done")
			return err
		}

		line, err := buf.ReadString('\n')
		if err != nil {
			if ctx.Err() != nil {
				r.logger.Debug("telemetry reader is done")
				return ctx.Err()
			}
			r.logger.Error("read telemetry line", zap.Error(err))
			if err := r.wait(ctx); err != nil {
				r.logger.Debug("telemetry reader is done")
				return err
			}
			continue
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		snap := models.Snapshot{}
		if err := json.Unmarshal([]byte(line), &snap); err != nil {
			r.logger.Error("decode telemetry line", zap.String("line", line), zap.Error(err))
			if err := r.wait(ctx); err != nil {
				r.logger.Debug("telemetry reader is done")
				return err
			}
			continue
		}

		r.ch.Publish(snap)
		r.logger.Debug("telemetry snapshot published", zap.Int("readings", len(snap)))
	}
}

// wait sleeps for the retry delay unless ctx is cancelled first
func (r *Reader) wait(ctx context.Context) error {
	t := time.NewTimer(r.retry)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
