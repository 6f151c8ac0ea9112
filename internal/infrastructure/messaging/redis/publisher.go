package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mingzhangyang/bond-lab/internal/infrastructure/monitoring/logging"
	"github.com/mingzhangyang/bond-lab/pkg/errors"
)

// Snapshotter yields the latest frame together with a sequence number that
// grows whenever the frame changes.
type Snapshotter interface {
	Snapshot() (seq uint64, frame interface{})
}

// SnapshotFunc adapts a function to Snapshotter.
type SnapshotFunc func() (uint64, interface{})

func (f SnapshotFunc) Snapshot() (uint64, interface{}) { return f() }

// FramePublisher samples a Snapshotter at a fixed interval and publishes
// each new frame as JSON.  A frame whose sequence number was already sent
// is skipped.
type FramePublisher struct {
	client   *Client
	channel  string
	interval time.Duration
	logger   logging.Logger

	sent    uint64
	lastSeq uint64
	failing bool
}

// NewFramePublisher creates a publisher on channel.
func NewFramePublisher(client *Client, channel string, interval time.Duration, log logging.Logger) *FramePublisher {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &FramePublisher{
		client:   client,
		channel:  channel,
		interval: interval,
		logger:   log.Named("broadcast").With(logging.String("channel", channel)),
	}
}

// PublishOnce publishes the current snapshot unless it was already sent.
// It reports whether a message went out.
func (p *FramePublisher) PublishOnce(ctx context.Context, src Snapshotter) (bool, error) {
	seq, frame := src.Snapshot()
	if p.sent > 0 && seq == p.lastSeq {
		return false, nil
	}
	payload, err := json.Marshal(frame)
	if err != nil {
		return false, errors.Wrap(err, errors.ErrCodeSerialization, "failed to encode frame")
	}
	if _, err := p.client.Publish(ctx, p.channel, payload); err != nil {
		return false, err
	}
	p.sent++
	p.lastSeq = seq
	return true, nil
}

// Run publishes until ctx is done.  Publish failures are logged once per
// outage and do not stop the loop.
func (p *FramePublisher) Run(ctx context.Context, src Snapshotter) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			p.logger.Info("frame broadcast stopped", logging.Int64("frames", int64(p.sent)))
			return nil
		case <-ticker.C:
		}
		_, err := p.PublishOnce(ctx, src)
		switch {
		case err != nil && !p.failing:
			p.failing = true
			p.logger.Warn("frame publish failing", logging.Err(err))
		case err == nil && p.failing:
			p.failing = false
			p.logger.Info("frame publish recovered")
		}
	}
}

// Sent is the number of frames published so far.  Not safe to call while
// Run is active.
func (p *FramePublisher) Sent() uint64 { return p.sent }

// Listen subscribes to channel and hands every payload to fn until ctx is
// done or fn returns an error.
func Listen(ctx context.Context, client *Client, channel string, fn func([]byte) error) error {
	ps, err := client.Subscribe(ctx, channel)
	if err != nil {
		return err
	}
	defer ps.Close()

	msgs := ps.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return ErrClientClosed
			}
			if err := fn([]byte(msg.Payload)); err != nil {
				return err
			}
		}
	}
}

//Personal.AI order the ending
