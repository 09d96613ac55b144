package io

import (
	"context"
	"io"
	"sync"
)

const (
	FEED_CHUNK = 4096 // Most bytes read from the source at once.
)

// ContextReader is a reader whose reads can be abandoned.
type ContextReader interface {
	io.Reader
	ReadContext(ctx context.Context, p []byte) (n int, err error)
}

type chunk struct {
	data []byte
	err  error
}

// Feed reads its source on a separate goroutine, so that a blocked read
// can be abandoned by cancelling the context. Data is never lost: bytes
// read after a cancellation are returned by the next read.
//
// The reader goroutine runs until the source returns an error.
type Feed struct {
	source io.Reader
	once   sync.Once
	chunks chan chunk

	pending []byte
	err     error
}

// NewFeed creates a cancellable feed over source.
func NewFeed(source io.Reader) *Feed {
	return &Feed{
		source: source,
		chunks: make(chan chunk),
	}
}

func (feed *Feed) pump() {
	for {
		buf := make([]byte, FEED_CHUNK)
		n, err := feed.source.Read(buf)
		feed.chunks <- chunk{data: buf[:n], err: err}
		if err != nil {
			return
		}
	}
}

// ReadContext reads from the feed, or returns ctx.Err() once ctx is done.
func (feed *Feed) ReadContext(ctx context.Context, p []byte) (n int, err error) {
	feed.once.Do(func() { go feed.pump() })

	for len(feed.pending) == 0 {
		if feed.err != nil {
			err = feed.err
			return
		}

		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		case got := <-feed.chunks:
			feed.pending = got.data
			feed.err = got.err
		}
	}

	n = copy(p, feed.pending)
	feed.pending = feed.pending[n:]
	return
}

// Read is ReadContext without cancellation.
func (feed *Feed) Read(p []byte) (n int, err error) {
	return feed.ReadContext(context.Background(), p)
}
