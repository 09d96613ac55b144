package io

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFeed_Read(t *testing.T) {
	assert := assert.New(t)

	feed := NewFeed(strings.NewReader("hello"))

	data, err := io.ReadAll(feed)
	assert.NoError(err)
	assert.Equal("hello", string(data))

	// Exhausted stays exhausted.
	_, err = feed.Read(make([]byte, 1))
	assert.ErrorIs(err, io.EOF)
}

func TestFeed_Cancel(t *testing.T) {
	assert := assert.New(t)

	pr, pw := io.Pipe()
	defer pw.Close()

	feed := NewFeed(pr)
	tape := &Tape{Input: feed}

	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan error, 1)
	go func() {
		_, err := tape.ReceiveContext(ctx)
		result <- err
	}()

	cancel()

	select {
	case err := <-result:
		assert.ErrorIs(err, context.Canceled)
	case <-time.After(3 * time.Second):
		t.Fatal("receive was not abandoned")
	}

	// Data written after the cancel is still delivered.
	go pw.Write([]byte("Z"))

	value, err := tape.Receive()
	assert.NoError(err)
	assert.Equal(byte('Z'), value)
}

func TestFeed_Error(t *testing.T) {
	assert := assert.New(t)

	pr, pw := io.Pipe()
	pw.CloseWithError(io.ErrUnexpectedEOF)

	tape := &Tape{Input: NewFeed(pr)}
	_, err := tape.ReceiveContext(context.Background())
	assert.ErrorIs(err, io.ErrUnexpectedEOF)
}
