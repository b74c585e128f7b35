package cli

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInterruptHandler(t *testing.T) {
	tests := []struct {
		writer io.Writer
		name   string
	}{
		{name: "with custom writer", writer: &bytes.Buffer{}},
		{name: "with nil writer", writer: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewInterruptHandler(tt.writer)
			assert.NotNil(t, handler)
			assert.NotNil(t, handler.writer)
			assert.False(t, handler.WasInterrupted())
		})
	}
}

func TestInterruptHandler_Interrupt(t *testing.T) {
	var out bytes.Buffer
	handler := NewInterruptHandler(&out)
	ctx := handler.HandleInterrupts(context.Background(), "Run profiles refresh again to finish.")

	handler.interrupt()
	handler.interrupt()
	handler.cancelFunc()

	<-ctx.Done()
	assert.True(t, handler.WasInterrupted())
	assert.Equal(t, 1, bytes.Count(out.Bytes(), []byte("Interrupted!")))
	assert.Contains(t, out.String(), "Run profiles refresh again to finish.")
}

func TestInterruptHandler_ParentCancel(t *testing.T) {
	handler := NewInterruptHandler(&bytes.Buffer{})
	parent, cancel := context.WithCancel(context.Background())
	ctx := handler.HandleInterrupts(parent, "")

	cancel()
	<-ctx.Done()
	assert.False(t, handler.WasInterrupted())
}
