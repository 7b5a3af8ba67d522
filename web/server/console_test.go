package server

import (
	"bytes"
	"encoding/json"
	"log"
	"strings"
	"testing"
	"time"
)

func TestWebLogger_RenderMessages(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		args     []interface{}
		expected string
	}{
		{
			name:     "render start",
			format:   "Rendering %dx%d at %d samples per pixel, depth %d (using %d workers)...\n",
			args:     []interface{}{40, 20, 16, 50, 4},
			expected: "Rendering 40x20 at 16 samples per pixel, depth 50 (using 4 workers)...\n",
		},
		{
			name:     "progress",
			format:   "Scanlines remaining: %d\n",
			args:     []interface{}{18},
			expected: "Scanlines remaining: 18\n",
		},
		{
			name:     "completion",
			format:   "Done in %v (%d samples)\n",
			args:     []interface{}{1500 * time.Millisecond, 12800},
			expected: "Done in 1.5s (12800 samples)\n",
		},
		{
			name:     "abort",
			format:   "Render aborted: %v\n",
			args:     []interface{}{"context canceled"},
			expected: "Render aborted: context canceled\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			messageChan := make(chan ConsoleMessage, 1)
			logger := NewWebLogger("render-test", messageChan)
			logger.Printf(tt.format, tt.args...)

			select {
			case msg := <-messageChan:
				if msg.Message != tt.expected {
					t.Errorf("Expected message %q, got %q", tt.expected, msg.Message)
				}
				if msg.Level != "info" {
					t.Errorf("Expected level 'info', got '%s'", msg.Level)
				}
				if time.Since(msg.Timestamp) > time.Second {
					t.Errorf("Timestamp seems too old: %v", msg.Timestamp)
				}
			default:
				t.Error("Expected a console message to be buffered")
			}
		})
	}
}

func TestWebLogger_WritesServerLogWithRenderID(t *testing.T) {
	var buf bytes.Buffer
	previous := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(previous)

	logger := NewWebLogger("render-42", nil)
	logger.Printf("Scanlines remaining: %d\n", 3)

	line := buf.String()
	if !strings.Contains(line, "[render-42] Scanlines remaining: 3") {
		t.Errorf("Expected server log line tagged with render ID, got %q", line)
	}
	if strings.Count(line, "\n") != 1 {
		t.Errorf("Trailing newline should be trimmed before logging, got %q", line)
	}
}

func TestWebLogger_FullChannelDropsMessages(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 1)
	logger := NewWebLogger("render-full", messageChan)

	// Nobody reads the channel; later progress lines must not block the render
	done := make(chan struct{})
	go func() {
		logger.Printf("Scanlines remaining: %d\n", 2)
		logger.Printf("Scanlines remaining: %d\n", 1)
		logger.Printf("Scanlines remaining: %d\n", 0)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Printf blocked on a full console channel")
	}

	messages := drainConsole(messageChan)
	if len(messages) != 1 || messages[0].Message != "Scanlines remaining: 2\n" {
		t.Errorf("Expected only the first progress line to be kept, got %+v", messages)
	}
}

func TestWebLogger_NilChannel(t *testing.T) {
	logger := NewWebLogger("render-nil", nil)

	// Server log only; must not panic
	logger.Printf("Done in %v (%d samples)\n", time.Second, 10)
}

func TestConsoleMessage_JSONSerialization(t *testing.T) {
	msg := ConsoleMessage{
		Message:   "Scanlines remaining: 5\n",
		Timestamp: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Level:     "info",
	}

	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	expected := `{"message":"Scanlines remaining: 5\n","timestamp":"2024-01-02T03:04:05Z","level":"info"}`
	if string(data) != expected {
		t.Errorf("Expected %s, got %s", expected, data)
	}
}

func TestDrainConsole(t *testing.T) {
	messageChan := make(chan ConsoleMessage, 4)
	logger := NewWebLogger("render-drain", messageChan)
	logger.Printf("Scanlines remaining: %d\n", 0)
	logger.Printf("Done in %v (%d samples)\n", 2*time.Second, 64)

	messages := drainConsole(messageChan)
	if len(messages) != 2 ||
		messages[0].Message != "Scanlines remaining: 0\n" ||
		messages[1].Message != "Done in 2s (64 samples)\n" {
		t.Errorf("Unexpected drained messages %+v", messages)
	}
	if again := drainConsole(messageChan); len(again) != 0 {
		t.Errorf("Expected empty channel after drain, got %d messages", len(again))
	}
}
