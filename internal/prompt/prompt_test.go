package prompt

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"jellyname/internal/logging"
	"jellyname/internal/renamer"
)

func TestConfirmAnswers(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"n\n", false},
		{"N\n", false},
		{"  y  \n", true},
		{"y", true},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		c := NewConfirmer(strings.NewReader(tt.input), &out)
		got, err := c.Confirm(context.Background(), "Proceed? [y/n]")
		if err != nil {
			t.Fatalf("Confirm(%q) returned error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Fatalf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestConfirmRepromptsOnInvalidInput(t *testing.T) {
	var out bytes.Buffer
	c := NewConfirmer(strings.NewReader("maybe\n\nx\nn\n"), &out)
	got, err := c.Confirm(context.Background(), "Proceed? [y/n]")
	if err != nil {
		t.Fatalf("Confirm returned error: %v", err)
	}
	if got {
		t.Fatal("expected rejection")
	}
	if n := strings.Count(out.String(), "Proceed? [y/n]"); n != 4 {
		t.Fatalf("expected 4 prompts, got %d in %q", n, out.String())
	}
}

func TestConfirmEOF(t *testing.T) {
	var out bytes.Buffer
	c := NewConfirmer(strings.NewReader("x\n"), &out)
	if _, err := c.Confirm(context.Background(), "Proceed?"); !errors.Is(err, ErrNoInput) {
		t.Fatalf("expected ErrNoInput, got %v", err)
	}
}

func TestConfirmSequentialAnswers(t *testing.T) {
	var out bytes.Buffer
	c := NewConfirmer(strings.NewReader("y\nn\n"), &out)
	first, err := c.Confirm(context.Background(), "one")
	if err != nil || !first {
		t.Fatalf("first answer = %v, %v", first, err)
	}
	second, err := c.Confirm(context.Background(), "two")
	if err != nil || second {
		t.Fatalf("second answer = %v, %v", second, err)
	}
}

func TestApproveUsesPlanNames(t *testing.T) {
	var out bytes.Buffer
	c := NewConfirmer(strings.NewReader("y\n"), &out)
	plan := renamer.Plan{SourceName: "Show.S01E02.mkv", DestinationName: "Show S01E02.mkv"}

	ok, err := c.Approve(context.Background(), plan)
	if err != nil || !ok {
		t.Fatalf("Approve = %v, %v", ok, err)
	}
	if !strings.Contains(out.String(), "Rename 'Show.S01E02.mkv' to 'Show S01E02.mkv'? [y/n]") {
		t.Fatalf("unexpected prompt %q", out.String())
	}
	if strings.Contains(out.String(), ansiBold) {
		t.Fatal("non-terminal output must not be colorized")
	}
}

func TestApproveCancelledContext(t *testing.T) {
	c := NewConfirmer(strings.NewReader("y\n"), &bytes.Buffer{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := c.Approve(ctx, renamer.Plan{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestConfirmReturnsWhenCancelledWhileWaiting(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	c := NewConfirmer(pr, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)

	done := make(chan error, 1)
	go func() {
		_, err := c.Confirm(ctx, "Proceed?")
		done <- err
	}()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Confirm still blocked after cancellation")
	}
}

func TestEngineStopsAtPromptOnCancel(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.S01E01.mkv", "b.S01E02.mkv"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	pr, pw := io.Pipe()
	defer pw.Close()
	engine := renamer.NewEngine(logging.NewNop(), NewConfirmer(pr, io.Discard), nil)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(50*time.Millisecond, cancel)

	type result struct {
		summary renamer.Summary
		err     error
	}
	done := make(chan result, 1)
	go func() {
		summary, err := engine.Process(ctx, renamer.Options{Pattern: "Show", Directory: dir})
		done <- result{summary, err}
	}()

	var res result
	select {
	case res = <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Process still blocked after cancellation")
	}
	if !errors.Is(res.err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", res.err)
	}

	// A late answer must not reach the renamer.
	go func() { _, _ = pw.Write([]byte("y\n")) }()
	time.Sleep(50 * time.Millisecond)

	if res.summary.Renamed != 0 {
		t.Fatalf("expected no renames, got %+v", res.summary)
	}
	for _, name := range []string{"a.S01E01.mkv", "b.S01E02.mkv"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("expected %s untouched: %v", name, err)
		}
	}
}
