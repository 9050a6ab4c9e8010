package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestSpinnerWritesAndClearsFrames(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner("Resolving layout")
	s.out = &buf

	s.Start()
	time.Sleep(3 * spinnerInterval)
	s.Stop()

	out := buf.String()
	if !strings.Contains(out, "Resolving layout") {
		t.Errorf("spinner output should contain the message, got %q", out)
	}
	if !strings.HasSuffix(out, "\r") {
		t.Error("spinner should clear its line on stop")
	}
}

func TestSpinnerStopIsNotCancellation(t *testing.T) {
	s := newSpinner("Working")
	s.out = &bytes.Buffer{}

	s.Start()
	s.Stop()

	if s.Cancelled() {
		t.Error("a plain Stop should not report the spinner as cancelled")
	}
}

func TestSpinnerContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := newSpinnerWithContext(ctx, "Working")
	s.out = &bytes.Buffer{}
	s.Start()

	cancel()

	// Give the animation goroutine time to notice.
	time.Sleep(2 * spinnerInterval)

	if !s.Cancelled() {
		t.Error("spinner should report cancellation after its context ends")
	}
}

func TestSpinnerContextTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), spinnerInterval)
	defer cancel()

	s := newSpinnerWithContext(ctx, "Working")
	s.out = &bytes.Buffer{}
	s.Start()

	time.Sleep(3 * spinnerInterval)

	if !s.Cancelled() {
		t.Error("spinner should report cancellation after its context times out")
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinner("Working")
	s.out = &bytes.Buffer{}
	s.Start()

	s.Stop()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopWithOutcome(t *testing.T) {
	s := newSpinner("Working")
	s.out = &bytes.Buffer{}
	s.Start()
	s.StopWithSuccess("Layout complete")

	s = newSpinner("Working")
	s.out = &bytes.Buffer{}
	s.Start()
	s.StopWithError("Layout failed")
}
