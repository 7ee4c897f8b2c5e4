package event

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"testing/iotest"
)

func TestResponseRecorderText(t *testing.T) {
	rec := NewResponseRecorder()
	rec.Header().Set("Content-Type", "text/plain")
	rec.WriteHeader(http.StatusOK)
	if _, err := rec.Write([]byte("hello world")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	out, err := rec.Event()
	if err != nil {
		t.Fatalf("Event failed: %v", err)
	}

	if out.StatusCode != 200 {
		t.Errorf("Expected status 200, got %d", out.StatusCode)
	}
	if out.Headers["Content-Type"] != "text/plain" {
		t.Errorf("Expected Content-Type text/plain, got %q", out.Headers["Content-Type"])
	}
	if out.Body != "hello world" {
		t.Errorf("Expected body %q, got %q", "hello world", out.Body)
	}
	if out.IsBase64Encoded {
		t.Error("Expected IsBase64Encoded=false for a text body")
	}
}

func TestResponseRecorderBinary(t *testing.T) {
	rec := NewResponseRecorder()
	rec.Header().Set("Content-Type", "image/png")
	if _, err := rec.Write([]byte{0x89, 0x50, 0x4e, 0x47}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	out, err := rec.Event()
	if err != nil {
		t.Fatalf("Event failed: %v", err)
	}

	if !out.IsBase64Encoded {
		t.Error("Expected IsBase64Encoded=true for a PNG body")
	}
	if out.Body != "iVBORw==" {
		t.Errorf("Expected base64 body iVBORw==, got %q", out.Body)
	}
}

func TestResponseRecorderDefaultStatus(t *testing.T) {
	rec := NewResponseRecorder()

	out, err := rec.Event()
	if err != nil {
		t.Fatalf("Event failed: %v", err)
	}
	if out.StatusCode != 200 {
		t.Errorf("Expected implicit status 200, got %d", out.StatusCode)
	}
}

func TestResponseRecorderWriteHeaderOnce(t *testing.T) {
	rec := NewResponseRecorder()
	rec.WriteHeader(http.StatusCreated)
	rec.WriteHeader(http.StatusInternalServerError)

	out, err := rec.Event()
	if err != nil {
		t.Fatalf("Event failed: %v", err)
	}
	if out.StatusCode != 201 {
		t.Errorf("Expected first status 201 to win, got %d", out.StatusCode)
	}
}

func TestResponseRecorderInvalidStatus(t *testing.T) {
	rec := NewResponseRecorder()
	rec.WriteHeader(42)

	_, err := rec.Event()
	if !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("Expected ErrInvalidStatus, got %v", err)
	}
}

func TestResponseRecorderHeaderMultiplicity(t *testing.T) {
	rec := NewResponseRecorder()
	rec.Header().Add("Set-Cookie", "a=1")
	rec.Header().Add("Set-Cookie", "b=2")

	out, err := rec.Event()
	if err != nil {
		t.Fatalf("Event failed: %v", err)
	}

	values := out.MultiValueHeaders["Set-Cookie"]
	if len(values) != 2 || values[0] != "a=1" || values[1] != "b=2" {
		t.Errorf("Expected Set-Cookie=[a=1 b=2], got %v", values)
	}
	if out.Headers["Set-Cookie"] != "b=2" {
		t.Errorf("Expected single-value map to carry the last value, got %q", out.Headers["Set-Cookie"])
	}
}

func TestResponseRecorderBodyReadFailure(t *testing.T) {
	rec := NewResponseRecorder()
	src := iotest.TimeoutReader(strings.NewReader("partial body that fails"))

	// io.Copy uses the recorder's ReadFrom, mirroring a handler that
	// streams its response body.
	if _, err := io.Copy(rec, iotest.OneByteReader(src)); err == nil {
		t.Fatal("Expected copy error from failing reader")
	}

	_, err := rec.Event()
	if !errors.Is(err, ErrBodyReadFailure) {
		t.Errorf("Expected ErrBodyReadFailure, got %v", err)
	}
}
