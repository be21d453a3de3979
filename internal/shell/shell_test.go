package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"dstore/pkg/dberrors"
	"dstore/pkg/node"
	"dstore/pkg/types"
)

// fakeNode answers from a canned script of results and errors.
type fakeNode struct {
	setRes node.Result
	setErr error
	getRes node.Result
	getErr error
	delRes node.Result
	delErr error

	lastKey, lastValue []byte
}

func (f *fakeNode) Set(ctx context.Context, key types.Key, value types.Value) (node.Result, error) {
	f.lastKey, f.lastValue = key, value
	return f.setRes, f.setErr
}

func (f *fakeNode) Get(ctx context.Context, key types.Key) (node.Result, error) {
	f.lastKey = key
	return f.getRes, f.getErr
}

func (f *fakeNode) Del(ctx context.Context, key types.Key) (node.Result, error) {
	f.lastKey = key
	return f.delRes, f.delErr
}

func newShell(n iNode) (*Shell, *bytes.Buffer, chan struct{}) {
	out := &bytes.Buffer{}
	quitCh := make(chan struct{}, 1)
	s := New(n, &bytes.Buffer{}, out, func() { quitCh <- struct{}{} })
	return s, out, quitCh
}

func TestShell_SetOutcomes(t *testing.T) {
	cases := []struct {
		outcome node.Outcome
		want    string
	}{
		{node.Stored, "Database updated"},
		{node.LocalConflict, "Key occupied!"},
		{node.GlobalConflict, "(Updated local) Key occupied!"},
	}
	for _, tc := range cases {
		n := &fakeNode{setRes: node.Result{Outcome: tc.outcome}}
		s, out, _ := newShell(n)

		if err := s.RunLine(context.Background(), "SET greeting hello world"); err != nil {
			t.Fatalf("RunLine errored: %v", err)
		}
		if got := strings.TrimSpace(out.String()); got != tc.want {
			t.Fatalf("outcome %v: expected %q, got %q", tc.outcome, tc.want, got)
		}
		if string(n.lastKey) != "greeting" || string(n.lastValue) != "hello world" {
			t.Fatalf("outcome %v: bad dispatch key=%q value=%q", tc.outcome, n.lastKey, n.lastValue)
		}
	}
}

func TestShell_GetOutcomes(t *testing.T) {
	n := &fakeNode{getRes: node.Result{Outcome: node.FoundLocal, Value: []byte("v")}}
	s, out, _ := newShell(n)

	if err := s.RunLine(context.Background(), "GET k"); err != nil {
		t.Fatalf("RunLine errored: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "db: k -> v" {
		t.Fatalf("expected local hit line, got %q", got)
	}

	n.getRes = node.Result{Outcome: node.FoundGlobal, Value: []byte("v")}
	out.Reset()
	if err := s.RunLine(context.Background(), "OUT k"); err != nil {
		t.Fatalf("RunLine errored: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "global: k -> v  (Updating Local)" {
		t.Fatalf("expected global hit line, got %q", got)
	}
}

func TestShell_GetNotFound(t *testing.T) {
	n := &fakeNode{getErr: dberrors.ErrNotFound}
	s, out, _ := newShell(n)

	if err := s.RunLine(context.Background(), "GET nope"); err != nil {
		t.Fatalf("RunLine errored: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "Key-Value mapping doesn't exist" {
		t.Fatalf("expected not-found line, got %q", got)
	}
}

func TestShell_Del(t *testing.T) {
	n := &fakeNode{delRes: node.Result{Outcome: node.Removed}}
	s, out, _ := newShell(n)

	if err := s.RunLine(context.Background(), "REM k"); err != nil {
		t.Fatalf("RunLine errored: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "Mappings removed" {
		t.Fatalf("expected removal line, got %q", got)
	}
}

func TestShell_UnavailableIsDistinct(t *testing.T) {
	n := &fakeNode{setErr: fmt.Errorf("%w: connection refused", dberrors.ErrUnavailable)}
	s, out, _ := newShell(n)

	if err := s.RunLine(context.Background(), "PUT k v"); err != nil {
		t.Fatalf("RunLine errored: %v", err)
	}
	if got := out.String(); !strings.Contains(got, "Global unreachable") {
		t.Fatalf("expected unreachable line, got %q", got)
	}
}

func TestShell_Exit(t *testing.T) {
	s, _, quitCh := newShell(&fakeNode{})

	err := s.RunLine(context.Background(), ".exit")
	if err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	select {
	case <-quitCh:
	default:
		t.Fatal("expected quit() to be called")
	}
}

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

// A broken input stream ends the loop with a message, not silently like EOF.
func TestShell_RunReportsReadError(t *testing.T) {
	out := &bytes.Buffer{}
	s := New(&fakeNode{}, errReader{err: errors.New("tty gone")}, out, nil)

	s.Run(context.Background())
	if !strings.Contains(out.String(), "tty gone") {
		t.Fatalf("expected read error to be reported, got %q", out.String())
	}

	// Plain EOF stays quiet.
	out.Reset()
	s = New(&fakeNode{}, &bytes.Buffer{}, out, nil)
	s.Run(context.Background())
	if strings.Contains(out.String(), "Input error") {
		t.Fatalf("EOF must not report an error, got %q", out.String())
	}
}

func TestShell_UnknownCommand(t *testing.T) {
	s, out, _ := newShell(&fakeNode{})

	if err := s.RunLine(context.Background(), "FROB k"); err != nil {
		t.Fatalf("RunLine errored: %v", err)
	}
	if !strings.Contains(out.String(), "Unknown command") {
		t.Fatalf("expected unknown-command line, got %q", out.String())
	}
}
