// Package shell is a thin command layer over a running node. It parses user
// input into SET/GET/DEL operations, dispatches them to the coherence layer,
// and prints the outcome; it does not own the node's lifecycle.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"dstore/pkg/dberrors"
	"dstore/pkg/node"
	"dstore/pkg/types"
)

const prompt = "db > "

// iNode is the slice of the node the shell drives. It allows using a fake
// node in tests.
type iNode interface {
	Set(ctx context.Context, key types.Key, value types.Value) (node.Result, error)
	Get(ctx context.Context, key types.Key) (node.Result, error)
	Del(ctx context.Context, key types.Key) (node.Result, error)
}

type Shell struct {
	node iNode
	in   io.Reader
	out  io.Writer
	quit func()
}

// New constructs a shell over the provided node. `in` and `out` are the I/O
// streams; `quit` is invoked on the exit keyword.
func New(n iNode, in io.Reader, out io.Writer, quit func()) *Shell {
	if quit == nil {
		quit = func() {}
	}
	return &Shell{node: n, in: in, out: out, quit: quit}
}

// Run reads commands line by line until EOF or the exit keyword.
func (s *Shell) Run(ctx context.Context) {
	scanner := bufio.NewScanner(s.in)
	fmt.Fprint(s.out, prompt)
	for scanner.Scan() {
		if err := s.RunLine(ctx, scanner.Text()); err == io.EOF {
			return
		}
		fmt.Fprint(s.out, prompt)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(s.out, "Input error: %v\n", err)
	}
}

// RunLine executes a single command line. Commands:
//
//	SET|PUT <key> <value>
//	GET|OUT <key>
//	DEL|REM <key>
//	.exit
//
// Returns io.EOF on exit; command failures are printed, not returned.
func (s *Shell) RunLine(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	if line == ".exit" {
		s.quit()
		return io.EOF
	}

	fields := strings.Fields(line)
	cmd := strings.ToUpper(fields[0])

	switch cmd {
	case "SET", "PUT":
		if len(fields) < 3 {
			fmt.Fprintln(s.out, "Usage: SET <key> <value>")
			return nil
		}
		key := []byte(fields[1])
		value := []byte(strings.Join(fields[2:], " "))
		s.printSet(s.node.Set(ctx, key, value))

	case "GET", "OUT":
		if len(fields) != 2 {
			fmt.Fprintln(s.out, "Usage: GET <key>")
			return nil
		}
		res, err := s.node.Get(ctx, []byte(fields[1]))
		s.printGet(fields[1], res, err)

	case "DEL", "REM":
		if len(fields) != 2 {
			fmt.Fprintln(s.out, "Usage: DEL <key>")
			return nil
		}
		s.printDel(s.node.Del(ctx, []byte(fields[1])))

	default:
		fmt.Fprintf(s.out, "Unknown command: %s\n", fields[0])
	}
	return nil
}

func (s *Shell) printSet(res node.Result, err error) {
	if err != nil {
		s.printErr(err)
		return
	}
	switch res.Outcome {
	case node.Stored:
		fmt.Fprintln(s.out, "Database updated")
	case node.LocalConflict:
		fmt.Fprintln(s.out, "Key occupied!")
	case node.GlobalConflict:
		fmt.Fprintln(s.out, "(Updated local) Key occupied!")
	}
}

func (s *Shell) printGet(key string, res node.Result, err error) {
	if err != nil {
		s.printErr(err)
		return
	}
	switch res.Outcome {
	case node.FoundLocal:
		fmt.Fprintf(s.out, "db: %s -> %s\n", key, res.Value)
	case node.FoundGlobal:
		fmt.Fprintf(s.out, "global: %s -> %s  (Updating Local)\n", key, res.Value)
	}
}

func (s *Shell) printDel(res node.Result, err error) {
	if err != nil {
		s.printErr(err)
		return
	}
	fmt.Fprintln(s.out, "Mappings removed")
}

func (s *Shell) printErr(err error) {
	switch {
	case errors.Is(err, dberrors.ErrNotFound):
		fmt.Fprintln(s.out, "Key-Value mapping doesn't exist")
	case errors.Is(err, dberrors.ErrUnavailable):
		fmt.Fprintf(s.out, "Global unreachable: %v\n", err)
	default:
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
}
