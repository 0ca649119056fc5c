package script

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/poset/registry"
)

// Sentinel errors for malformed script lines.
var (
	// ErrUnknownCommand indicates a line whose first field names no command.
	ErrUnknownCommand = errors.New("script: unknown command")

	// ErrArgs indicates a command given the wrong number of operands.
	ErrArgs = errors.New("script: wrong number of arguments")

	// ErrBadPosetID indicates a poset operand that is not an unsigned integer.
	ErrBadPosetID = errors.New("script: bad poset id")
)

// Interpreter executes script lines against one registry.
type Interpreter struct {
	reg  *registry.Registry
	out  io.Writer
	log  zerolog.Logger
	echo bool
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithLogger sets the logger receiving one debug event per executed line.
func WithLogger(l zerolog.Logger) Option {
	return func(in *Interpreter) { in.log = l }
}

// WithEcho makes the interpreter print each command, prefixed by "> ",
// before its result.
func WithEcho(on bool) Option {
	return func(in *Interpreter) { in.echo = on }
}

// New returns an Interpreter running against reg and printing to out.
func New(reg *registry.Registry, out io.Writer, opts ...Option) *Interpreter {
	in := &Interpreter{reg: reg, out: out, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(in)
	}

	return in
}

// Run executes every line read from r. Malformed lines are reported on the
// output like failed operations, and also collected into the returned error
// together with their line numbers. Reading stops early when ctx is done.
func (in *Interpreter) Run(ctx context.Context, r io.Reader) error {
	var errs []error
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := in.Exec(sc.Text()); err != nil {
			if _, werr := fmt.Fprintf(in.out, "error: %v\n", err); werr != nil {
				return werr
			}
			errs = append(errs, fmt.Errorf("line %d: %w", n, err))
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("script: read: %w", err)
	}

	return errors.Join(errs...)
}

// Exec executes a single line and prints its result. It returns an error
// only for a malformed line; operation failures are printed instead.
func (in *Interpreter) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}
	if in.echo {
		if _, err := fmt.Fprintf(in.out, "> %s\n", strings.Join(fields, " ")); err != nil {
			return err
		}
	}

	name, args := fields[0], fields[1:]
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	if len(args) != cmd.arity {
		return fmt.Errorf("%w: %s takes %d, got %d", ErrArgs, name, cmd.arity, len(args))
	}

	var id registry.PosetID
	if cmd.arity > 0 {
		v, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrBadPosetID, args[0])
		}
		id = registry.PosetID(v)
		args = args[1:]
	}

	res, err := cmd.run(in.reg, id, args)
	in.log.Debug().Str("cmd", name).Strs("args", fields[1:]).AnErr("reason", err).Msg("script line")
	if errors.Is(err, ErrArgs) {
		return err
	}
	if err != nil {
		res = "error: " + err.Error() + "\n"
	}
	_, err = io.WriteString(in.out, res)

	return err
}
