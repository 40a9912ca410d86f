// Package console implements the line-oriented command interface of the storefront.
//
// Each line holds a verb, matched without regard to case. Verbs that need arguments prompt for
// them one line at a time; every answer is trimmed of surrounding whitespace.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/abgdnv/storefront/internal/service"
	"github.com/abgdnv/storefront/pkg/logger"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const prompt = ">"

// errQuit ends the session without an error.
var errQuit = errors.New("quit")

type command func(ctx context.Context, in *input) error

// Console reads commands and prints their results.
type Console struct {
	svc      service.CatalogService
	out      io.Writer
	logger   *slog.Logger
	tracer   trace.Tracer
	commands map[string]command
}

// New creates a console writing results to out.
func New(svc service.CatalogService, out io.Writer, logger *slog.Logger) *Console {
	c := &Console{
		svc:    svc,
		out:    out,
		logger: logger.With("component", "console"),
		tracer: otel.Tracer("storefront/console"),
	}
	c.commands = c.routes()
	return c
}

// Run processes lines from in until QUIT, end of input or cancellation of ctx.
// It returns ctx.Err() when cancelled and nil otherwise.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	lines := newInput(ctx, in)
	c.print(prompt)
	for {
		line, err := lines.next(ctx)
		if errors.Is(err, io.EOF) {
			c.println()
			return nil
		}
		if err != nil {
			return err
		}
		if line == "" {
			c.print("\n" + prompt)
			continue
		}
		if err := c.execute(ctx, line, lines); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			return err
		}
		c.print("\n" + prompt)
	}
}

// execute runs one verb, reading its arguments from in.
func (c *Console) execute(ctx context.Context, verb string, in *input) error {
	verb = strings.ToUpper(strings.TrimSpace(verb))
	cmd, ok := c.commands[verb]
	if !ok {
		c.printf("Unknown command %q. Commands: %s\n", verb, strings.Join(verbs, " "))
		return nil
	}

	ctx = logger.WithCommandID(ctx, uuid.NewString())
	ctx, span := c.tracer.Start(ctx, "console."+verb, trace.WithAttributes(attribute.String("verb", verb)))
	defer span.End()

	c.logger.DebugContext(ctx, "Executing command", "verb", verb)
	return cmd(ctx, in)
}

// report prints a failed operation's message for the user.
func (c *Console) report(err error) {
	c.println(err.Error())
}

func (c *Console) print(s string) {
	_, _ = io.WriteString(c.out, s)
}

func (c *Console) println(a ...any) {
	_, _ = fmt.Fprintln(c.out, a...)
}

func (c *Console) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(c.out, format, a...)
}

// input delivers the lines of a reader. Reading happens on its own goroutine so a blocked read
// does not hold up cancellation.
type input struct {
	lines <-chan string
	errc  <-chan error
}

func newInput(ctx context.Context, r io.Reader) *input {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- strings.TrimSpace(scanner.Text()):
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			errc <- err
		}
	}()
	return &input{lines: lines, errc: errc}
}

// next returns the next trimmed line, io.EOF at the end of input or ctx.Err() on cancellation.
func (in *input) next(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-in.lines:
		if ok {
			return line, nil
		}
		if err := ctx.Err(); err != nil {
			return "", err
		}
		select {
		case err := <-in.errc:
			return "", fmt.Errorf("failed to read input: %w", err)
		default:
			return "", io.EOF
		}
	}
}

// ask prints a prompt and returns the answer. A missing answer at the end of input is empty.
func (c *Console) ask(ctx context.Context, in *input, label string) (string, error) {
	c.print(label)
	answer, err := in.next(ctx)
	if errors.Is(err, io.EOF) {
		return "", nil
	}
	return answer, err
}
