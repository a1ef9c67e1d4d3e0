package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	apperrors "github.com/yanqian/astro-insight/pkg/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(execute(ctx, os.Args[1:], os.Stdout, os.Stderr, initializeCLI))
}

// execute runs the command and converts every failure into exit status 1.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer, factory cliFactory) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(stderr, "Error: unexpected failure: %v\n", r)
			code = 1
		}
	}()

	cmd := newRootCmd(factory)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		message := err.Error()
		if apperrors.IsCode(err, apperrors.CodeInvalidInput) {
			message = apperrors.MessageOf(err)
		}
		fmt.Fprintf(stderr, "Error: %s\n", message)
		return 1
	}
	return 0
}
