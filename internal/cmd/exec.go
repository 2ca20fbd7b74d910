package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

const outputEnv = "DOCTEST_OUTPUT"

// execHook runs the --exec command once the generated file is written.
// {} and $DOCTEST_OUTPUT both expand to the output path.
func execHook(opts *options, output string, stdout, stderr io.Writer) error {
	command := strings.ReplaceAll(opts.exec, "{}", output)

	opts.status("--- exec : %s ---\n", command)

	env := append(os.Environ(), outputEnv+"="+output)

	exitCode, err := runCommand(command, env, stdout, stderr)
	if err != nil {
		return fmt.Errorf("--exec: %w", err)
	}

	if exitCode != 0 {
		return fmt.Errorf("--exec: command exited with %d", exitCode)
	}

	return nil
}

func runCommand(command string, env []string, stdout, stderr io.Writer) (int, error) {
	file, err := syntax.NewParser().Parse(strings.NewReader(command), "exec")
	if err != nil {
		return -1, err
	}

	runner, err := interp.New(
		interp.Env(expand.ListEnviron(env...)),
		interp.StdIO(nil, stdout, stderr),
	)
	if err != nil {
		return -1, err
	}

	if err := runner.Run(context.Background(), file); err != nil {
		if status, ok := interp.IsExitStatus(err); ok {
			return int(status), nil
		}

		return -1, err
	}

	return 0, nil
}
