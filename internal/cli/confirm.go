package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/runoshun/todo-iq/internal/app"
	"github.com/runoshun/todo-iq/internal/domain"
	"github.com/runoshun/todo-iq/internal/tui"
	"github.com/spf13/cobra"
)

// runConfirmDialogFunc runs the interactive dialog, allowing it to be mocked in tests.
var runConfirmDialogFunc = tui.RunConfirm

// confirm asks a yes/no question. Interactive terminals get the dialog unless
// [ui] confirm is "plain"; everything else gets a line prompt.
func confirm(cmd *cobra.Command, c *app.Container, title, prompt string) (bool, error) {
	in, out := cmd.InOrStdin(), cmd.OutOrStdout()
	if c.AppConfig.UI.Confirm != domain.ConfirmPlain && isTerminal(in) && isTerminal(out) {
		return runConfirmDialogFunc(title, prompt, in, out)
	}
	question := title
	if prompt != "" {
		question = prompt + "\n" + title
	}
	return promptYesNo(in, out, question)
}

// promptYesNo asks until the answer is yes or no. End of input counts as no.
func promptYesNo(in io.Reader, out io.Writer, question string) (bool, error) {
	reader := bufio.NewReader(in)
	for {
		_, _ = fmt.Fprintf(out, "%s [y/n]: ", question)
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, fmt.Errorf("read answer: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		if errors.Is(err, io.EOF) {
			_, _ = fmt.Fprintln(out)
			return false, nil
		}
		_, _ = fmt.Fprintln(out, "Please answer y or n.")
	}
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
