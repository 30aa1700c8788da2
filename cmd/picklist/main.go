package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/td0m/picklist/internal/logging"
	"github.com/td0m/picklist/internal/terminal"
	"github.com/td0m/picklist/pkg/listio"
	"github.com/td0m/picklist/pkg/picker"
	"github.com/td0m/picklist/pkg/selection"
	"golang.org/x/term"
)

var defaultLabels = []string{"Item 1", "Item 2", "Item 3", "Item 4"}

type options struct {
	from     string
	title    string
	inline   bool
	noHelp   bool
	format   string
	output   string
	logFile  string
	logLevel string
	debug    bool
}

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(in *os.File, out *os.File) *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:   "picklist [label...]",
		Short: "Pick items from a list in the terminal",
		Long: `Shows a list in the terminal. Move with up/down/tab, toggle with
enter/space and leave with q, esc or ctrl+c.`,
		Example: `  picklist
  picklist apples pears plums --format text
  picklist --from fruit.yaml --format json --output picked.json`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, o, args, in, out)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.from, "from", "", "read labels from a yaml or json list")
	f.StringVar(&o.title, "title", picker.DefaultTitle, "banner shown above the list")
	f.BoolVar(&o.inline, "inline", false, "draw below the prompt instead of on the alternate screen")
	f.BoolVar(&o.noHelp, "no-help", false, "hide the key binding footer")
	f.StringVar(&o.format, "format", string(listio.FormatNone), "print the selection on exit: none, text, json or yaml")
	f.StringVarP(&o.output, "output", "o", "", "write the selection to a file instead of stdout")
	f.StringVar(&o.logFile, "log-file", "", "append logs to this file")
	f.StringVar(&o.logLevel, "log-level", "info", "log level")
	f.BoolVar(&o.debug, "debug", false, "enable debug logging on stderr")
	return cmd
}

func run(cmd *cobra.Command, o *options, args []string, in, out *os.File) error {
	format, err := listio.ParseFormat(o.format)
	if err != nil {
		return err
	}

	log, err := logging.New(logging.Config{Level: o.logLevel, File: o.logFile, Debug: o.debug})
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer log.Close()

	labels, err := loadLabels(o.from, args)
	if err != nil {
		return err
	}
	list, err := selection.New(labels)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(in.Fd())) {
		log.Warn().Msg("stdin is not a terminal, keys will not be read raw")
	}
	log.Info().Int("items", list.Len()).Msg("session starting")

	quiet := log.Quiet()
	m := picker.New(list,
		picker.WithTitle(o.title),
		picker.WithHelp(!o.noHelp),
		picker.WithLogger(quiet),
	)
	s := terminal.Open(in, out,
		terminal.WithAltScreen(!o.inline),
		terminal.WithLogger(quiet),
	)
	defer s.Close()

	if _, err := s.Run(cmd.Context(), m); err != nil {
		log.Error().Err(err).Msg("session failed")
		return err
	}
	log.Info().Int("selected", list.SelectedCount()).Msg("session finished")

	return report(out, o.output, format, list)
}

// loadLabels merges positional labels with the ones read from file, falling back
// to the default list
func loadLabels(from string, args []string) ([]string, error) {
	out := append([]string{}, args...)
	if from != "" {
		fromFile, err := listio.LoadLabels(from)
		if err != nil {
			return nil, err
		}
		out = append(out, fromFile...)
	}
	if len(out) == 0 {
		return defaultLabels, nil
	}
	return out, nil
}

func report(out io.Writer, file string, format listio.Format, list *selection.List) error {
	if file != "" {
		return listio.Save(file, format, list)
	}
	return listio.Write(out, format, list)
}
