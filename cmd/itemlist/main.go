package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/goliatone/go-itemlist"
	"github.com/goliatone/go-itemlist/pkg/engine"
	"github.com/goliatone/go-itemlist/pkg/renderers/tui"
)

func main() {
	os.Exit(cli(os.Args[1:], os.Stdout))
}

// cli runs the command and returns the process exit code. Every path returns
// through the deferred logger flush.
func cli(args []string, stdout io.Writer) int {
	flags := flag.NewFlagSet("itemlist", flag.ContinueOnError)
	configPath := flags.String("config", "", "widget configuration file (JSON or YAML)")
	value := flags.String("value", "", "initial field value")
	file := flags.String("file", "", "read the initial field value from this file")
	mode := flags.String("mode", "tui", "tui, prompt, html or exec")
	output := flags.String("output", "", "write the resulting value or markup to this file (stdout if empty)")
	verbose := flags.Bool("verbose", false, "log list mutations to stderr")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	ctx := context.Background()

	logger := zap.NewNop()
	if *verbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			log.Printf("Failed to build logger: %v", err)
			return 1
		}
		logger = dev
	}
	defer func() { _ = logger.Sync() }()

	raw := *value
	if *file != "" {
		data, err := os.ReadFile(*file)
		if err != nil {
			log.Printf("Failed to read value: %v", err)
			return 1
		}
		raw = string(data)
	}

	opts := []itemlist.Option{itemlist.WithLogger(logger)}
	if *configPath != "" {
		cfg, err := itemlist.LoadConfig(*configPath)
		if err != nil {
			log.Printf("Failed to load config: %v", err)
			return 1
		}
		opts = append(opts, itemlist.WithConfig(cfg))
	}

	result, err := run(ctx, *mode, raw, flags.Args(), opts)
	if err != nil {
		if errors.Is(err, tui.ErrAborted) {
			return 130
		}
		log.Printf("Failed to edit list: %v", err)
		return 1
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(result), 0o644); err != nil {
			log.Printf("Failed to write output: %v", err)
			return 1
		}
		fmt.Fprintf(stdout, "Value written to %s\n", *output)
		return 0
	}
	fmt.Fprintln(stdout, result)
	return 0
}

func run(ctx context.Context, mode, raw string, commands []string, opts []itemlist.Option) (string, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "html":
		w, err := itemlist.NewHTML(ctx, raw, opts...)
		if err != nil {
			return "", err
		}
		if err := execute(w.List, commands); err != nil {
			return "", err
		}
		return w.Widget.Render()

	case "exec":
		term, err := itemlist.NewTerminal(ctx, raw, opts...)
		if err != nil {
			return "", err
		}
		if err := execute(term.List, commands); err != nil {
			return "", err
		}
		return term.List.Val()

	case "prompt":
		term, err := itemlist.NewTerminal(ctx, raw, opts...)
		if err != nil {
			return "", err
		}
		editor, err := term.PromptEditor()
		if err != nil {
			return "", err
		}
		if err := editor.Run(ctx); err != nil {
			return "", err
		}
		return term.List.Val()

	case "tui", "":
		term, err := itemlist.NewTerminal(ctx, raw, opts...)
		if err != nil {
			return "", err
		}
		model, err := term.Model()
		if err != nil {
			return "", err
		}
		if _, err := tea.NewProgram(model).Run(); err != nil {
			return "", err
		}
		if model.Aborted() {
			return "", tui.ErrAborted
		}
		return term.List.Val()

	default:
		return "", fmt.Errorf("unknown mode %q", mode)
	}
}

// execute runs commands of the form name[:arg...], e.g. add:foo,
// reorder:0:2 or remove:1, through the list's command surface.
func execute(list *engine.List, commands []string) error {
	for _, command := range commands {
		name, args, err := parseCommand(command)
		if err != nil {
			return err
		}
		if _, ok := list.Dispatch(name, args...); !ok {
			return fmt.Errorf("command %q rejected", command)
		}
	}
	return nil
}

func parseCommand(command string) (string, []any, error) {
	parts := strings.Split(command, ":")
	name := strings.ToLower(strings.TrimSpace(parts[0]))
	rest := parts[1:]

	switch name {
	case engine.CommandRemove, engine.CommandReorder:
		args := make([]any, len(rest))
		for idx, part := range rest {
			n, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return "", nil, fmt.Errorf("command %q: index %q: %w", command, part, err)
			}
			args[idx] = n
		}
		return name, args, nil
	case engine.CommandUpdate:
		if len(rest) < 2 {
			return "", nil, fmt.Errorf("command %q: expected update:index:item", command)
		}
		n, err := strconv.Atoi(strings.TrimSpace(rest[0]))
		if err != nil {
			return "", nil, fmt.Errorf("command %q: index %q: %w", command, rest[0], err)
		}
		return name, []any{n, tui.ParseItem(strings.Join(rest[1:], ":"))}, nil
	case engine.CommandAdd:
		if len(rest) == 0 {
			return "", nil, fmt.Errorf("command %q: expected add:item", command)
		}
		return name, []any{tui.ParseItem(strings.Join(rest, ":"))}, nil
	case engine.CommandVal:
		if len(rest) == 0 {
			return name, nil, nil
		}
		return name, []any{strings.Join(rest, ":")}, nil
	default:
		return name, nil, nil
	}
}
