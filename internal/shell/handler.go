// Package shell provides the interactive sequencer prompt built on ishell.
// Lines that are not shell built-ins are routed to the command processor
// exactly as typed, so the prompt accepts the same input as a script.
package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/abiosoft/ishell/v2"
	"github.com/abiosoft/readline"

	"sequencer/internal/commands"
	"sequencer/internal/logger"
	"sequencer/internal/output"
	"sequencer/internal/processor"
	"sequencer/internal/version"
)

// Prompt is shown before every input line.
const Prompt = "sequencer> "

// Shell is an interactive session over one processor.
type Shell struct {
	proc     *processor.Processor
	printer  *output.Printer
	renderer *output.MarkdownRenderer
}

// New creates a session. A nil renderer prints help as plain markdown.
func New(proc *processor.Processor, printer *output.Printer, renderer *output.MarkdownRenderer) *Shell {
	if printer == nil {
		printer = output.GetGlobalPrinter()
	}
	return &Shell{proc: proc, printer: printer, renderer: renderer}
}

// Dispatch handles one line read at the prompt and reports whether the
// session should continue. help, exit and quit are built-ins; every other
// line reaches the processor unchanged.
func (s *Shell) Dispatch(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}

	switch strings.ToLower(fields[0]) {
	case "exit", "quit":
		return false
	case "help":
		text, err := s.Help(fields[1:])
		if err != nil {
			s.printer.Error(err.Error())
			return true
		}
		s.printer.Print(text)
		return true
	}

	s.ProcessInput(line)
	return true
}

// ProcessInput executes one line typed at the prompt. Errors never end the
// session: strict-mode failures are printed and the prompt continues.
func (s *Shell) ProcessInput(rawInput string) {
	rawInput = strings.TrimSpace(rawInput)
	if rawInput == "" {
		return
	}

	if err := s.proc.ProcessCommand(rawInput); err != nil {
		logger.Debug("Command failed", "command", rawInput, "error", err)
		s.printer.Error(fmt.Sprintf("Error: %s", err.Error()))
		s.printer.Warning("Type 'help' for available commands")
	}
}

// Help returns the help text for the named command, or the command overview
// when no name is given.
func (s *Shell) Help(args []string) (string, error) {
	markdown := commands.OverviewMarkdown()
	if len(args) > 0 {
		info, ok := commands.Lookup(strings.ToUpper(args[0]))
		if !ok {
			return "", &processor.UnknownCommandError{Name: strings.ToUpper(args[0])}
		}
		markdown = info.Markdown()
	}

	if s.renderer == nil {
		return markdown, nil
	}
	return s.renderer.Render(markdown), nil
}

// Banner is printed when the session starts.
func Banner() string {
	return fmt.Sprintf("%s - DNA/RNA fragment interpreter\nType 'help' for commands or 'exit' to quit.",
		version.GetFormattedVersion("Sequencer"))
}

// Run starts the prompt and blocks until the user exits or input ends.
// ishell only supplies line editing and history here; its own command
// parsing would split and unquote the line before the processor saw it.
func (s *Shell) Run() {
	sh := ishell.New()
	defer sh.Close()
	sh.SetPrompt(Prompt)

	s.printer.Info(Banner())
	logger.Debug("Starting interactive shell", "capacity", s.proc.List().Len(), "strict", s.proc.Strict())

	for {
		line, err := sh.ReadLineErr()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				logger.Error("Failed to read input", "error", err)
			}
			return
		}
		if !s.Dispatch(line) {
			return
		}
	}
}
