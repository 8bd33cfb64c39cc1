// Package cli is the interactive predictor: it reads prefixes line by line
// and prints the top predictions for each.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/bastiangx/predtext/internal/logger"
	"github.com/bastiangx/predtext/internal/utils"
	"github.com/bastiangx/predtext/pkg/config"
	"github.com/bastiangx/predtext/pkg/trie"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/chzyer/readline"
)

// LineReader supplies raw input lines. *readline.Instance satisfies it.
type LineReader interface {
	Readline() (string, error)
	Close() error
}

// NewReadline opens a readline session configured from the [cli] table.
func NewReadline(cfg config.CliConfig) (*readline.Instance, error) {
	return readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
}

// InputHandler reads prefixes from a LineReader and writes predictions to
// out. Lines starting with ':' are commands.
type InputHandler struct {
	dict      *trie.Trie
	reader    LineReader
	out       io.Writer
	log       *log.Logger
	word      lipgloss.Style
	limit     int
	minLen    int
	maxLen    int
	filter    bool
	normalize bool
}

// NewInputHandler wires a handler from the loaded config.
func NewInputHandler(dict *trie.Trie, cfg *config.Config, reader LineReader, out io.Writer) *InputHandler {
	renderer := lipgloss.NewRenderer(out)
	return &InputHandler{
		dict:      dict,
		reader:    reader,
		out:       out,
		log:       logger.New("cli"),
		word:      renderer.NewStyle().Foreground(lipgloss.Color("75")),
		limit:     cfg.CLI.Limit,
		minLen:    cfg.Server.MinPrefix,
		maxLen:    cfg.Server.MaxPrefix,
		filter:    cfg.CLI.Filter,
		normalize: cfg.Dict.Normalize,
	}
}

// Start runs the loop until EOF, ":quit", or Ctrl+C on an empty line.
// Ctrl+C on a partially typed line discards it.
func (h *InputHandler) Start() error {
	defer h.reader.Close()
	fmt.Fprintln(h.out, "Enter prefixes for prediction below. Type :help for commands.")

	for {
		line, err := h.reader.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			if len(line) == 0 {
				return nil
			}
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if h.handleCommand(line) {
				return nil
			}
			continue
		}
		h.handleInput(line)
	}
}

// handleInput validates a prefix and prints predict(prefix, limit) followed
// by predict(prefix).
func (h *InputHandler) handleInput(prefix string) {
	if h.normalize {
		prefix = utils.NormalizeWord(prefix)
	}

	n := utils.RuneLen(prefix)
	if n < h.minLen {
		h.log.Errorf("Prefix too short: %s", prefix)
		return
	}
	if n > h.maxLen {
		h.log.Errorf("Prefix too long: %s", prefix)
		return
	}
	if h.filter && !utils.IsValidInput(prefix) {
		h.log.Warnf("No predictions for prefix: '%s' (filtered out)", prefix)
		return
	}

	start := time.Now()
	top := h.dict.PredictN(prefix, h.limit)
	best, ok := h.dict.Predict(prefix)
	h.log.Debugf("Took [ %v ] for prefix '%s'", time.Since(start), prefix)

	styled := make([]string, len(top))
	for i, w := range top {
		styled[i] = h.word.Render(w)
	}
	fmt.Fprintf(h.out, "---> %s\n", utils.FormatList(styled))
	if ok {
		fmt.Fprintf(h.out, "---> %s\n", h.word.Render(best))
	} else {
		fmt.Fprintln(h.out, "---> none")
	}
}

// handleCommand runs a colon command and reports whether the loop should
// stop.
func (h *InputHandler) handleCommand(line string) bool {
	fields := strings.Fields(strings.TrimPrefix(line, ":"))
	if len(fields) == 0 {
		return false
	}
	args := fields[1:]

	switch fields[0] {
	case "q", "quit", "exit":
		return true
	case "help":
		fmt.Fprintln(h.out, "commands: :stats  :add <word> [pop]  :rm <word>  :has <word>  :words [prefix]  :quit")
	case "stats":
		h.printStats()
	case "add":
		if len(args) == 0 || len(args) > 2 {
			h.log.Error("usage: :add <word> [popularity]")
			return false
		}
		pop := 0
		if len(args) == 2 {
			v, err := strconv.Atoi(args[1])
			if err != nil {
				h.log.Errorf("Invalid popularity %q: %v", args[1], err)
				return false
			}
			pop = v
		}
		h.dict.Insert(h.clean(args[0]), pop)
		fmt.Fprintf(h.out, "added %s (%d)\n", h.clean(args[0]), pop)
	case "rm":
		if len(args) != 1 {
			h.log.Error("usage: :rm <word>")
			return false
		}
		w := h.clean(args[0])
		if !h.dict.Contains(w) {
			fmt.Fprintf(h.out, "%s not found\n", w)
			return false
		}
		h.dict.Remove(w)
		fmt.Fprintf(h.out, "removed %s\n", w)
	case "has":
		if len(args) != 1 {
			h.log.Error("usage: :has <word>")
			return false
		}
		w := h.clean(args[0])
		if pop, ok := h.dict.Popularity(w); ok {
			fmt.Fprintf(h.out, "%s: yes (popularity %d)\n", w, pop)
		} else {
			fmt.Fprintf(h.out, "%s: no\n", w)
		}
	case "words":
		h.printWords(args)
	default:
		h.log.Errorf("Unknown command: %s", fields[0])
	}
	return false
}

func (h *InputHandler) printStats() {
	s := h.dict.Stats()
	fmt.Fprintf(h.out, "words:     %s\n", utils.FormatWithCommas(s.Words))
	fmt.Fprintf(h.out, "nodes:     %s\n", utils.FormatWithCommas(s.Size))
	fmt.Fprintf(h.out, "height:    %d\n", s.Height)
	fmt.Fprintf(h.out, "leaves:    %s\n", utils.FormatWithCommas(s.Leaves))
	fmt.Fprintf(h.out, "branching: %d\n", s.MaximumBranching)
	fmt.Fprintf(h.out, "longest:   %s\n", s.LongestWord)
}

func (h *InputHandler) printWords(args []string) {
	prefix := ""
	if len(args) > 0 {
		prefix = h.clean(args[0])
	}
	fmt.Fprintln(h.out, utils.FormatList(h.dict.WordsWithPrefix(prefix)))
}

func (h *InputHandler) clean(w string) string {
	if h.normalize {
		return utils.NormalizeWord(w)
	}
	return w
}
