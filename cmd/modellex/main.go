// SPDX-License-Identifier: MIT

// Command modellex exercises the tokenizer: file arguments are tokenized &
// printed one token per line; without arguments it runs an interactive
// line-by-line scanning session.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/modellex/hints"
	"gitlab.com/fisherprime/modellex/lexer"
)

const (
	appName     = "modellex"
	historyFile = ".modellex_history"
	prompt      = "==> "
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger := logrus.New()
	if *debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	scanner := lexer.NewScanner(lexer.WithLogger(logger), lexer.WithDebug(*debug))

	if flag.NArg() > 0 {
		for _, path := range flag.Args() {
			if err := tokenizeFile(scanner, path); err != nil {
				logger.Errorf("%s: %v", path, err)
				os.Exit(1)
			}
		}

		return
	}

	repl(scanner, logger)
}

// tokenizeFile scans a model file twice: a hintless pass feeds the hinter,
// the second pass consumes the resulting table.
func tokenizeFile(scanner *lexer.Scanner, path string) (err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return
	}
	text := string(raw)

	toks, err := scanner.ScanModel(text, nil)
	if err != nil {
		return
	}

	table := hints.Extract(toks)
	if toks, err = scanner.ScanModel(text, table); err != nil {
		return
	}

	for _, tok := range toks {
		fmt.Println(tok)
	}

	return
}

// repl scans input line by line, threading scanner state & refreshing the
// hint table from the accumulated session source after every line.
func repl(scanner *lexer.Scanner, logger *logrus.Logger) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	histPath := filepath.Join(os.TempDir(), historyFile)
	if f, err := os.Open(histPath); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = line.WriteHistory(f)
			f.Close()
		}
	}()

	fmt.Printf("%s interactive tokenizer. Ctrl+D or :quit exits.\n", appName)

	var (
		state  = lexer.NewState()
		table  = lexer.Hints{}
		buffer strings.Builder
	)

	for {
		input, err := line.Prompt(prompt)
		if err != nil {
			// Ctrl+C or Ctrl+D.
			fmt.Println()
			return
		}
		if strings.TrimSpace(input) == ":quit" {
			return
		}
		if input != "" {
			line.AppendHistory(input)
		}

		toks, next, scanErr := scanner.ScanLine(input, state, table)
		if scanErr != nil {
			logger.Errorf("scan: %v", scanErr)
			continue
		}
		state = next

		for _, tok := range toks {
			fmt.Println(tok)
		}

		// Slow-cadence pass: refresh the hint table from the whole
		// session's source.
		buffer.WriteString(input)
		buffer.WriteByte('\n')
		if full, fullErr := scanner.ScanModel(buffer.String(), nil); fullErr == nil {
			table = hints.Extract(full)
		}
	}
}
