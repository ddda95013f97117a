package pointio

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/vkarpachev/neighbors/geom"
)

// LineReader yields one line of input per call, without the line terminator.
// It returns io.EOF when no more input is available.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// ReadInteractive collects points from lr until a line reading EndMarker or io.EOF.
// Malformed lines are passed to onInvalid (if non-nil) and skipped.
// Only errors from lr itself, other than io.EOF, are returned.
func ReadInteractive(lr LineReader, prompt string, onInvalid func(line string, err error)) ([]geom.Point, error) {
	var points []geom.Point
	for {
		line, err := lr.ReadLine(prompt)
		if errors.Is(err, io.EOF) {
			return points, nil
		}
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(line) == EndMarker {
			return points, nil
		}

		p, err := ParseLine(line)
		if err != nil {
			if onInvalid != nil {
				onInvalid(line, err)
			}
			continue
		}
		points = append(points, p)
	}
}

// ScannerLineReader reads lines from any io.Reader and ignores prompts.
type ScannerLineReader struct {
	sc *bufio.Scanner
}

// NewScannerLineReader returns a LineReader over r.
func NewScannerLineReader(r io.Reader) *ScannerLineReader {
	return &ScannerLineReader{sc: bufio.NewScanner(r)}
}

// ReadLine returns the next line, or io.EOF.
func (s *ScannerLineReader) ReadLine(string) (string, error) {
	if s.sc.Scan() {
		return s.sc.Text(), nil
	}
	if err := s.sc.Err(); err != nil {
		return "", err
	}

	return "", io.EOF
}

// TerminalLineReader is a LineReader with line editing and history,
// backed by liner. Ctrl-C and Ctrl-D both end input.
type TerminalLineReader struct {
	state       *liner.State
	historyFile string
}

// NewTerminalLineReader takes over the terminal. historyFile, when non-empty,
// is loaded now and rewritten by Close. Callers must Close the reader.
func NewTerminalLineReader(historyFile string) *TerminalLineReader {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	state.SetMultiLineMode(false)
	if historyFile != "" {
		if f, err := os.Open(historyFile); err == nil {
			_, _ = state.ReadHistory(f)
			_ = f.Close()
		}
	}

	return &TerminalLineReader{state: state, historyFile: historyFile}
}

// ReadLine prompts for a line. Aborted prompts are reported as io.EOF.
func (t *TerminalLineReader) ReadLine(prompt string) (string, error) {
	line, err := t.state.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", io.EOF
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(line) != "" {
		t.state.AppendHistory(line)
	}

	return line, nil
}

// Close saves the history file, if any, and restores the terminal.
func (t *TerminalLineReader) Close() error {
	var histErr error
	if t.historyFile != "" {
		f, err := os.Create(t.historyFile)
		if err == nil {
			_, histErr = t.state.WriteHistory(f)
			if cerr := f.Close(); histErr == nil {
				histErr = cerr
			}
		} else {
			histErr = err
		}
	}
	if err := t.state.Close(); err != nil {
		return err
	}

	return histErr
}
