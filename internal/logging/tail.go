package logging

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// maxLineBytes bounds a single log line; longer lines fail the read.
const maxLineBytes = 1024 * 1024

// Tail returns at most n lines from the end of the log file at path, oldest
// first. A missing file yields no lines and no error.
func Tail(path string, n int) ([]string, error) {
	if n <= 0 || strings.TrimSpace(path) == "" {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = file.Close() }()

	window := make([]string, 0, n)
	next := 0 // slot overwritten once the window is full
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		if len(window) < n {
			window = append(window, scanner.Text())
			continue
		}
		window[next] = scanner.Text()
		next = (next + 1) % n
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	return append(window[next:], window[:next]...), nil
}
