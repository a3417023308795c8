package cli

import (
	"bufio"
	"fmt"
	"github.com/heyvito/trilist"
	"github.com/heyvito/trilist/internal/config"
	"github.com/spf13/cobra"
	"io"
	"math"
	"os"
	"strconv"
)

const maxTokenSize = 1 << 20

type element = trilist.Element[int64, float64, string]

// classify stores tok as an int when it parses as a base 10 integer, as a
// float when it parses as a finite number, and as a string otherwise.
func classify(tok string) element {
	if i, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return trilist.First[int64, float64, string](i)
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return trilist.Second[int64, float64, string](f)
	}
	return trilist.Third[int64, float64, string](tok)
}

func readInputs(cmd *cobra.Command, paths []string, l *config.List) error {
	if len(paths) == 0 {
		return readTokens(cmd.InOrStdin(), l)
	}

	for _, path := range paths {
		if err := readFile(path, l); err != nil {
			return err
		}
	}
	return nil
}

func readFile(path string, l *config.List) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed opening input: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err = readTokens(f, l); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func readTokens(r io.Reader, l *config.List) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		l.PushElement(classify(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed reading tokens: %w", err)
	}
	return nil
}
