package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Unbantucniak/FTMS/internal/service/seeding"
)

const rule = "=================================================="

func printBanner(w io.Writer) {
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "  FTMS flight data generator")
	fmt.Fprintln(w, rule)
}

func printSummary(w io.Writer, s *seeding.SeedSummary) {
	fmt.Fprintln(w, "\nimport finished")
	fmt.Fprintf(w, "   - flights generated: %d\n", s.Generated)
	fmt.Fprintf(w, "   - flights inserted:  %d\n", s.Inserted)
	if s.Skipped > 0 {
		fmt.Fprintf(w, "   - duplicates skipped: %d\n", s.Skipped)
	}
	fmt.Fprintf(w, "   - total flights:     %d\n", s.TotalFlights)
	fmt.Fprintf(w, "   - cities covered:    %d\n", s.DepartureCities)
	fmt.Fprintln(w, "\n"+rule)
	fmt.Fprintln(w, "  done, the system is ready for testing")
	fmt.Fprintln(w, rule)
}

// defaultDBPath is the configured path, or build/ftms.db next to the
// directory holding the executable.
func defaultDBPath(configured string) string {
	if configured != "" {
		return configured
	}
	exe, err := os.Executable()
	if err != nil {
		return filepath.Join("build", "ftms.db")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(exe), "..", "build", "ftms.db"))
}

// resolveDBPath shows the default and, unless nonInteractive, reads a path
// from in. An empty answer or EOF keeps the default.
func resolveDBPath(configured string, nonInteractive bool, in io.Reader, out io.Writer) (string, error) {
	def := defaultDBPath(configured)
	if abs, err := filepath.Abs(def); err == nil {
		def = abs
	}
	fmt.Fprintf(out, "\ndefault database path: %s\n", def)
	if nonInteractive {
		return def, nil
	}

	fmt.Fprint(out, "database path (enter for default): ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read database path: %w", err)
	}

	if answer := strings.TrimSpace(line); answer != "" {
		return answer, nil
	}
	return def, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
