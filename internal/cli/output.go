// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayQuietResult].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatQuietResult].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteResultToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/bigint/internal/bigint"
	"github.com/agbru/bigint/internal/format"
	"github.com/agbru/bigint/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet mode suppresses verbose output.
	Quiet bool
	// Verbose shows the result's limb count and duration beneath the value.
	Verbose bool
	// Base is the base the result is rendered in (2-36).
	Base int
	// Upper renders alphabetic digits uppercase.
	Upper bool
	// ShowBase decorates the rendered value with a base indicator.
	ShowBase bigint.ShowBase
}

// WriteResultToFile writes a calculation result to a file.
func WriteResultToFile[L bigint.Limb](result *bigint.Int[L], op string, duration time.Duration, cfg OutputConfig) error {
	if cfg.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(cfg.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	rendered := result.ToString(cfg.Base, cfg.Upper, cfg.ShowBase)

	fmt.Fprintf(file, "# bigint calculation result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Operation: %s\n", op)
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	fmt.Fprintf(file, "# Base: %d\n", cfg.Base)
	fmt.Fprintf(file, "# Limbs: %d\n", result.Len())
	fmt.Fprintf(file, "\n%s\n", rendered)

	return nil
}

// WriteRenderedResult writes an already-rendered result value to a file,
// for callers (such as the one-shot evaluation path) that only have the
// strategy's rendered string rather than a typed *bigint.Int.
func WriteRenderedResult(path, op, value string, duration time.Duration) error {
	if path == "" {
		return nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# bigint calculation result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Operation: %s\n", op)
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	fmt.Fprintf(file, "\n%s\n", value)

	return nil
}

// FormatQuietResult formats a result for quiet mode output: a single line
// suitable for scripting, with no decoration.
func FormatQuietResult[L bigint.Limb](result *bigint.Int[L], cfg OutputConfig) string {
	return result.ToString(cfg.Base, cfg.Upper, cfg.ShowBase)
}

// DisplayQuietResult outputs a result in quiet mode (minimal output).
func DisplayQuietResult[L bigint.Limb](out io.Writer, result *bigint.Int[L], cfg OutputConfig) {
	fmt.Fprintln(out, FormatQuietResult(result, cfg))
}

// DisplayResult displays a single calculation result in verbose or plain
// mode, along with its duration.
func DisplayResult[L bigint.Limb](result *bigint.Int[L], duration time.Duration, verbose bool, cfg OutputConfig, out io.Writer) {
	rendered := result.ToString(cfg.Base, cfg.Upper, cfg.ShowBase)
	fmt.Fprintf(out, "%s=%s %s%s%s\n", ui.ColorBold(), ui.ColorReset(), ui.ColorGreen(), rendered, ui.ColorReset())
	if verbose {
		fmt.Fprintf(out, "  limbs: %s%d%s, time: %s%s%s\n",
			ui.ColorCyan(), result.Len(), ui.ColorReset(),
			ui.ColorCyan(), format.FormatExecutionDuration(duration), ui.ColorReset())
	}
}

// DisplayResultWithConfig displays a result and optionally saves it to a
// file, handling both quiet and verbose presentation.
func DisplayResultWithConfig[L bigint.Limb](out io.Writer, result *bigint.Int[L], op string, duration time.Duration, cfg OutputConfig) error {
	if cfg.Quiet {
		DisplayQuietResult(out, result, cfg)
	} else {
		DisplayResult(result, duration, cfg.Verbose, cfg, out)
	}

	if cfg.OutputFile != "" {
		if err := WriteResultToFile(result, op, duration, cfg); err != nil {
			return err
		}
		if !cfg.Quiet {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), cfg.OutputFile, ui.ColorReset())
		}
	}

	return nil
}
