package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// All shell completion functions generate from this registry; the fish
// generator selects its entries by name in generateFishCompletion, so a
// flag appended to flagRegistry also needs listing there to appear in fish
// output.
type FlagCompletion struct {
	Long      string   // long flag name without "--" (e.g., "help")
	Short     string   // short flag without "-" (e.g., "h")
	Help      string   // description text
	Values    []string // suggested completion values (nil = boolean/no suggestions)
	ValueName string   // label for the value in zsh (e.g., "number", "duration")
	IsFile    bool     // true if the flag takes a file path
	IsOp      bool     // true if values come from the operator list
	BashGroup string   // flags with same non-empty BashGroup share a bash case entry
}

// flagRegistry lists the flags offered by completion generation. It is kept
// by hand apart from config.ParseFlags: -serve and -serve-addr are absent,
// and the -V, -o and -q short forms it offers are not defined there.
var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Short: "V", Help: "Show version information"},
	{Long: "op", Help: "Operation to perform", IsOp: true, ValueName: "operator"},
	{Long: "a", Help: "Left operand literal", ValueName: "literal"},
	{Long: "b", Help: "Right operand literal", ValueName: "literal"},
	{Long: "base", Help: "Numeric base for literals and output", Values: []string{"2", "8", "10", "16", "36"}, ValueName: "base"},
	{Long: "upper", Help: "Uppercase alphabetic digits in output"},
	{Long: "showbase", Help: "Base-prefix display mode", Values: []string{"0", "1", "2"}, ValueName: "mode"},
	{Long: "limb", Help: "Limb width in bits", Values: []string{"8", "16", "32"}, ValueName: "bits"},
	{Long: "v", Help: "Verbose logging"},
	{Long: "timeout", Help: "Maximum execution time", Values: []string{"1s", "10s", "30s", "1m", "5m"}, ValueName: "duration"},
	{Long: "compare", Help: "Run every applicable algorithm and print a comparison table"},
	{Long: "parallel-threshold", Help: "Parallel-transform threshold in bits", Values: []string{"512", "1024", "2048", "4096", "8192"}, ValueName: "bits", BashGroup: "threshold"},
	{Long: "fft-threshold", Help: "FFT threshold in bits", Values: []string{"8192", "16384", "32768"}, ValueName: "bits", BashGroup: "threshold"},
	{Long: "calibrate", Help: "Run calibration mode"},
	{Long: "auto-calibrate", Help: "Enable auto-calibration"},
	{Long: "calibration-profile", Help: "Calibration profile file", IsFile: true, ValueName: "file"},
	{Long: "output", Short: "o", Help: "Output file path", IsFile: true, ValueName: "file"},
	{Long: "quiet", Short: "q", Help: "Quiet mode for scripts"},
	{Long: "repl", Help: "Drop into an interactive REPL"},
	{Long: "tui", Help: "Run the interactive dashboard"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish", "powershell"}, ValueName: "shell"},
}

// bashGroupValues defines the completion values used in bash for grouped flags.
var bashGroupValues = map[string][]string{
	"threshold": {"512", "1024", "2048", "4096", "8192", "16384", "32768"},
}

// zshHelpOverrides provides shell-specific help text overrides for zsh.
var zshHelpOverrides = map[string]string{
	"op": "Arithmetic or bitwise operator",
}

// defaultOperators is the static list of operators -op accepts, used for
// completion when the caller does not supply its own list.
var defaultOperators = []string{"+", "-", "*", "/", "%", "&", "|", "^", "<<", ">>", "cmp"}

// GenerateCompletion generates a shell completion script for the specified
// shell. ops, if non-empty, overrides defaultOperators for -op completion.
func GenerateCompletion(out io.Writer, shell string, ops []string) error {
	if len(ops) == 0 {
		ops = defaultOperators
	}
	switch shell {
	case "bash":
		return generateBashCompletion(out, ops)
	case "zsh":
		return generateZshCompletion(out, ops)
	case "fish":
		return generateFishCompletion(out, ops)
	case "powershell", "ps":
		return generatePowerShellCompletion(out, ops)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish, powershell)", shell)
	}
}

// formatOpList joins operator names with space separators.
func formatOpList(ops []string) string {
	return strings.Join(ops, " ")
}

// flagKey returns the identifier used for lookups: Long name if present, else Short.
func flagKey(f FlagCompletion) string {
	if f.Long != "" {
		return f.Long
	}
	return f.Short
}

// generateBashCompletion generates a Bash completion script.
func generateBashCompletion(out io.Writer, ops []string) error {
	var opts []string
	for _, f := range flagRegistry {
		if f.Long != "" {
			opts = append(opts, "--"+f.Long)
		}
		if f.Short != "" {
			opts = append(opts, "-"+f.Short)
		}
	}

	type caseEntry struct {
		patterns []string
		body     string
	}
	bashCaseEntry := func(f FlagCompletion) caseEntry {
		return caseEntry{
			patterns: []string{"--" + f.Long},
			body:     fmt.Sprintf(`COMPREPLY=( $(compgen -W "%s" -- "${cur}") )`, strings.Join(f.Values, " ")),
		}
	}
	var orderedCases []caseEntry

	for _, f := range flagRegistry {
		if f.IsOp {
			orderedCases = append(orderedCases, caseEntry{
				patterns: []string{"--" + f.Long},
				body:     `COMPREPLY=( $(compgen -W "${operators}" -- "${cur}") )`,
			})
		}
	}

	for _, f := range flagRegistry {
		if f.Long == "completion" && len(f.Values) > 0 {
			orderedCases = append(orderedCases, bashCaseEntry(f))
		}
	}

	var filePatterns []string
	for _, f := range flagRegistry {
		if f.IsFile {
			if f.Long != "" {
				filePatterns = append(filePatterns, "--"+f.Long)
			}
			if f.Short != "" {
				filePatterns = append(filePatterns, "-"+f.Short)
			}
		}
	}
	if len(filePatterns) > 0 {
		orderedCases = append(orderedCases, caseEntry{
			patterns: filePatterns,
			body: `# File/directory completion
            COMPREPLY=( $(compgen -f -- "${cur}") )`,
		})
	}

	for _, f := range flagRegistry {
		if !f.IsOp && !f.IsFile && f.BashGroup == "" && f.Long != "completion" && len(f.Values) > 0 {
			orderedCases = append(orderedCases, bashCaseEntry(f))
		}
	}

	seenGroups := map[string]bool{}
	for _, f := range flagRegistry {
		if f.BashGroup != "" && !seenGroups[f.BashGroup] {
			seenGroups[f.BashGroup] = true
			var patterns []string
			for _, gf := range flagRegistry {
				if gf.BashGroup == f.BashGroup {
					patterns = append(patterns, "--"+gf.Long)
				}
			}
			vals := bashGroupValues[f.BashGroup]
			orderedCases = append(orderedCases, caseEntry{
				patterns: patterns,
				body:     fmt.Sprintf(`COMPREPLY=( $(compgen -W "%s" -- "${cur}") )`, strings.Join(vals, " ")),
			})
		}
	}

	var caseBody strings.Builder
	for _, c := range orderedCases {
		caseBody.WriteString("        ")
		caseBody.WriteString(strings.Join(c.patterns, "|"))
		caseBody.WriteString(")\n")
		caseBody.WriteString("            ")
		caseBody.WriteString(c.body)
		caseBody.WriteString("\n            return 0\n            ;;\n")
	}

	opList := formatOpList(ops)

	script := fmt.Sprintf(`# Bash completion script for bigint
# Add this to your ~/.bashrc or ~/.bash_completion

_bigint_completions() {
    local cur prev opts operators
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Main options
    opts="%s"

    # Available operators
    operators="%s"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _bigint_completions bigint
`, strings.Join(opts, " "), opList, caseBody.String())

	_, err := fmt.Fprint(out, script)
	if err != nil {
		return fmt.Errorf("completion bash generation failed: %w", err)
	}
	return nil
}

// generateZshCompletion generates a Zsh completion script.
func generateZshCompletion(out io.Writer, ops []string) error {
	var args []string
	for _, f := range flagRegistry {
		args = append(args, zshArgEntry(f))
	}

	opList := formatOpList(ops)

	script := fmt.Sprintf(`#compdef bigint

# Zsh completion script for bigint
# Add this to your ~/.zshrc or place in $fpath

_bigint() {
    local -a operators
    operators=(%s)

    _arguments -s \
%s
}

_bigint "$@"
`, opList, strings.Join(args, " \\\n"))

	_, err := fmt.Fprint(out, script)
	if err != nil {
		return fmt.Errorf("completion zsh generation failed: %w", err)
	}
	return nil
}

// zshHelp returns the help text for a flag in zsh, using an override if available.
func zshHelp(f FlagCompletion) string {
	key := flagKey(f)
	if override, ok := zshHelpOverrides[key]; ok {
		return override
	}
	return f.Help
}

// zshArgEntry formats a single FlagCompletion as a zsh _arguments entry.
func zshArgEntry(f FlagCompletion) string {
	help := zshHelp(f)

	valueSuffix := ""
	if f.IsFile {
		valueSuffix = fmt.Sprintf(":%s:_files", f.ValueName)
	} else if f.IsOp {
		valueSuffix = fmt.Sprintf(":%s:($operators)", f.ValueName)
	} else if len(f.Values) > 0 {
		valueSuffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
	} else if f.ValueName != "" {
		valueSuffix = fmt.Sprintf(":%s:", f.ValueName)
	}

	if f.Long != "" && f.Short != "" {
		return fmt.Sprintf("        '(-%s --%s)'{-%s,--%s}'[%s]%s'",
			f.Short, f.Long, f.Short, f.Long, help, valueSuffix)
	}
	if f.Long != "" {
		return fmt.Sprintf("        '--%s[%s]%s'", f.Long, help, valueSuffix)
	}
	return fmt.Sprintf("        '-%s[%s]%s'", f.Short, help, valueSuffix)
}

// generateFishCompletion generates a Fish completion script.
func generateFishCompletion(out io.Writer, ops []string) error {
	var lines []string

	lines = append(lines, "# Fish completion script for bigint")
	lines = append(lines, "# Add this to ~/.config/fish/completions/bigint.fish")
	lines = append(lines, "")
	lines = append(lines, "# Disable file completion by default")
	lines = append(lines, "complete -c bigint -f")
	lines = append(lines, "")

	type section struct {
		comment string
		flags   []FlagCompletion
	}

	sections := []section{
		{comment: "# Help and version", flags: filterFlags("help", "version")},
		{comment: "# Main options", flags: filterFlags("op", "a", "b", "base", "upper", "showbase", "limb", "v", "timeout", "compare", "parallel-threshold", "fft-threshold")},
		{comment: "# Calibration", flags: filterFlags("calibrate", "auto-calibrate", "calibration-profile")},
		{comment: "# Output options", flags: filterFlags("output", "quiet", "repl", "tui")},
		{comment: "# Completion", flags: filterFlags("completion")},
	}

	opList := formatOpList(ops)

	for _, sec := range sections {
		lines = append(lines, sec.comment)
		for _, f := range sec.flags {
			lines = append(lines, fishCompleteLine(f, opList))
		}
		lines = append(lines, "")
	}

	script := strings.Join(lines, "\n")

	_, err := fmt.Fprint(out, script)
	if err != nil {
		return fmt.Errorf("completion fish generation failed: %w", err)
	}
	return nil
}

// filterFlags returns flags from the registry matching the given identifiers.
func filterFlags(ids ...string) []FlagCompletion {
	var result []FlagCompletion
	for _, id := range ids {
		if strings.HasSuffix(id, "_short") {
			short := strings.TrimSuffix(id, "_short")
			for _, f := range flagRegistry {
				if f.Short == short && f.Long == "" {
					result = append(result, f)
					break
				}
			}
		} else {
			for _, f := range flagRegistry {
				if f.Long == id {
					result = append(result, f)
					break
				}
			}
		}
	}
	return result
}

// fishCompleteLine formats a single FlagCompletion as a fish complete command.
func fishCompleteLine(f FlagCompletion, opList string) string {
	var parts []string
	parts = append(parts, "complete -c bigint")

	if f.Short != "" {
		parts = append(parts, fmt.Sprintf("-s %s", f.Short))
	}
	if f.Long != "" {
		parts = append(parts, fmt.Sprintf("-l %s", f.Long))
	}

	parts = append(parts, fmt.Sprintf("-d '%s'", f.Help))

	if f.IsFile {
		parts = append(parts, "-rF")
	} else if f.IsOp {
		parts = append(parts, fmt.Sprintf("-xa '%s'", opList))
	} else if len(f.Values) > 0 {
		parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.Values, " ")))
	} else if f.ValueName != "" {
		parts = append(parts, "-x")
	}

	return strings.Join(parts, " ")
}

// generatePowerShellCompletion generates a PowerShell completion script.
func generatePowerShellCompletion(out io.Writer, ops []string) error {
	var optionEntries []string
	for _, f := range flagRegistry {
		if f.Short != "" {
			optionEntries = append(optionEntries, fmt.Sprintf(
				"        @{Name = '-%s'; Description = '%s' }", f.Short, f.Help))
		}
		if f.Long != "" {
			optionEntries = append(optionEntries, fmt.Sprintf(
				"        @{Name = '--%s'; Description = '%s' }", f.Long, f.Help))
		}
	}

	var switchEntries []string

	psSwitchEntry := func(f FlagCompletion) string {
		var quotedVals []string
		for _, v := range f.Values {
			quotedVals = append(quotedVals, fmt.Sprintf("'%s'", v))
		}
		return fmt.Sprintf(`        '--%s' {
            @(%s) | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
            }
            return
        }`, f.Long, strings.Join(quotedVals, ", "))
	}

	for _, f := range flagRegistry {
		if f.IsOp {
			switchEntries = append(switchEntries, fmt.Sprintf(`        '--%s' {
            $bigintOperators | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
            }
            return
        }`, f.Long))
		}
	}

	var psValueFlags []FlagCompletion
	for _, f := range flagRegistry {
		if !f.IsOp && !f.IsFile && f.BashGroup == "" && len(f.Values) > 0 {
			psValueFlags = append(psValueFlags, f)
		}
	}
	for i := len(psValueFlags) - 1; i >= 0; i-- {
		switchEntries = append(switchEntries, psSwitchEntry(psValueFlags[i]))
	}

	psOpList := ""
	for i, op := range ops {
		if i > 0 {
			psOpList += ", "
		}
		psOpList += fmt.Sprintf("'%s'", op)
	}

	script := fmt.Sprintf(`# PowerShell completion script for bigint
# Add this to your $PROFILE

$bigintOperators = @(%s)

Register-ArgumentCompleter -CommandName 'bigint' -Native -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $options = @(
%s
    )

    $elements = $commandAst.CommandElements
    $lastElement = if ($elements.Count -gt 1) { $elements[-1].ToString() } else { '' }
    $prevElement = if ($elements.Count -gt 2) { $elements[-2].ToString() } else { '' }

    # Context-aware completions
    switch ($prevElement) {
%s
    }

    # Default: show options
    $options | Where-Object { $_.Name -like "$wordToComplete*" } | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_.Name, $_.Name, 'ParameterName', $_.Description)
    }
}
`, psOpList, strings.Join(optionEntries, "\n"), strings.Join(switchEntries, "\n"))

	_, err := fmt.Fprint(out, script)
	return err
}
