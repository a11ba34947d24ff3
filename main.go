package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/davecgh/go-spew/spew"

	"github.com/mcncl/jsondom/internal/config"
	"github.com/mcncl/jsondom/internal/decoder"
	"github.com/mcncl/jsondom/internal/encoder"
	"github.com/mcncl/jsondom/internal/errors"
	"github.com/mcncl/jsondom/internal/inspect"
	"github.com/mcncl/jsondom/internal/transform"
)

// CLI defines the command-line interface
var CLI struct {
	Input       string `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output      string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Config      string `help:"Path to a config file. Discovered up the directory tree if not set." short:"c" type:"path"`
	Indent      int    `help:"Spaces per nesting level in indented output." default:"2"`
	Compact     bool   `help:"Emit output with no layout whitespace." short:"C"`
	Rekey       string `help:"Rewrite object keys to a style: camel, pascal, snake or kebab." short:"k"`
	Stats       bool   `help:"Print a shape report of the decoded document instead of re-encoding it." short:"s"`
	Sorted      bool   `help:"Sort the --stats key census alphabetically."`
	Debug       bool   `help:"Dump the decoded value tree to stderr." short:"d"`
	Version     bool   `help:"Show version information." short:"v"`
	Interactive bool   `help:"Run in interactive mode, allowing direct JSON input with Ctrl+D to process." short:"I"`
}

// Context holds the runtime context
type Context struct {
	Debug   bool
	Options *config.Options
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	// Parse CLI arguments with Kong
	parser := kong.Must(&CLI,
		kong.Name("jsondom"),
		kong.Description("Decode, inspect and re-encode JSON documents"),
		kong.UsageOnError(),
	)

	// Check if no arguments provided and set interactive mode by default
	if len(os.Args) == 1 {
		CLI.Interactive = true
	}

	// Parse the command line arguments
	_, err := parser.Parse(os.Args[1:])
	if err != nil {
		// If there's an error parsing arguments, the usage will already be shown by kong.UsageOnError()
		os.Exit(1)
	}

	// Show version and exit if requested
	if CLI.Version {
		fmt.Printf("jsondom version %s\n", Version)
		return
	}

	opts, err := loadOptions()
	if err == nil {
		err = run(&Context{Debug: CLI.Debug, Options: opts})
	}
	if err != nil {
		// Use our custom error handling to provide user-friendly error messages
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))

		// Show help on error
		fmt.Fprintf(os.Stderr, "\nFor help, run: jsondom --help\n")

		os.Exit(1)
	}
}

// loadOptions resolves output options from a config file (explicit or
// discovered) and applies CLI flag overrides on top.
func loadOptions() (*config.Options, error) {
	path := CLI.Config
	if path == "" {
		path = config.FindOptionsFile()
	}

	opts := config.DefaultOptions()
	if path != "" {
		loaded, err := config.LoadOptions(path)
		if err != nil {
			return nil, errors.NewInputError("failed to load config file", err)
		}
		opts = loaded
	}

	opts.MergeCLI(CLI.Indent, CLI.Compact, CLI.Rekey, CLI.Sorted)
	if err := opts.Validate(); err != nil {
		return nil, errors.NewInputError("invalid options", err)
	}
	return opts, nil
}

// run executes the main program logic
func run(ctx *Context) error {
	// 1. Read the JSON text
	text, err := readInput()
	if err != nil {
		// Error is already wrapped by readInput
		return err
	}

	// 2. Decode into a value tree
	root, err := decoder.Decode(text)
	if err != nil {
		return err
	}

	if ctx.Debug {
		fmt.Fprintln(os.Stderr, "Decoded value tree:")
		spew.Fdump(os.Stderr, root)
	}

	// 3. Rewrite object keys if requested
	if ctx.Options.KeyStyle != "" {
		root, err = transform.Rekey(root, transform.KeyStyle(ctx.Options.KeyStyle))
		if err != nil {
			return err
		}
	}

	// 4. Render: a shape report or re-encoded JSON
	var out string
	if CLI.Stats {
		out = inspect.Summarize(root).Report(ctx.Options.SortedReport)
	} else if ctx.Options.Compact || ctx.Options.IndentWidth == 0 {
		out = encoder.Encode(root) + "\n"
	} else {
		out = encoder.EncodeIndent(root, "", ctx.Options.Indent()) + "\n"
	}

	// 5. Output the result
	return writeOutput(out)
}

// readInput reads JSON text from file or stdin
func readInput() (string, error) {
	if CLI.Input != "" {
		return readFile(CLI.Input)
	}

	// Check if stdin has data
	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return "", errors.NewInputError("failed to access stdin", err)
	}

	// Interactive mode or piped input
	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal is interactive (not piped)
		if CLI.Interactive {
			// Interactive mode
			return readInteractiveInput()
		}
		// No data provided on stdin and not in interactive mode
		return "", errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	// Read from stdin (piped input)
	jsonData, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", errors.NewInputError("failed to read from stdin", err)
	}

	if len(jsonData) == 0 {
		return "", errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}

	return string(jsonData), nil
}

// readFile reads JSON text from a file path
func readFile(filePath string) (string, error) {
	if strings.TrimSpace(filePath) == "" {
		return "", errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		// Check if the file doesn't exist
		if os.IsNotExist(err) {
			return "", errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return "", errors.NewInputError(
			fmt.Sprintf("failed to read file '%s'", filePath),
			err,
		)
	}

	if len(data) == 0 {
		return "", errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	return string(data), nil
}

// writeOutput writes the rendered result to file or stdout
func writeOutput(out string) error {
	if CLI.Output != "" {
		// Write to file
		err := os.WriteFile(CLI.Output, []byte(out), 0644)
		if err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		fmt.Fprintf(os.Stderr, "Output written to %s\n", CLI.Output)
		return nil
	}

	// Write to stdout
	_, err := fmt.Print(out)
	if err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// readInteractiveInput provides an interactive mode for users to paste JSON
// and signal completion with Ctrl+D (EOF)
func readInteractiveInput() (string, error) {
	fmt.Fprintln(os.Stderr, "jsondom Interactive Mode")
	fmt.Fprintln(os.Stderr, "Paste your JSON below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	// Read all input until EOF (Ctrl+D)
	reader := bufio.NewReader(os.Stdin)
	var jsonBuilder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			// End of input
			break
		}
		if err != nil {
			return "", errors.NewInputError("error reading input", err)
		}
		jsonBuilder.WriteString(line)
	}

	jsonData := jsonBuilder.String()
	if len(jsonData) == 0 {
		return "", errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}

	fmt.Fprintln(os.Stderr, "\nProcessing JSON...")
	return jsonData, nil
}
