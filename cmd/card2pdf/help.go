package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: card2pdf <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render       Render card files to one PDF")
	fmt.Fprintln(w, "  inspect      Print the layout plan of each card as YAML")
	fmt.Fprintln(w, "  styles       List available style sets")
	fmt.Fprintln(w, "  doctor       Check assets and system setup")
	fmt.Fprintln(w, "  completion   Generate shell completion script")
	fmt.Fprintln(w, "  version      Show version information")
	fmt.Fprintln(w, "  help         Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'card2pdf help <command>' for details on a specific command.")
}

// printLayoutFlags prints the flags shared by render and inspect.
func printLayoutFlags(w io.Writer) {
	fmt.Fprintln(w, "Cards:")
	fmt.Fprintln(w, "  -t, --type <kind>         Kind of entries without one: monster, item")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Layout:")
	fmt.Fprintln(w, "      --templates <list>    Templates to try in order (default: small,large,epic)")
	fmt.Fprintln(w, "      --no-split            Never split text across columns")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel layout workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "  -s, --style <name>        Style set: standard, free, large-print, or custom")
	fmt.Fprintln(w, "      --assets <dir>        Custom assets directory (styles/, fonts/)")
	fmt.Fprintln(w, "      --border-color <hex>  Border colour, e.g. #58170d")
	fmt.Fprintln(w, "      --background <path>   Background image for both faces")
	fmt.Fprintln(w, "      --logo <path>         Logo image for the card front")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path (.yaml, .toml)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Log layout attempts and timing")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: card2pdf render <input>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render card files to one PDF, one page per card.")
	fmt.Fprintln(w, "Each card lands on the smallest template that holds it.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Card file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output PDF file or directory")
	fmt.Fprintln(w)
	printLayoutFlags(w)
	fmt.Fprintln(w)
	printEnvironment(w)
}

// printInspectUsage prints usage for the inspect command.
func printInspectUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: card2pdf inspect <input>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Lay cards out without drawing and print each plan as YAML:")
	fmt.Fprintln(w, "the template chosen, the attempts made, and every region's blocks.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "      --color               Highlight the YAML for the terminal")
	fmt.Fprintln(w)
	printLayoutFlags(w)
}

// printStylesUsage prints usage for the styles command.
func printStylesUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: card2pdf styles [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List available style sets. The configured set is marked with '*'.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --assets <dir>        Custom assets directory (styles/, fonts/)")
}

// printEnvironment lists the environment variables card2pdf reads.
func printEnvironment(w io.Writer) {
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  CARD2PDF_CONFIG       Config file name or path")
	fmt.Fprintln(w, "  CARD2PDF_STYLE        Style set name")
	fmt.Fprintln(w, "  CARD2PDF_ASSETS       Custom assets directory")
	fmt.Fprintln(w, "  CARD2PDF_INPUT_DIR    Default card directory")
	fmt.Fprintln(w, "  CARD2PDF_OUTPUT_DIR   Default output directory")
	fmt.Fprintln(w, "  CARD2PDF_TEMPLATES    Comma-separated template order")
	fmt.Fprintln(w, "  CARD2PDF_WORKERS      Parallel layout workers")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags override environment variables, which override the config file.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "render":
		printRenderUsage(env.Stdout)
	case "inspect":
		printInspectUsage(env.Stdout)
	case "styles":
		printStylesUsage(env.Stdout)
	case "doctor":
		fmt.Fprintln(env.Stdout, "Usage: card2pdf doctor [--json]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Check assets, style sets and the temp directory.")
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: card2pdf version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: card2pdf help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
