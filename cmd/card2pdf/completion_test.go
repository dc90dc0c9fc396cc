package main

// Notes:
// - GenerateCompletion: we check each script carries the shell's entry points,
//   every command and the flag values; we do not run the shells.
// - getCommands: flags come from the real FlagSets, so a new flag shows up
//   in completion without extra wiring.

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ---------------------------------------------------------------------------
// TestGenerateCompletion_SupportedShells - Shell completion script generation
// ---------------------------------------------------------------------------

func TestGenerateCompletion_SupportedShells(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		shell        Shell
		wantContains []string
	}{
		{
			name:  "bash",
			shell: ShellBash,
			wantContains: []string{
				"_card2pdf_completions",
				"complete -o filenames -F",
				"compgen",
				"--output",
				"--templates",
				"!*.@(yaml|yml)",
				`"monster item"`,
			},
		},
		{
			name:  "zsh",
			shell: ShellZsh,
			wantContains: []string{
				"#compdef card2pdf",
				"_arguments",
				"_describe",
				"'(-o --output)'{-o,--output}",
				"(small large epic)",
				`_files -g "*.(yaml|yml)"`,
				"_directories",
			},
		},
		{
			name:  "fish",
			shell: ShellFish,
			wantContains: []string{
				"complete -c card2pdf",
				"__fish_card2pdf_needs_command",
				"__fish_card2pdf_using_command",
				"-s o -l output",
				"-l no-split",
				"-x -a 'monster item'",
			},
		},
		{
			name:  "powershell",
			shell: ShellPowerShell,
			wantContains: []string{
				"Register-ArgumentCompleter",
				"-CommandName card2pdf",
				"CompletionResult",
				"'--output'",
				"'bash', 'zsh', 'fish', 'powershell'",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell); err != nil {
				t.Fatalf("GenerateCompletion(%q) error = %v", tt.shell, err)
			}

			output := buf.String()
			for _, want := range tt.wantContains {
				if !strings.Contains(output, want) {
					t.Errorf("output missing %q", want)
				}
			}
			for _, cmd := range getCommands() {
				if !strings.Contains(output, cmd.Name) {
					t.Errorf("output missing command %q", cmd.Name)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestGenerateCompletion_UnsupportedShell - Error handling for unknown shells
// ---------------------------------------------------------------------------

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := GenerateCompletion(&buf, Shell("tcsh"))
	if !errors.Is(err, ErrUnsupportedShell) {
		t.Errorf("error = %v, want ErrUnsupportedShell", err)
	}
	if buf.Len() != 0 {
		t.Errorf("no script should be written, got %d bytes", buf.Len())
	}
}

// ---------------------------------------------------------------------------
// TestRunMain_Completion - Command wiring
// ---------------------------------------------------------------------------

func TestRunMain_Completion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
	}{
		{"usage without shell", []string{"completion"}, ExitSuccess, "Usage: card2pdf completion <shell>"},
		{"bash", []string{"completion", "bash"}, ExitSuccess, "complete -o filenames"},
		{"unknown shell", []string{"completion", "tcsh"}, ExitUsage, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv()
			code := runMain(append([]string{"card2pdf"}, tt.args...), env)
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d; stderr: %s", code, tt.wantCode, stderr)
			}
			if !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want %q", stdout, tt.wantStdout)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestGetCommands - Command registry
// ---------------------------------------------------------------------------

func TestGetCommands(t *testing.T) {
	t.Parallel()

	var names []string
	for _, c := range getCommands() {
		names = append(names, c.Name)
	}
	want := []string{"render", "inspect", "styles", "doctor", "completion", "version", "help"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", diff)
	}
}

func TestGetCommands_RenderFlags(t *testing.T) {
	t.Parallel()

	var render commandDef
	for _, c := range getCommands() {
		if c.Name == "render" {
			render = c
		}
	}
	if !render.TakesFiles || render.FilePattern != cardFilePattern {
		t.Errorf("render should take card files, got %+v", render)
	}

	flags := make(map[string]flagDef)
	for _, f := range render.Flags {
		flags[f.Long] = f
	}

	tests := []struct {
		long      string
		wantShort string
		wantType  flagType
	}{
		{"output", "o", flagFile},
		{"type", "t", flagEnum},
		{"style", "s", flagEnum},
		{"templates", "", flagEnum},
		{"assets", "", flagDir},
		{"no-split", "", flagBool},
		{"workers", "w", flagInt},
		{"border-color", "", flagString},
		{"logo", "", flagFile},
	}

	for _, tt := range tests {
		f, ok := flags[tt.long]
		if !ok {
			t.Errorf("render is missing --%s", tt.long)
			continue
		}
		if f.Short != tt.wantShort || f.Type != tt.wantType {
			t.Errorf("--%s = short %q type %d, want %q %d", tt.long, f.Short, f.Type, tt.wantShort, tt.wantType)
		}
	}

	if diff := cmp.Diff([]string{"small", "large", "epic"}, flags["templates"].Values); diff != "" {
		t.Errorf("--templates values mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(strings.Join(flags["style"].Values, ","), "standard") {
		t.Errorf("--style values = %v, want built-in sets", flags["style"].Values)
	}
}

// ---------------------------------------------------------------------------
// TestCompletionHelpers - Glob conversions
// ---------------------------------------------------------------------------

func TestCompletionHelpers(t *testing.T) {
	t.Parallel()

	if got := bashExclude("*.yaml, *.yml"); got != "!*.@(yaml|yml)" {
		t.Errorf("bashExclude() = %q", got)
	}
	if got := zshGlob("*.pdf"); got != "*.(pdf)" {
		t.Errorf("zshGlob() = %q", got)
	}
	if got := zshEscape("kind: monster [x]"); got != `kind\: monster \[x\]` {
		t.Errorf("zshEscape() = %q", got)
	}
	if got := fishEscape("it's"); got != `it\'s` {
		t.Errorf("fishEscape() = %q", got)
	}
}
