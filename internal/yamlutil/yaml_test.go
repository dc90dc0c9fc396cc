package yamlutil_test

// Notes:
// - Marshal error branch: not tested because yaml.Marshal only fails with
//   unmarshalable types (channels, functions) that never reach this package.

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-card2pdf/internal/yamlutil"
)

type testCard struct {
	Title     string `yaml:"title"`
	Challenge string `yaml:"challenge"`
	Legendary bool   `yaml:"legendary"`
}

// wantErrMatch reports whether err matches want by errors.Is or by message prefix.
func wantErrMatch(err, want error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, want) || strings.Contains(err.Error(), want.Error())
}

// ---------------------------------------------------------------------------
// TestUnmarshal - Lenient and strict decoding
// ---------------------------------------------------------------------------

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		decode  func([]byte, any) error
		data    []byte
		dest    any
		want    *testCard
		wantErr error
	}{
		{
			name:   "valid YAML",
			decode: yamlutil.Unmarshal,
			data:   []byte("title: Goblin\nchallenge: 1/4\nlegendary: false"),
			dest:   &testCard{},
			want:   &testCard{Title: "Goblin", Challenge: "1/4"},
		},
		{
			name:   "unknown field ignored when lenient",
			decode: yamlutil.Unmarshal,
			data:   []byte("title: Goblin\nsize: small"),
			dest:   &testCard{},
			want:   &testCard{Title: "Goblin"},
		},
		{
			name:    "unknown field rejected when strict",
			decode:  yamlutil.UnmarshalStrict,
			data:    []byte("title: Goblin\nsize: small"),
			dest:    &testCard{},
			wantErr: errors.New("yamlutil:"),
		},
		{
			name:   "unicode content",
			decode: yamlutil.UnmarshalStrict,
			data:   []byte("title: 小鬼"),
			dest:   &testCard{},
			want:   &testCard{Title: "小鬼"},
		},
		{
			name:    "nil data",
			decode:  yamlutil.Unmarshal,
			data:    nil,
			dest:    &testCard{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "empty data",
			decode:  yamlutil.UnmarshalOrdered,
			data:    []byte{},
			dest:    &testCard{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			decode:  yamlutil.UnmarshalStrict,
			data:    []byte("title: Goblin"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
		{
			name:    "invalid YAML syntax",
			decode:  yamlutil.Unmarshal,
			data:    []byte("title: [unclosed"),
			dest:    &testCard{},
			wantErr: errors.New("yamlutil:"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.decode(tt.data, tt.dest)
			if tt.wantErr != nil {
				if !wantErrMatch(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, tt.dest); diff != "" {
				t.Errorf("decoded mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestUnmarshalOrdered - Untyped mappings keep document order
// ---------------------------------------------------------------------------

func TestUnmarshalOrdered(t *testing.T) {
	t.Parallel()

	var v struct {
		Actions any `yaml:"actions"`
	}
	data := []byte("actions:\n  Scimitar: slash\n  Bite: chomp\n  Aardvark: last\n")
	if err := yamlutil.UnmarshalOrdered(data, &v); err != nil {
		t.Fatalf("UnmarshalOrdered() error = %v", err)
	}

	ms, ok := v.Actions.(yamlutil.MapSlice)
	if !ok {
		t.Fatalf("Actions decoded as %T, want MapSlice", v.Actions)
	}
	var keys []string
	for _, item := range ms {
		keys = append(keys, item.Key.(string))
	}
	if diff := cmp.Diff([]string{"Scimitar", "Bite", "Aardvark"}, keys); diff != "" {
		t.Errorf("key order mismatch (-want +got):\n%s", diff)
	}
}

// ---------------------------------------------------------------------------
// TestMarshal - Serializes Go values to YAML
// ---------------------------------------------------------------------------

func TestMarshal(t *testing.T) {
	t.Parallel()

	data, err := yamlutil.Marshal(&testCard{Title: "Goblin", Challenge: "1/4"})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	for _, want := range []string{"title: Goblin", "challenge: 1/4", "legendary: false"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("output missing %q, got: %s", want, data)
		}
	}

	data, err = yamlutil.Marshal(nil)
	if err != nil || strings.TrimSpace(string(data)) != "null" {
		t.Errorf("Marshal(nil) = %q, %v; want null", data, err)
	}
}

// ---------------------------------------------------------------------------
// TestInputSizeLimit - Verifies MaxInputSize enforcement
// ---------------------------------------------------------------------------

// Modifies the global MaxInputSize, so it does not run in parallel.
func TestInputSizeLimit(t *testing.T) {
	originalMax := yamlutil.MaxInputSize
	t.Cleanup(func() { yamlutil.MaxInputSize = originalMax })

	yamlutil.MaxInputSize = 100
	padded := func(n int) []byte {
		data := []byte("title: x" + strings.Repeat(" ", n))
		return data[:n]
	}

	t.Run("input at limit succeeds", func(t *testing.T) {
		if err := yamlutil.Unmarshal(padded(100), &testCard{}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	for name, decode := range map[string]func([]byte, any) error{
		"Unmarshal":        yamlutil.Unmarshal,
		"UnmarshalStrict":  yamlutil.UnmarshalStrict,
		"UnmarshalOrdered": yamlutil.UnmarshalOrdered,
	} {
		t.Run(name+" rejects oversized input", func(t *testing.T) {
			err := decode(padded(101), &testCard{})
			if !errors.Is(err, yamlutil.ErrInputTooLarge) {
				t.Fatalf("error = %v, want ErrInputTooLarge", err)
			}
			if !strings.Contains(err.Error(), "101 bytes") || !strings.Contains(err.Error(), "max 100") {
				t.Errorf("error should contain sizes, got: %s", err)
			}
		})
	}
}
