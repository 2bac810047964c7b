package compiler

import (
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"curse/internal/diag"
)

// TestGolden runs every testdata/*.txtar fixture through Compile and
// checks its diagnostic codes against the fixture's "want.codes" file, one
// code per line, sorted. A fixture with an empty want.codes file asserts
// a clean compile.
func TestGolden(t *testing.T) {
	paths, err := filepath.Glob("testdata/*.txtar")
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Fatal("no testdata fixtures found")
	}

	for _, path := range paths {
		path := path
		t.Run(filepath.Base(path), func(t *testing.T) {
			ar, err := txtar.ParseFile(path)
			if err != nil {
				t.Fatalf("parsing fixture: %v", err)
			}
			input := fileContent(ar, "input.cur")
			wantLines := strings.Fields(fileContent(ar, "want.codes"))

			result := Compile(input)
			got := diag.Codes(result.Diagnostics)

			if !equalCodes(got, wantLines) {
				t.Errorf("codes = %v, want %v\ndiagnostics: %v", got, wantLines, result.Diagnostics)
			}
		})
	}
}

func fileContent(ar *txtar.Archive, name string) string {
	for _, f := range ar.Files {
		if f.Name == name {
			return string(f.Data)
		}
	}
	return ""
}

func equalCodes(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
