package splitter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jmcarter9t/filesplitter/internal/config"
	"github.com/jmcarter9t/filesplitter/internal/diag"
)

func writeTempInput(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "input.csv")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSplitterProducesOneFilePerKey(t *testing.T) {
	input := "1,a\n1,b\n2,c\n2,d\n2,e\n3,f\n"
	inPath := writeTempInput(t, input)
	outDir := filepath.Join(filepath.Dir(inPath), "out")

	logger := diag.New(nil, diag.Critical)
	cfg := config.Config{
		InputPath:  inPath,
		OutputDir:  outDir,
		Threads:    4,
		KeyIndices: []int{1},
	}
	s := New(cfg, logger)
	if err := s.Run(); err != nil {
		t.Fatal(err)
	}

	want := map[string]string{
		"1.csv": "1,a\n1,b\n",
		"2.csv": "2,c\n2,d\n2,e\n",
		"3.csv": "3,f\n",
	}
	for name, want := range want {
		got, err := os.ReadFile(filepath.Join(outDir, name))
		if err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		if string(got) != want {
			t.Errorf("%s = %q, want %q", name, got, want)
		}
	}
}

func TestSplitterWithHeaderPrependsHeaderToEachFile(t *testing.T) {
	input := "key,val\n1,a\n1,b\n2,c\n"
	inPath := writeTempInput(t, input)
	outDir := filepath.Join(filepath.Dir(inPath), "out")

	logger := diag.New(nil, diag.Critical)
	cfg := config.Config{
		InputPath:  inPath,
		OutputDir:  outDir,
		HeaderMode: true,
		Threads:    2,
		KeyIndices: []int{1},
	}
	s := New(cfg, logger)
	if err := s.Run(); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(filepath.Join(outDir, "1.csv"))
	if err != nil {
		t.Fatal(err)
	}
	want := "key,val\n1,a\n1,b\n"
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSplitterRejectsEmptyInput(t *testing.T) {
	inPath := writeTempInput(t, "")
	outDir := filepath.Join(filepath.Dir(inPath), "out")

	logger := diag.New(nil, diag.Critical)
	cfg := config.Config{InputPath: inPath, OutputDir: outDir, Threads: 1, KeyIndices: []int{1}}
	s := New(cfg, logger)
	if err := s.Run(); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestSplitterSingleThreadMatchesMultiThread(t *testing.T) {
	input := "1,a\n1,b\n2,c\n2,d\n2,e\n3,f\n4,g\n4,h\n5,i\n"

	run := func(threads int) map[string]string {
		inPath := writeTempInput(t, input)
		outDir := filepath.Join(filepath.Dir(inPath), "out")
		logger := diag.New(nil, diag.Critical)
		cfg := config.Config{InputPath: inPath, OutputDir: outDir, Threads: threads, KeyIndices: []int{1}}
		if err := New(cfg, logger).Run(); err != nil {
			t.Fatal(err)
		}
		entries, err := os.ReadDir(outDir)
		if err != nil {
			t.Fatal(err)
		}
		result := make(map[string]string)
		for _, e := range entries {
			b, err := os.ReadFile(filepath.Join(outDir, e.Name()))
			if err != nil {
				t.Fatal(err)
			}
			result[e.Name()] = string(b)
		}
		return result
	}

	single := run(1)
	multi := run(6)

	if len(single) != len(multi) {
		t.Fatalf("file count mismatch: single=%d multi=%d", len(single), len(multi))
	}
	for name, contents := range single {
		if multi[name] != contents {
			t.Errorf("key file %s differs between thread counts:\nsingle=%q\nmulti=%q", name, contents, multi[name])
		}
	}
}
