package fitflex

import (
	"bytes"
	"testing"
)

func TestRootHelp(t *testing.T) {
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"--help"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute root help: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected help output")
	}
}

func TestActivityTypesCommand(t *testing.T) {
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"activity", "types"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute activity types: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("Walking")) {
		t.Fatalf("expected type table, got %q", buf.String())
	}
}
