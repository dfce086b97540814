package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestProductsCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"products"})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	got := out.String()
	for _, want := range []string{"AI-Powered Chairs", "ErgoSense Pro", "$1,499", "NexusComfort Elite", "$1,299", "Specifications"} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected output to contain %q", want)
		}
	}
}

func TestProductsCommandRejectsArgs(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"products", "extra"})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err == nil {
		t.Error("Expected an error for unexpected arguments")
	}
}
