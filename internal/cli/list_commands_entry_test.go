package gembench

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestCollectCommandData(t *testing.T) {
	root := &cobra.Command{Use: "gembench", Short: "root"}
	group := &cobra.Command{Use: "list", Short: "group"}
	leaf := &cobra.Command{Use: "models", Short: "leaf"}
	hidden := &cobra.Command{Use: "secret", Short: "hidden", Hidden: true}
	group.AddCommand(leaf, hidden)
	root.AddCommand(group)

	data := collectCommandData(root, "", "")

	if len(data) != 3 {
		t.Fatalf("expected root, group, and leaf entries, got %d: %+v", len(data), data)
	}
	if data[0].path != "gembench" {
		t.Fatalf("root path: %q", data[0].path)
	}
	if data[1].path != "  gembench list" {
		t.Fatalf("group path: %q", data[1].path)
	}
	if data[2].path != "    gembench list models" || data[2].description != "leaf" {
		t.Fatalf("leaf entry: %+v", data[2])
	}
	for _, d := range data {
		if d.path == "      gembench list secret" {
			t.Fatal("hidden command should not be listed")
		}
	}
}
