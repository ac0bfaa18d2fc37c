package presentation

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/arbor/internal/application/manifest"
	"github.com/zjrosen/arbor/internal/testutil"
)

func TestFormatter_FormatTree(t *testing.T) {
	home := testutil.MustNode(t, "home", manifest.Page{Name: "home", Title: "Home"})
	root := testutil.MustNode(t, "site", manifest.Group{Name: "root", Title: "Demo Site"}, home)

	var buf bytes.Buffer
	err := NewFormatter(&buf).FormatTree(FromNode(root))
	require.NoError(t, err)

	// Output is indented JSON a human can read
	require.True(t, strings.HasPrefix(buf.String(), "{\n  \"key\""), "expected indented JSON, got: %s", buf.String())

	var decoded NodeDTO
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, "Demo Site", decoded.Value)
	require.Len(t, decoded.Children, 1)
}

func TestFormatter_FormatEntries(t *testing.T) {
	entries := []EntryDTO{
		{Name: "root", Kind: "group", Key: "site"},
		{Name: "home", Kind: "page", Key: "home"},
	}

	var buf bytes.Buffer
	err := NewFormatter(&buf).FormatEntries(entries)
	require.NoError(t, err)

	var decoded []EntryDTO
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, entries, decoded)
}

func TestFormatter_FormatEntriesTable(t *testing.T) {
	entries := []EntryDTO{
		{Name: "root", Kind: "group", Title: "Demo Site", Children: []string{"home", "about"}},
		{Name: "home", Kind: "page", Title: "Home", Children: []string{"kind:widget"}},
	}

	var buf bytes.Buffer
	err := NewFormatter(&buf).FormatEntriesTable(entries)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3, "header plus one line per entry")

	require.Contains(t, lines[0], "NAME")
	require.Contains(t, lines[0], "KIND")
	require.Contains(t, lines[0], "CHILDREN")

	require.Contains(t, lines[1], "root")
	require.Contains(t, lines[1], "group")
	require.Contains(t, lines[1], "home, about")

	require.Contains(t, lines[2], "kind:widget")
}

func TestFormatter_FormatEntriesTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	err := NewFormatter(&buf).FormatEntriesTable(nil)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 1, "only the header")
}

func TestFormatter_FormatRuns(t *testing.T) {
	runs := []RunDTO{
		{ID: "run-1", Descriptor: "root", Status: "ok", CreatedAt: "2026-03-14T09:26:53Z"},
	}

	var buf bytes.Buffer
	err := NewFormatter(&buf).FormatRuns(runs)
	require.NoError(t, err)

	var decoded []RunDTO
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, runs, decoded)
}

func TestFormatter_FormatRunsTable(t *testing.T) {
	runs := []RunDTO{
		{
			ID:         "7b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d",
			Descriptor: "root",
			Status:     "ok",
			NodeCount:  8,
			DurationMS: 4,
			CreatedAt:  "2026-03-14T09:26:53Z",
		},
		{
			ID:         "9f8b3a21-1c2d-4e5f-8a9b-0c1d2e3f4a5b",
			Descriptor: "kind:page",
			Status:     "error",
			CreatedAt:  "2026-03-14T09:25:00Z",
		},
	}

	var buf bytes.Buffer
	err := NewFormatter(&buf).FormatRunsTable(runs)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3, "header plus one line per run")

	require.Contains(t, lines[0], "ID")
	require.Contains(t, lines[0], "DESCRIPTOR")
	require.Contains(t, lines[0], "CREATED")

	// Full IDs survive so rows can be pasted into history show
	require.Contains(t, lines[1], "7b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d")
	require.Contains(t, lines[1], "root")
	require.Contains(t, lines[1], "2026-03-14T09:26:53Z")

	require.Contains(t, lines[2], "kind:page")
	require.Contains(t, lines[2], "error")
}

func TestFormatter_FormatRunsTable_TruncatesLongDescriptors(t *testing.T) {
	runs := []RunDTO{
		{
			ID:         "7b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d",
			Descriptor: "a-very-long-entry-name-that-will-not-fit",
			Status:     "ok",
			CreatedAt:  "2026-03-14T09:26:53Z",
		},
	}

	var buf bytes.Buffer
	err := NewFormatter(&buf).FormatRunsTable(runs)
	require.NoError(t, err)

	require.NotContains(t, buf.String(), "a-very-long-entry-name-that-will-not-fit")
	require.Contains(t, buf.String(), "…", "truncation should leave an ellipsis")
}

func TestFormatter_FormatRunsTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	err := NewFormatter(&buf).FormatRunsTable(nil)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 1, "only the header")
}

func TestTableCell_PadsAndTruncates(t *testing.T) {
	require.Equal(t, "abc   ", tableCell("abc", 6))
	require.Equal(t, "abcde…", tableCell("abcdefgh", 6))
	// Wide runes count as two cells
	require.Equal(t, "日本  ", tableCell("日本", 6))
}
