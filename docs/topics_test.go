package docs

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// checkBlock is the info string of fenced blocks that must run successfully
// against a freshly built pms.
const checkBlock = "bash check"

// lines returns the raw text held by n.
func lines(n ast.Node, source []byte) string {
	var b strings.Builder
	for i := 0; i < n.Lines().Len(); i++ {
		seg := n.Lines().At(i)
		b.Write(seg.Value(source))
	}
	return b.String()
}

// listedTopics returns the topics of the "* topic: description" items of the
// index.
func listedTopics(t *testing.T) []string {
	t.Helper()
	content, err := GetTopic(index)
	if err != nil {
		t.Fatal(err)
	}
	source := []byte(content)
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	var topics []string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || n.Kind() != ast.KindListItem || n.FirstChild() == nil {
			return ast.WalkContinue, nil
		}
		if topic, _, ok := strings.Cut(lines(n.FirstChild(), source), ":"); ok {
			topics = append(topics, strings.TrimSpace(topic))
		}
		return ast.WalkSkipChildren, nil
	})
	return topics
}

func TestIndexListsEveryTopic(t *testing.T) {
	listed := listedTopics(t)
	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range listed {
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("index lists %q: %v", topic, err)
		}
	}
	for _, topic := range all {
		if !slices.Contains(listed, topic) {
			t.Errorf("topic %q is not listed in %s.md", topic, index)
		}
	}
}

// block is a fenced code block to execute.
type block struct {
	file    string
	line    int
	content string
}

// checkBlocks returns the "bash check" blocks of a markdown file.
func checkBlocks(t *testing.T, file string) []block {
	t.Helper()
	source, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	var blocks []block
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok || fcb.Info == nil {
			return ast.WalkContinue, nil
		}
		if string(fcb.Info.Segment.Value(source)) != checkBlock {
			return ast.WalkContinue, nil
		}
		blocks = append(blocks, block{
			file:    file,
			line:    bytes.Count(source[:fcb.Info.Segment.Start], []byte("\n")) + 1,
			content: lines(fcb, source),
		})
		return ast.WalkContinue, nil
	})
	return blocks
}

func TestCheckBlocks(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	files = append(files, "../README.md")

	var blocks []block
	for _, file := range files {
		blocks = append(blocks, checkBlocks(t, file)...)
	}
	if len(blocks) == 0 {
		t.Skip("no check block")
	}

	bin := t.TempDir()
	build := exec.Command("go", "build", "-o", filepath.Join(bin, "pms"), "../pms/")
	if out, err := build.CombinedOutput(); err != nil {
		t.Fatalf("failed to build pms: %v\n%s", err, out)
	}
	env := append(os.Environ(),
		fmt.Sprintf("PATH=%s%c%s", bin, os.PathListSeparator, os.Getenv("PATH")),
		"REALTY_DB_DSN=realty.db",
		"REALTY_TESTING_NOW=2025-06-30 09:00:00",
	)

	for _, b := range blocks {
		t.Run(fmt.Sprintf("%s:%d", filepath.Base(b.file), b.line), func(t *testing.T) {
			cmd := exec.Command("bash", "-c", "set -e; "+b.content)
			cmd.Dir = t.TempDir()
			cmd.Env = env
			if out, err := cmd.CombinedOutput(); err != nil {
				t.Errorf("%s:%d: %v with output:\n%s", b.file, b.line, err, out)
			}
		})
	}
}

func TestTitle(t *testing.T) {
	title, err := Title("valuation")
	if err != nil {
		t.Fatal(err)
	}
	if title != "Valuation" {
		t.Errorf("Title(valuation) = %q, want %q", title, "Valuation")
	}
	if _, err := Title("missing"); err == nil {
		t.Error("Title(missing) succeeded, want an error")
	}
}

func TestGetAllTopicsSkipsIndex(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	if slices.Contains(topics, index) {
		t.Errorf("GetAllTopics() = %v, contains %q", topics, index)
	}
	if !slices.IsSorted(topics) {
		t.Errorf("GetAllTopics() = %v, not sorted", topics)
	}
}
