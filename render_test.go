package bintree

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRenderSampleTree(t *testing.T) {
	tree := sampleTree()
	indent := func(depth int) string { return strings.Repeat(" ", 9*depth) }
	want := strings.Join([]string{
		indent(2) + "/--{2}  ",
		indent(1) + "/--{3}--<",
		indent(2) + "\\--{4}  ",
		indent(0) + "--{5}---<",
		indent(1) + "\\--{7}--\\",
		indent(2) + "\\--{8}  ",
	}, "\n")
	got := Render(tree, ValuePrinter[int]{})
	t.Logf("\n%s", got)
	if got != want {
		t.Errorf("unexpected rendering:\n%s\nexpected:\n%s", got, want)
	}
}

func TestRenderGlyphs(t *testing.T) {
	leftOnly := NewOrdered[int]().InsertAll(2, 1)
	if got := Render(leftOnly, nil); got != "         /--{1}  \n--{2}---/" {
		t.Errorf("unexpected left-only rendering:\n%q", got)
	}
	single := NewOrdered[int]().Insert(1)
	if got := Render(single, ValuePrinter[int]{}); got != "--{1}   " {
		t.Errorf("unexpected leaf rendering: %q", got)
	}
	if got := Render(single.Nil(), ValuePrinter[int]{}); got != "" {
		t.Errorf("expected Nil to render empty, have %q", got)
	}
}

func TestRenderCutsLongLabels(t *testing.T) {
	tree := NewOrdered[int]().Insert(123456789)
	if got := Render(tree, ValuePrinter[int]{}); got != "--{12345" {
		t.Errorf("expected label to be cut to cell width, have %q", got)
	}
	wide := NewOrdered[string]().Insert("日本")
	if got := Render(wide, ValuePrinter[string]{}); got != "--{日本}" {
		t.Errorf("expected wide runes to count double, have %q", got)
	}
}

func TestDisplayWidthOfLabels(t *testing.T) {
	for _, c := range []struct {
		s string
		w int
	}{
		{"", 0},
		{"1", 1},
		{"#*0", 3},
		{"--{1}", 5},
		{"--{12345", 8},
		{"\\--{16}", 7},
		{"日本", 4},
		{"--{日本}", 8},
	} {
		if w := displayWidth(c.s); w != c.w {
			t.Errorf("expected width of %q to be %d, have %d", c.s, c.w, w)
		}
	}
	if got := fitCell("--{1}", cellWidth, '-'); got != "--{1}---" {
		t.Errorf("expected inner label padded to cell width, have %q", got)
	}
}

func TestRenderSizePrinter(t *testing.T) {
	tree, err := New(Config[any]{Comparator: BySize[any]{}})
	if err != nil {
		t.Fatal(err)
	}
	tree = tree.InsertAll(int32(1), int8(2), "s")
	got := Render(tree, SizePrinter[any]{})
	t.Logf("\n%s", got)
	for _, label := range []string{"{4}", "{1}", "{16}"} {
		if !strings.Contains(got, label) {
			t.Errorf("expected size label %s in rendering", label)
		}
	}
	custom := Render(tree, PrinterFunc[any](func(k any) string { return "k" }))
	if strings.Count(custom, "{k}") != 3 {
		t.Errorf("expected custom printer to be used for every node")
	}
}

func TestTreePrint(t *testing.T) {
	got := TreePrint(sampleTree(), ValuePrinter[int]{})
	t.Logf("\n%s", got)
	lines := strings.Split(strings.TrimSpace(got), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected one line per node, have %d lines", len(lines))
	}
	if strings.TrimSpace(lines[0]) != "5" {
		t.Errorf("expected root line to be 5, is %q", lines[0])
	}
	for _, tag := range []string{"[L]", "[R]"} {
		if !strings.Contains(got, tag) {
			t.Errorf("expected tag %s in tree print", tag)
		}
	}
	if TreePrint(sampleTree().Nil(), nil) != "" {
		t.Errorf("expected Nil to print empty")
	}
}

func TestTree2DotSharesNodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintree")
	defer teardown()
	//
	v0 := sampleTree()
	v1 := v0.Insert(9)
	var buf bytes.Buffer
	if err := Tree2Dot(&buf, ValuePrinter[int]{}, v0, v1); err != nil {
		t.Fatal(err)
	}
	dot := buf.String()
	t.Logf("\n%s", dot)
	if !strings.HasPrefix(dot, "strict digraph {") {
		t.Errorf("expected DOT graph header")
	}
	// 6 nodes of v0 plus 4 nodes created on the insertion path of 9
	if n := strings.Count(dot, "style=filled"); n != 10 {
		t.Errorf("expected 10 distinct nodes, have %d", n)
	}
}
