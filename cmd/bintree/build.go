package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/bintree"
	"github.com/urfave/cli/v2"
)

var keyFlags = []cli.Flag{
	&cli.StringFlag{
		Name:     "keys",
		Usage:    "comma separated integer keys to insert, in order",
		Required: true,
	},
	&cli.StringFlag{
		Name:  "remove",
		Usage: "comma separated integer keys to remove after insertion, in order",
	},
	&cli.StringFlag{
		Name:  "order",
		Usage: "key order: asc or desc",
		Value: "asc",
	},
}

var cmdBuild = &cli.Command{
	Name:      "build",
	Usage:     "build a tree and print it together with its traversals",
	ArgsUsage: " ",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:  "format",
			Usage: "drawing format: ascii, tree or dot",
			Value: "ascii",
		},
		&cli.StringFlag{
			Name:  "printer",
			Usage: "node labels: value or size",
			Value: "value",
		},
	}, keyFlags...),
	Action: runBuild,
}

var cmdLevels = &cli.Command{
	Name:      "levels",
	Usage:     "build a tree and print its keys level by level",
	ArgsUsage: " ",
	Flags:     keyFlags,
	Action:    runLevels,
}

func runBuild(cctx *cli.Context) error {
	tree, err := buildTree(cctx)
	if err != nil {
		return err
	}
	var p bintree.Printer[int64]
	switch cctx.String("printer") {
	case "value":
		p = bintree.ValuePrinter[int64]{}
	case "size":
		p = bintree.SizePrinter[int64]{}
	default:
		return fmt.Errorf("unknown printer %q", cctx.String("printer"))
	}
	w := cctx.App.Writer
	switch cctx.String("format") {
	case "ascii":
		fmt.Fprintln(w, color.New(color.FgBlue).Sprint(bintree.Render(tree, p)))
	case "tree":
		fmt.Fprint(w, color.New(color.FgBlue).Sprint(bintree.TreePrint(tree, p)))
	case "dot":
		return bintree.Tree2Dot(w, p, tree)
	default:
		return fmt.Errorf("unknown format %q", cctx.String("format"))
	}
	label := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(w, "%s %v\n", label("in-order:   "), tree.Walk())
	fmt.Fprintf(w, "%s %v\n", label("level-order:"), tree.LevelWalk())
	fmt.Fprintf(w, "%s %d\n", label("height:     "), tree.Height())
	return nil
}

func runLevels(cctx *cli.Context) error {
	tree, err := buildTree(cctx)
	if err != nil {
		return err
	}
	printLevels(cctx.App.Writer, tree)
	return nil
}

func printLevels(w io.Writer, tree bintree.Tree[int64]) {
	label := color.New(color.FgRed).SprintFunc()
	for depth, keys := range tree.Levels() {
		fmt.Fprintf(w, "%s %v\n", label(fmt.Sprintf("%3d:", depth)), keys)
	}
}

func buildTree(cctx *cli.Context) (bintree.Tree[int64], error) {
	var cmp bintree.Comparator[int64] = bintree.Ordered[int64]{}
	switch cctx.String("order") {
	case "asc":
	case "desc":
		cmp = bintree.Reverse(cmp)
	default:
		return bintree.Tree[int64]{}, fmt.Errorf("unknown order %q", cctx.String("order"))
	}
	tree, err := bintree.New(bintree.Config[int64]{Comparator: cmp})
	if err != nil {
		return tree, err
	}
	inserts, err := parseKeys(cctx.String("keys"))
	if err != nil {
		return tree, err
	}
	removals, err := parseKeys(cctx.String("remove"))
	if err != nil {
		return tree, err
	}
	batch := bintree.NewBatch(tree)
	if err := batch.Insert(inserts...); err != nil {
		return tree, err
	}
	if err := batch.Remove(removals...); err != nil {
		return tree, err
	}
	return batch.Tree(), nil
}

// parseKeys parses a comma separated list of integers. Blank entries are
// skipped.
func parseKeys(s string) ([]int64, error) {
	var keys []int64
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		k, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid key %q: %w", field, err)
		}
		keys = append(keys, k)
	}
	return keys, nil
}
