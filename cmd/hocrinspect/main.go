// hocrinspect is a command-line tool for inspecting the structure of hOCR files.
//
// It parses an hOCR document into its typed tree and writes structural dumps
// in several formats: a JSON rendering of the full tree, a YAML summary with
// per-role node counts and confidence statistics, and a plain text listing
// of nodes with their ids, bounding boxes and confidences.
//
// Usage:
//
//	hocrinspect -hocr document.hocr [options]
//
// Required flags:
//
//	-hocr string     Path to the hOCR file
//
// Output options (at least one required):
//
//	-json string     Path to save the document tree as JSON
//	-summary string  Path to save a YAML summary (node counts, confidence)
//	-ids string      Path to save a plain text node listing
//
// Examples:
//
//	hocrinspect -hocr document.hocr -summary document.yml
//	hocrinspect -hocr document.hocr -json tree.json -ids nodes.txt
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gardar/hocrtree/pkg/hocr"
)

// treeNode is the JSON shape of one node in the -json dump.
type treeNode struct {
	ID         string     `json:"id,omitempty"`
	Role       string     `json:"role"`
	BBox       [4]int     `json:"bbox"`
	Confidence *float64   `json:"confidence,omitempty"`
	Text       string     `json:"text,omitempty"`
	Children   []treeNode `json:"children,omitempty"`
}

// buildTreeView converts a parsed node into its JSON shape. Text is
// included only on word nodes to keep the dump free of repetition.
func buildTreeView(n *hocr.Node) treeNode {
	box := n.BBox()
	v := treeNode{
		ID:   n.ID(),
		Role: n.Role().String(),
		BBox: [4]int{box.X0, box.Y0, box.X1, box.Y1},
	}
	if conf, ok := n.Confidence(); ok {
		v.Confidence = &conf
	}
	if n.Role() == hocr.RoleWord {
		v.Text = n.Text()
	}
	for _, c := range n.Children() {
		v.Children = append(v.Children, buildTreeView(c))
	}
	return v
}

// writeListing renders one node per line, indented by depth, with its
// role, id, bounding box and confidence where present.
func writeListing(b *strings.Builder, n *hocr.Node, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(n.Role().String())
	if n.HasID() {
		b.WriteString(" id=" + n.ID())
	}
	if box := n.BBox(); !box.IsZero() {
		fmt.Fprintf(b, " bbox=%d,%d,%d,%d", box.X0, box.Y0, box.X1, box.Y1)
	}
	if conf, ok := n.Confidence(); ok {
		fmt.Fprintf(b, " conf=%.1f", conf)
	}
	b.WriteString("\n")
	for _, c := range n.Children() {
		writeListing(b, c, depth+1)
	}
}

func main() {
	// Required flags.
	hocrPath := flag.String("hocr", "", "Path to the hOCR file (required)")

	// Output flags
	jsonPath := flag.String("json", "", "Path to save the document tree as JSON")
	summaryPath := flag.String("summary", "", "Path to save a YAML summary of the document")
	idsPath := flag.String("ids", "", "Path to save a plain text node listing")

	flag.Parse()

	// Create a map of provided flags to validate
	providedFlags := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		providedFlags[f.Name] = true
	})

	if *hocrPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -hocr flag is required")
		fmt.Fprintln(os.Stderr, "Usage:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Validate that provided output flags have values
	hasError := false
	validateFlag := func(name string, value string) {
		if providedFlags[name] && value == "" {
			fmt.Fprintf(os.Stderr, "Error: -%s flag requires a value\n", name)
			hasError = true
		}
	}

	validateFlag("json", *jsonPath)
	validateFlag("summary", *summaryPath)
	validateFlag("ids", *idsPath)

	if hasError {
		fmt.Fprintln(os.Stderr, "Usage:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Check if at least one output flag is provided
	hasOutputFlag := providedFlags["json"] || providedFlags["summary"] || providedFlags["ids"]
	if !hasOutputFlag {
		fmt.Fprintln(os.Stderr, "Error: At least one output flag must be provided (-json, -summary, or -ids)")
		fmt.Fprintln(os.Stderr, "Usage:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	doc, err := hocr.ParseFile(*hocrPath)
	if err != nil {
		log.Fatalf("Failed to parse hOCR file: %v", err)
	}

	summary := hocr.Summarize(doc)
	fmt.Printf("Parsed %s: %d pages, %d lines, %d words\n", *hocrPath, summary.Pages, summary.Lines, summary.Words)

	// Write the tree JSON if flag is provided.
	if *jsonPath != "" {
		data, err := json.MarshalIndent(buildTreeView(doc), "", "  ")
		if err != nil {
			log.Fatalf("Failed to convert document tree to JSON: %v", err)
		}
		if err := os.WriteFile(*jsonPath, data, 0644); err != nil {
			log.Fatalf("Failed to write tree JSON: %v", err)
		}
		fmt.Println("Document tree JSON saved to:", *jsonPath)
	}

	// Write the YAML summary if flag is provided.
	if *summaryPath != "" {
		data, err := yaml.Marshal(summary)
		if err != nil {
			log.Fatalf("Failed to convert summary to YAML: %v", err)
		}
		if err := os.WriteFile(*summaryPath, data, 0644); err != nil {
			log.Fatalf("Failed to write summary YAML: %v", err)
		}
		fmt.Println("Document summary saved to:", *summaryPath)
	}

	// Write the node listing if flag is provided.
	if *idsPath != "" {
		var b strings.Builder
		writeListing(&b, doc, 0)
		if err := os.WriteFile(*idsPath, []byte(b.String()), 0644); err != nil {
			log.Fatalf("Failed to write node listing: %v", err)
		}
		fmt.Println("Node listing saved to:", *idsPath)
	}
}
