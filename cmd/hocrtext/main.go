// hocrtext is a command-line tool for extracting plain text from hOCR files.
//
// It parses the hOCR structure (pages, areas, paragraphs, lines, words) and
// reconstructs the recognized text with layout-aware separators: words are
// joined with spaces, lines and paragraphs with newlines, and pages with
// blank lines.
//
// Usage:
//
//	hocrtext -hocr document.hocr [options]
//
// Required flags:
//
//	-hocr string      Path to the hOCR file
//
// Options:
//
//	-output string    Write the text to this file instead of stdout
//	-page int         Extract a single page (1-based index)
//	-generic          Traverse by id attributes instead of the role hierarchy
//
// Examples:
//
// Print the text of a whole document:
//
//	hocrtext -hocr document.hocr
//
// Save the text of page 3:
//
//	hocrtext -hocr document.hocr -page 3 -output page3.txt
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gardar/hocrtree/pkg/hocr"
)

func main() {
	hocrPath := flag.String("hocr", "", "Path to the hOCR file")
	outputPath := flag.String("output", "", "Output text path (stdout when empty)")
	page := flag.Int("page", 0, "Extract a single page (1-based index)")
	generic := flag.Bool("generic", false, "Traverse by id attributes instead of the role hierarchy")
	flag.Parse()

	if *hocrPath == "" {
		fmt.Println("Error: Must provide -hocr path")
		os.Exit(1)
	}
	if *page < 0 {
		fmt.Println("Error: -page must be a positive page number")
		os.Exit(1)
	}
	if *generic && *page != 0 {
		fmt.Println("Error: -page is not supported together with -generic")
		os.Exit(1)
	}

	var text string
	if *generic {
		root, err := hocr.ParseGenericFile(*hocrPath)
		if err != nil {
			fmt.Printf("Failed to parse hOCR file: %v\n", err)
			os.Exit(1)
		}
		text = root.Text()
	} else {
		doc, err := hocr.ParseFile(*hocrPath)
		if err != nil {
			fmt.Printf("Failed to parse hOCR file: %v\n", err)
			os.Exit(1)
		}
		if *page > 0 {
			pages := doc.Pages()
			if *page > len(pages) {
				fmt.Printf("Error: page %d out of range, document has %d pages\n", *page, len(pages))
				os.Exit(1)
			}
			text = pages[*page-1].Text()
		} else {
			text = doc.Text()
		}
	}

	if *outputPath == "" {
		fmt.Println(text)
		return
	}
	if err := os.WriteFile(*outputPath, []byte(text), 0644); err != nil {
		fmt.Printf("Failed to write text output: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Document text saved to:", *outputPath)
}
