// Command exporter renders a resume JSON file to a paginated A4 PDF from
// the command line, using the same pipeline as the HTTP export endpoint.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/resumecraft/go-services/internal/export"
	"github.com/resumecraft/go-services/internal/resume"
)

func main() {
	var (
		in       = flag.String("in", "", "path to a resume document JSON file (required)")
		out      = flag.String("out", "", "output PDF path (default: slugified name next to the input)")
		template = flag.String("template", "", "override the document's selected template (modern|minimal|professional)")
	)
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		log.Fatalf("read %s: %v", *in, err)
	}
	doc, err := resume.DecodeStored(data)
	if err != nil {
		log.Fatalf("parse %s: %v", *in, err)
	}
	if *template != "" {
		doc.SelectedTemplate = *template
	}

	exporter := export.NewExporter(export.NewChromedpRenderer())
	res, err := exporter.Export(context.Background(), doc)
	if err != nil {
		log.Fatalf("export: %v", err)
	}

	path := *out
	if path == "" {
		path = res.Filename
	}
	if err := os.WriteFile(path, res.PDF, 0o644); err != nil {
		log.Fatalf("write %s: %v", path, err)
	}
	fmt.Printf("wrote %s (%d pages)\n", path, res.Pages)
}
