// Command markex is a development tool that parses markdown from stdin and
// dumps the per-line parse results: kind, indent, plain text, and (verbose)
// every run with its style.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/sheetdown/sheetdown/internal/writeutil"
	"github.com/sheetdown/sheetdown/mark"
)

func main() {
	var verbose bool
	flag.BoolVar(&verbose, "v", false, "dump per-run style detail")
	flag.Parse()

	log.SetFlags(0)

	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatalln(err)
	}

	out := &writeutil.ErrWriter{Writer: os.Stdout}
	runOut := writeutil.PrefixWriter("   | ", out)

	doc := mark.Parse("stdin", string(b))
	for i, line := range doc.Lines {
		fmt.Fprintf(out, "%v. %v indent=%v %q\n", i+1, line.Kind, line.Indent, line.Plain())
		if verbose {
			for _, r := range line.Runs {
				fmt.Fprintf(runOut, "%+v\n", r)
			}
		}
	}
	if out.Err != nil {
		log.Fatalln(out.Err)
	}
}
