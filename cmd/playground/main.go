// Command playground is a smoke driver: it builds a table, appends rows,
// compresses a chunk, runs a scan, and prints the registry through
// StorageManager. It is not part of the storage core's spec surface.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/opossumdb/columnstore/scan"
	"github.com/opossumdb/columnstore/storage"
	"github.com/opossumdb/columnstore/table"
)

func main() {
	color.NoColor = !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd())
	header := color.New(color.FgCyan, color.Bold)

	header.Println("building table 'people'")
	people := table.New(2)
	must(people.AddColumn("id", "int"))
	must(people.AddColumn("name", "string"))
	must(people.Append([]any{int32(1), "Alexander"}))
	must(people.Append([]any{int32(2), "Bill"}))
	must(people.Append([]any{int32(3), "Hasso"}))

	header.Println("compressing chunk 0")
	must(people.CompressChunk(0))

	header.Println("scanning id >= 2")
	op := scan.New(scan.FromTable(people), 0, scan.OpGreaterThanEquals, int32(2))
	result, err := op.Execute()
	must(err)

	mgr := storage.New()
	must(mgr.AddTable("people", people))
	must(mgr.AddTable("people_scan_result", result))

	header.Println("registry contents")
	must(mgr.Print(os.Stdout))
}

func must(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
