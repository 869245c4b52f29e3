// Command mdlinspect decodes a saved web service response and summarises it. With -items the list
// entries are printed as NDJSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"moodle/internal/analytics"
	"moodle/internal/catalog"
	"moodle/internal/mdlerrors"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
)

func main() {
	function := flag.String("function", "", "web service function the payload answers, e.g. core_course_search_courses")
	items := flag.Bool("items", false, "print list items as NDJSON")
	list := flag.Bool("list", false, "list known functions grouped by component")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [file]\n\nReads the payload from file, or stdin when no file is given.\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	defer glog.Flush()

	var err error
	if *list {
		err = printCatalog(os.Stdout)
	} else {
		err = inspect(*function, flag.Arg(0), *items, os.Stdin, os.Stdout)
	}
	if err != nil {
		glog.Errorf("inspect failed: %v", err)
		fmt.Fprintln(os.Stderr, "error:", err)
		glog.Flush()
		os.Exit(1)
	}
}

func printCatalog(out io.Writer) error {
	for _, c := range catalog.Components() {
		fs := catalog.ByComponent(c)
		if len(fs) == 0 {
			continue
		}
		fmt.Fprintf(out, "%s:\n", c)
		for _, f := range fs {
			kind := "record"
			if f.IsList {
				kind = "list"
			}
			fmt.Fprintf(out, "  %-64s %s\n", f.Name, kind)
		}
	}
	return nil
}

func inspect(function, path string, items bool, stdin io.Reader, out io.Writer) error {
	if function == "" {
		return fmt.Errorf("-function is required")
	}
	f, ok := catalog.Lookup(function)
	if !ok {
		return fmt.Errorf("%w: %s", mdlerrors.UnknownFunctionError, function)
	}

	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return err
	}

	var res catalog.Result
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		res, err = f.DecodeYAML(data)
	default:
		res, err = f.Decode(data)
	}
	if err != nil {
		return err
	}

	if items {
		enc := json.NewEncoder(out)
		for _, item := range res.Items {
			if err := enc.Encode(item); err != nil {
				return err
			}
		}
		return nil
	}

	summary := analytics.Summarize(res)
	fmt.Fprintf(out, "function: %s (%s)\n", f.Name, f.Component)
	if res.IsList {
		fmt.Fprintf(out, "items: %d\n", summary.Items)
	}
	fmt.Fprintf(out, "warnings: %d\n", len(res.Warnings))
	for _, w := range res.Warnings {
		fmt.Fprintf(out, "  %s: %s (%s %s)\n", w.WarningCode, w.Message, w.Item, w.ItemID)
	}
	if summary.Files > 0 {
		p := summary.FileSizes
		fmt.Fprintf(out, "files: %d (p50 %.0f, p90 %.0f, p99 %.0f bytes)\n", summary.Files, p.P50, p.P90, p.P99)
	}
	return nil
}
