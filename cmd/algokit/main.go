/*
Command algokit runs the routines of the algokit packages from the shell.

	algokit [--trace level] [--json] <family> [flags] args...

Families are sort, search, match, dp and num; run "algokit <family> --help"
for the operations of each. Results are printed space separated, or as
{"result": ...} with --json. Negative numbers must follow a "--" so they are
not read as flags:

	algokit sort --algo radix -- 5 -3 0 -12
*/
package main

import (
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func main() {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
