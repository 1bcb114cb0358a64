// Command filesplitter partitions a large, key-sorted, delimited text file
// into one output file per distinct key value.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/jmcarter9t/filesplitter/internal/config"
	"github.com/jmcarter9t/filesplitter/internal/diag"
	"github.com/jmcarter9t/filesplitter/internal/splitter"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("filesplitter", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs) }

	var (
		help     bool
		header   bool
		threads  int
		verbose  string
		outdir   string
		logdir   string
		key      string
		manifest bool
	)

	fs.BoolVar(&help, "h", false, "Print help, exit 0")
	fs.BoolVar(&help, "help", false, "Print help, exit 0")
	fs.BoolVar(&header, "H", false, "Treat first record as header; prepend to every output")
	fs.BoolVar(&header, "header", false, "Treat first record as header; prepend to every output")
	fs.IntVar(&threads, "t", runtime.NumCPU(), "Worker count")
	fs.IntVar(&threads, "threads", runtime.NumCPU(), "Worker count")
	fs.StringVar(&verbose, "v", "trace", "Log level: trace,debug,info,warning,error,critical,off")
	fs.StringVar(&verbose, "verbose", "trace", "Log level: trace,debug,info,warning,error,critical,off")
	fs.StringVar(&outdir, "o", "output", "Output directory")
	fs.StringVar(&outdir, "outdir", "output", "Output directory")
	fs.StringVar(&logdir, "L", "logs", "Log directory")
	fs.StringVar(&logdir, "logdir", "logs", "Log directory")
	fs.StringVar(&key, "k", "1", "Comma-separated 1-based field indices for composite key")
	fs.StringVar(&key, "key", "1", "Comma-separated 1-based field indices for composite key")
	fs.BoolVar(&manifest, "m", false, "Write an LZ4-compressed manifest of emitted groups")
	fs.BoolVar(&manifest, "manifest", false, "Write an LZ4-compressed manifest of emitted groups")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if help {
		fs.Usage()
		return 0
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "filesplitter: missing input file")
		fs.Usage()
		return 2
	}
	inputPath := fs.Arg(0)

	level, ok := diag.ParseLevel(verbose)
	if !ok {
		fmt.Fprintf(os.Stderr, "filesplitter: unrecognized log level %q, falling back to trace\n", verbose)
	}

	logdirNorm := config.NormalizeDir(logdir, "logs")
	sink, err := diag.NewFileSink(logdirNorm, "filesplitter.log")
	if err != nil {
		fmt.Fprintf(os.Stderr, "filesplitter: could not open log file: %v\n", err)
		return 1
	}
	defer sink.Close()

	logger := diag.New(sink, level)
	if !ok {
		logger.Warningf(diag.CoordinatorTID, "unrecognized log level %q, falling back to trace", verbose)
	}

	cfg := config.Config{
		InputPath:  inputPath,
		OutputDir:  config.NormalizeDir(outdir, "output"),
		HeaderMode: header,
		Threads:    config.ClampThreads(threads),
		KeyIndices: config.ParseKeyIndices(key),
		Manifest:   manifest,
	}

	if err := splitter.New(cfg, logger).Run(); err != nil {
		logger.Criticalf(diag.CoordinatorTID, "run failed: %v", err)
		fmt.Fprintf(os.Stderr, "filesplitter: %v\n", err)
		return 1
	}
	return 0
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintln(os.Stderr, "usage: filesplitter [options] <input-file>")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Partitions a key-sorted, delimited text file into one file per key.")
	fmt.Fprintln(os.Stderr)
	fs.PrintDefaults()
}
