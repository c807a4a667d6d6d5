package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/chronos-tachyon/huffile"
	"github.com/chronos-tachyon/huffile/internal/verify"
)

var (
	q = flag.Bool("q", false, "quiet: do not print statistics")
	v = flag.Bool("v", false, "verbose: print the code table when encoding")
)

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "usage:\n")
	fmt.Fprintf(out, "  %s [flags] encode <source_file> <compressed_file>\n", os.Args[0])
	fmt.Fprintf(out, "  %s [flags] decode <compressed_file> <recovered_file>\n", os.Args[0])
	fmt.Fprintf(out, "  %s [flags] test <source_file> <compressed_file> <recovered_file>\n", os.Args[0])
	fmt.Fprintf(out, "flags:\n")
	flag.PrintDefaults()
}

func main() {
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	var err error
	switch verb := args[0]; verb {
	case "encode":
		needArgs(verb, args, 2)
		err = encode(args[1], args[2])
	case "decode":
		needArgs(verb, args, 2)
		err = decode(args[1], args[2])
	case "test":
		needArgs(verb, args, 3)
		err = test(args[1], args[2], args[3])
	default:
		log.Printf("unknown command %q: valid commands are encode, decode, test", verb)
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalln(err)
	}
}

func needArgs(verb string, args []string, n int) {
	if len(args)-1 != n {
		log.Printf("%s: expected %d file arguments, got %d", verb, n, len(args)-1)
		flag.Usage()
		os.Exit(2)
	}
}

func encode(src, dst string) error {
	stats, err := huffile.CompressFile(src, dst)
	if errors.Is(err, huffile.ErrEmptyInput) {
		log.Printf("%s is empty: nothing to compress", src)
		return nil
	}
	if err != nil {
		return err
	}
	if !*q {
		log.Printf("original size:    %d bytes", stats.UncompressedBytes)
		log.Printf("compressed size:  %d bytes", stats.CompressedBytes)
		log.Printf("ratio:            %.2f", stats.Ratio())
		log.Printf("savings:          %.1f%%", stats.Savings())
	}
	if *v {
		return dumpCodes(src)
	}
	return nil
}

func dumpCodes(src string) error {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	h, err := huffile.CountFrequencies(f)
	if err != nil {
		return err
	}
	ct := huffile.NewCodeTable(huffile.BuildTree(&h))
	_, err = ct.Dump(os.Stdout)
	return err
}

func decode(src, dst string) error {
	stats, err := huffile.DecompressFile(src, dst)
	if err != nil {
		return err
	}
	if !*q {
		log.Printf("decoded %d of %d symbols into %s", stats.Symbols, stats.ExpectedSymbols, dst)
	}
	return nil
}

func test(src, packed, unpacked string) error {
	log.Printf("1. compressing %s", src)
	if err := encode(src, packed); err != nil {
		return err
	}
	if fi, err := os.Stat(src); err == nil && fi.Size() == 0 {
		log.Printf("TEST SKIPPED: nothing to compress")
		return nil
	}

	log.Printf("2. decompressing %s", packed)
	if err := decode(packed, unpacked); err != nil {
		return err
	}

	log.Printf("3. comparing %s with %s", src, unpacked)
	res, err := verify.Files(src, unpacked)
	if err != nil {
		return err
	}
	if !res.Equal() {
		log.Printf("TEST FAILED: %v", res)
		os.Exit(1)
	}
	log.Printf("TEST PASSED: %v", res)
	return nil
}
