// huffcode builds a Huffman code per frequency table and prints the
// resulting codes, optionally transcoding a text file through each of
// them.
//
// huffcode english.freq
//   Prints one "<symbol>: <bitstring>" line per table entry.
//
// huffcode -in letter.txt english.freq french.freq
//   Additionally encodes the file's text and decodes it back, printing
//   both streams.  Tables are independent of each other and are
//   processed concurrently.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/prefixtree/huffman"
)

var inFile = flag.String("in", "", "text file to encode and decode")

func main() {
	flag.Parse()
	tables := flag.Args()
	if len(tables) == 0 {
		fmt.Fprintln(os.Stderr, "usage: huffcode [-in file] <freqtable>...")
		os.Exit(2)
	}

	var text string
	if *inFile != "" {
		raw, err := os.ReadFile(*inFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		text = string(raw)
	}

	outputs := make([]bytes.Buffer, len(tables))
	errs := make([]error, len(tables))
	var wg sync.WaitGroup
	for i, path := range tables {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			errs[i] = run(&outputs[i], path, text)
		}(i, path)
	}
	wg.Wait()

	status := 0
	for i := range tables {
		os.Stdout.Write(outputs[i].Bytes())
		if errs[i] != nil {
			fmt.Fprintln(os.Stderr, errs[i])
			status = 1
		}
	}
	os.Exit(status)
}

func run(out *bytes.Buffer, path string, text string) error {
	table, err := huffman.LoadFrequencyTable(path)
	if err != nil {
		return err
	}
	root, err := huffman.BuildTree(table)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	codebook := huffman.NewCodebook(root, table)

	fmt.Fprintf(out, "Huffman codes from %s:\n", path)
	if _, err := codebook.Dump(out); err != nil {
		return err
	}

	if text == "" {
		return nil
	}
	encoded, err := huffman.NewEncoder(codebook).Encode(text)
	if err != nil {
		return fmt.Errorf("%s: %w", *inFile, err)
	}
	fmt.Fprintf(out, "\nEncoded text:\n%s\n", encoded)
	decoded, err := huffman.NewDecoder(root).Decode(encoded)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nDecoded text:\n%s\n", decoded)
	return nil
}
