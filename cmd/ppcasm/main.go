package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"geckodec/ppc"
)

func main() {
	disasm := flag.Bool("d", false, "Disassemble a hexadecimal machine word instead of assembling")

	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: ppcasm [-d] <instruction or hex word>")
		os.Exit(1)
	}

	if *disasm {
		tok := strings.TrimPrefix(flag.Arg(0), "0x")
		word, err := strconv.ParseUint(tok, 16, 32)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid machine word %q: %v\n", flag.Arg(0), err)
			os.Exit(1)
		}
		fmt.Println(ppc.Disassemble(uint32(word)))
		return
	}

	line := strings.Join(flag.Args(), " ")
	word, ok := ppc.Assemble(line)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no matching instruction for %q\n", line)
		os.Exit(1)
	}
	fmt.Printf("0x%08X\n", word)
}
