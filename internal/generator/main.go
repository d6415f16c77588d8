package main

import (
	"os"
	"os/exec"

	"github.com/consensys/bavard"
)

const copyrightHolder = "ConsenSys Software Inc."

var bgen = bavard.NewBatchGenerator(copyrightHolder, 2020, "galois")

const (
	// irreducible polynomial x⁸+x⁴+x³+x²+1 and a primitive element for it
	gf256Modulus   = 0x11D
	gf256Generator = 2
)

type tablesData struct {
	Modulus   int
	Generator int
	ExpRows   [][]int
	LogRows   [][]int
}

//go:generate go run main.go
func main() {
	entries := []bavard.Entry{
		{File: "../../field/gf256/tables.go", Templates: []string{"tables.go.tmpl"}},
	}
	if err := bgen.Generate(computeTables(), "gf256", "./template/", entries...); err != nil {
		panic(err)
	}

	cmd := exec.Command("gofmt", "-s", "-w", "../../field/gf256/")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic(err)
	}
}

func computeTables() tablesData {
	exp := make([]int, 256)
	log := make([]int, 256)

	x := 1
	for i := 0; i < 255; i++ {
		exp[i] = x
		log[x] = i
		x <<= 1
		if x&0x100 != 0 {
			x ^= gf256Modulus
		}
	}
	// wraparound slot so that inversion needs no index reduction
	exp[255] = exp[0]

	return tablesData{
		Modulus:   gf256Modulus,
		Generator: gf256Generator,
		ExpRows:   rows(exp, 8),
		LogRows:   rows(log, 8),
	}
}

func rows(values []int, width int) [][]int {
	var r [][]int
	for i := 0; i < len(values); i += width {
		r = append(r, values[i:i+width])
	}
	return r
}
