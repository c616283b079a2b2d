// abigen renders the exception constructor table as a C header or C#
// declarations.
//
// Usage:
//
//	abigen c [-table ctors.abi] [-out cqlbridge.h] [-config abigen.yaml]
//	abigen csharp [-table ctors.abi] [-out Constructors.g.cs] [-namespace CqlBridge.Native]
//	abigen check -table ctors.abi
package main

import (
	"fmt"
	"os"
)

const version = "0.2.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
