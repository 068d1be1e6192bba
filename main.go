// Command qruuid encodes UUID v4 values as compact Base45 codes for QR Codes
// and looks up QR alphanumeric capacities.
//
// This file is only here to make installing with go install easier. The
// source lives in the src directory.
package main

import "github.com/ironsmile/qruuid/src"

func main() {
	src.Main()
}
