// Package main provides the entry point for the homophones CLI.
//
// homophones reads word lists, looks every word up on an online dictionary
// and writes the homophones it finds as word pairs and as a flat word list.
//
// Usage:
//
//	homophones build --pairs pairs.txt --singles singles.txt words.txt
//	homophones init
//
// See --help for all available options.
package main

// main is the entry point for homophones.
func main() {
	Execute()
}
