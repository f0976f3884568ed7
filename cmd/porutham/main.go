// Package main provides the porutham CLI, a classical chart-matching rule
// engine.
package main

func main() {
	Execute()
}
