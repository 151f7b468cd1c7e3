// Package main is the entry point for the cricstats CLI tool, which processes
// ball-by-ball cricket match documents and computes player/team statistics.
package main

import "github.com/pable/go-cricket-stats/cmd"

func main() {
	cmd.Execute()
}
