// Package main is the entry point for the leaguectl CLI tool, which tracks
// an office FIFA league: players, results, standings, and analytics.
package main

import "github.com/pable/leaguectl/cmd"

func main() {
	cmd.Execute()
}
