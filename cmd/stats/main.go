// Package main provides the entry point for the stats CLI.
//
// stats queries the StackExchange API for the Stack Overflow answers posted
// in a date range and prints a small summary of them.
//
// Usage:
//
//	stats --since "20200202 10:00:00" --until "20200202 10:02:00"
//	stats --since "20200202 10:00:00" --until "20200202 10:02:00" --output-format html
//
// See --help for all available options.
package main

// main is the entry point for stats.
func main() {
	Execute()
}
