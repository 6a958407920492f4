// cmd/tools/patterns-lint/main.go
package main

import (
	"flag"
	"fmt"
	"os"

	"pegrio-chatbot/pkg/patterns"
)

// patterns-lint validates a YAML pattern-override file against the
// override schema and reports what the merged tables would contain.
// Run it in CI before shipping edited tables.
func main() {
	path := flag.String("path", "", "Path to a pattern-override YAML file")
	flag.Parse()

	if *path == "" {
		fmt.Println("Usage: patterns-lint -path configs/patterns.yaml")
		os.Exit(1)
	}

	set, err := patterns.Load(*path)
	if err != nil {
		fmt.Printf("FAIL: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("OK: %s\n", *path)
	fmt.Printf("  version:        %s\n", set.Version)
	fmt.Printf("  intents:        %d\n", len(set.Intents))
	fmt.Printf("  business types: %d\n", len(set.BusinessTypes))
	fmt.Printf("  features:       %d\n", len(set.Features))
	fmt.Printf("  pain points:    %d\n", len(set.PainPoints))
	fmt.Printf("  state priorities: %d states\n", len(set.StatePriorities))
}
