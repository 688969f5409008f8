// Shared helpers for gridstore CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// parseJSONFlag unmarshals a JSON flag value into dst. Used for the
// --data and --mapping flags that carry structured values.
func parseJSONFlag(name, raw string, dst any) error {
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

// readInput reads the payload for import commands: a file path, or
// stdin when path is "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
