package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
)

// Prints a fresh JWT signing secret for local .env files.
func main() {
	buf := make([]byte, 48)
	if _, err := rand.Read(buf); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	fmt.Printf("JWT_SECRET=%s\n", base64.StdEncoding.EncodeToString(buf))
}
