package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// hash_password.go - Utility to generate bcrypt hashes for seeding users
//
// Usage:
//   go run scripts/hash_password.go <password>
//
// Paste the output into the password_hash column of the users table.

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run scripts/hash_password.go <password>")
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(os.Args[1]), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Password: %s\n", os.Args[1])
	fmt.Printf("Bcrypt:   %s\n", hash)
}
