//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "textprep"
	mainPath   = "./cmd/textprep"
)

// Default target when running mage without arguments
var Default = Build

// Build compiles the textprep binary
func Build() error {
	fmt.Println("Building", binaryName)
	// go-sqlite3 needs cgo
	return sh.RunWith(map[string]string{"CGO_ENABLED": "1"}, "go", "build", "-o", binaryName, mainPath)
}

// Install installs the binary into GOPATH/bin
func Install() error {
	mg.Deps(Test)
	fmt.Println("Installing", binaryName)
	return sh.RunWith(map[string]string{"CGO_ENABLED": "1"}, "go", "install", mainPath)
}

// Test runs all unit tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Integration runs the tests that call the OpenAI and Gemini APIs
func Integration() error {
	if os.Getenv("OPENAI_API_KEY") == "" && os.Getenv("GEMINI_API_KEY") == "" {
		fmt.Println("Neither OPENAI_API_KEY nor GEMINI_API_KEY is set, integration tests will be skipped")
	}
	return sh.RunV("go", "test", "-run", "Integration", "-v", "./internal/transliteration/...")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Check runs vet and tests
func Check() {
	mg.SerialDeps(Vet, Test)
}

// Clean removes build artifacts
func Clean() error {
	fmt.Println("Cleaning")
	return sh.Rm(binaryName)
}
