package main

import (
	"fmt"
	"os"

	"github.com/erraggy/schemalens"
	"github.com/erraggy/schemalens/cmd/schemalens/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("schemalens v%s\n", schemalens.Version())
	case "help", "-h", "--help":
		printUsage()
	case "get":
		if err := commands.HandleGet(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "tree":
		if err := commands.HandleTree(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "search":
		if err := commands.HandleSearch(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "versions":
		if err := commands.HandleVersions(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "serve":
		if err := commands.HandleServe(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`schemalens - browse a de-referenced view of an AsyncAPI/OpenAPI schema document

Usage:
  schemalens <command> [flags] [arguments]

Commands:
  get        Resolve one schema into its full attribute tree
  tree       List every schema as a lightweight node
  search     Search schemas by substring
  versions   Enumerate distinct version markers
  serve      Serve the explorer API over HTTP
  mcp        Serve the explorer as MCP tools over stdio
  version    Show version information
  help       Show this help message

Run 'schemalens <command> -h' for command-specific flags.

Examples:
  schemalens get asyncapi.json Payment
  schemalens tree asyncapi.json
  schemalens search asyncapi.json account
  schemalens serve --addr :8000 asyncapi.json
  schemalens mcp asyncapi.json`)
}
