// spritemill turns rendered character poses into packed sprite atlases
// with JSON index sidecars.
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "render":
		cmdRender(args)
	case "inspect":
		cmdInspect(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`spritemill - sprite atlas assembly for character rigs

Usage:
  spritemill <command> [options]

Commands:
  render  -output <atlas.png> [options]   Render a rig's animations into an atlas
  inspect [-expect keys] <atlas.png>...   Verify an atlas against its sidecar

Examples:
  spritemill render -output assets/sprites/soldier.png
  spritemill render -output soldier.png -manifest art/soldier.rig.yaml -size 128
  spritemill inspect -expect walk_down,idle assets/sprites/soldier.png

The render command reads the rig's clip inventory from a manifest
(<atlas stem>.rig.yaml by default) and invokes the configured pose
renderer once per frame. See spritemill.yaml for renderer configuration.`)
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
