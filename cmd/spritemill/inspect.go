package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/spritemill/spritemill/internal/atlas"
	"github.com/spritemill/spritemill/internal/pipeline"
	"github.com/spritemill/spritemill/pkg/raster"
)

func cmdInspect(args []string) {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	expect := fs.String("expect", "", "Comma-separated animation keys that must be present")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: spritemill inspect [-expect keys] <atlas.png>...")
		os.Exit(1)
	}

	var expected []string
	if *expect != "" {
		expected = strings.Split(*expect, ",")
	}

	failures := 0
	for _, atlasPath := range fs.Args() {
		failures += inspectAtlas(atlasPath, expected)
	}
	if failures > 0 {
		fmt.Fprintf(os.Stderr, "\n%d problem(s) found\n", failures)
		os.Exit(1)
	}
}

// inspectAtlas verifies one atlas against its sidecar and returns the
// number of problems found.
func inspectAtlas(atlasPath string, expected []string) int {
	sheet, err := raster.ReadFile(atlasPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", atlasPath, err)
		return 1
	}

	sidecarPath := pipeline.SidecarPath(atlasPath)
	data, err := os.ReadFile(sidecarPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", atlasPath, err)
		return 1
	}
	meta, err := atlas.DecodeMetadata(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", atlasPath, err)
		return 1
	}

	failures := 0
	for _, problem := range meta.Verify(sheet.Width, sheet.Height) {
		fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", atlasPath, problem)
		failures++
	}
	for _, key := range expected {
		key = strings.TrimSpace(key)
		if _, ok := meta.Animations.Get(key); !ok {
			fmt.Fprintf(os.Stderr, "FAIL %s: missing animation %q\n", atlasPath, key)
			failures++
		}
	}

	if failures == 0 {
		fmt.Printf("OK %s: %d animations, %d frames, %dx%d cells of %dpx\n",
			atlasPath, len(meta.Animations), meta.TotalFrames(),
			meta.Columns, meta.Rows, meta.FrameSize[0])
	}
	return failures
}
