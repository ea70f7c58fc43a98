// Command trace replays scenario scripts headlessly and prints the state
// transitions they produce.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/automoto/ledgehop/config"
	"github.com/automoto/ledgehop/scenario"
)

func main() {
	tuningPath := flag.String("tuning", "", "YAML tuning file applied before running")
	levelName := flag.String("level", "", "override the level named by each script")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: trace [-tuning file.yaml] [-level name] script.yaml...")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if *tuningPath != "" {
		tuning, err := config.LoadTuning(*tuningPath)
		if err != nil {
			log.Fatalf("[tuning] %v", err)
		}
		tuning.Apply()
	}

	failed := false
	for _, path := range flag.Args() {
		if err := trace(path, *levelName); err != nil {
			log.Printf("[trace] %s: %v", path, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func trace(path, levelOverride string) error {
	script, err := scenario.Load(path)
	if err != nil {
		return err
	}
	if levelOverride != "" {
		script.Level = levelOverride
	}
	level, err := scenario.ResolveLevel(script)
	if err != nil {
		return err
	}

	res, err := scenario.Run(script, level, scenario.CurrentOptions())
	if err != nil {
		return err
	}

	name := script.Name
	if name == "" {
		name = path
	}
	fmt.Println(renderResult(name, level.Name, res))
	return nil
}
