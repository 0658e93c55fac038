package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	rb "nickandperla.net/rustedbrain"

	bf "nickandperla.net/brainfuck"
)

const VERSION = "0.1.0"

var toolConfigPath = flag.String("config", "", "Optional config file for rustedbrain tools. Defaults apply when omitted")
var record = flag.Bool("record", false, "Persist a run record to the run database after execution")
var expectPath = flag.String("expect", "", "Score the program's output against the expected output in this file")

func usage() {
	fmt.Println("rustedbrain - A Brainf*ck language interpreter written in Go.")
	fmt.Printf("Version %s.\n", VERSION)
	fmt.Println("")
	fmt.Println("Usage:")
	fmt.Println("  rustedbrain [flags] <file-path>    Run the script at <file-path>")
	fmt.Println("  rustedbrain | -h | -? | --help     Display this help message")
	fmt.Println("")
	fmt.Println("Flags:")
	flag.PrintDefaults()
}

func main() {
	// Mirror the historical CLI: bare invocation and -? both mean help,
	// which the flag package doesn't do on its own.
	if len(os.Args) < 2 || os.Args[1] == "-h" || os.Args[1] == "-?" || os.Args[1] == "--help" {
		usage()
		return
	}

	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		return
	}

	toolConfig := rb.DefaultToolConfig()
	if *toolConfigPath != "" {
		var err error
		if toolConfig, err = rb.LoadToolConfig(*toolConfigPath); err != nil {
			log.Fatalf("%v", err)
		}
	}

	source, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("Failed to read program file [%s]: %v", flag.Arg(0), err)
	}

	program, err := bf.NewProgram(source)
	if err != nil {
		log.Fatalf("Failed to load program: %v", err)
	}

	session := rb.NewSession(toolConfig.Machine.ToMachineConfig(), os.Stdin, os.Stdout)

	if *expectPath != "" {
		evaluator, err := rb.NewEvaluator(&rb.EvaluatorConfig{ExpectedPath: *expectPath})
		if err != nil {
			log.Fatalf("%v", err)
		}
		session.Evaluator = evaluator
	} else if toolConfig.Eval != nil && toolConfig.Eval.ExpectedPath != "" {
		evaluator, err := rb.NewEvaluator(toolConfig.Eval)
		if err != nil {
			log.Fatalf("%v", err)
		}
		session.Evaluator = evaluator
	}

	runRecord := session.Run(context.Background(), program)

	if runRecord.Fidelity != nil {
		fmt.Fprintf(os.Stderr, "Output fidelity: %d%%\n", *runRecord.Fidelity)
	}

	if *record {
		persist, err := rb.NewPersistence(toolConfig.Persistence)
		if err != nil {
			log.Fatalf("Failed to create or initialize Persistence: %v", err)
		}
		if _, err := persist.Create(runRecord); err != nil {
			persist.Shutdown()
			log.Fatalf("Failed to persist run record: %v", err)
		}
		persist.Shutdown()
	}

	if runRecord.MachineError != nil {
		log.Fatalf("Program runtime execution error: %s", *runRecord.MachineError)
	}
}
