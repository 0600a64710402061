package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/dangerclosesec/slate/lang/scanner"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var asJSON bool

func init() {
	scanCmd.Flags().BoolVar(&asJSON, "json", false, "Emit the token list as JSON")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "slate",
	Short: "Slate is the front-end toolchain for the Slate scripting language",
	Long:  `Slate tokenizes Slate source files and reports lexical errors with their line numbers.`,
}

var scanCmd = &cobra.Command{
	Use:   "scan [file]",
	Short: "Tokenize a Slate source file",
	Long:  `Tokenize a Slate source file and print the resulting tokens, one per line.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		tokens, err := scanner.ScanFile(args[0])
		if err != nil {
			log.Fatalf("Failed to scan file: %v", err)
		}

		if asJSON {
			out, err := json.MarshalIndent(tokens, "", "  ")
			if err != nil {
				log.Fatalf("Failed to encode tokens: %v", err)
			}
			fmt.Println(string(out))
			return
		}

		for _, tok := range tokens {
			fmt.Printf("%4d  %-10s  %s\n", tok.Position.Line, tok.Kind, tok)
		}
		fmt.Printf("%d tokens\n", len(tokens))
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("slate version %s\n", version)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
