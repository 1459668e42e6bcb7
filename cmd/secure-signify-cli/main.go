// Package main is the entry point for the secure-signify-cli application.
// It initializes the root command and registers sub-commands for key pair,
// signature, digest, certificate and timestamp operations, then executes the
// command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/Ibrahim98s/secure-signify-vault/cmd/secure-signify-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "secure-signify-cli",
		Short: "Cryptographic operations CLI tool",
		Long: `secure-signify-cli is a command-line tool for cryptographic operations.
Supports RSA-PSS key pair generation, signing and verification, message
digesting, self-signed certificate records and timestamp tokens.`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitKeyPairCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize key pair commands: %w", err)
	}

	if err := commands.InitSignatureCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize signature commands: %w", err)
	}

	if err := commands.InitDigestCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize digest commands: %w", err)
	}

	if err := commands.InitCertificateCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize certificate commands: %w", err)
	}

	if err := commands.InitTimestampCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize timestamp commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}
