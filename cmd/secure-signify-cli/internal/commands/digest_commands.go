package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Ibrahim98s/secure-signify-vault/internal/domain/crypto"
	"github.com/Ibrahim98s/secure-signify-vault/internal/infrastructure/cryptography"
	"github.com/Ibrahim98s/secure-signify-vault/internal/pkg/logger"
)

// DigestCommandHandler encapsulates logic for handling digest operations via CLI.
type DigestCommandHandler struct {
	digestEngine crypto.DigestEngine
	logger       logger.Logger
}

// NewDigestCommandHandler initializes a new DigestCommandHandler with
// logging and a digest engine.
func NewDigestCommandHandler() (*DigestCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	digestEngine, err := cryptography.NewDigestEngine(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create digest engine: %w", err)
	}

	return &DigestCommandHandler{
		digestEngine: digestEngine,
		logger:       loggerInstance,
	}, nil
}

// DigestFileCmd computes the digest of a file with a selected algorithm and
// prints it as lowercase hex.
func (commandHandler *DigestCommandHandler) DigestFileCmd(cmd *cobra.Command, _ []string) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: ", err)
		return
	}
	algorithm, err := cmd.Flags().GetString("algorithm")
	if err != nil {
		commandHandler.logger.Error("invalid algorithm flag: ", err)
		return
	}

	message, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	result, err := commandHandler.digestEngine.Hash(message, algorithm)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info(result.Algorithm, " digest of ", inputFile, ": ", result.DigestHex)
}

// InitDigestCommands registers the digest commands with the root command.
func InitDigestCommands(rootCmd *cobra.Command) error {
	handler, err := NewDigestCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create digest command handler %w", err)
	}

	var digestFileCmd = &cobra.Command{
		Use:   "digest",
		Short: "Compute the digest of a file",
		Run:   handler.DigestFileCmd,
	}
	digestFileCmd.Flags().StringP("input-file", "", "", "Path to the file to digest")
	digestFileCmd.Flags().StringP("algorithm", "", crypto.AlgorithmSHA256, "Digest algorithm (SHA-1, SHA-256, SHA-384, SHA-512 or MD5)")
	rootCmd.AddCommand(digestFileCmd)

	return nil
}
