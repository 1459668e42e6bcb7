package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Ibrahim98s/secure-signify-vault/internal/domain/crypto"
	"github.com/Ibrahim98s/secure-signify-vault/internal/infrastructure/cryptography"
	"github.com/Ibrahim98s/secure-signify-vault/internal/pkg/logger"
)

// KeyPairCommandHandler encapsulates logic for handling key pair operations via CLI.
type KeyPairCommandHandler struct {
	keyPairManager crypto.KeyPairManager
	logger         logger.Logger
}

// NewKeyPairCommandHandler initializes a new KeyPairCommandHandler with
// logging and a key pair manager.
func NewKeyPairCommandHandler() (*KeyPairCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	keyPairManager, err := cryptography.NewKeyPairManager(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create key pair manager: %w", err)
	}

	return &KeyPairCommandHandler{
		keyPairManager: keyPairManager,
		logger:         loggerInstance,
	}, nil
}

// GenerateKeyPairCmd generates an RSA-PSS key pair and persists both halves
// as PEM files in a selected directory.
func (commandHandler *KeyPairCommandHandler) GenerateKeyPairCmd(cmd *cobra.Command, _ []string) {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		commandHandler.logger.Error("invalid key-size flag: ", err)
		return
	}
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		commandHandler.logger.Error("invalid key-dir flag: ", err)
		return
	}

	uniqueID := uuid.New()

	keyPair, err := commandHandler.keyPairManager.GenerateKeyPair(cmd.Context(), keySize)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	privateKeyPem, err := commandHandler.keyPairManager.ExportPrivateKey(keyPair.Private)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	privateKeyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-private-key.pem", uniqueID.String()))
	if err := os.WriteFile(privateKeyFilePath, []byte(privateKeyPem), 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	publicKeyPem, err := commandHandler.keyPairManager.ExportPublicKey(keyPair.Public)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	publicKeyFilePath := filepath.Join(keyDir, fmt.Sprintf("%s-public-key.pem", uniqueID.String()))
	if err := os.WriteFile(publicKeyFilePath, []byte(publicKeyPem), 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Key pair written to ", keyDir)
}

// InitKeyPairCommands registers the key pair commands with the root command.
func InitKeyPairCommands(rootCmd *cobra.Command) error {
	handler, err := NewKeyPairCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create key pair command handler %w", err)
	}

	var generateKeyPairCmd = &cobra.Command{
		Use:   "generate-keypair",
		Short: "Generate an RSA-PSS key pair",
		Run:   handler.GenerateKeyPairCmd,
	}
	generateKeyPairCmd.Flags().IntP("key-size", "", 2048, "RSA key size in bits (2048, 3072 or 4096)")
	generateKeyPairCmd.Flags().StringP("key-dir", "", "", "Directory to store the key pair")
	rootCmd.AddCommand(generateKeyPairCmd)

	return nil
}
