package commands

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Ibrahim98s/secure-signify-vault/internal/domain/crypto"
	"github.com/Ibrahim98s/secure-signify-vault/internal/infrastructure/cryptography"
	"github.com/Ibrahim98s/secure-signify-vault/internal/pkg/logger"
)

// SignatureCommandHandler encapsulates logic for handling signing and
// verification operations via CLI.
type SignatureCommandHandler struct {
	keyPairManager  crypto.KeyPairManager
	signatureEngine crypto.SignatureEngine
	logger          logger.Logger
}

// NewSignatureCommandHandler initializes a new SignatureCommandHandler with
// logging, a key pair manager and a signature engine.
func NewSignatureCommandHandler() (*SignatureCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	keyPairManager, err := cryptography.NewKeyPairManager(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create key pair manager: %w", err)
	}

	signatureEngine, err := cryptography.NewSignatureEngine(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create signature engine: %w", err)
	}

	return &SignatureCommandHandler{
		keyPairManager:  keyPairManager,
		signatureEngine: signatureEngine,
		logger:          loggerInstance,
	}, nil
}

// SignFileCmd signs a file with a PEM-encoded private key and writes the
// base64 signature next to it.
func (commandHandler *SignatureCommandHandler) SignFileCmd(cmd *cobra.Command, _ []string) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: ", err)
		return
	}
	privateKeyPath, err := cmd.Flags().GetString("private-key")
	if err != nil {
		commandHandler.logger.Error("invalid private-key flag: ", err)
		return
	}
	signatureFile, err := cmd.Flags().GetString("signature-file")
	if err != nil {
		commandHandler.logger.Error("invalid signature-file flag: ", err)
		return
	}
	saltLength, err := cmd.Flags().GetInt("salt-length")
	if err != nil {
		commandHandler.logger.Error("invalid salt-length flag: ", err)
		return
	}

	privateKeyPem, err := os.ReadFile(filepath.Clean(privateKeyPath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	privateKey, err := commandHandler.keyPairManager.ImportPrivateKey(string(privateKeyPem))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	message, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	result, err := commandHandler.signatureEngine.Sign(message, privateKey, saltLength)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	encoded := base64.StdEncoding.EncodeToString(result.Signature)
	if err := os.WriteFile(signatureFile, []byte(encoded), 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Signature written to ", signatureFile, " with key size ", result.KeySizeBits)
}

// VerifyFileCmd verifies a base64 signature file against an input file using
// a PEM-encoded public key.
func (commandHandler *SignatureCommandHandler) VerifyFileCmd(cmd *cobra.Command, _ []string) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: ", err)
		return
	}
	publicKeyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		commandHandler.logger.Error("invalid public-key flag: ", err)
		return
	}
	signatureFile, err := cmd.Flags().GetString("signature-file")
	if err != nil {
		commandHandler.logger.Error("invalid signature-file flag: ", err)
		return
	}

	publicKeyPem, err := os.ReadFile(filepath.Clean(publicKeyPath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	publicKey, err := commandHandler.keyPairManager.ImportPublicKey(string(publicKeyPem))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	message, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	signatureEncoded, err := os.ReadFile(filepath.Clean(signatureFile))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	valid := commandHandler.signatureEngine.Verify(message, string(signatureEncoded), publicKey)
	commandHandler.logger.Info("Signature valid: ", valid)
}

// InitSignatureCommands registers the signature commands with the root command.
func InitSignatureCommands(rootCmd *cobra.Command) error {
	handler, err := NewSignatureCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create signature command handler %w", err)
	}

	var signFileCmd = &cobra.Command{
		Use:   "sign",
		Short: "Sign a file using RSA-PSS",
		Run:   handler.SignFileCmd,
	}
	signFileCmd.Flags().StringP("input-file", "", "", "Path to the file to sign")
	signFileCmd.Flags().StringP("private-key", "", "", "Path to the PEM-encoded private key")
	signFileCmd.Flags().StringP("signature-file", "", "", "Path to write the base64 signature")
	signFileCmd.Flags().IntP("salt-length", "", crypto.DefaultSaltLength, "PSS salt length in bytes")
	rootCmd.AddCommand(signFileCmd)

	var verifyFileCmd = &cobra.Command{
		Use:   "verify",
		Short: "Verify a file signature using RSA-PSS",
		Run:   handler.VerifyFileCmd,
	}
	verifyFileCmd.Flags().StringP("input-file", "", "", "Path to the signed file")
	verifyFileCmd.Flags().StringP("public-key", "", "", "Path to the PEM-encoded public key")
	verifyFileCmd.Flags().StringP("signature-file", "", "", "Path to the base64 signature")
	rootCmd.AddCommand(verifyFileCmd)

	return nil
}
