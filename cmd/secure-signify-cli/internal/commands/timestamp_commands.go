package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/Ibrahim98s/secure-signify-vault/internal/domain/timestamps"
	"github.com/Ibrahim98s/secure-signify-vault/internal/infrastructure/cryptography"
	"github.com/Ibrahim98s/secure-signify-vault/internal/pkg/config"
	"github.com/Ibrahim98s/secure-signify-vault/internal/pkg/logger"
)

// TimestampCommandHandler encapsulates logic for handling timestamp token
// operations via CLI. The authority itself is built per invocation because
// its mode and secret come from flags.
type TimestampCommandHandler struct {
	logger logger.Logger
}

// NewTimestampCommandHandler initializes a new TimestampCommandHandler with logging.
func NewTimestampCommandHandler() (*TimestampCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &TimestampCommandHandler{
		logger: loggerInstance,
	}, nil
}

// authorityFromFlags builds a timestamp authority from the mode and secret
// flags. The secret falls back to the TIMESTAMP_SECRET environment variable.
func (commandHandler *TimestampCommandHandler) authorityFromFlags(cmd *cobra.Command) (timestamps.TimestampAuthority, error) {
	mode, err := cmd.Flags().GetString("mode")
	if err != nil {
		return nil, fmt.Errorf("invalid mode flag: %w", err)
	}
	secret, err := cmd.Flags().GetString("secret")
	if err != nil {
		return nil, fmt.Errorf("invalid secret flag: %w", err)
	}
	if secret == "" {
		secret = os.Getenv("TIMESTAMP_SECRET")
	}

	settings := &config.AuthoritySettings{
		Mode:   mode,
		Secret: secret,
	}

	return cryptography.NewTimestampAuthority(settings, nil, nil, commandHandler.logger)
}

// CreateTimestampCmd creates a timestamp token for a file and writes the
// encoded token to an output file.
func (commandHandler *TimestampCommandHandler) CreateTimestampCmd(cmd *cobra.Command, _ []string) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: ", err)
		return
	}
	authorityID, err := cmd.Flags().GetString("authority")
	if err != nil {
		commandHandler.logger.Error("invalid authority flag: ", err)
		return
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: ", err)
		return
	}

	authority, err := commandHandler.authorityFromFlags(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	data, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	token, err := authority.CreateToken(data, authorityID)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := os.WriteFile(outputFile, []byte(token), 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Timestamp token written to ", outputFile)
}

// VerifyTimestampCmd verifies an encoded timestamp token read from a file.
func (commandHandler *TimestampCommandHandler) VerifyTimestampCmd(cmd *cobra.Command, _ []string) {
	tokenFile, err := cmd.Flags().GetString("token-file")
	if err != nil {
		commandHandler.logger.Error("invalid token-file flag: ", err)
		return
	}

	authority, err := commandHandler.authorityFromFlags(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	token, err := os.ReadFile(filepath.Clean(tokenFile))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	verification := authority.VerifyToken(string(token))
	if !verification.Valid {
		commandHandler.logger.Info("Timestamp token valid: false")
		return
	}

	commandHandler.logger.Info("Timestamp token valid: true")
	commandHandler.logger.Info("Timestamp: ", verification.Timestamp.Format(time.RFC3339))
	commandHandler.logger.Info("Authority: ", verification.Authority)
}

// InspectTimestampCmd decodes a token without checking authenticity and
// prints its payload fields.
func (commandHandler *TimestampCommandHandler) InspectTimestampCmd(cmd *cobra.Command, _ []string) {
	tokenFile, err := cmd.Flags().GetString("token-file")
	if err != nil {
		commandHandler.logger.Error("invalid token-file flag: ", err)
		return
	}

	token, err := os.ReadFile(filepath.Clean(tokenFile))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	payload, err := timestamps.DecodePayload(string(token))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Timestamp: ", payload.Timestamp)
	commandHandler.logger.Info("Nonce: ", payload.Nonce)
	commandHandler.logger.Info("Algorithm: ", payload.Algorithm)
	commandHandler.logger.Info("Authority: ", payload.Authority)
	commandHandler.logger.Info("Authenticated: ", payload.MAC != "")
}

// InitTimestampCommands registers the timestamp commands with the root command.
func InitTimestampCommands(rootCmd *cobra.Command) error {
	handler, err := NewTimestampCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create timestamp command handler %w", err)
	}

	var createTimestampCmd = &cobra.Command{
		Use:   "create-timestamp",
		Short: "Create a timestamp token for a file",
		Run:   handler.CreateTimestampCmd,
	}
	createTimestampCmd.Flags().StringP("input-file", "", "", "Path to the file to timestamp")
	createTimestampCmd.Flags().StringP("authority", "", "secure-signify", "Authority identifier embedded in the token")
	createTimestampCmd.Flags().StringP("output-file", "", "", "Path to write the encoded token")
	createTimestampCmd.Flags().StringP("mode", "", timestamps.ModeAuthenticated, "Authority mode (authenticated or encoding-only)")
	createTimestampCmd.Flags().StringP("secret", "", "", "Authority secret (falls back to TIMESTAMP_SECRET)")
	rootCmd.AddCommand(createTimestampCmd)

	var verifyTimestampCmd = &cobra.Command{
		Use:   "verify-timestamp",
		Short: "Verify a timestamp token",
		Run:   handler.VerifyTimestampCmd,
	}
	verifyTimestampCmd.Flags().StringP("token-file", "", "", "Path to the encoded token")
	verifyTimestampCmd.Flags().StringP("mode", "", timestamps.ModeAuthenticated, "Authority mode (authenticated or encoding-only)")
	verifyTimestampCmd.Flags().StringP("secret", "", "", "Authority secret (falls back to TIMESTAMP_SECRET)")
	rootCmd.AddCommand(verifyTimestampCmd)

	var inspectTimestampCmd = &cobra.Command{
		Use:   "inspect-timestamp",
		Short: "Decode a timestamp token without verifying it",
		Run:   handler.InspectTimestampCmd,
	}
	inspectTimestampCmd.Flags().StringP("token-file", "", "", "Path to the encoded token")
	rootCmd.AddCommand(inspectTimestampCmd)

	return nil
}
