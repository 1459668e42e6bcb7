package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	certDomain "github.com/Ibrahim98s/secure-signify-vault/internal/domain/certificates"
	"github.com/Ibrahim98s/secure-signify-vault/internal/domain/crypto"
	"github.com/Ibrahim98s/secure-signify-vault/internal/infrastructure/cryptography"
	"github.com/Ibrahim98s/secure-signify-vault/internal/pkg/logger"
)

// CertificateCommandHandler encapsulates logic for handling certificate
// operations via CLI.
type CertificateCommandHandler struct {
	keyPairManager    crypto.KeyPairManager
	certificateIssuer certDomain.CertificateIssuer
	logger            logger.Logger
}

// NewCertificateCommandHandler initializes a new CertificateCommandHandler
// with logging, a key pair manager and a certificate issuer.
func NewCertificateCommandHandler() (*CertificateCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	keyPairManager, err := cryptography.NewKeyPairManager(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create key pair manager: %w", err)
	}

	certificateIssuer, err := cryptography.NewCertificateIssuer(nil, nil, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create certificate issuer: %w", err)
	}

	return &CertificateCommandHandler{
		keyPairManager:    keyPairManager,
		certificateIssuer: certificateIssuer,
		logger:            loggerInstance,
	}, nil
}

// IssueCertificateCmd issues a self-signed certificate record for a public
// key and writes it to a PEM file.
func (commandHandler *CertificateCommandHandler) IssueCertificateCmd(cmd *cobra.Command, _ []string) {
	subject, err := cmd.Flags().GetString("subject")
	if err != nil {
		commandHandler.logger.Error("invalid subject flag: ", err)
		return
	}
	validityDays, err := cmd.Flags().GetInt("validity-days")
	if err != nil {
		commandHandler.logger.Error("invalid validity-days flag: ", err)
		return
	}
	publicKeyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		commandHandler.logger.Error("invalid public-key flag: ", err)
		return
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: ", err)
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

	keyPair := &crypto.KeyPair{
		Public:      publicKey,
		Algorithm:   crypto.AlgorithmRSAPSS,
		KeySizeBits: publicKey.Key.N.BitLen(),
	}

	record, err := commandHandler.certificateIssuer.IssueSelfSigned(subject, validityDays, keyPair)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	exported, err := commandHandler.certificateIssuer.ExportRecord(record)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := os.WriteFile(outputFile, []byte(exported), 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Certificate ", record.SerialNumber, " for ", record.Subject, " written to ", outputFile)
}

// InspectCertificateCmd imports a certificate record from a PEM file and
// prints its fields together with its current validity status.
func (commandHandler *CertificateCommandHandler) InspectCertificateCmd(cmd *cobra.Command, _ []string) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: ", err)
		return
	}

	pemData, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	record, err := commandHandler.certificateIssuer.ImportRecord(string(pemData))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	status := certDomain.RecordStatus(record, time.Now().UTC())
	commandHandler.logger.Info("Serial: ", record.SerialNumber)
	commandHandler.logger.Info("Subject: ", record.Subject)
	commandHandler.logger.Info("Issuer: ", record.Issuer)
	commandHandler.logger.Info("Valid from ", record.ValidFrom.Format(time.RFC3339), " to ", record.ValidTo.Format(time.RFC3339))
	commandHandler.logger.Info("Status: ", status)
}

// InitCertificateCommands registers the certificate commands with the root command.
func InitCertificateCommands(rootCmd *cobra.Command) error {
	handler, err := NewCertificateCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create certificate command handler %w", err)
	}

	var issueCertificateCmd = &cobra.Command{
		Use:   "issue-certificate",
		Short: "Issue a self-signed certificate record for a public key",
		Run:   handler.IssueCertificateCmd,
	}
	issueCertificateCmd.Flags().StringP("subject", "", "", "Certificate subject name")
	issueCertificateCmd.Flags().IntP("validity-days", "", 365, "Validity period in days")
	issueCertificateCmd.Flags().StringP("public-key", "", "", "Path to the PEM-encoded public key")
	issueCertificateCmd.Flags().StringP("output-file", "", "", "Path to write the certificate PEM")
	rootCmd.AddCommand(issueCertificateCmd)

	var inspectCertificateCmd = &cobra.Command{
		Use:   "inspect-certificate",
		Short: "Inspect a certificate record PEM file",
		Run:   handler.InspectCertificateCmd,
	}
	inspectCertificateCmd.Flags().StringP("input-file", "", "", "Path to the certificate PEM")
	rootCmd.AddCommand(inspectCertificateCmd)

	return nil
}
