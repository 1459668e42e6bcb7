package crypto

// AlgorithmRSAPSS represents the RSA-PSS signature scheme with SHA-256
const AlgorithmRSAPSS = "RSA-PSS"

// Supported RSA key sizes in bits
const (
	KeySize2048 = 2048
	KeySize3072 = 3072
	KeySize4096 = 4096
)

// DefaultSaltLength is the default PSS salt length in bytes
const DefaultSaltLength = 32

// Digest algorithm identifiers
const (
	AlgorithmSHA1   = "SHA-1"
	AlgorithmSHA256 = "SHA-256"
	AlgorithmSHA384 = "SHA-384"
	AlgorithmSHA512 = "SHA-512"
	AlgorithmMD5    = "MD5"
)
