// Package certificates defines the structures and contracts for issuing and
// storing self-signed certificate records. A record is subject/issuer/validity
// metadata bound to a key pair, not a standards-compliant signed structure.

package certificates
