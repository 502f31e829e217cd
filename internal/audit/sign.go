package audit

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
)

// Signer signs entry hashes with an Ed25519 key. The signing key id travels
// with each entry so entries remain verifiable across key rotations.
type Signer struct {
	keyID string
	priv  ed25519.PrivateKey
}

// NewSigner wraps an existing Ed25519 private key.
func NewSigner(keyID string, priv ed25519.PrivateKey) (*Signer, error) {
	if keyID == "" {
		return nil, fmt.Errorf("audit: signing key id is required")
	}
	if len(priv) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("audit: private key must be %d bytes, got %d", ed25519.PrivateKeySize, len(priv))
	}
	return &Signer{keyID: keyID, priv: priv}, nil
}

// GenerateSigner creates a Signer with a fresh Ed25519 key pair.
func GenerateSigner(keyID string) (*Signer, ed25519.PublicKey, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("audit: generate signing key: %w", err)
	}
	s, err := NewSigner(keyID, priv)
	if err != nil {
		return nil, nil, err
	}
	return s, pub, nil
}

// LoadSigner reads a hex-encoded Ed25519 private key from a file.
func LoadSigner(keyID, path string) (*Signer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("audit: read signing key: %w", err)
	}
	raw, err := hex.DecodeString(string(trimmed(data)))
	if err != nil {
		return nil, fmt.Errorf("audit: decode signing key: %w", err)
	}
	return NewSigner(keyID, ed25519.PrivateKey(raw))
}

// KeyID returns the signer's key id.
func (s *Signer) KeyID() string { return s.keyID }

// Sign returns the hex signature over an entry hash.
func (s *Signer) Sign(entryHash string) string {
	return hex.EncodeToString(ed25519.Sign(s.priv, []byte(entryHash)))
}

// Keyring maps signing key ids to public keys, covering rotated keys.
type Keyring map[string]ed25519.PublicKey

// VerifySignature checks an entry's signature against the keyring. Unsigned
// entries pass: signing is optional per deployment.
func VerifySignature(e Entry, keys Keyring) error {
	if e.Signature == "" && e.SigningKeyID == "" {
		return nil
	}
	pub, ok := keys[e.SigningKeyID]
	if !ok {
		return fmt.Errorf("audit: unknown signing key id %q at sequence %d", e.SigningKeyID, e.Sequence)
	}
	sig, err := hex.DecodeString(e.Signature)
	if err != nil {
		return fmt.Errorf("audit: malformed signature at sequence %d: %w", e.Sequence, err)
	}
	if !ed25519.Verify(pub, []byte(e.EntryHash), sig) {
		return fmt.Errorf("audit: signature verification failed at sequence %d", e.Sequence)
	}
	return nil
}

func trimmed(b []byte) []byte {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r' || b[len(b)-1] == ' ') {
		b = b[:len(b)-1]
	}
	return b
}
