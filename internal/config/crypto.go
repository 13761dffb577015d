package config

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/scrypt"
)

const (
	saltSize  = 16
	nonceSize = 12
)

// ErrDecrypt is returned when the settings file cannot be opened with the
// resolved passphrase.
var ErrDecrypt = errors.New("settings: decryption failed")

// Settings files are laid out as salt || nonce || AES-GCM sealed JSON, with
// the key derived from the passphrase and salt by scrypt.

func encrypt(plaintext []byte, passphrase string) ([]byte, error) {
	header := make([]byte, saltSize+nonceSize)
	if _, err := io.ReadFull(rand.Reader, header); err != nil {
		return nil, fmt.Errorf("generate salt and nonce: %w", err)
	}

	aead, err := settingsAEAD(passphrase, header[:saltSize])
	if err != nil {
		return nil, err
	}
	return aead.Seal(header, header[saltSize:], plaintext, nil), nil
}

func decrypt(ciphertext []byte, passphrase string) ([]byte, error) {
	if len(ciphertext) < saltSize+nonceSize {
		return nil, fmt.Errorf("%w: ciphertext too short", ErrDecrypt)
	}

	aead, err := settingsAEAD(passphrase, ciphertext[:saltSize])
	if err != nil {
		return nil, err
	}

	plain, err := aead.Open(nil, ciphertext[saltSize:saltSize+nonceSize], ciphertext[saltSize+nonceSize:], nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecrypt, err)
	}
	return plain, nil
}

func settingsAEAD(passphrase string, salt []byte) (cipher.AEAD, error) {
	const (
		keyLength = 32
		n         = 1 << 15
		r         = 8
		p         = 1
	)

	key, err := scrypt.Key([]byte(passphrase), salt, n, r, p, keyLength)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	return cipher.NewGCMWithNonceSize(block, nonceSize)
}
