// Package profile persists a small per-profile record so the login screen
// can prefill itself next time. The record is encrypted at rest with a key
// derived from the machine identity; it is not portable between machines
// and is not meant to be.
package profile

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/hkdf"
)

const fileName = "profile.json"

// Profile is what a session leaves behind for the next one.
type Profile struct {
	Server string `json:"server_url"`
	Name   string `json:"display_name"`
	Theme  string `json:"theme"`
}

func profilePath(dir, name string) string {
	return filepath.Join(dir, name, fileName)
}

func machineID() string {
	for _, p := range []string{"/etc/machine-id", "/var/lib/dbus/machine-id"} {
		if data, err := os.ReadFile(p); err == nil {
			return strings.TrimSpace(string(data))
		}
	}
	hostname, _ := os.Hostname()
	return hostname
}

func encryptionKey() []byte {
	r := hkdf.New(sha256.New, []byte(machineID()), nil, []byte("parley profile"))
	key := make([]byte, 32)
	if _, err := io.ReadFull(r, key); err != nil {
		// hkdf cannot fail this early; keep a deterministic fallback anyway.
		sum := sha256.Sum256([]byte(machineID()))
		return sum[:]
	}
	return key
}

func encrypt(data []byte) (string, error) {
	block, err := aes.NewCipher(encryptionKey())
	if err != nil {
		return "", err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(gcm.Seal(nonce, nonce, data, nil)), nil
}

func decrypt(encoded string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(encryptionKey())
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	if len(data) < gcm.NonceSize() {
		return nil, fmt.Errorf("ciphertext too short")
	}
	nonce, ciphertext := data[:gcm.NonceSize()], data[gcm.NonceSize():]
	return gcm.Open(nil, nonce, ciphertext, nil)
}

// Load reads the profile called name under dir. Anything that goes wrong,
// a missing file, a key from another machine, a truncated record, just
// means there is nothing to prefill, so Load returns nil rather than an
// error.
func Load(dir, name string) *Profile {
	data, err := os.ReadFile(profilePath(dir, name))
	if err != nil {
		return nil
	}
	decrypted, err := decrypt(string(data))
	if err != nil {
		return nil
	}
	var p Profile
	if err := json.Unmarshal(decrypted, &p); err != nil {
		return nil
	}
	return &p
}

// Save writes p as the profile called name under dir, creating the
// directory if needed.
func Save(dir, name string, p Profile) error {
	profileDir := filepath.Join(dir, name)
	if err := os.MkdirAll(profileDir, 0700); err != nil {
		return err
	}
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	encrypted, err := encrypt(data)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(profileDir, fileName), []byte(encrypted), 0600)
}

// Clear removes the profile called name under dir, if it exists.
func Clear(dir, name string) {
	os.Remove(profilePath(dir, name))
}
