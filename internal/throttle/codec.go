package throttle

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// Codec encrypts throttle records for storage in a client-held cookie. The
// format is AES-256-CBC with a random IV, encoded as "ivhex:cipherhex",
// which keeps existing cookies from the original console readable.
type Codec struct {
	key []byte
}

// NewCodec derives the cipher key from the shared cookie secret: the secret
// is space-padded to 32 bytes and truncated, matching the original key
// derivation so deployed cookies stay valid.
func NewCodec(secret string) *Codec {
	padded := secret
	if len(padded) < 32 {
		padded += strings.Repeat(" ", 32-len(padded))
	}
	return &Codec{key: []byte(padded[:32])}
}

// Encrypt serializes and encrypts a record.
func (c *Codec) Encrypt(rec Record) (string, error) {
	plaintext, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("marshal record: %w", err)
	}

	iv := make([]byte, aes.BlockSize)
	if _, err := rand.Read(iv); err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", fmt.Errorf("new cipher: %w", err)
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return hex.EncodeToString(iv) + ":" + hex.EncodeToString(ciphertext), nil
}

// Decrypt recovers a record from a cookie value. Any failure (bad encoding,
// wrong key, tampered ciphertext, invalid JSON) yields the Clear record and
// ok=false. A corrupted cookie is indistinguishable from no cookie at all.
func (c *Codec) Decrypt(value string) (Record, bool) {
	ivHex, cipherHex, found := strings.Cut(value, ":")
	if !found {
		return Record{}, false
	}
	iv, err := hex.DecodeString(ivHex)
	if err != nil || len(iv) != aes.BlockSize {
		return Record{}, false
	}
	ciphertext, err := hex.DecodeString(cipherHex)
	if err != nil || len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return Record{}, false
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return Record{}, false
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	unpadded, ok := pkcs7Unpad(plaintext, aes.BlockSize)
	if !ok {
		return Record{}, false
	}

	var rec Record
	if err := json.Unmarshal(unpadded, &rec); err != nil {
		return Record{}, false
	}
	if rec.Attempts < 0 || rec.TimeoutLevel < 0 || rec.TimeoutLevel > MaxLevel {
		return Record{}, false
	}
	return rec, true
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(padding)}, padding)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, bool) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, false
	}
	padding := int(data[len(data)-1])
	if padding == 0 || padding > blockSize || padding > len(data) {
		return nil, false
	}
	for _, b := range data[len(data)-padding:] {
		if int(b) != padding {
			return nil, false
		}
	}
	return data[:len(data)-padding], true
}
