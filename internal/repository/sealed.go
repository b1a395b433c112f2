package repository

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/nacl/secretbox"
)

const nonceSize = 24

var ErrSealBroken = errors.New("sealed value could not be opened")

// sealedStore encrypts every value before handing it to the underlying store, so
// bearer tokens are never at rest in clear text.
type sealedStore struct {
	inner SessionStore
	key   [32]byte
}

// NewSealedStore wraps inner with nacl/secretbox. The box key is derived from secret with HKDF-SHA256.
func NewSealedStore(inner SessionStore, secret string) (SessionStore, error) {
	if secret == "" {
		return nil, errors.New("session secret cannot be empty")
	}
	s := &sealedStore{inner: inner}
	kdf := hkdf.New(sha256.New, []byte(secret), nil, []byte("training-client session store"))
	if _, err := io.ReadFull(kdf, s.key[:]); err != nil {
		return nil, fmt.Errorf("derive session key: %w", err)
	}
	return s, nil
}

func (s *sealedStore) Get(ctx context.Context, key string) (string, error) {
	raw, err := s.inner.Get(ctx, key)
	if err != nil {
		return "", err
	}
	box, err := base64.StdEncoding.DecodeString(raw)
	if err != nil || len(box) < nonceSize {
		return "", ErrSealBroken
	}
	var nonce [nonceSize]byte
	copy(nonce[:], box[:nonceSize])
	plain, ok := secretbox.Open(nil, box[nonceSize:], &nonce, &s.key)
	if !ok {
		return "", ErrSealBroken
	}
	return string(plain), nil
}

func (s *sealedStore) Set(ctx context.Context, key, value string) error {
	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return fmt.Errorf("generate nonce: %w", err)
	}
	box := secretbox.Seal(nonce[:], []byte(value), &nonce, &s.key)
	return s.inner.Set(ctx, key, base64.StdEncoding.EncodeToString(box))
}

func (s *sealedStore) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, key)
}
