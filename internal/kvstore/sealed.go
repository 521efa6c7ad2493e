package kvstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/cardkeeper/internal/cryptox"
)

var sealedMagic = []byte("ck1:")

// ErrNotSealed is returned when a stored value lacks the sealed header or
// cannot be decrypted with the configured passphrase.
var ErrNotSealed = errors.New("value is not sealed with this passphrase")

// SealedStore encrypts values before handing them to the wrapped store.
// Each value carries its own salt: magic | salt | nonce | ciphertext.
type SealedStore struct {
	inner      Store
	passphrase []byte
}

func NewSealedStore(inner Store, passphrase string) *SealedStore {
	return &SealedStore{inner: inner, passphrase: []byte(passphrase)}
}

func (s *SealedStore) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.inner.Get(ctx, key)
	if err != nil || raw == nil {
		return raw, err
	}
	v, err := s.open(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to unseal %s: %w", key, err)
	}
	return v, nil
}

func (s *SealedStore) Set(ctx context.Context, key string, value []byte) error {
	sealed, err := s.seal(value)
	if err != nil {
		return fmt.Errorf("failed to seal %s: %w", key, err)
	}
	return s.inner.Set(ctx, key, sealed)
}

func (s *SealedStore) Delete(ctx context.Context, key string) error {
	return s.inner.Delete(ctx, key)
}

// List returns only values that unseal with this passphrase.
func (s *SealedStore) List(ctx context.Context) (map[string][]byte, error) {
	all, err := s.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]byte, len(all))
	for k, raw := range all {
		v, err := s.open(raw)
		if err != nil {
			continue
		}
		out[k] = v
	}
	return out, nil
}

func (s *SealedStore) Clear(ctx context.Context) error {
	return s.inner.Clear(ctx)
}

func (s *SealedStore) seal(plaintext []byte) ([]byte, error) {
	salt, err := cryptox.RandomBytes(cryptox.SaltSize)
	if err != nil {
		return nil, err
	}
	ct, err := cryptox.Seal(cryptox.DeriveKey(s.passphrase, salt), plaintext)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(sealedMagic)+len(salt)+len(ct))
	out = append(out, sealedMagic...)
	out = append(out, salt...)
	return append(out, ct...), nil
}

func (s *SealedStore) open(raw []byte) ([]byte, error) {
	if !bytes.HasPrefix(raw, sealedMagic) || len(raw) < len(sealedMagic)+cryptox.SaltSize {
		return nil, ErrNotSealed
	}
	rest := raw[len(sealedMagic):]
	salt, ct := rest[:cryptox.SaltSize], rest[cryptox.SaltSize:]
	v, err := cryptox.Open(cryptox.DeriveKey(s.passphrase, salt), ct)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotSealed, err)
	}
	return v, nil
}
