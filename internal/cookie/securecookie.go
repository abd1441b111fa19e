package cookie

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"github.com/go-playground/errors/v5"
	"github.com/gorilla/securecookie"
	"golang.org/x/crypto/pbkdf2"
)

// keyLength is the minimum decoded length of a cookie key.
const keyLength = 96

// GenerateKey returns a new random cookie key, base64 encoded.
func GenerateKey() (string, error) {
	rKey := securecookie.GenerateRandomKey(keyLength)
	if rKey == nil {
		return "", errors.New("failed to generate random key")
	}

	return base64.StdEncoding.EncodeToString(rKey), nil
}

func createSecureCookie(cookieKey string) (*securecookie.SecureCookie, error) {
	if cookieKey == "" {
		var err error
		if cookieKey, err = GenerateKey(); err != nil {
			return nil, err
		}

		fmt.Printf("Using random CookieKey: %s\n", cookieKey)
	}

	k, err := base64.StdEncoding.DecodeString(cookieKey)
	if err != nil {
		return nil, errors.Wrap(err, "base64.StdEncoding.DecodeString()")
	}
	if len(k) < keyLength {
		return nil, errors.New("CookieKey to short.  Expect minimum of 96 bytes. (128 bytes when base64 encoded)")
	}

	hSaltIndex := int(k[55] % 4)
	hIndex := int(k[7]%4 + 12)
	saltIndex := int(k[73]%4 + 48)
	index := int(k[37]%4 + 60)

	hash := pbkdf2.Key(k[hIndex:hIndex+32], k[hSaltIndex:hSaltIndex+8], 4356+hIndex*saltIndex, 64, sha256.New)
	block := pbkdf2.Key(k[index:index+32], k[saltIndex:saltIndex+8], 4491+(hSaltIndex+1)*index, 32, sha256.New)

	sc := securecookie.New(hash, block)
	sc.MaxAge(int(TokenCookieLife.Seconds()))

	return sc, nil
}
