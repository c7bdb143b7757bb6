package envfile

import (
	"crypto/rand"
	"math/big"

	"github.com/muffin-cms/muffin/pkg/errors"
)

const (
	// SessionSecretKey is the variable that receives the generated secret.
	SessionSecretKey = "SESSION_SECRET"

	// MinSecretLength is the shortest secret NewSecret will produce.
	MinSecretLength = 20

	secretAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// NewSecret returns a random alphanumeric string of the given length.
// Lengths below MinSecretLength are raised to it.
func NewSecret(length int) (string, error) {
	if length < MinSecretLength {
		length = MinSecretLength
	}

	max := big.NewInt(int64(len(secretAlphabet)))
	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", errors.Wrap(err, errors.ErrInternal, "failed to generate secret")
		}
		buf[i] = secretAlphabet[n.Int64()]
	}
	return string(buf), nil
}
