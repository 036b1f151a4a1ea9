package crypto

import "errors"

var (
	// ErrConfig marks invalid cipher input. It is never returned bare:
	// match the concrete cause with [ErrEmptyPassword] or [ErrEmptyPlaintext].
	ErrConfig = errors.New("cipher configuration error")

	// ErrEmptyPassword is returned when the password is empty.
	ErrEmptyPassword = errors.New("password is empty")

	// ErrEmptyPlaintext is returned when there is nothing to encrypt.
	ErrEmptyPlaintext = errors.New("plaintext is empty")

	// ErrUnknownMode is returned for an unsupported cipher mode name.
	ErrUnknownMode = errors.New("unknown cipher mode")

	// ErrWrongPasswordOrCorruptData is the single decryption failure. The
	// cipher cannot tell a wrong password from damaged data.
	ErrWrongPasswordOrCorruptData = errors.New("wrong password or corrupt data")
)

func configError(cause error) error {
	return errors.Join(ErrConfig, cause)
}
