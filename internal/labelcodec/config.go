package labelcodec

// Config configures alphabet handling.
type Config struct {
	// AllowDuplicates accepts alphabets that repeat a character. The last
	// occurrence owns the character; the indices of earlier occurrences
	// no longer decode and fail with ErrUnknownLabel.
	AllowDuplicates bool
}

// DefaultConfig returns the recommended configuration: duplicate characters
// in the alphabet are rejected.
func DefaultConfig() Config {
	return Config{
		AllowDuplicates: false,
	}
}
