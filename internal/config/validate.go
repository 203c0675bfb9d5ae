package config

import "fmt"

// Validate checks configuration correctness. It performs declarative
// validation only and MUST NOT mutate the configuration.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.Target == "" {
		return fmt.Errorf("target container name must not be empty")
	}
	if len(c.Command) == 0 {
		return fmt.Errorf("diagnostic command must not be empty")
	}
	if c.MaxChars < 1 {
		return fmt.Errorf("max_chars must be positive, got %d", c.MaxChars)
	}
	if c.MaxSnapshots < 1 {
		return fmt.Errorf("max_snapshots must be positive, got %d", c.MaxSnapshots)
	}
	// one-sided credentials are almost certainly a deployment mistake
	if (c.BasicUser == "") != (c.BasicPass == "") {
		return fmt.Errorf("basic auth requires both user and password or neither")
	}
	return nil
}
