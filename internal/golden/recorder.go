package golden

import (
	"fmt"
	"os"
)

// Record runs the named test and stores its transcript as the expected output.
func (c Config) Record(name string) error {
	transcript, err := c.RunTest(name)
	if err != nil {
		return err
	}

	expectedPath := ExpectedPath(c.TestDir, name)
	if err := os.WriteFile(expectedPath, []byte(transcript), 0644); err != nil {
		return fmt.Errorf("failed to write expected file: %w", err)
	}
	return nil
}
