//go:build headless

package gui

// Run always fails, as there is no window support in this build.
func Run(m Machine, config Config) error {
	return ErrUnavailable
}
