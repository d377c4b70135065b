package keypadin

// NullInput is an input-driver which never changes the keypad, it is
// used when something else, such as a window, updates the keys.
type NullInput struct {
}

// Setup is a NOP.
func (ni *NullInput) Setup() error {
	return nil
}

// TearDown is a NOP.
func (ni *NullInput) TearDown() error {
	return nil
}

// Poll leaves the keys alone.
func (ni *NullInput) Poll(keys KeySetter) error {
	return nil
}

// GetName returns the name of this driver, "null".
func (ni *NullInput) GetName() string {
	return "null"
}

// init registers our driver, by name.
func init() {
	Register("null", func() KeypadInput {
		return new(NullInput)
	})
}
