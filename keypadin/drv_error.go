// drv_error is an input-driver which only returns errors.
//
// This driver is only used for testing purposes.

package keypadin

import "errors"

var (
	// ErrorInputName contains the name of this driver.
	ErrorInputName = "error"

	// errDriver is returned from every Poll.
	errDriver = errors.New("DRV_ERROR")
)

// ErrorInput is an input-driver that only returns errors, and
// is used for testing.
type ErrorInput struct {
}

// Setup is a NOP.
func (ei *ErrorInput) Setup() error {
	return nil
}

// TearDown is a NOP.
func (ei *ErrorInput) TearDown() error {
	return nil
}

// GetName returns the name of this driver, "error".
func (ei *ErrorInput) GetName() string {
	return ErrorInputName
}

// Poll always fails.
func (ei *ErrorInput) Poll(keys KeySetter) error {
	return errDriver
}

// init registers our driver, by name.
func init() {
	Register(ErrorInputName, func() KeypadInput {
		return new(ErrorInput)
	})
}
