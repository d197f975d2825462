package disabled

// appStatusHandler is the disabled implementation of the status handler
type appStatusHandler struct {
}

// NewAppStatusHandler creates a new instance of type appStatusHandler
func NewAppStatusHandler() *appStatusHandler {
	return &appStatusHandler{}
}

// AddUint64 does nothing
func (ash *appStatusHandler) AddUint64(_ string, _ uint64) {}

// Increment does nothing
func (ash *appStatusHandler) Increment(_ string) {}

// Decrement does nothing
func (ash *appStatusHandler) Decrement(_ string) {}

// SetInt64Value does nothing
func (ash *appStatusHandler) SetInt64Value(_ string, _ int64) {}

// SetUInt64Value does nothing
func (ash *appStatusHandler) SetUInt64Value(_ string, _ uint64) {}

// SetStringValue does nothing
func (ash *appStatusHandler) SetStringValue(_ string, _ string) {}

// Close does nothing
func (ash *appStatusHandler) Close() {}

// IsInterfaceNil returns true if there is no value under the interface
func (ash *appStatusHandler) IsInterfaceNil() bool {
	return ash == nil
}
