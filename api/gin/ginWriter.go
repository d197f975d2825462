package gin

import "bytes"

type ginWriter struct {
}

// Write will output the message using the package logger at debug level
func (gv *ginWriter) Write(p []byte) (n int, err error) {
	log.Debug("gin server", "message", string(bytes.TrimSpace(p)))

	return len(p), nil
}

type ginErrorWriter struct {
}

// Write will output the error using the package logger at error level
func (gev *ginErrorWriter) Write(p []byte) (n int, err error) {
	log.Error("gin server", "message", string(bytes.TrimSpace(p)))

	return len(p), nil
}
