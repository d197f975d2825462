package disabled

import "errors"

// ErrHardwareSignerDisabled signals that a hardware execution was requested while the bridge is switched off
var ErrHardwareSignerDisabled = errors.New("hardware signer is disabled")

// ErrKeystoreDisabled signals that a private key was requested while no keystore directory is configured
var ErrKeystoreDisabled = errors.New("keystore is disabled")
