package appmetricaclient

import "errors"

var (
	ErrExportNotReady   = errors.New("appmetrica logs export not ready")
	ErrUnexpectedStatus = errors.New("appmetrica request failed")
)
