package repository

// Error messages
const (
	ErrMsgEncodeSave  = "failed to encode save"
	ErrMsgDecodeSave  = "failed to decode save"
	ErrMsgInvalidSave = "stored save failed validation"
)
