package protocol

import (
	"authsvc/internal/delivery/http/protocol"
)

var _ protocol.Validation = (*MockValidation)(nil)
