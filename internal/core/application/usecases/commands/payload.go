package commands

import (
	"encoding/json"

	"fastfeet/internal/core/domain/model/order"
)

// transitionPayload builds the opaque JSON payload shared by delivery events
// and notifications. Extra fields (e.g. a return reason) are merged in.
func transitionPayload(o *order.Order, extra map[string]string) string {
	body := map[string]string{
		"trackingCode": o.TrackingCode().String(),
		"status":       o.Status().String(),
	}
	for k, v := range extra {
		body[k] = v
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return "{}"
	}
	return string(raw)
}
