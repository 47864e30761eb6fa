package appmetricadomain

import (
	"bytes"
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// RegistrationEventName é o nome do evento de cadastro enviado pelo aplicativo
const RegistrationEventName = "register"

const attributionParam = "ad_content"

var ErrInvalidEventPayload = errors.New("invalid event_json payload")

// EventsResponse é o corpo devolvido pela Logs API (events.json)
type EventsResponse struct {
	Data []Event `json:"data"`
}

// Event traz event_json cru: a API entrega um objeto ou uma string com JSON dentro
type Event struct {
	EventName string              `json:"event_name"`
	EventJSON jsoniter.RawMessage `json:"event_json"`
}

func (e Event) IsRegistration() bool {
	return e.EventName == RegistrationEventName
}

// Payload decodifica event_json aceitando tanto objeto quanto string codificada
func (e Event) Payload() (map[string]any, error) {
	raw := bytes.TrimSpace(e.EventJSON)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	if raw[0] == '"' {
		var encoded string
		if err := json.Unmarshal(raw, &encoded); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidEventPayload, err)
		}
		raw = []byte(encoded)
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidEventPayload, err)
	}

	return payload, nil
}

// AttributionTag procura ad_content no nível raiz e, na ausência, dentro de params
func AttributionTag(payload map[string]any) string {
	if payload == nil {
		return ""
	}

	if value, ok := payload[attributionParam]; ok && value != nil {
		return CoerceString(value)
	}

	if params, ok := payload["params"].(map[string]any); ok {
		if value, ok := params[attributionParam]; ok && value != nil {
			return CoerceString(value)
		}
	}

	return ""
}
