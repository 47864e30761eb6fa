package appmetricadomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent_PayloadAndAttributionTag(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantTag string
		wantErr bool
	}{
		{name: "objeto com ad_content", raw: `{"ad_content":"X"}`, wantTag: "X"},
		{name: "string com JSON", raw: `"{\"ad_content\":\"X\"}"`, wantTag: "X"},
		{name: "ad_content dentro de params", raw: `{"params":{"ad_content":"X"}}`, wantTag: "X"},
		{name: "raiz tem prioridade", raw: `{"ad_content":"Y","params":{"ad_content":"X"}}`, wantTag: "Y"},
		{name: "raiz null usa params", raw: `{"ad_content":null,"params":{"ad_content":"X"}}`, wantTag: "X"},
		{name: "valor numérico", raw: `{"ad_content":123}`, wantTag: "123"},
		{name: "sem ad_content", raw: `{"other":"X"}`, wantTag: ""},
		{name: "ausente", raw: ``, wantTag: ""},
		{name: "null", raw: `null`, wantTag: ""},
		{name: "string inválida", raw: `"not-json"`, wantErr: true},
		{name: "string com array", raw: `"[1,2]"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := Event{EventName: RegistrationEventName, EventJSON: []byte(tt.raw)}

			payload, err := event.Payload()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidEventPayload)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTag, AttributionTag(payload))
		})
	}
}

func TestEventsResponse_Decode(t *testing.T) {
	body := []byte(`{"data":[{"event_name":"register","event_json":{"ad_content":"X"}},{"event_name":"register","event_json":"{\"params\":{\"ad_content\":\"X\"}}"}]}`)

	var resp EventsResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	require.Len(t, resp.Data, 2)

	for _, event := range resp.Data {
		assert.True(t, event.IsRegistration())
		payload, err := event.Payload()
		require.NoError(t, err)
		assert.Equal(t, "X", AttributionTag(payload))
	}
}

func TestErrorResponse_Error(t *testing.T) {
	err := &ErrorResponse{Code: 400, Message: "bad", Errors: []ErrorDetails{{ErrorType: "invalid_parameter", Message: "date1"}}}
	assert.Equal(t, "appmetrica: code 400: invalid_parameter: date1", err.Error())
	assert.False(t, err.IsAuthError())

	err = &ErrorResponse{Code: 401, Message: "unauthorized"}
	assert.Equal(t, "appmetrica: code 401: unauthorized", err.Error())
	assert.True(t, err.IsAuthError())
}
