//go:build unit

package request_test

import (
	"encoding/json"
	"testing"

	"hotelhub/internal/handler/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAvailabilityRequestWireFormat(t *testing.T) {
	roomID := uuid.New()

	var req request.CheckAvailabilityRequest
	payload := `{"roomId":"` + roomID.String() + `","check_in":"2026-03-10","check_out":"2026-03-12"}`
	require.NoError(t, json.Unmarshal([]byte(payload), &req))

	assert.Equal(t, roomID, req.RoomID)
	assert.Equal(t, "2026-03-10", req.CheckIn)
	assert.Equal(t, "2026-03-12", req.CheckOut)

	stay, err := req.ToStay()
	require.NoError(t, err)
	assert.Equal(t, 2, stay.Nights())
}

func TestCreateBookingRequestWireFormat(t *testing.T) {
	roomID := uuid.New()

	var req request.CreateBookingRequest
	payload := `{"roomId":"` + roomID.String() + `","customer_name":"Asha Patel",` +
		`"customer_email":"asha@example.com","check_in":"2026-03-10","check_out":"2026-03-12"}`
	require.NoError(t, json.Unmarshal([]byte(payload), &req))

	params, err := req.ToParams()
	require.NoError(t, err)
	assert.Equal(t, roomID, params.RoomID)
	assert.Equal(t, "Asha Patel", params.CustomerName)
	assert.Equal(t, "asha@example.com", params.CustomerEmail)
	assert.Equal(t, 2, params.Stay.Nights())
}
