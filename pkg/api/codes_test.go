package api

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode_Message_Known(t *testing.T) {
	tests := []struct {
		name string
		want string
		code Code
	}{
		{name: "success", code: CodeSuccess, want: "Success"},
		{name: "database failure", code: CodeDatabaseFailure, want: "Database operation failed"},
		{name: "user not found", code: CodeUserNotFound, want: "User not found"},
		{name: "device not found", code: CodeDeviceNotFound, want: "Device not found"},
		{name: "incorrect credentials", code: CodeIncorrectCredentials, want: "Incorrect credentials"},
		{name: "duplicate username", code: CodeDuplicateUsername, want: "Username already exists"},
		{name: "invalid discord user id", code: CodeInvalidDiscordUserID, want: "Invalid Discord user ID"},
		{name: "discord api error", code: CodeDiscordAPIError, want: "Discord API error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.Message())
		})
	}
}

func TestCode_Message_Unknown(t *testing.T) {
	// Для неизвестного кода сообщение должно содержать сам числовой код
	msg := Code(999).Message()
	assert.Contains(t, msg, "999")
	assert.Contains(t, msg, "Unknown error")
}

func TestCode_IsSuccess(t *testing.T) {
	assert.True(t, CodeSuccess.IsSuccess())
	assert.False(t, CodeDatabaseFailure.IsSuccess())
	assert.False(t, Code(999).IsSuccess())
}

func TestResult_UnmarshalNullData(t *testing.T) {
	// data: null при ошибочном коде не должен ломать декодирование
	var res Result[*User]
	err := json.Unmarshal([]byte(`{"code": 4, "data": null}`), &res)
	require.NoError(t, err)

	assert.Equal(t, CodeIncorrectCredentials, res.Code)
	assert.Nil(t, res.Data)
}

func TestCategory_Label(t *testing.T) {
	assert.Equal(t, "Normal", CategoryNormal.Label())
	assert.Equal(t, "Fall Detected", CategoryFallDetected.Label())
	assert.Equal(t, "Low Heart Rate", CategoryLowHeartRate.Label())
	assert.Equal(t, "High Heart Rate", CategoryHighHeartRate.Label())
	assert.Equal(t, fmt.Sprintf("Category %d", 42), Category(42).Label())
}

func TestEvent_UnmarshalOptionalFields(t *testing.T) {
	raw := `{
		"id": 101,
		"category": 1,
		"accel_x": 0.5, "accel_y": null, "accel_z": -9.8,
		"gyro_x": null, "gyro_y": null, "gyro_z": null,
		"heart_rate_bpm": 44,
		"spo2": null,
		"latitude": 10.76, "longitude": 106.66,
		"neo6m_altitude_meter": null,
		"pressure_pa": null,
		"bmp280_altitude_meter": null,
		"device": {"id": 7, "name": "wristband", "hashed_token": "x", "user": {"id": 1, "username": "anh", "discord_channel_id": 123, "hashed_password": "y"}}
	}`

	var event Event
	require.NoError(t, json.Unmarshal([]byte(raw), &event))

	assert.Equal(t, int64(101), event.ID)
	assert.Equal(t, CategoryFallDetected, event.Category)
	require.NotNil(t, event.AccelX)
	assert.InDelta(t, 0.5, *event.AccelX, 1e-9)
	assert.Nil(t, event.AccelY)
	require.NotNil(t, event.HeartRateBPM)
	assert.Equal(t, 44, *event.HeartRateBPM)
	assert.Nil(t, event.SpO2)
	require.NotNil(t, event.Latitude)
	require.NotNil(t, event.Longitude)
	assert.Equal(t, "wristband", event.Device.Name)
	assert.Equal(t, "anh", event.Device.User.Username)
}
