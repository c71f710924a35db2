package api

import "fmt"

// Category классифицирует телеметрическое событие устройства
type Category int

// Категории событий
const (
	CategoryNormal        Category = 0 // штатное измерение
	CategoryFallDetected  Category = 1 // обнаружено падение
	CategoryLowHeartRate  Category = 2 // низкий пульс
	CategoryHighHeartRate Category = 3 // высокий пульс
)

var categoryLabels = map[Category]string{
	CategoryNormal:        "Normal",
	CategoryFallDetected:  "Fall Detected",
	CategoryLowHeartRate:  "Low Heart Rate",
	CategoryHighHeartRate: "High Heart Rate",
}

// Label возвращает отображаемое имя категории.
// Неизвестные значения форматируются с числовым кодом.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return fmt.Sprintf("Category %d", int(c))
}

// User представляет пользователя платформы
type User struct {
	ID               int64  `json:"id"`                 // snowflake ID пользователя
	Username         string `json:"username"`           // уникальный username
	DiscordChannelID int64  `json:"discord_channel_id"` // ID DM канала Discord для уведомлений
	HashedPassword   string `json:"hashed_password"`    // хеш пароля (клиент его только читает)
}

// Device представляет зарегистрированное носимое устройство
type Device struct {
	ID          int64  `json:"id"`           // snowflake ID устройства
	Name        string `json:"name"`         // человекочитаемое имя
	HashedToken string `json:"hashed_token"` // хеш токена устройства
	User        User   `json:"user"`         // владелец устройства
}

// Event представляет одно телеметрическое событие устройства.
// Все сенсорные поля опциональны: не каждое устройство передает каждый
// сенсор, отсутствующее значение приходит как null.
type Event struct {
	ID                  int64    `json:"id"`                    // snowflake ID события
	Category            Category `json:"category"`              // категория события
	AccelX              *float64 `json:"accel_x"`               // ускорение по X
	AccelY              *float64 `json:"accel_y"`               // ускорение по Y
	AccelZ              *float64 `json:"accel_z"`               // ускорение по Z
	GyroX               *float64 `json:"gyro_x"`                // гироскоп по X
	GyroY               *float64 `json:"gyro_y"`                // гироскоп по Y
	GyroZ               *float64 `json:"gyro_z"`                // гироскоп по Z
	HeartRateBPM        *int     `json:"heart_rate_bpm"`        // пульс, ударов в минуту
	SpO2                *int     `json:"spo2"`                  // насыщение крови кислородом, %
	Latitude            *float64 `json:"latitude"`              // GPS широта
	Longitude           *float64 `json:"longitude"`             // GPS долгота
	Neo6mAltitudeMeter  *float64 `json:"neo6m_altitude_meter"`  // GPS высота, метры
	PressurePa          *float64 `json:"pressure_pa"`           // атмосферное давление, Па
	Bmp280AltitudeMeter *float64 `json:"bmp280_altitude_meter"` // барометрическая высота, метры
	Device              Device   `json:"device"`                // устройство-источник события
}
